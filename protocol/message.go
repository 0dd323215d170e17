package protocol

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Tag is the first payload byte and selects the message kind.
type Tag uint8

const (
	TagWelcome Tag = iota
	TagWaiting
	TagState
	TagHand
	TagAction
	TagGameOver
	TagError
)

var tagNames = map[Tag]string{
	TagWelcome:  "Welcome",
	TagWaiting:  "Waiting",
	TagState:    "State",
	TagHand:     "Hand",
	TagAction:   "Action",
	TagGameOver: "GameOver",
	TagError:    "Error",
}

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

// Message is one of Welcome, Waiting, State, Hand, Action, GameOver and
// Error.
type Message interface {
	Tag() Tag
}

// Welcome assigns the seat, once per connection.
type Welcome struct {
	Seat int
}

// Waiting reports which seats are connected while the table fills up, one
// bit per seat.
type Waiting struct {
	Connected uint8
}

// Count is the number of connected seats.
func (w Waiting) Count() int {
	count := 0
	for seat := 0; seat < consts.Seats; seat++ {
		if w.Connected&(1<<seat) != 0 {
			count++
		}
	}
	return count
}

// State is the public part of the table, sent to every seat before each turn.
type State struct {
	Current    int
	HandSizes  [consts.Seats]int
	Direction  int
	ActiveCard card.Card
	// LastAction is the action applied on the previous turn, nil before the
	// first one.
	LastAction *Action
}

// Hand is the full hand of one seat, sent to that seat only.
type Hand struct {
	Seat  int
	Cards []card.Card
}

type ActionKind uint8

const (
	PlayCard ActionKind = iota
	DrawCard
	Skip
)

var actionKindNames = map[ActionKind]string{
	PlayCard: "PlayCard",
	DrawCard: "DrawCard",
	Skip:     "Skip",
}

func (k ActionKind) Valid() bool {
	return k <= Skip
}

func (k ActionKind) String() string {
	if name, ok := actionKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ActionKind(%d)", uint8(k))
}

// Action is a seat's intent. CardIndex refers to the server's copy of the
// hand; ChosenColor only matters for wilds. Kind and ChosenColor are carried
// unchecked so the server can answer with a validation error.
type Action struct {
	Kind        ActionKind
	Seat        int
	CardIndex   int
	ChosenColor color.Color
}

type GameOver struct {
	Winner int
}

type Error struct {
	Code consts.ErrorCode
}

func (Welcome) Tag() Tag  { return TagWelcome }
func (Waiting) Tag() Tag  { return TagWaiting }
func (State) Tag() Tag    { return TagState }
func (Hand) Tag() Tag     { return TagHand }
func (Action) Tag() Tag   { return TagAction }
func (GameOver) Tag() Tag { return TagGameOver }
func (Error) Tag() Tag    { return TagError }
