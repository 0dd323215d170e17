package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
)

// State is what one seat is allowed to know about the table.
type State struct {
	Seat            int
	Current         int
	Direction       int
	LastPlayedCard  card.Card
	HandSizes       [consts.Seats]int
	Hand            []card.Card
	DrawPileSize    int
	DiscardPileSize int
}

// Snapshot extracts the view of the table for seat.
func (e *Engine) Snapshot(seat int) State {
	return State{
		Seat:            seat,
		Current:         e.Current(),
		Direction:       e.Direction(),
		LastPlayedCard:  e.ActiveCard(),
		HandSizes:       e.HandSizes(),
		Hand:            e.Hand(seat),
		DrawPileSize:    e.DrawPileSize(),
		DiscardPileSize: e.DiscardPileSize(),
	}
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s", s.LastPlayedCard))

	var playerStatuses []string
	for seat, size := range s.HandSizes {
		playerStatus := fmt.Sprintf("seat %d (%d card(s))", seat, size)
		if seat == s.Current {
			playerStatus = "*" + playerStatus
		}
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))

	lines = append(lines, fmt.Sprintf("Your hand: %s", s.Hand))

	return strings.Join(lines, "\n")
}
