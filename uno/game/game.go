package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

var (
	ErrAlreadyInitialized = errors.New("game already initialized")
	ErrNotInitialized     = errors.New("game not initialized")
	ErrEmptyDeck          = errors.New("empty deck")
	ErrInvalidPlay        = errors.New("invalid play")
	ErrInvalidSeat        = errors.New("invalid seat")
	ErrColorNotPending    = errors.New("no color choice pending")
	ErrColorPending       = errors.New("color choice pending")
	ErrInvalidColor       = errors.New("invalid color")
	ErrInvalidLayout      = errors.New("invalid layout")
	ErrBrokenDeck         = errors.New("cards on the table are not one deck")
)

// Engine owns the draw pile, the discard pile, the four hands and the turn
// order of one game. It is not safe for concurrent use; the turn controller
// is its only caller.
type Engine struct {
	rng          *rand.Rand
	drawPile     *Pile
	discardPile  *Pile
	hands        [consts.Seats]*Hand
	turns        *Cycler
	initialized  bool
	colorPending bool
}

// Effect is what resolving a played card did to the table.
type Effect struct {
	Kind       card.Kind
	Reversed   bool
	DrawSeat   int
	Drawn      []card.Card
	Steps      int
	NextPlayer int
}

func NewEngine(rng *rand.Rand) *Engine {
	e := &Engine{rng: rng}
	e.reset()
	return e
}

func (e *Engine) reset() {
	e.drawPile = NewPile()
	e.discardPile = NewPile()
	for seat := range e.hands {
		e.hands[seat] = NewHand()
	}
	e.turns = NewCycler(consts.Seats)
	e.colorPending = false
}

// Initialize shuffles a fresh deck, deals seven cards to every seat and
// flips the first active card. A wild is never the opening card; it goes to
// the bottom of the draw pile and the next card is flipped.
func (e *Engine) Initialize() error {
	if e.initialized {
		return ErrAlreadyInitialized
	}
	e.reset()

	deck := StandardDeck()
	shuffleCards(deck, e.rng)
	e.drawPile.Push(deck...)

	for i := 0; i < consts.StartingHand; i++ {
		for _, hand := range e.hands {
			c, _ := e.drawPile.Pop()
			hand.AddCards(c)
		}
	}

	for attempts := e.drawPile.Len(); attempts > 0; attempts-- {
		firstCard, _ := e.drawPile.Pop()
		if !firstCard.Kind().Wild() {
			e.discardPile.Push(firstCard)
			e.initialized = true
			return nil
		}
		e.drawPile.PushBottom(firstCard)
	}
	return ErrEmptyDeck
}

// Teardown drops every pile and hand so the engine can be initialized again.
func (e *Engine) Teardown() {
	e.reset()
	e.initialized = false
}

func (e *Engine) Initialized() bool {
	return e.initialized
}

// Draw moves the top of the draw pile into the seat's hand, refilling the
// draw pile from the discard pile first when it is empty.
func (e *Engine) Draw(seat int) (card.Card, error) {
	if err := e.checkSeat(seat); err != nil {
		return card.Card{}, err
	}
	if e.drawPile.Len() == 0 {
		if err := e.refill(); err != nil {
			return card.Card{}, err
		}
	}
	drawn, _ := e.drawPile.Pop()
	e.hands[seat].AddCards(drawn)
	return drawn, nil
}

// DrawN draws amount cards for seat, stopping at the first failure.
func (e *Engine) DrawN(seat, amount int) ([]card.Card, error) {
	drawn := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		c, err := e.Draw(seat)
		if err != nil {
			return drawn, err
		}
		drawn = append(drawn, c)
	}
	return drawn, nil
}

// refill keeps the active card on the discard pile and shuffles the rest,
// returned to their printed colours, into the draw pile.
func (e *Engine) refill() error {
	active, ok := e.discardPile.Pop()
	if !ok {
		return ErrEmptyDeck
	}
	rest := e.discardPile.Cards()
	if len(rest) == 0 {
		e.discardPile.Push(active)
		return ErrEmptyDeck
	}
	for i := range rest {
		rest[i] = rest[i].Normalize()
	}
	shuffleCards(rest, e.rng)
	e.drawPile.Reset(rest...)
	e.discardPile.Reset(active)
	return nil
}

// CanPlay never fails: a bad seat or index is simply not playable.
func (e *Engine) CanPlay(seat, index int) bool {
	if e.checkSeat(seat) != nil {
		return false
	}
	candidate, ok := e.hands[seat].Card(index)
	if !ok {
		return false
	}
	active, ok := e.discardPile.Top()
	if !ok {
		return false
	}
	return Playable(candidate, active)
}

// Play moves the card at index from the current seat's hand onto the
// discard pile. It does not advance the turn. After a wild the engine waits
// for SetActiveColor.
func (e *Engine) Play(seat, index int) (card.Kind, error) {
	if err := e.checkSeat(seat); err != nil {
		return 0, err
	}
	if e.colorPending {
		return 0, ErrColorPending
	}
	if seat != e.turns.Current() {
		return 0, fmt.Errorf("%w: seat %d is not the current seat", ErrInvalidPlay, seat)
	}
	if !e.CanPlay(seat, index) {
		return 0, fmt.Errorf("%w: seat %d cannot play card %d", ErrInvalidPlay, seat, index)
	}
	played, _ := e.hands[seat].RemoveCard(index)
	e.discardPile.Push(played)
	kind := played.Kind()
	e.colorPending = kind.Wild()
	return kind, nil
}

// SetActiveColor recolours the wild that was just played.
func (e *Engine) SetActiveColor(c color.Color) error {
	if !e.colorPending {
		return ErrColorNotPending
	}
	if !c.CanChoose() {
		return fmt.Errorf("%w: %s", ErrInvalidColor, c.Name())
	}
	top, _ := e.discardPile.Top()
	top.Color = c
	e.discardPile.ReplaceTop(top)
	e.colorPending = false
	return nil
}

func (e *Engine) ColorPending() bool {
	return e.colorPending
}

// PerformCardActions resolves the effect of a card of the given kind just
// played by the current seat and advances the turn past every skipped seat.
func (e *Engine) PerformCardActions(kind card.Kind) (Effect, error) {
	effect := Effect{Kind: kind, DrawSeat: -1, Steps: 1}
	for _, cardAction := range kind.Actions() {
		switch cardAction := cardAction.(type) {
		case action.PickColor:
			if e.colorPending {
				return effect, ErrColorPending
			}
		case action.ReverseTurns:
			e.ReverseDirection()
			effect.Reversed = true
		case action.DrawCards:
			effect.DrawSeat = e.NextSeat(1)
			drawn, err := e.DrawN(effect.DrawSeat, cardAction.Amount)
			effect.Drawn = drawn
			if err != nil {
				return effect, err
			}
		case action.SkipTurn:
			effect.Steps++
		}
	}
	effect.NextPlayer = e.AdvanceTurn(effect.Steps)
	return effect, nil
}

// AdvanceTurn moves the current seat steps places in the current direction.
func (e *Engine) AdvanceTurn(steps int) int {
	return e.turns.Advance(steps)
}

func (e *Engine) ReverseDirection() {
	e.turns.Reverse()
}

// NextSeat peeks at the seat steps places ahead.
func (e *Engine) NextSeat(steps int) int {
	return e.turns.Peek(steps)
}

func (e *Engine) Current() int {
	return e.turns.Current()
}

// Direction is +1 for clockwise and -1 for counter-clockwise.
func (e *Engine) Direction() int {
	return e.turns.Direction()
}

func (e *Engine) ActiveCard() card.Card {
	top, _ := e.discardPile.Top()
	return top
}

func (e *Engine) Hand(seat int) []card.Card {
	if e.checkSeat(seat) != nil {
		return nil
	}
	return e.hands[seat].Cards()
}

func (e *Engine) Card(seat, index int) (card.Card, bool) {
	if e.checkSeat(seat) != nil {
		return card.Card{}, false
	}
	return e.hands[seat].Card(index)
}

func (e *Engine) HandSize(seat int) int {
	if e.checkSeat(seat) != nil {
		return 0
	}
	return e.hands[seat].Size()
}

// Won reports whether seat has played its last card.
func (e *Engine) Won(seat int) bool {
	return e.checkSeat(seat) == nil && e.hands[seat].Empty()
}

func (e *Engine) HandSizes() [consts.Seats]int {
	var sizes [consts.Seats]int
	for seat, hand := range e.hands {
		sizes[seat] = hand.Size()
	}
	return sizes
}

func (e *Engine) DrawPileSize() int {
	return e.drawPile.Len()
}

func (e *Engine) DiscardPileSize() int {
	return e.discardPile.Len()
}

// Count is the number of cards on the table. It is DeckSize for every
// reachable state.
func (e *Engine) Count() int {
	total := e.drawPile.Len() + e.discardPile.Len()
	for _, hand := range e.hands {
		total += hand.Size()
	}
	return total
}

// AllCards lists every card on the table: draw pile, discard pile, then the
// hands in seat order.
func (e *Engine) AllCards() []card.Card {
	cards := make([]card.Card, 0, consts.DeckSize)
	cards = append(cards, e.drawPile.Cards()...)
	cards = append(cards, e.discardPile.Cards()...)
	for _, hand := range e.hands {
		cards = append(cards, hand.Cards()...)
	}
	return cards
}

// CheckDeck reports an error unless the table holds exactly one standard
// deck. Wilds count whatever colour they were given.
func (e *Engine) CheckDeck() error {
	cards := e.AllCards()
	for i, c := range cards {
		cards[i] = c.Normalize()
	}
	if len(cards) != consts.DeckSize || !sameComposition(cards, StandardDeck()) {
		return fmt.Errorf("%w: %d cards on the table", ErrBrokenDeck, len(cards))
	}
	return nil
}

func (e *Engine) checkSeat(seat int) error {
	if !e.initialized {
		return ErrNotInitialized
	}
	if seat < 0 || seat >= consts.Seats {
		return fmt.Errorf("%w: %d", ErrInvalidSeat, seat)
	}
	return nil
}
