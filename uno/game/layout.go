package game

import (
	"fmt"
	"math/rand"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
)

// Layout places every card of a deck explicitly. It is used to start a game
// from a known position.
type Layout struct {
	Hands [consts.Seats][]card.Card
	// Discard is listed bottom first; the last card is active and must not
	// be an uncoloured wild.
	Discard []card.Card
	// Draw is listed bottom first. When nil it takes every card not placed
	// elsewhere, shuffled.
	Draw      []card.Card
	Current   int
	Direction int
}

// Arrange builds an initialized engine from a layout. The layout must hold
// exactly one standard deck.
func Arrange(layout Layout, rng *rand.Rand) (*Engine, error) {
	if len(layout.Discard) == 0 {
		return nil, fmt.Errorf("%w: empty discard pile", ErrInvalidLayout)
	}
	if layout.Current < 0 || layout.Current >= consts.Seats {
		return nil, fmt.Errorf("%w: current seat %d", ErrInvalidLayout, layout.Current)
	}
	active := layout.Discard[len(layout.Discard)-1]
	if active.Kind().Wild() && !active.Color.CanChoose() {
		return nil, fmt.Errorf("%w: active wild without a color", ErrInvalidLayout)
	}

	placed := append([]card.Card{}, layout.Discard...)
	for _, hand := range layout.Hands {
		placed = append(placed, hand...)
	}
	drawCards := layout.Draw
	if drawCards == nil {
		rest, err := Remaining(placed...)
		if err != nil {
			return nil, err
		}
		shuffleCards(rest, rng)
		drawCards = rest
	} else if !sameComposition(append(placed, drawCards...), StandardDeck()) {
		return nil, fmt.Errorf("%w: cards do not add up to one deck", ErrInvalidLayout)
	}

	e := NewEngine(rng)
	e.drawPile.Push(drawCards...)
	e.discardPile.Push(layout.Discard...)
	for seat, hand := range layout.Hands {
		e.hands[seat].AddCards(hand...)
	}
	if layout.Direction < 0 {
		e.turns.Reverse()
	}
	e.turns.current = layout.Current
	e.initialized = true
	return e, nil
}

// Remaining returns the standard deck minus the given cards.
func Remaining(used ...card.Card) ([]card.Card, error) {
	counts := Composition(used)
	rest := make([]card.Card, 0, consts.DeckSize)
	for _, c := range StandardDeck() {
		if counts[c] > 0 {
			counts[c]--
			continue
		}
		rest = append(rest, c)
	}
	for c, n := range counts {
		if n > 0 {
			return nil, fmt.Errorf("%w: too many '%s'", ErrInvalidLayout, c.Label())
		}
	}
	return rest, nil
}

func sameComposition(a, b []card.Card) bool {
	countsA, countsB := Composition(a), Composition(b)
	if len(countsA) != len(countsB) {
		return false
	}
	for c, n := range countsA {
		if countsB[c] != n {
			return false
		}
	}
	return true
}
