package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Hand keeps cards in arrival order so an index stays meaningful between two
// snapshots.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards ...card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Card(index int) (card.Card, bool) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, false
	}
	return h.cards[index], true
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// RemoveCard takes out the card at index, keeping the order of the rest.
func (h *Hand) RemoveCard(index int) (card.Card, bool) {
	removed, ok := h.Card(index)
	if !ok {
		return card.Card{}, false
	}
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed, true
}

func (h *Hand) Size() int {
	return len(h.cards)
}
