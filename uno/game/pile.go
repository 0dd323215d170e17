package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Pile is a LIFO stack; the last element is the top.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 108)}
}

func (p *Pile) Push(cards ...card.Card) {
	p.cards = append(p.cards, cards...)
}

// PushBottom slides a card under the rest of the pile.
func (p *Pile) PushBottom(c card.Card) {
	p.cards = append([]card.Card{c}, p.cards...)
}

func (p *Pile) Pop() (card.Card, bool) {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}, false
	}
	top := p.cards[pileSize-1]
	p.cards = p.cards[:pileSize-1]
	return top, true
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) ReplaceTop(c card.Card) {
	p.cards[len(p.cards)-1] = c
}

func (p *Pile) Top() (card.Card, bool) {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}, false
	}
	return p.cards[pileSize-1], true
}

// Reset empties the pile and pushes cards.
func (p *Pile) Reset(cards ...card.Card) {
	p.cards = append(p.cards[:0], cards...)
}

func (p *Pile) Len() int {
	return len(p.cards)
}
