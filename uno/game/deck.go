package game

import (
	"math/rand"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// StandardDeck returns the 108 cards of a UNO deck, unshuffled.
func StandardDeck() []card.Card {
	cards := make([]card.Card, 0, consts.DeckSize)

	cards = append(cards, createBlackCards()...)
	cards = append(cards, createColorCards(color.Red)...)
	cards = append(cards, createColorCards(color.Yellow)...)
	cards = append(cards, createColorCards(color.Green)...)
	cards = append(cards, createColorCards(color.Blue)...)

	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	zeroCard := card.New(cardColor, card.Zero)
	skipCard := card.New(cardColor, card.Skip)
	reverseCard := card.New(cardColor, card.Reverse)
	drawTwoCard := card.New(cardColor, card.DrawTwo)

	cards := []card.Card{
		zeroCard,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	}

	for number := card.One; number <= card.Nine; number++ {
		numberCard := card.New(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	return cards
}

func createBlackCards() []card.Card {
	wildCard := card.New(color.Black, card.Wild)
	wildDrawFourCard := card.New(color.Black, card.WildDrawFour)

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}

// shuffleCards is a Fisher-Yates permutation driven by rng.
func shuffleCards(cards []card.Card, rng *rand.Rand) {
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}

// Composition counts normalised cards, for checking that a set of piles and
// hands still adds up to one deck.
func Composition(cards []card.Card) map[card.Card]int {
	counts := make(map[card.Card]int, 54)
	for _, c := range cards {
		counts[c.Normalize()]++
	}
	return counts
}
