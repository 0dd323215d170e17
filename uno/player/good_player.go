package player

import (
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

type goodPlayer struct {
	name string
}

func NewGoodPlayer(name string) Strategy {
	return goodPlayer{name: name}
}

func (p goodPlayer) Name() string {
	return p.name
}

// PickColor names the colour held most often, ignoring wilds. Ties go to
// the earlier colour in menu order.
func (p goodPlayer) PickColor(state game.State) color.Color {
	colorCounts := make(map[color.Color]int)
	for _, handCard := range state.Hand {
		if handCard.Kind().Wild() {
			continue
		}
		colorCounts[handCard.Color]++
	}

	mostFrequentColor := color.Blue
	mostFrequentColorAmount := 0
	for _, availableColor := range color.Chooseable {
		if amount := colorCounts[availableColor]; amount > mostFrequentColorAmount {
			mostFrequentColorAmount = amount
			mostFrequentColor = availableColor
		}
	}
	return mostFrequentColor
}

// Play picks the card that leaves the most of the hand playable after it.
func (p goodPlayer) Play(playableIndexes []int, state game.State) int {
	mostDiscardableCardIndex := playableIndexes[0]
	maxSpareCards := 0

	for _, cardIndex := range playableIndexes {
		playableCard := state.Hand[cardIndex]
		spareCards := 0
		for handIndex, handCard := range state.Hand {
			if handIndex != cardIndex && game.Playable(handCard, playableCard) {
				spareCards++
			}
		}
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			mostDiscardableCardIndex = cardIndex
		}
	}

	return mostDiscardableCardIndex
}
