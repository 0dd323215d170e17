package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Playable reports whether candidateCard may go on top of lastPlayedCard:
// wilds always, otherwise a matching colour or a matching rank.
func Playable(candidateCard card.Card, lastPlayedCard card.Card) bool {
	if candidateCard.Kind().Wild() {
		return true
	}
	if candidateCard.Color == lastPlayedCard.Color {
		return true
	}
	return candidateCard.Rank == lastPlayedCard.Rank
}

// PlayableIndexes lists the positions in cards that are playable on top.
func PlayableIndexes(cards []card.Card, top card.Card) []int {
	var indexes []int
	for index, candidateCard := range cards {
		if Playable(candidateCard, top) {
			indexes = append(indexes, index)
		}
	}
	return indexes
}
