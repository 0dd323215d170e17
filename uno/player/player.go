package player

import (
	"github.com/ratel-online/uno/protocol"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// Strategy chooses a bot's move from what its seat can see.
type Strategy interface {
	Name() string
	// Play returns the hand index to play, one of playableIndexes.
	Play(playableIndexes []int, state game.State) int
	PickColor(state game.State) color.Color
}

// Decide turns a strategy's choice into the action to send: a playable card
// when there is one, otherwise a draw.
func Decide(strategy Strategy, state game.State) protocol.Action {
	playableIndexes := game.PlayableIndexes(state.Hand, state.LastPlayedCard)
	if len(playableIndexes) == 0 {
		return protocol.Action{Kind: protocol.DrawCard, Seat: state.Seat}
	}
	index := strategy.Play(playableIndexes, state)
	action := protocol.Action{Kind: protocol.PlayCard, Seat: state.Seat, CardIndex: index}
	if state.Hand[index].Kind().Wild() {
		rest := append(append([]card.Card{}, state.Hand[:index]...), state.Hand[index+1:]...)
		state.Hand = rest
		action.ChosenColor = strategy.PickColor(state)
	}
	return action
}
