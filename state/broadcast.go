package state

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/protocol"
)

type broadcast struct{}

// Next sends the public state to every seat, then each seat its own hand.
func (*broadcast) Next(turn *Turn) (consts.StateID, error) {
	engine := turn.Engine
	state := protocol.State{
		Current:    engine.Current(),
		HandSizes:  engine.HandSizes(),
		Direction:  engine.Direction(),
		ActiveCard: engine.ActiveCard(),
		LastAction: turn.LastAction,
	}
	if err := turn.Table.Broadcast(state); err != nil {
		return 0, err
	}
	for _, player := range turn.Table.Players() {
		hand := protocol.Hand{Seat: player.Seat, Cards: engine.Hand(player.Seat)}
		if err := player.Write(hand); err != nil {
			return 0, err
		}
	}
	return consts.StateAwaitAction, nil
}
