package state

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/protocol"
	"github.com/ratel-online/uno/uno/event"
)

type checkWin struct{}

func (*checkWin) Next(turn *Turn) (consts.StateID, error) {
	if !turn.Engine.Won(turn.Actor) {
		return consts.StateBroadcast, nil
	}
	turn.Winner = turn.Actor
	if err := turn.Table.Broadcast(protocol.GameOver{Winner: turn.Winner}); err != nil {
		return 0, err
	}
	turn.Bus.GameOver.Emit(event.GameOverPayload{Winner: turn.Winner})
	log.Infof("seat %d wins\n", turn.Winner)
	return consts.StateGameOver, nil
}
