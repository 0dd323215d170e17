package state

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/protocol"
)

type awaitAction struct{}

// Next blocks on the current seat's connection only.
func (*awaitAction) Next(turn *Turn) (consts.StateID, error) {
	player := turn.currentPlayer()
	msg, err := player.Read()
	if err != nil {
		if protocol.IsProtocolError(err) {
			log.Errorf("%s sent a bad frame: %v\n", player, err)
		}
		return 0, err
	}
	turn.Pending = msg
	return consts.StateValidate, nil
}
