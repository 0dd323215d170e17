package state

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/protocol"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
)

type validate struct{}

// Next rejects a bad action back to its sender and waits for the same seat
// again without touching the game.
func (*validate) Next(turn *Turn) (consts.StateID, error) {
	player := turn.currentPlayer()
	action, rejection := Validate(turn.Engine, turn.Pending)
	if rejection != nil {
		log.Infof("%s: rejected %+v: %s\n", player, turn.Pending, rejection.Msg)
		if err := player.WriteError(*rejection); err != nil {
			return 0, err
		}
		turn.Bus.TurnRejected.Emit(event.TurnRejectedPayload{
			Seat: player.Seat,
			Code: rejection.WireCode(),
		})
		return consts.StateAwaitAction, nil
	}
	turn.Action = action
	return consts.StateApply, nil
}

// Validate checks msg as the current seat's action against the engine. It
// returns the validation error to send back, or nil.
func Validate(engine *game.Engine, msg protocol.Message) (protocol.Action, *consts.Error) {
	var action protocol.Action
	switch m := msg.(type) {
	case protocol.Action:
		action = m
	case *protocol.Action:
		action = *m
	default:
		return action, reject(consts.ErrorsInvalidAction)
	}
	seat := engine.Current()
	if action.Seat != seat {
		return action, reject(consts.ErrorsNotYourTurn)
	}
	switch action.Kind {
	case protocol.DrawCard, protocol.Skip:
		return action, nil
	case protocol.PlayCard:
	default:
		return action, reject(consts.ErrorsInvalidAction)
	}
	played, ok := engine.Card(seat, action.CardIndex)
	if !ok {
		return action, reject(consts.ErrorsInvalidCardIndex)
	}
	if !engine.CanPlay(seat, action.CardIndex) {
		return action, reject(consts.ErrorsInvalidAction)
	}
	if played.Kind().Wild() && !action.ChosenColor.CanChoose() {
		return action, reject(consts.ErrorsInvalidColorChoice)
	}
	return action, nil
}

func reject(err consts.Error) *consts.Error {
	return &err
}
