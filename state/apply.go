package state

import (
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/protocol"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/event"
)

type apply struct{}

// Next performs a validated action and advances the turn. Engine errors here
// mean an invariant broke, so they end the session.
func (*apply) Next(turn *Turn) (consts.StateID, error) {
	action := turn.Action
	seat := action.Seat
	var err error
	switch action.Kind {
	case protocol.PlayCard:
		err = playCard(turn, action)
	case protocol.DrawCard:
		err = drawCard(turn, seat)
	case protocol.Skip:
		turn.Engine.AdvanceTurn(1)
		turn.Bus.PlayerPassed.Emit(event.PlayerPassedPayload{Seat: seat})
		log.Infof("seat %d passed\n", seat)
	default:
		err = fmt.Errorf("%w: action kind %s", consts.ErrorsUnexpectedMsg, action.Kind)
	}
	if err != nil {
		return 0, err
	}
	if err := turn.Engine.CheckDeck(); err != nil {
		return 0, err
	}
	turn.Actor = seat
	turn.LastAction = &action
	return consts.StateCheckWin, nil
}

func playCard(turn *Turn, action protocol.Action) error {
	engine := turn.Engine
	seat := action.Seat
	played, _ := engine.Card(seat, action.CardIndex)
	kind, err := engine.Play(seat, action.CardIndex)
	if err != nil {
		return err
	}
	turn.Bus.CardPlayed.Emit(event.CardPlayedPayload{Seat: seat, Card: played})
	if kind.Wild() {
		if err := engine.SetActiveColor(action.ChosenColor); err != nil {
			return err
		}
		turn.Bus.ColorPicked.Emit(event.ColorPickedPayload{Seat: seat, Color: action.ChosenColor})
	}

	effect, err := engine.PerformCardActions(kind)
	if effect.Reversed {
		turn.Bus.TurnsReversed.Emit(event.TurnsReversedPayload{Seat: seat, Direction: engine.Direction()})
	}
	if len(effect.Drawn) > 0 {
		turn.Bus.CardsDrawn.Emit(event.CardsDrawnPayload{Seat: effect.DrawSeat, Cards: effect.Drawn, Forced: true})
	}
	if err != nil {
		return err
	}
	log.Infof("seat %d played %s, seat %d is next\n", seat, describe(played, engine.ActiveCard()), effect.NextPlayer)
	return nil
}

func drawCard(turn *Turn, seat int) error {
	drawn, err := turn.Engine.Draw(seat)
	if err != nil {
		return err
	}
	turn.Engine.AdvanceTurn(1)
	turn.Bus.CardsDrawn.Emit(event.CardsDrawnPayload{Seat: seat, Cards: []card.Card{drawn}})
	log.Infof("seat %d drew a card\n", seat)
	return nil
}

func describe(played, active card.Card) string {
	if played.Kind().Wild() {
		return fmt.Sprintf("%s as %s", played.Label(), active.Color.Name())
	}
	return played.Label()
}
