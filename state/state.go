package state

import (
	"context"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/database"
	"github.com/ratel-online/uno/protocol"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
)

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateBroadcast, &broadcast{})
	register(consts.StateAwaitAction, &awaitAction{})
	register(consts.StateValidate, &validate{})
	register(consts.StateApply, &apply{})
	register(consts.StateCheckWin, &checkWin{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

// State is one step of the turn controller. Next does the work of the step
// and names the step that follows.
type State interface {
	Next(turn *Turn) (consts.StateID, error)
}

func Root() consts.StateID {
	return consts.StateBroadcast
}

// Turn is everything the controller carries from one step to the next.
type Turn struct {
	Engine *game.Engine
	Table  *database.Table
	Bus    *event.Bus

	// Pending is the message read in AWAIT_ACTION, Action the same message
	// once it passed VALIDATE.
	Pending protocol.Message
	Action  protocol.Action
	// Actor is the seat whose action was applied last.
	Actor      int
	LastAction *protocol.Action
	Winner     int
	// Trace lists every state entered, in order.
	Trace []consts.StateID

	ctx context.Context
}

func NewTurn(table *database.Table, engine *game.Engine, bus *event.Bus) *Turn {
	return &Turn{
		Engine: engine,
		Table:  table,
		Bus:    bus,
		Actor:  -1,
		Winner: -1,
	}
}

// Run plays one game on a full table and returns the winning seat.
func Run(ctx context.Context, table *database.Table, engine *game.Engine, bus *event.Bus) (int, error) {
	turn := NewTurn(table, engine, bus)
	err := turn.Run(ctx)
	return turn.Winner, err
}

// Run drives the states from BROADCAST until GAME_OVER. Any error ends the
// session: every seat is disconnected and the error is returned. Cancelling
// ctx closes the connections, which unblocks a pending read.
func (t *Turn) Run(ctx context.Context) error {
	defer t.Table.CloseAll()
	if !t.Table.Full() {
		return consts.ErrorsSeatsInvalid
	}
	if !t.Engine.Initialized() {
		if err := t.Engine.Initialize(); err != nil {
			log.Error(err)
			return err
		}
	}
	t.ctx = ctx

	done := make(chan struct{})
	defer close(done)
	async.Async(func() {
		select {
		case <-ctx.Done():
			t.Table.CloseAll()
		case <-done:
		}
	})

	t.Bus.GameStarted.Emit(event.GameStartedPayload{Card: t.Engine.ActiveCard()})
	log.Infof("game started, first card %s\n", t.Engine.ActiveCard().Label())

	stateID := Root()
	for {
		t.Trace = append(t.Trace, stateID)
		if stateID == consts.StateGameOver {
			return nil
		}
		next, err := states[stateID].Next(t)
		if err != nil {
			if ctx.Err() != nil {
				err = ctx.Err()
			}
			log.Errorf("%s: %v\n", stateID, err)
			return err
		}
		stateID = next
	}
}

func (t *Turn) currentPlayer() *database.Player {
	return t.Table.Player(t.Engine.Current())
}
