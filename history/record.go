package history

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/event"
)

// Record is one game event in the form the sinks persist.
type Record struct {
	Session       uuid.UUID              `json:"session"`
	ActionIndex   int                    `json:"action_index"`
	Seat          int                    `json:"seat"`
	ActionType    string                 `json:"action_type"`
	ActionPayload map[string]interface{} `json:"action_payload"`
	Timestamp     int64                  `json:"timestamp"`
}

// Publisher persists records. A failing publisher never stops the game.
type Publisher interface {
	Publish(ctx context.Context, record Record) error
}

// Recorder turns game events into numbered records of one session and hands
// them to every publisher.
type Recorder struct {
	mu         sync.Mutex
	session    uuid.UUID
	index      int
	now        func() time.Time
	publishers []Publisher
}

func NewSession() uuid.UUID {
	session, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return session
}

func NewRecorder(session uuid.UUID, publishers ...Publisher) *Recorder {
	return &Recorder{session: session, now: time.Now, publishers: publishers}
}

func (r *Recorder) Session() uuid.UUID {
	return r.session
}

func (r *Recorder) record(seat int, actionType string, payload map[string]interface{}) {
	r.mu.Lock()
	record := Record{
		Session:       r.session,
		ActionIndex:   r.index,
		Seat:          seat,
		ActionType:    actionType,
		ActionPayload: payload,
		Timestamp:     r.now().UnixMilli(),
	}
	r.index++
	r.mu.Unlock()

	for _, publisher := range r.publishers {
		if err := publisher.Publish(context.Background(), record); err != nil {
			log.Errorf("history: publish %s #%d: %v\n", actionType, record.ActionIndex, err)
		}
	}
}

func (r *Recorder) OnGameStarted(payload event.GameStartedPayload) {
	r.record(-1, "game_started", map[string]interface{}{"card": payload.Card.Label()})
}

func (r *Recorder) OnCardPlayed(payload event.CardPlayedPayload) {
	r.record(payload.Seat, "card_played", map[string]interface{}{"card": payload.Card.Label()})
}

func (r *Recorder) OnColorPicked(payload event.ColorPickedPayload) {
	r.record(payload.Seat, "color_picked", map[string]interface{}{"color": payload.Color.Name()})
}

func (r *Recorder) OnCardsDrawn(payload event.CardsDrawnPayload) {
	r.record(payload.Seat, "cards_drawn", map[string]interface{}{
		"cards":  labels(payload.Cards),
		"forced": payload.Forced,
	})
}

func (r *Recorder) OnTurnsReversed(payload event.TurnsReversedPayload) {
	r.record(payload.Seat, "turns_reversed", map[string]interface{}{"direction": payload.Direction})
}

func (r *Recorder) OnPlayerPassed(payload event.PlayerPassedPayload) {
	r.record(payload.Seat, "player_passed", map[string]interface{}{})
}

func (r *Recorder) OnTurnRejected(payload event.TurnRejectedPayload) {
	r.record(payload.Seat, "turn_rejected", map[string]interface{}{"code": int(payload.Code)})
}

func (r *Recorder) OnGameOver(payload event.GameOverPayload) {
	r.record(payload.Winner, "game_over", map[string]interface{}{"winner": payload.Winner})
}

func labels(cards []card.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Label())
	}
	return out
}
