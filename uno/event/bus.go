package event

// Bus holds the emitters of one game. Every game owns its own bus; emitting
// happens on the turn controller's goroutine only.
type Bus struct {
	GameStarted   *Emitter[GameStartedPayload]
	CardPlayed    *Emitter[CardPlayedPayload]
	ColorPicked   *Emitter[ColorPickedPayload]
	CardsDrawn    *Emitter[CardsDrawnPayload]
	TurnsReversed *Emitter[TurnsReversedPayload]
	PlayerPassed  *Emitter[PlayerPassedPayload]
	TurnRejected  *Emitter[TurnRejectedPayload]
	GameOver      *Emitter[GameOverPayload]
}

func NewBus() *Bus {
	return &Bus{
		GameStarted:   &Emitter[GameStartedPayload]{},
		CardPlayed:    &Emitter[CardPlayedPayload]{},
		ColorPicked:   &Emitter[ColorPickedPayload]{},
		CardsDrawn:    &Emitter[CardsDrawnPayload]{},
		TurnsReversed: &Emitter[TurnsReversedPayload]{},
		PlayerPassed:  &Emitter[PlayerPassedPayload]{},
		TurnRejected:  &Emitter[TurnRejectedPayload]{},
		GameOver:      &Emitter[GameOverPayload]{},
	}
}

// Listener receives every event of a game.
type Listener interface {
	GameStartedListener
	CardPlayedListener
	ColorPickedListener
	CardsDrawnListener
	TurnsReversedListener
	PlayerPassedListener
	TurnRejectedListener
	GameOverListener
}

func (b *Bus) Subscribe(listener Listener) {
	b.GameStarted.On(listener.OnGameStarted)
	b.CardPlayed.On(listener.OnCardPlayed)
	b.ColorPicked.On(listener.OnColorPicked)
	b.CardsDrawn.On(listener.OnCardsDrawn)
	b.TurnsReversed.On(listener.OnTurnsReversed)
	b.PlayerPassed.On(listener.OnPlayerPassed)
	b.TurnRejected.On(listener.OnTurnRejected)
	b.GameOver.On(listener.OnGameOver)
}
