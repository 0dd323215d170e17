package event

import "github.com/ratel-online/uno/uno/card"

type GameStartedPayload struct {
	Card card.Card
}

type GameStartedListener interface {
	OnGameStarted(GameStartedPayload)
}
