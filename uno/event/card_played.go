package event

import "github.com/ratel-online/uno/uno/card"

type CardPlayedPayload struct {
	Seat int
	Card card.Card
}

type CardPlayedListener interface {
	OnCardPlayed(CardPlayedPayload)
}
