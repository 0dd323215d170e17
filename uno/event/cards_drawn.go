package event

import "github.com/ratel-online/uno/uno/card"

// CardsDrawnPayload is emitted for a voluntary draw and for the cards a
// DrawTwo or WildDrawFour forces on the next seat.
type CardsDrawnPayload struct {
	Seat   int
	Cards  []card.Card
	Forced bool
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}
