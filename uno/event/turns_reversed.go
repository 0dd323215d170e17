package event

type TurnsReversedPayload struct {
	Seat      int
	Direction int
}

type TurnsReversedListener interface {
	OnTurnsReversed(TurnsReversedPayload)
}
