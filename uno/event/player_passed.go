package event

type PlayerPassedPayload struct {
	Seat int
}

type PlayerPassedListener interface {
	OnPlayerPassed(PlayerPassedPayload)
}
