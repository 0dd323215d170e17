package event

import "github.com/ratel-online/uno/consts"

// TurnRejectedPayload is emitted when an action fails validation and the
// seat is asked again.
type TurnRejectedPayload struct {
	Seat int
	Code consts.ErrorCode
}

type TurnRejectedListener interface {
	OnTurnRejected(TurnRejectedPayload)
}
