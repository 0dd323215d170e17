package consts

import (
	"time"
)

type StateID int

// Turn controller states.
const (
	_ StateID = iota
	StateBroadcast
	StateAwaitAction
	StateValidate
	StateApply
	StateCheckWin
	StateGameOver
)

var StateNames = map[StateID]string{
	StateBroadcast:   "BROADCAST",
	StateAwaitAction: "AWAIT_ACTION",
	StateValidate:    "VALIDATE",
	StateApply:       "APPLY",
	StateCheckWin:    "CHECK_WIN",
	StateGameOver:    "GAME_OVER",
}

func (s StateID) String() string {
	if name, ok := StateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

const (
	Seats         = 4
	StartingHand  = 7
	DeckSize      = 108
	MaxPacketSize = 1024

	ClientTick     = 16 * time.Millisecond
	WelcomeTimeout = 10 * time.Second
	RedisTimeout   = 5 * time.Second

	DefaultAddr      = "127.0.0.1:5050"
	DefaultQueueName = "uno_actions"

	TransportTCP       = "tcp"
	TransportWebsocket = "ws"
	WebsocketPath      = "/ws"

	ModeServer = "server"
	ModeClient = "client"
	ModeBot    = "bot"
)

// ErrorCode is the wire value of an Error message.
type ErrorCode uint8

const (
	CodeInvalidAction ErrorCode = iota
	CodeNotYourTurn
	CodeInvalidCardIndex
	CodeInvalidColorChoice
)

func (c ErrorCode) Valid() bool {
	_, ok := ValidationErrors[c]
	return ok
}

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

// WireCode reports the protocol error code for validation errors.
func (e Error) WireCode() ErrorCode {
	return ErrorCode(e.Code)
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsInvalidAction      = NewErr(int(CodeInvalidAction), false, "Invalid action. ")
	ErrorsNotYourTurn        = NewErr(int(CodeNotYourTurn), false, "Not your turn. ")
	ErrorsInvalidCardIndex   = NewErr(int(CodeInvalidCardIndex), false, "Invalid card index. ")
	ErrorsInvalidColorChoice = NewErr(int(CodeInvalidColorChoice), false, "Invalid color choice. ")

	ErrorsTimeout       = NewErr(102, true, "Timeout. ")
	ErrorsDisconnected  = NewErr(103, true, "Disconnected. ")
	ErrorsSeatsInvalid  = NewErr(104, true, "Seats invalid. ")
	ErrorsUnexpectedMsg = NewErr(105, true, "Unexpected message. ")

	ValidationErrors = map[ErrorCode]Error{
		CodeInvalidAction:      ErrorsInvalidAction,
		CodeNotYourTurn:        ErrorsNotYourTurn,
		CodeInvalidCardIndex:   ErrorsInvalidCardIndex,
		CodeInvalidColorChoice: ErrorsInvalidColorChoice,
	}
)
