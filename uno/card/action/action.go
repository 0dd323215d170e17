package action

import "fmt"

// Action is one rule consequence of playing a card. Effects are resolved by
// walking a card kind's actions in order.
type Action interface {
	String() string
}

// DrawCards makes the next seat draw Amount cards.
type DrawCards struct {
	Amount int
}

func (a DrawCards) String() string {
	return fmt.Sprintf("draw %d", a.Amount)
}

type ReverseTurns struct{}

func (ReverseTurns) String() string {
	return "reverse"
}

// SkipTurn adds one step to the turn advance.
type SkipTurn struct{}

func (SkipTurn) String() string {
	return "skip"
}

type PickColor struct{}

func (PickColor) String() string {
	return "pick color"
}
