package card

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

type Rank uint8

const (
	Zero Rank = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

func (r Rank) Valid() bool {
	return r <= WildDrawFour
}

// Kind classifies the rank. Every rule that depends on what a card does goes
// through here.
func (r Rank) Kind() Kind {
	switch r {
	case Skip:
		return KindSkip
	case Reverse:
		return KindReverse
	case DrawTwo:
		return KindDrawTwo
	case Wild:
		return KindWild
	case WildDrawFour:
		return KindWildDrawFour
	default:
		return KindNumber
	}
}

func (r Rank) Name() string {
	switch r {
	case Skip:
		return "Skip"
	case Reverse:
		return "Reverse"
	case DrawTwo:
		return "Draw2"
	case Wild:
		return "wild"
	case WildDrawFour:
		return "wild4"
	}
	if r <= Nine {
		return strconv.Itoa(int(r))
	}
	return fmt.Sprintf("rank(%d)", uint8(r))
}

// rankByName reads a rank. A bare "4" on a black card is the WildDrawFour
// shorthand; on a coloured card it is the number.
func rankByName(name string, c color.Color) (Rank, error) {
	if name == "4" && c == color.Black {
		return WildDrawFour, nil
	}
	switch strings.ToLower(name) {
	case "skip":
		return Skip, nil
	case "reverse":
		return Reverse, nil
	case "draw2", "drawtwo", "+2":
		return DrawTwo, nil
	case "wild":
		return Wild, nil
	case "wild4", "wilddrawfour", "+4":
		return WildDrawFour, nil
	}
	n, err := strconv.Atoi(name)
	if err != nil || n < 0 || n > 9 {
		return 0, fmt.Errorf("%w: unknown rank '%s'", ErrInvalidCard, name)
	}
	return Rank(n), nil
}

type Kind uint8

const (
	KindNumber Kind = iota
	KindSkip
	KindReverse
	KindDrawTwo
	KindWild
	KindWildDrawFour
)

var kindNames = map[Kind]string{
	KindNumber:       "Number",
	KindSkip:         "Skip",
	KindReverse:      "Reverse",
	KindDrawTwo:      "DrawTwo",
	KindWild:         "Wild",
	KindWildDrawFour: "WildDrawFour",
}

func (k Kind) String() string {
	return kindNames[k]
}

// Wild reports whether the kind is always playable and needs a chosen colour.
func (k Kind) Wild() bool {
	return k == KindWild || k == KindWildDrawFour
}

// Actions lists the rule consequences of playing a card of this kind.
func (k Kind) Actions() []action.Action {
	switch k {
	case KindSkip:
		return []action.Action{action.SkipTurn{}}
	case KindReverse:
		return []action.Action{action.ReverseTurns{}}
	case KindDrawTwo:
		return []action.Action{action.DrawCards{Amount: 2}, action.SkipTurn{}}
	case KindWild:
		return []action.Action{action.PickColor{}}
	case KindWildDrawFour:
		return []action.Action{action.PickColor{}, action.DrawCards{Amount: 4}, action.SkipTurn{}}
	default:
		return []action.Action{}
	}
}
