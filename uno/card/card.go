package card

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card/color"
)

var ErrInvalidCard = errors.New("invalid card")

// Card is fungible by colour and rank. A played wild keeps its rank and takes
// the chosen colour while it is the active card.
type Card struct {
	Color color.Color
	Rank  Rank
}

func New(c color.Color, r Rank) Card {
	return Card{Color: c, Rank: r}
}

// Parse reads the compact "<color> <rank>" form, e.g. "red 7", "blue Skip",
// "black wild", "black wild4" (or "black 4").
func Parse(text string) (Card, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return Card{}, fmt.Errorf("%w: '%s'", ErrInvalidCard, text)
	}
	c, err := color.ByName(fields[0])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %v", ErrInvalidCard, err)
	}
	r, err := rankByName(fields[1], c)
	if err != nil {
		return Card{}, err
	}
	parsed := Card{Color: c, Rank: r}
	if !parsed.InDeck() {
		return Card{}, fmt.Errorf("%w: '%s' is not in the deck", ErrInvalidCard, text)
	}
	return parsed, nil
}

func MustParse(text string) Card {
	c, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Kind() Kind {
	return c.Rank.Kind()
}

// Valid reports whether both fields hold known values.
func (c Card) Valid() bool {
	return c.Color.Valid() && c.Rank.Valid()
}

// InDeck reports whether the card exists in the standard deck as printed:
// wilds are black and everything else is coloured.
func (c Card) InDeck() bool {
	if !c.Valid() {
		return false
	}
	if c.Kind().Wild() {
		return c.Color == color.Black
	}
	return c.Color != color.Black
}

// Normalize returns the card as printed, undoing a colour chosen for a wild.
func (c Card) Normalize() Card {
	if c.Kind().Wild() {
		c.Color = color.Black
	}
	return c
}

// Label is the compact text form accepted by Parse.
func (c Card) Label() string {
	return fmt.Sprintf("%s %s", c.Color.Name(), c.Rank.Name())
}

func (c Card) String() string {
	switch c.Kind() {
	case KindSkip:
		return c.Color.Paint("(/)") + fmt.Sprintf("(%s)", c.Color.Name())
	case KindReverse:
		return c.Color.Paint("<=>") + fmt.Sprintf("(%s)", c.Color.Name())
	case KindDrawTwo:
		return c.Color.Paint("+2!") + fmt.Sprintf("(%s)", c.Color.Name())
	case KindWild:
		return c.Color.Paint("(*)") + colorSuffix(c.Color)
	case KindWildDrawFour:
		return c.Color.Paint("+4!") + colorSuffix(c.Color)
	default:
		return c.Color.Paintf("[%d]", c.Rank) + fmt.Sprintf("(%s)", c.Color.Name())
	}
}

func colorSuffix(c color.Color) string {
	if c == color.Black {
		return ""
	}
	return fmt.Sprintf("(%s)", c.Name())
}
