package event

import "github.com/ratel-online/uno/uno/card/color"

type ColorPickedPayload struct {
	Seat  int
	Color color.Color
}

type ColorPickedListener interface {
	OnColorPicked(ColorPickedPayload)
}
