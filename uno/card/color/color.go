package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Color uint8

const (
	Black Color = iota
	Red
	Yellow
	Green
	Blue
)

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var palette = map[Color]colorStruct{
	Black:  {name: "black", colorFunction: color.New(color.FgHiWhite).SprintfFunc()},
	Red:    {name: "red", colorFunction: color.New(color.FgHiRed).SprintfFunc()},
	Yellow: {name: "yellow", colorFunction: color.New(color.FgHiYellow).SprintfFunc()},
	Green:  {name: "green", colorFunction: color.New(color.FgHiGreen).SprintfFunc()},
	Blue:   {name: "blue", colorFunction: color.New(color.FgHiCyan).SprintfFunc()},
}

var Stdout io.Writer = color.Output

// Chooseable lists the colours a wild card may be given, in menu order.
var Chooseable = []Color{Red, Green, Blue, Yellow}

func (c Color) Valid() bool {
	return c <= Blue
}

// CanChoose reports whether c may be picked for a wild card.
func (c Color) CanChoose() bool {
	return c >= Red && c <= Blue
}

func (c Color) Name() string {
	if p, ok := palette[c]; ok {
		return p.name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(text string, args ...interface{}) string {
	p, ok := palette[c]
	if !ok {
		return fmt.Sprintf(text, args...)
	}
	return p.colorFunction(text, args...)
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

func ByName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, p := range palette {
		if p.name == name {
			return c, nil
		}
	}
	return Black, fmt.Errorf("invalid color '%s'", name)
}
