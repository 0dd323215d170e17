package client

import (
	"errors"
	"os"

	"golang.org/x/term"
)

var ErrNotTerminal = errors.New("not a terminal")

// RawTerminal holds stdin in raw mode so single key presses reach the
// client unbuffered and unechoed.
type RawTerminal struct {
	fd    int
	state *term.State
}

func MakeRaw(f *os.File) (*RawTerminal, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &RawTerminal{fd: fd, state: state}, nil
}

func (t *RawTerminal) Restore() error {
	if t == nil || t.state == nil {
		return nil
	}
	return term.Restore(t.fd, t.state)
}
