package protocol

import (
	"errors"
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

var (
	// ErrMalformed is returned for a payload that does not decode to a
	// message. It ends the connection.
	ErrMalformed = errors.New("malformed payload")
	// ErrInvalidMessage is returned when a message cannot be encoded.
	ErrInvalidMessage = errors.New("invalid message")
)

// MaxHandSize bounds the cards in a Hand message: one whole deck.
const MaxHandSize = consts.DeckSize

const (
	directionClockwise        = 0
	directionCounterClockwise = 1
)

// Encode serializes msg into a payload, tag byte first.
func Encode(msg Message) ([]byte, error) {
	if msg == nil {
		return nil, fmt.Errorf("%w: nil message", ErrInvalidMessage)
	}
	e := &encoder{buf: make([]byte, 0, 16)}
	e.byte(uint8(msg.Tag()))
	switch m := msg.(type) {
	case Welcome:
		e.seat(m.Seat)
	case *Welcome:
		e.seat(m.Seat)
	case Waiting:
		e.byte(m.Connected)
	case *Waiting:
		e.byte(m.Connected)
	case State:
		e.state(m)
	case *State:
		e.state(*m)
	case Hand:
		e.hand(m)
	case *Hand:
		e.hand(*m)
	case Action:
		e.action(m)
	case *Action:
		e.action(*m)
	case GameOver:
		e.seat(m.Winner)
	case *GameOver:
		e.seat(m.Winner)
	case Error:
		e.errorCode(m.Code)
	case *Error:
		e.errorCode(m.Code)
	default:
		return nil, fmt.Errorf("%w: unknown message %T", ErrInvalidMessage, msg)
	}
	if e.err != nil {
		return nil, e.err
	}
	return e.buf, nil
}

type encoder struct {
	buf []byte
	err error
}

func (e *encoder) fail(format string, args ...interface{}) {
	if e.err == nil {
		e.err = fmt.Errorf("%w: %s", ErrInvalidMessage, fmt.Sprintf(format, args...))
	}
}

func (e *encoder) byte(b uint8) {
	e.buf = append(e.buf, b)
}

func (e *encoder) small(name string, n int) {
	if n < 0 || n > 0xff {
		e.fail("%s %d out of range", name, n)
		return
	}
	e.byte(uint8(n))
}

func (e *encoder) seat(seat int) {
	if seat < 0 || seat >= consts.Seats {
		e.fail("seat %d", seat)
		return
	}
	e.byte(uint8(seat))
}

func (e *encoder) card(c card.Card) {
	if !c.Valid() {
		e.fail("card %d/%d", c.Color, c.Rank)
		return
	}
	e.byte(uint8(c.Color))
	e.byte(uint8(c.Rank))
}

func (e *encoder) state(s State) {
	e.seat(s.Current)
	for _, size := range s.HandSizes {
		e.small("hand size", size)
	}
	switch s.Direction {
	case 1:
		e.byte(directionClockwise)
	case -1:
		e.byte(directionCounterClockwise)
	default:
		e.fail("direction %d", s.Direction)
	}
	e.card(s.ActiveCard)
	if s.LastAction == nil {
		e.byte(0)
		return
	}
	e.byte(1)
	e.action(*s.LastAction)
}

func (e *encoder) hand(h Hand) {
	e.seat(h.Seat)
	if len(h.Cards) > MaxHandSize {
		e.fail("%d cards in hand", len(h.Cards))
		return
	}
	e.byte(uint8(len(h.Cards)))
	for _, c := range h.Cards {
		if c.Valid() && !c.InDeck() {
			e.fail("card %s is not in a hand as printed", c.Label())
		}
		e.card(c)
	}
}

func (e *encoder) action(a Action) {
	e.byte(uint8(a.Kind))
	e.seat(a.Seat)
	e.small("card index", a.CardIndex)
	e.byte(uint8(a.ChosenColor))
}

func (e *encoder) errorCode(code consts.ErrorCode) {
	if !code.Valid() {
		e.fail("error code %d", code)
		return
	}
	e.byte(uint8(code))
}

// Decode parses one payload. Every field is checked and the whole payload
// must be consumed.
func Decode(payload []byte) (Message, error) {
	d := &decoder{buf: payload}
	tag := Tag(d.byte())
	var msg Message
	switch tag {
	case TagWelcome:
		msg = Welcome{Seat: d.seat()}
	case TagWaiting:
		msg = Waiting{Connected: d.byte()}
	case TagState:
		msg = d.state()
	case TagHand:
		msg = d.hand()
	case TagAction:
		msg = d.action()
	case TagGameOver:
		msg = GameOver{Winner: d.seat()}
	case TagError:
		msg = Error{Code: d.errorCode()}
	default:
		d.fail("unknown tag %d", uint8(tag))
	}
	if d.err == nil && d.pos != len(d.buf) {
		d.fail("%d trailing bytes after %s", len(d.buf)-d.pos, tag)
	}
	if d.err != nil {
		return nil, d.err
	}
	return msg, nil
}

type decoder struct {
	buf []byte
	pos int
	err error
}

func (d *decoder) fail(format string, args ...interface{}) {
	if d.err == nil {
		d.err = fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
	}
}

func (d *decoder) byte() uint8 {
	if d.err != nil {
		return 0
	}
	if d.pos >= len(d.buf) {
		d.fail("short payload")
		return 0
	}
	b := d.buf[d.pos]
	d.pos++
	return b
}

func (d *decoder) seat() int {
	seat := int(d.byte())
	if seat >= consts.Seats {
		d.fail("seat %d", seat)
	}
	return seat
}

func (d *decoder) card() card.Card {
	c := card.New(color.Color(d.byte()), card.Rank(d.byte()))
	if d.err == nil && !c.Valid() {
		d.fail("card %d/%d", c.Color, c.Rank)
	}
	return c
}

func (d *decoder) state() State {
	s := State{Current: d.seat()}
	for i := range s.HandSizes {
		s.HandSizes[i] = int(d.byte())
	}
	switch direction := d.byte(); direction {
	case directionClockwise:
		s.Direction = 1
	case directionCounterClockwise:
		s.Direction = -1
	default:
		d.fail("direction %d", direction)
	}
	s.ActiveCard = d.card()
	switch flag := d.byte(); flag {
	case 0:
	case 1:
		a := d.action()
		s.LastAction = &a
	default:
		d.fail("last action flag %d", flag)
	}
	return s
}

func (d *decoder) hand() Hand {
	h := Hand{Seat: d.seat()}
	count := int(d.byte())
	if count > MaxHandSize {
		d.fail("%d cards in hand", count)
		return h
	}
	h.Cards = make([]card.Card, 0, count)
	for i := 0; i < count && d.err == nil; i++ {
		c := d.card()
		if d.err == nil && !c.InDeck() {
			d.fail("card %s is not in a hand as printed", c.Label())
		}
		h.Cards = append(h.Cards, c)
	}
	return h
}

func (d *decoder) action() Action {
	return Action{
		Kind:        ActionKind(d.byte()),
		Seat:        int(d.byte()),
		CardIndex:   int(d.byte()),
		ChosenColor: color.Color(d.byte()),
	}
}

func (d *decoder) errorCode() consts.ErrorCode {
	code := consts.ErrorCode(d.byte())
	if d.err == nil && !code.Valid() {
		d.fail("error code %d", code)
	}
	return code
}
