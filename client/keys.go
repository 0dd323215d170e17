package client

import (
	"context"
	"io"
	"time"

	"github.com/ratel-online/core/util/async"
)

type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyEnter
	KeySpace
	KeySkip
	KeyQuit
	KeyEscape
	KeyOne
	KeyTwo
	KeyThree
	KeyFour
)

const (
	esc   = 0x1b
	ctrlC = 0x03
)

// DecodeKeys turns a chunk of raw terminal input into keys. Arrow keys come
// as ESC [ C and ESC [ D; a lone ESC is Escape.
func DecodeKeys(buf []byte) []Key {
	var keys []Key
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b == esc {
			if i+2 < len(buf) && buf[i+1] == '[' {
				switch buf[i+2] {
				case 'C':
					keys = append(keys, KeyRight)
				case 'D':
					keys = append(keys, KeyLeft)
				}
				i += 2
				continue
			}
			keys = append(keys, KeyEscape)
			continue
		}
		if key := decodeByte(b); key != KeyNone {
			keys = append(keys, key)
		}
	}
	return keys
}

func decodeByte(b byte) Key {
	switch b {
	case '\r', '\n':
		return KeyEnter
	case ' ':
		return KeySpace
	case 's', 'S':
		return KeySkip
	case 'q', 'Q', ctrlC:
		return KeyQuit
	case 'a', 'h':
		return KeyLeft
	case 'd', 'l':
		return KeyRight
	case '1':
		return KeyOne
	case '2':
		return KeyTwo
	case '3':
		return KeyThree
	case '4':
		return KeyFour
	}
	return KeyNone
}

// escapeDelay is how long a trailing ESC waits for the rest of an arrow
// sequence before it counts as Escape.
const escapeDelay = 50 * time.Millisecond

// ReadKeys decodes r into keys until r fails or ctx is done. The channel is
// closed when reading stops. An escape sequence split across reads is
// joined back together.
func ReadKeys(ctx context.Context, r io.Reader) <-chan Key {
	chunks := make(chan []byte)
	async.Async(func() {
		defer close(chunks)
		for {
			buf := make([]byte, 64)
			n, err := r.Read(buf)
			if n > 0 {
				select {
				case chunks <- buf[:n]:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				return
			}
		}
	})

	keys := make(chan Key, 16)
	async.Async(func() {
		defer close(keys)
		emit := func(buf []byte) bool {
			for _, key := range DecodeKeys(buf) {
				select {
				case keys <- key:
				case <-ctx.Done():
					return false
				}
			}
			return true
		}
		var pending []byte
		var flush <-chan time.Time
		for {
			select {
			case chunk, ok := <-chunks:
				if !ok {
					emit(pending)
					return
				}
				var complete []byte
				complete, pending = splitEscape(append(pending, chunk...))
				flush = nil
				if len(pending) > 0 {
					flush = time.After(escapeDelay)
				}
				if !emit(complete) {
					return
				}
			case <-flush:
				flush = nil
				buf := pending
				pending = nil
				if !emit(buf) {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	})
	return keys
}

// splitEscape holds back a trailing ESC or ESC [ that may be the start of
// an arrow sequence.
func splitEscape(buf []byte) ([]byte, []byte) {
	n := len(buf)
	switch {
	case n >= 1 && buf[n-1] == esc:
		return buf[:n-1], append([]byte(nil), buf[n-1:]...)
	case n >= 2 && buf[n-2] == esc && buf[n-1] == '[':
		return buf[:n-2], append([]byte(nil), buf[n-2:]...)
	}
	return buf, nil
}
