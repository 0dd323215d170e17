package protocol

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ratel-online/uno/consts"

	transport "github.com/ratel-online/core/protocol"
)

// ErrInvalidFrame is returned for a packet body outside 1..MaxPayloadSize.
// It ends the connection.
var ErrInvalidFrame = errors.New("invalid frame")

const MaxPayloadSize = consts.MaxPacketSize

// overflow prefixes the error the core transport returns for a length
// prefix above its own packet limit.
const overflow = "Overflow max packet size"

// Pack encodes msg into one packet for a core transport.
func Pack(msg Message) (transport.Packet, error) {
	payload, err := Encode(msg)
	if err != nil {
		return transport.Packet{}, err
	}
	if err := checkSize(len(payload)); err != nil {
		return transport.Packet{}, err
	}
	return transport.Packet{Body: payload}, nil
}

// Unpack checks a received packet against the frame bounds and decodes it.
func Unpack(packet transport.Packet) (Message, error) {
	if err := checkSize(len(packet.Body)); err != nil {
		return nil, err
	}
	return Decode(packet.Body)
}

// ReadError classifies an error from a transport Read. Oversized length
// prefixes become ErrInvalidFrame; anything else is left as a transport
// failure.
func ReadError(err error) error {
	if err != nil && strings.HasPrefix(err.Error(), overflow) {
		return fmt.Errorf("%w: %v", ErrInvalidFrame, err)
	}
	return err
}

func checkSize(size int) error {
	if size == 0 || size > MaxPayloadSize {
		return fmt.Errorf("%w: payload of %d bytes", ErrInvalidFrame, size)
	}
	return nil
}

// IsProtocolError reports whether err came from framing or decoding rather
// than from the transport.
func IsProtocolError(err error) bool {
	return errors.Is(err, ErrInvalidFrame) || errors.Is(err, ErrMalformed)
}
