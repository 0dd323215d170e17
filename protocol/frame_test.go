package protocol_test

import (
	"encoding/binary"
	"io"
	"net"
	"testing"

	"github.com/ratel-online/uno/protocol"
	"github.com/stretchr/testify/require"

	transport "github.com/ratel-online/core/protocol"
)

// readRaw feeds raw bytes through a core TCP transport and unpacks what it
// reads, the way a server connection does.
func readRaw(t *testing.T, raw []byte) (protocol.Message, error) {
	t.Helper()
	server, client := net.Pipe()
	defer server.Close()
	go func() {
		_, _ = client.Write(raw)
		_ = client.Close()
	}()
	packet, err := transport.NewTcpReadWriteCloser(server).Read()
	if err != nil {
		return nil, protocol.ReadError(err)
	}
	return protocol.Unpack(*packet)
}

func header(size uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, size)
	return buf
}

func TestReadRejectsBadLengths(t *testing.T) {
	scenarios := []struct {
		description string
		raw         []byte
	}{
		{description: "zero_length", raw: header(0)},
		{description: "one_over_the_limit", raw: append(header(protocol.MaxPayloadSize+1), make([]byte, protocol.MaxPayloadSize+1)...)},
		{description: "over_the_transport_limit", raw: header(1 << 20)},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			_, err := readRaw(t, scenario.raw)
			require.ErrorIs(t, err, protocol.ErrInvalidFrame)
			require.True(t, protocol.IsProtocolError(err))
		})
	}
}

func TestReadAcceptsMaxLength(t *testing.T) {
	body := make([]byte, protocol.MaxPayloadSize)
	_, err := protocol.Unpack(transport.Packet{Body: body})
	require.NotErrorIs(t, err, protocol.ErrInvalidFrame)
}

func TestReadTruncated(t *testing.T) {
	_, err := readRaw(t, []byte{0, 0})
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = readRaw(t, append(header(2), 0))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.False(t, protocol.IsProtocolError(err))

	_, err = readRaw(t, nil)
	require.ErrorIs(t, err, io.EOF)
}

func TestReadUndecodablePayload(t *testing.T) {
	_, err := readRaw(t, append(header(1), 9))
	require.ErrorIs(t, err, protocol.ErrMalformed)
}

func TestReadWelcomeFrame(t *testing.T) {
	msg, err := readRaw(t, []byte{0, 0, 0, 2, 0, 1})
	require.NoError(t, err)
	require.Equal(t, protocol.Welcome{Seat: 1}, msg)
}

func TestPack(t *testing.T) {
	packet, err := protocol.Pack(protocol.Welcome{Seat: 1})
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1}, packet.Body)

	_, err = protocol.Pack(protocol.Welcome{Seat: 9})
	require.ErrorIs(t, err, protocol.ErrInvalidMessage)
}

func TestReadErrorLeavesTransportFailures(t *testing.T) {
	require.NoError(t, protocol.ReadError(nil))
	require.Equal(t, io.EOF, protocol.ReadError(io.EOF))
}
