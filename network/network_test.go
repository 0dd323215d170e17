package network_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/network"
	"github.com/ratel-online/uno/protocol"
	"github.com/ratel-online/uno/uno/card"
	"github.com/stretchr/testify/require"
)

func TestConnOverPipe(t *testing.T) {
	server, client := net.Pipe()
	serverConn := network.NewTcpConn(server)
	clientConn := network.NewTcpConn(client)
	defer serverConn.Close()
	defer clientConn.Close()

	hand := protocol.Hand{Seat: 2, Cards: []card.Card{card.MustParse("red 1"), card.MustParse("black 4")}}
	go func() {
		_ = serverConn.Write(hand)
	}()
	msg, err := clientConn.Read()
	require.NoError(t, err)
	require.Equal(t, hand, msg)
}

func TestConnCloseTwice(t *testing.T) {
	server, client := net.Pipe()
	defer client.Close()
	conn := network.NewTcpConn(server)
	require.NoError(t, conn.Close())
	require.NoError(t, conn.Close())
	_, err := conn.Read()
	require.Error(t, err)
}

func TestTransports(t *testing.T) {
	for _, transport := range []string{consts.TransportTCP, consts.TransportWebsocket} {
		t.Run(transport, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			listener, err := network.Listen(transport, "127.0.0.1:0")
			require.NoError(t, err)
			defer listener.Close()

			accepted := make(chan *network.Conn, 1)
			go func() {
				conn, err := listener.Accept(ctx)
				if err == nil {
					accepted <- conn
				}
			}()

			clientConn, err := network.Dial(ctx, transport, listener.Addr())
			require.NoError(t, err)
			defer clientConn.Close()

			var serverConn *network.Conn
			select {
			case serverConn = <-accepted:
			case <-ctx.Done():
				t.Fatal("no connection accepted")
			}
			defer serverConn.Close()

			require.NoError(t, serverConn.Write(protocol.Welcome{Seat: 1}))
			require.NoError(t, serverConn.Write(protocol.Waiting{Connected: 0b11}))
			msg, err := clientConn.Read()
			require.NoError(t, err)
			require.Equal(t, protocol.Welcome{Seat: 1}, msg)
			msg, err = clientConn.Read()
			require.NoError(t, err)
			require.Equal(t, protocol.Waiting{Connected: 0b11}, msg)

			action := protocol.Action{Kind: protocol.PlayCard, Seat: 1, CardIndex: 5}
			require.NoError(t, clientConn.Write(action))
			msg, err = serverConn.Read()
			require.NoError(t, err)
			require.Equal(t, action, msg)
		})
	}
}

func TestAcceptStopsWithContext(t *testing.T) {
	for _, transport := range []string{consts.TransportTCP, consts.TransportWebsocket} {
		t.Run(transport, func(t *testing.T) {
			listener, err := network.Listen(transport, "127.0.0.1:0")
			require.NoError(t, err)
			defer listener.Close()

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err = listener.Accept(ctx)
			require.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestUnknownTransport(t *testing.T) {
	_, err := network.Listen("udp", "127.0.0.1:0")
	require.Error(t, err)
	_, err = network.Dial(context.Background(), "udp", "127.0.0.1:0")
	require.Error(t, err)
}
