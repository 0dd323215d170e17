package network

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/ratel-online/core/network"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/protocol"

	transport "github.com/ratel-online/core/protocol"
)

// Listener is interface of all kinds of network. Accept hands out one
// connection at a time and gives up when ctx is done.
type Listener interface {
	Accept(ctx context.Context) (*Conn, error)
	Addr() string
	Close() error
}

// Conn carries messages over a core transport, one packet per message.
// Read and Write may be used from one goroutine each; Close is safe from
// any goroutine.
type Conn struct {
	conn      *network.Conn
	closeOnce sync.Once
	closeErr  error
}

func Wrapper(rwc transport.ReadWriteCloser) *Conn {
	return &Conn{conn: network.Wrapper(rwc)}
}

// NewTcpConn frames messages over conn with a 4-byte big-endian length.
func NewTcpConn(conn net.Conn) *Conn {
	return Wrapper(transport.NewTcpReadWriteCloser(conn))
}

// Read blocks for exactly one frame.
func (c *Conn) Read() (protocol.Message, error) {
	packet, err := c.conn.Read()
	if err != nil {
		return nil, protocol.ReadError(err)
	}
	return protocol.Unpack(*packet)
}

// Write sends msg as one frame with one write.
func (c *Conn) Write(msg protocol.Message) error {
	packet, err := protocol.Pack(msg)
	if err != nil {
		return err
	}
	return c.conn.Write(packet)
}

func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.conn.Close()
	})
	return c.closeErr
}

func (c *Conn) ID() int64 {
	return c.conn.ID()
}

func (c *Conn) RemoteAddr() string {
	return c.conn.IP()
}

func Listen(kind, addr string) (Listener, error) {
	switch kind {
	case consts.TransportTCP:
		t, err := NewTcpServer(addr)
		if err != nil {
			return nil, err
		}
		return t, nil
	case consts.TransportWebsocket:
		w, err := NewWebsocketServer(addr)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	return nil, fmt.Errorf("unknown transport '%s'", kind)
}

func Dial(ctx context.Context, kind, addr string) (*Conn, error) {
	switch kind {
	case consts.TransportTCP:
		return DialTcp(ctx, addr)
	case consts.TransportWebsocket:
		return DialWebsocket(ctx, addr)
	}
	return nil, fmt.Errorf("unknown transport '%s'", kind)
}
