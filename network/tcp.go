package network

import (
	"context"
	"net"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
)

type Tcp struct {
	listener net.Listener
}

func NewTcpServer(addr string) (*Tcp, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Error(err)
		return nil, err
	}
	log.Infof("Tcp server listening on %s\n", listener.Addr())
	return &Tcp{listener: listener}, nil
}

func (t *Tcp) Accept(ctx context.Context) (*Conn, error) {
	done := make(chan struct{})
	defer close(done)
	async.Async(func() {
		select {
		case <-ctx.Done():
			_ = t.listener.Close()
		case <-done:
		}
	})
	conn, err := t.listener.Accept()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	return NewTcpConn(conn), nil
}

func (t *Tcp) Addr() string {
	return t.listener.Addr().String()
}

func (t *Tcp) Close() error {
	return t.listener.Close()
}

func DialTcp(ctx context.Context, addr string) (*Conn, error) {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	return NewTcpConn(conn), nil
}
