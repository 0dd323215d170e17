package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/protocol"

	transport "github.com/ratel-online/core/protocol"
)

var ErrListenerClosed = errors.New("listener closed")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  consts.MaxPacketSize,
	WriteBufferSize: consts.MaxPacketSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Websocket serves the same messages as Tcp, each packet body written as
// one binary message.
type Websocket struct {
	listener net.Listener
	server   *http.Server
	conns    chan *Conn
	closed   chan struct{}
}

func NewWebsocketServer(addr string) (*Websocket, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Error(err)
		return nil, err
	}
	w := &Websocket{
		listener: listener,
		conns:    make(chan *Conn),
		closed:   make(chan struct{}),
	}
	mux := http.NewServeMux()
	mux.HandleFunc(consts.WebsocketPath, w.serveWs)
	w.server = &http.Server{Handler: mux}
	async.Async(func() {
		if err := w.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(err)
		}
	})
	log.Infof("Websocket server listening on %s\n", listener.Addr())
	return w, nil
}

func (w *Websocket) serveWs(rw http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		log.Error(err)
		return
	}
	c := Wrapper(newWebsocketReadWriteCloser(conn))
	select {
	case w.conns <- c:
	case <-w.closed:
		_ = c.Close()
	case <-r.Context().Done():
		_ = c.Close()
	}
}

func (w *Websocket) Accept(ctx context.Context) (*Conn, error) {
	select {
	case c := <-w.conns:
		return c, nil
	case <-w.closed:
		return nil, ErrListenerClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (w *Websocket) Addr() string {
	return w.listener.Addr().String()
}

func (w *Websocket) Close() error {
	select {
	case <-w.closed:
		return nil
	default:
		close(w.closed)
	}
	return w.server.Close()
}

func DialWebsocket(ctx context.Context, addr string) (*Conn, error) {
	u := url.URL{Scheme: "ws", Host: addr, Path: consts.WebsocketPath}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, err
	}
	return Wrapper(newWebsocketReadWriteCloser(conn)), nil
}

// websocketReadWriteCloser carries one packet body per binary message. The
// message boundary stands in for the length prefix TCP needs.
type websocketReadWriteCloser struct {
	conn *websocket.Conn
}

func newWebsocketReadWriteCloser(conn *websocket.Conn) websocketReadWriteCloser {
	conn.SetReadLimit(consts.MaxPacketSize)
	return websocketReadWriteCloser{conn: conn}
}

func (w websocketReadWriteCloser) Read() (*transport.Packet, error) {
	for {
		messageType, body, err := w.conn.ReadMessage()
		if errors.Is(err, websocket.ErrReadLimit) {
			return nil, fmt.Errorf("%w: %v", protocol.ErrInvalidFrame, err)
		}
		if err != nil {
			return nil, err
		}
		if messageType == websocket.BinaryMessage {
			return &transport.Packet{Body: body}, nil
		}
	}
}

func (w websocketReadWriteCloser) Write(packet transport.Packet) error {
	return w.conn.WriteMessage(websocket.BinaryMessage, packet.Body)
}

func (w websocketReadWriteCloser) Close() error {
	return w.conn.Close()
}

func (w websocketReadWriteCloser) IP() string {
	return w.conn.RemoteAddr().String()
}
