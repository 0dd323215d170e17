package database

import (
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/network"
	"github.com/ratel-online/uno/protocol"
)

// Player is the server side of one seat's connection. Only the turn
// controller reads and writes it.
type Player struct {
	Seat   int
	ConnID int64
	IP     string

	conn *network.Conn
}

func newPlayer(seat int, conn *network.Conn) *Player {
	return &Player{
		Seat:   seat,
		ConnID: conn.ID(),
		IP:     conn.RemoteAddr(),
		conn:   conn,
	}
}

func (p *Player) Write(msg protocol.Message) error {
	if err := p.conn.Write(msg); err != nil {
		return fmt.Errorf("write %s to %s: %w", msg.Tag(), p, err)
	}
	return nil
}

// Read blocks until this seat sends one message.
func (p *Player) Read() (protocol.Message, error) {
	msg, err := p.conn.Read()
	if err != nil {
		return nil, fmt.Errorf("read from %s: %w", p, err)
	}
	return msg, nil
}

// WriteError reports a rejected action to this seat only.
func (p *Player) WriteError(err consts.Error) error {
	return p.Write(protocol.Error{Code: err.WireCode()})
}

func (p *Player) Offline() {
	if err := p.conn.Close(); err != nil {
		log.Errorf("close %s: %v\n", p, err)
	}
}

func (p Player) String() string {
	return fmt.Sprintf("seat %d[%d@%s]", p.Seat, p.ConnID, p.IP)
}
