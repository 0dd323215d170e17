package database

import (
	"sort"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/network"
	"github.com/ratel-online/uno/protocol"
)

// Table holds the four seats of one game, keyed by seat number.
type Table struct {
	players *hashmap.HashMap
}

func NewTable() *Table {
	return &Table{players: hashmap.New()}
}

// Seat gives conn the lowest free seat.
func (t *Table) Seat(conn *network.Conn) (*Player, error) {
	for seat := 0; seat < consts.Seats; seat++ {
		if t.Player(seat) == nil {
			player := newPlayer(seat, conn)
			t.players.Set(int64(seat), player)
			return player, nil
		}
	}
	return nil, consts.ErrorsSeatsInvalid
}

func (t *Table) Player(seat int) *Player {
	if v, ok := t.players.Get(int64(seat)); ok {
		return v.(*Player)
	}
	return nil
}

// Players lists the seated players in seat order.
func (t *Table) Players() []*Player {
	list := make([]*Player, 0, consts.Seats)
	t.players.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Player))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].Seat < list[j].Seat
	})
	return list
}

func (t *Table) Size() int {
	return len(t.Players())
}

func (t *Table) Full() bool {
	return t.Size() == consts.Seats
}

// Connected is the Waiting bitmask of occupied seats.
func (t *Table) Connected() uint8 {
	var mask uint8
	for _, player := range t.Players() {
		mask |= 1 << player.Seat
	}
	return mask
}

// Broadcast writes msg to every seat in order and stops at the first
// failure.
func (t *Table) Broadcast(msg protocol.Message) error {
	for _, player := range t.Players() {
		if err := player.Write(msg); err != nil {
			return err
		}
	}
	return nil
}

// CloseAll drops every connection. It is safe to call from any goroutine
// and more than once.
func (t *Table) CloseAll() {
	for _, player := range t.Players() {
		player.Offline()
	}
}
