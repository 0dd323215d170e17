package state

import (
	"context"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/database"
	"github.com/ratel-online/uno/network"
	"github.com/ratel-online/uno/protocol"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
)

// Accept seats four connections in order, greeting each with its seat and
// telling every seated player who is connected so far. A failure at any
// seat closes the seats already taken; there is no partial table.
func Accept(ctx context.Context, listener network.Listener) (*database.Table, error) {
	table := database.NewTable()
	for !table.Full() {
		conn, err := listener.Accept(ctx)
		if err != nil {
			table.CloseAll()
			return nil, err
		}
		player, err := table.Seat(conn)
		if err != nil {
			_ = conn.Close()
			table.CloseAll()
			return nil, err
		}
		log.Infof("%s connected\n", player)
		if err := player.Write(protocol.Welcome{Seat: player.Seat}); err != nil {
			table.CloseAll()
			return nil, err
		}
		if err := table.Broadcast(protocol.Waiting{Connected: table.Connected()}); err != nil {
			table.CloseAll()
			return nil, err
		}
	}
	return table, nil
}

// Serve accepts a full table from listener and plays one game on it.
func Serve(ctx context.Context, listener network.Listener, engine *game.Engine, bus *event.Bus) (int, error) {
	log.Infof("waiting for %d players on %s\n", consts.Seats, listener.Addr())
	table, err := Accept(ctx, listener)
	if err != nil {
		return -1, err
	}
	return Run(ctx, table, engine, bus)
}
