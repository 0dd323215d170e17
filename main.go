package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/client"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/history"
	"github.com/ratel-online/uno/network"
	"github.com/ratel-online/uno/state"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/ui"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Mode {
	case consts.ModeServer:
		err = serve(ctx, cfg)
	case consts.ModeBot:
		err = bot(ctx, cfg)
	default:
		err = play(ctx, cfg)
	}
	if err != nil {
		log.Error(err)
		stop()
		os.Exit(1)
	}
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func serve(ctx context.Context, cfg config.Config) error {
	listener, err := network.Listen(cfg.Transport, cfg.Addr)
	if err != nil {
		return err
	}
	defer listener.Close()
	log.Infof("%s server listening on %s\n", cfg.Transport, listener.Addr())

	bus := event.NewBus()
	publishers := make([]history.Publisher, 0, 2)
	if cfg.HistoryFile != "" {
		sink, err := history.OpenFileSink(cfg.HistoryFile)
		if err != nil {
			return err
		}
		defer sink.Close()
		publishers = append(publishers, sink)
	}
	if cfg.RedisAddr != "" {
		sink, err := history.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisDB, cfg.QueueName)
		if err != nil {
			return err
		}
		defer sink.Close()
		publishers = append(publishers, sink)
	}
	if len(publishers) > 0 {
		recorder := history.NewRecorder(history.NewSession(), publishers...)
		log.Infof("recording session %s\n", recorder.Session())
		bus.Subscribe(recorder)
	}

	engine := game.NewEngine(newRand(cfg.Seed))
	if cfg.DealFile != "" {
		if engine, err = game.OpenDeal(cfg.DealFile, newRand(cfg.Seed)); err != nil {
			return err
		}
		log.Infof("dealing from %s\n", cfg.DealFile)
	}
	winner, err := state.Serve(ctx, listener, engine, bus)
	if err != nil {
		return err
	}
	log.Infof("game over, %s wins\n", msg.SeatName(winner))
	return nil
}

func bot(ctx context.Context, cfg config.Config) error {
	strategy, err := player.New(cfg.Strategy, newRand(cfg.Seed))
	if err != nil {
		return err
	}
	c, err := client.Dial(ctx, cfg.Transport, cfg.Addr, nil)
	if err != nil {
		return err
	}
	log.Infof("%s plays %s\n", strategy.Name(), msg.SeatName(c.Seat()))
	view, err := c.RunBot(ctx, strategy)
	if err != nil {
		return err
	}
	log.Info(msg.Message.WinnerFound(view.Winner, view.Seat))
	return nil
}

func play(ctx context.Context, cfg config.Config) error {
	raw, err := client.MakeRaw(os.Stdin)
	if err != nil {
		return err
	}
	defer raw.Restore()

	terminal := ui.NewTerminal(color.Stdout)
	c, err := client.Dial(ctx, cfg.Transport, cfg.Addr, terminal)
	if err != nil {
		return err
	}
	keys := client.ReadKeys(ctx, os.Stdin)
	view, err := c.Run(ctx, keys)
	_ = raw.Restore()
	fmt.Println()
	if err != nil {
		return err
	}
	if view.Over {
		fmt.Println(msg.Message.WinnerFound(view.Winner, view.Seat))
	}
	return nil
}
