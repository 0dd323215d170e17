package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/network"
	"github.com/ratel-online/uno/protocol"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/player"
)

// Renderer draws the view. It is called from the client loop only.
type Renderer interface {
	Render(view View)
}

type nopRenderer struct{}

func (nopRenderer) Render(View) {}

type inbound struct {
	msg protocol.Message
	err error
}

// Client owns one connection. Its loop is the only writer; a single reader
// goroutine feeds it decoded messages.
type Client struct {
	conn     *network.Conn
	renderer Renderer
	view     View
	tick     time.Duration
	inbound  chan inbound
	done     chan struct{}
	listener sync.Once
	closer   sync.Once
}

func New(conn *network.Conn, renderer Renderer) *Client {
	if renderer == nil {
		renderer = nopRenderer{}
	}
	return &Client{
		conn:     conn,
		renderer: renderer,
		view:     NewView(),
		tick:     consts.ClientTick,
		inbound:  make(chan inbound),
		done:     make(chan struct{}),
	}
}

// Dial connects to the server and waits for the seat assignment.
func Dial(ctx context.Context, transport, addr string, renderer Renderer) (*Client, error) {
	conn, err := network.Dial(ctx, transport, addr)
	if err != nil {
		return nil, err
	}
	c := New(conn, renderer)
	if err := c.Welcome(ctx); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// Welcome waits for the Welcome message, rendering lobby progress from any
// Waiting message before it.
func (c *Client) Welcome(ctx context.Context) error {
	c.listen()
	timeout := time.After(consts.WelcomeTimeout)
	for {
		select {
		case in := <-c.inbound:
			if in.err != nil {
				return in.err
			}
			switch in.msg.(type) {
			case protocol.Welcome:
				c.view.Apply(in.msg)
				c.render()
				log.Infof("seated as %d\n", c.view.Seat)
				return nil
			case protocol.Waiting:
				c.view.Apply(in.msg)
				c.render()
			default:
				return fmt.Errorf("%w: %s before Welcome", consts.ErrorsUnexpectedMsg, in.msg.Tag())
			}
		case <-timeout:
			return consts.ErrorsTimeout
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (c *Client) Seat() int {
	return c.view.Seat
}

func (c *Client) View() View {
	return c.view
}

// Close drops the connection and stops the reader.
func (c *Client) Close() {
	c.closer.Do(func() {
		close(c.done)
	})
	_ = c.conn.Close()
}

// listen starts the one goroutine that reads the connection. It stops after
// the first read error.
func (c *Client) listen() {
	c.listener.Do(func() {
		async.Async(func() {
			for {
				m, err := c.conn.Read()
				select {
				case c.inbound <- inbound{msg: m, err: err}:
				case <-c.done:
					return
				}
				if err != nil {
					return
				}
			}
		})
	})
}

// Run multiplexes server messages, keys and the redraw tick until the game
// ends, the player quits or the connection fails.
func (c *Client) Run(ctx context.Context, keys <-chan Key) (View, error) {
	defer c.Close()
	c.listen()
	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()
	c.render()

	for {
		select {
		case <-ctx.Done():
			return c.view, ctx.Err()
		case in := <-c.inbound:
			if stop, err := c.receive(in); stop {
				return c.view, err
			}
		case key, ok := <-keys:
			if !ok {
				keys = nil
				continue
			}
			if err := c.press(ctx, key, keys); err != nil {
				return c.view, err
			}
			if c.view.Quit {
				return c.view, nil
			}
		case <-ticker.C:
			c.render()
		}
	}
}

// RunBot plays with strategy instead of keys. It answers every Hand that
// arrives on its turn, and a rejected action with a draw.
func (c *Client) RunBot(ctx context.Context, strategy player.Strategy) (View, error) {
	defer c.Close()
	c.listen()
	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return c.view, ctx.Err()
		case in := <-c.inbound:
			if stop, err := c.receive(in); stop {
				return c.view, err
			}
			var action *protocol.Action
			switch in.msg.(type) {
			case protocol.Hand:
				if c.view.MyTurn() && !c.view.Awaiting {
					decided := player.Decide(strategy, c.view.Snapshot())
					action = &decided
				}
			case protocol.Error:
				if c.view.MyTurn() {
					action = &protocol.Action{Kind: protocol.DrawCard, Seat: c.view.Seat}
				}
			}
			if action != nil {
				if err := c.send(*action); err != nil {
					return c.view, err
				}
			}
		case <-ticker.C:
			c.render()
		}
	}
}

func (c *Client) receive(in inbound) (bool, error) {
	if in.err != nil {
		c.view.Disconnected = true
		c.view.Status = msg.Message.Disconnected()
		c.render()
		return true, fmt.Errorf("%w%w", consts.ErrorsDisconnected, in.err)
	}
	c.view.Apply(in.msg)
	c.render()
	return c.view.Over, nil
}

func (c *Client) press(ctx context.Context, key Key, keys <-chan Key) error {
	switch key {
	case KeyLeft:
		c.view.Move(-1)
	case KeyRight:
		c.view.Move(1)
	case KeyQuit:
		c.view.Quit = true
	case KeyEnter:
		return c.playSelected(ctx, keys)
	case KeySpace:
		return c.act(protocol.Action{Kind: protocol.DrawCard, Seat: c.view.Seat})
	case KeySkip:
		return c.act(protocol.Action{Kind: protocol.Skip, Seat: c.view.Seat})
	}
	c.render()
	return nil
}

func (c *Client) playSelected(ctx context.Context, keys <-chan Key) error {
	selected, ok := c.view.SelectedCard()
	if !ok || !c.ready() {
		return nil
	}
	action := protocol.Action{Kind: protocol.PlayCard, Seat: c.view.Seat, CardIndex: c.view.Selected}
	if selected.Kind().Wild() {
		chosen, ok := c.pickColor(ctx, keys)
		if !ok {
			c.render()
			return nil
		}
		action.ChosenColor = chosen
	}
	return c.send(action)
}

// pickColor is a blocking dialog on the key channel only. Server messages
// wait until it is answered or cancelled.
func (c *Client) pickColor(ctx context.Context, keys <-chan Key) (color.Color, bool) {
	c.view.ColorPrompt = true
	c.view.Status = msg.Message.PickColor()
	c.render()
	defer func() {
		c.view.ColorPrompt = false
		c.view.Status = ""
	}()
	for {
		select {
		case <-ctx.Done():
			return color.Black, false
		case key, ok := <-keys:
			if !ok {
				return color.Black, false
			}
			switch key {
			case KeyOne, KeyTwo, KeyThree, KeyFour:
				return color.Chooseable[key-KeyOne], true
			case KeyEscape:
				return color.Black, false
			case KeyQuit:
				c.view.Quit = true
				return color.Black, false
			}
		}
	}
}

func (c *Client) act(action protocol.Action) error {
	if !c.ready() {
		return nil
	}
	return c.send(action)
}

// ready reports whether an action may be sent now, explaining why not in
// the status line.
func (c *Client) ready() bool {
	if !c.view.MyTurn() {
		if c.view.Started {
			c.view.Status = msg.Message.NotYourTurn(c.view.State.Current)
		}
		c.render()
		return false
	}
	return !c.view.Awaiting
}

func (c *Client) send(action protocol.Action) error {
	if err := c.conn.Write(action); err != nil {
		c.view.Disconnected = true
		c.view.Status = msg.Message.Disconnected()
		c.render()
		return fmt.Errorf("%w%w", consts.ErrorsDisconnected, err)
	}
	c.view.Awaiting = true
	c.render()
	return nil
}

func (c *Client) render() {
	c.renderer.Render(c.view)
}
