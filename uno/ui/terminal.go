package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pterm/pterm"
	"github.com/ratel-online/uno/client"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/msg"
)

const clearScreen = "\x1b[H\x1b[2J"

const help = "<-/-> select   Enter play   Space draw   s skip   q quit"

// Terminal draws the client view as a full screen frame. In raw mode the
// terminal does not translate newlines, so every line ends in CR LF.
type Terminal struct {
	mu   sync.Mutex
	out  io.Writer
	last string
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

// Render writes the frame only when it changed since the last call.
func (t *Terminal) Render(view client.View) {
	frame := Frame(view)
	t.mu.Lock()
	defer t.mu.Unlock()
	if frame == t.last {
		return
	}
	t.last = frame
	_, _ = io.WriteString(t.out, clearScreen+strings.ReplaceAll(frame, "\n", "\r\n"))
}

// Frame is the text of one screen for view.
func Frame(view client.View) string {
	var b strings.Builder
	b.WriteString(msg.Message.Welcome())
	b.WriteString("\n")
	if !view.Started {
		b.WriteString(lobby(view))
	} else {
		b.WriteString(table(view))
		b.WriteString(hand(view))
	}
	if len(view.History) > 0 {
		lines := make([]string, 0, len(view.History))
		for _, line := range view.History {
			lines = append(lines, pterm.Gray(line))
		}
		b.WriteString(msg.Sprintlns(lines))
	}
	if view.Status != "" {
		b.WriteString(msg.Sprintln(pterm.LightYellow(view.Status)))
	}
	if !view.Over && !view.Disconnected {
		b.WriteString(msg.Sprintln(pterm.Gray(help)))
	}
	return b.String()
}

func lobby(view client.View) string {
	var lines []string
	for seat := 0; seat < consts.Seats; seat++ {
		state := pterm.LightRed("waiting")
		if view.Connected&(1<<seat) != 0 {
			state = pterm.LightGreen("connected")
		}
		lines = append(lines, fmt.Sprintf("%s: %s", seatTitle(view, seat), state))
	}
	return pterm.DefaultBox.WithTitle("Lobby").WithTitleTopLeft().Sprint(strings.Join(lines, "\n")) + "\n"
}

func table(view client.View) string {
	panels := make([]pterm.Panel, 0, consts.Seats)
	for seat := 0; seat < consts.Seats; seat++ {
		title := seatTitle(view, seat)
		if seat == view.State.Current {
			title = pterm.LightGreen("* " + title)
		}
		body := fmt.Sprintf("%s\n%d card(s)", title, view.State.HandSizes[seat])
		panels = append(panels, pterm.Panel{Data: pterm.DefaultBox.Sprint(body)})
	}
	direction := "clockwise ->"
	if view.State.Direction < 0 {
		direction = "<- counter-clockwise"
	}
	board := pterm.DefaultBox.WithTitle("Active card").WithTitleTopCenter().
		WithLeftPadding(4).WithRightPadding(4).
		Sprintf("%s\n%s", view.State.ActiveCard, direction)

	rendered, err := pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		panels,
		{{Data: board}},
	}).Srender()
	if err != nil {
		return board + "\n"
	}
	return rendered
}

func hand(view client.View) string {
	if len(view.Hand) == 0 {
		return ""
	}
	labels := runeSequence{}
	cells := make([]string, 0, len(view.Hand))
	for i, c := range view.Hand {
		cell := fmt.Sprintf("%c %s", labels.next(), c)
		if view.Playable(i) && view.MyTurn() {
			cell = pterm.Bold.Sprint(cell)
		}
		if i == view.Selected {
			cell = pterm.BgGray.Sprint(">" + cell + "<")
		} else {
			cell = " " + cell + " "
		}
		cells = append(cells, cell)
	}
	return pterm.DefaultBox.WithTitle("Your hand").WithTitleTopLeft().Sprint(strings.Join(cells, " ")) + "\n"
}

func seatTitle(view client.View, seat int) string {
	if seat == view.Seat {
		return msg.SeatName(seat) + " (you)"
	}
	return msg.SeatName(seat)
}
