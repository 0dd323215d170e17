package client

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/protocol"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
)

const maxHistory = 6

// View is the client's read-only copy of the table, built only from what the
// server sent.
type View struct {
	Seat      int
	Connected uint8
	Started   bool
	State     protocol.State
	Hand      []card.Card
	Selected  int
	// Awaiting is set between sending an action and the server's answer.
	Awaiting    bool
	ColorPrompt bool
	Status      string
	History     []string
	Winner      int
	Over        bool
	Quit        bool
	// Disconnected ends the session for this client.
	Disconnected bool
}

func NewView() View {
	return View{Seat: -1, Winner: -1}
}

func (v View) MyTurn() bool {
	return v.Started && !v.Over && v.State.Current == v.Seat
}

// SelectedCard is the card under the cursor.
func (v View) SelectedCard() (card.Card, bool) {
	if v.Selected < 0 || v.Selected >= len(v.Hand) {
		return card.Card{}, false
	}
	return v.Hand[v.Selected], true
}

// Playable reports whether the card at index may go on the active card.
func (v View) Playable(index int) bool {
	if index < 0 || index >= len(v.Hand) {
		return false
	}
	return game.Playable(v.Hand[index], v.State.ActiveCard)
}

// Snapshot converts the view into the engine's per-seat state so bot
// strategies can reason about it.
func (v View) Snapshot() game.State {
	hand := make([]card.Card, len(v.Hand))
	copy(hand, v.Hand)
	return game.State{
		Seat:           v.Seat,
		Current:        v.State.Current,
		Direction:      v.State.Direction,
		LastPlayedCard: v.State.ActiveCard,
		HandSizes:      v.State.HandSizes,
		Hand:           hand,
	}
}

// Apply folds one server message into the view.
func (v *View) Apply(m protocol.Message) {
	switch m := m.(type) {
	case protocol.Welcome:
		v.Seat = m.Seat
		v.Status = msg.Message.Seated(m.Seat)
	case protocol.Waiting:
		v.Connected = m.Connected
		v.Status = msg.Message.WaitingForPlayers(m.Count())
	case protocol.State:
		first := !v.Started
		v.Started = true
		v.Awaiting = false
		v.State = m
		if first {
			v.narrate(msg.Message.FirstCardPlayed(m.ActiveCard))
		}
		if m.LastAction != nil {
			v.narrate(describe(*m.LastAction, m.ActiveCard, m.Direction)...)
		}
		v.Status = ""
		if v.MyTurn() {
			v.Status = msg.Message.HumanPlayerTurnStarted()
		}
	case protocol.Hand:
		if m.Seat != v.Seat {
			return
		}
		v.Hand = m.Cards
		v.clampSelection()
		if v.MyTurn() && len(game.PlayableIndexes(v.Hand, v.State.ActiveCard)) == 0 {
			v.Status = msg.Message.HumanPlayerHasNoMatchingCardsInHand(v.State.ActiveCard)
		}
	case protocol.Error:
		v.Awaiting = false
		v.Status = msg.Message.Error(m.Code)
	case protocol.GameOver:
		v.Over = true
		v.Winner = m.Winner
		v.Status = msg.Message.WinnerFound(m.Winner, v.Seat)
		v.narrate(v.Status)
	}
}

// Move shifts the cursor by delta, wrapping around the hand.
func (v *View) Move(delta int) {
	if len(v.Hand) == 0 {
		v.Selected = 0
		return
	}
	v.Selected = ((v.Selected+delta)%len(v.Hand) + len(v.Hand)) % len(v.Hand)
}

func (v *View) clampSelection() {
	if v.Selected >= len(v.Hand) {
		v.Selected = len(v.Hand) - 1
	}
	if v.Selected < 0 {
		v.Selected = 0
	}
}

func (v *View) narrate(lines ...string) {
	v.History = append(v.History, lines...)
	if extra := len(v.History) - maxHistory; extra > 0 {
		v.History = append([]string{}, v.History[extra:]...)
	}
}

func describe(action protocol.Action, active card.Card, direction int) []string {
	next := ((action.Seat+direction)%consts.Seats + consts.Seats) % consts.Seats
	switch action.Kind {
	case protocol.PlayCard:
		lines := []string{msg.Message.PlayerPlayedCard(action.Seat, active)}
		switch active.Kind() {
		case card.KindSkip:
			lines = append(lines, msg.Message.PlayerTurnSkipped(next))
		case card.KindReverse:
			lines = append(lines, msg.Message.TurnOrderReversed())
		case card.KindDrawTwo:
			lines = append(lines, msg.Message.PlayerDrewCards(next, 2), msg.Message.PlayerTurnSkipped(next))
		case card.KindWild:
			lines = append(lines, msg.Message.PlayerPickedColor(action.Seat, active.Color))
		case card.KindWildDrawFour:
			lines = append(lines,
				msg.Message.PlayerPickedColor(action.Seat, active.Color),
				msg.Message.PlayerDrewCards(next, 4),
				msg.Message.PlayerTurnSkipped(next),
			)
		}
		return lines
	case protocol.DrawCard:
		return []string{msg.Message.PlayerDrewCards(action.Seat, 1)}
	case protocol.Skip:
		return []string{msg.Message.PlayerPassed(action.Seat)}
	}
	return nil
}
