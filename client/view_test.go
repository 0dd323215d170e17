package client_test

import (
	"testing"

	"github.com/ratel-online/uno/client"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/protocol"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/stretchr/testify/require"
)

func started(seat, current int, active string, hand ...string) client.View {
	v := client.NewView()
	v.Apply(protocol.Welcome{Seat: seat})
	v.Apply(protocol.State{Current: current, Direction: 1, ActiveCard: card.MustParse(active)})
	cards := make([]card.Card, 0, len(hand))
	for _, label := range hand {
		cards = append(cards, card.MustParse(label))
	}
	v.Apply(protocol.Hand{Seat: seat, Cards: cards})
	return v
}

func TestViewApplyLobby(t *testing.T) {
	v := client.NewView()
	require.Equal(t, -1, v.Seat)
	require.False(t, v.MyTurn())

	v.Apply(protocol.Welcome{Seat: 3})
	require.Equal(t, 3, v.Seat)

	v.Apply(protocol.Waiting{Connected: 0b1011})
	require.Equal(t, uint8(0b1011), v.Connected)
	require.Equal(t, msg.Message.WaitingForPlayers(3), v.Status)
}

func TestViewApplyState(t *testing.T) {
	v := started(0, 0, "red 5", "red 7", "blue 1")
	require.True(t, v.Started)
	require.True(t, v.MyTurn())
	require.Equal(t, []string{msg.Message.FirstCardPlayed(card.MustParse("red 5"))}, v.History)
	require.True(t, v.Playable(0))
	require.False(t, v.Playable(1))
	require.False(t, v.Playable(2))
}

func TestViewIgnoresOtherHands(t *testing.T) {
	v := started(1, 0, "red 5", "red 7")
	v.Apply(protocol.Hand{Seat: 2, Cards: []card.Card{card.MustParse("blue 1")}})
	require.Equal(t, []card.Card{card.MustParse("red 7")}, v.Hand)
}

func TestViewNoMatchingCards(t *testing.T) {
	v := started(2, 2, "red 5", "blue 1")
	require.Equal(t, msg.Message.HumanPlayerHasNoMatchingCardsInHand(card.MustParse("red 5")), v.Status)
}

func TestViewNarratesLastAction(t *testing.T) {
	scenarios := []struct {
		description string
		action      protocol.Action
		active      card.Card
		expected    []string
	}{
		{
			description: "draw_two",
			action:      protocol.Action{Kind: protocol.PlayCard, Seat: 0},
			active:      card.MustParse("red Draw2"),
			expected: []string{
				msg.Message.PlayerPlayedCard(0, card.MustParse("red Draw2")),
				msg.Message.PlayerDrewCards(1, 2),
				msg.Message.PlayerTurnSkipped(1),
			},
		},
		{
			description: "wild_draw_four",
			action:      protocol.Action{Kind: protocol.PlayCard, Seat: 3, ChosenColor: color.Green},
			active:      card.New(color.Green, card.WildDrawFour),
			expected: []string{
				msg.Message.PlayerPlayedCard(3, card.New(color.Green, card.WildDrawFour)),
				msg.Message.PlayerPickedColor(3, color.Green),
				msg.Message.PlayerDrewCards(0, 4),
				msg.Message.PlayerTurnSkipped(0),
			},
		},
		{
			description: "draw",
			action:      protocol.Action{Kind: protocol.DrawCard, Seat: 2},
			active:      card.MustParse("red 5"),
			expected:    []string{msg.Message.PlayerDrewCards(2, 1)},
		},
		{
			description: "skip",
			action:      protocol.Action{Kind: protocol.Skip, Seat: 2},
			active:      card.MustParse("red 5"),
			expected:    []string{msg.Message.PlayerPassed(2)},
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			v := started(0, 0, "red 5", "red 7")
			action := scenario.action
			v.Apply(protocol.State{Current: 1, Direction: 1, ActiveCard: scenario.active, LastAction: &action})
			require.Equal(t, scenario.expected, v.History[1:])
		})
	}
}

func TestViewHistoryIsBounded(t *testing.T) {
	v := started(0, 0, "red 5", "red 7")
	action := protocol.Action{Kind: protocol.DrawCard, Seat: 1}
	for i := 0; i < 10; i++ {
		v.Apply(protocol.State{Current: 2, Direction: 1, ActiveCard: card.MustParse("red 5"), LastAction: &action})
	}
	require.Len(t, v.History, 6)
}

func TestViewMove(t *testing.T) {
	v := started(0, 0, "red 5", "red 7", "red 8", "red 9")
	v.Move(-1)
	require.Equal(t, 2, v.Selected)
	v.Move(1)
	require.Equal(t, 0, v.Selected)
	v.Move(2)
	selected, ok := v.SelectedCard()
	require.True(t, ok)
	require.Equal(t, card.MustParse("red 9"), selected)

	v.Apply(protocol.Hand{Seat: 0, Cards: []card.Card{card.MustParse("red 7")}})
	require.Equal(t, 0, v.Selected)
}

func TestViewErrorAndGameOver(t *testing.T) {
	v := started(1, 1, "red 5", "red 7")
	v.Awaiting = true
	v.Apply(protocol.Error{Code: consts.CodeNotYourTurn})
	require.False(t, v.Awaiting)
	require.Equal(t, msg.Message.Error(consts.CodeNotYourTurn), v.Status)

	v.Apply(protocol.GameOver{Winner: 2})
	require.True(t, v.Over)
	require.Equal(t, 2, v.Winner)
	require.False(t, v.MyTurn())
}

func TestViewGameOverNamesWinnerOneBased(t *testing.T) {
	scenarios := []struct {
		winner int
		status string
	}{
		{0, "Player 1 wins!"},
		{1, "You win!"},
		{3, "Player 4 wins!"},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.status, func(t *testing.T) {
			v := started(1, 1, "red 5", "red 7")
			v.Apply(protocol.GameOver{Winner: scenario.winner})
			require.Equal(t, scenario.status, v.Status)
		})
	}
}

func TestViewSnapshot(t *testing.T) {
	v := started(1, 1, "red 5", "red 7", "black wild")
	state := v.Snapshot()
	require.Equal(t, 1, state.Seat)
	require.Equal(t, card.MustParse("red 5"), state.LastPlayedCard)
	require.Len(t, state.Hand, 2)
	state.Hand[0] = card.MustParse("blue 1")
	require.Equal(t, card.MustParse("red 7"), v.Hand[0])
}
