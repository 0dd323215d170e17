package game_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func TestReadDeal(t *testing.T) {
	engine, err := game.ReadDeal(strings.NewReader(`{
		"hands": [["red 1", "black wild4"], ["blue 4"], ["green Skip"], []],
		"discard": ["yellow 9", "red 9"],
		"current": 2,
		"direction": -1
	}`), rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	require.True(t, engine.Initialized())
	require.Equal(t, cards("red 1", "black 4"), engine.Hand(0))
	require.Equal(t, cards("blue 4"), engine.Hand(1))
	require.Empty(t, engine.Hand(3))
	require.Equal(t, card.MustParse("red 9"), engine.ActiveCard())
	require.Equal(t, 2, engine.Current())
	require.Equal(t, -1, engine.Direction())
	require.Equal(t, consts.DeckSize-6, engine.DrawPileSize())
	require.NoError(t, engine.CheckDeck())
}

func TestReadDealRejects(t *testing.T) {
	scenarios := []struct {
		description string
		input       string
	}{
		{"not_json", `hands`},
		{"unknown_card", `{"discard": ["purple 1"]}`},
		{"recoloured_wild_in_hand", `{"hands": [["red wild"], [], [], []], "discard": ["red 1"]}`},
		{"empty_discard", `{}`},
		{"too_many_copies", `{"discard": ["red 0", "red 0"]}`},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			_, err := game.ReadDeal(strings.NewReader(scenario.input), rand.New(rand.NewSource(1)))
			require.ErrorIs(t, err, game.ErrInvalidLayout)
		})
	}
}

func TestOpenDeal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deal.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"discard": ["green 3"]}`), 0o644))

	engine, err := game.OpenDeal(path, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, card.MustParse("green 3"), engine.ActiveCard())
	require.Equal(t, consts.DeckSize-1, engine.DrawPileSize())

	_, err = game.OpenDeal(filepath.Join(t.TempDir(), "missing.json"), rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestCheckDeck(t *testing.T) {
	engine := game.NewEngine(rand.New(rand.NewSource(1)))
	require.ErrorIs(t, engine.CheckDeck(), game.ErrBrokenDeck)

	engine = arrange(t, game.Layout{
		Hands:   [consts.Seats][]card.Card{cards("black wild", "red 2")},
		Discard: cards("red 1"),
	})
	_, err := engine.Play(0, 0)
	require.NoError(t, err)
	require.NoError(t, engine.SetActiveColor(color.Blue))
	require.NoError(t, engine.CheckDeck())
}
