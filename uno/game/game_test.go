package game_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func cards(labels ...string) []card.Card {
	parsed := make([]card.Card, 0, len(labels))
	for _, label := range labels {
		parsed = append(parsed, card.MustParse(label))
	}
	return parsed
}

func arrange(t *testing.T, layout game.Layout) *game.Engine {
	t.Helper()
	engine, err := game.Arrange(layout, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	return engine
}

func requireConserved(t *testing.T, engine *game.Engine) {
	t.Helper()
	require.Equal(t, consts.DeckSize, engine.Count())
	require.NoError(t, engine.CheckDeck())
	require.NotZero(t, engine.DiscardPileSize())
}

func TestInitialize(t *testing.T) {
	engine := game.NewEngine(rand.New(rand.NewSource(42)))
	require.NoError(t, engine.Initialize())

	for seat := 0; seat < consts.Seats; seat++ {
		require.Len(t, engine.Hand(seat), consts.StartingHand)
	}
	require.Equal(t, 79, engine.DrawPileSize())
	require.Equal(t, 1, engine.DiscardPileSize())
	require.Equal(t, 0, engine.Current())
	require.Equal(t, 1, engine.Direction())
	require.False(t, engine.ActiveCard().Kind().Wild())
	requireConserved(t, engine)
}

func TestInitializeTwice(t *testing.T) {
	engine := game.NewEngine(rand.New(rand.NewSource(1)))
	require.NoError(t, engine.Initialize())
	require.ErrorIs(t, engine.Initialize(), game.ErrAlreadyInitialized)

	engine.Teardown()
	require.False(t, engine.Initialized())
	require.Zero(t, engine.Count())
	require.NoError(t, engine.Initialize())
	requireConserved(t, engine)
}

func TestInitializeIsDeterministicForASeed(t *testing.T) {
	first := game.NewEngine(rand.New(rand.NewSource(99)))
	second := game.NewEngine(rand.New(rand.NewSource(99)))
	require.NoError(t, first.Initialize())
	require.NoError(t, second.Initialize())
	require.Equal(t, first.AllCards(), second.AllCards())
}

func TestOperationsBeforeInitialize(t *testing.T) {
	engine := game.NewEngine(rand.New(rand.NewSource(1)))
	_, err := engine.Draw(0)
	require.ErrorIs(t, err, game.ErrNotInitialized)
	_, err = engine.Play(0, 0)
	require.ErrorIs(t, err, game.ErrNotInitialized)
	require.False(t, engine.CanPlay(0, 0))
}

func TestCanPlay(t *testing.T) {
	engine := arrange(t, game.Layout{
		Hands: [consts.Seats][]card.Card{
			cards("blue 7", "red 3", "black wild", "green Skip"),
			cards("red 1"),
			cards("red 2"),
			cards("red 4"),
		},
		Discard: cards("green 7"),
	})

	scenarios := []struct {
		description    string
		seat           int
		index          int
		expectedResult bool
	}{
		{description: "same_rank", seat: 0, index: 0, expectedResult: true},
		{description: "different_color_and_rank", seat: 0, index: 1, expectedResult: false},
		{description: "wild", seat: 0, index: 2, expectedResult: true},
		{description: "same_color", seat: 0, index: 3, expectedResult: true},
		{description: "index_one_past_the_end", seat: 0, index: 4, expectedResult: false},
		{description: "negative_index", seat: 0, index: -1, expectedResult: false},
		{description: "invalid_seat", seat: 4, index: 0, expectedResult: false},
		{description: "other_seat_hand", seat: 1, index: 0, expectedResult: false},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expectedResult, engine.CanPlay(scenario.seat, scenario.index))
		})
	}
}

func TestPlayMatchingRank(t *testing.T) {
	engine := arrange(t, game.Layout{
		Hands: [consts.Seats][]card.Card{
			cards("blue 7", "red 3"),
			cards("red 1"),
			cards("red 2"),
			cards("red 4"),
		},
		Discard: cards("green 7"),
	})

	require.True(t, engine.CanPlay(0, 0))
	kind, err := engine.Play(0, 0)
	require.NoError(t, err)
	require.Equal(t, card.KindNumber, kind)
	require.Equal(t, card.MustParse("blue 7"), engine.ActiveCard())
	require.Equal(t, cards("red 3"), engine.Hand(0))
	require.Equal(t, 0, engine.Current())
	requireConserved(t, engine)
}

func TestPlayOnePastTheEnd(t *testing.T) {
	engine := arrange(t, game.Layout{
		Hands: [consts.Seats][]card.Card{
			cards("blue 7", "red 3"),
			cards("red 1"),
			cards("red 2"),
			cards("red 4"),
		},
		Discard: cards("green 7"),
	})

	_, err := engine.Play(0, 2)
	require.ErrorIs(t, err, game.ErrInvalidPlay)
	require.Equal(t, cards("blue 7", "red 3"), engine.Hand(0))
	require.Equal(t, card.MustParse("green 7"), engine.ActiveCard())
	require.Equal(t, 1, engine.DiscardPileSize())
}

func TestPlayOutOfTurn(t *testing.T) {
	engine := arrange(t, game.Layout{
		Hands: [consts.Seats][]card.Card{
			cards("blue 7"),
			cards("green 1"),
			cards("red 2"),
			cards("red 4"),
		},
		Discard: cards("green 7"),
	})

	require.True(t, engine.CanPlay(1, 0))
	_, err := engine.Play(1, 0)
	require.ErrorIs(t, err, game.ErrInvalidPlay)
	require.Equal(t, cards("green 1"), engine.Hand(1))
}

func TestPlayUnplayableCard(t *testing.T) {
	engine := arrange(t, game.Layout{
		Hands: [consts.Seats][]card.Card{
			cards("red 3"),
			cards("red 1"),
			cards("red 2"),
			cards("red 4"),
		},
		Discard: cards("green 7"),
	})

	_, err := engine.Play(0, 0)
	require.ErrorIs(t, err, game.ErrInvalidPlay)
	require.Equal(t, cards("red 3"), engine.Hand(0))
}

func TestPerformCardActions(t *testing.T) {
	scenarios := []struct {
		description       string
		played            string
		chosenColor       color.Color
		direction         int
		expectedCurrent   int
		expectedDirection int
		expectedDrawSeat  int
		expectedDrawn     int
	}{
		{
			description:       "number_passes_to_the_next_seat",
			played:            "red 5",
			expectedCurrent:   1,
			expectedDirection: 1,
			expectedDrawSeat:  -1,
		},
		{
			description:       "skip_jumps_over_the_next_seat",
			played:            "red Skip",
			expectedCurrent:   2,
			expectedDirection: 1,
			expectedDrawSeat:  -1,
		},
		{
			description:       "reverse_passes_in_the_new_direction",
			played:            "red Reverse",
			expectedCurrent:   3,
			expectedDirection: -1,
			expectedDrawSeat:  -1,
		},
		{
			description:       "reverse_when_already_reversed",
			played:            "red Reverse",
			direction:         -1,
			expectedCurrent:   1,
			expectedDirection: 1,
			expectedDrawSeat:  -1,
		},
		{
			description:       "draw_two_forfeits_the_drawing_seat",
			played:            "red Draw2",
			expectedCurrent:   2,
			expectedDirection: 1,
			expectedDrawSeat:  1,
			expectedDrawn:     2,
		},
		{
			description:       "draw_two_counter_clockwise",
			played:            "red Draw2",
			direction:         -1,
			expectedCurrent:   2,
			expectedDirection: -1,
			expectedDrawSeat:  3,
			expectedDrawn:     2,
		},
		{
			description:       "wild_passes_to_the_next_seat",
			played:            "black wild",
			chosenColor:       color.Blue,
			expectedCurrent:   1,
			expectedDirection: 1,
			expectedDrawSeat:  -1,
		},
		{
			description:       "wild_draw_four_forfeits_the_drawing_seat",
			played:            "black 4",
			chosenColor:       color.Yellow,
			expectedCurrent:   2,
			expectedDirection: 1,
			expectedDrawSeat:  1,
			expectedDrawn:     4,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			engine := arrange(t, game.Layout{
				Hands: [consts.Seats][]card.Card{
					cards(scenario.played, "green 1"),
					cards("yellow 1"),
					cards("yellow 2"),
					cards("yellow 3"),
				},
				Discard:   cards("red 9"),
				Direction: scenario.direction,
			})
			before := engine.HandSizes()

			kind, err := engine.Play(0, 0)
			require.NoError(t, err)
			if kind.Wild() {
				require.NoError(t, engine.SetActiveColor(scenario.chosenColor))
				require.Equal(t, scenario.chosenColor, engine.ActiveCard().Color)
			}
			effect, err := engine.PerformCardActions(kind)
			require.NoError(t, err)

			require.Equal(t, scenario.expectedCurrent, engine.Current())
			require.Equal(t, scenario.expectedCurrent, effect.NextPlayer)
			require.Equal(t, scenario.expectedDirection, engine.Direction())
			require.Equal(t, scenario.expectedDrawSeat, effect.DrawSeat)
			require.Len(t, effect.Drawn, scenario.expectedDrawn)
			if scenario.expectedDrawSeat >= 0 {
				after := engine.HandSizes()
				require.Equal(t, before[scenario.expectedDrawSeat]+scenario.expectedDrawn, after[scenario.expectedDrawSeat])
			}
			requireConserved(t, engine)
		})
	}
}

func TestWildDrawFourNeedsAColor(t *testing.T) {
	engine := arrange(t, game.Layout{
		Hands: [consts.Seats][]card.Card{
			cards("black 4", "green 1"),
			cards("yellow 1"),
			cards("yellow 2"),
			cards("yellow 3"),
		},
		Discard: cards("red 9"),
	})

	kind, err := engine.Play(0, 0)
	require.NoError(t, err)
	require.Equal(t, card.KindWildDrawFour, kind)
	require.True(t, engine.ColorPending())

	for _, chosen := range []color.Color{color.Black, color.Color(5), color.Color(255)} {
		require.ErrorIs(t, engine.SetActiveColor(chosen), game.ErrInvalidColor)
		require.Equal(t, card.MustParse("black 4"), engine.ActiveCard())
	}
	_, err = engine.PerformCardActions(kind)
	require.ErrorIs(t, err, game.ErrColorPending)
	_, err = engine.Play(0, 0)
	require.ErrorIs(t, err, game.ErrColorPending)

	require.NoError(t, engine.SetActiveColor(color.Green))
	require.ErrorIs(t, engine.SetActiveColor(color.Red), game.ErrColorNotPending)
	require.Equal(t, card.New(color.Green, card.WildDrawFour), engine.ActiveCard())
}

func TestSetActiveColorWithoutWild(t *testing.T) {
	engine := game.NewEngine(rand.New(rand.NewSource(3)))
	require.NoError(t, engine.Initialize())
	require.ErrorIs(t, engine.SetActiveColor(color.Red), game.ErrColorNotPending)
}

func TestDrawRefillsFromDiscardPile(t *testing.T) {
	hands := [consts.Seats][]card.Card{
		cards("red 1"),
		cards("red 2"),
		cards("red 3"),
		cards("red 4"),
	}
	active := card.MustParse("blue 9")
	used := append(cards("red 1", "red 2", "red 3", "red 4"), active)
	rest, err := game.Remaining(used...)
	require.NoError(t, err)
	for i, c := range rest {
		if c.Rank == card.Wild {
			rest[i] = card.New(color.Red, card.Wild)
			break
		}
	}

	engine := arrange(t, game.Layout{
		Hands:   hands,
		Discard: append(rest, active),
		Draw:    []card.Card{},
	})
	require.Zero(t, engine.DrawPileSize())

	drawn, err := engine.Draw(0)
	require.NoError(t, err)
	require.Contains(t, engine.Hand(0), drawn)
	require.Equal(t, 1, engine.DiscardPileSize())
	require.Equal(t, active, engine.ActiveCard())
	require.Equal(t, len(rest)-1, engine.DrawPileSize())
	requireConserved(t, engine)

	for _, c := range engine.AllCards() {
		if c.Kind().Wild() {
			require.Equal(t, color.Black, c.Color)
		}
	}
}

func TestDrawWithNothingLeft(t *testing.T) {
	active := card.MustParse("blue 9")
	rest, err := game.Remaining(active)
	require.NoError(t, err)

	engine := arrange(t, game.Layout{
		Hands:   [consts.Seats][]card.Card{rest},
		Discard: []card.Card{active},
		Draw:    []card.Card{},
	})

	_, err = engine.Draw(1)
	require.ErrorIs(t, err, game.ErrEmptyDeck)
	require.Equal(t, active, engine.ActiveCard())
	require.Zero(t, engine.HandSize(1))
	require.True(t, engine.Won(1))
	require.False(t, engine.Won(0))
	require.False(t, engine.Won(4))
	requireConserved(t, engine)
}

func TestDrawInvalidSeat(t *testing.T) {
	engine := game.NewEngine(rand.New(rand.NewSource(3)))
	require.NoError(t, engine.Initialize())
	_, err := engine.Draw(consts.Seats)
	require.ErrorIs(t, err, game.ErrInvalidSeat)
	require.Nil(t, engine.Hand(-1))
}

func TestArrangeRejectsBadLayouts(t *testing.T) {
	scenarios := []struct {
		description string
		layout      game.Layout
	}{
		{
			description: "empty_discard_pile",
			layout:      game.Layout{},
		},
		{
			description: "uncoloured_active_wild",
			layout:      game.Layout{Discard: cards("black wild")},
		},
		{
			description: "too_many_copies",
			layout:      game.Layout{Discard: cards("red 0", "red 0")},
		},
		{
			description: "draw_pile_does_not_complete_the_deck",
			layout:      game.Layout{Discard: cards("red 0"), Draw: cards("red 1")},
		},
		{
			description: "current_seat_out_of_range",
			layout:      game.Layout{Discard: cards("red 0"), Current: 4},
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			_, err := game.Arrange(scenario.layout, rand.New(rand.NewSource(1)))
			require.ErrorIs(t, err, game.ErrInvalidLayout)
		})
	}
}

func TestSnapshot(t *testing.T) {
	engine := arrange(t, game.Layout{
		Hands: [consts.Seats][]card.Card{
			cards("blue 7", "red 3"),
			cards("red 1"),
			cards("red 2", "red 5", "red 6"),
			cards("red 4"),
		},
		Discard: cards("green 7"),
		Current: 2,
	})

	state := engine.Snapshot(2)
	require.Equal(t, 2, state.Seat)
	require.Equal(t, 2, state.Current)
	require.Equal(t, [consts.Seats]int{2, 1, 3, 1}, state.HandSizes)
	require.Equal(t, cards("red 2", "red 5", "red 6"), state.Hand)
	require.Equal(t, card.MustParse("green 7"), state.LastPlayedCard)
	require.Contains(t, state.String(), "Last played card")
	require.Contains(t, state.String(), "*seat 2 (3 card(s))")
}

// Plays a whole game with a first-legal-card policy and checks the table
// invariants after every turn.
func TestSimulatedGameKeepsInvariants(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 4, 5} {
		engine := game.NewEngine(rand.New(rand.NewSource(seed)))
		require.NoError(t, engine.Initialize())

		for turn := 0; turn < 2000; turn++ {
			seat := engine.Current()
			playable := game.PlayableIndexes(engine.Hand(seat), engine.ActiveCard())
			if len(playable) == 0 {
				_, err := engine.Draw(seat)
				require.NoError(t, err)
				require.Equal(t, (seat+engine.Direction()+consts.Seats)%consts.Seats, engine.AdvanceTurn(1))
				requireConserved(t, engine)
				continue
			}

			kind, err := engine.Play(seat, playable[0])
			require.NoError(t, err)
			if kind.Wild() {
				require.NoError(t, engine.SetActiveColor(color.Red))
			}
			effect, err := engine.PerformCardActions(kind)
			require.NoError(t, err)
			require.Contains(t, []int{1, -1}, engine.Direction())
			expected := ((seat+engine.Direction()*effect.Steps)%consts.Seats + consts.Seats) % consts.Seats
			require.Equal(t, expected, engine.Current())
			requireConserved(t, engine)

			if engine.Won(seat) {
				break
			}
		}
	}
}
