package player

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

type naivePlayer struct {
	name string
	rng  *rand.Rand
}

func NewNaivePlayer(name string, rng *rand.Rand) Strategy {
	return naivePlayer{name: name, rng: rng}
}

func (p naivePlayer) Name() string {
	return p.name
}

func (p naivePlayer) PickColor(state game.State) color.Color {
	randomIndex := p.rng.Intn(len(color.Chooseable))
	return color.Chooseable[randomIndex]
}

func (p naivePlayer) Play(playableIndexes []int, state game.State) int {
	return playableIndexes[0]
}
