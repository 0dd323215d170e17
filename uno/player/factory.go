package player

import (
	"fmt"
	"math/rand"
)

const (
	StrategyNaive = "naive"
	StrategyGood  = "good"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// New builds the named strategy under a random bot name.
func New(strategy string, rng *rand.Rand) (Strategy, error) {
	botName := botNames[rng.Intn(len(botNames))]
	switch strategy {
	case StrategyNaive:
		return NewNaivePlayer(botName, rng), nil
	case StrategyGood:
		return NewGoodPlayer(botName), nil
	}
	return nil, fmt.Errorf("unknown bot strategy '%s'", strategy)
}
