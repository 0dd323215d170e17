package game

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
)

// deal is the file form of a Layout, with cards written as labels.
type deal struct {
	Hands     [consts.Seats][]string `json:"hands"`
	Discard   []string               `json:"discard"`
	Draw      []string               `json:"draw"`
	Current   int                    `json:"current"`
	Direction int                    `json:"direction"`
}

// ReadDeal builds an engine from a JSON deal. Cards left out of the hands,
// the discard pile and the draw pile are shuffled into the draw pile.
func ReadDeal(r io.Reader, rng *rand.Rand) (*Engine, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var d deal
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	layout := Layout{Current: d.Current, Direction: d.Direction}
	for seat, labels := range d.Hands {
		if layout.Hands[seat], err = parseLabels(labels); err != nil {
			return nil, err
		}
	}
	if layout.Discard, err = parseLabels(d.Discard); err != nil {
		return nil, err
	}
	if len(d.Draw) > 0 {
		if layout.Draw, err = parseLabels(d.Draw); err != nil {
			return nil, err
		}
	}
	return Arrange(layout, rng)
}

func OpenDeal(path string, rng *rand.Rand) (*Engine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadDeal(f, rng)
}

func parseLabels(labels []string) ([]card.Card, error) {
	cards := make([]card.Card, 0, len(labels))
	for _, label := range labels {
		c, err := card.Parse(label)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}
