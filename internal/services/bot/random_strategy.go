package bot

import (
	"github.com/pmorrell/blockfall/internal/dependencies/random"
	"github.com/pmorrell/blockfall/internal/model"
)

// RandomStrategy mashes keys with fixed per-tick probabilities. It never
// presses pause, so a run always makes progress.
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// Act presses each key with a small independent probability
func (s *RandomStrategy) Act(view View) model.Input {
	if view.Active == nil {
		return model.Input{}
	}

	press := func(oneIn int) model.KeyState {
		if s.random.Intn(oneIn) == 0 {
			return model.KeyState{Pressed: true, Held: true}
		}
		return model.KeyState{}
	}

	return model.Input{
		Left:      press(8),
		Right:     press(8),
		Down:      press(12),
		Up:        press(40),
		RotateCW:  press(15),
		RotateCCW: press(25),
		Hold:      press(60),
	}
}
