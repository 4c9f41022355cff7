package random

import (
	"math/rand"

	"github.com/they4kman/gomaze/game"
)

// Director wanders the maze, stepping in a random open direction each time
// it acts.
type Director struct {
	navigator *game.Navigator
	buffer    game.Buffer
	rand      *rand.Rand
}

func (director *Director) Start(navigator *game.Navigator, buffer game.Buffer, rng *rand.Rand) {
	director.navigator = navigator
	director.buffer = buffer
	director.rand = rng
}

func (director *Director) Act() game.Direction {
	if director.navigator == nil {
		return game.Still
	}

	wallColor := director.navigator.Config().WallColor
	position := director.navigator.Position()

	open := make([]game.Direction, 0, len(game.Directions))
	for _, direction := range game.Directions {
		next := position.Add(direction.Delta())
		if color, ok := director.buffer.Get(next.X, next.Y); ok && color != wallColor {
			open = append(open, direction)
		}
	}

	if len(open) == 0 {
		return game.Still
	}
	return open[director.rand.Intn(len(open))]
}

func (director *Director) End() {
	director.navigator = nil
	director.buffer = nil
}
