package solver

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/gomaze/game"
)

// Director walks the unique route from the player to the exit.
type Director struct {
	navigator *game.Navigator
	buffer    game.Buffer

	// Remaining cells to walk, starting with the one the player should be on
	route []game.Point
}

func (director *Director) Start(navigator *game.Navigator, buffer game.Buffer, rng *rand.Rand) {
	director.navigator = navigator
	director.buffer = buffer
	director.route = nil
}

func (director *Director) Act() game.Direction {
	if director.navigator == nil || director.navigator.Finished() {
		return game.Still
	}

	position := director.navigator.Position()
	if len(director.route) == 0 || director.route[0] != position {
		director.plan(position)
	}

	if len(director.route) < 2 {
		return game.Still
	}

	direction := game.DirectionBetween(director.route[0], director.route[1])
	director.route = director.route[1:]
	return direction
}

func (director *Director) plan(from game.Point) {
	director.route = game.FindRoute(director.buffer, director.navigator.Config(), from, director.navigator.EndPoint())

	if director.route == nil {
		logrus.WithField("from", from).Warn("No route to the exit")
	} else {
		logrus.WithFields(logrus.Fields{
			"from":  from,
			"steps": len(director.route) - 1,
		}).Debug("Planned route to the exit")
	}
}

// Route returns the cells still to be walked.
func (director *Director) Route() []game.Point {
	return director.route
}

func (director *Director) End() {
	director.navigator = nil
	director.buffer = nil
	director.route = nil
}
