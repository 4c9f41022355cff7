package game

import "fmt"

type Direction int

const (
	North Direction = iota
	South
	East
	West
	Still
)

var Directions = []Direction{
	North,
	South,
	East,
	West,
}

var directionNames = map[Direction]string{
	North: "north",
	South: "south",
	East:  "east",
	West:  "west",
	Still: "still",
}

func (direction Direction) String() string {
	if name, ok := directionNames[direction]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(direction))
}

// Delta is the one-cell offset moved in this direction. Still has none.
func (direction Direction) Delta() Point {
	switch direction {
	case North:
		return Point{0, -1}
	case South:
		return Point{0, 1}
	case East:
		return Point{1, 0}
	case West:
		return Point{-1, 0}
	default:
		return Point{}
	}
}

// DirectionBetween returns the direction leading from one cell to an
// orthogonally adjacent one, or Still when they are not adjacent.
func DirectionBetween(from, to Point) Direction {
	for _, direction := range Directions {
		if from.Add(direction.Delta()) == to {
			return direction
		}
	}
	return Still
}

const (
	DefaultPathColor   uint32 = 0
	DefaultWallColor   uint32 = 0xFFFFFFFF
	DefaultPlayerColor uint32 = 0x00FF00
	DefaultFinishColor uint32 = 0xFF00FF
)

// Smallest width and height a maze can be generated and entered on.
const MinMazeDimension = 3
