package game

import (
	"github.com/gammazero/deque"
)

// Rand is the random source consumed by generation and placement.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// MazeConfig holds the two colors that give the buffer its meaning.
type MazeConfig struct {
	PathColor uint32 `yaml:"path_color"`
	WallColor uint32 `yaml:"wall_color"`
}

func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		PathColor: DefaultPathColor,
		WallColor: DefaultWallColor,
	}
}

func (config MazeConfig) Legend() Legend {
	return Legend{
		config.PathColor: '.',
		config.WallColor: '#',
	}
}

// Generate walls off the whole buffer, then carves a perfect maze into it
// with a randomized depth-first search. Carving visits every other cell
// starting from a random one; the cell between two visited cells is opened
// to join them.
func (config MazeConfig) Generate(buffer Buffer, rng Rand) {
	buffer.Fill(config.WallColor)

	start := Point{rng.Intn(buffer.Width()), rng.Intn(buffer.Height())}
	buffer.Set(start, config.PathColor)

	var stack deque.Deque
	stack.PushBack(start)

	candidates := make([]Point, 0, 4)
	for stack.Len() > 0 {
		cell := stack.PopBack().(Point)

		candidates = candidates[:0]
		for _, delta := range carveDeltas {
			next := cell.Add(delta)
			if color, ok := buffer.Get(next.X, next.Y); ok && color == config.WallColor {
				candidates = append(candidates, next)
			}
		}

		if len(candidates) == 0 {
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		if len(candidates) > 1 {
			stack.PushBack(cell)
		}
		stack.PushBack(next)

		buffer.Set(next, config.PathColor)
		buffer.Set(midpoint(cell, next), config.PathColor)
	}
}

// West, east, north, south.
var carveDeltas = []Point{
	{-2, 0},
	{2, 0},
	{0, -2},
	{0, 2},
}

func midpoint(a, b Point) Point {
	return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}
