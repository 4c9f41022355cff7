package game

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRand replays fixed choices, then keeps answering 0.
type scriptedRand struct {
	values []int
}

func script(values ...int) *scriptedRand {
	return &scriptedRand{values: values}
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	value := r.values[0]
	r.values = r.values[1:]
	return value % n
}

func rows(lines ...string) string {
	return strings.Join(lines, "\n")
}

// Carved by MazeConfig.Generate on a 6x6 buffer when the start cell is
// (1, 1) and the first candidate is always chosen.
var goldenMaze = rows(
	"######",
	"#.....",
	"#####.",
	"#.....",
	"#.####",
	"#.....",
)

// Carved by MazeConfig.Generate on a 6x6 buffer from rand.NewSource(38).
var seededMaze = rows(
	"######",
	".....#",
	".###.#",
	"...#.#",
	".#.#.#",
	".#.#.#",
)

// A 10x10 maze from rand.NewSource(38), with the entrance and exit placed
// by the same source right after carving.
var seededPlacedMaze = rows(
	"##########",
	".........#",
	".#####.#.E",
	"@..#.#.#.#",
	".###.#.#.#",
	".#...#.#.#",
	".#.###.#.#",
	".#.#...#.#",
	".#.#####.#",
	".#.......#",
)

func sketchBuffer(t *testing.T, sketch string, legend Legend) *PixelBuffer {
	t.Helper()
	buffer, err := ParseSketch(sketch, legend)
	require.NoError(t, err)
	return buffer
}

// placedMaze returns the golden maze with its entrance on (0, 4) and its exit
// on (5, 5), and a navigator standing on the entrance.
func placedMaze(t *testing.T) (*PixelBuffer, *Navigator, Point) {
	t.Helper()
	navigator := NewNavigator(Point{}, Point{}, DefaultMazeConfig())
	buffer := sketchBuffer(t, goldenMaze, navigator.Legend())
	start := PlaceStartEnd(buffer, script(0, 2, 4, 4, 0, 5), navigator)
	return buffer, navigator, start
}

// seededPlacement carves and places a 10x10 maze from seed 38.
func seededPlacement(t *testing.T) (*PixelBuffer, *Navigator, Point) {
	t.Helper()
	config := DefaultMazeConfig()
	rng := rand.New(rand.NewSource(38))

	buffer := NewPixelBuffer(10, 10)
	config.Generate(buffer, rng)
	navigator := NewNavigator(Point{}, Point{}, config)
	start := PlaceStartEnd(buffer, rng, navigator)
	return buffer, navigator, start
}
