package game

import (
	"fmt"
	"strings"
)

type Point struct {
	X, Y int
}

func (point Point) String() string {
	return fmt.Sprintf("(%d, %d)", point.X, point.Y)
}

func (point Point) Add(delta Point) Point {
	return Point{point.X + delta.X, point.Y + delta.Y}
}

// Buffer is the addressable color surface the maze is carved into and
// navigated on.
type Buffer interface {
	Width() int
	Height() int

	// Get returns the color at (x, y), or false when the coordinates fall
	// outside the buffer.
	Get(x, y int) (uint32, bool)

	// At and Set do not check bounds; callers must only pass points known
	// to lie within the buffer.
	At(point Point) uint32
	Set(point Point, color uint32)

	Fill(color uint32)
}

// PixelBuffer stores colors row-major in a single slice.
type PixelBuffer struct {
	width, height int
	pixels        []uint32
}

func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		width:  width,
		height: height,
		pixels: make([]uint32, width*height),
	}
}

func (buffer *PixelBuffer) Width() int {
	return buffer.width
}

func (buffer *PixelBuffer) Height() int {
	return buffer.height
}

func (buffer *PixelBuffer) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < buffer.width && y < buffer.height
}

func (buffer *PixelBuffer) Get(x, y int) (uint32, bool) {
	if !buffer.Contains(x, y) {
		return 0, false
	}
	return buffer.pixels[y*buffer.width+x], true
}

func (buffer *PixelBuffer) At(point Point) uint32 {
	return buffer.pixels[point.Y*buffer.width+point.X]
}

func (buffer *PixelBuffer) Set(point Point, color uint32) {
	buffer.pixels[point.Y*buffer.width+point.X] = color
}

func (buffer *PixelBuffer) Fill(color uint32) {
	for i := range buffer.pixels {
		buffer.pixels[i] = color
	}
}

// Pixels exposes the backing slice, row-major.
func (buffer *PixelBuffer) Pixels() []uint32 {
	return buffer.pixels
}

func (buffer *PixelBuffer) Equal(other *PixelBuffer) bool {
	if buffer.width != other.width || buffer.height != other.height {
		return false
	}
	for i, color := range buffer.pixels {
		if other.pixels[i] != color {
			return false
		}
	}
	return true
}

// Legend maps colors to the glyphs used when sketching a buffer as text.
type Legend map[uint32]rune

const unknownGlyph = '?'

// Sketch draws the buffer one row per line, using the legend for each color.
// Colors missing from the legend are drawn as '?'.
func Sketch(buffer Buffer, legend Legend) string {
	var sketch strings.Builder
	for y := 0; y < buffer.Height(); y++ {
		if y > 0 {
			sketch.WriteByte('\n')
		}
		for x := 0; x < buffer.Width(); x++ {
			glyph, ok := legend[buffer.At(Point{x, y})]
			if !ok {
				glyph = unknownGlyph
			}
			sketch.WriteRune(glyph)
		}
	}
	return sketch.String()
}

// ParseSketch is the inverse of Sketch. Every row must have the same length,
// and every glyph must appear in the legend.
func ParseSketch(sketch string, legend Legend) (*PixelBuffer, error) {
	rows := strings.Split(strings.TrimRight(sketch, "\n"), "\n")
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty sketch")
	}

	colors := make(map[rune]uint32, len(legend))
	for color, glyph := range legend {
		colors[glyph] = color
	}

	width := len([]rune(rows[0]))
	buffer := NewPixelBuffer(width, len(rows))
	for y, row := range rows {
		glyphs := []rune(row)
		if len(glyphs) != width {
			return nil, fmt.Errorf("row %d has width %d, expected %d", y, len(glyphs), width)
		}
		for x, glyph := range glyphs {
			color, ok := colors[glyph]
			if !ok {
				return nil, fmt.Errorf("unknown glyph %q at %v", glyph, Point{x, y})
			}
			buffer.Set(Point{x, y}, color)
		}
	}
	return buffer, nil
}
