package game

import (
	"github.com/sirupsen/logrus"
)

// PlaceStartEnd picks an entrance on the left edge and an exit on the right
// edge, each on a row whose neighboring interior cell is open path. The
// markers are painted onto the buffer and the navigator is moved onto the
// entrance, which is returned.
//
// Rows are drawn for both edges on every attempt until each edge has been
// accepted once. The buffer must be at least MinMazeDimension wide and hold
// path in both columns next to the edges, as every generated maze does.
func PlaceStartEnd(buffer Buffer, rng Rand, navigator *Navigator) Point {
	pathColor := navigator.config.PathColor
	widthMax := buffer.Width() - 1

	var start, end Point
	startReady, endReady := false, false
	attempts := 0

	for !startReady || !endReady {
		attempts++
		startY := rng.Intn(buffer.Height())
		endY := rng.Intn(buffer.Height())

		if !startReady && buffer.At(Point{1, startY}) == pathColor {
			start = Point{0, startY}
			buffer.Set(start, navigator.PlayerColor)
			startReady = true
		}
		if !endReady && buffer.At(Point{widthMax - 1, endY}) == pathColor {
			end = Point{widthMax, endY}
			buffer.Set(end, navigator.FinishColor)
			endReady = true
		}
	}

	navigator.place(start, end)

	logrus.WithFields(logrus.Fields{
		"start":    start,
		"end":      end,
		"attempts": attempts,
	}).Debug("Placed maze entrance and exit")

	return start
}
