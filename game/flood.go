package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/gomaze/util/collections"
)

type Visitor func(cell Point)

// flood visits every open cell reachable from origin, breadth first. A cell
// is open when it lies within the buffer and is not colored as a wall.
func flood(buffer Buffer, config MazeConfig, origin Point, visited collections.Set[Point], visit Visitor) {
	if !isOpen(buffer, config, origin) || !visited.AddNew(origin) {
		return
	}

	var visitQueue deque.Deque
	visitQueue.PushBack(origin)

	for visitQueue.Len() > 0 {
		cell := visitQueue.PopFront().(Point)
		visit(cell)

		for _, direction := range Directions {
			neighbor := cell.Add(direction.Delta())
			if isOpen(buffer, config, neighbor) && visited.AddNew(neighbor) {
				visitQueue.PushBack(neighbor)
			}
		}
	}
}

func isOpen(buffer Buffer, config MazeConfig, cell Point) bool {
	color, ok := buffer.Get(cell.X, cell.Y)
	return ok && color != config.WallColor
}

// Topology summarizes the graph formed by the open cells of a buffer, with
// orthogonally adjacent open cells joined by an edge.
type Topology struct {
	Cells      int `yaml:"cells"`
	Edges      int `yaml:"edges"`
	Components int `yaml:"components"`
}

// Perfect reports whether the open cells form a single tree: everything is
// connected and there are no loops.
func (topology Topology) Perfect() bool {
	return topology.Components == 1 && topology.Edges == topology.Cells-1
}

func Analyze(buffer Buffer, config MazeConfig) Topology {
	var topology Topology
	visited := make(collections.Set[Point])

	for y := 0; y < buffer.Height(); y++ {
		for x := 0; x < buffer.Width(); x++ {
			cell := Point{x, y}
			if !isOpen(buffer, config, cell) {
				continue
			}

			topology.Cells++
			if isOpen(buffer, config, Point{x + 1, y}) {
				topology.Edges++
			}
			if isOpen(buffer, config, Point{x, y + 1}) {
				topology.Edges++
			}

			if !visited.Contains(cell) {
				topology.Components++
				flood(buffer, config, cell, visited, func(Point) {})
			}
		}
	}

	return topology
}

// FindRoute returns the shortest chain of open cells leading from one cell to
// another, both ends included, or nil when there is none.
func FindRoute(buffer Buffer, config MazeConfig, from, to Point) []Point {
	if !isOpen(buffer, config, from) || !isOpen(buffer, config, to) {
		return nil
	}

	parents := make(map[Point]Point)
	visited := make(collections.Set[Point])
	flood(buffer, config, from, visited, func(cell Point) {
		for _, direction := range Directions {
			neighbor := cell.Add(direction.Delta())
			if _, seen := parents[neighbor]; !seen && neighbor != from && isOpen(buffer, config, neighbor) {
				parents[neighbor] = cell
			}
		}
	})

	if !visited.Contains(to) {
		return nil
	}

	route := []Point{to}
	for cell := to; cell != from; {
		cell = parents[cell]
		route = append(route, cell)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route
}
