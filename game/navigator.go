package game

import (
	"github.com/sirupsen/logrus"
)

// Navigator moves a single player one cell at a time through a carved maze,
// treating every cell not colored as a wall as open.
type Navigator struct {
	PlayerColor uint32
	FinishColor uint32

	position     Point
	previousSpot Point
	endPoint     Point
	direction    Direction
	config       MazeConfig

	gameOver bool

	// Called once, on the step that reaches the end point
	OnFinish func()
}

func NewNavigator(start, end Point, config MazeConfig) *Navigator {
	return &Navigator{
		PlayerColor:  DefaultPlayerColor,
		FinishColor:  DefaultFinishColor,
		position:     start,
		previousSpot: start,
		endPoint:     end,
		direction:    Still,
		config:       config,
	}
}

func (navigator *Navigator) Position() Point {
	return navigator.position
}

func (navigator *Navigator) PreviousSpot() Point {
	return navigator.previousSpot
}

func (navigator *Navigator) EndPoint() Point {
	return navigator.endPoint
}

func (navigator *Navigator) Direction() Direction {
	return navigator.direction
}

func (navigator *Navigator) Config() MazeConfig {
	return navigator.config
}

func (navigator *Navigator) Finished() bool {
	return navigator.gameOver
}

// Legend extends the maze legend with the player and finish markers.
func (navigator *Navigator) Legend() Legend {
	legend := navigator.config.Legend()
	legend[navigator.FinishColor] = 'E'
	legend[navigator.PlayerColor] = '@'
	return legend
}

func (navigator *Navigator) place(start, end Point) {
	navigator.position = start
	navigator.previousSpot = start
	navigator.endPoint = end
}

// HandleInput turns this frame's controls into a facing direction. When
// several directions are held, the last one checked (left) wins.
func (navigator *Navigator) HandleInput(input InputSource, start Point) {
	if input.Pressed(ControlReset) {
		navigator.Reset(start)
	}

	if input.Pressed(ControlUp) {
		navigator.direction = North
	}
	if input.Pressed(ControlDown) {
		navigator.direction = South
	}
	if input.Pressed(ControlRight) {
		navigator.direction = East
	}
	if input.Pressed(ControlLeft) {
		navigator.direction = West
	}
}

func (navigator *Navigator) Face(direction Direction) {
	navigator.direction = direction
}

// Reset puts the player back on the start cell. The cell it leaves is
// repainted on the next Render. The finished flag is kept.
func (navigator *Navigator) Reset(start Point) {
	navigator.previousSpot = navigator.position
	navigator.position = start
	navigator.direction = Still
}

// Step advances the player one cell in its facing direction, unless the way
// is blocked by a wall or the buffer edge, or the maze is already finished.
// The facing direction is consumed either way. Reports whether the player
// moved.
func (navigator *Navigator) Step(buffer Buffer) bool {
	direction := navigator.direction
	if direction == Still {
		return false
	}
	navigator.direction = Still

	if navigator.gameOver {
		return false
	}

	next := navigator.position.Add(direction.Delta())
	color, ok := buffer.Get(next.X, next.Y)
	if !ok || color == navigator.config.WallColor {
		return false
	}

	navigator.previousSpot = navigator.position
	navigator.position = next

	if next == navigator.endPoint {
		navigator.gameOver = true
		logrus.WithField("position", next).Info("Congrats, you've finished the maze!")
		if navigator.OnFinish != nil {
			navigator.OnFinish()
		}
	}

	return true
}

// Render paints the vacated cell back to path (or to the finish marker, when
// the player left the end point) and the player onto its current cell.
func (navigator *Navigator) Render(buffer Buffer) {
	vacated := navigator.config.PathColor
	if navigator.previousSpot == navigator.endPoint {
		vacated = navigator.FinishColor
	}
	buffer.Set(navigator.previousSpot, vacated)
	buffer.Set(navigator.position, navigator.PlayerColor)
}
