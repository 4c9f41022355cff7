package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/gomaze/game"
)

var directionControls = map[game.Direction]game.Control{
	game.North: game.ControlUp,
	game.South: game.ControlDown,
	game.East:  game.ControlRight,
	game.West:  game.ControlLeft,
}

func newGame(t *testing.T) *Game {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	config := game.NewGameConfig()
	config.Width = 15
	config.Height = 11
	config.Seed = 38
	config.Scale = 2
	config.Sound = false

	g, err := New(screen, config)
	require.NoError(t, err)
	return g
}

func keyFor(control game.Control) *tcell.EventKey {
	for key, keyControl := range keyControls {
		if keyControl == control {
			return tcell.NewEventKey(key, 0, tcell.ModNone)
		}
	}
	for r, runeControl := range runeControls {
		if runeControl == control {
			return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
		}
	}
	return nil
}

func route(g *Game) []game.Point {
	session := g.Session()
	return game.FindRoute(session.Buffer(), session.Config().Maze, session.Navigator().Position(), session.Navigator().EndPoint())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		ev      *tcell.EventKey
		action  Action
		control game.Control
	}{
		{"Escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit, 0},
		{"Ctrl-C", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), ActionQuit, 0},
		{"Enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionNewMaze, 0},
		{"Up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionControl, game.ControlUp},
		{"Left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionControl, game.ControlLeft},
		{"k", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), ActionControl, game.ControlUp},
		{"j", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), ActionControl, game.ControlDown},
		{"h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), ActionControl, game.ControlLeft},
		{"l", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), ActionControl, game.ControlRight},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionControl, game.ControlReset},
		{"Q", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), ActionControl, game.ControlReset},
		{"Other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone, 0},
		{"Other key", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ActionNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, control := Classify(tt.ev)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.control, control)
		})
	}
}

func TestHandleEventMoves(t *testing.T) {
	g := newGame(t)
	steps := route(g)
	require.True(t, len(steps) > 1)

	direction := game.DirectionBetween(steps[0], steps[1])
	quit, err := g.HandleEvent(keyFor(directionControls[direction]))
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, steps[0], g.Session().Navigator().Position())

	g.Frame()
	assert.Equal(t, steps[1], g.Session().Navigator().Position())

	// Controls are consumed by the frame that played them.
	g.Frame()
	assert.Equal(t, steps[1], g.Session().Navigator().Position())
}

func TestHandleEventLatestDirectionWins(t *testing.T) {
	g := newGame(t)

	for _, control := range []game.Control{game.ControlLeft, game.ControlReset, game.ControlUp} {
		_, err := g.HandleEvent(keyFor(control))
		require.NoError(t, err)
	}

	assert.True(t, g.input.Pressed(game.ControlUp))
	assert.False(t, g.input.Pressed(game.ControlLeft))
	assert.True(t, g.input.Pressed(game.ControlReset))

	g.Frame()
	for _, control := range game.Controls {
		assert.False(t, g.input.Pressed(control))
	}
}

func TestHandleEventQuit(t *testing.T) {
	g := newGame(t)
	quit, err := g.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestHandleEventNewMaze(t *testing.T) {
	g := newGame(t)
	first := g.Session()

	_, err := g.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	require.NoError(t, err)
	assert.Same(t, first, g.Session())

	steps := route(g)
	for i := 1; i < len(steps); i++ {
		_, err := g.HandleEvent(keyFor(directionControls[game.DirectionBetween(steps[i-1], steps[i])]))
		require.NoError(t, err)
		g.Frame()
	}
	require.True(t, g.Session().Finished())

	_, err = g.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	require.NoError(t, err)
	assert.NotSame(t, first, g.Session())
	assert.False(t, g.Session().Finished())
	assert.NotEqual(t, first.Seed(), g.Session().Seed())
}

func TestDraw(t *testing.T) {
	g := newGame(t)
	g.Draw()

	screen := g.screen
	buffer := g.Session().Buffer()
	for y := 0; y < buffer.Height(); y++ {
		for x := 0; x < buffer.Width(); x++ {
			expected := tcell.StyleDefault.Background(CellColor(buffer.At(game.Point{X: x, Y: y})))
			for i := 0; i < g.scale; i++ {
				r, _, style, _ := screen.GetContent(x*g.scale+i, y)
				assert.Equal(t, ' ', r)
				assert.Equal(t, expected, style, "cell %d,%d", x, y)
			}
		}
	}

	status := make([]rune, 0, 4)
	for x := 0; x < 4; x++ {
		r, _, _, _ := screen.GetContent(x, buffer.Height()+1)
		status = append(status, r)
	}
	assert.Equal(t, "arro", string(status))
}

func TestCellColor(t *testing.T) {
	assert.Equal(t, tcell.NewHexColor(0x00FF00), CellColor(game.DefaultPlayerColor))
	assert.Equal(t, tcell.NewHexColor(0xFFFFFF), CellColor(game.DefaultWallColor))
	assert.Equal(t, tcell.NewHexColor(0), CellColor(game.DefaultPathColor))
}
