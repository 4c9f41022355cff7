package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() GameConfig {
	config := NewGameConfig()
	config.Width = 15
	config.Height = 11
	config.Seed = 38
	config.DirectorInterval = 0
	return config
}

var directionControls = map[Direction]Control{
	North: ControlUp,
	South: ControlDown,
	East:  ControlRight,
	West:  ControlLeft,
}

// scriptedDirector plays back a fixed list of directions, then stands still.
type scriptedDirector struct {
	moves   []Direction
	started int
	ended   int
}

func (director *scriptedDirector) Start(navigator *Navigator, buffer Buffer, rng *rand.Rand) {
	director.started++
}

func (director *scriptedDirector) Act() Direction {
	if len(director.moves) == 0 {
		return Still
	}
	direction := director.moves[0]
	director.moves = director.moves[1:]
	return direction
}

func (director *scriptedDirector) End() {
	director.ended++
}

func routeDirections(session *Session) []Direction {
	route := FindRoute(session.Buffer(), session.Config().Maze, session.Start(), session.Navigator().EndPoint())
	var directions []Direction
	for i := 1; i < len(route); i++ {
		directions = append(directions, DirectionBetween(route[i-1], route[i]))
	}
	return directions
}

func TestNewSessionValidates(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(config *GameConfig)
		tooSmall bool
	}{
		{"Narrow", func(config *GameConfig) { config.Width = 2 }, true},
		{"Short", func(config *GameConfig) { config.Height = 0 }, true},
		{"Negative", func(config *GameConfig) { config.Width = -5 }, true},
		{"No scale", func(config *GameConfig) { config.Scale = 0 }, false},
		{"Invisible walls", func(config *GameConfig) { config.Maze.WallColor = config.Maze.PathColor }, false},
		{"Exit drawn as wall", func(config *GameConfig) { config.FinishColor = config.Maze.WallColor }, false},
		{"Exit drawn as path", func(config *GameConfig) { config.FinishColor = config.Maze.PathColor }, false},
		{"Player drawn as path", func(config *GameConfig) { config.PlayerColor = config.Maze.PathColor }, false},
		{"Player drawn as wall", func(config *GameConfig) { config.PlayerColor = config.Maze.WallColor }, false},
		{"Wall drawn as player", func(config *GameConfig) { config.Maze.WallColor = DefaultPlayerColor }, false},
		{"Player drawn as exit", func(config *GameConfig) { config.PlayerColor = config.FinishColor }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testConfig()
			tt.modify(&config)

			session, err := NewSession(config)
			assert.Nil(t, session)
			require.Error(t, err)
			assert.Equal(t, tt.tooSmall, errors.Is(err, ErrMazeTooSmall))
		})
	}
}

func TestNewSessionSmallest(t *testing.T) {
	config := testConfig()
	config.Width, config.Height = MinMazeDimension, MinMazeDimension

	for seed := int64(1); seed <= 20; seed++ {
		config.Seed = seed
		session, err := NewSession(config)
		require.NoError(t, err)
		assert.NotNil(t, FindRoute(session.Buffer(), config.Maze, session.Start(), session.Navigator().EndPoint()))
	}
}

func TestNewSessionDeterministic(t *testing.T) {
	first, err := NewSession(testConfig())
	require.NoError(t, err)
	second, err := NewSession(testConfig())
	require.NoError(t, err)

	assert.Equal(t, int64(38), first.Seed())
	assert.True(t, first.Buffer().Equal(second.Buffer()))
	assert.Equal(t, first.Start(), second.Start())
	assert.Equal(t, first.Navigator().EndPoint(), second.Navigator().EndPoint())

	assert.Equal(t, first.Start(), first.Navigator().Position())
	assert.Equal(t, first.Config().PlayerColor, first.Buffer().At(first.Start()))
	assert.Equal(t, first.Config().FinishColor, first.Buffer().At(first.Navigator().EndPoint()))
	assert.True(t, Analyze(first.Buffer(), first.Config().Maze).Perfect())
}

func TestNewSessionSeededGolden(t *testing.T) {
	config := testConfig()
	config.Width, config.Height = 10, 10

	session, err := NewSession(config)
	require.NoError(t, err)
	assert.Equal(t, seededPlacedMaze, Sketch(session.Buffer(), session.Navigator().Legend()))
	assert.Equal(t, Point{0, 3}, session.Start())
}

func TestNewSessionRandomSeed(t *testing.T) {
	config := testConfig()
	config.Seed = 0

	session, err := NewSession(config)
	require.NoError(t, err)
	assert.NotZero(t, session.Seed())
}

func TestSessionNext(t *testing.T) {
	session, err := NewSession(testConfig())
	require.NoError(t, err)

	next, err := session.Next()
	require.NoError(t, err)
	assert.NotEqual(t, session.Seed(), next.Seed())
	assert.Equal(t, session.Config().Width, next.Config().Width)
	assert.False(t, next.Finished())
}

func TestSessionPlayedByInput(t *testing.T) {
	config := testConfig()
	finishes := 0
	config.OnFinish = func(session *Session) { finishes++ }

	session, err := NewSession(config)
	require.NoError(t, err)

	directions := routeDirections(session)
	require.NotEmpty(t, directions)

	for i, direction := range directions {
		assert.False(t, session.Finished())
		assert.True(t, session.Tick(NewControlSet(directionControls[direction])), "move %d", i)
	}

	assert.True(t, session.Finished())
	assert.Equal(t, 1, finishes)
	assert.Equal(t, session.Navigator().EndPoint(), session.Navigator().Position())

	assert.False(t, session.Tick(NewControlSet(ControlLeft)))
	assert.False(t, session.Tick(nil))
	assert.Equal(t, 1, finishes)
}

func TestSessionPlayedByDirector(t *testing.T) {
	config := testConfig()
	probe, err := NewSession(config)
	require.NoError(t, err)

	director := &scriptedDirector{moves: routeDirections(probe)}
	config.Director = director
	var finished *Session
	config.OnFinish = func(session *Session) { finished = session }

	session, err := NewSession(config)
	require.NoError(t, err)
	assert.Equal(t, 1, director.started)

	for !session.Finished() && len(director.moves) > 0 {
		session.Tick(nil)
	}

	assert.True(t, session.Finished())
	assert.Same(t, session, finished)
	assert.Equal(t, 1, director.ended)

	session.End()
	assert.Equal(t, 1, director.ended)
}

func TestSessionResetWhileDirected(t *testing.T) {
	config := testConfig()
	probe, err := NewSession(config)
	require.NoError(t, err)

	director := &scriptedDirector{moves: routeDirections(probe)[:1]}
	config.Director = director
	session, err := NewSession(config)
	require.NoError(t, err)

	assert.True(t, session.Tick(nil))
	assert.NotEqual(t, session.Start(), session.Navigator().Position())

	assert.False(t, session.Tick(NewControlSet(ControlReset, ControlRight)))
	assert.Equal(t, session.Start(), session.Navigator().Position())
	assert.Equal(t, session.Config().PlayerColor, session.Buffer().At(session.Start()))
}

func TestSessionSnapshot(t *testing.T) {
	session, err := NewSession(testConfig())
	require.NoError(t, err)

	snapshot := session.Snapshot()
	assert.Equal(t, int64(38), snapshot.Seed)
	assert.Equal(t, session.Start(), *snapshot.Start)

	rebuilt, err := snapshot.Buffer()
	require.NoError(t, err)
	assert.True(t, session.Buffer().Equal(rebuilt))
}
