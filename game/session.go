package game

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// Session is one maze being played: the carved buffer, the player and
// whoever steers it.
type Session struct {
	config GameConfig
	seed   int64
	rand   *rand.Rand

	buffer    *PixelBuffer
	navigator *Navigator
	start     Point

	director     Director
	lastDirected time.Time
}

func NewSession(config GameConfig) (*Session, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session := &Session{
		config:   config,
		seed:     seed,
		rand:     rand.New(rand.NewSource(seed)),
		buffer:   NewPixelBuffer(config.Width, config.Height),
		director: config.Director,
	}

	startTime := time.Now()
	config.Maze.Generate(session.buffer, session.rand)

	session.navigator = NewNavigator(Point{}, Point{}, config.Maze)
	session.navigator.PlayerColor = config.PlayerColor
	session.navigator.FinishColor = config.FinishColor
	session.navigator.OnFinish = session.onFinish
	session.start = PlaceStartEnd(session.buffer, session.rand, session.navigator)
	session.navigator.Render(session.buffer)

	logrus.WithFields(logrus.Fields{
		"seed":     seed,
		"width":    config.Width,
		"height":   config.Height,
		"start":    session.start,
		"end":      session.navigator.EndPoint(),
		"duration": time.Since(startTime),
	}).Info("Generated maze")

	if session.director != nil {
		session.director.Start(session.navigator, session.buffer, session.rand)
	}

	return session, nil
}

// Next starts a fresh maze with the same settings, seeded from this one.
func (session *Session) Next() (*Session, error) {
	session.End()

	config := session.config
	config.Seed = session.rand.Int63()
	return NewSession(config)
}

// Tick plays one frame: the director (or the input, when there is no
// director) picks a direction, the player takes at most one step, and the
// buffer is repainted.
func (session *Session) Tick(input InputSource) bool {
	if session.director != nil {
		if input != nil && input.Pressed(ControlReset) {
			session.navigator.Reset(session.start)
		} else if session.directorDue() {
			session.navigator.Face(session.director.Act())
		}
	} else if input != nil {
		session.navigator.HandleInput(input, session.start)
	}

	moved := session.navigator.Step(session.buffer)
	session.navigator.Render(session.buffer)
	return moved
}

func (session *Session) directorDue() bool {
	now := time.Now()
	if now.Sub(session.lastDirected) < session.config.DirectorInterval {
		return false
	}
	session.lastDirected = now
	return true
}

func (session *Session) onFinish() {
	logrus.WithField("seed", session.seed).Debug("Session finished")
	session.End()

	if session.config.OnFinish != nil {
		session.config.OnFinish(session)
	}
}

// End releases the director. It is safe to call more than once.
func (session *Session) End() {
	if session.director != nil {
		session.director.End()
		session.director = nil
	}
}

func (session *Session) Config() GameConfig {
	return session.config
}

func (session *Session) Seed() int64 {
	return session.seed
}

func (session *Session) Buffer() *PixelBuffer {
	return session.buffer
}

func (session *Session) Navigator() *Navigator {
	return session.navigator
}

func (session *Session) Start() Point {
	return session.start
}

func (session *Session) Finished() bool {
	return session.navigator.Finished()
}

func (session *Session) Snapshot() *Snapshot {
	return TakeSnapshot(session.seed, session.buffer, session.config.Maze, session.navigator, session.start)
}
