package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gomaze/audio"
	"github.com/they4kman/gomaze/game"
)

const frameInterval = time.Second / 30

// Action is what a key event asks the terminal loop to do.
type Action int

const (
	ActionNone Action = iota
	ActionControl
	ActionNewMaze
	ActionQuit
)

var runeControls = map[rune]game.Control{
	'q': game.ControlReset,
	'Q': game.ControlReset,
	'k': game.ControlUp,
	'j': game.ControlDown,
	'h': game.ControlLeft,
	'l': game.ControlRight,
}

var keyControls = map[tcell.Key]game.Control{
	tcell.KeyUp:    game.ControlUp,
	tcell.KeyDown:  game.ControlDown,
	tcell.KeyLeft:  game.ControlLeft,
	tcell.KeyRight: game.ControlRight,
}

// Classify maps a key event onto a maze control or a loop action. The
// terminal's own key repeat stands in for held keys.
func Classify(ev *tcell.EventKey) (Action, game.Control) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, 0
	case tcell.KeyEnter:
		return ActionNewMaze, 0
	case tcell.KeyRune:
		if control, ok := runeControls[ev.Rune()]; ok {
			return ActionControl, control
		}
		return ActionNone, 0
	}

	if control, ok := keyControls[ev.Key()]; ok {
		return ActionControl, control
	}
	return ActionNone, 0
}

type Game struct {
	screen  tcell.Screen
	session *game.Session
	scale   int

	input  *game.ControlSet
	events chan tcell.Event
	quit   chan struct{}
}

// New sets up a game on an initialized screen.
func New(screen tcell.Screen, config game.GameConfig) (*Game, error) {
	session, err := game.NewSession(config)
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:  screen,
		session: session,
		scale:   config.Scale,
		input:   game.NewControlSet(),
		events:  make(chan tcell.Event, 16),
		quit:    make(chan struct{}),
	}, nil
}

// Run opens the terminal screen and plays mazes until the player quits.
func Run(config game.GameConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	chime := audio.NewChime(config.Sound)
	defer chime.Close()

	onFinish := config.OnFinish
	config.OnFinish = func(session *game.Session) {
		chime.Play()
		if onFinish != nil {
			onFinish(session)
		}
	}

	g, err := New(screen, config)
	if err != nil {
		return err
	}
	return g.Loop()
}

// Loop reads key events on a separate goroutine; everything else happens
// once per frame on the caller's goroutine.
func (g *Game) Loop() error {
	defer g.session.End()

	go g.pollEvents()
	defer close(g.quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	g.Draw()
	for {
		select {
		case ev := <-g.events:
			quit, err := g.HandleEvent(ev)
			if err != nil || quit {
				return err
			}
		case <-ticker.C:
			g.Frame()
		}
	}
}

func (g *Game) pollEvents() {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case g.events <- ev:
		case <-g.quit:
			return
		}
	}
}

// HandleEvent applies a screen event, reporting whether the player asked to
// quit.
func (g *Game) HandleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		action, control := Classify(ev)
		switch action {
		case ActionQuit:
			return true, nil
		case ActionControl:
			g.press(control)
		case ActionNewMaze:
			if g.session.Finished() {
				next, err := g.session.Next()
				if err != nil {
					return false, err
				}
				g.session = next
				g.screen.Clear()
				logrus.WithField("seed", next.Seed()).Debug("Starting a new maze")
			}
		}
	}
	return false, nil
}

// press records a control for the next frame. Only the latest direction is
// kept, so the last arrow pressed within a frame is the one that moves.
func (g *Game) press(control game.Control) {
	if control != game.ControlReset {
		for _, other := range game.Controls {
			if other != game.ControlReset {
				g.input.Release(other)
			}
		}
	}
	g.input.Press(control)
}

// Frame plays the controls collected since the last frame and redraws.
func (g *Game) Frame() {
	g.session.Tick(g.input)
	g.input.Clear()
	g.Draw()
}

func (g *Game) Session() *game.Session {
	return g.session
}

// Draw paints every maze cell as a block of scale spaces on the cell's
// color, followed by a status line.
func (g *Game) Draw() {
	buffer := g.session.Buffer()
	for y := 0; y < buffer.Height(); y++ {
		for x := 0; x < buffer.Width(); x++ {
			style := tcell.StyleDefault.Background(CellColor(buffer.At(game.Point{X: x, Y: y})))
			for i := 0; i < g.scale; i++ {
				g.screen.SetContent(x*g.scale+i, y, ' ', nil, style)
			}
		}
	}

	status := "arrows/hjkl: move  q: restart  esc: quit"
	statusStyle := tcell.StyleDefault
	if g.session.Finished() {
		status = "FINISHED! enter: new maze  esc: quit"
		statusStyle = statusStyle.Foreground(tcell.ColorGreen).Bold(true)
	}
	g.drawText(0, buffer.Height()+1, statusStyle, fmt.Sprintf("%-*s", buffer.Width()*g.scale, status))

	g.screen.Show()
}

func (g *Game) drawText(x, y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		g.screen.SetContent(x+i, y, r, nil, style)
	}
}

// CellColor reads a buffer color as 0xRRGGBB; the top byte is ignored.
func CellColor(c uint32) tcell.Color {
	return tcell.NewHexColor(int32(c & 0xFFFFFF))
}
