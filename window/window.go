package window

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gomaze/audio"
	"github.com/they4kman/gomaze/game"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	headerHeight   = 30
	minWindowWidth = 240
)

// keyboard reports pixelgl key state in terms of maze controls. Reset fires
// once per press; the arrows also fire on key repeat.
type keyboard struct {
	win *pixelgl.Window
}

var controlKeys = map[game.Control]pixelgl.Button{
	game.ControlReset: pixelgl.KeyQ,
	game.ControlUp:    pixelgl.KeyUp,
	game.ControlDown:  pixelgl.KeyDown,
	game.ControlLeft:  pixelgl.KeyLeft,
	game.ControlRight: pixelgl.KeyRight,
}

func (kb keyboard) Pressed(control game.Control) bool {
	key, ok := controlKeys[control]
	if !ok {
		return false
	}
	if control == game.ControlReset {
		return kb.win.JustPressed(key)
	}
	return kb.win.JustPressed(key) || kb.win.Repeated(key)
}

func windowBounds(config game.GameConfig) pixel.Rect {
	return pixel.R(
		0, 0,
		math.Max(float64(config.Width*config.Scale), minWindowWidth),
		float64(config.Height*config.Scale+headerHeight),
	)
}

// Run opens a window and plays mazes until it is closed. It must be called
// from within pixelgl.Run.
func Run(config game.GameConfig) error {
	chime := audio.NewChime(config.Sound)
	defer chime.Close()

	onFinish := config.OnFinish
	config.OnFinish = func(session *game.Session) {
		chime.Play()
		if onFinish != nil {
			onFinish(session)
		}
	}

	session, err := game.NewSession(config)
	if err != nil {
		return err
	}
	defer func() { session.End() }()

	cfg := pixelgl.WindowConfig{
		Title:  "gomaze",
		Bounds: windowBounds(config),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return fmt.Errorf("opening window: %w", err)
	}
	defer win.Destroy()

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	statusText := text.New(pixel.V(10, win.Bounds().Max.Y-20), basicAtlas)

	input := keyboard{win: win}
	picture := pixel.MakePictureData(pixel.R(0, 0, float64(config.Width), float64(config.Height)))

	var (
		frames = 0
		second = time.Tick(time.Second)
	)

	bgColor := colornames.Gainsboro
	for !win.Closed() {
		if win.JustPressed(pixelgl.KeyEscape) {
			win.SetClosed(true)
			continue
		}

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | seed %d | FPS: %d", cfg.Title, session.Seed(), frames))
			frames = 0
		default:
		}

		if session.Finished() && win.JustPressed(pixelgl.KeyEnter) {
			next, err := session.Next()
			if err != nil {
				return err
			}
			session = next
		}

		session.Tick(input)

		win.Clear(bgColor)
		drawBuffer(win, picture, session.Buffer(), config.Scale)
		drawStatus(statusText, session)
		statusText.Draw(win, pixel.IM)

		win.Update()
	}

	logrus.Debug("Window closed")
	return nil
}

// drawBuffer scales the maze up to fill the window below the header. Pixel
// rows run bottom to top, the buffer's rows top to bottom.
func drawBuffer(win *pixelgl.Window, picture *pixel.PictureData, buffer *game.PixelBuffer, scale int) {
	width, height := buffer.Width(), buffer.Height()
	for y := 0; y < height; y++ {
		row := (height - 1 - y) * picture.Stride
		for x := 0; x < width; x++ {
			picture.Pix[row+x] = toRGBA(buffer.At(game.Point{X: x, Y: y}))
		}
	}

	sprite := pixel.NewSprite(picture, picture.Bounds())
	center := pixel.V(float64(width*scale)/2, float64(height*scale)/2)
	sprite.Draw(win, pixel.IM.Scaled(pixel.ZV, float64(scale)).Moved(center))
}

func drawStatus(statusText *text.Text, session *game.Session) {
	statusText.Clear()
	if session.Finished() {
		statusText.Color = colornames.Green
		fmt.Fprint(statusText, "FINISHED! Enter: new maze")
	} else {
		statusText.Color = colornames.Black
		fmt.Fprint(statusText, "Arrows: move  Q: restart  Esc: quit")
	}
}

// toRGBA reads a buffer color as 0xRRGGBB; the top byte is ignored.
func toRGBA(c uint32) color.RGBA {
	return color.RGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: 0xFF,
	}
}
