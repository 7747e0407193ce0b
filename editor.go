package nodecanvas

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ebitenPainter draws onto the screen image of the current Draw call.
type ebitenPainter struct {
	dst   *ebiten.Image
	color Color
}

func (p *ebitenPainter) Color() Color     { return p.color }
func (p *ebitenPainter) SetColor(c Color) { p.color = c }

func (p *ebitenPainter) FillRect(r Rect) {
	vector.DrawFilledRect(p.dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), p.color.toRGBA(), false)
}

func (p *ebitenPainter) StrokeRect(r Rect, width float64) {
	vector.StrokeRect(p.dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), float32(width), p.color.toRGBA(), false)
}

func (p *ebitenPainter) StrokeLine(from, to Vec2, width float64) {
	vector.StrokeLine(p.dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), p.color.toRGBA(), true)
}

// Text uses ebiten's debug font, which ignores the painter color.
func (p *ebitenPainter) Text(s string, at Vec2) {
	ebitenutil.DebugPrintAt(p.dst, s, int(at.X), int(at.Y))
}

// ebitenHost adapts an ebiten game loop to the Host interface. Ebiten
// redraws every frame, so RequestRepaint only counts requests.
type ebitenHost struct {
	start     time.Time
	painter   *ebitenPainter
	painting  bool
	cursor    CursorType
	cursorSet bool
	repaints  int
}

func newEbitenHost() *ebitenHost {
	return &ebitenHost{start: time.Now(), painter: &ebitenPainter{color: ColorWhite}}
}

func (h *ebitenHost) RequestRepaint() { h.repaints++ }

func (h *ebitenHost) SetCursor(_ Rect, c CursorType) {
	h.cursor = c
	h.cursorSet = true
}

func (h *ebitenHost) Now() time.Duration { return time.Since(h.start) }

func (h *ebitenHost) Painter() Painter {
	if !h.painting {
		return nil
	}
	return h.painter
}

// applyCursor shows the cursor registered this frame, or the arrow.
func (h *ebitenHost) applyCursor() {
	c := CursorArrow
	if h.cursorSet {
		c = h.cursor
	}
	ebiten.SetCursorShape(cursorShape(c))
	h.cursorSet = false
}

func cursorShape(c CursorType) ebiten.CursorShapeType {
	switch c {
	case CursorPan:
		return ebiten.CursorShapePointer
	case CursorMove:
		return ebiten.CursorShapeMove
	case CursorAdd:
		return ebiten.CursorShapeCrosshair
	case CursorSubtract:
		return ebiten.CursorShapeNotAllowed
	default:
		return ebiten.CursorShapeDefault
	}
}

// Editor is an ebiten.Game hosting a Canvas. It polls mouse and keyboard
// into canvas events in Update and runs the paint cycle in Draw.
type Editor struct {
	canvas *Canvas
	host   *ebitenHost
	input  inputTranslator

	configUpdates chan Config

	// ScreenshotDir is where scripted screenshots are written.
	ScreenshotDir   string
	screenshotQueue []string

	// ExitWhenDone ends the game loop once an attached TestRunner finishes.
	ExitWhenDone bool

	// ShowFPS draws an FPS/TPS overlay on top of the canvas.
	ShowFPS bool
	fps     fpsOverlay
}

// NewEditor creates an editor with an empty canvas.
func NewEditor(cfg Config) *Editor {
	host := newEbitenHost()
	e := &Editor{
		canvas:        NewCanvas(host, cfg, Rect{}),
		host:          host,
		configUpdates: make(chan Config, 1),
		ScreenshotDir: "screenshots",
	}
	e.canvas.OnScreenshot = e.Screenshot
	return e
}

// Canvas returns the hosted canvas.
func (e *Editor) Canvas() *Canvas { return e.canvas }

// SetConfigAsync hands cfg to the game loop, which applies it on the next
// Update. Safe to call from any goroutine; a newer config replaces an
// unapplied one.
func (e *Editor) SetConfigAsync(cfg Config) {
	for {
		select {
		case e.configUpdates <- cfg:
			return
		default:
		}
		select {
		case <-e.configUpdates:
		default:
		}
	}
}

// Update implements ebiten.Game.
func (e *Editor) Update() error {
	select {
	case cfg := <-e.configUpdates:
		e.canvas.process.SetConfig(cfg)
	default:
	}

	dt := 1.0 / float64(ebiten.TPS())
	events := e.input.translate(readInput())
	e.canvas.Update(events)
	e.canvas.process.Tick(float32(dt))
	if e.ShowFPS {
		e.fps.update(dt)
	}

	if e.ExitWhenDone && e.canvas.testRunner != nil && e.canvas.testRunner.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (e *Editor) Draw(screen *ebiten.Image) {
	e.host.painter.dst = screen
	e.host.painting = true
	e.canvas.Repaint()
	e.host.painting = false
	e.host.painter.dst = nil

	if e.ShowFPS {
		e.fps.draw(screen)
	}
	e.host.applyCursor()
	e.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The canvas fills the window.
func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.canvas.Area = Rect{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}

// RunConfig holds window options for Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
}

// Run opens a window and runs the editor until it is closed or its test
// script finishes with ExitWhenDone set.
func Run(e *Editor, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.New("run: window size must be positive")
	}
	if cfg.ShowFPS {
		e.ShowFPS = true
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
