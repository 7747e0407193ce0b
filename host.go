package nodecanvas

import "time"

// Host is the window or editor that owns the redraw loop. A NodeProcess only
// talks to its host through this interface.
type Host interface {
	// RequestRepaint asks the host to schedule another redraw cycle.
	RequestRepaint()
	// SetCursor registers a cursor for area for the current frame. The default
	// arrow is never registered.
	SetCursor(area Rect, cursor CursorType)
	// Now returns a monotonic time since an arbitrary fixed origin.
	Now() time.Duration
	// Painter returns the drawing surface for the current paint pass, or nil
	// when no paint pass is in progress.
	Painter() Painter
}

// Painter draws primitives onto the current paint target. Fill and stroke
// operations use the painter's current color.
type Painter interface {
	Color() Color
	SetColor(c Color)
	FillRect(r Rect)
	StrokeRect(r Rect, width float64)
	StrokeLine(from, to Vec2, width float64)
	Text(s string, at Vec2)
}

// pushColor sets the painter color and returns a func restoring the previous
// one. Use with defer so the override is undone on every return path.
func pushColor(p Painter, c Color) func() {
	prev := p.Color()
	p.SetColor(c)
	return func() { p.SetColor(prev) }
}
