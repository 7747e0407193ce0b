package nodecanvas

import (
	"fmt"
	"time"
)

// testHost is a Host with a settable clock and a recording painter.
type testHost struct {
	now      time.Duration
	repaints int
	cursors  []CursorType
	painter  *recordingPainter
	painting bool
}

func newTestHost() *testHost {
	return &testHost{now: time.Second, painter: &recordingPainter{color: ColorWhite}}
}

func (h *testHost) RequestRepaint() { h.repaints++ }

func (h *testHost) SetCursor(_ Rect, c CursorType) { h.cursors = append(h.cursors, c) }

func (h *testHost) Now() time.Duration { return h.now }

func (h *testHost) Painter() Painter {
	if !h.painting {
		return nil
	}
	return h.painter
}

func (h *testHost) advance(d time.Duration) { h.now += d }

// recordingPainter logs every draw call as a short string.
type recordingPainter struct {
	color Color
	calls []string
}

func (p *recordingPainter) Color() Color     { return p.color }
func (p *recordingPainter) SetColor(c Color) { p.color = c }

func (p *recordingPainter) FillRect(r Rect) {
	p.calls = append(p.calls, fmt.Sprintf("fill %v", r))
}

func (p *recordingPainter) StrokeRect(r Rect, width float64) {
	p.calls = append(p.calls, fmt.Sprintf("stroke %v %v", r, width))
}

func (p *recordingPainter) StrokeLine(from, to Vec2, width float64) {
	p.calls = append(p.calls, fmt.Sprintf("line %v %v", from, to))
}

func (p *recordingPainter) Text(s string, at Vec2) {
	p.calls = append(p.calls, "text "+s)
}

func (p *recordingPainter) count(prefix string) int {
	n := 0
	for _, c := range p.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

// recordingSink collects emitted canvas events.
type recordingSink struct {
	events []CanvasEvent
}

func (s *recordingSink) EmitEvent(ev CanvasEvent) { s.events = append(s.events, ev) }

func (s *recordingSink) ofType(t CanvasEventType) []CanvasEvent {
	var out []CanvasEvent
	for _, ev := range s.events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

var testArea = Rect{Width: 800, Height: 600}

// newTestCanvas returns a canvas over testArea with nodes a, b and c laid out
// in a row. Each node is 160x80 with a 22px header.
//
//	a: (100,100)  b: (300,100)  c: (500,100)
func newTestCanvas() (*Canvas, *testHost) {
	host := newTestHost()
	c := NewCanvas(host, DefaultConfig(), testArea)
	c.AddNode(NewBasicNode("a", "", "A", Vec2{100, 100}))
	c.AddNode(NewBasicNode("b", "", "B", Vec2{300, 100}))
	c.AddNode(NewBasicNode("c", "", "C", Vec2{500, 100}))
	c.Dispatch(Event{Type: EventLayout})
	return c, host
}

func press(c *Canvas, b MouseButton, x, y float64, mods KeyModifiers) {
	c.pointer = Vec2{x, y}
	c.Dispatch(Event{Type: EventMouseDown, Button: b, Position: Vec2{x, y}, Modifiers: mods})
}

func drag(c *Canvas, b MouseButton, x, y float64, mods KeyModifiers) {
	prev := c.pointer
	c.Dispatch(Event{Type: EventMouseDrag, Button: b, Position: Vec2{x, y}, Delta: Vec2{x - prev.X, y - prev.Y}, Modifiers: mods})
}

func release(c *Canvas, b MouseButton, x, y float64, mods KeyModifiers) {
	c.Dispatch(Event{Type: EventMouseUp, Button: b, Position: Vec2{x, y}, Modifiers: mods})
}

func drain(c *Canvas) {
	for c.Pending() > 0 {
		c.Update(nil)
	}
}

func selectedSet(s *SelectionManager) map[string]bool {
	m := make(map[string]bool, s.Len())
	for _, id := range s.Selected() {
		m[id] = true
	}
	return m
}

func sameSet(got map[string]bool, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for _, id := range want {
		if !got[id] {
			return false
		}
	}
	return true
}
