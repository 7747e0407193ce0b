package nodecanvas

import (
	"time"
)

// Canvas is a minimal host-side driver: it owns an ordered node list, the
// canvas shift and the visible area, and runs complete redraw cycles against
// a NodeProcess. Nodes are laid out, hit-tested and painted in insertion
// order, so later nodes paint over earlier ones.
type Canvas struct {
	// Area is the visible canvas rectangle in screen space.
	Area Rect
	// Shift is the pan offset. Panning and ScrollTo write to it.
	Shift Vec2

	process *NodeProcess
	nodes   []Node
	index   map[string]int
	pointer Vec2

	injectQueue []Event
	injectLast  Vec2
	injectMods  KeyModifiers
	testRunner  *TestRunner

	// OnScreenshot is called for "screenshot" steps of a TestRunner.
	OnScreenshot func(label string)
}

// NewCanvas creates a canvas with its own NodeProcess bound to host.
func NewCanvas(host Host, cfg Config, area Rect) *Canvas {
	return &Canvas{
		Area:    area,
		process: NewNodeProcess(host, cfg),
		index:   make(map[string]int),
	}
}

// Process returns the canvas's NodeProcess.
func (c *Canvas) Process() *NodeProcess { return c.process }

// AddNode appends n. Adding an id that already exists replaces the node in
// place.
func (c *Canvas) AddNode(n Node) {
	if i, ok := c.index[n.ID()]; ok {
		c.nodes[i] = n
		return
	}
	c.index[n.ID()] = len(c.nodes)
	c.nodes = append(c.nodes, n)
}

// RemoveNode removes the node with id and drops it from the selection.
func (c *Canvas) RemoveNode(id string) {
	i, ok := c.index[id]
	if !ok {
		return
	}
	c.nodes = append(c.nodes[:i], c.nodes[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.nodes); j++ {
		c.index[c.nodes[j].ID()] = j
	}
	c.process.Forget(id)
}

// Node returns the node with id, or nil.
func (c *Canvas) Node(id string) Node {
	if i, ok := c.index[id]; ok {
		return c.nodes[i]
	}
	return nil
}

// Nodes returns the node list. The returned slice MUST NOT be mutated.
func (c *Canvas) Nodes() []Node { return c.nodes }

// Pointer returns the last known pointer position.
func (c *Canvas) Pointer() Vec2 { return c.pointer }

// Dispatch runs a layout cycle followed by a cycle for ev, so hit testing
// sees geometry for the current shift and node positions.
func (c *Canvas) Dispatch(ev Event) {
	if ev.Type != EventLayout && ev.Type != EventRepaint && ev.Type != EventKeyDown && ev.Type != EventKeyUp {
		c.pointer = ev.Position
	}
	var stats cycleStats
	var t0 time.Time
	debug := c.process.debug
	if debug {
		t0 = time.Now()
	}

	c.cycle(Event{Type: EventLayout, Position: c.pointer, Modifiers: ev.Modifiers})

	if debug {
		stats.layoutTime = time.Since(t0)
		t0 = time.Now()
	}

	if ev.Type != EventLayout {
		if ev.Type == EventKeyDown || ev.Type == EventKeyUp {
			ev.Position = c.pointer
		}
		c.cycle(ev)
		if ev.Type == EventKeyDown {
			c.shortcut(ev)
		}
	}

	if debug {
		stats.event = ev.Type
		stats.eventTime = time.Since(t0)
		stats.nodeCount = len(c.nodes)
		stats.geometry = c.process.GeometryCount()
		stats.selected = c.process.selection.Len()
		c.process.debugLogCycle(stats)
	}
}

// Repaint runs a layout cycle and a paint cycle.
func (c *Canvas) Repaint() {
	c.Dispatch(Event{Type: EventRepaint, Position: c.pointer})
}

// cycle runs one BeginGUI / Draw / EndGUI pass for ev.
func (c *Canvas) cycle(ev Event) {
	p := c.process
	p.BeginGUI(ev, c.Area, &c.Shift)
	for _, n := range c.nodes {
		p.Draw(n)
	}
	p.EndGUI(ev)
}

// Update runs one frame of input. A pending TestRunner step or injected event
// takes priority; real events are only dispatched when nothing synthetic
// was consumed.
func (c *Canvas) Update(events []Event) {
	if c.testRunner != nil {
		c.testRunner.step(c)
	}
	if c.processInjectedInput() {
		return
	}
	for _, ev := range events {
		c.Dispatch(ev)
	}
}

// shortcut handles canvas-level key bindings.
func (c *Canvas) shortcut(ev Event) {
	p := c.process
	if p.interaction.State() != StateInactive {
		return
	}
	switch ev.Key {
	case KeyF:
		p.FrameSelection(0.3)
	case KeyEscape:
		if p.selection.DeselectAll() {
			c.Repaint()
		}
	case KeyA:
		if ev.Modifiers&ModCtrl == 0 {
			return
		}
		ids := make([]string, len(c.nodes))
		for i, n := range c.nodes {
			ids[i] = n.ID()
		}
		p.selection.SelectMany(ids, false)
		c.Repaint()
	}
}
