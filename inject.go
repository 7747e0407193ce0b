package nodecanvas

// InjectModifiers sets the modifier keys carried by subsequently injected
// events.
func (c *Canvas) InjectModifiers(mods KeyModifiers) {
	c.injectMods = mods
}

func (c *Canvas) injectMouse(t EventType, button MouseButton, x, y float64) {
	pos := Vec2{x, y}
	c.injectQueue = append(c.injectQueue, Event{
		Type:      t,
		Button:    button,
		Position:  pos,
		Delta:     pos.Sub(c.injectLast),
		Modifiers: c.injectMods,
	})
	c.injectLast = pos
}

// InjectPress queues a left button press at the given screen coordinates.
// The event is consumed on the next Update.
func (c *Canvas) InjectPress(x, y float64) {
	c.injectMouse(EventMouseDown, MouseButtonLeft, x, y)
}

// InjectMove queues a left button drag to the given screen coordinates. Use
// this between InjectPress and InjectRelease to simulate a drag.
func (c *Canvas) InjectMove(x, y float64) {
	c.injectMouse(EventMouseDrag, MouseButtonLeft, x, y)
}

// InjectRelease queues a left button release at the given screen coordinates.
func (c *Canvas) InjectRelease(x, y float64) {
	c.injectMouse(EventMouseUp, MouseButtonLeft, x, y)
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (c *Canvas) InjectClick(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectContextClick queues a secondary click at the given coordinates.
func (c *Canvas) InjectContextClick(x, y float64) {
	c.injectMouse(EventContextClick, MouseButtonRight, x, y)
}

// InjectDrag queues a full left button drag: press at (fromX, fromY),
// frames-2 linearly interpolated moves, a final move to (toX, toY) and a
// release there. The sequence consumes frames+1 updates; minimum frames is 2.
func (c *Canvas) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	c.injectGesture(MouseButtonLeft, fromX, fromY, toX, toY, frames)
}

// InjectPan queues a middle button drag from (fromX, fromY) to (toX, toY).
func (c *Canvas) InjectPan(fromX, fromY, toX, toY float64, frames int) {
	c.injectGesture(MouseButtonMiddle, fromX, fromY, toX, toY, frames)
}

func (c *Canvas) injectGesture(button MouseButton, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.injectMouse(EventMouseDown, button, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.injectMouse(EventMouseDrag, button, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.injectMouse(EventMouseDrag, button, toX, toY)
	c.injectMouse(EventMouseUp, button, toX, toY)
}

// InjectKey queues a key press or release.
func (c *Canvas) InjectKey(k Key, down bool) {
	t := EventKeyUp
	if down {
		t = EventKeyDown
	}
	c.injectQueue = append(c.injectQueue, Event{Type: t, Key: k, Modifiers: c.injectMods})
}

// Pending returns the number of queued synthetic events.
func (c *Canvas) Pending() int { return len(c.injectQueue) }

// processInjectedInput pops one event from the inject queue and dispatches
// it. Returns true if an event was consumed.
func (c *Canvas) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	ev := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]
	c.Dispatch(ev)
	return true
}
