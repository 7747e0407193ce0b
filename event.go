package nodecanvas

// EventType identifies the kind of raw input or redraw event fed to a
// NodeProcess. Layout and Repaint are the two phases of a redraw cycle; the
// rest are input.
type EventType uint8

const (
	EventNone         EventType = iota
	EventLayout                 // measure pass, rebuilds the geometry cache
	EventRepaint                // paint pass, draws nodes and selection evidence
	EventMouseDown              // a mouse button was pressed
	EventMouseUp                // a mouse button was released
	EventMouseDrag              // the pointer moved with a button held
	EventMouseMove              // the pointer moved with no button held
	EventKeyDown                // a key was pressed
	EventKeyUp                  // a key was released
	EventContextClick           // secondary click without drag
)

func (t EventType) String() string {
	switch t {
	case EventNone:
		return "none"
	case EventLayout:
		return "layout"
	case EventRepaint:
		return "repaint"
	case EventMouseDown:
		return "mouseDown"
	case EventMouseUp:
		return "mouseUp"
	case EventMouseDrag:
		return "mouseDrag"
	case EventMouseMove:
		return "mouseMove"
	case EventKeyDown:
		return "keyDown"
	case EventKeyUp:
		return "keyUp"
	case EventContextClick:
		return "contextClick"
	default:
		return "unknown"
	}
}

// Key identifies a keyboard key carried by key events.
type Key uint8

const (
	KeyNone Key = iota
	KeyControlLeft
	KeyControlRight
	KeyAltLeft
	KeyAltRight
	KeyEscape
	KeyF
	KeyA
)

// isControl reports whether k is either control key.
func (k Key) isControl() bool {
	return k == KeyControlLeft || k == KeyControlRight
}

// Event is a single host event. Position is in canvas screen space; Delta is
// the pointer movement since the previous mouse event.
type Event struct {
	Type      EventType
	Button    MouseButton
	Position  Vec2
	Delta     Vec2
	Key       Key
	Modifiers KeyModifiers
}
