package nodecanvas

// EventSink receives high-level canvas events. Set one on a NodeProcess to
// forward editor activity to an ECS world or any other consumer.
type EventSink interface {
	EmitEvent(event CanvasEvent)
}

// CanvasEventType identifies a high-level canvas event.
type CanvasEventType uint8

const (
	CanvasSelectionChanged CanvasEventType = iota // selection membership changed
	CanvasNodesMoved                              // a node drag ended
	CanvasPanned                                  // a pan gesture ended
	CanvasDoubleClick                             // double click on a target
	CanvasContextClick                            // secondary click on a target
	CanvasConnect                                 // connector dropped on another node
)

func (t CanvasEventType) String() string {
	switch t {
	case CanvasSelectionChanged:
		return "selectionChanged"
	case CanvasNodesMoved:
		return "nodesMoved"
	case CanvasPanned:
		return "panned"
	case CanvasDoubleClick:
		return "doubleClick"
	case CanvasContextClick:
		return "contextClick"
	case CanvasConnect:
		return "connect"
	default:
		return "unknown"
	}
}

// CanvasEvent carries a high-level canvas event.
type CanvasEvent struct {
	Type      CanvasEventType
	Target    TargetType
	NodeID    string // node under the pointer, or the connector source
	ToNodeID  string // connect target (CanvasConnect only)
	Connector int    // connector index (CanvasConnect only)
	Position  Vec2   // pointer position in screen space
	Delta     Vec2   // total movement (CanvasNodesMoved, CanvasPanned)
	Selection []string
	Modifiers KeyModifiers
}

// ClickContext is passed to double-click and context-click callbacks.
type ClickContext struct {
	Target        TargetType
	NodeID        string
	Position      Vec2 // screen space
	GraphPosition Vec2 // screen position minus the canvas shift
	Modifiers     KeyModifiers
}

// ConnectContext is passed to the connect callback when a connector drag is
// dropped on another node.
type ConnectContext struct {
	FromNodeID string
	Connector  int
	ToNodeID   string
	Position   Vec2
}
