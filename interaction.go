package nodecanvas

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	// DragThreshold is the minimum pointer travel, in pixels from the press
	// position, before a ready-for gesture becomes an active state.
	DragThreshold = 10.0

	// DoubleClickWindow is the longest gap between two releases on the same
	// target that still counts as a double click.
	DoubleClickWindow = 400 * time.Millisecond

	// ControlLinger is how long after a control key-up the modifier is still
	// reported as held.
	ControlLinger = 200 * time.Millisecond
)

// State is the confirmed interaction mode.
type State uint8

const (
	StateInactive State = iota
	StatePanning
	StateDrawingSelection
	StateDraggingNodes
	StateDraggingConnector
	StateContextClick
	StateDoubleClick
)

func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StatePanning:
		return "panning"
	case StateDrawingSelection:
		return "drawingSelection"
	case StateDraggingNodes:
		return "draggingNodes"
	case StateDraggingConnector:
		return "draggingConnector"
	case StateContextClick:
		return "contextClick"
	case StateDoubleClick:
		return "doubleClick"
	default:
		return "unknown"
	}
}

// ReadyFor is the gesture a press will become once the pointer travels past
// DragThreshold.
type ReadyFor uint8

const (
	ReadyForUnset ReadyFor = iota
	ReadyForPanning
	ReadyForDrawingSelection
	ReadyForDraggingNodes
	ReadyForDraggingConnector
)

func (r ReadyFor) String() string {
	switch r {
	case ReadyForUnset:
		return "unset"
	case ReadyForPanning:
		return "panning"
	case ReadyForDrawingSelection:
		return "drawingSelection"
	case ReadyForDraggingNodes:
		return "draggingNodes"
	case ReadyForDraggingConnector:
		return "draggingConnector"
	default:
		return "unknown"
	}
}

// state returns the State a ready-for gesture promotes into.
func (r ReadyFor) state() State {
	switch r {
	case ReadyForPanning:
		return StatePanning
	case ReadyForDrawingSelection:
		return StateDrawingSelection
	case ReadyForDraggingNodes:
		return StateDraggingNodes
	case ReadyForDraggingConnector:
		return StateDraggingConnector
	default:
		return StateInactive
	}
}

// TargetType classifies what lies under the pointer.
type TargetType uint8

const (
	TargetNone       TargetType = iota // pointer is outside the canvas area
	TargetBackground                   // canvas, no node
	TargetNode                         // a node's full rectangle
)

func (t TargetType) String() string {
	switch t {
	case TargetNone:
		return "none"
	case TargetBackground:
		return "background"
	case TargetNode:
		return "node"
	default:
		return "unknown"
	}
}

// NodeTargetType refines TargetNode by the part of the node under the pointer.
type NodeTargetType uint8

const (
	NodeTargetNone NodeTargetType = iota
	NodeTargetDraggableArea
	NodeTargetNonDraggableArea
)

// mouseUpSnapshot is the baseline a following release is compared against
// for double-click detection. A zero time means no baseline.
type mouseUpSnapshot struct {
	time       time.Duration
	targetType TargetType
	nodeID     string
}

// InteractionManager is the pointer state machine. It holds the confirmed
// State, the tentative ReadyFor recorded at press time, the current target
// classification, the double-click baseline and the cursor policy.
//
// It accepts any transition; the owning NodeProcess only requests valid ones.
type InteractionManager struct {
	host      Host
	selection *SelectionManager
	log       *zerolog.Logger

	state    State
	readyFor ReadyFor

	targetType      TargetType
	nodeTargetType  NodeTargetType
	targetNodeID    string
	targetConnector int

	lastUp          mouseUpSnapshot
	ctrlReleased    bool
	ctrlReleasedAt  time.Duration
	cursor          CursorType
	requiresRepaint bool
}

// NewInteractionManager creates a manager in StateInactive with no ready-for
// gesture. selection is consulted for the marquee cursor.
func NewInteractionManager(host Host, selection *SelectionManager) *InteractionManager {
	nop := zerolog.Nop()
	return &InteractionManager{
		host:            host,
		selection:       selection,
		log:             &nop,
		targetConnector: -1,
	}
}

// State returns the confirmed interaction state.
func (m *InteractionManager) State() State { return m.state }

// ReadyFor returns the tentative gesture recorded at press time.
func (m *InteractionManager) ReadyFor() ReadyFor { return m.readyFor }

// SetReadyFor records the gesture a drag past DragThreshold would start.
func (m *InteractionManager) SetReadyFor(r ReadyFor) {
	m.readyFor = r
}

// SetState is the single transition primitive. It always clears ReadyFor and
// flags a repaint when leaving a continuously redrawing state.
func (m *InteractionManager) SetState(s State) {
	prev := m.state
	m.readyFor = ReadyForUnset
	if prev == StatePanning || prev == StateDraggingNodes {
		m.requiresRepaint = true
	}
	m.state = s
	if prev != s {
		m.log.Debug().Stringer("from", prev).Stringer("to", s).Msg("state transition")
	}
}

// IsTargetLocked reports whether pointer target re-evaluation must be
// suppressed because a drag or pan is pending or in progress.
func (m *InteractionManager) IsTargetLocked() bool {
	switch m.state {
	case StatePanning, StateDraggingNodes, StateDraggingConnector:
		return true
	}
	switch m.readyFor {
	case ReadyForPanning, ReadyForDraggingNodes, ReadyForDraggingConnector:
		return true
	}
	return false
}

// TargetType returns the current pointer target classification.
func (m *InteractionManager) TargetType() TargetType { return m.targetType }

// NodeTargetType returns which part of the target node is under the pointer.
func (m *InteractionManager) NodeTargetType() NodeTargetType { return m.nodeTargetType }

// TargetNodeID returns the id of the node under the pointer, or "".
func (m *InteractionManager) TargetNodeID() string { return m.targetNodeID }

// TargetConnector returns the index of the connector under the pointer, or -1.
func (m *InteractionManager) TargetConnector() int { return m.targetConnector }

func (m *InteractionManager) setTarget(t TargetType, nt NodeTargetType, nodeID string, connector int) {
	m.targetType = t
	m.nodeTargetType = nt
	m.targetNodeID = nodeID
	m.targetConnector = connector
}

// EvaluateMouseUp runs double-click detection for a button release and
// reports whether it completes a double click.
func (m *InteractionManager) EvaluateMouseUp(ev Event) bool {
	if ev.Button != MouseButtonLeft {
		m.lastUp = mouseUpSnapshot{}
		return false
	}
	now := m.host.Now()
	if m.isDoubleClick(now) {
		m.lastUp = mouseUpSnapshot{}
		return true
	}
	m.lastUp = mouseUpSnapshot{time: now, targetType: m.targetType}
	if m.targetType == TargetNode {
		m.lastUp.nodeID = m.targetNodeID
	}
	return false
}

func (m *InteractionManager) isDoubleClick(now time.Duration) bool {
	if m.lastUp.time <= 0 {
		return false
	}
	if now-m.lastUp.time > DoubleClickWindow {
		return false
	}
	if m.lastUp.targetType != m.targetType {
		return false
	}
	if m.targetType == TargetNode && m.lastUp.nodeID != m.targetNodeID {
		return false
	}
	return true
}

// HasControlKeyModifier reports whether control is held for ev, or was
// released less than ControlLinger ago. Some platforms deliver the key-up
// just before the mouse event it belongs to.
func (m *InteractionManager) HasControlKeyModifier(ev Event) bool {
	if ev.Modifiers&ModCtrl != 0 {
		return true
	}
	return m.ctrlReleased && m.host.Now()-m.ctrlReleasedAt < ControlLinger
}

// Cursor returns the cursor chosen by the last Update.
func (m *InteractionManager) Cursor() CursorType { return m.cursor }

// Update runs once per processed event: it records control key releases and
// applies the cursor for the current state to area. It reports whether the
// cursor changed since the previous call.
func (m *InteractionManager) Update(ev Event, area Rect) bool {
	if ev.Type == EventKeyUp && ev.Key.isControl() {
		m.ctrlReleased = true
		m.ctrlReleasedAt = m.host.Now()
	}

	cursor := CursorArrow
	switch m.state {
	case StatePanning:
		cursor = CursorPan
	case StateDrawingSelection:
		switch m.selection.Mode() {
		case SelectionAdd:
			cursor = CursorAdd
		case SelectionSubtract:
			cursor = CursorSubtract
		}
	case StateDraggingNodes:
		cursor = CursorMove
	}
	if cursor != CursorArrow {
		m.host.SetCursor(area, cursor)
	}

	changed := cursor != m.cursor
	m.cursor = cursor
	return changed
}

// takeRepaint returns and clears the repaint flag raised by SetState.
func (m *InteractionManager) takeRepaint() bool {
	r := m.requiresRepaint
	m.requiresRepaint = false
	return r
}
