package nodecanvas

import (
	"math"

	"github.com/rs/zerolog"
)

// NodeProcess drives the interaction state machine and the selection from the
// host event stream, owns the per-frame node geometry and the canvas shift,
// and is the draw entry point for node renderers.
//
// A process is driven from a single goroutine, one event per BeginGUI/EndGUI
// pair. Each frame must run a Layout cycle, in which every visible node is
// passed to Draw, before any input or Repaint cycle that relies on geometry.
type NodeProcess struct {
	host   Host
	config Config
	sink   EventSink
	log    zerolog.Logger
	base   zerolog.Logger
	debug  bool

	interaction *InteractionManager
	selection   *SelectionManager
	geometry    geometryCache
	nodes       map[string]Node // latest instance seen for every drawn id

	factories map[string]RendererFactory
	renderers map[string]NodeRenderer
	styles    *styleCache

	area     Rect
	shift    Vec2
	shiftRef *Vec2

	event         Event
	pressed       bool
	pressButton   MouseButton
	pressPos      Vec2
	pressNodeID   string
	pendingDelta  Vec2 // movement while the gesture is still ready-for
	gestureDelta  Vec2 // movement applied by the active gesture
	collapseOnUp  bool // press on an already selected node of a group
	connectorFrom string
	connectorIdx  int
	connectorEnd  Vec2

	requiresRepaint bool
	changed         bool
	lastSelection   []string

	scroll *scrollAnim

	// OnDoubleClick fires on the release that completes a double click, while
	// the state is StateDoubleClick.
	OnDoubleClick func(ClickContext)
	// OnContextClick fires for secondary clicks.
	OnContextClick func(ClickContext)
	// OnConnect fires when a connector drag is dropped on another node.
	OnConnect func(ConnectContext)
}

// NewNodeProcess creates a process bound to host with the given config.
func NewNodeProcess(host Host, cfg Config) *NodeProcess {
	sel := NewSelectionManager()
	p := &NodeProcess{
		host:         host,
		config:       cfg,
		log:          zerolog.Nop(),
		base:         zerolog.Nop(),
		interaction:  NewInteractionManager(host, sel),
		selection:    sel,
		nodes:        make(map[string]Node),
		connectorIdx: -1,
	}
	p.interaction.log = &p.log
	return p
}

// Interaction returns the process's state machine.
func (p *NodeProcess) Interaction() *InteractionManager { return p.interaction }

// Selection returns the process's selection.
func (p *NodeProcess) Selection() *SelectionManager { return p.selection }

// Config returns the active config.
func (p *NodeProcess) Config() Config { return p.config }

// SetConfig replaces the config and drops the cached palette.
func (p *NodeProcess) SetConfig(cfg Config) {
	p.config = cfg
	p.styles = nil
	p.requiresRepaint = true
}

// SetEventSink forwards high-level canvas events to sink. Pass nil to stop.
func (p *NodeProcess) SetEventSink(sink EventSink) {
	p.sink = sink
}

// Area returns the visible canvas rectangle from the last BeginGUI.
func (p *NodeProcess) Area() Rect { return p.area }

// Shift returns the canvas pan offset.
func (p *NodeProcess) Shift() Vec2 { return p.shift }

// Changed reports whether a gesture has modified node positions or the canvas
// shift since the last ResetChanged.
func (p *NodeProcess) Changed() bool { return p.changed }

// ResetChanged clears the changed signal.
func (p *NodeProcess) ResetChanged() { p.changed = false }

// Geometry returns the geometry cached for id during the current frame.
func (p *NodeProcess) Geometry(id string) (NodeGeometry, bool) {
	return p.geometry.get(id)
}

// GeometryCount returns how many nodes were laid out this frame.
func (p *NodeProcess) GeometryCount() int { return p.geometry.len() }

// Forget drops every reference to the node id, including its selection.
func (p *NodeProcess) Forget(id string) {
	delete(p.nodes, id)
	p.selection.Deselect(id)
}

// BeginGUI starts processing ev. area is the visible canvas and shift the
// caller's pan offset, which panning writes back to.
func (p *NodeProcess) BeginGUI(ev Event, area Rect, shift *Vec2) {
	p.event = ev
	p.area = area
	if shift != nil {
		p.shiftRef = shift
		p.shift = *shift
	}

	if !p.interaction.IsTargetLocked() {
		p.updateTarget(ev.Position)
	}

	if ev.Type == EventLayout {
		p.geometry.reset()
	}

	if p.interaction.Update(ev, p.area) {
		p.requiresRepaint = true
	}

	switch ev.Type {
	case EventRepaint:
		if pt := p.host.Painter(); pt != nil {
			p.drawBackground(pt)
		}
	case EventMouseDown:
		p.handleMouseDown(ev)
	case EventMouseDrag:
		p.handleMouseDrag(ev)
	case EventMouseUp:
		p.handleMouseUp(ev)
	case EventContextClick:
		p.handleContextClick(ev)
	}
}

// EndGUI finishes processing ev: during a paint pass it draws selection
// evidence and the marquee, then requests a repaint if anything flagged one.
func (p *NodeProcess) EndGUI(ev Event) {
	if ev.Type == EventRepaint {
		if pt := p.host.Painter(); pt != nil {
			p.drawEvidence(pt)
			switch p.interaction.State() {
			case StateDrawingSelection:
				p.drawMarquee(pt)
			case StateDraggingConnector:
				p.drawConnectorBand(pt)
			}
		}
	}

	p.emitSelectionChange()

	if p.interaction.takeRepaint() {
		p.requiresRepaint = true
	}
	if p.requiresRepaint {
		p.requiresRepaint = false
		p.host.RequestRepaint()
	}
}

// Draw lays out and paints one node. Geometry is cached only during a layout
// pass and the renderer only paints during a paint pass when the node is
// inside the visible area.
func (p *NodeProcess) Draw(node Node) {
	id := node.ID()
	p.nodes[id] = node

	r := p.renderer(node.Kind())
	full, drag := r.Rects(node, node.Position().Add(p.shift))

	switch p.event.Type {
	case EventLayout:
		g := NodeGeometry{ID: id, Rect: full, DragRect: drag}
		if cr, ok := r.(ConnectorRenderer); ok {
			g.Connectors = cr.ConnectorRects(node, full)
		}
		p.geometry.put(g)
	case EventRepaint:
		if !full.Intersects(p.area) {
			return
		}
		if pt := p.host.Painter(); pt != nil {
			r.Paint(node, full, pt)
		}
	}
}

// --- Hit testing ---

// updateTarget classifies the pointer against the current geometry cache.
// The first node in cache order whose full rectangle contains pos wins.
func (p *NodeProcess) updateTarget(pos Vec2) {
	if !p.area.Contains(pos) {
		p.interaction.setTarget(TargetNone, NodeTargetNone, "", -1)
		return
	}
	g, ok := p.geometry.hitTest(pos)
	if !ok {
		p.interaction.setTarget(TargetBackground, NodeTargetNone, "", -1)
		return
	}
	connector := -1
	for i, c := range g.Connectors {
		if c.Contains(pos) {
			connector = i
			break
		}
	}
	nt := NodeTargetNonDraggableArea
	if g.DragRect.Contains(pos) {
		nt = NodeTargetDraggableArea
	}
	p.interaction.setTarget(TargetNode, nt, g.ID, connector)
}

// --- Event dispatch ---

func (p *NodeProcess) setState(s State) {
	p.interaction.SetState(s)
}

func (p *NodeProcess) handleMouseDown(ev Event) {
	if p.pressed {
		return
	}
	p.pressed = true
	p.pressButton = ev.Button
	p.pressPos = ev.Position
	p.pressNodeID = ""
	p.pendingDelta = Vec2{}
	p.gestureDelta = Vec2{}
	p.collapseOnUp = false

	switch ev.Button {
	case MouseButtonLeft:
		p.pressPrimary(ev)
	case MouseButtonMiddle:
		p.interaction.SetReadyFor(ReadyForPanning)
	}
}

func (p *NodeProcess) pressPrimary(ev Event) {
	im := p.interaction
	sel := p.selection
	additive := im.HasControlKeyModifier(ev)

	switch im.TargetType() {
	case TargetBackground:
		switch {
		case additive:
			sel.SetMode(SelectionAdd)
			sel.StoreSnapshot()
		case ev.Modifiers&ModAlt != 0:
			sel.SetMode(SelectionSubtract)
			sel.StoreSnapshot()
		default:
			if sel.DeselectAll() {
				p.requiresRepaint = true
			}
		}
		im.SetReadyFor(ReadyForDrawingSelection)

	case TargetNode:
		id := im.TargetNodeID()
		p.pressNodeID = id
		switch {
		case additive:
			sel.Toggle(id)
		case !sel.IsSelected(id):
			sel.Select(id, false)
		default:
			// Keep the group so it can be dragged; a plain click collapses it
			// on release.
			p.collapseOnUp = sel.Len() > 1
		}
		p.requiresRepaint = true

		switch {
		case im.TargetConnector() >= 0:
			p.connectorFrom = id
			p.connectorIdx = im.TargetConnector()
			p.connectorEnd = ev.Position
			im.SetReadyFor(ReadyForDraggingConnector)
		case im.NodeTargetType() == NodeTargetDraggableArea && sel.IsSelected(id):
			im.SetReadyFor(ReadyForDraggingNodes)
		}
	}
}

func (p *NodeProcess) handleMouseDrag(ev Event) {
	if !p.pressed || ev.Button != p.pressButton {
		return
	}
	im := p.interaction
	delta := ev.Delta

	if r := im.ReadyFor(); r != ReadyForUnset {
		p.pendingDelta = p.pendingDelta.Add(ev.Delta)
		if ev.Position.Sub(p.pressPos).Len() < DragThreshold {
			return
		}
		delta = p.pendingDelta
		p.pendingDelta = Vec2{}
		p.collapseOnUp = false
		p.setState(r.state())
		p.log.Debug().Stringer("gesture", r).Msg("drag threshold crossed")
	}

	switch im.State() {
	case StateDrawingSelection:
		p.updateMarquee(ev.Position)
	case StateDraggingNodes:
		p.moveSelection(delta)
	case StatePanning:
		p.pan(delta)
	case StateDraggingConnector:
		p.connectorEnd = ev.Position
		p.requiresRepaint = true
	}
}

func (p *NodeProcess) handleMouseUp(ev Event) {
	im := p.interaction
	sel := p.selection
	state := im.State()

	if state == StateDrawingSelection || im.ReadyFor() == ReadyForDrawingSelection {
		sel.SetMode(SelectionDefault)
		sel.ClearSnapshot()
		sel.ClearMarquee()
		p.requiresRepaint = true
	}

	if p.pressed && ev.Button == p.pressButton {
		switch state {
		case StateDraggingNodes:
			p.emit(CanvasEvent{
				Type:      CanvasNodesMoved,
				Target:    im.TargetType(),
				NodeID:    p.pressNodeID,
				Position:  ev.Position,
				Delta:     p.gestureDelta,
				Selection: append([]string(nil), sel.Selected()...),
				Modifiers: ev.Modifiers,
			})
		case StatePanning:
			p.emit(CanvasEvent{Type: CanvasPanned, Position: ev.Position, Delta: p.gestureDelta, Modifiers: ev.Modifiers})
		case StateDraggingConnector:
			p.finishConnector(ev)
		}
		if p.collapseOnUp && state == StateInactive {
			sel.Select(p.pressNodeID, false)
		}
		p.pressed = false
		p.collapseOnUp = false
		p.connectorFrom = ""
		p.connectorIdx = -1
	}

	if im.EvaluateMouseUp(ev) {
		p.setState(StateDoubleClick)
		ctx := p.clickContext(ev)
		if p.OnDoubleClick != nil {
			p.OnDoubleClick(ctx)
		}
		p.emit(CanvasEvent{Type: CanvasDoubleClick, Target: ctx.Target, NodeID: ctx.NodeID, Position: ev.Position, Modifiers: ev.Modifiers})
	}
	p.setState(StateInactive)
}

func (p *NodeProcess) handleContextClick(ev Event) {
	ctx := p.clickContext(ev)
	if p.OnContextClick != nil {
		p.OnContextClick(ctx)
	}
	p.emit(CanvasEvent{Type: CanvasContextClick, Target: ctx.Target, NodeID: ctx.NodeID, Position: ev.Position, Modifiers: ev.Modifiers})
}

func (p *NodeProcess) clickContext(ev Event) ClickContext {
	return ClickContext{
		Target:        p.interaction.TargetType(),
		NodeID:        p.interaction.TargetNodeID(),
		Position:      ev.Position,
		GraphPosition: ev.Position.Sub(p.shift),
		Modifiers:     ev.Modifiers,
	}
}

// --- Gestures ---

// updateMarquee rebuilds the selection from the snapshot (or from nothing)
// plus every node fully inside the marquee.
func (p *NodeProcess) updateMarquee(pos Vec2) {
	sel := p.selection
	sel.SetMarquee(p.pressPos, pos)

	mode := sel.Mode()
	if mode == SelectionDefault {
		sel.DeselectAll()
	} else {
		sel.SelectMany(sel.Snapshot(), false)
	}

	m := sel.Marquee()
	for _, g := range p.geometry.entries {
		if !m.ContainsRect(g.Rect) {
			continue
		}
		if mode == SelectionSubtract {
			sel.Deselect(g.ID)
		} else {
			sel.Select(g.ID, true)
		}
	}
	p.requiresRepaint = true
}

// moveSelection adds d to the position of every selected node.
func (p *NodeProcess) moveSelection(d Vec2) {
	for _, id := range p.selection.Selected() {
		n, ok := p.nodes[id]
		if !ok {
			continue
		}
		n.SetPosition(n.Position().Add(d))
	}
	p.gestureDelta = p.gestureDelta.Add(d)
	p.requiresRepaint = true
	p.changed = true
}

// pan adds d to the canvas shift and writes it back to the caller.
func (p *NodeProcess) pan(d Vec2) {
	p.scroll = nil
	p.setShift(p.shift.Add(d))
	p.gestureDelta = p.gestureDelta.Add(d)
	p.requiresRepaint = true
	p.changed = true
}

func (p *NodeProcess) setShift(s Vec2) {
	p.shift = s
	if p.shiftRef != nil {
		*p.shiftRef = s
	}
}

func (p *NodeProcess) finishConnector(ev Event) {
	p.requiresRepaint = true
	if !p.area.Contains(ev.Position) {
		return
	}
	g, ok := p.geometry.hitTest(ev.Position)
	if !ok || g.ID == p.connectorFrom {
		return
	}
	ctx := ConnectContext{
		FromNodeID: p.connectorFrom,
		Connector:  p.connectorIdx,
		ToNodeID:   g.ID,
		Position:   ev.Position,
	}
	p.log.Debug().Str("from", ctx.FromNodeID).Str("to", ctx.ToNodeID).Msg("connect")
	if p.OnConnect != nil {
		p.OnConnect(ctx)
	}
	p.emit(CanvasEvent{
		Type:      CanvasConnect,
		Target:    TargetNode,
		NodeID:    ctx.FromNodeID,
		ToNodeID:  ctx.ToNodeID,
		Connector: ctx.Connector,
		Position:  ev.Position,
		Modifiers: ev.Modifiers,
	})
}

// --- Events ---

func (p *NodeProcess) emit(ev CanvasEvent) {
	if p.sink == nil {
		return
	}
	p.sink.EmitEvent(ev)
}

// emitSelectionChange reports membership changes once per cycle.
func (p *NodeProcess) emitSelectionChange() {
	cur := p.selection.Selected()
	if sameMembers(p.lastSelection, p.selection) {
		return
	}
	p.lastSelection = append(p.lastSelection[:0], cur...)
	p.emit(CanvasEvent{
		Type:      CanvasSelectionChanged,
		Position:  p.event.Position,
		Selection: append([]string(nil), cur...),
		Modifiers: p.event.Modifiers,
	})
}

func sameMembers(ids []string, sel *SelectionManager) bool {
	if len(ids) != sel.Len() {
		return false
	}
	for _, id := range ids {
		if !sel.IsSelected(id) {
			return false
		}
	}
	return true
}

// --- Painting ---

func (p *NodeProcess) drawBackground(pt Painter) {
	st := p.style()
	defer pushColor(pt, st.background)()
	pt.FillRect(p.area)

	if !p.config.DrawGrid {
		return
	}
	p.drawGridLines(pt, p.config.GridSpacing, st.gridMinor)
	p.drawGridLines(pt, p.config.GridSpacing*10, st.gridMajor)
}

func (p *NodeProcess) drawGridLines(pt Painter, spacing float64, c Color) {
	if spacing <= 0 {
		return
	}
	pt.SetColor(c)
	a := p.area
	startX := a.X + math.Mod(p.shift.X, spacing)
	if startX < a.X {
		startX += spacing
	}
	for x := startX; x <= a.X+a.Width; x += spacing {
		pt.StrokeLine(Vec2{x, a.Y}, Vec2{x, a.Y + a.Height}, 1)
	}
	startY := a.Y + math.Mod(p.shift.Y, spacing)
	if startY < a.Y {
		startY += spacing
	}
	for y := startY; y <= a.Y+a.Height; y += spacing {
		pt.StrokeLine(Vec2{a.X, y}, Vec2{a.X + a.Width, y}, 1)
	}
}

// drawEvidence outlines every selected node laid out this frame. Selected
// nodes the host did not draw have no geometry and are skipped.
func (p *NodeProcess) drawEvidence(pt Painter) {
	if !p.config.EvidenceSelected || p.selection.Len() == 0 {
		return
	}
	width := p.config.EvidenceWidth
	defer pushColor(pt, p.style().evidence)()
	for _, id := range p.selection.Selected() {
		g, ok := p.geometry.get(id)
		if !ok {
			if p.debug {
				p.log.Debug().Str("node", id).Msg("selected node has no geometry this frame")
			}
			continue
		}
		pt.StrokeRect(g.Rect.Inset(-width), width)
	}
}

func (p *NodeProcess) drawMarquee(pt Painter) {
	st := p.style()
	m := p.selection.Marquee()
	defer pushColor(pt, st.marqueeFill)()
	pt.FillRect(m)
	pt.SetColor(st.marqueeBorder)
	pt.StrokeRect(m, 1)
}

func (p *NodeProcess) drawConnectorBand(pt Painter) {
	g, ok := p.geometry.get(p.connectorFrom)
	if !ok || p.connectorIdx < 0 || p.connectorIdx >= len(g.Connectors) {
		return
	}
	defer pushColor(pt, p.style().connectorBand)()
	pt.StrokeLine(g.Connectors[p.connectorIdx].Center(), p.connectorEnd, 2)
}
