package nodecanvas

// NodeRenderer draws one kind of node. A renderer is created lazily the first
// time its kind is drawn and lives as long as the owning NodeProcess.
type NodeRenderer interface {
	// Rects returns the node's full bounding rectangle and its draggable
	// sub-rectangle. origin is the node's position plus the canvas shift.
	Rects(node Node, origin Vec2) (full, drag Rect)
	// Paint draws the node inside full. Only called during a paint pass and
	// only when full intersects the visible area.
	Paint(node Node, full Rect, p Painter)
}

// ConnectorRenderer is implemented by renderers whose nodes expose connector
// handles that start a connection drag.
type ConnectorRenderer interface {
	ConnectorRects(node Node, full Rect) []Rect
}

// RendererFactory builds the renderer for a node kind. The process passed in
// is a non-owning back reference; the process owns the renderer.
type RendererFactory func(p *NodeProcess) NodeRenderer

// RegisterRenderer installs the factory for kind. A renderer already created
// for kind is discarded so the next Draw uses the new factory.
func (p *NodeProcess) RegisterRenderer(kind string, f RendererFactory) {
	if p.factories == nil {
		p.factories = make(map[string]RendererFactory)
	}
	p.factories[kind] = f
	delete(p.renderers, kind)
}

// renderer resolves the renderer for kind, creating and caching it on first
// use. Kinds without a factory share the default box renderer.
func (p *NodeProcess) renderer(kind string) NodeRenderer {
	if r, ok := p.renderers[kind]; ok {
		return r
	}
	f, ok := p.factories[kind]
	if !ok {
		f = newBoxRenderer
	}
	if p.renderers == nil {
		p.renderers = make(map[string]NodeRenderer)
	}
	r := f(p)
	p.renderers[kind] = r
	p.log.Debug().Str("kind", kind).Msg("renderer created")
	return r
}

const (
	boxHeaderHeight = 22.0
	boxConnector    = 12.0
)

// boxRenderer is the default renderer: a filled body, a draggable header strip
// with the node title, and one output connector on the right edge.
type boxRenderer struct {
	process *NodeProcess
}

func newBoxRenderer(p *NodeProcess) NodeRenderer {
	return &boxRenderer{process: p}
}

func (r *boxRenderer) Rects(node Node, origin Vec2) (full, drag Rect) {
	size := DefaultNodeSize
	if s, ok := node.(Sizer); ok {
		size = s.Size()
	}
	full = Rect{X: origin.X, Y: origin.Y, Width: size.X, Height: size.Y}
	drag = Rect{X: origin.X, Y: origin.Y, Width: size.X, Height: min(boxHeaderHeight, size.Y)}
	return full, drag
}

func (r *boxRenderer) ConnectorRects(node Node, full Rect) []Rect {
	half := boxConnector / 2
	return []Rect{{
		X:      full.X + full.Width - boxConnector,
		Y:      full.Y + full.Height/2 - half,
		Width:  boxConnector,
		Height: boxConnector,
	}}
}

func (r *boxRenderer) Paint(node Node, full Rect, p Painter) {
	st := r.process.style()
	defer pushColor(p, st.nodeBody)()
	p.FillRect(full)

	_, header := r.Rects(node, Vec2{full.X, full.Y})
	p.SetColor(st.nodeHeader)
	p.FillRect(header)

	p.SetColor(st.connector)
	for _, c := range r.ConnectorRects(node, full) {
		p.FillRect(c)
	}

	if t, ok := node.(Titled); ok && t.Title() != "" {
		p.SetColor(st.text)
		p.Text(t.Title(), Vec2{header.X + 6, header.Y + 4})
	}
}
