package nodecanvas

import "github.com/google/uuid"

// Node is the contract a graph element exposes to the canvas. The canvas
// never creates or destroys nodes; it reads identity and kind and moves them.
type Node interface {
	// ID returns a stable, unique identifier.
	ID() string
	// Kind selects the NodeRenderer used to draw the node.
	Kind() string
	// Position returns the node's position in graph space.
	Position() Vec2
	// SetPosition moves the node in graph space.
	SetPosition(p Vec2)
}

// Sizer is implemented by nodes that report their own size to the default
// box renderer.
type Sizer interface {
	Size() Vec2
}

// Titled is implemented by nodes that show a caption in the default box
// renderer.
type Titled interface {
	Title() string
}

// DefaultNodeSize is the box size used for nodes that do not implement Sizer.
var DefaultNodeSize = Vec2{X: 160, Y: 80}

// BasicNode is a ready-made Node with a title and a fixed size.
type BasicNode struct {
	id     string
	kind   string
	pos    Vec2
	Name   string
	Width  float64
	Height float64 // includes the header strip
}

// NewBasicNode creates a node of the given kind at pos. An empty id is
// replaced with a random UUID.
func NewBasicNode(id, kind, name string, pos Vec2) *BasicNode {
	if id == "" {
		id = uuid.NewString()
	}
	return &BasicNode{
		id:     id,
		kind:   kind,
		pos:    pos,
		Name:   name,
		Width:  DefaultNodeSize.X,
		Height: DefaultNodeSize.Y,
	}
}

func (n *BasicNode) ID() string         { return n.id }
func (n *BasicNode) Kind() string       { return n.kind }
func (n *BasicNode) Position() Vec2     { return n.pos }
func (n *BasicNode) SetPosition(p Vec2) { n.pos = p }
func (n *BasicNode) Size() Vec2         { return Vec2{n.Width, n.Height} }
func (n *BasicNode) Title() string      { return n.Name }
