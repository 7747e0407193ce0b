package nodecanvas

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewBasicNodeGeneratesID(t *testing.T) {
	n := NewBasicNode("", "task", "Task", Vec2{1, 2})
	if _, err := uuid.Parse(n.ID()); err != nil {
		t.Errorf("generated id %q is not a uuid: %v", n.ID(), err)
	}
	if n.Kind() != "task" || n.Title() != "Task" || n.Position() != (Vec2{1, 2}) {
		t.Errorf("node = %+v", n)
	}
	if n.Size() != DefaultNodeSize {
		t.Errorf("Size = %v, want default", n.Size())
	}
	if other := NewBasicNode("", "", "", Vec2{}); other.ID() == n.ID() {
		t.Error("generated ids should differ")
	}
}

func TestBoxRendererRects(t *testing.T) {
	p := NewNodeProcess(newTestHost(), DefaultConfig())
	r := p.renderer("")
	n := NewBasicNode("a", "", "", Vec2{})
	n.Width, n.Height = 100, 16

	full, drag := r.Rects(n, Vec2{10, 20})
	if full != (Rect{10, 20, 100, 16}) {
		t.Errorf("full = %+v", full)
	}
	if drag != (Rect{10, 20, 100, 16}) {
		t.Errorf("header taller than the node should be clamped, drag = %+v", drag)
	}

	cr, ok := r.(ConnectorRenderer)
	if !ok {
		t.Fatal("box renderer should expose connectors")
	}
	conns := cr.ConnectorRects(n, full)
	if len(conns) != 1 || conns[0] != (Rect{98, 22, 12, 12}) {
		t.Errorf("connectors = %+v", conns)
	}
}

func TestBoxRendererPaint(t *testing.T) {
	p := NewNodeProcess(newTestHost(), DefaultConfig())
	r := p.renderer("")
	pt := &recordingPainter{color: ColorWhite}
	n := NewBasicNode("a", "", "Title", Vec2{})
	full, _ := r.Rects(n, Vec2{})
	r.Paint(n, full, pt)

	if pt.count("fill") != 3 {
		t.Errorf("fills = %d, want body, header and connector", pt.count("fill"))
	}
	if pt.count("text Title") != 1 {
		t.Errorf("title not drawn: %v", pt.calls)
	}
	if pt.color != ColorWhite {
		t.Error("painter color should be restored")
	}
}

func TestRendererSharedPerKind(t *testing.T) {
	p := NewNodeProcess(newTestHost(), DefaultConfig())
	if p.renderer("x") != p.renderer("x") {
		t.Error("renderer should be cached per kind")
	}
}
