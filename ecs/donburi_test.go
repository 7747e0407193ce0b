package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/nodecanvas"

	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []nodecanvas.CanvasEvent
	CanvasEventType.Subscribe(world, func(w donburi.World, e nodecanvas.CanvasEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(nodecanvas.CanvasEvent{
		Type:     nodecanvas.CanvasNodesMoved,
		NodeID:   "a",
		Delta:    nodecanvas.Vec2{X: 30, Y: 5},
		Position: nodecanvas.Vec2{X: 100, Y: 200},
	})
	sink.EmitEvent(nodecanvas.CanvasEvent{
		Type:     nodecanvas.CanvasConnect,
		NodeID:   "a",
		ToNodeID: "b",
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before ProcessEvents, got %d", len(received))
	}
	CanvasEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != nodecanvas.CanvasNodesMoved || e0.NodeID != "a" {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Delta.X != 30 || e0.Delta.Y != 5 {
		t.Errorf("event 0 delta: %+v", e0.Delta)
	}
	e1 := received[1]
	if e1.Type != nodecanvas.CanvasConnect || e1.ToNodeID != "b" {
		t.Errorf("event 1: %+v", e1)
	}
}

type stepHost struct {
	now time.Duration
}

func (h *stepHost) RequestRepaint()                                  {}
func (h *stepHost) SetCursor(nodecanvas.Rect, nodecanvas.CursorType) {}
func (h *stepHost) Now() time.Duration                               { return h.now }
func (h *stepHost) Painter() nodecanvas.Painter                      { return nil }

func TestDonburiSink_FromCanvas(t *testing.T) {
	world := donburi.NewWorld()
	host := &stepHost{now: time.Second}
	c := nodecanvas.NewCanvas(host, nodecanvas.DefaultConfig(), nodecanvas.Rect{Width: 800, Height: 600})
	c.Process().SetEventSink(NewDonburiSink(world))
	c.AddNode(nodecanvas.NewBasicNode("a", "", "A", nodecanvas.Vec2{X: 100, Y: 100}))

	var types []nodecanvas.CanvasEventType
	CanvasEventType.Subscribe(world, func(w donburi.World, e nodecanvas.CanvasEvent) {
		types = append(types, e.Type)
	})

	c.InjectDrag(110, 110, 150, 110, 4)
	for c.Pending() > 0 {
		c.Update(nil)
	}
	CanvasEventType.ProcessEvents(world)

	want := []nodecanvas.CanvasEventType{nodecanvas.CanvasSelectionChanged, nodecanvas.CanvasNodesMoved}
	if len(types) != len(want) {
		t.Fatalf("events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}
