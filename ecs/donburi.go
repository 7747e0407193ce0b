package ecs

import (
	"github.com/phanxgames/nodecanvas"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CanvasEventType is the Donburi event type for nodecanvas editor events.
var CanvasEventType = events.NewEventType[nodecanvas.CanvasEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to CanvasEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) nodecanvas.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event nodecanvas.CanvasEvent) {
	CanvasEventType.Publish(s.world, event)
}
