// Package ecs provides ECS adapters for nodecanvas editor events.
//
// The primary adapter is [NewDonburiSink], which bridges canvas events
// (selection changes, node moves, pans, double and context clicks, connector
// drops) into a [Donburi] world as typed events. Subscribe to
// [CanvasEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	process.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
