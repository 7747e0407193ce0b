// Package nodecanvas is the interaction layer of a node-graph editor for
// [Ebitengine].
//
// A canvas holds positioned rectangular nodes on an infinite, pannable
// surface. The package turns a stream of mouse and keyboard events into
// selection changes, node drags, marquee selection, pans, double and context
// clicks and connector drags, and paints selection evidence on top of
// whatever the node renderers draw.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	editor := nodecanvas.NewEditor(nodecanvas.DefaultConfig())
//	editor.Canvas().AddNode(nodecanvas.NewBasicNode("", "", "Source", nodecanvas.Vec2{X: 80, Y: 120}))
//	nodecanvas.Run(editor, nodecanvas.RunConfig{
//		Title: "Graph", Width: 1280, Height: 720,
//	})
//
// # Driving a NodeProcess directly
//
// Hosts with their own loop implement [Host] and run one cycle per event:
//
//	p.BeginGUI(ev, area, &shift)
//	for _, n := range nodes {
//		p.Draw(n)
//	}
//	p.EndGUI(ev)
//
// Every frame must run an [EventLayout] cycle before input or
// [EventRepaint] cycles so hit testing and evidence drawing see fresh
// geometry. [Canvas] does this for you.
//
// # Gestures
//
// A press only records what it is ready for. The gesture starts once the
// pointer has travelled [DragThreshold] pixels from the press, and the
// movement made before that point is applied in full.
//
//   - Primary drag on the background draws a marquee. Ctrl adds to the
//     existing selection, Alt subtracts from it.
//   - Primary drag on a node header moves every selected node.
//   - Primary drag from a connector handle ends in [NodeProcess.OnConnect]
//     when released over another node.
//   - Middle drag pans the canvas.
//   - Two primary releases on the same target within [DoubleClickWindow]
//     fire [NodeProcess.OnDoubleClick].
//
// # Renderers
//
// Nodes are drawn by a [NodeRenderer] chosen by [Node.Kind]. Register one
// with [NodeProcess.RegisterRenderer]; unregistered kinds use a plain box
// with a draggable header strip.
//
// # Events and ECS
//
// High-level [CanvasEvent]s go to an [EventSink]. The nodecanvas/ecs
// package publishes them into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package nodecanvas
