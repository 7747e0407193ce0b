package nodecanvas

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds the active tweens animating the canvas shift.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// ScrollTo animates the canvas shift to target over duration seconds. Call
// Tick every frame to advance it. A pan gesture cancels the animation.
func (p *NodeProcess) ScrollTo(target Vec2, duration float32, fn ease.TweenFunc) {
	if fn == nil {
		fn = ease.OutCubic
	}
	p.scroll = &scrollAnim{
		tweenX: gween.New(float32(p.shift.X), float32(target.X), duration, fn),
		tweenY: gween.New(float32(p.shift.Y), float32(target.Y), duration, fn),
	}
}

// FrameSelection scrolls so the selected nodes laid out this frame are
// centered in the visible area. It reports false when nothing selected has
// geometry.
func (p *NodeProcess) FrameSelection(duration float32) bool {
	var bounds Rect
	found := false
	for _, id := range p.selection.Selected() {
		g, ok := p.geometry.get(id)
		if !ok {
			continue
		}
		if !found {
			bounds = g.Rect
			found = true
			continue
		}
		bounds = bounds.Union(g.Rect)
	}
	if !found {
		return false
	}
	offset := p.area.Center().Sub(bounds.Center())
	p.ScrollTo(p.shift.Add(offset), duration, ease.OutCubic)
	return true
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (p *NodeProcess) Scrolling() bool { return p.scroll != nil }

// Tick advances the scroll animation by dt seconds and writes the shift back
// to the caller's reference.
func (p *NodeProcess) Tick(dt float32) {
	a := p.scroll
	if a == nil {
		return
	}
	s := p.shift
	if !a.doneX {
		val, done := a.tweenX.Update(dt)
		s.X = float64(val)
		a.doneX = done
	}
	if !a.doneY {
		val, done := a.tweenY.Update(dt)
		s.Y = float64(val)
		a.doneY = done
	}
	p.setShift(s)
	if a.doneX && a.doneY {
		p.scroll = nil
	}
	p.host.RequestRepaint()
}
