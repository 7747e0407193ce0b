package nodecanvas

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const mouseButtonCount = 3

// inputSnapshot is the polled device state for one frame.
type inputSnapshot struct {
	cursor  Vec2
	buttons [mouseButtonCount]bool // indexed by MouseButton
	keys    [keyCount]bool         // indexed by Key
	shift   bool
	meta    bool
}

const keyCount = int(KeyA) + 1

// modifiers derives the modifier mask from the snapshot.
func (s *inputSnapshot) modifiers() KeyModifiers {
	var mods KeyModifiers
	if s.shift {
		mods |= ModShift
	}
	if s.keys[KeyControlLeft] || s.keys[KeyControlRight] {
		mods |= ModCtrl
	}
	if s.keys[KeyAltLeft] || s.keys[KeyAltRight] {
		mods |= ModAlt
	}
	if s.meta {
		mods |= ModMeta
	}
	return mods
}

// ebitenKeys maps tracked keys to their ebiten key codes.
var ebitenKeys = [keyCount]ebiten.Key{
	KeyControlLeft:  ebiten.KeyControlLeft,
	KeyControlRight: ebiten.KeyControlRight,
	KeyAltLeft:      ebiten.KeyAltLeft,
	KeyAltRight:     ebiten.KeyAltRight,
	KeyEscape:       ebiten.KeyEscape,
	KeyF:            ebiten.KeyF,
	KeyA:            ebiten.KeyA,
}

// readInput polls ebiten for the current device state.
func readInput() inputSnapshot {
	var s inputSnapshot
	mx, my := ebiten.CursorPosition()
	s.cursor = Vec2{float64(mx), float64(my)}
	s.buttons[MouseButtonLeft] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.buttons[MouseButtonRight] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	s.buttons[MouseButtonMiddle] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	for k := KeyControlLeft; int(k) < keyCount; k++ {
		s.keys[k] = ebiten.IsKeyPressed(ebitenKeys[k])
	}
	s.shift = ebiten.IsKeyPressed(ebiten.KeyShift)
	s.meta = ebiten.IsKeyPressed(ebiten.KeyMeta)
	return s
}

// inputTranslator turns successive polled snapshots into the event stream a
// NodeProcess expects: key transitions, presses, drags or moves, releases,
// and a context click for a secondary release that never dragged.
type inputTranslator struct {
	prev         inputSnapshot
	rightStart   Vec2
	rightDragged bool
}

func (t *inputTranslator) translate(cur inputSnapshot) []Event {
	var events []Event
	prev := t.prev
	mods := cur.modifiers()

	for k := KeyControlLeft; int(k) < keyCount; k++ {
		switch {
		case cur.keys[k] && !prev.keys[k]:
			events = append(events, Event{Type: EventKeyDown, Key: k, Position: cur.cursor, Modifiers: mods})
		case !cur.keys[k] && prev.keys[k]:
			events = append(events, Event{Type: EventKeyUp, Key: k, Position: cur.cursor, Modifiers: mods})
		}
	}

	for b := MouseButton(0); b < mouseButtonCount; b++ {
		if cur.buttons[b] && !prev.buttons[b] {
			events = append(events, Event{Type: EventMouseDown, Button: b, Position: cur.cursor, Modifiers: mods})
			if b == MouseButtonRight {
				t.rightStart = cur.cursor
				t.rightDragged = false
			}
		}
	}

	if cur.cursor != prev.cursor {
		delta := cur.cursor.Sub(prev.cursor)
		held := false
		for b := MouseButton(0); b < mouseButtonCount; b++ {
			if cur.buttons[b] && prev.buttons[b] {
				held = true
				events = append(events, Event{Type: EventMouseDrag, Button: b, Position: cur.cursor, Delta: delta, Modifiers: mods})
			}
		}
		if !held {
			events = append(events, Event{Type: EventMouseMove, Position: cur.cursor, Delta: delta, Modifiers: mods})
		}
		if cur.buttons[MouseButtonRight] && cur.cursor.Sub(t.rightStart).Len() >= DragThreshold {
			t.rightDragged = true
		}
	}

	for b := MouseButton(0); b < mouseButtonCount; b++ {
		if !cur.buttons[b] && prev.buttons[b] {
			events = append(events, Event{Type: EventMouseUp, Button: b, Position: cur.cursor, Modifiers: mods})
			if b == MouseButtonRight && !t.rightDragged {
				events = append(events, Event{Type: EventContextClick, Button: b, Position: cur.cursor, Modifiers: mods})
			}
		}
	}

	t.prev = cur
	return events
}
