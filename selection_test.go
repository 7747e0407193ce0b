package nodecanvas

import "testing"

func TestSelectionSelect(t *testing.T) {
	s := NewSelectionManager()
	s.Select("a", false)
	s.Select("b", true)
	if !sameSet(selectedSet(s), "a", "b") {
		t.Fatalf("selected = %v", s.Selected())
	}
	s.Select("c", false)
	if !sameSet(selectedSet(s), "c") {
		t.Errorf("non-additive select should replace, got %v", s.Selected())
	}
	s.Select("c", true)
	if s.Len() != 1 {
		t.Errorf("duplicate select should be ignored, len = %d", s.Len())
	}
}

func TestSelectionOrder(t *testing.T) {
	s := NewSelectionManager()
	for _, id := range []string{"c", "a", "b"} {
		s.Select(id, true)
	}
	s.Deselect("a")
	got := s.Selected()
	if len(got) != 2 || got[0] != "c" || got[1] != "b" {
		t.Errorf("Selected() = %v, want [c b]", got)
	}
}

func TestSelectionToggle(t *testing.T) {
	s := NewSelectionManager()
	s.Toggle("a")
	if !s.IsSelected("a") {
		t.Fatal("toggle should select")
	}
	s.Toggle("a")
	if s.IsSelected("a") {
		t.Error("toggle should deselect")
	}
}

func TestSelectionDeselectAll(t *testing.T) {
	s := NewSelectionManager()
	if s.DeselectAll() {
		t.Error("DeselectAll on empty selection should report false")
	}
	s.SelectMany([]string{"a", "b"}, false)
	if !s.DeselectAll() {
		t.Error("DeselectAll should report true when something was removed")
	}
	if s.Len() != 0 || s.IsSelected("a") {
		t.Error("selection should be empty")
	}
}

func TestSelectionSnapshot(t *testing.T) {
	s := NewSelectionManager()
	s.SelectMany([]string{"a", "b"}, false)
	s.StoreSnapshot()
	s.Select("c", false)

	snap := s.Snapshot()
	if len(snap) != 2 || snap[0] != "a" || snap[1] != "b" {
		t.Fatalf("snapshot = %v, want [a b]", snap)
	}

	s.SelectMany(snap, false)
	if !sameSet(selectedSet(s), "a", "b") {
		t.Errorf("reapplied snapshot = %v", s.Selected())
	}
	s.ClearSnapshot()
	if len(s.Snapshot()) != 0 {
		t.Error("ClearSnapshot should empty the snapshot")
	}
}

func TestSelectionMarqueeNormalized(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want Rect
	}{
		{"down-right", Vec2{10, 20}, Vec2{50, 80}, Rect{10, 20, 40, 60}},
		{"up-left", Vec2{50, 80}, Vec2{10, 20}, Rect{10, 20, 40, 60}},
		{"up-right", Vec2{10, 80}, Vec2{50, 20}, Rect{10, 20, 40, 60}},
		{"degenerate", Vec2{5, 5}, Vec2{5, 5}, Rect{5, 5, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelectionManager()
			s.SetMarquee(tt.a, tt.b)
			if got := s.Marquee(); got != tt.want {
				t.Errorf("Marquee() = %+v, want %+v", got, tt.want)
			}
		})
	}

	s := NewSelectionManager()
	s.SetMarquee(Vec2{1, 1}, Vec2{9, 9})
	s.ClearMarquee()
	if s.Marquee() != (Rect{}) {
		t.Error("ClearMarquee should reset the rectangle")
	}
}

func TestSelectionMode(t *testing.T) {
	s := NewSelectionManager()
	if s.Mode() != SelectionDefault {
		t.Errorf("initial mode = %v, want default", s.Mode())
	}
	s.SetMode(SelectionSubtract)
	if s.Mode() != SelectionSubtract {
		t.Errorf("mode = %v, want subtract", s.Mode())
	}
}
