package nodecanvas

// SelectionMode controls how a marquee combines with the selection that
// existed when it started.
type SelectionMode uint8

const (
	SelectionDefault  SelectionMode = iota // marquee replaces the selection
	SelectionAdd                           // marquee adds to the snapshot
	SelectionSubtract                      // marquee removes from the snapshot
)

func (m SelectionMode) String() string {
	switch m {
	case SelectionDefault:
		return "default"
	case SelectionAdd:
		return "add"
	case SelectionSubtract:
		return "subtract"
	default:
		return "unknown"
	}
}

// SelectionManager owns the set of selected node ids, the snapshot taken when
// a modified marquee starts, and the marquee rectangle itself.
//
// Membership is a set; Selected returns ids in the order they were selected
// so drag application is deterministic.
type SelectionManager struct {
	order    []string
	members  map[string]struct{}
	snapshot []string
	mode     SelectionMode
	marquee  Rect
}

// NewSelectionManager returns an empty selection.
func NewSelectionManager() *SelectionManager {
	return &SelectionManager{members: make(map[string]struct{})}
}

// Select adds id to the selection. When additive is false the selection is
// cleared first.
func (s *SelectionManager) Select(id string, additive bool) {
	if !additive {
		if len(s.order) == 1 && s.order[0] == id {
			return
		}
		s.DeselectAll()
	}
	if _, ok := s.members[id]; ok {
		return
	}
	s.members[id] = struct{}{}
	s.order = append(s.order, id)
}

// SelectMany adds every id in ids. When additive is false the selection is
// cleared first. Used to reapply a snapshot.
func (s *SelectionManager) SelectMany(ids []string, additive bool) {
	if !additive {
		s.DeselectAll()
	}
	for _, id := range ids {
		s.Select(id, true)
	}
}

// Deselect removes id if present.
func (s *SelectionManager) Deselect(id string) {
	if _, ok := s.members[id]; !ok {
		return
	}
	delete(s.members, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Toggle flips the membership of id.
func (s *SelectionManager) Toggle(id string) {
	if s.IsSelected(id) {
		s.Deselect(id)
		return
	}
	s.Select(id, true)
}

// DeselectAll clears the selection and reports whether anything was removed.
func (s *SelectionManager) DeselectAll() bool {
	if len(s.order) == 0 {
		return false
	}
	clear(s.members)
	s.order = s.order[:0]
	return true
}

// IsSelected reports whether id is selected.
func (s *SelectionManager) IsSelected(id string) bool {
	_, ok := s.members[id]
	return ok
}

// Len returns the number of selected nodes.
func (s *SelectionManager) Len() int { return len(s.order) }

// Selected returns the selected ids in selection order. The returned slice
// MUST NOT be mutated.
func (s *SelectionManager) Selected() []string { return s.order }

// StoreSnapshot copies the current selection for later reapplication.
func (s *SelectionManager) StoreSnapshot() {
	s.snapshot = append(s.snapshot[:0], s.order...)
}

// ClearSnapshot discards the stored snapshot.
func (s *SelectionManager) ClearSnapshot() {
	s.snapshot = s.snapshot[:0]
}

// Snapshot returns the stored snapshot. The returned slice MUST NOT be mutated.
func (s *SelectionManager) Snapshot() []string { return s.snapshot }

// Mode returns the current marquee selection mode.
func (s *SelectionManager) Mode() SelectionMode { return s.mode }

// SetMode sets the marquee selection mode.
func (s *SelectionManager) SetMode(m SelectionMode) { s.mode = m }

// Marquee returns the current marquee rectangle. It is only meaningful while
// the interaction state is StateDrawingSelection.
func (s *SelectionManager) Marquee() Rect { return s.marquee }

// SetMarquee sets the marquee to the normalized rectangle spanning a and b.
func (s *SelectionManager) SetMarquee(a, b Vec2) {
	s.marquee = RectFromPoints(a, b)
}

// ClearMarquee resets the marquee rectangle.
func (s *SelectionManager) ClearMarquee() {
	s.marquee = Rect{}
}
