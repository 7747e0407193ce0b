package nodecanvas

// NodeGeometry pairs a node identity with the screen rectangles computed for
// it during the current layout pass.
type NodeGeometry struct {
	ID         string
	Rect       Rect   // full bounding rectangle
	DragRect   Rect   // draggable sub-rectangle
	Connectors []Rect // connector handles, may be empty
}

// geometryCache is the per-frame node geometry, iterated in insertion order.
// It is cleared at the start of every layout pass and refilled as nodes draw.
type geometryCache struct {
	entries []NodeGeometry
	index   map[string]int
}

func (c *geometryCache) reset() {
	for i := range c.entries {
		c.entries[i] = NodeGeometry{}
	}
	c.entries = c.entries[:0]
	clear(c.index)
}

// put inserts g, replacing an earlier entry for the same node in place.
func (c *geometryCache) put(g NodeGeometry) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[g.ID]; ok {
		c.entries[i] = g
		return
	}
	c.index[g.ID] = len(c.entries)
	c.entries = append(c.entries, g)
}

func (c *geometryCache) get(id string) (NodeGeometry, bool) {
	i, ok := c.index[id]
	if !ok {
		return NodeGeometry{}, false
	}
	return c.entries[i], true
}

func (c *geometryCache) len() int { return len(c.entries) }

// hitTest returns the first entry, in insertion order, whose full rectangle
// contains p.
func (c *geometryCache) hitTest(p Vec2) (NodeGeometry, bool) {
	for i := range c.entries {
		if c.entries[i].Rect.Contains(p) {
			return c.entries[i], true
		}
	}
	return NodeGeometry{}, false
}
