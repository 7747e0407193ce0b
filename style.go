package nodecanvas

// styleCache holds the palette derived from Config. Each NodeProcess builds
// its own on first use; SetConfig discards it.
type styleCache struct {
	background    Color
	gridMinor     Color
	gridMajor     Color
	nodeBody      Color
	nodeHeader    Color
	connector     Color
	text          Color
	evidence      Color
	marqueeFill   Color
	marqueeBorder Color
	connectorBand Color
}

var (
	lightEvidence = Color{0.18, 0.55, 1, 1}
	darkEvidence  = Color{0.35, 0.65, 1, 1}
)

func newStyleCache(cfg Config) *styleCache {
	if cfg.DarkSkin {
		return &styleCache{
			background:    Color{0.16, 0.16, 0.17, 1},
			gridMinor:     Color{0.22, 0.22, 0.23, 1},
			gridMajor:     Color{0.28, 0.28, 0.3, 1},
			nodeBody:      Color{0.24, 0.24, 0.26, 1},
			nodeHeader:    Color{0.32, 0.32, 0.35, 1},
			connector:     Color{0.85, 0.75, 0.3, 1},
			text:          Color{0.9, 0.9, 0.9, 1},
			evidence:      cfg.evidenceColor(darkEvidence),
			marqueeFill:   Color{0.35, 0.65, 1, 0.15},
			marqueeBorder: Color{0.35, 0.65, 1, 0.8},
			connectorBand: Color{0.85, 0.75, 0.3, 1},
		}
	}
	return &styleCache{
		background:    Color{0.78, 0.78, 0.78, 1},
		gridMinor:     Color{0.72, 0.72, 0.72, 1},
		gridMajor:     Color{0.64, 0.64, 0.64, 1},
		nodeBody:      Color{0.92, 0.92, 0.92, 1},
		nodeHeader:    Color{0.82, 0.82, 0.84, 1},
		connector:     Color{0.8, 0.55, 0.1, 1},
		text:          Color{0.1, 0.1, 0.1, 1},
		evidence:      cfg.evidenceColor(lightEvidence),
		marqueeFill:   Color{0.18, 0.55, 1, 0.15},
		marqueeBorder: Color{0.18, 0.55, 1, 0.8},
		connectorBand: Color{0.8, 0.55, 0.1, 1},
	}
}

// style returns the process palette, building it on first use.
func (p *NodeProcess) style() *styleCache {
	if p.styles == nil {
		p.styles = newStyleCache(p.config)
	}
	return p.styles
}
