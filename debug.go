package nodecanvas

import (
	"time"

	"github.com/rs/zerolog"
)

// cycleStats holds per-cycle timing. Only collected in debug mode.
type cycleStats struct {
	event      EventType
	layoutTime time.Duration
	eventTime  time.Duration
	nodeCount  int
	geometry   int
	selected   int
}

// SetLogger sets the logger used for diagnostics. The process logs nothing
// below Info unless debug mode is on.
func (p *NodeProcess) SetLogger(l zerolog.Logger) {
	p.base = l
	p.applyLogLevel()
}

// SetDebugMode enables or disables debug mode. When enabled, state
// transitions, gesture promotions, renderer creation, missing geometry and
// per-cycle timings are logged at Debug level. zerolog's global level still
// applies, so callers that raise it must lower it to Debug as well.
func (p *NodeProcess) SetDebugMode(enabled bool) {
	p.debug = enabled
	p.applyLogLevel()
}

func (p *NodeProcess) applyLogLevel() {
	if p.debug {
		p.log = p.base.Level(zerolog.DebugLevel)
		return
	}
	p.log = p.base.Level(zerolog.InfoLevel)
}

// debugLogCycle writes timing stats for one driven cycle.
func (p *NodeProcess) debugLogCycle(stats cycleStats) {
	if !p.debug {
		return
	}
	p.log.Debug().
		Stringer("event", stats.event).
		Dur("layout", stats.layoutTime).
		Dur("dispatch", stats.eventTime).
		Int("nodes", stats.nodeCount).
		Int("geometry", stats.geometry).
		Int("selected", stats.selected).
		Stringer("state", p.interaction.State()).
		Msg("cycle")
}
