package sapling

import (
	"fmt"
	"os"
	"time"
)

// globalDebug mirrors the most recently set Game debug flag so that entity
// and group operations (which lack a Game pointer) can check it cheaply.
var globalDebug bool

// SetDebugMode enables or disables the package-wide debug checks. When
// enabled, misuse of dead entities and inconsistent group back-references
// panic, and deep trees or very large groups are reported on stderr.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// debugStats holds per-tick timing metrics. Only populated in debug mode.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	entities   int
	tick       uint64
}

// debugLog prints timing stats to stderr.
func debugLog(stats debugStats) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[sapling] tick %d | update: %v | draw: %v | entities: %d\n",
		stats.tick, stats.updateTime, stats.drawTime, stats.entities)
}

// debugCheckDead panics with a descriptive message when a dead entity is
// used. In release mode callers skip this entirely.
func debugCheckDead(e *Entity, op string) {
	if e.dead {
		panic(fmt.Sprintf("sapling debug: %s on dead entity %q", op, e.Name))
	}
}

// debugCheckMembership panics when e lists g as a membership but g does not
// hold e.
func debugCheckMembership(e *Entity, g *Group) {
	if g.indexOf(e) < 0 {
		panic(fmt.Sprintf("sapling debug: entity %q lists group %q but is not a member", e.Name, g.Name))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(e *Entity) {
	depth := 0
	for p := e; p != nil && depth <= debugMaxTreeDepth+1; p = p.Parent() {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[sapling] warning: tree depth %d exceeds %d (entity %q)\n",
			depth, debugMaxTreeDepth, e.Name)
	}
}

// debugCheckGroupSize warns on stderr if a group has more than 1000 members.
const debugMaxGroupSize = 1000

func debugCheckGroupSize(g *Group) {
	if g.live > debugMaxGroupSize {
		_, _ = fmt.Fprintf(os.Stderr, "[sapling] warning: group %q has %d entities (threshold %d)\n",
			g.Name, g.live, debugMaxGroupSize)
	}
}

// countEntities counts distinct live entities in the subtree rooted at e.
func countEntities(e *Entity, seen map[*Entity]bool) int {
	if e == nil || e.dead || seen[e] {
		return 0
	}
	seen[e] = true
	count := 1
	for _, g := range e.children {
		for _, m := range g.members {
			if m != nil {
				count += countEntities(m, seen)
			}
		}
	}
	return count
}
