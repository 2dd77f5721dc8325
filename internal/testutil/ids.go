package testutil

import (
	"fmt"
	"sync"
)

// SeqIDs generates predictable execution IDs for dispatch tests.
//
// Unlike the production UUIDv7 generator, SeqIDs returns "exec-1",
// "exec-2", ... so log output and assertions stay deterministic.
// Satisfies dispatch.IDGenerator.
//
// Thread-safety: safe for concurrent use via internal mutex.
type SeqIDs struct {
	mu sync.Mutex
	n  int
}

// Generate returns the next ID in sequence, starting at "exec-1".
func (g *SeqIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("exec-%d", g.n)
}

// Count returns how many IDs have been handed out.
func (g *SeqIDs) Count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.n
}
