package planter

import (
	"sync"
	"time"
)

// IngestionGuard remembers the modification time of the last snapshot file
// that was persisted. It starts at the Unix epoch so the first poll always
// ingests. The state lives only in memory; after a restart the current file
// is ingested once more.
type IngestionGuard struct {
	mu           sync.Mutex
	lastModified time.Time
	previous     time.Time
}

func NewIngestionGuard() *IngestionGuard {
	epoch := time.Unix(0, 0)
	return &IngestionGuard{lastModified: epoch, previous: epoch}
}

// Observe reports whether modTime is strictly newer than anything seen so far
// and, if so, records it. Compare and update happen under one lock, so two
// concurrent polls of the same file cannot both get true.
func (g *IngestionGuard) Observe(modTime time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !modTime.After(g.lastModified) {
		return false
	}
	g.previous = g.lastModified
	g.lastModified = modTime
	return true
}

// Release undoes a successful Observe of modTime whose snapshot could not be
// persisted, so the next poll tries again.
func (g *IngestionGuard) Release(modTime time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.lastModified.Equal(modTime) {
		g.lastModified = g.previous
	}
}

func (g *IngestionGuard) LastModified() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastModified
}

func (g *IngestionGuard) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lastModified = time.Unix(0, 0)
	g.previous = g.lastModified
}
