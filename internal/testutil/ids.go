package testutil

import "sync"

// FixedGenerator returns predetermined IDs in order.
//
// Panics once every ID has been handed out, so a test that writes more
// records than it planned for fails loudly.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator creates a generator that returns ids in order.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next ID.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.idx >= len(g.ids) {
		panic("testutil: FixedGenerator exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}
