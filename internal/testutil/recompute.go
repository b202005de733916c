package testutil

import (
	"sync"

	"github.com/specialistvlad/cellgrid/internal/cellid"
)

// RecomputeCounter records how often each cell is evaluated. Pass its Hook
// to engine.WithRecomputeHook.
type RecomputeCounter struct {
	mu     sync.Mutex
	counts map[cellid.Address]int
}

// NewRecomputeCounter creates an empty counter.
func NewRecomputeCounter() *RecomputeCounter {
	return &RecomputeCounter{counts: make(map[cellid.Address]int)}
}

// Hook records one evaluation of addr.
func (c *RecomputeCounter) Hook(addr cellid.Address) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[addr]++
}

// Count returns how often the cell named raw was evaluated.
func (c *RecomputeCounter) Count(raw string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[cellid.MustParse(raw)]
}

// Total returns the number of evaluations across all cells.
func (c *RecomputeCounter) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Reset forgets all recorded evaluations.
func (c *RecomputeCounter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.counts)
}
