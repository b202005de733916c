package inmemorycells

import (
	"sync"

	"github.com/specialistvlad/cellgrid/internal/cellid"
	"github.com/specialistvlad/cellgrid/internal/cellstore"
)

// Store implements cellstore.Store using a map and a mutex.
type Store struct {
	mu    sync.RWMutex
	cells map[cellid.Address]cellstore.Entry
}

// New creates a new, empty in-memory cell store.
func New() cellstore.Store {
	return &Store{
		cells: make(map[cellid.Address]cellstore.Entry),
	}
}

// Get retrieves the entry for a cell, or a blank entry if none is stored.
func (s *Store) Get(addr cellid.Address) (cellstore.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.cells[addr]
	if !ok {
		return cellstore.Blank(), false
	}
	return e, true
}

// Put stores an entry. Blank entries are dropped to keep the map sparse.
func (s *Store) Put(addr cellid.Address, e cellstore.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.IsBlank() {
		delete(s.cells, addr)
		return
	}
	s.cells[addr] = e
}

// Snapshot returns all stored cells in row-major order.
func (s *Store) Snapshot() []cellstore.Cell {
	s.mu.RLock()
	defer s.mu.RUnlock()

	addrs := make([]cellid.Address, 0, len(s.cells))
	for addr := range s.cells {
		addrs = append(addrs, addr)
	}
	cellid.Sort(addrs)

	out := make([]cellstore.Cell, 0, len(addrs))
	for _, addr := range addrs {
		out = append(out, cellstore.Cell{Address: addr, Entry: s.cells[addr]})
	}
	return out
}

// Len returns the number of stored cells.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cells)
}
