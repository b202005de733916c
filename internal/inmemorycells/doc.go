// Package inmemorycells provides an ephemeral, thread-safe, in-memory
// implementation of the cellstore.Store interface.
//
// The grid is bounded (2,600 cells) and edits are infrequent relative to
// reads, so a plain map guarded by a sync.RWMutex is sufficient: reads never
// contend with each other, and the single writer holds the lock briefly for
// each Put.
package inmemorycells
