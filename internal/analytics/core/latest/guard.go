// Package latest matches asynchronous results to the request that produced
// them. Each refresh begins by taking a sequence number; a result is only
// accepted if no newer result already landed, so a slow stale response can
// never overwrite a fresher one.
package latest

import "sync"

type Guard[T any] struct {
	mu       sync.Mutex
	issued   uint64
	accepted uint64
	value    T
	has      bool
}

func NewGuard[T any]() *Guard[T] {
	return &Guard[T]{}
}

// Begin issues the sequence number for an outgoing request. Sequence numbers
// increase monotonically per guard.
func (g *Guard[T]) Begin() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.issued++
	return g.issued
}

// Accept stores v as the latest value unless a result with a newer sequence
// was already accepted. It reports whether v was kept.
func (g *Guard[T]) Accept(seq uint64, v T) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.has && seq < g.accepted {
		return false
	}
	g.accepted = seq
	g.value = v
	g.has = true
	return true
}

// Latest returns the most recently accepted value, if any.
func (g *Guard[T]) Latest() (T, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.value, g.has
}
