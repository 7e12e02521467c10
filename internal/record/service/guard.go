// Package service provides the record-side services: the reentrancy guard, the
// masking transform and the annotation tag scanner.
package service

import (
	"sync"

	recordDomain "github.com/allisson/sealedfields/internal/record/domain"
)

// ReentrancyGuard is an in-process set of coordinates currently being encrypted.
// It is advisory: it does not coordinate separate processes.
type ReentrancyGuard struct {
	inFlight sync.Map
}

// NewReentrancyGuard creates an empty guard.
func NewReentrancyGuard() *ReentrancyGuard {
	return &ReentrancyGuard{}
}

// TryEnter marks coord as in flight. It returns false when coord was already in flight.
func (g *ReentrancyGuard) TryEnter(coord recordDomain.Coordinate) bool {
	_, loaded := g.inFlight.LoadOrStore(coord, struct{}{})
	return !loaded
}

// Leave removes coord from the in-flight set.
func (g *ReentrancyGuard) Leave(coord recordDomain.Coordinate) {
	g.inFlight.Delete(coord)
}

// Enter is TryEnter returning a release function meant to be deferred.
// The release function is nil when ok is false.
func (g *ReentrancyGuard) Enter(coord recordDomain.Coordinate) (release func(), ok bool) {
	if !g.TryEnter(coord) {
		return nil, false
	}
	var once sync.Once
	return func() {
		once.Do(func() { g.Leave(coord) })
	}, true
}

// InFlight reports whether coord is currently in flight.
func (g *ReentrancyGuard) InFlight(coord recordDomain.Coordinate) bool {
	_, ok := g.inFlight.Load(coord)
	return ok
}
