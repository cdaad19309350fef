// Package lfset provides a lock-free ordered set of integer keys built on a
// Harris/Michael marked linked list.
package lfset

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// Key is the set of integer types a Set can hold.
type Key interface {
	constraints.Integer
}

// Set is a lock-free ordered set of integer keys. All methods are safe for
// concurrent use; none of them blocks or takes a lock. Failed CAS attempts
// are retried internally, so an individual call may loop under heavy
// contention while the set as a whole keeps making progress.
//
// The zero Set is not usable; create one with New.
type Set[K Key] struct {
	head      *node[K]
	tail      *node[K]
	nodePool  sync.Pool
	collector *collector[K]
	metrics   *Metrics
}

// New returns an empty Set.
func New[K Key]() *Set[K] {
	head, tail := newSentinels[K]()
	s := &Set[K]{
		head:    head,
		tail:    tail,
		metrics: newMetrics(newRNG()),
	}
	s.collector = newCollector(s.reclaimNode)
	return s
}

// Add inserts key and reports whether it was absent before the call.
// Adding a key that is already present changes nothing.
func (s *Set[K]) Add(key K) bool {
	p := s.collector.pin()
	defer s.collector.unpin(p)

	return s.insert(p, key)
}

// Remove deletes key and reports whether it was present. The key is gone for
// every later Contains as soon as Remove returns true; the node itself may
// stay linked until some traversal unlinks it.
func (s *Set[K]) Remove(key K) bool {
	p := s.collector.pin()
	defer s.collector.unpin(p)

	return s.delete(p, key)
}

// Contains reports whether key is present. It never modifies the list and
// never retries.
func (s *Set[K]) Contains(key K) bool {
	p := s.collector.pin()
	defer s.collector.unpin(p)

	return s.containsWalk(key)
}

// Len returns the number of keys in the set. It is exact when no operation is
// in flight and approximate otherwise.
func (s *Set[K]) Len() int64 {
	return s.metrics.Len()
}

// Stats reports contention and reclamation counters.
func (s *Set[K]) Stats() Stats {
	return s.metrics.Stats()
}
