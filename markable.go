package lfset

import "sync/atomic"

// refBox is one immutable state of a markedRef.
type refBox[K any] struct {
	next   *node[K]
	marked bool
}

// markedRef holds a successor pointer and a logical-deletion mark that are
// always read and replaced together. Every state lives in its own refBox, so
// a single pointer CAS moves both fields at once.
type markedRef[K any] struct {
	box atomic.Pointer[refBox[K]]
}

// get returns a consistent snapshot of the pair.
func (r *markedRef[K]) get() (*node[K], bool) {
	b := r.box.Load()
	if b == nil {
		return nil, false
	}
	return b.next, b.marked
}

func (r *markedRef[K]) reference() *node[K] {
	next, _ := r.get()
	return next
}

func (r *markedRef[K]) isMarked() bool {
	_, marked := r.get()
	return marked
}

// compareAndSet replaces the pair with (newNext, newMark) if it currently
// equals (expNext, expMark).
//
// The CAS is on the box pointer, so it can fail when another goroutine
// installed an equal-valued box in between. Callers retry on failure.
func (r *markedRef[K]) compareAndSet(expNext *node[K], expMark bool, newNext *node[K], newMark bool) bool {
	cur := r.box.Load()
	var curNext *node[K]
	var curMark bool
	if cur != nil {
		curNext, curMark = cur.next, cur.marked
	}
	if curNext != expNext || curMark != expMark {
		return false
	}
	if newNext == expNext && newMark == expMark {
		return true
	}
	return r.box.CompareAndSwap(cur, &refBox[K]{next: newNext, marked: newMark})
}

// store overwrites the pair. Only valid while the owning node is unpublished.
func (r *markedRef[K]) store(next *node[K], marked bool) {
	r.box.Store(&refBox[K]{next: next, marked: marked})
}
