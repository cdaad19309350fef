package lfset

import "sync/atomic"

// retireThreshold is the retire-list length at which unpin tries to advance
// the epoch and reclaim.
const retireThreshold = 64

type retiredNode[K any] struct {
	n     *node[K]
	epoch uint64
}

// participant is a reusable epoch record. It is owned by whichever goroutine
// claimed inUse; only the owner touches retired.
type participant[K any] struct {
	// state is epoch<<1 | 1 while pinned, 0 otherwise.
	state   atomic.Uint64
	inUse   atomic.Bool
	next    *participant[K]
	retired []retiredNode[K]
}

// collector implements epoch-based reclamation. A node retired in epoch e is
// freed once the global epoch reaches e+2: by then every goroutine that was
// pinned when the node was still reachable has unpinned.
type collector[K any] struct {
	epoch        atomic.Uint64
	participants atomic.Pointer[participant[K]]
	free         func(*node[K])
}

func newCollector[K any](free func(*node[K])) *collector[K] {
	return &collector[K]{free: free}
}

// acquire claims an idle record or registers a new one. The registry only
// grows, bounded by the peak number of concurrently pinned goroutines.
func (c *collector[K]) acquire() *participant[K] {
	for p := c.participants.Load(); p != nil; p = p.next {
		if !p.inUse.Load() && p.inUse.CompareAndSwap(false, true) {
			return p
		}
	}

	p := &participant[K]{}
	p.inUse.Store(true)
	for {
		head := c.participants.Load()
		p.next = head
		if c.participants.CompareAndSwap(head, p) {
			return p
		}
	}
}

// pin announces that the caller may dereference nodes until unpin.
func (c *collector[K]) pin() *participant[K] {
	p := c.acquire()
	p.state.Store(c.epoch.Load()<<1 | 1)
	return p
}

func (c *collector[K]) unpin(p *participant[K]) {
	p.state.Store(0)
	if len(p.retired) >= retireThreshold {
		c.tryAdvance()
		c.collect(p)
	}
	p.inUse.Store(false)
}

// retire schedules an unlinked node for reclamation. The caller must be the
// goroutine whose CAS unlinked it.
func (c *collector[K]) retire(p *participant[K], n *node[K]) {
	p.retired = append(p.retired, retiredNode[K]{n: n, epoch: c.epoch.Load()})
}

// tryAdvance bumps the global epoch if no pinned participant lags behind it.
func (c *collector[K]) tryAdvance() bool {
	e := c.epoch.Load()
	for p := c.participants.Load(); p != nil; p = p.next {
		s := p.state.Load()
		if s&1 == 1 && s>>1 != e {
			return false
		}
	}
	return c.epoch.CompareAndSwap(e, e+1)
}

func (c *collector[K]) collect(p *participant[K]) int {
	e := c.epoch.Load()
	keep := p.retired[:0]
	freed := 0
	for _, r := range p.retired {
		if r.epoch+2 <= e {
			c.free(r.n)
			freed++
			continue
		}
		keep = append(keep, r)
	}
	clear(p.retired[len(keep):])
	p.retired = keep
	return freed
}

// drain advances the epoch as far as pinned goroutines allow and reclaims
// from every idle record. It returns the number of nodes freed.
func (c *collector[K]) drain() int {
	c.tryAdvance()
	c.tryAdvance()

	freed := 0
	for p := c.participants.Load(); p != nil; p = p.next {
		if !p.inUse.Load() && p.inUse.CompareAndSwap(false, true) {
			freed += c.collect(p)
			p.inUse.Store(false)
		}
	}
	return freed
}
