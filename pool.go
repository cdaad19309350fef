package lfset

// acquireNode returns an unpublished node linked to succ.
func (s *Set[K]) acquireNode(key K, succ *node[K]) *node[K] {
	n, _ := s.nodePool.Get().(*node[K])
	if n == nil {
		n = &node[K]{}
	}
	n.key = key
	n.next.store(succ, false)
	return n
}

// releaseNode zeroes n and hands it back to the pool. n must be unpublished
// or past its reclamation grace period.
func (s *Set[K]) releaseNode(n *node[K]) {
	if n == nil || n == s.head || n == s.tail {
		return
	}

	var zero K
	n.key = zero
	n.next.box.Store(nil)

	s.nodePool.Put(n)
}

// reclaimNode is the collector's free function.
func (s *Set[K]) reclaimNode(n *node[K]) {
	s.releaseNode(n)
	s.metrics.IncReclaimed()
}
