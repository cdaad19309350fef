package lfset

// insert is the Add loop. p must be pinned.
func (s *Set[K]) insert(p *participant[K], key K) bool {
	for {
		pred, curr := s.find(p, key)
		if curr != s.tail && curr.key == key {
			return false
		}

		n := s.acquireNode(key, curr)

		if insertCASHook != nil {
			insertCASHook(key)
		}

		if pred.next.compareAndSet(curr, false, n, false) {
			s.metrics.AddLen(1)
			return true
		}

		// n was never published, so it can go straight back to the pool.
		s.releaseNode(n)
		s.metrics.IncInsertCASRetry()
	}
}

// delete is the Remove loop: mark, then try once to unlink. p must be pinned.
func (s *Set[K]) delete(p *participant[K], key K) bool {
	for {
		pred, curr := s.find(p, key)
		if curr == s.tail || curr.key != key {
			return false
		}

		succ := curr.next.reference()

		if markCASHook != nil {
			markCASHook(key)
		}

		if !curr.next.compareAndSet(succ, false, succ, true) {
			s.metrics.IncRemoveCASRetry()
			continue
		}
		s.metrics.AddLen(-1)

		if skipUnlinkHook != nil && skipUnlinkHook(key) {
			return true
		}

		// Best effort: a later find unlinks curr if this loses.
		if pred.next.compareAndSet(curr, false, succ, false) {
			s.collector.retire(p, curr)
			s.metrics.IncSplice()
		}
		return true
	}
}
