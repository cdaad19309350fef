package lfset

// find returns the window (pred, curr) with pred.key < key <= curr.key, where
// curr may be the tail sentinel. Marked nodes met on the way are unlinked and
// retired through p. A failed unlink restarts the walk from head, because pred
// was changed under us and may itself be marked by now.
func (s *Set[K]) find(p *participant[K], key K) (pred, curr *node[K]) {
retry:
	for {
		pred = s.head
		curr = pred.next.reference()
		for {
			succ, marked := curr.next.get()
			for marked {
				if !pred.next.compareAndSet(curr, false, succ, false) {
					s.metrics.IncSpliceRetry()
					continue retry
				}
				s.collector.retire(p, curr)
				s.metrics.IncSplice()

				curr = succ
				succ, marked = curr.next.get()
			}

			if curr == s.tail || curr.key >= key {
				return pred, curr
			}
			pred = curr
			curr = succ
		}
	}
}

// containsWalk is the read-only traversal behind Contains. It reads marks but
// never acts on them.
func (s *Set[K]) containsWalk(key K) bool {
	curr := s.head.next.reference()
	for curr != s.tail && curr.key < key {
		curr = curr.next.reference()
	}
	if curr == s.tail {
		return false
	}
	return curr.key == key && !curr.next.isMarked()
}
