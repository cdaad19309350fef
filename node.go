package lfset

// node is a list element: an immutable key and an outgoing marked link.
// The key of a published node never changes; it is only rewritten after the
// node has been reclaimed into the pool.
type node[K any] struct {
	key  K
	next markedRef[K]
}

// newSentinels returns head (−∞) and tail (+∞). Sentinels are told apart from
// ordinary nodes by identity, so their key fields are never compared.
func newSentinels[K any]() (*node[K], *node[K]) {
	head := &node[K]{}
	tail := &node[K]{}
	tail.next.store(nil, false)
	head.next.store(tail, false)
	return head, tail
}
