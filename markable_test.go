package lfset

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkedRef_CompareAndSet(t *testing.T) {
	a := &node[int]{key: 1}
	b := &node[int]{key: 2}

	var r markedRef[int]
	r.store(a, false)

	assert.False(t, r.compareAndSet(b, false, a, true), "wrong reference must fail")
	assert.False(t, r.compareAndSet(a, true, a, false), "wrong mark must fail")

	require.True(t, r.compareAndSet(a, false, a, true))
	next, marked := r.get()
	assert.Same(t, a, next)
	assert.True(t, marked)

	require.True(t, r.compareAndSet(a, true, b, true))
	assert.Same(t, b, r.reference())
	assert.True(t, r.isMarked())
}

func TestMarkedRef_NoOpSwapSucceedsWithoutWrite(t *testing.T) {
	a := &node[int]{key: 1}

	var r markedRef[int]
	r.store(a, false)
	before := r.box.Load()

	require.True(t, r.compareAndSet(a, false, a, false))
	assert.Same(t, before, r.box.Load())
}

func TestMarkedRef_ZeroValue(t *testing.T) {
	var r markedRef[int]

	next, marked := r.get()
	assert.Nil(t, next)
	assert.False(t, marked)
	assert.True(t, r.compareAndSet(nil, false, nil, true))
	assert.True(t, r.isMarked())
}

// Many goroutines race to mark the same link; exactly one may win.
func TestMarkedRef_SingleMarkWinner(t *testing.T) {
	succ := &node[int]{key: 9}

	for range 200 {
		var r markedRef[int]
		r.store(succ, false)

		var winners atomic.Int32
		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if r.compareAndSet(succ, false, succ, true) {
					winners.Add(1)
				}
			}()
		}
		wg.Wait()

		require.Equal(t, int32(1), winners.Load())
	}
}

// A splice that expects an unmarked link must never succeed once the link is
// marked, whichever order the two CASes land in.
func TestMarkedRef_MarkBlocksSplice(t *testing.T) {
	curr := &node[int]{key: 1}
	succ := &node[int]{key: 2}

	for range 500 {
		var r markedRef[int]
		r.store(curr, false)

		var marked, spliced atomic.Bool
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			marked.Store(r.compareAndSet(curr, false, curr, true))
		}()
		go func() {
			defer wg.Done()
			spliced.Store(r.compareAndSet(curr, false, succ, false))
		}()
		wg.Wait()

		require.NotEqual(t, marked.Load(), spliced.Load(), "exactly one CAS must win")
		next, isMarked := r.get()
		if marked.Load() {
			assert.Same(t, curr, next)
			assert.True(t, isMarked)
		} else {
			assert.Same(t, succ, next)
			assert.False(t, isMarked)
		}
	}
}
