package lfset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_AddContainsRemove(t *testing.T) {
	s := New[int]()

	require.True(t, s.Add(5))
	assert.True(t, s.Contains(5))

	require.True(t, s.Remove(5))
	assert.False(t, s.Contains(5))
	assert.Equal(t, int64(0), s.Len())
}

func TestSet_AddTwice(t *testing.T) {
	s := New[int]()

	require.True(t, s.Add(5))
	keysBefore, marksBefore := walkChain(s)

	assert.False(t, s.Add(5), "second Add of the same key must report presence")

	keysAfter, marksAfter := walkChain(s)
	assert.Equal(t, keysBefore, keysAfter, "duplicate Add must not mutate the chain")
	assert.Equal(t, marksBefore, marksAfter)
	assert.Equal(t, int64(1), s.Len())
}

func TestSet_RemoveFromEmpty(t *testing.T) {
	s := New[int]()

	assert.False(t, s.Remove(7))
	assert.False(t, s.Contains(7))
	assert.Equal(t, int64(0), s.Len())
}

func TestSet_RemoveTwice(t *testing.T) {
	s := New[int]()
	s.Add(3)

	assert.True(t, s.Remove(3))
	assert.False(t, s.Remove(3))
}

func TestSet_KeepsAscendingOrder(t *testing.T) {
	s := New[int]()
	for _, k := range []int{42, -7, 0, 19, 3, 100, -50, 3, 42} {
		s.Add(k)
	}

	live := checkChain(t, s)
	assert.Equal(t, []int{-50, -7, 0, 3, 19, 42, 100}, live)
}

func TestSet_ContainsBetweenKeys(t *testing.T) {
	s := New[int]()
	s.Add(10)
	s.Add(20)

	assert.False(t, s.Contains(5))
	assert.False(t, s.Contains(15))
	assert.False(t, s.Contains(25))
	assert.True(t, s.Contains(10))
	assert.True(t, s.Contains(20))
}

func TestSet_ExtremeKeys(t *testing.T) {
	s := New[int64]()

	require.True(t, s.Add(math.MinInt64))
	require.True(t, s.Add(math.MaxInt64))
	require.True(t, s.Add(0))

	assert.True(t, s.Contains(math.MinInt64))
	assert.True(t, s.Contains(math.MaxInt64))
	assert.Equal(t, []int64{math.MinInt64, 0, math.MaxInt64}, checkChain(t, s))

	assert.True(t, s.Remove(math.MinInt64))
	assert.True(t, s.Remove(math.MaxInt64))
	assert.False(t, s.Contains(math.MinInt64))
	assert.False(t, s.Contains(math.MaxInt64))
}

func TestSet_UnsignedKeys(t *testing.T) {
	s := New[uint8]()
	for k := range 256 {
		require.True(t, s.Add(uint8(k)))
	}
	assert.Equal(t, int64(256), s.Len())

	for k := 0; k < 256; k += 2 {
		require.True(t, s.Remove(uint8(k)))
	}

	for k := range 256 {
		assert.Equal(t, k%2 == 1, s.Contains(uint8(k)), "key %d", k)
	}
	checkChain(t, s)
}

func TestSet_RemoveUnlinksImmediatelyWithoutContention(t *testing.T) {
	s := New[int]()
	for k := range 10 {
		s.Add(k)
	}
	for k := range 10 {
		require.True(t, s.Remove(k))
	}

	keys, _ := walkChain(s)
	assert.Empty(t, keys, "uncontended removes should win their unlink CAS")
	assert.Equal(t, int64(10), s.Stats().Splices)
}

func TestSet_ReAddAfterRemove(t *testing.T) {
	s := New[int]()

	for range 100 {
		require.True(t, s.Add(1))
		require.True(t, s.Remove(1))
	}
	assert.False(t, s.Contains(1))
	require.True(t, s.Add(1))
	assert.True(t, s.Contains(1))
	assert.Equal(t, []int{1}, checkChain(t, s))
}
