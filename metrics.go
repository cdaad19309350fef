package lfset

import (
	"math/bits"
	"runtime"
	"sync/atomic"
)

type metricShard struct {
	length           atomic.Int64
	insertCASRetries atomic.Int64
	removeCASRetries atomic.Int64
	spliceRetries    atomic.Int64
	splices          atomic.Int64
	reclaimed        atomic.Int64
	// Pad to cache line size to prevent false sharing.
	_ [16]byte
}

// Metrics spreads the set's counters over per-CPU shards. Writers pick a
// shard at random; readers sum all shards.
type Metrics struct {
	shards []metricShard
	mask   uint32
	rng    *RNG
}

// Stats is a point-in-time summary of contention and reclamation counters.
// Under concurrent use the fields are not read atomically together.
type Stats struct {
	// InsertRetries counts insertion CASes in Add that lost a race.
	InsertRetries int64
	// RemoveRetries counts logical-deletion CASes in Remove that lost a race.
	RemoveRetries int64
	// SpliceRetries counts unlink attempts during traversal that forced a
	// restart from head.
	SpliceRetries int64
	// Splices counts marked nodes physically unlinked.
	Splices int64
	// Reclaimed counts unlinked nodes that passed their grace period and
	// went back to the node pool.
	Reclaimed int64
}

func newMetrics(rng *RNG) *Metrics {
	shardCount := 1
	if rng != nil {
		shardCount = max(runtime.GOMAXPROCS(0), 1)
		shardCount = nextPowerOfTwo(shardCount)
	}
	return &Metrics{
		shards: make([]metricShard, shardCount),
		mask:   uint32(shardCount - 1),
		rng:    rng,
	}
}

func nextPowerOfTwo(v int) int {
	if v <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(v-1))
}

func (m *Metrics) shard() *metricShard {
	if len(m.shards) == 1 || m.rng == nil {
		return &m.shards[0]
	}
	idx := uint32(m.rng.nextRandom64()) & m.mask
	return &m.shards[idx]
}

func (m *Metrics) AddLen(d int64) {
	m.shard().length.Add(d)
}

func (m *Metrics) IncInsertCASRetry() {
	m.shard().insertCASRetries.Add(1)
}

func (m *Metrics) IncRemoveCASRetry() {
	m.shard().removeCASRetries.Add(1)
}

func (m *Metrics) IncSpliceRetry() {
	m.shard().spliceRetries.Add(1)
}

func (m *Metrics) IncSplice() {
	m.shard().splices.Add(1)
}

func (m *Metrics) IncReclaimed() {
	m.shard().reclaimed.Add(1)
}

func (m *Metrics) Len() int64 {
	var total int64
	for i := range m.shards {
		total += m.shards[i].length.Load()
	}
	return total
}

func (m *Metrics) Stats() Stats {
	var st Stats
	for i := range m.shards {
		sh := &m.shards[i]
		st.InsertRetries += sh.insertCASRetries.Load()
		st.RemoveRetries += sh.removeCASRetries.Load()
		st.SpliceRetries += sh.spliceRetries.Load()
		st.Splices += sh.splices.Load()
		st.Reclaimed += sh.reclaimed.Load()
	}
	return st
}
