package histz

import (
	"math"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
)

// spinLimit bounds the busy-wait phase of the consistent-read loop before a
// collector registers for a wakeup and parks. Go has no public spin-loop
// hint, so runtime.Gosched stands in for the CPU pause instruction the
// original design spins on.
const spinLimit = 32

// nanPolicy selects what Observe does with a NaN value.
type nanPolicy int

const (
	nanReject nanPolicy = iota
	nanBucket
)

// HistogramOption configures a histogram at construction time.
type HistogramOption func(*histogramConfig)

type histogramConfig struct {
	nan nanPolicy
}

// WithNaNBucket routes NaN observations to a dedicated bucket (included in
// Count, excluded from Sum and from the returned bucket vector) instead of
// panicking. Without this option, Observe(NaN) panics.
func WithNaNBucket() HistogramOption {
	return func(c *histogramConfig) { c.nan = nanBucket }
}

// Snapshot is the result of a Collect call: raw (non-cumulative) per-bucket
// counts with the +Inf bucket last, the total observation count, and the
// running sum.
type Snapshot struct {
	Buckets []uint64
	Count   uint64
	Sum     float64
}

// Histogram is the public surface over the lock-free core.
type Histogram interface {
	Observe(value float64)
	Collect() Snapshot
	Sum() float64
	Count() uint64
	Buckets() (bounds []float64, counts []uint64)
	Overflow() uint64
}

// histogramCore is the lock-free implementation. Two cache-line-grouped
// shards absorb observation traffic while active selects which one; a
// collector flips active under collectGuard and reads both shards, the
// now-cold one first, through the consistent-read protocol in readShard.
type histogramCore struct {
	bounds      []float64 // strictly increasing, finite
	nanIdx      int       // index of the dedicated NaN bucket, or -1 if Observe(NaN) panics
	bucketCount int

	active       atomic.Uint32
	collectGuard sync.Mutex
	waiter       *waiter
	shards       [2]shard
}

// NewHistogram builds a histogram over the given finite, strictly increasing
// upper bounds (an implicit +Inf bucket is appended). Panics on an empty,
// unsorted, or non-finite bounds slice — bucket boundaries are a
// construction-time contract, not a runtime concern.
func NewHistogram(bounds []float64, opts ...HistogramOption) Histogram {
	return newHistogram(bounds, opts...)
}

func newHistogram(bounds []float64, opts ...HistogramOption) *histogramCore {
	if len(bounds) == 0 {
		panic("histz: histogram requires at least one bucket bound")
	}
	cleaned := make([]float64, len(bounds))
	copy(cleaned, bounds)
	for i, b := range cleaned {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			panic("histz: bucket bounds must be finite")
		}
		if i > 0 && !(cleaned[i-1] < b) {
			panic("histz: bucket bounds must be strictly increasing")
		}
	}

	var cfg histogramConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	bucketCount := len(cleaned) + 1 // +1 for the implicit +Inf bucket
	nanIdx := -1
	if cfg.nan == nanBucket {
		nanIdx = bucketCount
		bucketCount++
	}

	h := &histogramCore{
		bounds:      cleaned,
		nanIdx:      nanIdx,
		bucketCount: bucketCount,
		waiter:      newWaiter(),
	}
	h.shards[0].init(bucketCount)
	h.shards[1].init(bucketCount)
	return h
}

// bucketFor returns the index of the least bound with value <= bound, or
// len(bounds) (the +Inf bucket) if none qualifies. This is never
// special-cased for ±Inf: the comparison already routes them correctly
// (see DESIGN.md / SPEC_FULL.md §4.5).
func (h *histogramCore) bucketFor(value float64) int {
	return sort.Search(len(h.bounds), func(i int) bool { return value <= h.bounds[i] })
}

// Observe is the three-RMW write path: bucket search, add_to_bucket,
// add_to_sum, inc_count, then a conditional wake if a collector is waiting
// on this shard. It never blocks and never spins.
func (h *histogramCore) Observe(value float64) {
	var i int
	if math.IsNaN(value) {
		if h.nanIdx < 0 {
			panic("histz: NaN observation rejected; construct with WithNaNBucket to accept NaN")
		}
		i = h.nanIdx
	} else {
		i = h.bucketFor(value)
	}

	s := &h.shards[h.active.Load()]
	s.addToBucket(i)
	s.addToSum(value) // addToSum itself skips the float add for NaN
	prior := s.incCount()
	if prior&waitingFlag != 0 {
		h.waiter.wake()
	}
}

// Collect flips the active shard and returns a consistent merged snapshot
// of both. Only one Collect runs at a time (collectGuard); Observe never
// waits on it.
func (h *histogramCore) Collect() Snapshot {
	h.collectGuard.Lock()
	defer h.collectGuard.Unlock()

	prev := h.active.Load()
	next := uint32(1) - prev
	h.active.Store(next)

	coldBuckets, coldSum, coldCount := h.readShard(&h.shards[prev])
	hotBuckets, hotSum, hotCount := h.readShard(&h.shards[next])

	merged := make([]uint64, h.bucketCount)
	for i := range merged {
		merged[i] = coldBuckets[i] + hotBuckets[i]
	}

	if h.nanIdx >= 0 {
		merged = merged[:h.nanIdx] // the NaN bucket is always last; exclude it from the returned vector
	}

	return Snapshot{
		Buckets: merged,
		Count:   coldCount + hotCount,
		Sum:     coldSum + hotSum,
	}
}

// readShard implements the consistent-read loop: spin briefly for the
// count word to stop moving relative to the summed bucket counters, then
// register for a wakeup, set the waiting flag, check once more (the
// observation may have landed between the spin giving up and the flag
// going up), and only then park.
func (h *histogramCore) readShard(s *shard) (buckets []uint64, sum float64, count uint64) {
	buckets = make([]uint64, h.bucketCount)

	for spins := spinLimit; ; {
		count = s.loadCountAndFlag() &^ waitingFlag
		sum = s.loadSum()
		var total uint64
		for i := range buckets {
			buckets[i] = s.loadBucket(i)
			total += buckets[i]
		}
		if total == count {
			return buckets, sum, count
		}
		if spins > 0 {
			spins--
			runtime.Gosched()
			continue
		}

		ch := h.waiter.register()
		s.setWaitingFlag()

		count = s.loadCountAndFlag() &^ waitingFlag
		sum = s.loadSum()
		total = 0
		for i := range buckets {
			buckets[i] = s.loadBucket(i)
			total += buckets[i]
		}
		if total == count {
			s.clearWaitingFlag()
			return buckets, sum, count
		}

		h.waiter.wait(ch)
		s.clearWaitingFlag()
		spins = spinLimit
	}
}

// Sum returns the running sum as of a fresh Collect.
func (h *histogramCore) Sum() float64 {
	return h.Collect().Sum
}

// Count returns the total observation count as of a fresh Collect.
func (h *histogramCore) Count() uint64 {
	return h.Collect().Count
}

// Buckets returns the upper bound of each bucket (the last being +Inf)
// alongside a fresh Collect's per-bucket counts.
func (h *histogramCore) Buckets() (bounds []float64, counts []uint64) {
	snap := h.Collect()
	bounds = make([]float64, len(h.bounds)+1)
	copy(bounds, h.bounds)
	bounds[len(bounds)-1] = math.Inf(1)
	return bounds, snap.Buckets
}

// Overflow returns the +Inf bucket's count as of a fresh Collect.
func (h *histogramCore) Overflow() uint64 {
	snap := h.Collect()
	if len(snap.Buckets) == 0 {
		return 0
	}
	return snap.Buckets[len(snap.Buckets)-1]
}
