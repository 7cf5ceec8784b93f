package histz

import (
	"math"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// waitingFlag is the high bit of a shard's count word. A collector stalled
// on an inconsistent read sets it to ask the next observer on that shard for
// a wakeup; see waiter.go.
const waitingFlag = uint64(1) << 63

// inlineBuckets is the number of bucket counters stored alongside
// countAndFlag and sum, so that those (1 + 1 + inlineBuckets) words of 8
// bytes each occupy 64 contiguous bytes. Nothing aligns a shard to a
// cache-line boundary: the 64 bytes share one line only when the shard
// happens to start on one. In histogramCore the second shard starts
// sizeof(shard) bytes after the first (152 bytes where cpu.CacheLinePad is
// 64 bytes), so at most one of the two shards can be line-aligned.
const inlineBuckets = 6

// shard is a cache-line-grouped set of atomics: the fields an observation
// touches (a bucket counter, sum, count) are packed into 64 contiguous
// bytes; see inlineBuckets for when those bytes fall in a single cache
// line. Histograms with
// more than inlineBuckets buckets spill the remainder into overflow, a
// plain slice allocated once at construction; those counters are no longer
// guaranteed to share a line with count/sum, which mirrors the "naive"
// fallback layout spec.md permits when k+1 buckets don't fit one line.
type shard struct {
	countAndFlag atomic.Uint64
	sum          atomic.Uint64
	inline       [inlineBuckets]atomic.Uint64
	overflow     []atomic.Uint64
	_            cpu.CacheLinePad
}

// init allocates the overflow slice for histograms with more than
// inlineBuckets buckets. Called once, before the shard is ever observed
// into or read, so the zero-valued atomics it touches are never shared.
func (s *shard) init(bucketCount int) {
	if bucketCount > inlineBuckets {
		s.overflow = make([]atomic.Uint64, bucketCount-inlineBuckets)
	}
}

// bucket returns the counter for the given bucket index, regardless of
// whether it lives in the inline group or the overflow slice.
func (s *shard) bucket(i int) *atomic.Uint64 {
	if i < inlineBuckets {
		return &s.inline[i]
	}
	return &s.overflow[i-inlineBuckets]
}

// addToBucket is RMW 1 of the observation path. Relaxed in spec.md's terms;
// Go's atomic.Uint64 has no weaker mode to ask for (see SPEC_FULL.md §4.1).
func (s *shard) addToBucket(i int) {
	s.bucket(i).Add(1)
}

// addToSum is RMW 2: a CAS loop over the sum's bit pattern. Retries are
// internal and never counted against the three-RMW budget. NaN is skipped
// entirely — sum is left untouched — since NaN+anything is NaN and would
// permanently poison it; the NaN bucket still gets its count via
// addToBucket/incCount.
func (s *shard) addToSum(v float64) {
	if math.IsNaN(v) {
		return
	}
	for {
		old := s.sum.Load()
		next := math.Float64bits(math.Float64frombits(old) + v)
		if s.sum.CompareAndSwap(old, next) {
			return
		}
	}
}

// incCount is RMW 3: fetch-add 1 on the low 63 bits of countAndFlag. It
// returns the word as it was immediately before the increment, so the
// caller can see whether a collector had set the waiting flag.
func (s *shard) incCount() uint64 {
	return s.countAndFlag.Add(1) - 1
}

func (s *shard) loadCountAndFlag() uint64 {
	return s.countAndFlag.Load()
}

func (s *shard) loadSum() float64 {
	return math.Float64frombits(s.sum.Load())
}

func (s *shard) loadBucket(i int) uint64 {
	return s.bucket(i).Load()
}

// setWaitingFlag sets the high bit of countAndFlag and returns the word as
// it was before the set, so a caller that raced another settor (impossible
// today since only one collector runs at a time, but kept for safety) can
// tell whether it actually made the change.
func (s *shard) setWaitingFlag() uint64 {
	for {
		old := s.countAndFlag.Load()
		if old&waitingFlag != 0 {
			return old
		}
		if s.countAndFlag.CompareAndSwap(old, old|waitingFlag) {
			return old
		}
	}
}

// clearWaitingFlag clears the high bit of countAndFlag and reports whether
// it had been set.
func (s *shard) clearWaitingFlag() bool {
	for {
		old := s.countAndFlag.Load()
		if old&waitingFlag == 0 {
			return false
		}
		if s.countAndFlag.CompareAndSwap(old, old&^waitingFlag) {
			return true
		}
	}
}
