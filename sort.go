package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// Sort reorders list in place so that it is ascending according to less,
// which must be a strict weak ordering.  The sort is not stable.
//
// This is a partition-exchange sort that pivots on the middle element.  The
// pending partitions are kept on an explicit work list, so skewed inputs cost
// time but not stack depth.
//
func Sort[T any](list []T, less func(a, b T) bool) {
	type span struct {
		lo, hi int // inclusive
	}

	work := make([]span, 0, log2uint64(uint64(len(list)))+1)
	if len(list) > 1 {
		work = append(work, span{0, len(list) - 1})
	}

	for len(work) != 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]

		p := partition(list, s.lo, s.hi, less)

		left := span{s.lo, p - 1}
		right := span{p + 1, s.hi}

		// Push the larger side first, so the work list stays shallow.
		if left.hi-left.lo < right.hi-right.lo {
			left, right = right, left
		}
		if left.lo < left.hi {
			work = append(work, left)
		}
		if right.lo < right.hi {
			work = append(work, right)
		}
	}
}

// partition moves the middle element of list[lo..hi] to its final position p,
// with every element before p ordered before the pivot.  It returns p.
func partition[T any](list []T, lo, hi int, less func(a, b T) bool) int {
	mid := lo + (hi-lo)/2
	list[mid], list[hi] = list[hi], list[mid]
	pivot := list[hi]

	store := lo
	for i := lo; i < hi; i++ {
		if less(list[i], pivot) {
			list[i], list[store] = list[store], list[i]
			store++
		}
	}
	list[store], list[hi] = list[hi], list[store]
	return store
}

// minQueues simulates a priority queue with two queues that are each
// individually sorted ascending: a fixed queue of initial items and a FIFO
// of items pushed later.  Pushed items must never be less than any item
// pushed before them.
type minQueues[T any] struct {
	first  []T
	second []T
	less   func(a, b T) bool
}

func (q *minQueues[T]) Len() int {
	return len(q.first) + len(q.second)
}

func (q *minQueues[T]) Push(x T) {
	if n := len(q.second); n != 0 {
		assert.Assertf(!q.less(x, q.second[n-1]), "minQueues: pushed item is less than its predecessor")
	}
	q.second = append(q.second, x)
}

// TakeMin removes and returns the smallest front item.  On a tie the first
// queue wins.
func (q *minQueues[T]) TakeMin() T {
	assert.Assertf(q.Len() != 0, "minQueues: TakeMin on empty queues")

	var x T
	if len(q.second) == 0 || (len(q.first) != 0 && !q.less(q.second[0], q.first[0])) {
		x, q.first = q.first[0], q.first[1:]
	} else {
		x, q.second = q.second[0], q.second[1:]
	}
	return x
}
