package algorithms

import (
	"fmt"

	"github.com/avolodin/sortlab/internal/step"
)

// sortQuick is a Lomuto-partition quicksort with the last element of
// each range as pivot. Every non-pivot element in range is compared
// against the pivot; swaps happen when the element is <= pivot and the
// two positions differ. The pivot's resting index is finalized right
// after partitioning; the left sub-range recurses before the right.
func sortQuick(input []int) (*step.Result, error) {
	r := newRecorder(input)
	if len(r.arr) <= 1 {
		return r.complete("already sorted"), nil
	}
	quickRange(r, 0, len(r.arr)-1)
	return r.complete("array sorted"), nil
}

func quickRange(r *recorder, lo, hi int) {
	if lo > hi {
		return
	}
	if lo == hi {
		r.markSorted(fmt.Sprintf("a[%d] is a single-element range", lo), lo)
		return
	}

	r.markRange(lo, hi, fmt.Sprintf("partition [%d..%d]", lo, hi))
	r.markPivot(hi, fmt.Sprintf("pivot is a[%d] = %d", hi, r.arr[hi]))

	pivot := r.arr[hi]
	i := lo
	for j := lo; j < hi; j++ {
		r.compare(j, hi, fmt.Sprintf("compare a[%d] with pivot %d", j, pivot))
		if r.arr[j] <= pivot {
			if i != j {
				r.swap(i, j, fmt.Sprintf("move a[%d] into the low side", j))
			}
			i++
		}
	}
	if i != hi {
		r.swap(i, hi, fmt.Sprintf("place pivot at position %d", i))
	}
	r.pivot = i
	r.markSorted(fmt.Sprintf("pivot settled at a[%d]", i), i)
	r.clearMarks()

	quickRange(r, lo, i-1)
	quickRange(r, i+1, hi)
}
