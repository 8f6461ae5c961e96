package algorithms

import (
	"fmt"

	"github.com/avolodin/sortlab/internal/step"
)

// sortInsertion grows a sorted prefix one element at a time, shifting
// larger predecessors rightward with set steps. The inner scan stops at
// the first predecessor <= key. While shifting, the key stays visible
// in the slot being vacated, so every snapshot holds the full multiset
// of input values. The sorted prefix is shown with a mark-range step
// after each insertion; indices are only finalized at the end since the
// prefix keeps moving.
func sortInsertion(input []int) (*step.Result, error) {
	r := newRecorder(input)
	n := len(r.arr)
	if n <= 1 {
		return r.complete("already sorted"), nil
	}

	r.markRange(0, 0, "a[0] starts the sorted prefix")

	for i := 1; i < n; i++ {
		key := r.arr[i]
		j := i - 1
		// The key rides at j+1; each shift moves it one slot left.
		for j >= 0 {
			r.compare(j, j+1, fmt.Sprintf("compare a[%d] with key %d", j, key))
			if r.arr[j] <= key {
				break
			}
			shifted := r.arr[j]
			r.arr[j] = key
			r.set(j+1, shifted, fmt.Sprintf("shift a[%d] right", j))
			j--
		}
		if j+1 != i {
			r.set(j+1, key, fmt.Sprintf("place key %d at position %d", key, j+1))
		}
		r.markRange(0, i, fmt.Sprintf("prefix [0..%d] is sorted", i))
	}

	return r.complete("array sorted"), nil
}
