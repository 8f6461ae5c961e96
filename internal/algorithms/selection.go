package algorithms

import (
	"fmt"

	"github.com/avolodin/sortlab/internal/step"
)

// sortSelection scans j=i+1..n-1 for each position i tracking the
// running minimum, emitting one compare step per scan iteration, then
// swaps at most once per position.
func sortSelection(input []int) (*step.Result, error) {
	r := newRecorder(input)
	n := len(r.arr)
	if n <= 1 {
		return r.complete("already sorted"), nil
	}

	for i := 0; i < n-1; i++ {
		min := i
		for j := i + 1; j < n; j++ {
			r.compare(j, min, fmt.Sprintf("compare a[%d] with current minimum a[%d]", j, min))
			if r.arr[j] < r.arr[min] {
				min = j
			}
		}
		if min != i {
			r.swap(i, min, fmt.Sprintf("move minimum into position %d", i))
		}
		r.markSorted(fmt.Sprintf("a[%d] is in final position", i), i)
	}

	return r.complete("array sorted"), nil
}
