package algorithms

import (
	"fmt"

	"github.com/avolodin/sortlab/internal/step"
)

// sortBubble compares adjacent pairs left to right, shrinking the
// unsorted upper boundary by one per pass. A pass with zero swaps marks
// every remaining index sorted in a single step and stops.
func sortBubble(input []int) (*step.Result, error) {
	r := newRecorder(input)
	n := len(r.arr)
	if n <= 1 {
		return r.complete("already sorted"), nil
	}

	for pass := 0; pass < n-1; pass++ {
		limit := n - 1 - pass
		swapped := false
		for i := 0; i < limit; i++ {
			r.compare(i, i+1, fmt.Sprintf("compare a[%d] and a[%d]", i, i+1))
			if r.arr[i] > r.arr[i+1] {
				r.swap(i, i+1, fmt.Sprintf("swap a[%d] and a[%d]", i, i+1))
				swapped = true
			}
		}
		if !swapped {
			// No exchanges this pass: everything up to the boundary is
			// already in order, finalize it all at once.
			rest := make([]int, 0, limit+1)
			for i := 0; i <= limit; i++ {
				rest = append(rest, i)
			}
			r.markSorted("no swaps this pass, remainder is sorted", rest...)
			break
		}
		r.markSorted(fmt.Sprintf("a[%d] is in final position", limit), limit)
	}

	return r.complete("array sorted"), nil
}
