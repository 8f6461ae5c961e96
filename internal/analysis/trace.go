// Package analysis computes summary statistics over recorded sort
// traces: per-action counts, input disorder, and the cumulative cost
// curves the CLI plots and exports.
package analysis

import "github.com/avolodin/sortlab/internal/step"

// Summary aggregates one trace.
type Summary struct {
	ActionCounts map[step.Action]int
	Inversions   int // inversions of the input array

	// Cumulative totals per executed step, index-aligned with the
	// trace. Suitable for plotting directly.
	Comparisons []float64
	Accesses    []float64
}

// Summarize walks a trace once and returns its summary. The access
// deltas mirror the producer accounting (compare reads two cells, swap
// four, set two), so the final curve point equals the result counter.
func Summarize(input []int, res *step.Result) Summary {
	s := Summary{
		ActionCounts: make(map[step.Action]int),
		Inversions:   Inversions(input),
		Comparisons:  make([]float64, 0, len(res.Steps)),
		Accesses:     make([]float64, 0, len(res.Steps)),
	}
	comparisons, accesses := 0, 0
	for _, st := range res.Steps {
		s.ActionCounts[st.Action]++
		switch st.Action {
		case step.Compare:
			comparisons++
			accesses += 2
		case step.Swap:
			accesses += 4
		case step.Set:
			accesses += 2
		}
		s.Comparisons = append(s.Comparisons, float64(comparisons))
		s.Accesses = append(s.Accesses, float64(accesses))
	}
	return s
}

// Inversions counts pairs i < j with arr[i] > arr[j]. Zero for a sorted
// array, n*(n-1)/2 for a reversed one; a direct measure of input
// disorder. Quadratic, which is fine at visualizer sizes.
func Inversions(arr []int) int {
	count := 0
	for i := 0; i < len(arr); i++ {
		for j := i + 1; j < len(arr); j++ {
			if arr[i] > arr[j] {
				count++
			}
		}
	}
	return count
}

// Sortedness maps inversions to [0, 1]: 1 for sorted input, 0 for
// reversed.
func Sortedness(arr []int) float64 {
	n := len(arr)
	if n < 2 {
		return 1
	}
	worst := n * (n - 1) / 2
	return 1 - float64(Inversions(arr))/float64(worst)
}
