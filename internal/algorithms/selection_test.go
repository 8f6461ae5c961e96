package algorithms

import (
	"reflect"
	"testing"

	"github.com/avolodin/sortlab/internal/step"
)

func TestSelection_CompareCountIsFixed(t *testing.T) {
	// Selection emits one compare per scan iteration regardless of
	// order: n(n-1)/2 for any 5-element input.
	for _, input := range [][]int{
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
		{2, 2, 2, 2, 2},
	} {
		res, err := sortSelection(input)
		if err != nil {
			t.Fatal(err)
		}
		if res.Comparisons != 10 {
			t.Errorf("input %v: Comparisons = %d, want 10", input, res.Comparisons)
		}
	}
}

func TestSelection_NoSwapWhenMinimal(t *testing.T) {
	res, err := sortSelection([]int{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if res.Swaps != 0 {
		t.Errorf("sorted input produced %d swaps, want 0", res.Swaps)
	}
}

func TestSelection_Trace(t *testing.T) {
	res, err := sortSelection([]int{3, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.SortedArray, []int{1, 2, 3}) {
		t.Fatalf("SortedArray = %v", res.SortedArray)
	}
	if res.Comparisons != 3 || res.Swaps != 2 {
		t.Errorf("got %d comparisons %d swaps, want 3 and 2", res.Comparisons, res.Swaps)
	}

	// One position finalized per outer iteration, both before complete.
	marks := 0
	for _, st := range res.Steps {
		if st.Action == step.MarkSorted {
			marks++
		}
	}
	if marks != 2 {
		t.Errorf("mark-sorted steps = %d, want 2", marks)
	}
}
