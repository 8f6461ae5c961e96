package algorithms

import (
	"sort"

	"github.com/avolodin/sortlab/internal/step"
)

// recorder holds the working copy of the array and accumulates steps
// and counters while an algorithm runs. Highlight state (pivot, active
// range, sorted-so-far) is carried on every emitted step so a renderer
// can paint any step without replaying earlier ones.
type recorder struct {
	arr    []int
	steps  []step.Step
	sorted map[int]bool
	pivot  int
	rng    []int

	comparisons int
	swaps       int
	accesses    int
}

func newRecorder(input []int) *recorder {
	return &recorder{
		arr:    step.Snapshot(input),
		sorted: make(map[int]bool),
		pivot:  -1,
	}
}

func (r *recorder) data() step.StepData {
	d := step.StepData{
		Array: step.Snapshot(r.arr),
		Pivot: r.pivot,
	}
	if len(r.sorted) > 0 {
		d.Sorted = make([]int, 0, len(r.sorted))
		for i := range r.sorted {
			d.Sorted = append(d.Sorted, i)
		}
		sort.Ints(d.Sorted)
	}
	if r.rng != nil {
		d.Range = []int{r.rng[0], r.rng[1]}
	}
	return d
}

func (r *recorder) emit(action step.Action, d step.StepData, desc string) {
	r.steps = append(r.steps, step.Step{Action: action, Data: d, Description: desc})
}

// compare records a comparison event between two indices. The recorder
// never decides the outcome; the algorithm inspects r.arr itself.
func (r *recorder) compare(i, j int, desc string) {
	r.comparisons++
	r.accesses += 2
	d := r.data()
	d.Comparing = []int{i, j}
	r.emit(step.Compare, d, desc)
}

func (r *recorder) swap(i, j int, desc string) {
	r.swaps++
	r.accesses += 4
	r.arr[i], r.arr[j] = r.arr[j], r.arr[i]
	d := r.data()
	d.Swapping = []int{i, j}
	r.emit(step.Swap, d, desc)
}

func (r *recorder) set(index, value int, desc string) {
	r.accesses += 2
	r.arr[index] = value
	d := r.data()
	d.Setting = &step.Assignment{Index: index, Value: value}
	r.emit(step.Set, d, desc)
}

// markSorted finalizes the given indices in a single step. Indices
// already finalized are ignored.
func (r *recorder) markSorted(desc string, indices ...int) {
	changed := false
	for _, i := range indices {
		if !r.sorted[i] {
			r.sorted[i] = true
			changed = true
		}
	}
	if !changed {
		return
	}
	r.emit(step.MarkSorted, r.data(), desc)
}

func (r *recorder) markPivot(p int, desc string) {
	r.pivot = p
	r.emit(step.MarkPivot, r.data(), desc)
}

func (r *recorder) markRange(lo, hi int, desc string) {
	r.rng = []int{lo, hi}
	r.emit(step.MarkRange, r.data(), desc)
}

func (r *recorder) clearMarks() {
	r.pivot = -1
	r.rng = nil
	r.emit(step.ClearMarks, r.data(), "")
}

// complete emits the terminal step with every index finalized and
// returns the assembled result.
func (r *recorder) complete(desc string) *step.Result {
	r.pivot = -1
	r.rng = nil
	for i := range r.arr {
		r.sorted[i] = true
	}
	r.emit(step.Complete, r.data(), desc)
	return &step.Result{
		Steps:         r.steps,
		SortedArray:   step.Snapshot(r.arr),
		Comparisons:   r.comparisons,
		Swaps:         r.swaps,
		ArrayAccesses: r.accesses,
	}
}
