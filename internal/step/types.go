// Package step defines the animation step model shared by the sorting
// algorithms and the playback controller. A Step is one discrete,
// replayable unit of algorithm progress: an action tag plus a full
// snapshot of the working array. Steps are produced eagerly, once per
// run, and are treated as read-only afterwards.
package step

// Action tags what a step visualizes.
type Action string

const (
	Compare    Action = "compare"
	Swap       Action = "swap"
	Set        Action = "set"
	MarkSorted Action = "mark-sorted"
	MarkPivot  Action = "mark-pivot"
	MarkRange  Action = "mark-range"
	ClearMarks Action = "clear-marks"
	Complete   Action = "complete"
)

// Valid reports whether a is one of the known action tags.
func (a Action) Valid() bool {
	switch a {
	case Compare, Swap, Set, MarkSorted, MarkPivot, MarkRange, ClearMarks, Complete:
		return true
	}
	return false
}

// Assignment records a single-element write, as performed by the
// shifting phase of insertion sort.
type Assignment struct {
	Index int `json:"index"`
	Value int `json:"value"`
}

// StepData carries the complete working-array snapshot for a step plus
// the action-specific highlight fields. Pair fields hold two indices
// [i, j]; Range holds [start, end] inclusive. Pivot is -1 when no pivot
// is marked.
type StepData struct {
	Array     []int       `json:"array"`
	Comparing []int       `json:"comparing,omitempty"`
	Swapping  []int       `json:"swapping,omitempty"`
	Setting   *Assignment `json:"setting,omitempty"`
	Sorted    []int       `json:"sorted,omitempty"`
	Pivot     int         `json:"pivot"`
	Range     []int       `json:"range,omitempty"`
}

// Step is one unit of algorithm progress.
type Step struct {
	Action      Action   `json:"action"`
	Data        StepData `json:"data"`
	Description string   `json:"description,omitempty"`
}

// Result is the full output of a producer run: the ordered step list
// plus summary counters. SortedArray always equals the Array of the
// final complete step.
type Result struct {
	Steps         []Step `json:"steps"`
	SortedArray   []int  `json:"sortedArray"`
	Comparisons   int    `json:"comparisons"`
	Swaps         int    `json:"swaps"`
	ArrayAccesses int    `json:"arrayAccesses"`
}

// Snapshot returns an independent copy of arr. Producers snapshot the
// working array into every step so playback never aliases live state.
func Snapshot(arr []int) []int {
	c := make([]int, len(arr))
	copy(c, arr)
	return c
}
