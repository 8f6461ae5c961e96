// Package algorithms provides the step producers for the supported
// comparison sorts, plus the registry the UI uses to look them up.
//
// Each algorithm is a plain [Algorithm] value: descriptive metadata and
// a Sort function mapping an input slice to a [step.Result]. There is
// no inheritance; the active algorithm is just data. Producers never
// mutate their input and are deterministic for a given input.
//
//	reg := algorithms.NewRegistry()
//	algo, err := reg.Get("bubble")
//	res, err := algo.Sort([]int{5, 3, 1, 4, 2})
//
// Counter conventions: every compare counts two array reads (for
// quicksort, the element and the pivot), every swap counts two reads
// and two writes, every set counts one read and one write.
package algorithms
