// Package dataset generates the input arrays the visualizer sorts.
// All randomness lives here, behind an explicit seed; the algorithm
// producers themselves are deterministic.
package dataset

import (
	"errors"
	"math/rand"
	"sort"
)

// ErrUnknownPattern is returned for an unrecognized pattern name.
var ErrUnknownPattern = errors.New("dataset: unknown pattern")

// Pattern names an input shape.
type Pattern string

const (
	Random       Pattern = "random"
	Sorted       Pattern = "sorted"
	Reversed     Pattern = "reversed"
	NearlySorted Pattern = "nearly-sorted"
	FewUnique    Pattern = "few-unique"
)

// Patterns lists the supported patterns in display order.
func Patterns() []Pattern {
	return []Pattern{Random, Sorted, Reversed, NearlySorted, FewUnique}
}

// Generator produces arrays with values in [min, max] from a seeded
// source, so a run is reproducible from its seed.
type Generator struct {
	rng      *rand.Rand
	min, max int
}

func NewGenerator(seed int64, min, max int) *Generator {
	if max < min {
		min, max = max, min
	}
	return &Generator{rng: rand.New(rand.NewSource(seed)), min: min, max: max}
}

func (g *Generator) Generate(pattern Pattern, n int) ([]int, error) {
	if n < 0 {
		n = 0
	}
	switch pattern {
	case Random:
		return g.random(n), nil
	case Sorted:
		arr := g.random(n)
		sort.Ints(arr)
		return arr, nil
	case Reversed:
		arr := g.random(n)
		sort.Sort(sort.Reverse(sort.IntSlice(arr)))
		return arr, nil
	case NearlySorted:
		return g.nearlySorted(n), nil
	case FewUnique:
		return g.fewUnique(n), nil
	default:
		return nil, ErrUnknownPattern
	}
}

// Source wraps Generate as a parameterless closure for the playback
// controller, which regenerates the display state on every reset.
// Generation errors cannot occur once the pattern is validated, so the
// closure is only built for known patterns.
func (g *Generator) Source(pattern Pattern, n int) (func() []int, error) {
	if _, err := g.Generate(pattern, 0); err != nil {
		return nil, err
	}
	return func() []int {
		arr, _ := g.Generate(pattern, n)
		return arr
	}, nil
}

func (g *Generator) random(n int) []int {
	arr := make([]int, n)
	for i := range arr {
		arr[i] = g.min + g.rng.Intn(g.max-g.min+1)
	}
	return arr
}

func (g *Generator) nearlySorted(n int) []int {
	arr := g.random(n)
	sort.Ints(arr)
	if n < 2 {
		return arr
	}
	disturbances := n / 10
	if disturbances < 1 {
		disturbances = 1
	}
	for k := 0; k < disturbances; k++ {
		i := g.rng.Intn(n - 1)
		arr[i], arr[i+1] = arr[i+1], arr[i]
	}
	return arr
}

func (g *Generator) fewUnique(n int) []int {
	span := g.max - g.min
	values := []int{g.min, g.min + span/3, g.min + 2*span/3, g.max}
	arr := make([]int, n)
	for i := range arr {
		arr[i] = values[g.rng.Intn(len(values))]
	}
	return arr
}
