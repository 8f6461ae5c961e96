package algorithms

import (
	"errors"
	"sort"

	"github.com/avolodin/sortlab/internal/step"
)

// ErrUnknownAlgorithm is returned by Registry.Get for an unregistered id.
var ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm")

// SortFunc maps an input slice to a full step trace. Implementations
// must not mutate input and must be deterministic.
type SortFunc func(input []int) (*step.Result, error)

// Complexity holds asymptotic time labels for the common cases.
type Complexity struct {
	Best    string
	Average string
	Worst   string
}

// Algorithm bundles a producer with the metadata the UI displays.
type Algorithm struct {
	ID          string
	Name        string
	Time        Complexity
	Space       string
	Stable      bool
	Difficulty  int // 1 (trivial) .. 5 (hard)
	Description string
	Sort        SortFunc
}

// Registry maps stable string ids to algorithms. Construct one with
// NewRegistry and pass it to whatever assembles the UI; there is no
// package-level instance.
type Registry struct {
	algos map[string]Algorithm
}

func NewRegistry() *Registry {
	r := &Registry{algos: make(map[string]Algorithm)}

	r.register(Algorithm{
		ID:   "bubble",
		Name: "Bubble Sort",
		Time: Complexity{Best: "O(n)", Average: "O(n²)", Worst: "O(n²)"},
		Space: "O(1)", Stable: true, Difficulty: 1,
		Description: "adjacent exchange with early exit",
		Sort:        sortBubble,
	})
	r.register(Algorithm{
		ID:   "selection",
		Name: "Selection Sort",
		Time: Complexity{Best: "O(n²)", Average: "O(n²)", Worst: "O(n²)"},
		Space: "O(1)", Stable: false, Difficulty: 1,
		Description: "running-minimum scan, one swap per position",
		Sort:        sortSelection,
	})
	r.register(Algorithm{
		ID:   "insertion",
		Name: "Insertion Sort",
		Time: Complexity{Best: "O(n)", Average: "O(n²)", Worst: "O(n²)"},
		Space: "O(1)", Stable: true, Difficulty: 2,
		Description: "grow a sorted prefix by shifting",
		Sort:        sortInsertion,
	})
	r.register(Algorithm{
		ID:   "quick",
		Name: "Quick Sort",
		Time: Complexity{Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n²)"},
		Space: "O(log n)", Stable: false, Difficulty: 4,
		Description: "Lomuto partition, last-element pivot",
		Sort:        sortQuick,
	})

	return r
}

func (r *Registry) register(a Algorithm) { r.algos[a.ID] = a }

func (r *Registry) Get(id string) (Algorithm, error) {
	a, ok := r.algos[id]
	if !ok {
		return Algorithm{}, ErrUnknownAlgorithm
	}
	return a, nil
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.algos))
	for id := range r.algos {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns the registered algorithms ordered by id.
func (r *Registry) All() []Algorithm {
	all := make([]Algorithm, 0, len(r.algos))
	for _, id := range r.IDs() {
		all = append(all, r.algos[id])
	}
	return all
}
