package storage

import (
	"encoding/csv"
	"os"
	"strings"
	"testing"

	"github.com/avolodin/sortlab/internal/step"
)

func sampleResult() *step.Result {
	return &step.Result{
		Steps: []step.Step{
			{Action: step.Compare, Data: step.StepData{Array: []int{2, 1}, Comparing: []int{0, 1}, Pivot: -1}, Description: "compare 0 and 1"},
			{Action: step.Swap, Data: step.StepData{Array: []int{1, 2}, Swapping: []int{0, 1}, Pivot: -1}, Description: "swap 0 and 1"},
			{Action: step.Complete, Data: step.StepData{Array: []int{1, 2}, Sorted: []int{0, 1}, Pivot: -1}, Description: "done"},
		},
		SortedArray:   []int{1, 2},
		Comparisons:   1,
		Swaps:         1,
		ArrayAccesses: 6,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	id, err := store.Save("bubble", "random", 42, []int{2, 1}, sampleResult())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(id, "bubble_") {
		t.Errorf("run id = %q, want bubble_ prefix", id)
	}

	meta, err := store.Load(id)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Algorithm != "bubble" || meta.Pattern != "random" || meta.Seed != 42 {
		t.Errorf("metadata = %+v", meta)
	}
	if meta.Size != 2 || meta.Comparisons != 1 || meta.Swaps != 1 || meta.ArrayAccesses != 6 || meta.Steps != 3 {
		t.Errorf("counters = %+v", meta)
	}
}

func TestSaveWritesStepTrace(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	id, err := store.Save("bubble", "random", 1, []int{2, 1}, sampleResult())
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(store.StepsCSVPath(id))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 4 { // header + 3 steps
		t.Fatalf("csv rows = %d, want 4", len(records))
	}
	header := strings.Join(records[0], ",")
	if header != "index,action,detail,description,array" {
		t.Errorf("header = %q", header)
	}
	if records[1][1] != "compare" || records[1][2] != "0 1" {
		t.Errorf("compare row = %v", records[1])
	}
	if records[2][1] != "swap" || records[2][4] != "1 2" {
		t.Errorf("swap row = %v", records[2])
	}
	if records[3][1] != "complete" || records[3][2] != "0 1" {
		t.Errorf("complete row = %v", records[3])
	}
}

func TestListNewestFirst(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	// Distinct algorithm names keep the second-resolution run ids unique.
	for _, algo := range []string{"bubble", "selection", "quick"} {
		if _, err := store.Save(algo, "random", 1, []int{2, 1}, sampleResult()); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Fatalf("List() returned %d runs, want 3", len(runs))
	}
	for i := 1; i < len(runs); i++ {
		if runs[i].Timestamp.After(runs[i-1].Timestamp) {
			t.Errorf("runs not newest first: %v before %v", runs[i-1].Timestamp, runs[i].Timestamp)
		}
	}
	if runs[0].Algorithm != "quick" {
		t.Errorf("newest run = %s, want quick", runs[0].Algorithm)
	}
}

func TestListEmptyAndMissingDir(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	runs, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("fresh store listed %d runs", len(runs))
	}

	missing := New(t.TempDir() + "/never-created")
	runs, err = missing.List()
	if err != nil {
		t.Fatal(err)
	}
	if runs != nil {
		t.Errorf("missing dir listed %v", runs)
	}
}

func TestLoadUnknownRun(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Load("bubble_12345"); err == nil {
		t.Error("expected error for unknown run id")
	}
}
