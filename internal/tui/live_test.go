package tui

import (
	"testing"
	"time"

	"github.com/avolodin/sortlab/internal/step"
)

func countRune(canvas [][]rune, c rune) int {
	n := 0
	for _, row := range canvas {
		for _, r := range row {
			if r == c {
				n++
			}
		}
	}
	return n
}

func columnRunes(canvas [][]rune, x int) map[rune]int {
	counts := make(map[rune]int)
	for y := 0; y < height; y++ {
		if r := canvas[y][x]; r != ' ' {
			counts[r]++
		}
	}
	return counts
}

func TestDrawBarsHeights(t *testing.T) {
	r := NewLiveRenderer("bubble", 30)
	r.clear()
	r.drawBars(step.StepData{Array: []int{1, 8, 16}, Pivot: -1})

	bw := width / 3
	// Max value fills the canvas height, the smallest still gets one cell.
	if got := len(columnRunes(r.canvas, 2*bw)); got == 0 {
		t.Fatal("tallest bar not drawn")
	}
	tall := columnRunes(r.canvas, 2*bw)['#']
	if tall != height {
		t.Errorf("tallest bar height = %d, want %d", tall, height)
	}
	short := columnRunes(r.canvas, 0)['#']
	if short != 1 {
		t.Errorf("smallest bar height = %d, want 1", short)
	}
}

func TestDrawBarsEmptyArray(t *testing.T) {
	r := NewLiveRenderer("bubble", 30)
	r.clear()
	r.drawBars(step.StepData{Pivot: -1})
	if got := countRune(r.canvas, '#'); got != 0 {
		t.Errorf("empty array drew %d cells", got)
	}
}

func TestBarRunePriority(t *testing.T) {
	r := NewLiveRenderer("quick", 30)
	d := step.StepData{
		Array:    []int{4, 3, 2, 1, 5},
		Swapping: []int{0, 1},
		Setting:  &step.Assignment{Index: 2, Value: 2},
		Pivot:    3,
		Sorted:   []int{1, 4},
	}
	sorted := map[int]bool{1: true, 4: true}

	tests := []struct {
		index int
		want  rune
	}{
		{0, 'X'}, // swapping
		{1, 'X'}, // swapping outranks sorted
		{2, '>'}, // setting
		{3, 'P'}, // pivot
		{4, '='}, // sorted
	}
	for _, tt := range tests {
		if got := r.barRune(d, sorted, tt.index); got != tt.want {
			t.Errorf("barRune(index %d) = %q, want %q", tt.index, got, tt.want)
		}
	}

	plain := step.StepData{Array: []int{1, 2}, Pivot: -1}
	if got := r.barRune(plain, map[int]bool{}, 0); got != '#' {
		t.Errorf("unmarked bar rune = %q, want '#'", got)
	}
}

func TestFrameGateSkipsIntermediateSteps(t *testing.T) {
	r := NewLiveRenderer("bubble", 30)
	r.lastFrame = time.Now()

	compare := step.Step{Action: step.Compare, Data: step.StepData{Array: []int{2, 1}, Pivot: -1}}
	r.Render(compare)
	if countRune(r.canvas, '#') != 0 {
		t.Error("gated frame should not repaint the canvas")
	}

	// Terminal steps always draw.
	complete := step.Step{Action: step.Complete, Data: step.StepData{Array: []int{1, 2}, Sorted: []int{0, 1}, Pivot: -1}}
	r.Render(complete)
	if countRune(r.canvas, '=') == 0 {
		t.Error("complete step was gated away")
	}
	if r.stepsSeen != 2 {
		t.Errorf("stepsSeen = %d, want 2", r.stepsSeen)
	}
}
