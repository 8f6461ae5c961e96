package viz

import (
	"strings"
	"testing"

	"github.com/avolodin/sortlab/internal/step"
)

func barStep(arr []int) step.Step {
	return step.Step{Action: step.ClearMarks, Data: step.StepData{Array: arr, Pivot: -1}}
}

func TestRenderBarsDimensions(t *testing.T) {
	out := RenderBars(barStep([]int{3, 1, 4, 1, 5}), 40, 8)
	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Errorf("rendered %d rows, want 8", len(lines))
	}
	for i, line := range lines {
		if strings.Count(line, barRune)+strings.Count(line, " ") == 0 {
			t.Errorf("row %d is empty", i)
		}
	}
}

func TestRenderBarsEmptyArray(t *testing.T) {
	out := RenderBars(barStep(nil), 40, 8)
	if !strings.Contains(out, "empty") {
		t.Errorf("empty array rendering = %q", out)
	}
}

func TestRenderBarsTallestFillsHeight(t *testing.T) {
	out := RenderBars(barStep([]int{1, 10}), 40, 6)
	lines := strings.Split(out, "\n")
	// Top row holds only the max-value bar.
	if strings.Count(lines[0], barRune) != 1 {
		t.Errorf("top row = %q, want exactly one bar", lines[0])
	}
	// Bottom row holds every bar.
	if strings.Count(lines[len(lines)-1], barRune) != 2 {
		t.Errorf("bottom row = %q, want two bars", lines[len(lines)-1])
	}
}

func TestRenderBarsMinimumOneCell(t *testing.T) {
	// A tiny value still paints at least one cell.
	out := RenderBars(barStep([]int{1, 1000}), 40, 10)
	lines := strings.Split(out, "\n")
	bottom := lines[len(lines)-1]
	if strings.Count(bottom, barRune) != 2 {
		t.Errorf("bottom row = %q, want both bars present", bottom)
	}
}

func TestBarStylesPriority(t *testing.T) {
	s := step.Step{
		Action: step.Swap,
		Data: step.StepData{
			Array:    []int{4, 3, 2, 1},
			Swapping: []int{0, 1},
			Sorted:   []int{1, 3},
			Pivot:    2,
		},
	}
	styles := barStyles(s, 1, 4)
	if len(styles) != 4 {
		t.Fatalf("styles len = %d", len(styles))
	}
	// Swapping outranks sorted at index 1; pivot and sorted marks apply
	// where no pair highlight does.
	if styles[1].GetForeground() != swapStyle.GetForeground() {
		t.Error("swap highlight did not outrank sorted at index 1")
	}
	if styles[2].GetForeground() != pivotStyle.GetForeground() {
		t.Error("pivot not highlighted at index 2")
	}
	if styles[3].GetForeground() != sortedStyle.GetForeground() {
		t.Error("sorted not highlighted at index 3")
	}
}

func TestBarStylesRangeDimming(t *testing.T) {
	s := step.Step{
		Action: step.MarkRange,
		Data: step.StepData{
			Array: []int{5, 4, 3, 2, 1},
			Range: []int{1, 3},
			Pivot: -1,
		},
	}
	styles := barStyles(s, 1, 5)
	if styles[0].GetForeground() != outsideStyle.GetForeground() {
		t.Error("index 0 outside range not dimmed")
	}
	if styles[4].GetForeground() != outsideStyle.GetForeground() {
		t.Error("index 4 outside range not dimmed")
	}
	if styles[2].GetForeground() == outsideStyle.GetForeground() {
		t.Error("index 2 inside range was dimmed")
	}
}
