package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avolodin/sortlab/internal/step"
)

const barRune = "█"

// RenderBars paints one step as a row of vertical bars, height rows
// tall. Highlight colors take precedence over the value gradient:
// swapping > comparing > setting > pivot > sorted. Bars outside the
// active range are dimmed.
func RenderBars(s step.Step, width, height int) string {
	arr := s.Data.Array
	if len(arr) == 0 {
		return outsideStyle.Render("(empty array)")
	}
	if height < 1 {
		height = 1
	}

	min, max := arr[0], arr[0]
	for _, v := range arr {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	gap := ""
	if 2*len(arr) <= width {
		gap = " "
	}

	styles := barStyles(s, min, max)

	heights := make([]int, len(arr))
	for i, v := range arr {
		h := 1
		if max > 0 {
			h = v * height / max
		}
		if h < 1 {
			h = 1
		}
		heights[i] = h
	}

	var b strings.Builder
	for row := height; row >= 1; row-- {
		for i := range arr {
			if heights[i] >= row {
				b.WriteString(styles[i].Render(barRune))
			} else {
				b.WriteString(" ")
			}
			b.WriteString(gap)
		}
		if row > 1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func barStyles(s step.Step, min, max int) []lipgloss.Style {
	d := s.Data
	styles := make([]lipgloss.Style, len(d.Array))

	inRange := func(i int) bool {
		if d.Range == nil {
			return true
		}
		return i >= d.Range[0] && i <= d.Range[1]
	}

	sorted := make(map[int]bool, len(d.Sorted))
	for _, i := range d.Sorted {
		sorted[i] = true
	}

	for i, v := range d.Array {
		switch {
		case pairHas(d.Swapping, i):
			styles[i] = swapStyle
		case pairHas(d.Comparing, i):
			styles[i] = compareStyle
		case d.Setting != nil && d.Setting.Index == i:
			styles[i] = settingStyle
		case d.Pivot == i:
			styles[i] = pivotStyle
		case sorted[i]:
			styles[i] = sortedStyle
		case !inRange(i):
			styles[i] = outsideStyle
		default:
			styles[i] = valueStyleFor(v, min, max)
		}
	}
	return styles
}

func pairHas(pair []int, i int) bool {
	for _, p := range pair {
		if p == i {
			return true
		}
	}
	return false
}
