// Package tui holds the plain ANSI live renderer used by `sortlab run
// --watch`. It draws the bar chart straight to stdout with escape
// codes, no bubbletea, which keeps it usable under redirection-unaware
// terminals and inside the headless run path.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/avolodin/sortlab/internal/step"
)

const (
	width       = 70
	height      = 16
	clearScreen = "\033[2J\033[H"
)

// LiveRenderer paints each step as a rune canvas. Frames are gated to
// frameRate per second, except terminal steps which always draw so the
// final state is never skipped.
type LiveRenderer struct {
	algorithm string
	frameRate int
	lastFrame time.Time
	canvas    [][]rune
	stepsSeen int
}

func NewLiveRenderer(algorithm string, frameRate int) *LiveRenderer {
	if frameRate < 1 {
		frameRate = 30
	}
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
	}
	return &LiveRenderer{
		algorithm: algorithm,
		frameRate: frameRate,
		canvas:    canvas,
	}
}

// Render implements playback.Renderer.
func (r *LiveRenderer) Render(s step.Step) {
	r.stepsSeen++
	if s.Action != step.Complete {
		if time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
			return
		}
	}
	r.lastFrame = time.Now()

	r.clear()
	r.drawBars(s.Data)
	r.flush(s)
}

func (r *LiveRenderer) clear() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
}

func (r *LiveRenderer) set(x, y int, c rune) {
	if x >= 0 && x < width && y >= 0 && y < height {
		r.canvas[y][x] = c
	}
}

func (r *LiveRenderer) drawBars(d step.StepData) {
	n := len(d.Array)
	if n == 0 {
		return
	}
	maxVal := d.Array[0]
	for _, v := range d.Array {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal < 1 {
		maxVal = 1
	}

	bw := width / n
	if bw < 1 {
		bw = 1
	}

	sorted := make(map[int]bool, len(d.Sorted))
	for _, i := range d.Sorted {
		sorted[i] = true
	}

	for i, v := range d.Array {
		h := v * height / maxVal
		if h < 1 {
			h = 1
		}
		c := r.barRune(d, sorted, i)
		bx := i * bw
		for y := height - 1; y >= height-h; y-- {
			r.set(bx, y, c)
		}
	}
}

func (r *LiveRenderer) barRune(d step.StepData, sorted map[int]bool, i int) rune {
	switch {
	case hasIndex(d.Swapping, i):
		return 'X'
	case hasIndex(d.Comparing, i):
		return '?'
	case d.Setting != nil && d.Setting.Index == i:
		return '>'
	case d.Pivot == i:
		return 'P'
	case sorted[i]:
		return '='
	default:
		return '#'
	}
}

func (r *LiveRenderer) flush(s step.Step) {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  step %d  [%s]\n", r.algorithm, r.stepsSeen, s.Action))
	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	for _, row := range r.canvas {
		b.WriteString("  ")
		b.WriteString(string(row))
		b.WriteString("\n")
	}
	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	if s.Description != "" {
		b.WriteString("  " + s.Description + "\n")
	}
	fmt.Print(b.String())
}

func hasIndex(pair []int, i int) bool {
	for _, p := range pair {
		if p == i {
			return true
		}
	}
	return false
}
