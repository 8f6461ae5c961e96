package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// gradientTable is a hue look-up table interpolated by position, used to
// color bars by their value so the sorted array reads as a smooth ramp.
type gradientTable []struct {
	Hue float64
	Pos float64
}

func (g gradientTable) color(t float64) colorful.Color {
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			h := (((t - c1.Pos) / (c2.Pos - c1.Pos)) * (c2.Hue - c1.Hue)) + c1.Hue
			return colorful.Hcl(h, 0.5, 0.7)
		}
	}
	return colorful.Hcl(g[len(g)-1].Hue, 0.5, 0.7)
}

// barGradient runs cold-to-warm with increasing value.
var barGradient = gradientTable{
	{280.0, 0.0},
	{200.0, 0.5},
	{110.0, 1.0},
}

// valueStyleFor maps a bar's value inside [min, max] to a colored style.
func valueStyleFor(v, min, max int) lipgloss.Style {
	t := 0.0
	if max > min {
		t = float64(v-min) / float64(max-min)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(barGradient.color(t).Clamped().Hex()))
}
