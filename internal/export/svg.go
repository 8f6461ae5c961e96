// Package export renders finished runs as standalone SVG documents:
// the sorted array as a bar chart with the cumulative array-access
// curve overlaid.
package export

import (
	"fmt"
	"strings"

	"github.com/avolodin/sortlab/internal/analysis"
	"github.com/avolodin/sortlab/internal/step"
)

const (
	svgWidth    = 800
	svgHeight   = 400
	svgPadding  = 40
	barGapRatio = 0.2
)

// RunSVG renders one run. title goes into the chart header; the bars
// show the final sorted array and the polyline the cumulative array
// accesses over the step trace.
func RunSVG(title string, input []int, res *step.Result) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, svgWidth, svgHeight, svgWidth, svgHeight))

	sb.WriteString(fmt.Sprintf(`<text x="%d" y="24" fill="#e0e0e0" font-family="monospace" font-size="16">%s</text>
`, svgPadding, escapeXML(title)))

	writeBars(&sb, res.SortedArray)
	writeAccessCurve(&sb, input, res)

	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="#808080" font-family="monospace" font-size="12">%d comparisons, %d swaps, %d array accesses, %d steps</text>
`, svgPadding, svgHeight-10, res.Comparisons, res.Swaps, res.ArrayAccesses, len(res.Steps)))

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writeBars(sb *strings.Builder, arr []int) {
	if len(arr) == 0 {
		return
	}
	max := arr[0]
	for _, v := range arr {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		max = 1
	}

	plotW := float64(svgWidth - 2*svgPadding)
	plotH := float64(svgHeight - 2*svgPadding - 20)
	slot := plotW / float64(len(arr))
	barW := slot * (1 - barGapRatio)

	sb.WriteString(`<g fill="#2e8b57">` + "\n")
	for i, v := range arr {
		h := float64(v) / float64(max) * plotH
		x := float64(svgPadding) + float64(i)*slot
		y := float64(svgHeight-svgPadding-20) - h
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n", x, y, barW, h))
	}
	sb.WriteString("</g>\n")
}

func writeAccessCurve(sb *strings.Builder, input []int, res *step.Result) {
	summary := analysis.Summarize(input, res)
	curve := summary.Accesses
	if len(curve) < 2 {
		return
	}
	peak := curve[len(curve)-1]
	if peak <= 0 {
		return
	}

	plotW := float64(svgWidth - 2*svgPadding)
	plotH := float64(svgHeight - 2*svgPadding - 20)

	points := make([]string, len(curve))
	for i, v := range curve {
		x := float64(svgPadding) + float64(i)/float64(len(curve)-1)*plotW
		y := float64(svgHeight-svgPadding-20) - v/peak*plotH
		points[i] = fmt.Sprintf("%.1f,%.1f", x, y)
	}
	sb.WriteString(fmt.Sprintf(`<polyline points="%s" fill="none" stroke="#ffd700" stroke-width="1.5"/>`+"\n", strings.Join(points, " ")))
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
