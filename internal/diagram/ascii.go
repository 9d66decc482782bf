// Package diagram renders analysis results as terminal plots and image files.
package diagram

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gopile/internal/bnwf"
	"github.com/alexiusacademia/gopile/internal/curve"
	"github.com/guptarohit/asciigraph"
)

// ASCII plot size in characters
const (
	plotWidth  = 60
	plotHeight = 12
)

// Profile is one depth-indexed quantity of a result
type Profile struct {
	Title  string
	Unit   string
	Values []float64
}

// Profiles picks the lateral response profiles of a result
func Profiles(r *bnwf.Result) []Profile {
	return []Profile{
		{Title: "Lateral deflection", Unit: "in", Values: r.DeflectionLateral},
		{Title: "Bending moment", Unit: "ft-lbs", Values: r.Moment},
		{Title: "Shear", Unit: "lbs", Values: r.Shear},
		{Title: "Soil reaction p", Unit: "lb/in", Values: r.SoilP},
	}
}

// AxialProfiles picks the axial response profiles of a result
func AxialProfiles(r *bnwf.Result) []Profile {
	return []Profile{
		{Title: "Axial displacement", Unit: "in", Values: r.DeflectionAxial},
		{Title: "Axial force", Unit: "lbs", Values: r.AxialForce},
		{Title: "Skin friction t", Unit: "lb/in", Values: r.SoilT},
	}
}

// DrawProfile plots a quantity along the pile. The horizontal axis runs from
// the head (left) to the tip (right).
func DrawProfile(p Profile, depth []float64) string {
	if len(p.Values) < 2 || len(depth) < 2 {
		return ""
	}
	caption := fmt.Sprintf("%s (%s), depth %.1f to %.1f ft", p.Title, p.Unit, depth[0], depth[len(depth)-1])
	return asciigraph.Plot(p.Values,
		asciigraph.Width(plotWidth),
		asciigraph.Height(plotHeight),
		asciigraph.Precision(precision(p.Values)),
		asciigraph.Caption(caption),
	) + "\n"
}

// DrawResult plots every lateral profile, then the axial ones when the pile
// carries axial load.
func DrawResult(r *bnwf.Result) string {
	var sb strings.Builder
	for _, p := range Profiles(r) {
		sb.WriteString(DrawProfile(p, r.Depth))
		sb.WriteString("\n")
	}
	if nonZero(r.AxialForce) {
		for _, p := range AxialProfiles(r) {
			sb.WriteString(DrawProfile(p, r.Depth))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// DrawPushover plots head load against displacement, resampled at even
// displacement intervals.
func DrawPushover(p *bnwf.Pushover) string {
	if p == nil || len(p.Disp) < 2 {
		return ""
	}
	series := resample(p.Disp, p.Load, plotWidth)
	caption := fmt.Sprintf("Pushover (%s): load (lbs) vs displacement 0 to %.3f in", p.Axis, p.Disp[len(p.Disp)-1])
	return asciigraph.Plot(series,
		asciigraph.Width(plotWidth),
		asciigraph.Height(plotHeight),
		asciigraph.Precision(0),
		asciigraph.Caption(caption),
	) + "\n"
}

// DrawCurve plots a spring curve's resistance over its displacement range
func DrawCurve(c *curve.Curve) string {
	if c.IsNull() || len(c.Disp) < 2 {
		return ""
	}
	series := resample(c.Disp, c.Resist, plotWidth)
	caption := fmt.Sprintf("%s %s at %.1f ft, y 0 to %.3f in, ult %.1f",
		c.Kind, c.Method, c.Depth, c.Disp[len(c.Disp)-1], c.Ultimate)
	return asciigraph.Plot(series,
		asciigraph.Width(plotWidth),
		asciigraph.Height(plotHeight/2+2),
		asciigraph.Precision(precision(c.Resist)),
		asciigraph.Caption(caption),
	) + "\n"
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// resample maps y(x) onto n evenly spaced x values by linear interpolation.
// x must be increasing.
func resample(x, y []float64, n int) []float64 {
	out := make([]float64, n)
	lo, hi := x[0], x[len(x)-1]
	j := 0
	for i := range out {
		xi := lo + (hi-lo)*float64(i)/float64(n-1)
		for j < len(x)-2 && x[j+1] < xi {
			j++
		}
		dx := x[j+1] - x[j]
		if dx <= 0 {
			out[i] = y[j+1]
			continue
		}
		t := (xi - x[j]) / dx
		out[i] = y[j] + t*(y[j+1]-y[j])
	}
	return out
}

func precision(v []float64) uint {
	var m float64
	for _, x := range v {
		if x < 0 {
			x = -x
		}
		if x > m {
			m = x
		}
	}
	switch {
	case m >= 100:
		return 0
	case m >= 1:
		return 2
	default:
		return 4
	}
}

func nonZero(v []float64) bool {
	for _, x := range v {
		if x != 0 {
			return true
		}
	}
	return false
}
