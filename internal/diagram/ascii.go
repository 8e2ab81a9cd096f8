package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gopt/internal/losses"
	"github.com/guptarohit/asciigraph"
)

// Point represents a 2D coordinate for section vertices
type Point struct {
	X float64
	Y float64
}

// SectionDiagramData holds data for drawing a prestressed beam section
type SectionDiagramData struct {
	// Section dimensions
	Width  float64 // cm
	Height float64 // cm

	// Custom section vertices (if provided, draws actual shape)
	// Y measured from the section bottom
	Vertices []Point

	// Centroidal axis, from bottom (cm)
	CentroidY float64

	// Tendon positions, from bottom (cm)
	TendonMidspanY float64
	TendonAnchorY  float64

	// Extreme fiber stresses at midspan (MPa, compression negative)
	StressTop    float64
	StressBottom float64
}

// DrawASCIISectionDiagram creates an ASCII representation of the section with the
// centroidal axis, the tendon at midspan and the extreme fiber stresses
func DrawASCIISectionDiagram(data SectionDiagramData) string {
	var sb strings.Builder

	// Scale factors for ASCII drawing
	widthChars := 30
	heightChars := 20

	if data.Height <= 0 || data.Width <= 0 {
		return ""
	}

	minX := 0.0
	if len(data.Vertices) >= 3 {
		minX = data.Vertices[0].X
		for _, v := range data.Vertices {
			minX = math.Min(minX, v.X)
		}
	}

	row := func(y float64) int {
		return heightChars - int(math.Round(y/data.Height*float64(heightChars)))
	}
	caLine := row(data.CentroidY)
	tendonLine := row(data.TendonMidspanY)

	sb.WriteString("\n")
	sb.WriteString("  BEAM SECTION                            STRESS\n")
	sb.WriteString("  ────────────                            ──────\n")

	for i := 0; i <= heightChars; i++ {
		// Section column: the polygon width at the row level, nudged inside at the edges
		y := data.Height * (1 - float64(i)/float64(heightChars))
		y = math.Min(math.Max(y, 1e-6*data.Height), (1-1e-6)*data.Height)
		lo, hi := 0.0, data.Width
		if len(data.Vertices) >= 3 {
			lo, hi = findWidthAtY(data.Vertices, y, minX, minX)
			lo, hi = lo-minX, hi-minX
		}
		start := int(math.Round(lo / data.Width * float64(widthChars)))
		end := int(math.Round(hi / data.Width * float64(widthChars)))
		if end <= start {
			end = start + 1
		}

		fill := []rune(strings.Repeat(" ", widthChars+2))
		for c := start; c <= end+1 && c < len(fill); c++ {
			switch {
			case c == start || c == end+1:
				fill[c] = '│'
			case i == 0 || i == heightChars:
				fill[c] = '─'
			case i == caLine:
				fill[c] = '┄'
			default:
				fill[c] = '░'
			}
		}

		// Tendon marker
		if i == tendonLine {
			mid := (start + end + 1) / 2
			if mid > 0 && mid < len(fill)-1 {
				fill[mid] = '●'
			}
		}

		sb.WriteString("  ")
		sb.WriteString(string(fill))

		switch i {
		case 0:
			sb.WriteString(fmt.Sprintf("        ┌── σtop = %.2f MPa", data.StressTop))
		case caLine:
			sb.WriteString(" ◄─ C.G.")
		case tendonLine:
			sb.WriteString(" ◄─ tendon")
		case heightChars:
			sb.WriteString(fmt.Sprintf("        └── σbot = %.2f MPa", data.StressBottom))
		}

		sb.WriteString("\n")
	}

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ░░░ = Concrete\n")
	sb.WriteString("  ●   = Tendon at midspan\n")
	sb.WriteString(fmt.Sprintf("  C.G. = Centroidal axis at %.1f cm from bottom\n", data.CentroidY))
	sb.WriteString(fmt.Sprintf("  Tendon at %.1f cm (midspan), %.1f cm (anchors) from bottom\n", data.TendonMidspanY, data.TendonAnchorY))

	return sb.String()
}

// DrawForceChart plots the force magnitude of every stage along the span
func DrawForceChart(stages []losses.Stage, width int) string {
	if len(stages) == 0 {
		return ""
	}

	series := make([][]float64, 0, len(stages))
	symbols := make([]string, 0, len(stages))
	for _, st := range stages {
		v := st.Forces.Values()
		for i := range v {
			v[i] = math.Abs(v[i])
		}
		series = append(series, v)
		symbols = append(symbols, st.Symbol)
	}

	graph := asciigraph.PlotMany(series,
		asciigraph.Height(15),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.Caption("|P| (kN) along the span, top to bottom: "+strings.Join(symbols, ", ")),
	)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  FORCE PROFILE\n")
	sb.WriteString("  ─────────────\n\n")
	sb.WriteString(graph)
	sb.WriteString("\n")
	return sb.String()
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
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-fills s with spaces to n runes; %-*s counts bytes, not runes
func pad(s string, n int) string {
	if k := len([]rune(s)); k < n {
		return s + strings.Repeat(" ", n-k)
	}
	return s
}
