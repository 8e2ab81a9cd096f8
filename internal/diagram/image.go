package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/gopt/internal/losses"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportSectionDiagram exports the section outline with the centroidal axis and tendon positions
func ExportSectionDiagram(data SectionDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = "Prestressed Section"
	p.X.Label.Text = "Width (cm)"
	p.Y.Label.Text = "Height (cm)"

	vertices := data.Vertices
	if len(vertices) < 3 {
		vertices = []Point{
			{X: 0, Y: 0},
			{X: data.Width, Y: 0},
			{X: data.Width, Y: data.Height},
			{X: 0, Y: data.Height},
		}
	}

	// Draw section outline and fill
	outline := make(plotter.XYs, len(vertices))
	minX, maxX := vertices[0].X, vertices[0].X
	for i, v := range vertices {
		outline[i] = plotter.XY{X: v.X, Y: v.Y}
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
	}
	concrete, err := plotter.NewPolygon(outline)
	if err != nil {
		return err
	}
	concrete.Color = color.RGBA{R: 200, G: 200, B: 200, A: 150}
	concrete.LineStyle.Width = vg.Points(2)
	concrete.LineStyle.Color = color.Black
	p.Add(concrete)

	// Draw centroidal axis line
	caLine, err := plotter.NewLine(plotter.XYs{
		{X: minX - 5, Y: data.CentroidY},
		{X: maxX + 5, Y: data.CentroidY},
	})
	if err != nil {
		return err
	}
	caLine.LineStyle.Width = vg.Points(1.5)
	caLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	caLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(caLine)

	// Find web center at tendon level for positioning
	webMinX, webMaxX := findWidthAtY(vertices, data.TendonMidspanY, minX, maxX)
	webCenter := (webMinX + webMaxX) / 2

	// Draw tendon at midspan (filled) and at the anchors (ring)
	for _, t := range []struct {
		y      float64
		radius vg.Length
		shape  draw.GlyphDrawer
	}{
		{data.TendonMidspanY, vg.Points(6), draw.CircleGlyph{}},
		{data.TendonAnchorY, vg.Points(5), draw.RingGlyph{}},
	} {
		tendon, err := plotter.NewScatter(plotter.XYs{{X: webCenter, Y: t.y}})
		if err != nil {
			return err
		}
		tendon.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
		tendon.GlyphStyle.Radius = t.radius
		tendon.GlyphStyle.Shape = t.shape
		p.Add(tendon)
	}

	// Add annotations
	labels := []struct {
		x, y float64
		text string
	}{
		{maxX + 8, data.CentroidY, "C.G."},
		{maxX + 8, data.Height, fmt.Sprintf("σt=%.2fMPa", data.StressTop)},
		{maxX + 8, 0, fmt.Sprintf("σb=%.2fMPa", data.StressBottom)},
		{webCenter + 4, data.TendonMidspanY, fmt.Sprintf("e=%.1fcm", data.TendonMidspanY-data.CentroidY)},
	}

	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportForceProfile exports the force magnitude after each stage along the span
func ExportForceProfile(positions []float64, stages []losses.Stage, filename string) error {
	p := plot.New()
	p.Title.Text = "Prestress Force Along the Span"
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "|P| (kN)"
	p.Legend.Top = true

	lines := make([]interface{}, 0, 2*len(stages))
	for _, st := range stages {
		if st.Forces.Len() != len(positions) {
			return fmt.Errorf("stage %s has %d values for %d stations", st.Name, st.Forces.Len(), len(positions))
		}
		pts := make(plotter.XYs, len(positions))
		for i, x := range positions {
			pts[i] = plotter.XY{X: x / 100, Y: math.Abs(st.Forces.Value(i))}
		}
		lines = append(lines, fmt.Sprintf("%s (%s)", st.Symbol, st.Name), pts)
	}
	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return err
	}
	p.Add(plotter.NewGrid())

	return save(p, 8*vg.Inch, 5*vg.Inch, filename)
}

// ExportTendonProfile exports the tendon path y(x) against the centroidal axis
func ExportTendonProfile(positions, offsets []float64, filename string) error {
	if len(positions) != len(offsets) {
		return fmt.Errorf("%d positions for %d offsets", len(positions), len(offsets))
	}
	p := plot.New()
	p.Title.Text = "Tendon Profile"
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (cm)"

	pts := make(plotter.XYs, len(positions))
	for i := range positions {
		pts[i] = plotter.XY{X: positions[i] / 100, Y: offsets[i]}
	}
	tendon, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	tendon.LineStyle.Width = vg.Points(2)
	tendon.LineStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	p.Add(tendon)

	// Zero offset reference line
	axis, err := plotter.NewLine(plotter.XYs{
		{X: pts[0].X, Y: 0},
		{X: pts[len(pts)-1].X, Y: 0},
	})
	if err != nil {
		return err
	}
	axis.LineStyle.Width = vg.Points(1)
	axis.LineStyle.Color = color.Gray{Y: 128}
	axis.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(axis)

	return save(p, 8*vg.Inch, 4*vg.Inch, filename)
}

// save writes the plot, choosing the format from the extension (PNG when unknown)
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// findWidthAtY finds the min and max X at a given Y level
func findWidthAtY(vertices []Point, y, defaultMin, defaultMax float64) (float64, float64) {
	if len(vertices) < 3 {
		return defaultMin, defaultMax
	}

	var intersections []float64
	n := len(vertices)

	for i := 0; i < n; i++ {
		curr := vertices[i]
		next := vertices[(i+1)%n]

		// Check if edge crosses this Y level
		if (curr.Y <= y && next.Y > y) || (next.Y <= y && curr.Y > y) {
			t := (y - curr.Y) / (next.Y - curr.Y)
			x := curr.X + t*(next.X-curr.X)
			intersections = append(intersections, x)
		}
	}

	if len(intersections) < 2 {
		return defaultMin, defaultMax
	}

	minX, maxX := intersections[0], intersections[0]
	for _, x := range intersections {
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
	}

	return minX, maxX
}
