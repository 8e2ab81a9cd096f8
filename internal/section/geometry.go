package section

import (
	"math"
	"sort"
)

// CalculateProperties computes geometric properties of the section
func (s *Section) CalculateProperties() *Properties {
	props := &Properties{}
	if len(s.Vertices) < 3 {
		return props
	}

	props.MinX, props.MaxX = s.Vertices[0].X, s.Vertices[0].X
	props.MinY, props.MaxY = s.Vertices[0].Y, s.Vertices[0].Y
	for _, v := range s.Vertices[1:] {
		props.MinX, props.MaxX = math.Min(props.MinX, v.X), math.Max(props.MaxX, v.X)
		props.MinY, props.MaxY = math.Min(props.MinY, v.Y), math.Max(props.MaxY, v.Y)
	}
	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	m := s.areaMoments()
	props.Area = m.area
	props.Perimeter = m.perimeter
	if m.area > 0 {
		props.CentroidX = m.sy / m.area
		props.CentroidY = m.sx / m.area
		// parallel axis
		props.Inertia = m.ixx - m.area*props.CentroidY*props.CentroidY
	}

	props.TopFiber = props.MaxY - props.CentroidY
	props.BottomFiber = props.CentroidY - props.MinY
	if props.TopFiber > 0 {
		props.ModulusTop = props.Inertia / props.TopFiber
	}
	if props.BottomFiber > 0 {
		props.ModulusBottom = props.Inertia / props.BottomFiber
	}
	if props.Perimeter > 0 {
		props.NotionalThickness = 2 * props.Area / props.Perimeter
	}
	return props
}

// moments holds the polygon integrals about the coordinate origin
type moments struct {
	area      float64 // A
	sx, sy    float64 // ∫y dA, ∫x dA
	ixx       float64 // ∫y² dA
	perimeter float64
}

// areaMoments integrates the outline edge by edge (Green's theorem). Integrals
// are sign-corrected so clockwise and counter-clockwise outlines agree.
func (s *Section) areaMoments() moments {
	var m moments
	n := len(s.Vertices)
	for i := range s.Vertices {
		a, b := s.Vertices[i], s.Vertices[(i+1)%n]
		cross := a.X*b.Y - b.X*a.Y
		m.area += cross / 2
		m.sy += (a.X + b.X) * cross / 6
		m.sx += (a.Y + b.Y) * cross / 6
		m.ixx += (a.Y*a.Y + a.Y*b.Y + b.Y*b.Y) * cross / 12
		m.perimeter += math.Hypot(b.X-a.X, b.Y-a.Y)
	}
	if m.area < 0 {
		m.area, m.sx, m.sy, m.ixx = -m.area, -m.sx, -m.sy, -m.ixx
	}
	return m
}

// WidthAtDepth returns the total width cut by a horizontal line at a depth below the top (cm)
func (s *Section) WidthAtDepth(depthFromTop float64) float64 {
	return s.widthAtY(s.CalculateProperties().MaxY - depthFromTop)
}

// widthAtY sums the interior segments of the horizontal line at y
func (s *Section) widthAtY(y float64) float64 {
	xs := s.crossingsAtY(y)
	sort.Float64s(xs)

	var width float64
	for i := 0; i+1 < len(xs); i += 2 {
		width += xs[i+1] - xs[i]
	}
	return width
}

// crossingsAtY returns the abscissae where the outline crosses the level y
func (s *Section) crossingsAtY(y float64) []float64 {
	var xs []float64
	n := len(s.Vertices)
	for i := range s.Vertices {
		a, b := s.Vertices[i], s.Vertices[(i+1)%n]
		if (a.Y <= y) != (b.Y <= y) {
			xs = append(xs, a.X+(y-a.Y)/(b.Y-a.Y)*(b.X-a.X))
		}
	}
	return xs
}
