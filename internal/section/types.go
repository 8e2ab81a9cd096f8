package section

import (
	"fmt"
	"math"
)

// Section represents a concrete beam cross-section defined by vertices
// The section is defined in a local coordinate system where:
// - Y-axis points upward
// - X-axis points to the right
// - Origin can be at any convenient location
type Section struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Section geometry defined by vertices (in cm)
	// Vertices may run either way around the outer boundary
	// The section is assumed to be a simple polygon (no holes)
	Vertices []Point `json:"vertices"`

	// Specific weight of the concrete (kN/m³), 0 selects 25
	UnitWeight float64 `json:"unit_weight,omitempty"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"` // cm
	Y float64 `json:"y"` // cm
}

// Properties holds calculated geometric properties
type Properties struct {
	// Overall dimensions
	Width     float64 // Maximum width (cm)
	Height    float64 // Total height (cm)
	Area      float64 // Gross area (cm²)
	Perimeter float64 // Exposed perimeter u (cm)

	// Centroid location
	CentroidX float64 // cm
	CentroidY float64 // cm

	// Second moment of area about the horizontal centroidal axis
	Inertia float64 // cm⁴

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64

	// Fiber distances from the centroidal axis and section moduli
	TopFiber      float64 // yt (cm)
	BottomFiber   float64 // yb (cm)
	ModulusTop    float64 // Wt = I/yt (cm³)
	ModulusBottom float64 // Wb = I/yb (cm³)

	// Notional thickness 2Ac/u (cm)
	NotionalThickness float64
}

// Rectangle returns a b×h section (cm) with its origin at the bottom-left corner
func Rectangle(name string, width, height float64) *Section {
	return &Section{
		Name: name,
		Vertices: []Point{
			{X: 0, Y: 0},
			{X: width, Y: 0},
			{X: width, Y: height},
			{X: 0, Y: height},
		},
	}
}

// Validate checks if the section definition is valid
func (s *Section) Validate() error {
	if len(s.Vertices) < 3 {
		return &ValidationError{"section must have at least 3 vertices"}
	}
	for i, v := range s.Vertices {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
			return &ValidationError{msg: fmt.Sprintf("vertex %d is not finite", i+1)}
		}
	}
	if s.UnitWeight < 0 {
		return &ValidationError{"unit weight must not be negative"}
	}
	if s.areaMoments().area <= 0 {
		return &ValidationError{"section vertices enclose no area"}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
