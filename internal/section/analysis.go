package section

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexiusacademia/gopt/internal/losses"
	"github.com/alexiusacademia/gopt/internal/measure"
	"github.com/alexiusacademia/gopt/internal/nbr6118"
)

// LoadFromFile loads a section definition from a JSON file
func LoadFromFile(filepath string) (*Section, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var section Section
	if err := json.Unmarshal(data, &section); err != nil {
		return nil, err
	}

	if err := section.Validate(); err != nil {
		return nil, err
	}

	return &section, nil
}

// SectionProperties returns the gross area and centroidal inertia for the loss stages
func (s *Section) SectionProperties() (losses.SectionProperties, error) {
	if err := s.Validate(); err != nil {
		return losses.SectionProperties{}, &losses.ConfigError{Field: "section", Reason: err.Error()}
	}
	props := s.CalculateProperties()
	return losses.SectionProperties{Area: props.Area, Inertia: props.Inertia}, nil
}

// SelfWeight returns the distributed self-weight of the section (kN/cm)
func (s *Section) SelfWeight() float64 {
	gamma := s.UnitWeight
	if gamma == 0 {
		gamma = nbr6118.PrestressedUnitWeight
	}
	area := measure.New(s.CalculateProperties().Area, measure.SquareCentimetre).MustIn(measure.SquareMetre)
	perMetre := nbr6118.SelfWeight(area, gamma)
	return measure.New(perMetre, measure.KilonewtonPerMetre).MustIn(measure.KilonewtonPerCentimetre)
}

// TendonEccentricity converts a tendon height above the section bottom (cm)
// into its offset from the centroidal axis, negative below the centroid
func (s *Section) TendonEccentricity(heightFromBottom float64) (float64, error) {
	props := s.CalculateProperties()
	if heightFromBottom < 0 || heightFromBottom > props.Height {
		return 0, fmt.Errorf("tendon height %.2f cm lies outside the section height %.2f cm", heightFromBottom, props.Height)
	}
	return props.MinY + heightFromBottom - props.CentroidY, nil
}

// FiberStresses holds the extreme fiber stresses (kN/cm², compression negative)
type FiberStresses struct {
	Top    float64
	Bottom float64
}

// StressesAt returns the extreme fiber stresses under a prestress force P at
// eccentricity e (cm, y up) and a sagging moment M (kN·cm)
func (p *Properties) StressesAt(force, ecc, moment float64) FiberStresses {
	// σ(y) = P/A + P·e·y/I - M·y/I, y from the centroid
	axial := force / p.Area
	curvature := (force*ecc - moment) / p.Inertia
	return FiberStresses{
		Top:    axial + curvature*p.TopFiber,
		Bottom: axial - curvature*p.BottomFiber,
	}
}
