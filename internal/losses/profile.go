package losses

import (
	"math"

	"github.com/alexiusacademia/gopt/internal/measure"
	"gonum.org/v1/gonum/floats"
)

// SpanProfile is the parabolic tendon path discretized into equally spaced stations.
// The parabola passes through (0, c), (L/2, e) and (L, c), with y measured upward
// from the neutral axis. Built once, never mutated.
type SpanProfile struct {
	length       float64 // L (cm)
	eccentricity float64 // e at midspan (cm)
	offset       float64 // c at the anchors (cm)

	// y(x) = a·x² + b·x + c
	a, b float64

	x         []float64 // station positions (cm)
	y         []float64 // tendon offsets (cm)
	slope     []float64 // y'(x)
	tilt      []float64 // α(x) = -atan(y'(x)) (rad)
	deviation []float64 // α(0) - α(x) (rad)
}

// NewSpanProfile discretizes a span of the given length into stations (at least 2)
// and evaluates the tendon path at each one.
func NewSpanProfile(length, eccentricity, offset float64, stations int) (*SpanProfile, error) {
	if err := requirePositive("span length", length); err != nil {
		return nil, err
	}
	if !finite(eccentricity) {
		return nil, invalid("eccentricity", "must be finite, got %g", eccentricity)
	}
	if !finite(offset) {
		return nil, invalid("anchor offset", "must be finite, got %g", offset)
	}
	if stations < 2 {
		return nil, invalid("station count", "must be at least 2, got %d", stations)
	}

	p := &SpanProfile{
		length:       length,
		eccentricity: eccentricity,
		offset:       offset,
		a:            -4 * (eccentricity - offset) / (length * length),
		b:            4 * (eccentricity - offset) / length,
	}

	p.x = floats.Span(make([]float64, stations), 0, length)
	p.y = make([]float64, stations)
	p.slope = make([]float64, stations)
	p.tilt = make([]float64, stations)
	p.deviation = make([]float64, stations)

	for i, x := range p.x {
		p.y[i] = p.OffsetAt(x)
		p.slope[i] = p.SlopeAt(x)
		p.tilt[i] = -math.Atan(p.slope[i])
		p.deviation[i] = p.tilt[0] - p.tilt[i]
	}
	p.deviation[0] = 0

	return p, nil
}

// OffsetAt evaluates the tendon offset y at any abscissa x (cm)
func (p *SpanProfile) OffsetAt(x float64) float64 {
	return p.a*x*x + p.b*x + p.offset
}

// SlopeAt evaluates y'(x)
func (p *SpanProfile) SlopeAt(x float64) float64 {
	return 2*p.a*x + p.b
}

// TiltAt evaluates the tilt angle α(x) = -atan(y'(x)) in radians
func (p *SpanProfile) TiltAt(x float64) float64 {
	return -math.Atan(p.SlopeAt(x))
}

// Length returns the span length (cm)
func (p *SpanProfile) Length() float64 { return p.length }

// Eccentricity returns the midspan eccentricity (cm)
func (p *SpanProfile) Eccentricity() float64 { return p.eccentricity }

// AnchorOffset returns the tendon offset at both anchors (cm)
func (p *SpanProfile) AnchorOffset() float64 { return p.offset }

// Stations returns the station count N
func (p *SpanProfile) Stations() int { return len(p.x) }

// Positions returns the station abscissae
func (p *SpanProfile) Positions() measure.Series {
	return measure.NewSeries(measure.Centimetre, p.x)
}

// Offsets returns the tendon offsets, which are also the eccentricities used by the stress stages
func (p *SpanProfile) Offsets() measure.Series {
	return measure.NewSeries(measure.Centimetre, p.y)
}

// Slopes returns y' at each station
func (p *SpanProfile) Slopes() measure.Series {
	return measure.NewSeries(measure.Dimensionless, p.slope)
}

// TiltAngles returns α at each station
func (p *SpanProfile) TiltAngles() measure.Series {
	return measure.NewSeries(measure.Radian, p.tilt)
}

// Deviations returns the cumulative angular deviation from station 0
func (p *SpanProfile) Deviations() measure.Series {
	return measure.NewSeries(measure.Radian, p.deviation)
}

// MidspanStation returns the index of the station closest to L/2
func (p *SpanProfile) MidspanStation() int {
	return (len(p.x) - 1) / 2
}

// distanceFrom returns the distance along the span from the chosen end to station i
func (p *SpanProfile) distanceFrom(atStart bool, i int) float64 {
	if atStart {
		return p.x[i]
	}
	return p.length - p.x[i]
}

// deviationFrom returns the angular deviation accumulated from the chosen end to station i
func (p *SpanProfile) deviationFrom(atStart bool, i int) float64 {
	if atStart {
		return math.Abs(p.deviation[i])
	}
	return math.Abs(p.deviation[len(p.deviation)-1] - p.deviation[i])
}
