package losses

import (
	"math"

	"github.com/alexiusacademia/gopt/internal/measure"
	log "github.com/sirupsen/logrus"
)

// ShorteningInput holds the section and tensioning data of the elastic shortening stage
type ShorteningInput struct {
	ConcreteModulus float64 // Ecs, secant modulus at tensioning (kN/cm²)
	TendonModulus   float64 // Ep (kN/cm²)
	TendonArea      float64 // Ap (cm²)
	Tendons         int     // n, tendons tensioned one after another
	SelfWeight      float64 // g (kN/cm)
	Section         SectionProperties
}

// ElasticShortening is the force profile after the concrete shortens under the
// tendons tensioned later in the sequence.
type ElasticShortening struct {
	slip  *AnchorageSlip
	input ShorteningInput

	modularRatio float64 // αp = Ep/Ecs
	factor       float64 // (n-1)/(2n)

	moment     []float64 // Mg (kN·cm)
	stress     []float64 // σcp at the tendon level (kN/cm²)
	stressLoss []float64 // Δσp (kN/cm²), signed like the force
	forceLoss  []float64 // ΔP (kN), signed like the force
	force      []float64 // P0 (kN)
}

// NewElasticShortening evaluates the elastic shortening stage from the anchorage slip output
func NewElasticShortening(a *AnchorageSlip, in ShorteningInput) (*ElasticShortening, error) {
	if a == nil {
		return nil, invalid("anchorage slip stage", "is required")
	}
	if err := requirePositive("concrete modulus", in.ConcreteModulus); err != nil {
		return nil, err
	}
	if err := requirePositive("tendon modulus", in.TendonModulus); err != nil {
		return nil, err
	}
	if err := requirePositive("tendon area", in.TendonArea); err != nil {
		return nil, err
	}
	if in.Tendons < 1 {
		return nil, invalid("tendon count", "must be at least 1, got %d", in.Tendons)
	}
	if err := requireNonNegative("self-weight", in.SelfWeight); err != nil {
		return nil, err
	}
	if err := in.Section.validate(); err != nil {
		return nil, err
	}

	p := a.friction.Profile()
	e := &ElasticShortening{
		slip:         a,
		input:        in,
		modularRatio: in.TendonModulus / in.ConcreteModulus,
		factor:       SequentialFactor(in.Tendons),
	}
	e.moment = simplySupportedMoment(p.x, p.Length(), in.SelfWeight)
	e.stress = tendonLevelStress(a.force, p.y, e.moment, in.Section)

	n := len(p.x)
	sign := a.friction.sign()
	e.stressLoss = make([]float64, n)
	e.forceLoss = make([]float64, n)
	e.force = make([]float64, n)
	for i := 0; i < n; i++ {
		ds := e.modularRatio * e.stress[i] * e.factor
		if ds > 0 {
			// concrete in tension at the tendon: no shortening
			ds = 0
		}
		// ds ≤ 0 shortens the tendon whatever the sign of the force
		e.stressLoss[i] = -sign * ds
		e.forceLoss[i] = e.stressLoss[i] * in.TendonArea
		e.force[i] = a.force[i] - e.forceLoss[i]
	}
	if err := checkFinite("elastic shortening force", e.force); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"modularRatio": e.modularRatio,
		"tendons":      in.Tendons,
		"factor":       e.factor,
	}).Debug("elastic shortening stage")

	return e, nil
}

// SequentialFactor returns (n-1)/(2n), the mean share of the shortening felt by
// n tendons tensioned one after another.
func SequentialFactor(n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(n-1) / float64(2*n)
}

// simplySupportedMoment returns M(x) = w·x·(L-x)/2 at each abscissa
func simplySupportedMoment(x []float64, span, w float64) []float64 {
	m := make([]float64, len(x))
	for i, xi := range x {
		m[i] = w * xi * (span - xi) / 2
	}
	return m
}

// tendonLevelStress returns σ = -|P|·(1/Ac + e²/Ic) - M·e/Ic at each station,
// compression negative whatever the sign convention of the force
func tendonLevelStress(force, ecc, moment []float64, s SectionProperties) []float64 {
	sigma := make([]float64, len(force))
	for i := range force {
		e := ecc[i]
		sigma[i] = -math.Abs(force[i])*(1/s.Area+e*e/s.Inertia) - moment[i]*e/s.Inertia
	}
	return sigma
}

// Forces returns P0 at each station (kN)
func (e *ElasticShortening) Forces() measure.Series {
	return measure.NewSeries(measure.Kilonewton, e.force)
}

// Moments returns the self-weight bending moment (kN·cm)
func (e *ElasticShortening) Moments() measure.Series {
	return measure.NewSeries(measure.KilonewtonCentimetre, e.moment)
}

// ConcreteStresses returns σcp at the tendon level (kN/cm², compression negative)
func (e *ElasticShortening) ConcreteStresses() measure.Series {
	return measure.NewSeries(measure.KilonewtonPerSquareCentimetre, e.stress)
}

// StressLosses returns Δσp at each station (kN/cm²)
func (e *ElasticShortening) StressLosses() measure.Series {
	return measure.NewSeries(measure.KilonewtonPerSquareCentimetre, e.stressLoss)
}

// ForceLosses returns ΔP = Δσp·Ap at each station (kN)
func (e *ElasticShortening) ForceLosses() measure.Series {
	return measure.NewSeries(measure.Kilonewton, e.forceLoss)
}

// ModularRatio returns αp = Ep/Ecs
func (e *ElasticShortening) ModularRatio() float64 {
	return e.modularRatio
}

// Factor returns the sequential tensioning factor (n-1)/(2n)
func (e *ElasticShortening) Factor() float64 {
	return e.factor
}

// AnchorageSlip returns the upstream stage
func (e *ElasticShortening) AnchorageSlip() *AnchorageSlip {
	return e.slip
}
