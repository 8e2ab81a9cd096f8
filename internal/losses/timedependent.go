package losses

import (
	"math"

	"github.com/alexiusacademia/gopt/internal/measure"
	log "github.com/sirupsen/logrus"
)

// TimeDependentMethod selects how the long-term loss is estimated
type TimeDependentMethod int

const (
	// CodeFormula is the semi-empirical creep, shrinkage and relaxation expression
	CodeFormula TimeDependentMethod = iota
	// LumpSum applies a fixed fraction of the force entering the stage
	LumpSum
)

func (m TimeDependentMethod) String() string {
	if m == LumpSum {
		return "lump sum"
	}
	return "code formula"
}

// TimeDependentInput holds the long-term data of the time-dependent stage
type TimeDependentInput struct {
	Method TimeDependentMethod

	// CodeFormula
	Creep          float64   // φ(t∞, t0)
	ModularRatio   float64   // αp
	PermanentLoads []float64 // Distributed permanent loads, self-weight included (kN/cm)
	Section        SectionProperties

	// LumpSum
	LossFactor float64 // Fraction of P0 lost, in [0, 1)
}

// TimeDependent is the final sustained force profile after creep, shrinkage and relaxation
type TimeDependent struct {
	shortening *ElasticShortening
	input      TimeDependentInput

	moment  []float64 // Mperm (kN·cm)
	stress  []float64 // σcpg at the tendon level (kN/cm²)
	percent []float64 // loss (%)
	force   []float64 // Pinf (kN)
}

// NewTimeDependent evaluates the time-dependent stage from the elastic shortening output
func NewTimeDependent(e *ElasticShortening, in TimeDependentInput) (*TimeDependent, error) {
	if e == nil {
		return nil, invalid("elastic shortening stage", "is required")
	}

	p := e.slip.friction.Profile()
	n := len(p.x)
	t := &TimeDependent{
		shortening: e,
		input:      in,
		percent:    make([]float64, n),
		force:      make([]float64, n),
	}

	switch in.Method {
	case CodeFormula:
		if err := requireNonNegative("creep coefficient", in.Creep); err != nil {
			return nil, err
		}
		if err := requirePositive("modular ratio", in.ModularRatio); err != nil {
			return nil, err
		}
		if err := in.Section.validate(); err != nil {
			return nil, err
		}
		var w float64
		for _, g := range in.PermanentLoads {
			if err := requireNonNegative("permanent load", g); err != nil {
				return nil, err
			}
			w += g
		}
		t.moment = simplySupportedMoment(p.x, p.Length(), w)
		t.stress = tendonLevelStress(e.force, p.y, t.moment, in.Section)

		creep := math.Pow(in.Creep, 1.07)
		for i := range t.force {
			sigma := measure.New(t.stress[i], measure.KilonewtonPerSquareCentimetre).MustIn(measure.Megapascal)
			t.percent[i] = 7.4 + in.ModularRatio/18.7*creep*(3-sigma)
		}
	case LumpSum:
		if !finite(in.LossFactor) || in.LossFactor < 0 || in.LossFactor >= 1 {
			return nil, invalid("loss factor", "must lie in [0, 1), got %g", in.LossFactor)
		}
		for i := range t.percent {
			t.percent[i] = 100 * in.LossFactor
		}
	default:
		return nil, invalid("time-dependent method", "has unrecognized value %d", in.Method)
	}

	for i := range t.force {
		if t.percent[i] >= 100 {
			return nil, degenerate("time-dependent loss", "is %.1f%% at station %d", t.percent[i], i)
		}
		t.force[i] = e.force[i] * (1 - t.percent[i]/100)
	}
	if err := checkFinite("time-dependent force", t.force); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"method": in.Method,
		"creep":  in.Creep,
	}).Debug("time-dependent stage")

	return t, nil
}

// Forces returns Pinf at each station (kN)
func (t *TimeDependent) Forces() measure.Series {
	return measure.NewSeries(measure.Kilonewton, t.force)
}

// LossPercents returns the time-dependent loss at each station (%)
func (t *TimeDependent) LossPercents() measure.Series {
	return measure.NewSeries(measure.Percent, t.percent)
}

// ConcreteStresses returns σcpg under the permanent loads (kN/cm², compression negative); empty for the lump-sum method
func (t *TimeDependent) ConcreteStresses() measure.Series {
	return measure.NewSeries(measure.KilonewtonPerSquareCentimetre, t.stress)
}

// Moments returns the permanent-load bending moment (kN·cm); empty for the lump-sum method
func (t *TimeDependent) Moments() measure.Series {
	return measure.NewSeries(measure.KilonewtonCentimetre, t.moment)
}

// Method returns the estimate that was used
func (t *TimeDependent) Method() TimeDependentMethod {
	return t.input.Method
}

// ElasticShortening returns the upstream stage
func (t *TimeDependent) ElasticShortening() *ElasticShortening {
	return t.shortening
}
