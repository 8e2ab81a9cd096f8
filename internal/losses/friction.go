package losses

import (
	"math"

	"github.com/alexiusacademia/gopt/internal/measure"
	log "github.com/sirupsen/logrus"
)

// DefaultWobbleFactor gives the unintended curvature coefficient as a fraction of μ (k = 0.01·μ per metre)
const DefaultWobbleFactor = 0.01

// FrictionInput holds the tensioning data of the friction stage
type FrictionInput struct {
	JackingForce float64 // P at the active anchor (kN), sign preserved
	Mu           float64 // Curvature friction coefficient μ
	Wobble       float64 // k (1/m); zero selects DefaultWobbleFactor·μ unless NoWobble is set
	NoWobble     bool    // k = 0 exactly
	Anchoring    Anchoring
}

// Friction is the force profile after duct friction:
// P(x) = P·exp(-(μ·|Σα| + k·d)), d and Σα taken from the tensioning end.
type Friction struct {
	profile *SpanProfile
	input   FrictionInput
	wobble  float64

	force []float64 // Patr (kN)
	beta  float64   // mean loss rate (kN/cm)
}

// NewFriction evaluates the friction stage over the profile
func NewFriction(p *SpanProfile, in FrictionInput) (*Friction, error) {
	if p == nil {
		return nil, invalid("span profile", "is required")
	}
	if !finite(in.JackingForce) || in.JackingForce == 0 {
		return nil, invalid("jacking force", "must be non-zero and finite, got %g", in.JackingForce)
	}
	if err := requireNonNegative("friction coefficient", in.Mu); err != nil {
		return nil, err
	}
	if err := requireNonNegative("wobble coefficient", in.Wobble); err != nil {
		return nil, err
	}
	if in.NoWobble && in.Wobble != 0 {
		return nil, invalid("wobble coefficient", "is %g but no wobble was requested", in.Wobble)
	}
	if !in.Anchoring.Valid() {
		return nil, invalid("anchoring", "has unrecognized value %d", in.Anchoring)
	}

	f := &Friction{
		profile: p,
		input:   in,
		wobble:  in.Wobble,
	}
	if f.wobble == 0 && !in.NoWobble {
		f.wobble = DefaultWobbleFactor * in.Mu
	}

	n := p.Stations()
	f.force = make([]float64, n)
	for i := 0; i < n; i++ {
		switch in.Anchoring {
		case ActivePassive:
			f.force[i] = f.oneSided(true, i)
		case PassiveActive:
			f.force[i] = f.oneSided(false, i)
		case ActiveActive:
			// the larger loss governs
			start, end := f.oneSided(true, i), f.oneSided(false, i)
			if math.Abs(end) < math.Abs(start) {
				f.force[i] = end
			} else {
				f.force[i] = start
			}
		}
	}
	if err := checkFinite("friction force", f.force); err != nil {
		return nil, err
	}

	f.beta = f.lossRate()

	log.WithFields(log.Fields{
		"anchoring": in.Anchoring,
		"mu":        in.Mu,
		"wobble":    f.wobble,
		"beta":      f.beta,
	}).Debug("friction stage")

	return f, nil
}

// decay returns exp(-(μ·|Σα| + k·d)) for a path with deviation alpha (rad) and length d (cm)
func (f *Friction) decay(alpha, d float64) float64 {
	dm := measure.New(d, measure.Centimetre).MustIn(measure.Metre)
	return math.Exp(-(f.input.Mu*math.Abs(alpha) + f.wobble*dm))
}

func (f *Friction) oneSided(fromStart bool, i int) float64 {
	p := f.profile
	return f.input.JackingForce * f.decay(p.deviationFrom(fromStart, i), p.distanceFrom(fromStart, i))
}

// lossRate is the secant slope of |Patr| between station 0 and midspan
// (active-active) or the far end. Midspan is evaluated on the curve, so it
// needs no station at L/2.
func (f *Friction) lossRate() float64 {
	p := f.profile
	near := math.Abs(f.force[0])

	reach := p.Length()
	far := math.Abs(f.force[len(f.force)-1])
	if f.input.Anchoring == ActiveActive {
		// both one-sided forces meet at midspan
		reach = p.Length() / 2
		far = math.Abs(f.input.JackingForce) * f.decay(p.TiltAt(0)-p.TiltAt(reach), reach)
	}
	return math.Abs(near-far) / reach
}

// Forces returns Patr at each station (kN)
func (f *Friction) Forces() measure.Series {
	return measure.NewSeries(measure.Kilonewton, f.force)
}

// Beta returns the mean friction loss rate β (kN/cm)
func (f *Friction) Beta() float64 {
	return f.beta
}

// LossRate returns β as a measurement
func (f *Friction) LossRate() measure.Measurement {
	return measure.New(f.beta, measure.KilonewtonPerCentimetre)
}

// Wobble returns the wobble coefficient in effect (1/m)
func (f *Friction) Wobble() float64 {
	return f.wobble
}

// Input returns the stage inputs
func (f *Friction) Input() FrictionInput {
	return f.input
}

// Profile returns the span profile the stage was evaluated on
func (f *Friction) Profile() *SpanProfile {
	return f.profile
}

func (f *Friction) sign() float64 {
	if f.input.JackingForce < 0 {
		return -1
	}
	return 1
}
