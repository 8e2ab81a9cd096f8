package losses

import (
	"math"

	"github.com/alexiusacademia/gopt/internal/measure"
	log "github.com/sirupsen/logrus"
)

// betaTolerance is the smallest friction loss rate (kN/cm) for which an influence length exists
const betaTolerance = 1e-12

// SlipInput holds the wedge draw-in data of the anchorage slip stage
type SlipInput struct {
	Slip          float64 // Seating slip a (cm)
	TendonModulus float64 // Ep (kN/cm²)
	TendonArea    float64 // Ap (cm²)
}

// Regime identifies which anchorage slip model applies
type Regime int

const (
	// NoSlip is a zero seating slip: the stage leaves the force unchanged
	NoSlip Regime = iota
	// ShortInfluence: the slip dies out within the span (within half of it when both ends are active)
	ShortInfluence
	// OverlappingInfluence: both ends active and the two influence zones overlap (L/2 < xr ≤ L)
	OverlappingInfluence
	// FullSpanInfluence: the influence length exceeds the span (xr > L)
	FullSpanInfluence
)

func (r Regime) String() string {
	switch r {
	case NoSlip:
		return "no slip"
	case ShortInfluence:
		return "short influence"
	case OverlappingInfluence:
		return "overlapping influence"
	case FullSpanInfluence:
		return "full-span influence"
	}
	return "unknown"
}

// slipInfluence is the tagged variant describing the loss distribution along the span
type slipInfluence struct {
	regime    Regime
	anchoring Anchoring
	span      float64 // L (cm)
	length    float64 // xr (cm)
	peak      float64 // ΔP at a tensioned anchor (kN)
	midspan   float64 // ΔP at midspan, overlapping regime only (kN)
}

// newSlipInfluence classifies the slip model and computes its governing loss values
func newSlipInfluence(span, beta float64, in SlipInput, anchoring Anchoring) (slipInfluence, error) {
	s := slipInfluence{anchoring: anchoring, span: span}
	if in.Slip == 0 {
		s.regime = NoSlip
		return s, nil
	}
	if !finite(beta) || beta <= betaTolerance {
		return s, degenerate("friction loss rate", "is %g, the slip influence length is undefined", beta)
	}

	// xr = sqrt(a·Ep·Ap/β), ΔPmax = 2·β·xr
	work := in.Slip * in.TendonModulus * in.TendonArea
	s.length = math.Sqrt(work / beta)
	s.peak = 2 * beta * s.length

	switch {
	case s.length > span:
		s.regime = FullSpanInfluence
		s.peak *= span / s.length
	case anchoring == ActiveActive && s.length > span/2:
		s.regime = OverlappingInfluence
		// ΔP1: friction drop from an anchor to midspan
		drop := span / 2 * beta
		parcel := 2 * work / span
		s.midspan = math.Max(0, parcel-drop)
		s.peak = s.midspan + 2*drop
	default:
		s.regime = ShortInfluence
	}
	return s, nil
}

// lossAt returns the slip loss magnitude ΔP (kN) at abscissa x (cm)
func (s slipInfluence) lossAt(x float64) float64 {
	switch s.regime {
	case ShortInfluence:
		var loss float64
		if s.anchoring.ActiveAtStart() {
			loss += s.linear(x)
		}
		if s.anchoring.ActiveAtEnd() {
			loss += s.linear(s.span - x)
		}
		return loss
	case FullSpanInfluence:
		if s.anchoring == ActiveActive {
			return s.peak
		}
		d := x
		if s.anchoring == PassiveActive {
			d = s.span - x
		}
		return s.peak * (1 - d/s.length)
	case OverlappingInfluence:
		half := s.span / 2
		return s.midspan + (s.peak-s.midspan)*math.Abs(x-half)/half
	}
	return 0
}

// linear is ΔPmax·(1 - d/xr) for d ≤ xr, else 0
func (s slipInfluence) linear(d float64) float64 {
	if d > s.length {
		return 0
	}
	return s.peak * (1 - d/s.length)
}

// AnchorageSlip is the force profile after wedge draw-in at the tensioned anchors
type AnchorageSlip struct {
	friction  *Friction
	input     SlipInput
	influence slipInfluence

	loss  []float64 // ΔP magnitude (kN)
	force []float64 // Panc (kN)
}

// NewAnchorageSlip evaluates the anchorage slip stage from the friction stage output
func NewAnchorageSlip(f *Friction, in SlipInput) (*AnchorageSlip, error) {
	if f == nil {
		return nil, invalid("friction stage", "is required")
	}
	if err := requireNonNegative("anchorage slip", in.Slip); err != nil {
		return nil, err
	}
	if err := requirePositive("tendon modulus", in.TendonModulus); err != nil {
		return nil, err
	}
	if err := requirePositive("tendon area", in.TendonArea); err != nil {
		return nil, err
	}

	p := f.Profile()
	influence, err := newSlipInfluence(p.Length(), f.Beta(), in, f.Input().Anchoring)
	if err != nil {
		return nil, err
	}

	a := &AnchorageSlip{
		friction:  f,
		input:     in,
		influence: influence,
	}
	a.loss, a.force = applySlip(p.x, f.force, f.sign(), influence)
	if err := checkFinite("anchorage slip force", a.force); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"regime":          influence.regime,
		"influenceLength": influence.length,
		"peakLoss":        influence.peak,
	}).Debug("anchorage slip stage")

	return a, nil
}

// applySlip reduces the magnitude of each friction force by the slip loss at its station
func applySlip(x, patr []float64, sign float64, s slipInfluence) (loss, panc []float64) {
	loss = make([]float64, len(x))
	panc = make([]float64, len(x))
	for i := range x {
		loss[i] = s.lossAt(x[i])
		panc[i] = patr[i] - sign*loss[i]
	}
	return loss, panc
}

// Forces returns Panc at each station (kN)
func (a *AnchorageSlip) Forces() measure.Series {
	return measure.NewSeries(measure.Kilonewton, a.force)
}

// Losses returns the slip loss magnitude ΔP at each station (kN)
func (a *AnchorageSlip) Losses() measure.Series {
	return measure.NewSeries(measure.Kilonewton, a.loss)
}

// Regime returns the slip model that applied
func (a *AnchorageSlip) Regime() Regime {
	return a.influence.regime
}

// InfluenceLength returns xr (cm); zero when there is no slip
func (a *AnchorageSlip) InfluenceLength() float64 {
	return a.influence.length
}

// PeakLoss returns the loss at a tensioned anchor (kN)
func (a *AnchorageSlip) PeakLoss() float64 {
	return a.influence.peak
}

// MidspanLoss returns the loss at midspan in the overlapping regime (kN)
func (a *AnchorageSlip) MidspanLoss() float64 {
	return a.influence.midspan
}

// Friction returns the upstream stage
func (a *AnchorageSlip) Friction() *Friction {
	return a.friction
}
