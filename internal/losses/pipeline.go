package losses

import (
	"math"

	"github.com/alexiusacademia/gopt/internal/measure"
	log "github.com/sirupsen/logrus"
)

// Input is the construction record of a loss pipeline. Units: kN, cm, kN/cm², kN/cm.
type Input struct {
	// Tendon geometry
	Span         float64 // L (cm)
	Eccentricity float64 // Midspan tendon offset from the neutral axis, y up (cm)
	AnchorOffset float64 // Tendon offset at both anchors (cm)
	Stations     int     // N ≥ 2

	// Tensioning
	Anchoring    Anchoring
	JackingForce float64 // kN, sign preserved (negative under the compression-negative convention)
	Mu           float64 // Curvature friction coefficient
	Wobble       float64 // 1/m; zero selects 0.01·μ unless NoWobble is set
	NoWobble     bool    // k = 0 exactly
	Slip         float64 // Anchorage seating slip (cm)

	// Tendon
	TendonArea    float64 // Ap (cm²)
	TendonModulus float64 // Ep (kN/cm²)
	Tendons       int     // Tendons tensioned in sequence

	// Concrete
	ConcreteModulus     float64 // Ecs at tensioning (kN/cm²)
	Section             SectionModel
	SelfWeight          float64   // g1 (kN/cm)
	AdditionalPermanent []float64 // g2, g3, ... (kN/cm)

	// Long term
	TimeDependent TimeDependentMethod
	Creep         CreepModel
	CreepQuery    CreepQuery
	LossFactor    float64 // LumpSum only
}

// Pipeline owns the tendon geometry and the four loss stages, built in order
// with each stage reading the previous stage's forces.
type Pipeline struct {
	profile       *SpanProfile
	friction      *Friction
	slip          *AnchorageSlip
	shortening    *ElasticShortening
	timeDependent *TimeDependent

	section SectionProperties
	creep   float64
}

// New validates the input and evaluates every stage. It returns either a complete
// pipeline or an error wrapping ErrInvalidConfiguration or ErrNumericDegenerate.
func New(in Input) (*Pipeline, error) {
	if !in.Anchoring.Valid() {
		return nil, invalid("anchoring", "has unrecognized value %d", in.Anchoring)
	}
	if in.Section == nil {
		return nil, invalid("section", "is required")
	}
	section, err := in.Section.SectionProperties()
	if err != nil {
		return nil, err
	}
	if err := section.validate(); err != nil {
		return nil, err
	}

	var creep float64
	if in.TimeDependent == CodeFormula {
		if in.Creep == nil {
			return nil, invalid("creep model", "is required by the code formula")
		}
		creep, err = in.Creep.Coefficient(in.CreepQuery)
		if err != nil {
			return nil, err
		}
	}

	pl := &Pipeline{section: section, creep: creep}

	if pl.profile, err = NewSpanProfile(in.Span, in.Eccentricity, in.AnchorOffset, in.Stations); err != nil {
		return nil, err
	}

	pl.friction, err = NewFriction(pl.profile, FrictionInput{
		JackingForce: in.JackingForce,
		Mu:           in.Mu,
		Wobble:       in.Wobble,
		NoWobble:     in.NoWobble,
		Anchoring:    in.Anchoring,
	})
	if err != nil {
		return nil, err
	}

	pl.slip, err = NewAnchorageSlip(pl.friction, SlipInput{
		Slip:          in.Slip,
		TendonModulus: in.TendonModulus,
		TendonArea:    in.TendonArea,
	})
	if err != nil {
		return nil, err
	}

	pl.shortening, err = NewElasticShortening(pl.slip, ShorteningInput{
		ConcreteModulus: in.ConcreteModulus,
		TendonModulus:   in.TendonModulus,
		TendonArea:      in.TendonArea,
		Tendons:         in.Tendons,
		SelfWeight:      in.SelfWeight,
		Section:         section,
	})
	if err != nil {
		return nil, err
	}

	permanent := append([]float64{in.SelfWeight}, in.AdditionalPermanent...)
	pl.timeDependent, err = NewTimeDependent(pl.shortening, TimeDependentInput{
		Method:         in.TimeDependent,
		Creep:          creep,
		ModularRatio:   pl.shortening.ModularRatio(),
		PermanentLoads: permanent,
		Section:        section,
		LossFactor:     in.LossFactor,
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"span":      in.Span,
		"stations":  in.Stations,
		"anchoring": in.Anchoring,
	}).Debug("loss pipeline complete")

	return pl, nil
}

// Profile returns the tendon geometry
func (pl *Pipeline) Profile() *SpanProfile { return pl.profile }

// Friction returns the friction stage
func (pl *Pipeline) Friction() *Friction { return pl.friction }

// AnchorageSlip returns the anchorage slip stage
func (pl *Pipeline) AnchorageSlip() *AnchorageSlip { return pl.slip }

// ElasticShortening returns the elastic shortening stage
func (pl *Pipeline) ElasticShortening() *ElasticShortening { return pl.shortening }

// TimeDependent returns the time-dependent stage
func (pl *Pipeline) TimeDependent() *TimeDependent { return pl.timeDependent }

// Final returns Pinf, the long-term sustained force (kN)
func (pl *Pipeline) Final() measure.Series { return pl.timeDependent.Forces() }

// Section returns the section properties the stages used
func (pl *Pipeline) Section() SectionProperties { return pl.section }

// Creep returns the creep coefficient the time-dependent stage used
func (pl *Pipeline) Creep() float64 { return pl.creep }

// Stage is a named force profile
type Stage struct {
	Name   string
	Symbol string
	Forces measure.Series
}

// Stages returns the force profile after each stage, in pipeline order
func (pl *Pipeline) Stages() []Stage {
	return []Stage{
		{Name: "Friction", Symbol: "Patr", Forces: pl.friction.Forces()},
		{Name: "Anchorage slip", Symbol: "Panc", Forces: pl.slip.Forces()},
		{Name: "Elastic shortening", Symbol: "P0", Forces: pl.shortening.Forces()},
		{Name: "Time-dependent", Symbol: "Pinf", Forces: pl.timeDependent.Forces()},
	}
}

// SummaryPoint is the force after each stage at one station
type SummaryPoint struct {
	Label       string
	Station     int
	X           float64   // cm
	Forces      []float64 // kN, in Stages order
	LossPercent float64   // total loss relative to the jacking force (%)
}

// Summary collects the governing scalars and the forces at the anchors and midspan
type Summary struct {
	JackingForce    float64 // kN
	Beta            float64 // kN/cm
	Regime          Regime
	InfluenceLength float64 // cm
	PeakSlipLoss    float64 // kN
	ModularRatio    float64
	Creep           float64
	Points          []SummaryPoint
}

// Summary evaluates the pipeline at the start, midspan and end stations
func (pl *Pipeline) Summary() Summary {
	s := Summary{
		JackingForce:    pl.friction.input.JackingForce,
		Beta:            pl.friction.Beta(),
		Regime:          pl.slip.Regime(),
		InfluenceLength: pl.slip.InfluenceLength(),
		PeakSlipLoss:    pl.slip.PeakLoss(),
		ModularRatio:    pl.shortening.ModularRatio(),
		Creep:           pl.creep,
	}

	stages := pl.Stages()
	jack := math.Abs(s.JackingForce)
	last := pl.profile.Stations() - 1
	for _, pt := range []struct {
		label   string
		station int
	}{
		{"Start", 0},
		{"Midspan", pl.profile.MidspanStation()},
		{"End", last},
	} {
		sp := SummaryPoint{
			Label:   pt.label,
			Station: pt.station,
			X:       pl.profile.x[pt.station],
		}
		for _, st := range stages {
			sp.Forces = append(sp.Forces, st.Forces.Value(pt.station))
		}
		final := math.Abs(sp.Forces[len(sp.Forces)-1])
		sp.LossPercent = 100 * (jack - final) / jack
		s.Points = append(s.Points, sp)
	}
	return s
}
