package scenario

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gopt/internal/creep"
	"github.com/alexiusacademia/gopt/internal/losses"
	"github.com/alexiusacademia/gopt/internal/measure"
	"github.com/alexiusacademia/gopt/internal/nbr6118"
	"github.com/alexiusacademia/gopt/internal/section"
)

// Scenario is a beam and tendon description in design units.
// Zero values select the defaults noted on each field.
type Scenario struct {
	Name string `json:"name"`

	// Geometry
	Span         float64 `json:"span"`                    // m
	Eccentricity float64 `json:"eccentricity"`            // cm, y up, tendon below the centroid is negative
	TendonHeight float64 `json:"tendon_height,omitempty"` // cm above the section bottom, replaces Eccentricity when set
	AnchorOffset float64 `json:"anchor_offset,omitempty"` // cm
	Stations     int     `json:"stations,omitempty"`      // 21

	// Tensioning
	Anchoring    string  `json:"anchoring"`           // active-passive, passive-active, active-active
	JackingForce float64 `json:"jacking_force"`       // kN, compression negative
	Mu           float64 `json:"mu,omitempty"`        // from Duct when zero
	Duct         string  `json:"duct,omitempty"`      // none, indented, metal, lubricated, polypropylene
	Wobble       float64 `json:"wobble,omitempty"`    // 1/m, 0.01·μ
	NoWobble     bool    `json:"no_wobble,omitempty"` // k = 0 instead of the default
	Slip         float64 `json:"slip"`                // mm

	// Tendon
	TendonArea    float64 `json:"tendon_area"`              // cm²
	TendonModulus float64 `json:"tendon_modulus,omitempty"` // GPa, 195
	Tendons       int     `json:"tendons,omitempty"`        // 1

	// Concrete
	Fck             float64 `json:"fck"`                        // MPa
	Aggregate       string  `json:"aggregate,omitempty"`        // granite
	ConcreteModulus float64 `json:"concrete_modulus,omitempty"` // GPa, secant modulus from fck when zero

	// Section: either Area and Inertia, or a polygon
	Area        float64         `json:"area,omitempty"`    // cm²
	Inertia     float64         `json:"inertia,omitempty"` // cm⁴
	Perimeter   float64         `json:"perimeter,omitempty"`
	Vertices    []section.Point `json:"vertices,omitempty"` // cm
	SectionFile string          `json:"section_file,omitempty"`

	// Loads (kN/m)
	SelfWeight          float64   `json:"self_weight,omitempty"` // from the section area when zero
	AdditionalPermanent []float64 `json:"additional_permanent,omitempty"`
	LiveLoad            float64   `json:"live_load,omitempty"`
	Psi2                float64   `json:"psi2,omitempty"` // 0.4

	// Long term
	Method       string  `json:"method,omitempty"`         // formula or lump-sum
	LossFactor   float64 `json:"loss_factor,omitempty"`    // lump-sum only
	Creep        float64 `json:"creep,omitempty"`          // φ, looked up from the table when zero
	Humidity     float64 `json:"humidity,omitempty"`       // %, 75
	AgeAtLoading float64 `json:"age_at_loading,omitempty"` // days, 30
}

// Defaults applied by Resolve
const (
	DefaultStations     = 21
	DefaultHumidity     = 75.0
	DefaultAgeAtLoading = 30.0
	DefaultPsi2         = 0.4
)

// Section returns the polygon section of the scenario, or nil when it gives Area and Inertia
func (s *Scenario) Section() (*section.Section, error) {
	if s.SectionFile != "" {
		return section.LoadFromFile(s.SectionFile)
	}
	if len(s.Vertices) == 0 {
		return nil, nil
	}
	sec := &section.Section{Name: s.Name, Vertices: s.Vertices}
	if err := sec.Validate(); err != nil {
		return nil, err
	}
	return sec, nil
}

// Input converts the scenario into the loss pipeline input (kN, cm)
func (s *Scenario) Input() (losses.Input, error) {
	var in losses.Input

	anchoring, err := losses.ParseAnchoring(s.Anchoring)
	if err != nil {
		return in, err
	}

	sec, err := s.Section()
	if err != nil {
		return in, fmt.Errorf("section: %w", err)
	}

	in = losses.Input{
		Span:          measure.New(s.Span, measure.Metre).MustIn(measure.Centimetre),
		Eccentricity:  s.Eccentricity,
		AnchorOffset:  s.AnchorOffset,
		Stations:      s.Stations,
		Anchoring:     anchoring,
		JackingForce:  s.JackingForce,
		Mu:            s.Mu,
		Wobble:        s.Wobble,
		NoWobble:      s.NoWobble,
		Slip:          measure.New(s.Slip, measure.Millimetre).MustIn(measure.Centimetre),
		TendonArea:    s.TendonArea,
		TendonModulus: measure.New(s.TendonModulus, measure.Gigapascal).MustIn(measure.KilonewtonPerSquareCentimetre),
		Tendons:       s.Tendons,
		LossFactor:    s.LossFactor,
	}
	if in.Stations == 0 {
		in.Stations = DefaultStations
	}
	if in.Tendons == 0 {
		in.Tendons = 1
	}
	if s.TendonModulus == 0 {
		in.TendonModulus = measure.New(nbr6118.StrandModulus, measure.Megapascal).MustIn(measure.KilonewtonPerSquareCentimetre)
	}

	if in.Mu == 0 && s.Duct != "" {
		duct, err := nbr6118.ParseDuct(s.Duct)
		if err != nil {
			return in, &losses.ConfigError{Field: "duct", Reason: err.Error()}
		}
		in.Mu = nbr6118.FrictionCoefficient(duct)
	}

	if in.ConcreteModulus, err = s.concreteModulus(); err != nil {
		return in, err
	}

	var area, perimeter float64
	switch {
	case sec != nil:
		in.Section = sec
		props := sec.CalculateProperties()
		area, perimeter = props.Area, props.Perimeter
		if s.TendonHeight != 0 {
			if in.Eccentricity, err = sec.TendonEccentricity(s.TendonHeight); err != nil {
				return in, &losses.ConfigError{Field: "tendon height", Reason: err.Error()}
			}
		}
	default:
		in.Section = losses.FixedSection{Area: s.Area, Inertia: s.Inertia}
		area, perimeter = s.Area, s.Perimeter
	}

	switch {
	case s.SelfWeight != 0:
		in.SelfWeight = kNPerCm(s.SelfWeight)
	case sec != nil:
		in.SelfWeight = sec.SelfWeight()
	default:
		a := measure.New(area, measure.SquareCentimetre).MustIn(measure.SquareMetre)
		in.SelfWeight = kNPerCm(nbr6118.SelfWeight(a, nbr6118.PrestressedUnitWeight))
	}

	// permanent loads beyond self-weight: the quasi-permanent combination
	psi2 := s.Psi2
	if psi2 == 0 {
		psi2 = DefaultPsi2
	}
	extra := nbr6118.QuasiPermanent(psi2).Combine(nbr6118.DistributedLoads{
		Permanent: s.AdditionalPermanent,
		Variable:  s.LiveLoad,
	})
	for _, g := range extra {
		in.AdditionalPermanent = append(in.AdditionalPermanent, kNPerCm(g))
	}

	switch strings.ToLower(strings.TrimSpace(s.Method)) {
	case "", "formula":
		in.TimeDependent = losses.CodeFormula
	case "lump-sum", "lumpsum":
		in.TimeDependent = losses.LumpSum
	default:
		return in, &losses.ConfigError{Field: "method", Reason: fmt.Sprintf("has unrecognized value %q", s.Method)}
	}

	if s.Creep != 0 {
		in.Creep = losses.FixedCreep(s.Creep)
	} else {
		in.Creep = creep.NBR6118()
	}
	in.CreepQuery = losses.CreepQuery{
		Fck:          s.Fck,
		AgeAtLoading: s.AgeAtLoading,
		Humidity:     s.Humidity,
	}
	if in.CreepQuery.AgeAtLoading == 0 {
		in.CreepQuery.AgeAtLoading = DefaultAgeAtLoading
	}
	if in.CreepQuery.Humidity == 0 {
		in.CreepQuery.Humidity = DefaultHumidity
	}
	if perimeter > 0 {
		in.CreepQuery.NotionalThickness = 2 * area / perimeter
	}

	return in, nil
}

// concreteModulus returns Ecs (kN/cm²), given or derived from fck
func (s *Scenario) concreteModulus() (float64, error) {
	if s.ConcreteModulus != 0 {
		return measure.New(s.ConcreteModulus, measure.Gigapascal).MustIn(measure.KilonewtonPerSquareCentimetre), nil
	}
	agg, err := nbr6118.ParseAggregate(s.Aggregate)
	if err != nil {
		return 0, &losses.ConfigError{Field: "aggregate", Reason: err.Error()}
	}
	ecs, err := nbr6118.SecantModulus(s.Fck, agg)
	if err != nil {
		return 0, &losses.ConfigError{Field: "fck", Reason: err.Error()}
	}
	return measure.New(ecs, measure.Megapascal).MustIn(measure.KilonewtonPerSquareCentimetre), nil
}

func kNPerCm(perMetre float64) float64 {
	return measure.New(perMetre, measure.KilonewtonPerMetre).MustIn(measure.KilonewtonPerCentimetre)
}
