package losses

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// frictionlessSlip builds a constant-force tendon with no seating slip on a 10 m span
func frictionlessSlip(tst *testing.T, force, eccentricity float64) *AnchorageSlip {
	p, err := NewSpanProfile(1000, eccentricity, 0, 11)
	if err != nil {
		tst.Fatalf("NewSpanProfile failed: %v", err)
	}
	f, err := NewFriction(p, FrictionInput{JackingForce: force, Anchoring: ActivePassive})
	if err != nil {
		tst.Fatalf("NewFriction failed: %v", err)
	}
	a, err := NewAnchorageSlip(f, SlipInput{TendonModulus: 19500, TendonArea: 17.82})
	if err != nil {
		tst.Fatalf("NewAnchorageSlip failed: %v", err)
	}
	return a
}

func Test_shortening01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("shortening01. axial prestress, three tendons")

	e, err := NewElasticShortening(frictionlessSlip(tst, -301.1, 0), ShorteningInput{
		ConcreteModulus: 19500 / 6.632,
		TendonModulus:   19500,
		TendonArea:      17.82,
		Tendons:         3,
		Section:         SectionProperties{Area: 1000, Inertia: 1e5},
	})
	if err != nil {
		tst.Fatalf("NewElasticShortening failed: %v", err)
	}
	chk.Float64(tst, "αp", 1e-12, e.ModularRatio(), 6.632)
	chk.Float64(tst, "(n-1)/(2n)", 1e-15, e.Factor(), 1.0/3.0)

	for i := 0; i < 11; i++ {
		chk.Float64(tst, "σcp", 1e-12, e.ConcreteStresses().Value(i), -0.3011)
		chk.Float64(tst, "Δσp", 1e-9, e.StressLosses().Value(i), -0.6656317333333333)
		chk.Float64(tst, "ΔP", 1e-6, e.ForceLosses().Value(i), -11.861557488)
		chk.Float64(tst, "P0", 1e-6, e.Forces().Value(i), -289.238442512)
	}
}

func Test_shortening02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("shortening02. single tendon")

	e, err := NewElasticShortening(frictionlessSlip(tst, -301.1, 0), ShorteningInput{
		ConcreteModulus: 3000,
		TendonModulus:   19500,
		TendonArea:      17.82,
		Tendons:         1,
		Section:         SectionProperties{Area: 1000, Inertia: 1e5},
	})
	if err != nil {
		tst.Fatalf("NewElasticShortening failed: %v", err)
	}
	chk.Array(tst, "P0 = Panc", 1e-15, e.Forces().Values(), e.AnchorageSlip().Forces().Values())

	chk.Float64(tst, "n = 1", 1e-15, SequentialFactor(1), 0)
	chk.Float64(tst, "n = 2", 1e-15, SequentialFactor(2), 0.25)
	chk.Float64(tst, "n = 4", 1e-15, SequentialFactor(4), 0.375)
	chk.Float64(tst, "n = 0", 1e-15, SequentialFactor(0), 0)
}

func Test_shortening03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("shortening03. self-weight moment and tension at the tendon")

	e, err := NewElasticShortening(frictionlessSlip(tst, -100, -30), ShorteningInput{
		ConcreteModulus: 3000,
		TendonModulus:   19500,
		TendonArea:      17.82,
		Tendons:         2,
		SelfWeight:      1,
		Section:         SectionProperties{Area: 1000, Inertia: 1e5},
	})
	if err != nil {
		tst.Fatalf("NewElasticShortening failed: %v", err)
	}

	chk.Float64(tst, "Mg at midspan", 1e-9, e.Moments().Value(5), 125000)
	chk.Float64(tst, "Mg at the supports", 1e-15, e.Moments().Value(0), 0)

	// σ = -100·(1/1000 + 900/1e5) + 125000·30/1e5
	chk.Float64(tst, "σcp at midspan", 1e-12, e.ConcreteStresses().Value(5), -1+37.5)
	chk.Float64(tst, "no loss where the tendon sees tension", 1e-15, e.ForceLosses().Value(5), 0)
	chk.Float64(tst, "P0 at midspan", 1e-12, e.Forces().Value(5), -100)

	// anchors sit on the neutral axis
	chk.Float64(tst, "σcp at the anchor", 1e-12, e.ConcreteStresses().Value(0), -0.1)
	chk.Float64(tst, "ΔP at the anchor", 1e-9, e.ForceLosses().Value(0), 6.5*-0.1*0.25*17.82)

	panc := e.AnchorageSlip().Forces().Values()
	for i, p0 := range e.Forces().Values() {
		if p0 < panc[i]-1e-12 {
			tst.Errorf("|P0| exceeds |Panc| at station %d", i)
		}
	}
}

func Test_shortening04(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("shortening04. rejected inputs")

	a := frictionlessSlip(tst, -301.1, 0)
	good := ShorteningInput{
		ConcreteModulus: 3000,
		TendonModulus:   19500,
		TendonArea:      17.82,
		Tendons:         2,
		Section:         SectionProperties{Area: 1000, Inertia: 1e5},
	}
	for name, mutate := range map[string]func(*ShorteningInput){
		"zero concrete modulus": func(in *ShorteningInput) { in.ConcreteModulus = 0 },
		"zero tendon modulus":   func(in *ShorteningInput) { in.TendonModulus = 0 },
		"zero tendon area":      func(in *ShorteningInput) { in.TendonArea = 0 },
		"no tendons":            func(in *ShorteningInput) { in.Tendons = 0 },
		"negative self-weight":  func(in *ShorteningInput) { in.SelfWeight = -1 },
		"zero section area":     func(in *ShorteningInput) { in.Section.Area = 0 },
		"zero section inertia":  func(in *ShorteningInput) { in.Section.Inertia = 0 },
	} {
		in := good
		mutate(&in)
		if _, err := NewElasticShortening(a, in); !errors.Is(err, ErrInvalidConfiguration) {
			tst.Errorf("%s: expected ErrInvalidConfiguration, got %v", name, err)
		}
	}
	if _, err := NewElasticShortening(nil, good); !errors.Is(err, ErrInvalidConfiguration) {
		tst.Errorf("nil stage: expected ErrInvalidConfiguration, got %v", err)
	}
}
