package losses

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/gopt/internal/measure"
	"github.com/cpmech/gosl/chk"
)

func referenceProfile(tst *testing.T) *SpanProfile {
	p, err := NewSpanProfile(2500, -48, 0, 21)
	if err != nil {
		tst.Fatalf("NewSpanProfile failed: %v", err)
	}
	return p
}

func Test_friction01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("friction01. tensioned at the start")

	f, err := NewFriction(referenceProfile(tst), FrictionInput{
		JackingForce: -2000,
		Mu:           0.3,
		Wobble:       0.003,
		Anchoring:    ActivePassive,
	})
	if err != nil {
		tst.Fatalf("NewFriction failed: %v", err)
	}

	P := f.Forces().Values()
	chk.Float64(tst, "Patr at the jack", 1e-12, P[0], -2000)
	chk.Float64(tst, "Patr at midspan", 1e-6, P[10], -1882.597212390439)
	chk.Float64(tst, "Patr at the passive end", 1e-6, P[20], -1772.0861320501253)
	chk.Float64(tst, "β", 1e-9, f.Beta(), 0.09116554717994986)
	chk.Float64(tst, "β from the end forces", 1e-9, f.Beta(), (2000-1772.0861320501253)/2500)

	for i := 1; i < len(P); i++ {
		if math.Abs(P[i]) > math.Abs(P[i-1]) {
			tst.Errorf("|Patr| must not grow away from the jack: station %d", i)
		}
		if P[i] >= 0 {
			tst.Errorf("Patr must keep the sign of the jacking force: station %d", i)
		}
	}
	if f.Forces().Unit().Symbol != "kN" {
		tst.Errorf("force unit: got %q", f.Forces().Unit().Symbol)
	}
	chk.Float64(tst, "β in kN/m", 1e-9, f.LossRate().MustIn(measure.KilonewtonPerMetre), 9.116554717994986)
}

func Test_friction02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("friction02. default wobble coefficient")

	f, err := NewFriction(referenceProfile(tst), FrictionInput{
		JackingForce: -2000,
		Mu:           0.3,
		Anchoring:    ActivePassive,
	})
	if err != nil {
		tst.Fatalf("NewFriction failed: %v", err)
	}
	chk.Float64(tst, "k = 0.01·μ", 1e-15, f.Wobble(), 0.003)
	chk.Float64(tst, "Patr at midspan", 1e-6, f.Forces().Value(10), -1882.597212390439)
}

func Test_friction03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("friction03. tensioned at the far end and at both ends")

	p := referenceProfile(tst)
	in := FrictionInput{JackingForce: -2000, Mu: 0.3, Wobble: 0.003}

	in.Anchoring = PassiveActive
	pa, err := NewFriction(p, in)
	if err != nil {
		tst.Fatalf("NewFriction failed: %v", err)
	}
	in.Anchoring = ActivePassive
	ap, err := NewFriction(p, in)
	if err != nil {
		tst.Fatalf("NewFriction failed: %v", err)
	}
	for i := 0; i < 21; i++ {
		chk.Float64(tst, "passive-active mirrors active-passive", 1e-9, pa.Forces().Value(i), ap.Forces().Value(20-i))
	}
	chk.Float64(tst, "same β", 1e-12, pa.Beta(), ap.Beta())

	in.Anchoring = ActiveActive
	aa, err := NewFriction(p, in)
	if err != nil {
		tst.Fatalf("NewFriction failed: %v", err)
	}
	P := aa.Forces().Values()
	chk.Float64(tst, "Patr at midspan", 1e-6, P[10], -1882.597212390439)
	chk.Float64(tst, "Patr at start, governed by the far jack", 1e-6, P[0], -1772.0861320501253)
	chk.Float64(tst, "Patr at end, governed by the near jack", 1e-6, P[20], -1772.0861320501253)
	// secant of |Patr| from station 0 to midspan: (1882.597 - 1772.086)/1250
	chk.Float64(tst, "β over half the span", 1e-9, aa.Beta(), 0.08840886427225086)
	chk.Float64(tst, "β from the stage profile", 1e-12, aa.Beta(), (math.Abs(P[10])-math.Abs(P[0]))/1250)
	for i := 0; i < 21; i++ {
		chk.Float64(tst, "symmetric", 1e-9, P[i], P[20-i])
		if math.Abs(P[i]) > math.Abs(ap.Forces().Value(i))+1e-9 {
			tst.Errorf("both-end tensioning cannot lose less than one end: station %d", i)
		}
	}
}

func Test_friction04(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("friction04. tension positive convention and no friction")

	p := referenceProfile(tst)
	f, err := NewFriction(p, FrictionInput{JackingForce: 2000, Mu: 0.3, Wobble: 0.003, Anchoring: ActivePassive})
	if err != nil {
		tst.Fatalf("NewFriction failed: %v", err)
	}
	chk.Float64(tst, "positive force", 1e-6, f.Forces().Value(10), 1882.597212390439)
	chk.Float64(tst, "β is a magnitude", 1e-9, f.Beta(), 0.09116554717994986)

	f, err = NewFriction(p, FrictionInput{JackingForce: -2000, Anchoring: ActivePassive})
	if err != nil {
		tst.Fatalf("NewFriction failed: %v", err)
	}
	for i := 0; i < 21; i++ {
		chk.Float64(tst, "no friction", 1e-12, f.Forces().Value(i), -2000)
	}
	chk.Float64(tst, "β without friction", 1e-15, f.Beta(), 0)
}

func Test_friction05(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("friction05. rejected inputs")

	p := referenceProfile(tst)
	for _, c := range []struct {
		name string
		in   FrictionInput
	}{
		{"zero jacking force", FrictionInput{JackingForce: 0, Mu: 0.3, Anchoring: ActivePassive}},
		{"NaN jacking force", FrictionInput{JackingForce: math.NaN(), Mu: 0.3, Anchoring: ActivePassive}},
		{"negative μ", FrictionInput{JackingForce: -2000, Mu: -0.1, Anchoring: ActivePassive}},
		{"negative k", FrictionInput{JackingForce: -2000, Mu: 0.3, Wobble: -1, Anchoring: ActivePassive}},
		{"unset anchoring", FrictionInput{JackingForce: -2000, Mu: 0.3}},
	} {
		if _, err := NewFriction(p, c.in); !errors.Is(err, ErrInvalidConfiguration) {
			tst.Errorf("%s: expected ErrInvalidConfiguration, got %v", c.name, err)
		}
	}
	if _, err := NewFriction(nil, FrictionInput{JackingForce: -2000, Anchoring: ActivePassive}); !errors.Is(err, ErrInvalidConfiguration) {
		tst.Errorf("nil profile: expected ErrInvalidConfiguration, got %v", err)
	}
}

func Test_friction06(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("friction06. curvature friction only")

	p := referenceProfile(tst)
	f, err := NewFriction(p, FrictionInput{
		JackingForce: -2000,
		Mu:           0.3,
		NoWobble:     true,
		Anchoring:    ActivePassive,
	})
	if err != nil {
		tst.Fatalf("NewFriction failed: %v", err)
	}
	chk.Float64(tst, "k", 1e-15, f.Wobble(), 0)
	chk.Float64(tst, "Patr at the passive end", 1e-9, f.Forces().Value(20),
		-2000*math.Exp(-0.3*math.Abs(p.deviationFrom(true, 20))))

	defaulted, err := NewFriction(p, FrictionInput{JackingForce: -2000, Mu: 0.3, Anchoring: ActivePassive})
	if err != nil {
		tst.Fatalf("NewFriction failed: %v", err)
	}
	chk.Float64(tst, "default k", 1e-15, defaulted.Wobble(), DefaultWobbleFactor*0.3)
	if math.Abs(defaulted.Forces().Value(20)) >= math.Abs(f.Forces().Value(20)) {
		tst.Errorf("the default wobble must add loss at the passive end")
	}

	_, err = NewFriction(p, FrictionInput{JackingForce: -2000, Mu: 0.3, Wobble: 0.003, NoWobble: true, Anchoring: ActivePassive})
	if !errors.Is(err, ErrInvalidConfiguration) {
		tst.Errorf("wobble with NoWobble: expected ErrInvalidConfiguration, got %v", err)
	}
}
