package losses

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// referenceInput is a 25 m simply supported beam, 50×120 cm, tensioned to 2000 kN
func referenceInput(anchoring Anchoring) Input {
	return Input{
		Span:                2500,
		Eccentricity:        -48,
		Stations:            21,
		Anchoring:           anchoring,
		JackingForce:        -2000,
		Mu:                  0.3,
		Wobble:              0.003,
		Slip:                0.5,
		TendonArea:          17.82,
		TendonModulus:       19500,
		Tendons:             4,
		ConcreteModulus:     3000,
		Section:             FixedSection{Area: 6000, Inertia: 7.2e6},
		SelfWeight:          0.15,
		AdditionalPermanent: []float64{0.05},
		TimeDependent:       CodeFormula,
		Creep:               FixedCreep(2),
	}
}

type unavailableCreep struct{}

func (unavailableCreep) Coefficient(q CreepQuery) (float64, error) {
	return 0, invalid("humidity", "is outside the table, got %g", q.Humidity)
}

func checkOrdering(tst *testing.T, pl *Pipeline) {
	stages := pl.Stages()
	for i := 0; i < pl.Profile().Stations(); i++ {
		for s := 1; s < len(stages); s++ {
			prev := math.Abs(stages[s-1].Forces.Value(i))
			curr := math.Abs(stages[s].Forces.Value(i))
			if curr > prev+1e-9 {
				tst.Errorf("%s adds force at station %d: |%g| > |%g|", stages[s].Name, i, curr, prev)
			}
		}
	}
}

func Test_pipeline01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("pipeline01. tensioned at the start")

	pl, err := New(referenceInput(ActivePassive))
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}

	stages := pl.Stages()
	if len(stages) != 4 {
		tst.Fatalf("stages: got %d, want 4", len(stages))
	}
	for _, c := range []struct {
		station int
		forces  [4]float64
	}{
		{0, [4]float64{-2000, -1748.2893884256732, -1735.6328659343392, -1532.560159881058}},
		{10, [4]float64{-1882.597212390439, -1858.8004687659868, -1853.4419024392544, -1694.6002067950683}},
		{20, [4]float64{-1772.0861320501253, -1772.0861320501253, -1759.257336007915, -1552.9150254137958}},
	} {
		for s, want := range c.forces {
			chk.Float64(tst, stages[s].Symbol, 1e-6, stages[s].Forces.Value(c.station), want)
		}
	}
	chk.Array(tst, "Final", 1e-15, pl.Final().Values(), stages[3].Forces.Values())
	chk.Float64(tst, "φ", 1e-15, pl.Creep(), 2)
	chk.Float64(tst, "Ac", 1e-15, pl.Section().Area, 6000)
	checkOrdering(tst, pl)
}

func Test_pipeline02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("pipeline02. symmetry with both ends tensioned")

	pl, err := New(referenceInput(ActiveActive))
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	if pl.AnchorageSlip().Regime() != OverlappingInfluence {
		tst.Errorf("regime: got %v", pl.AnchorageSlip().Regime())
	}
	for _, st := range pl.Stages() {
		v := st.Forces.Values()
		for i := range v {
			chk.Float64(tst, st.Symbol+" symmetric", 1e-9, v[i], v[len(v)-1-i])
		}
	}
	chk.Float64(tst, "Pinf at the anchors", 1e-6, pl.Final().Value(0), -1338.8207142661772)
	chk.Float64(tst, "Pinf at midspan", 1e-6, pl.Final().Value(10), -1690.7057451193866)
	checkOrdering(tst, pl)

	pl, err = New(referenceInput(PassiveActive))
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	chk.Float64(tst, "passive-active mirrors the start", 1e-6, pl.Final().Value(20), -1532.560159881058)
	checkOrdering(tst, pl)
}

func Test_pipeline03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("pipeline03. summary")

	pl, err := New(referenceInput(ActivePassive))
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	s := pl.Summary()
	chk.Float64(tst, "jacking force", 1e-15, s.JackingForce, -2000)
	chk.Float64(tst, "β", 1e-9, s.Beta, 0.09116554717994986)
	chk.Float64(tst, "xr", 1e-6, s.InfluenceLength, 1380.5139077237156)
	chk.Float64(tst, "αp", 1e-12, s.ModularRatio, 6.5)
	if s.Regime != ShortInfluence {
		tst.Errorf("regime: got %v", s.Regime)
	}
	if len(s.Points) != 3 {
		tst.Fatalf("points: got %d, want 3", len(s.Points))
	}
	for i, want := range []struct {
		label   string
		station int
		x       float64
	}{
		{"Start", 0, 0},
		{"Midspan", 10, 1250},
		{"End", 20, 2500},
	} {
		p := s.Points[i]
		if p.Label != want.label || p.Station != want.station {
			tst.Errorf("point %d: got %s/%d, want %s/%d", i, p.Label, p.Station, want.label, want.station)
		}
		chk.Float64(tst, "x", 1e-12, p.X, want.x)
		if len(p.Forces) != 4 {
			tst.Errorf("point %d: got %d forces", i, len(p.Forces))
		}
	}
	chk.Float64(tst, "total loss at the jack", 1e-6, s.Points[0].LossPercent, 100*(2000-1532.560159881058)/2000)
}

func Test_pipeline04(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("pipeline04. lump sum and rejected inputs")

	in := referenceInput(ActivePassive)
	in.TimeDependent = LumpSum
	in.LossFactor = 0.12
	in.Creep = nil
	pl, err := New(in)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	chk.Float64(tst, "Pinf", 1e-9, pl.Final().Value(0), 0.88*pl.ElasticShortening().Forces().Value(0))
	chk.Float64(tst, "no creep lookup", 1e-15, pl.Creep(), 0)

	for name, mutate := range map[string]func(*Input){
		"no section":        func(in *Input) { in.Section = nil },
		"no creep model":    func(in *Input) { in.Creep = nil },
		"bad anchoring":     func(in *Input) { in.Anchoring = 0 },
		"bad section":       func(in *Input) { in.Section = FixedSection{Area: 6000} },
		"creep unavailable": func(in *Input) { in.Creep = unavailableCreep{} },
		"one station":       func(in *Input) { in.Stations = 1 },
		"no tendons":        func(in *Input) { in.Tendons = 0 },
	} {
		in := referenceInput(ActivePassive)
		mutate(&in)
		if _, err := New(in); !errors.Is(err, ErrInvalidConfiguration) {
			tst.Errorf("%s: expected ErrInvalidConfiguration, got %v", name, err)
		}
	}

	in = referenceInput(ActivePassive)
	in.Mu, in.Wobble = 0, 0
	if _, err := New(in); !errors.Is(err, ErrNumericDegenerate) {
		tst.Errorf("frictionless slip: expected ErrNumericDegenerate, got %v", err)
	}
}

func Test_pipeline05(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("pipeline05. tension entered as positive")

	in := referenceInput(ActivePassive)
	in.JackingForce = 2000
	pos, err := New(in)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	checkOrdering(tst, pos)

	neg, err := New(referenceInput(ActivePassive))
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}

	mid := pos.Profile().MidspanStation()
	chk.Float64(tst, "P0 at midspan", 1e-6, pos.ElasticShortening().Forces().Value(mid), 1853.4419024392544)
	chk.Float64(tst, "Pinf at midspan", 1e-6, pos.Final().Value(mid), 1694.6002067950683)

	ps, ns := pos.Stages(), neg.Stages()
	for s := range ps {
		for i := 0; i < pos.Profile().Stations(); i++ {
			chk.Float64(tst, ps[s].Name, 1e-9, ps[s].Forces.Value(i), -ns[s].Forces.Value(i))
		}
	}
	for i := 0; i < pos.Profile().Stations(); i++ {
		fc := pos.ElasticShortening().ConcreteStresses().Value(i)
		chk.Float64(tst, "σc does not depend on the sign", 1e-12, fc, neg.ElasticShortening().ConcreteStresses().Value(i))
		if pos.ElasticShortening().StressLosses().Value(i) < 0 {
			tst.Errorf("shortening must not add stress at station %d", i)
		}
	}
	chk.Float64(tst, "loss percent at midspan", 1e-6, pos.Summary().Points[1].LossPercent, 100*(2000-1694.6002067950683)/2000)
	chk.Float64(tst, "loss percent mirrors", 1e-9, pos.Summary().Points[1].LossPercent, neg.Summary().Points[1].LossPercent)
}
