package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gopt/internal/losses"
	"github.com/alexiusacademia/gopt/internal/nbr6118"
	"github.com/cpmech/gosl/chk"
)

const referenceJSON = `{
	"span": 25,
	"eccentricity": -48,
	"anchoring": "active-passive",
	"jacking_force": -2000,
	"mu": 0.3,
	"wobble": 0.003,
	"slip": 5,
	"tendon_area": 17.82,
	"tendon_modulus": 195,
	"tendons": 4,
	"fck": 35,
	"concrete_modulus": 30,
	"area": 6000,
	"inertia": 7.2e6,
	"self_weight": 15,
	"additional_permanent": [5],
	"creep": 2
}`

const rectangleINI = `
[beam]
name = R50x120
span = 25

[tendon]
height = 12
anchoring = active-active
jacking_force = -2000
duct = metal
slip = 6
area = 17.82
count = 2

[concrete]
fck = 35

[section]
width = 50
height = 120

[loads]
permanent = 3, 2
live = 10

[longterm]
humidity = 75
`

func writeFile(tst *testing.T, name, content string) string {
	path := filepath.Join(tst.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		tst.Fatalf("cannot write fixture: %v", err)
	}
	return path
}

func Test_json01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("json01. unit conversion into the pipeline")

	s, err := LoadFromFile(writeFile(tst, "reference.json", referenceJSON))
	if err != nil {
		tst.Fatalf("LoadFromFile failed: %v", err)
	}
	if s.Name != "reference" {
		tst.Errorf("name from file: got %q", s.Name)
	}

	in, err := s.Input()
	if err != nil {
		tst.Fatalf("Input failed: %v", err)
	}
	chk.Float64(tst, "L (cm)", 1e-9, in.Span, 2500)
	chk.Float64(tst, "a (cm)", 1e-12, in.Slip, 0.5)
	chk.Float64(tst, "Ep (kN/cm²)", 1e-9, in.TendonModulus, 19500)
	chk.Float64(tst, "Ecs (kN/cm²)", 1e-9, in.ConcreteModulus, 3000)
	chk.Float64(tst, "g1 (kN/cm)", 1e-12, in.SelfWeight, 0.15)
	chk.Array(tst, "g2 (kN/cm)", 1e-12, in.AdditionalPermanent, []float64{0.05})
	if in.Stations != DefaultStations {
		tst.Errorf("stations: got %d", in.Stations)
	}

	pl, err := losses.New(in)
	if err != nil {
		tst.Fatalf("losses.New failed: %v", err)
	}
	chk.Float64(tst, "Patr at midspan", 1e-6, pl.Friction().Forces().Value(10), -1882.597212390439)
	chk.Float64(tst, "Pinf at the jack", 1e-6, pl.Final().Value(0), -1532.560159881058)
}

func Test_ini01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("ini01. polygon section, duct table and creep lookup")

	s, err := LoadFromFile(writeFile(tst, "rect.ini", rectangleINI))
	if err != nil {
		tst.Fatalf("LoadFromFile failed: %v", err)
	}
	if s.Name != "R50x120" || s.Tendons != 2 || len(s.Vertices) != 4 {
		tst.Errorf("unexpected scenario: %+v", s)
	}

	in, err := s.Input()
	if err != nil {
		tst.Fatalf("Input failed: %v", err)
	}
	chk.Float64(tst, "e from tendon height", 1e-12, in.Eccentricity, -48)
	chk.Float64(tst, "μ from duct", 1e-15, in.Mu, 0.2)
	chk.Float64(tst, "Ep default", 1e-9, in.TendonModulus, 19500)
	chk.Float64(tst, "g1 from polygon", 1e-12, in.SelfWeight, 0.15)
	// 3 + 2 + 0.4·10 kN/m
	chk.Array(tst, "quasi-permanent loads", 1e-12, in.AdditionalPermanent, []float64{0.03, 0.02, 0.04})
	chk.Float64(tst, "2Ac/u", 1e-9, in.CreepQuery.NotionalThickness, 12000.0/340)

	ecs, _ := nbr6118.SecantModulus(35, nbr6118.Granite)
	chk.Float64(tst, "Ecs from fck", 1e-9, in.ConcreteModulus, ecs/10)

	pl, err := losses.New(in)
	if err != nil {
		tst.Fatalf("losses.New failed: %v", err)
	}
	chk.Float64(tst, "φ from the table", 1e-9, pl.Creep(), 2.4-0.3*(12000.0/340-20)/40)
	if pl.Friction().Input().Anchoring != losses.ActiveActive {
		tst.Errorf("anchoring: got %v", pl.Friction().Input().Anchoring)
	}
}

func Test_ini02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("ini02. wobble switched off")

	s, err := LoadINI([]byte(strings.Replace(rectangleINI, "duct = metal", "duct = metal\nno_wobble = true", 1)))
	if err != nil {
		tst.Fatalf("LoadINI failed: %v", err)
	}
	if !s.NoWobble {
		tst.Fatalf("no_wobble was not read")
	}
	in, err := s.Input()
	if err != nil {
		tst.Fatalf("Input failed: %v", err)
	}
	pl, err := losses.New(in)
	if err != nil {
		tst.Fatalf("losses.New failed: %v", err)
	}
	chk.Float64(tst, "k", 1e-15, pl.Friction().Wobble(), 0)
}

func Test_input01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("input01. rejected scenarios")

	base := func() *Scenario {
		s, err := LoadINI([]byte(rectangleINI))
		if err != nil {
			tst.Fatalf("LoadINI failed: %v", err)
		}
		return s
	}

	for name, mutate := range map[string]func(*Scenario){
		"unknown anchoring":  func(s *Scenario) { s.Anchoring = "both" },
		"unknown duct":       func(s *Scenario) { s.Duct = "plastic" },
		"unknown aggregate":  func(s *Scenario) { s.Aggregate = "pumice" },
		"fck out of range":   func(s *Scenario) { s.Fck = 10 },
		"unknown method":     func(s *Scenario) { s.Method = "guess" },
		"tendon above beam":  func(s *Scenario) { s.TendonHeight = 130 },
		"degenerate polygon": func(s *Scenario) { s.Vertices = s.Vertices[:2] },
	} {
		s := base()
		mutate(s)
		_, err := s.Input()
		if err == nil {
			tst.Errorf("%s: expected an error", name)
			continue
		}
		var ce *losses.ConfigError
		if name != "degenerate polygon" && !errors.As(err, &ce) {
			tst.Errorf("%s: expected *losses.ConfigError, got %T %v", name, err, err)
		}
	}

	if _, err := LoadFromFile("scenario.yaml"); err == nil {
		tst.Errorf("unsupported extension must fail")
	}
}
