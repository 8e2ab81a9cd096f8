package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gopt/internal/section"
	"gopkg.in/ini.v1"
)

// LoadFromFile loads a scenario from a JSON or INI file, chosen by extension
func LoadFromFile(path string) (*Scenario, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return loadJSON(path)
	case ".ini", ".cfg", ".conf":
		return LoadINI(path)
	}
	return nil, fmt.Errorf("scenario %s: unsupported file type", path)
}

func loadJSON(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	s.resolvePaths(path)
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &s, nil
}

// LoadINI reads a scenario laid out in the sections
// [beam], [tendon], [concrete], [section], [loads] and [longterm]
func LoadINI(source interface{}) (*Scenario, error) {
	file, err := ini.Load(source)
	if err != nil {
		return nil, err
	}

	beam := file.Section("beam")
	tendon := file.Section("tendon")
	concrete := file.Section("concrete")
	sec := file.Section("section")
	loads := file.Section("loads")
	longterm := file.Section("longterm")

	s := &Scenario{
		Name:         beam.Key("name").String(),
		Span:         beam.Key("span").MustFloat64(0),
		Stations:     beam.Key("stations").MustInt(DefaultStations),
		Eccentricity: tendon.Key("eccentricity").MustFloat64(0),
		TendonHeight: tendon.Key("height").MustFloat64(0),
		AnchorOffset: tendon.Key("anchor_offset").MustFloat64(0),

		Anchoring:     tendon.Key("anchoring").MustString("active-passive"),
		JackingForce:  tendon.Key("jacking_force").MustFloat64(0),
		Mu:            tendon.Key("mu").MustFloat64(0),
		Duct:          tendon.Key("duct").String(),
		Wobble:        tendon.Key("wobble").MustFloat64(0),
		NoWobble:      tendon.Key("no_wobble").MustBool(false),
		Slip:          tendon.Key("slip").MustFloat64(0),
		TendonArea:    tendon.Key("area").MustFloat64(0),
		TendonModulus: tendon.Key("modulus").MustFloat64(0),
		Tendons:       tendon.Key("count").MustInt(1),

		Fck:             concrete.Key("fck").MustFloat64(0),
		Aggregate:       concrete.Key("aggregate").MustString("granite"),
		ConcreteModulus: concrete.Key("modulus").MustFloat64(0),

		Area:        sec.Key("area").MustFloat64(0),
		Inertia:     sec.Key("inertia").MustFloat64(0),
		Perimeter:   sec.Key("perimeter").MustFloat64(0),
		SectionFile: sec.Key("file").String(),

		SelfWeight:          loads.Key("self_weight").MustFloat64(0),
		AdditionalPermanent: loads.Key("permanent").Float64s(","),
		LiveLoad:            loads.Key("live").MustFloat64(0),
		Psi2:                loads.Key("psi2").MustFloat64(DefaultPsi2),

		Method:       longterm.Key("method").MustString("formula"),
		LossFactor:   longterm.Key("loss_factor").MustFloat64(0),
		Creep:        longterm.Key("creep").MustFloat64(0),
		Humidity:     longterm.Key("humidity").MustFloat64(DefaultHumidity),
		AgeAtLoading: longterm.Key("age_at_loading").MustFloat64(DefaultAgeAtLoading),
	}

	if w, h := sec.Key("width").MustFloat64(0), sec.Key("height").MustFloat64(0); w > 0 && h > 0 {
		s.Vertices = section.Rectangle(s.Name, w, h).Vertices
	}

	if path, ok := source.(string); ok {
		s.resolvePaths(path)
		if s.Name == "" {
			s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
	}
	return s, nil
}

// resolvePaths makes a relative section file relative to the scenario file
func (s *Scenario) resolvePaths(path string) {
	if s.SectionFile != "" && !filepath.IsAbs(s.SectionFile) {
		s.SectionFile = filepath.Join(filepath.Dir(path), s.SectionFile)
	}
}
