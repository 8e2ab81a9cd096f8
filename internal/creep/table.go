package creep

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gopt/internal/losses"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/interp"
)

// Group holds the final creep coefficients of one strength range, indexed
// [humidity][notional thickness][age at loading]
type Group struct {
	Name   string
	MaxFck float64 // MPa, inclusive
	Values [][][]float64
}

// Table is a creep coefficient lookup over relative humidity, notional
// thickness and age at loading, one grid per strength group
type Table struct {
	Humidities  []float64 // %
	Thicknesses []float64 // 2Ac/u (cm)
	Ages        []float64 // t0 (days)
	Groups      []Group   // ascending MaxFck
	MinFck      float64   // MPa
}

// NBR6118 returns the φ(t∞, t0) grid of NBR 6118 Table 8.2
func NBR6118() *Table {
	return &Table{
		Humidities:  []float64{40, 55, 75, 90},
		Thicknesses: []float64{20, 60},
		Ages:        []float64{5, 30, 60},
		MinFck:      20,
		Groups: []Group{
			{
				Name:   "C20 to C45",
				MaxFck: 45,
				Values: [][][]float64{
					{{4.6, 3.8, 3.3}, {3.8, 3.3, 3.0}},
					{{3.9, 3.2, 2.8}, {3.3, 2.9, 2.6}},
					{{2.8, 2.4, 2.0}, {2.4, 2.1, 1.9}},
					{{2.0, 1.6, 1.4}, {1.9, 1.6, 1.5}},
				},
			},
			{
				Name:   "C50 to C90",
				MaxFck: 90,
				Values: [][][]float64{
					{{2.7, 2.0, 1.7}, {2.4, 1.8, 1.6}},
					{{2.4, 1.7, 1.5}, {2.1, 1.6, 1.4}},
					{{1.9, 1.4, 1.2}, {1.8, 1.3, 1.2}},
					{{1.6, 1.2, 1.0}, {1.5, 1.1, 1.0}},
				},
			},
		},
	}
}

// Validate checks that the axes increase strictly and every grid matches them
func (t *Table) Validate() error {
	for _, axis := range []struct {
		name   string
		values []float64
	}{
		{"humidity axis", t.Humidities},
		{"thickness axis", t.Thicknesses},
		{"age axis", t.Ages},
	} {
		if len(axis.values) < 2 {
			return &losses.ConfigError{Field: "creep table " + axis.name, Reason: "needs at least 2 points"}
		}
		for i := 1; i < len(axis.values); i++ {
			if axis.values[i] <= axis.values[i-1] {
				return &losses.ConfigError{Field: "creep table " + axis.name, Reason: "must increase strictly"}
			}
		}
	}
	if len(t.Groups) == 0 {
		return &losses.ConfigError{Field: "creep table", Reason: "has no strength group"}
	}
	prev := t.MinFck
	for _, g := range t.Groups {
		if g.MaxFck <= prev {
			return &losses.ConfigError{Field: "creep table group " + g.Name, Reason: "strength ranges must increase"}
		}
		prev = g.MaxFck
		if len(g.Values) != len(t.Humidities) {
			return &losses.ConfigError{Field: "creep table group " + g.Name, Reason: "does not match the humidity axis"}
		}
		for _, row := range g.Values {
			if len(row) != len(t.Thicknesses) {
				return &losses.ConfigError{Field: "creep table group " + g.Name, Reason: "does not match the thickness axis"}
			}
			for _, col := range row {
				if len(col) != len(t.Ages) {
					return &losses.ConfigError{Field: "creep table group " + g.Name, Reason: "does not match the age axis"}
				}
			}
		}
	}
	return nil
}

// Group returns the strength group covering fck (MPa)
func (t *Table) Group(fck float64) (*Group, error) {
	if math.IsNaN(fck) || fck < t.MinFck {
		return nil, &losses.ConfigError{Field: "fck", Reason: fmt.Sprintf("%g MPa is below the table range", fck)}
	}
	for i := range t.Groups {
		if fck <= t.Groups[i].MaxFck {
			return &t.Groups[i], nil
		}
	}
	return nil, &losses.ConfigError{Field: "fck", Reason: fmt.Sprintf("%g MPa is above the table range", fck)}
}

// Coefficient implements losses.CreepModel. Values between grid points are
// interpolated linearly along each axis, values outside are extrapolated from
// the outermost interval.
func (t *Table) Coefficient(q losses.CreepQuery) (float64, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	switch {
	case !(q.Humidity > 0 && q.Humidity <= 100):
		return 0, &losses.ConfigError{Field: "humidity", Reason: fmt.Sprintf("must lie in (0, 100], got %g", q.Humidity)}
	case !(q.NotionalThickness > 0) || math.IsInf(q.NotionalThickness, 0):
		return 0, &losses.ConfigError{Field: "notional thickness", Reason: fmt.Sprintf("must be positive, got %g", q.NotionalThickness)}
	case !(q.AgeAtLoading > 0) || math.IsInf(q.AgeAtLoading, 0):
		return 0, &losses.ConfigError{Field: "age at loading", Reason: fmt.Sprintf("must be positive, got %g", q.AgeAtLoading)}
	}
	g, err := t.Group(q.Fck)
	if err != nil {
		return 0, err
	}

	// age, then thickness, then humidity
	byHumidity := make([]float64, len(t.Humidities))
	for i, row := range g.Values {
		byThickness := make([]float64, len(t.Thicknesses))
		for j, col := range row {
			if byThickness[j], err = linear(t.Ages, col, q.AgeAtLoading); err != nil {
				return 0, err
			}
		}
		if byHumidity[i], err = linear(t.Thicknesses, byThickness, q.NotionalThickness); err != nil {
			return 0, err
		}
	}
	phi, err := linear(t.Humidities, byHumidity, q.Humidity)
	if err != nil {
		return 0, err
	}
	if phi < 0 {
		return 0, &losses.ConfigError{Field: "creep query", Reason: fmt.Sprintf("lies too far outside the table (φ = %.3f)", phi)}
	}

	log.WithFields(log.Fields{
		"group":     g.Name,
		"humidity":  q.Humidity,
		"thickness": q.NotionalThickness,
		"age":       q.AgeAtLoading,
		"phi":       phi,
	}).Debug("creep coefficient")

	return phi, nil
}

// linear evaluates the piecewise linear fit of (xs, ys) at x, extending the
// first and last segments beyond the data
func linear(xs, ys []float64, x float64) (float64, error) {
	n := len(xs)
	switch {
	case x < xs[0]:
		return ys[0] + (x-xs[0])*(ys[1]-ys[0])/(xs[1]-xs[0]), nil
	case x > xs[n-1]:
		return ys[n-1] + (x-xs[n-1])*(ys[n-1]-ys[n-2])/(xs[n-1]-xs[n-2]), nil
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return 0, err
	}
	return pl.Predict(x), nil
}
