package measure

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Series is an ordered sequence of magnitudes sharing one unit tag, indexed by station
type Series struct {
	values []float64
	unit   Unit
}

// NewSeries creates a series holding a copy of values
func NewSeries(u Unit, values []float64) Series {
	v := make([]float64, len(values))
	copy(v, values)
	return Series{values: v, unit: u}
}

// Len returns the number of stations
func (s Series) Len() int {
	return len(s.values)
}

// Unit returns the unit tag of the series
func (s Series) Unit() Unit {
	return s.unit
}

// At returns the measurement at station i
func (s Series) At(i int) Measurement {
	return Measurement{Value: s.values[i], Unit: s.unit}
}

// Value returns the magnitude at station i
func (s Series) Value(i int) float64 {
	return s.values[i]
}

// Values returns a copy of the magnitudes
func (s Series) Values() []float64 {
	v := make([]float64, len(s.values))
	copy(v, s.values)
	return v
}

// In converts every value of the series to u
func (s Series) In(u Unit) (Series, error) {
	if !s.unit.Compatible(u) {
		return Series{}, fmt.Errorf("%w: %s to %s", ErrIncompatible, s.unit.Symbol, u.Symbol)
	}
	out := s.Values()
	floats.Scale(s.unit.scale/u.scale, out)
	return Series{values: out, unit: u}, nil
}

// MaxAbs returns the largest magnitude in the series and its station
func (s Series) MaxAbs() (float64, int) {
	if len(s.values) == 0 {
		return 0, -1
	}
	abs := make([]float64, len(s.values))
	for i, v := range s.values {
		abs[i] = math.Abs(v)
	}
	idx := floats.MaxIdx(abs)
	return abs[idx], idx
}

// MinAbs returns the smallest magnitude in the series and its station
func (s Series) MinAbs() (float64, int) {
	if len(s.values) == 0 {
		return 0, -1
	}
	abs := make([]float64, len(s.values))
	for i, v := range s.values {
		abs[i] = math.Abs(v)
	}
	idx := floats.MinIdx(abs)
	return abs[idx], idx
}

// Sub returns s - t station by station. Both series must share the unit tag and length.
func (s Series) Sub(t Series) (Series, error) {
	if !s.unit.Same(t.unit) {
		return Series{}, fmt.Errorf("%w: %s and %s", ErrIncompatible, s.unit.Symbol, t.unit.Symbol)
	}
	if len(s.values) != len(t.values) {
		return Series{}, fmt.Errorf("series length mismatch: %d and %d", len(s.values), len(t.values))
	}
	out := make([]float64, len(s.values))
	floats.SubTo(out, s.values, t.values)
	return Series{values: out, unit: s.unit}, nil
}
