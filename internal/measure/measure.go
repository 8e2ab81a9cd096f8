package measure

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/unit"
)

// ErrIncompatible is returned when converting between units of different dimensions
var ErrIncompatible = errors.New("incompatible units")

// Unit is a unit tag: a display symbol plus its scale and dimensions in SI
type Unit struct {
	Symbol string
	scale  float64 // SI value of one of this unit
	dims   unit.Dimensions
}

var (
	force    = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: 1, unit.TimeDim: -2}
	pressure = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -1, unit.TimeDim: -2}
	lineLoad = unit.Dimensions{unit.MassDim: 1, unit.TimeDim: -2}
	moment   = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: 2, unit.TimeDim: -2}
	length   = unit.Dimensions{unit.LengthDim: 1}
	area     = unit.Dimensions{unit.LengthDim: 2}
	quartic  = unit.Dimensions{unit.LengthDim: 4}
	perLen   = unit.Dimensions{unit.LengthDim: -1}
	weight   = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -2, unit.TimeDim: -2}
	angle    = unit.Dimensions{unit.AngleDim: 1}
)

// Units used across the library. The loss core works in kN, cm and kN/cm².
var (
	Newton     = Unit{"N", 1, force}
	Kilonewton = Unit{"kN", 1e3, force}

	Millimetre = Unit{"mm", 1e-3, length}
	Centimetre = Unit{"cm", 1e-2, length}
	Metre      = Unit{"m", 1, length}

	SquareMetre       = Unit{"m²", 1, area}
	SquareCentimetre  = Unit{"cm²", 1e-4, area}
	SquareMillimetre  = Unit{"mm²", 1e-6, area}
	QuarticCentimetre = Unit{"cm⁴", 1e-8, quartic}
	QuarticMillimetre = Unit{"mm⁴", 1e-12, quartic}

	Megapascal                    = Unit{"MPa", 1e6, pressure}
	Gigapascal                    = Unit{"GPa", 1e9, pressure}
	KilonewtonPerSquareCentimetre = Unit{"kN/cm²", 1e7, pressure}

	KilonewtonPerMetre      = Unit{"kN/m", 1e3, lineLoad}
	KilonewtonPerCentimetre = Unit{"kN/cm", 1e5, lineLoad}

	KilonewtonMetre      = Unit{"kN·m", 1e3, moment}
	KilonewtonCentimetre = Unit{"kN·cm", 10, moment}

	KilonewtonPerCubicMetre = Unit{"kN/m³", 1e3, weight}

	PerMetre = Unit{"1/m", 1, perLen}

	Radian = Unit{"rad", 1, angle}
	Degree = Unit{"°", math.Pi / 180, angle}

	Dimensionless = Unit{"", 1, unit.Dimensions{}}
	Percent       = Unit{"%", 1e-2, unit.Dimensions{}}
)

// Same reports whether u and v are the same tag.
// Unit holds a map, so it cannot be compared with ==.
func (u Unit) Same(v Unit) bool {
	return u.Symbol == v.Symbol && u.scale == v.scale && unit.DimensionsMatch(u.si(1), v.si(1))
}

// Compatible reports whether values in u can be converted to v
func (u Unit) Compatible(v Unit) bool {
	return unit.DimensionsMatch(u.si(1), v.si(1))
}

func (u Unit) si(v float64) *unit.Unit {
	return unit.New(v*u.scale, u.dims)
}

func (u Unit) String() string {
	return u.Symbol
}

// Measurement is a magnitude paired with its unit tag
type Measurement struct {
	Value float64
	Unit  Unit
}

// New creates a measurement
func New(v float64, u Unit) Measurement {
	return Measurement{Value: v, Unit: u}
}

// SI returns the measurement as a gonum unit in SI base units
func (m Measurement) SI() *unit.Unit {
	return m.Unit.si(m.Value)
}

// In converts the measurement to the unit u
func (m Measurement) In(u Unit) (Measurement, error) {
	if !m.Unit.Compatible(u) {
		return Measurement{}, fmt.Errorf("%w: %s to %s", ErrIncompatible, m.Unit.Symbol, u.Symbol)
	}
	return Measurement{Value: m.SI().Value() / u.scale, Unit: u}, nil
}

// MustIn is like In but panics on incompatible units.
// Only for conversions between package-level units known to match.
func (m Measurement) MustIn(u Unit) float64 {
	c, err := m.In(u)
	if err != nil {
		panic(err)
	}
	return c.Value
}

func (m Measurement) String() string {
	if m.Unit.Symbol == "" {
		return fmt.Sprintf("%g", m.Value)
	}
	return fmt.Sprintf("%g %s", m.Value, m.Unit.Symbol)
}
