package measure

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_convert01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("convert01. stress, length and line load conversions")

	m, err := New(1, KilonewtonPerSquareCentimetre).In(Megapascal)
	if err != nil {
		tst.Fatalf("conversion failed: %v", err)
	}
	chk.Float64(tst, "1 kN/cm² in MPa", 1e-12, m.Value, 10)

	chk.Float64(tst, "195 GPa in kN/cm²", 1e-9, New(195, Gigapascal).MustIn(KilonewtonPerSquareCentimetre), 19500)
	chk.Float64(tst, "5 mm in cm", 1e-12, New(5, Millimetre).MustIn(Centimetre), 0.5)
	chk.Float64(tst, "25 m in cm", 1e-12, New(25, Metre).MustIn(Centimetre), 2500)
	chk.Float64(tst, "13.211 kN/m in kN/cm", 1e-12, New(13.211, KilonewtonPerMetre).MustIn(KilonewtonPerCentimetre), 0.13211)
	chk.Float64(tst, "1 kN·m in kN·cm", 1e-12, New(1, KilonewtonMetre).MustIn(KilonewtonCentimetre), 100)
	chk.Float64(tst, "180° in rad", 1e-12, New(180, Degree).MustIn(Radian), 3.141592653589793)
}

func Test_convert02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("convert02. incompatible dimensions")

	_, err := New(1, Kilonewton).In(Centimetre)
	if !errors.Is(err, ErrIncompatible) {
		tst.Errorf("expected ErrIncompatible, got %v", err)
	}
	if Kilonewton.Compatible(KilonewtonPerMetre) {
		tst.Errorf("force and line load must not be compatible")
	}
	if !Kilonewton.Same(Kilonewton) || Kilonewton.Same(Newton) {
		tst.Errorf("Same must compare symbol and scale")
	}
}

func Test_series01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("series01. copies, conversion and extremes")

	raw := []float64{-2000, -1950, -1900}
	s := NewSeries(Kilonewton, raw)
	raw[0] = 0
	chk.Float64(tst, "series owns a copy", 1e-15, s.Value(0), -2000)

	v := s.Values()
	v[1] = 0
	chk.Float64(tst, "Values returns a copy", 1e-15, s.Value(1), -1950)

	n, err := s.In(Newton)
	if err != nil {
		tst.Fatalf("conversion failed: %v", err)
	}
	chk.Float64(tst, "kN to N", 1e-9, n.Value(2), -1.9e6)
	if n.Unit().Symbol != "N" {
		tst.Errorf("unit tag not updated: %q", n.Unit().Symbol)
	}

	max, imax := s.MaxAbs()
	chk.Float64(tst, "max |P|", 1e-15, max, 2000)
	if imax != 0 {
		tst.Errorf("station of max |P|: got %d, want 0", imax)
	}
	min, imin := s.MinAbs()
	chk.Float64(tst, "min |P|", 1e-15, min, 1900)
	if imin != 2 {
		tst.Errorf("station of min |P|: got %d, want 2", imin)
	}

	d, err := s.Sub(NewSeries(Kilonewton, []float64{-2000, -2000, -2000}))
	if err != nil {
		tst.Fatalf("sub failed: %v", err)
	}
	chk.Float64(tst, "difference", 1e-12, d.Value(2), 100)

	if _, err := s.Sub(NewSeries(Newton, []float64{0, 0, 0})); !errors.Is(err, ErrIncompatible) {
		tst.Errorf("expected ErrIncompatible for mixed tags, got %v", err)
	}
	if _, err := s.Sub(NewSeries(Kilonewton, []float64{0})); err == nil {
		tst.Errorf("expected length mismatch error")
	}
}
