package nbr6118

import (
	"fmt"
	"math"
	"strings"
)

// NBR 6118:2014 Material Constants

const (
	// Prestressing steel (Section 8.4.4)
	StrandModulus = 195000.0 // Ep for strands (MPa)
	WireModulus   = 200000.0 // Ep for wires (MPa)

	// Unintended curvature coefficient as a fraction of μ (Section 9.6.3.3.2.2)
	WobbleFactor = 0.01 // k = 0.01μ per metre

	// Specific weight (Section 8.2.2)
	ConcreteUnitWeight    = 24.0 // plain concrete (kN/m³)
	PrestressedUnitWeight = 25.0 // reinforced or prestressed concrete (kN/m³)

	// Strength classes covered by Section 8.2.8
	FckMin = 20.0 // MPa
	FckMax = 90.0 // MPa
)

// Duct is the contact condition between tendon and sheath
type Duct int

const (
	// NoSheath is a tendon bearing directly on concrete
	NoSheath Duct = iota + 1
	// IndentedInMetal is indented bars or wires in a metal sheath
	IndentedInMetal
	// StrandInMetal is smooth wires or strands in a metal sheath
	StrandInMetal
	// StrandInLubricatedMetal is smooth wires or strands in a lubricated metal sheath
	StrandInLubricatedMetal
	// GreasedInPolypropylene is greased strand in a lubricated polypropylene sheath
	GreasedInPolypropylene
)

// Friction coefficients μ by duct (Section 9.6.3.3.2.2)
var frictionCoefficients = map[Duct]float64{
	NoSheath:                0.50,
	IndentedInMetal:         0.30,
	StrandInMetal:           0.20,
	StrandInLubricatedMetal: 0.10,
	GreasedInPolypropylene:  0.05,
}

var ductNames = map[string]Duct{
	"none":          NoSheath,
	"indented":      IndentedInMetal,
	"metal":         StrandInMetal,
	"lubricated":    StrandInLubricatedMetal,
	"polypropylene": GreasedInPolypropylene,
}

// ParseDuct reads one of "none", "indented", "metal", "lubricated" or "polypropylene"
func ParseDuct(name string) (Duct, error) {
	d, ok := ductNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown duct %q", name)
	}
	return d, nil
}

func (d Duct) String() string {
	for name, v := range ductNames {
		if v == d {
			return name
		}
	}
	return "unknown"
}

// FrictionCoefficient returns μ for the duct, or zero for an unknown duct
func FrictionCoefficient(d Duct) float64 {
	return frictionCoefficients[d]
}

// Wobble returns the default unintended curvature coefficient k (1/m) for μ
func Wobble(mu float64) float64 {
	return WobbleFactor * mu
}

// Aggregate is the coarse aggregate type, which scales the initial modulus
type Aggregate int

const (
	Granite Aggregate = iota
	Basalt
	Limestone
	Sandstone
)

// AlphaE returns the aggregate factor αE (Section 8.2.8)
func (a Aggregate) AlphaE() float64 {
	switch a {
	case Basalt:
		return 1.2
	case Limestone:
		return 0.9
	case Sandstone:
		return 0.7
	}
	return 1.0
}

// ParseAggregate reads "granite", "basalt", "limestone" or "sandstone"
func ParseAggregate(name string) (Aggregate, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "granite", "gneiss":
		return Granite, nil
	case "basalt", "diabase":
		return Basalt, nil
	case "limestone":
		return Limestone, nil
	case "sandstone":
		return Sandstone, nil
	}
	return 0, fmt.Errorf("unknown aggregate %q", name)
}

// InitialModulus calculates the initial tangent modulus Eci (MPa)
// NBR 6118 Section 8.2.8
func InitialModulus(fck float64, agg Aggregate) (float64, error) {
	if fck < FckMin || fck > FckMax {
		return 0, fmt.Errorf("fck = %g MPa outside %g..%g MPa", fck, FckMin, FckMax)
	}
	if fck <= 50 {
		// Eci = αE·5600·√fck
		return agg.AlphaE() * 5600 * math.Sqrt(fck), nil
	}
	// Eci = 21.5·10³·αE·(fck/10 + 1.25)^(1/3)
	return 21.5e3 * agg.AlphaE() * math.Cbrt(fck/10+1.25), nil
}

// SecantModulus calculates Ecs = αi·Eci with αi = 0.8 + 0.2·fck/80 ≤ 1.0 (MPa)
func SecantModulus(fck float64, agg Aggregate) (float64, error) {
	eci, err := InitialModulus(fck, agg)
	if err != nil {
		return 0, err
	}
	alphaI := math.Min(0.8+0.2*fck/80, 1.0)
	return alphaI * eci, nil
}

// SelfWeight returns the distributed self-weight (kN/m) of a section of the given area (m²)
func SelfWeight(area, unitWeight float64) float64 {
	return area * unitWeight
}
