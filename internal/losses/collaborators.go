package losses

// SectionProperties holds the gross concrete section scalars the stages need
type SectionProperties struct {
	Area    float64 // Ac (cm²)
	Inertia float64 // Ic about the centroidal axis (cm⁴)
}

// SectionModel supplies the cross-section properties of the beam
type SectionModel interface {
	SectionProperties() (SectionProperties, error)
}

// FixedSection is a SectionModel returning stored values
type FixedSection SectionProperties

// SectionProperties implements SectionModel
func (f FixedSection) SectionProperties() (SectionProperties, error) {
	return SectionProperties(f), nil
}

func (s SectionProperties) validate() error {
	if err := requirePositive("section area", s.Area); err != nil {
		return err
	}
	return requirePositive("section inertia", s.Inertia)
}

// CreepQuery holds the coordinates of a creep coefficient lookup
type CreepQuery struct {
	Fck               float64 // Characteristic concrete strength (MPa)
	AgeAtLoading      float64 // t0 (days)
	Humidity          float64 // Mean relative humidity (%)
	NotionalThickness float64 // 2Ac/u (cm)
}

// CreepModel returns the final creep coefficient φ(t∞, t0)
type CreepModel interface {
	Coefficient(q CreepQuery) (float64, error)
}

// FixedCreep is a CreepModel returning a stored coefficient
type FixedCreep float64

// Coefficient implements CreepModel
func (f FixedCreep) Coefficient(CreepQuery) (float64, error) {
	return float64(f), nil
}
