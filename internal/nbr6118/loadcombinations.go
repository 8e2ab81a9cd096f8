package nbr6118

// LoadCombination represents a serviceability combination of distributed loads
// Based on NBR 6118 Section 11.8.3 - Service Combinations
type LoadCombination struct {
	ID          string
	Description string
	// Factors for each load group
	Permanent float64 // g - self-weight and superimposed permanent loads
	Variable  float64 // ψ applied to the main variable load q
}

// ServiceCombinations for a single variable action, ψ1 = 0.6 and ψ2 = 0.4
// (Table 11.2, public buildings with high concentrations of people)
var ServiceCombinations = []LoadCombination{
	{
		ID:          "QP",
		Description: "quasi-permanent: g + ψ2·q",
		Permanent:   1.0,
		Variable:    0.4,
	},
	{
		ID:          "FR",
		Description: "frequent: g + ψ1·q",
		Permanent:   1.0,
		Variable:    0.6,
	},
	{
		ID:          "RA",
		Description: "rare: g + q",
		Permanent:   1.0,
		Variable:    1.0,
	},
}

// QuasiPermanent returns the quasi-permanent combination for a given ψ2
func QuasiPermanent(psi2 float64) LoadCombination {
	return LoadCombination{
		ID:          "QP",
		Description: "quasi-permanent: g + ψ2·q",
		Permanent:   1.0,
		Variable:    psi2,
	}
}

// DistributedLoads holds unfactored distributed loads, all in the same unit
type DistributedLoads struct {
	Permanent []float64 // g1 (self-weight), g2, ...
	Variable  float64   // q, main variable action
}

// Combine returns the combined loads as a list, permanent loads first and the
// factored variable load last when it is non-zero
func (lc LoadCombination) Combine(loads DistributedLoads) []float64 {
	out := make([]float64, 0, len(loads.Permanent)+1)
	for _, g := range loads.Permanent {
		out = append(out, lc.Permanent*g)
	}
	if q := lc.Variable * loads.Variable; q != 0 {
		out = append(out, q)
	}
	return out
}

// Total returns the combined distributed load
func (lc LoadCombination) Total(loads DistributedLoads) float64 {
	var w float64
	for _, v := range lc.Combine(loads) {
		w += v
	}
	return w
}

// GoverningLoad finds the largest combined load from all combinations
func GoverningLoad(loads DistributedLoads, combinations []LoadCombination) (float64, LoadCombination) {
	var maxLoad float64
	var governing LoadCombination

	for _, combo := range combinations {
		w := combo.Total(loads)
		if w > maxLoad {
			maxLoad = w
			governing = combo
		}
	}

	return maxLoad, governing
}
