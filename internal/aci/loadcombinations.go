package aci

// LoadCombination represents an ACI 318 strength design load combination
// Based on ACI 318-14 Section 5.3.1
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// ACI 318-14 Table 5.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// SimplifiedCombinations for gravity-only column loading
var SimplifiedCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// LoadEffect is an unfactored axial force and bending moment pair from one
// load type, in the units the interaction diagram is reported in (t, t-m)
type LoadEffect struct {
	P float64 // Axial force (t)
	M float64 // Bending moment (t-m)
}

// LoadEffects holds unfactored effects from each load type
type LoadEffects struct {
	Dead       LoadEffect
	Live       LoadEffect
	Roof       LoadEffect
	Wind       LoadEffect
	Earthquake LoadEffect
	Rain       LoadEffect
}

// IsZero reports whether no load effect was provided
func (le LoadEffects) IsZero() bool {
	all := []LoadEffect{le.Dead, le.Live, le.Roof, le.Wind, le.Earthquake, le.Rain}
	for _, e := range all {
		if e.P != 0 || e.M != 0 {
			return false
		}
	}
	return true
}

// Factored calculates the factored (Pu, Mu) pair for a given load combination
func (lc LoadCombination) Factored(effects LoadEffects) (pu, mu float64) {
	pu = lc.Dead*effects.Dead.P +
		lc.Live*effects.Live.P +
		lc.Roof*effects.Roof.P +
		lc.Wind*effects.Wind.P +
		lc.Earthquake*effects.Earthquake.P +
		lc.Rain*effects.Rain.P
	mu = lc.Dead*effects.Dead.M +
		lc.Live*effects.Live.M +
		lc.Roof*effects.Roof.M +
		lc.Wind*effects.Wind.M +
		lc.Earthquake*effects.Earthquake.M +
		lc.Rain*effects.Rain.M
	return pu, mu
}

// Governing finds the combination with the largest factored moment together
// with its companion axial force. Columns are checked pair-wise against the
// interaction diagram, so the companion Pu matters as much as Mu itself.
func Governing(effects LoadEffects, combinations []LoadCombination) (pu, mu float64, governing LoadCombination) {
	for i, combo := range combinations {
		p, m := combo.Factored(effects)
		if i == 0 || m > mu {
			pu = p
			mu = m
			governing = combo
		}
	}
	return pu, mu, governing
}
