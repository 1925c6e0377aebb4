package aci

import "math"

// ACI 318-14 Material Constants (MKS units: kgf, cm)

const (
	// Beta1 factors for equivalent rectangular stress block
	// Section 22.2.2.4.3
	Beta1Max = 0.85 // for f'c <= 280 kgf/cm²
	Beta1Min = 0.65 // minimum value

	// Ultimate concrete compressive strain (Section 22.2.2.1)
	EpsilonCU = 0.003

	// Modulus of elasticity for reinforcing steel (Section 20.2.2.2)
	Es = 2.0e6 // kgf/cm²
)

// Beta1 calculates the factor for equivalent rectangular stress block
// ACI 318-14 Section 22.2.2.4.3 (MKS)
func Beta1(fc float64) float64 {
	if fc <= 280 {
		return Beta1Max
	}
	// β1 = 0.85 - 0.05(f'c - 280)/70 for f'c > 280 kgf/cm²
	beta1 := Beta1Max - 0.05*(fc-280)/70
	return math.Max(beta1, Beta1Min)
}

// YieldStrain returns the steel yield strain for a given yield strength
func YieldStrain(fy float64) float64 {
	return fy / Es
}
