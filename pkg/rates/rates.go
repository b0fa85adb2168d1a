// Package rates computes reaction-rate coefficients for the primordial
// hydrogen chemistry network (species H, H+, H-, H2, e-) as closed-form
// fits of the gas temperature. Two-body coefficients are in cm^3 s^-1,
// three-body coefficients in cm^6 s^-1, ready for a kinetics integrator
// with no further unit conversion.
package rates

import (
	"fmt"
	"math"
)

// Slots of the vector returned by TwoBodyRates.
const (
	K1 = iota // H+ + e- -> H + photon (Case B radiative recombination)
	K2        // H + e- -> H- + photon (radiative attachment)
	K3        // H + H- -> H2 + e- (associative detachment)
	K4        // H- + H+ -> H + H (mutual neutralization)
	K5        // H- + e- -> H + 2e- (collisional detachment)
)

// Slots of the vector returned by ThreeBodyRates.
const (
	K31 = iota // H + H + H -> H2 + H
	K32        // H + H + H2 -> H2 + H2
)

// Labels for the output slots, in vector order.
var (
	TwoBodyLabels   = []string{"k1", "k2", "k3", "k4", "k5"}
	ThreeBodyLabels = []string{"k31", "k32"}
)

// DomainError reports a temperature outside the validity domain of the
// fitting formulas. Every fit uses a non-integer power or a logarithm of T,
// so only finite T > 0 is accepted.
type DomainError struct {
	Temp float64 // Offending temperature (K)
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("rates: temperature %g K outside domain, need finite T > 0", e.Temp)
}

func checkTemperature(temp float64) error {
	if math.IsNaN(temp) || math.IsInf(temp, 0) || temp <= 0 {
		return &DomainError{Temp: temp}
	}
	return nil
}
