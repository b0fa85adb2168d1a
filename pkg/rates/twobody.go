package rates

import (
	"math"

	"primchem/internal/consts"
)

// Coefficients of the log-space polynomial fit for collisional detachment
// of H- by electrons (Abel et al. 1997 form), constant term first.
var detachmentCoeff = [...]float64{
	-18.01849334,
	2.36085220,
	-0.282744300,
	1.62331664e-2,
	-3.36501203e-2,
	1.17832978e-2,
	-1.65619470e-3,
	1.06827520e-4,
	-2.63128581e-6,
}

// TwoBodyRates returns the five two-body rate coefficients
// [k1 k2 k3 k4 k5] in cm^3 s^-1 at gas temperature temp (K):
//
//	k1: H+ + e- -> H + photon (Case B radiative recombination)
//	k2: H  + e- -> H- + photon
//	k3: H  + H- -> H2 + e-
//	k4: H- + H+ -> H + H
//	k5: H- + e- -> H + 2e-
//
// temp must be finite and > 0; otherwise a DomainError is returned and
// no coefficients are produced.
func TwoBodyRates(temp float64) ([]float64, error) {
	if err := checkTemperature(temp); err != nil {
		return nil, err
	}

	k := make([]float64, len(TwoBodyLabels))
	k[K1] = recombinationCaseB(temp)
	k[K2] = radiativeAttachment(temp)
	k[K3] = associativeDetachment(temp)
	k[K4] = mutualNeutralization(temp)
	k[K5] = collisionalDetachment(temp)
	return k, nil
}

// H+ + e- -> H + photon, Case B fit. The exponent itself depends on
// log(T4), so the power law steepens below 1e4 K.
func recombinationCaseB(temp float64) float64 {
	t4 := temp / consts.T4SCALE
	return 2.59e-13 * math.Pow(t4, -0.833-0.034*math.Log(t4))
}

// H + e- -> H- + photon.
func radiativeAttachment(temp float64) float64 {
	return 1.4e-18 * math.Pow(temp, 0.928) * math.Exp(-temp/16200.0)
}

// H + H- -> H2 + e-, rational function of power laws. The denominator is
// 1 plus positive terms, so the fit has no singularity for T > 0.
func associativeDetachment(temp float64) float64 {
	const (
		c1  = 1.35e-9
		c2  = 9.8493e-2
		c3  = 3.2852e-1
		c4  = 5.5610e-1
		c5  = 2.7710e-7
		c6  = 2.1826
		c7  = 6.1910e-3
		c8  = 1.0461
		c9  = 8.9712e-11
		c10 = 3.0424
		c11 = 3.2576e-14
		c12 = 3.7741
	)

	num := math.Pow(temp, c2) + c3*math.Pow(temp, c4) + c5*math.Pow(temp, c6)
	den := 1.0 + c7*math.Pow(temp, c8) + c9*math.Pow(temp, c10) + c11*math.Pow(temp, c12)
	return c1 * num / den
}

// H- + H+ -> H + H.
func mutualNeutralization(temp float64) float64 {
	return 2.4e-6 * math.Pow(temp, -0.5) * (1.0 + temp/2.0e4)
}

// H- + e- -> H + 2e-. Degree-8 polynomial in ln(T_eV), exponentiated.
// Horner evaluation preserves the published coefficient order.
func collisionalDetachment(temp float64) float64 {
	y := math.Log(temp / consts.KELVINPEREV)

	sum := 0.0
	for i := len(detachmentCoeff) - 1; i >= 0; i-- {
		sum = sum*y + detachmentCoeff[i]
	}
	return math.Exp(sum)
}
