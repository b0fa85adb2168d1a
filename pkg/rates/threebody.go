package rates

import "math"

// ThreeBodyRates returns the two three-body H2 formation rate coefficients
// [k31 k32] in cm^6 s^-1 at gas temperature temp (K):
//
//	k31: H + H + H  -> H2 + H
//	k32: H + H + H2 -> H2 + H2
//
// The three-body rates carry a large literature spread; these fits are the
// adopted choice and are reproduced as published. temp must be finite and
// > 0; otherwise a DomainError is returned.
func ThreeBodyRates(temp float64) ([]float64, error) {
	if err := checkTemperature(temp); err != nil {
		return nil, err
	}

	k := make([]float64, len(ThreeBodyLabels))
	k[K31] = 6.0e-32*math.Pow(temp, -0.25) + 2.0e-31*math.Pow(temp, -0.5)
	k[K32] = 2.8e-31 * math.Pow(temp, -0.6)
	return k, nil
}
