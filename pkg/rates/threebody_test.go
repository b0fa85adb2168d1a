package rates

import (
	"errors"
	"math"
	"testing"
)

var threeBodyGolden = []struct {
	temp float64
	want [2]float64
}{
	{100.0, [2]float64{3.8973665961010284e-32, 1.7666805645445412e-32}},
	{1000.0, [2]float64{1.6994231780570295e-32, 4.4377009388911186e-33}},
	{8000.0, [2]float64{8.5802955581431752e-33, 1.2743949421182562e-33}},
	{10000.0, [2]float64{8.0000000000000005e-33, 1.1147000775497925e-33}},
	{30000.0, [2]float64{5.7137146522888070e-33, 5.7661412719625119e-34}},
}

func TestThreeBodyRatesGolden(t *testing.T) {
	for _, tc := range threeBodyGolden {
		k, err := ThreeBodyRates(tc.temp)
		if err != nil {
			t.Fatalf("T=%g: unexpected error: %v", tc.temp, err)
		}
		if len(k) != 2 {
			t.Fatalf("T=%g: got %d coefficients, want 2", tc.temp, len(k))
		}
		for i, want := range tc.want {
			if d := relDiff(k[i], want); d > goldenTol {
				t.Errorf("T=%g: %s = %g, want %g (rel diff %g)",
					tc.temp, ThreeBodyLabels[i], k[i], want, d)
			}
		}
	}
}

// No ordering between k31 and k32 is implied by the fits; only positivity
// and the pinned values are checked.
func TestThreeBodyRatesAt500K(t *testing.T) {
	k, err := ThreeBodyRates(500.0)
	if err != nil {
		t.Fatal(err)
	}
	want := [2]float64{2.1632727071285931e-32, 6.7262968302960161e-33}
	for i := range want {
		if k[i] <= 0 {
			t.Errorf("%s = %g, want > 0", ThreeBodyLabels[i], k[i])
		}
		if d := relDiff(k[i], want[i]); d > goldenTol {
			t.Errorf("%s = %g, want %g (rel diff %g)", ThreeBodyLabels[i], k[i], want[i], d)
		}
	}
}

func TestThreeBodyRatesFiniteAndPositive(t *testing.T) {
	for logT := 0.0; logT <= 8.0; logT += 0.25 {
		temp := math.Pow(10, logT)
		k, err := ThreeBodyRates(temp)
		if err != nil {
			t.Fatalf("T=%g: unexpected error: %v", temp, err)
		}
		for i, v := range k {
			if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
				t.Errorf("T=%g: %s = %g, want finite and > 0", temp, ThreeBodyLabels[i], v)
			}
		}
	}
}

func TestThreeBodyRatesDeterministic(t *testing.T) {
	for _, temp := range []float64{42.0, 500.0, 123456.0} {
		a, err := ThreeBodyRates(temp)
		if err != nil {
			t.Fatal(err)
		}
		b, err := ThreeBodyRates(temp)
		if err != nil {
			t.Fatal(err)
		}
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("T=%g: %s differs between calls: %g vs %g",
					temp, ThreeBodyLabels[i], a[i], b[i])
			}
		}
	}
}

func TestThreeBodyRatesDomainError(t *testing.T) {
	for _, temp := range []float64{0, -273.15, math.NaN(), math.Inf(1), math.Inf(-1)} {
		k, err := ThreeBodyRates(temp)
		if err == nil {
			t.Errorf("T=%g: expected domain error, got %v", temp, k)
			continue
		}
		var de *DomainError
		if !errors.As(err, &de) {
			t.Errorf("T=%g: error %v is not a DomainError", temp, err)
		}
	}
}
