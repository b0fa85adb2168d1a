// Package table evaluates the rate coefficients over a temperature sweep
// and collects the columns for printing or regression checks.
package table

import (
	"fmt"
	"math"

	"primchem/pkg/rates"
)

type Spacing int

const (
	Linear Spacing = iota
	Log
)

func (s Spacing) String() string {
	switch s {
	case Linear:
		return "lin"
	case Log:
		return "log"
	default:
		return fmt.Sprintf("spacing(%d)", int(s))
	}
}

// Rate families selectable for tabulation.
const (
	FamilyTwoBody   = "twobody"
	FamilyThreeBody = "threebody"
)

// Grid describes a temperature sweep in Kelvin.
type Grid struct {
	TStart  float64
	TStop   float64
	Points  int
	Spacing Spacing
}

func (g Grid) Validate() error {
	if g.TStart <= 0 || math.IsNaN(g.TStart) || math.IsInf(g.TStart, 0) {
		return fmt.Errorf("grid: tstart %g must be finite and > 0", g.TStart)
	}
	if g.Points < 1 {
		return fmt.Errorf("grid: points %d must be >= 1", g.Points)
	}
	if g.Points > 1 {
		if g.TStop <= g.TStart || math.IsNaN(g.TStop) || math.IsInf(g.TStop, 0) {
			return fmt.Errorf("grid: tstop %g must be finite and > tstart %g", g.TStop, g.TStart)
		}
	}
	if g.Spacing != Linear && g.Spacing != Log {
		return fmt.Errorf("grid: unknown spacing %d", int(g.Spacing))
	}
	return nil
}

// Values materializes the sweep temperatures. Log spacing distributes the
// points uniformly in log10(T). A single-point grid emits TStart only.
func (g Grid) Values() ([]float64, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	if g.Points == 1 {
		return []float64{g.TStart}, nil
	}

	temps := make([]float64, g.Points)
	switch g.Spacing {
	case Log:
		lo := math.Log10(g.TStart)
		step := (math.Log10(g.TStop) - lo) / float64(g.Points-1)
		for i := range temps {
			temps[i] = math.Pow(10, lo+float64(i)*step)
		}
	default:
		step := (g.TStop - g.TStart) / float64(g.Points-1)
		for i := range temps {
			temps[i] = g.TStart + float64(i)*step
		}
	}

	// Pin the endpoints against accumulated rounding
	temps[0] = g.TStart
	temps[g.Points-1] = g.TStop
	return temps, nil
}

// Tabulate evaluates the requested rate families over the grid. The result
// is keyed "T" plus the reaction labels of the chosen families, one value
// per grid point.
func Tabulate(g Grid, families []string) (map[string][]float64, error) {
	temps, err := g.Values()
	if err != nil {
		return nil, err
	}

	var twoBody, threeBody bool
	for _, f := range families {
		switch f {
		case FamilyTwoBody:
			twoBody = true
		case FamilyThreeBody:
			threeBody = true
		default:
			return nil, fmt.Errorf("table: unknown rate family %q", f)
		}
	}
	if !twoBody && !threeBody {
		return nil, fmt.Errorf("table: no rate family selected")
	}

	results := map[string][]float64{"T": temps}
	if twoBody {
		for _, name := range rates.TwoBodyLabels {
			results[name] = make([]float64, len(temps))
		}
	}
	if threeBody {
		for _, name := range rates.ThreeBodyLabels {
			results[name] = make([]float64, len(temps))
		}
	}

	for i, temp := range temps {
		if twoBody {
			k, err := rates.TwoBodyRates(temp)
			if err != nil {
				return nil, fmt.Errorf("table: point %d: %w", i, err)
			}
			for j, name := range rates.TwoBodyLabels {
				results[name][i] = k[j]
			}
		}
		if threeBody {
			k, err := rates.ThreeBodyRates(temp)
			if err != nil {
				return nil, fmt.Errorf("table: point %d: %w", i, err)
			}
			for j, name := range rates.ThreeBodyLabels {
				results[name][i] = k[j]
			}
		}
	}

	return results, nil
}

// Columns returns the column order for printing: temperature first, then
// the selected reaction labels in vector order.
func Columns(families []string) []string {
	cols := []string{"T"}
	for _, f := range families {
		switch f {
		case FamilyTwoBody:
			cols = append(cols, rates.TwoBodyLabels...)
		case FamilyThreeBody:
			cols = append(cols, rates.ThreeBodyLabels...)
		}
	}
	return cols
}
