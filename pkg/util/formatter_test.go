package util

import (
	"strings"
	"testing"
)

func TestFormatRate(t *testing.T) {
	got := FormatRate(2.59e-13)
	if !strings.Contains(got, "2.5900e-13") {
		t.Errorf("got %q", got)
	}
	if len(FormatRate(1.0)) != len(FormatRate(5.96e-09)) {
		t.Error("rate columns are not fixed width")
	}
}

func TestFormatTemperature(t *testing.T) {
	cases := []struct {
		temp float64
		want string
	}{
		{100, "K"},
		{8000, "kK"},
		{2.5e6, "MK"},
	}
	for _, tc := range cases {
		got := FormatTemperature(tc.temp)
		if !strings.Contains(got, tc.want) {
			t.Errorf("T=%g: got %q, want unit %q", tc.temp, got, tc.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	if got := FormatValue(3.6e-8, "cm^3/s"); !strings.Contains(got, "e-08") {
		t.Errorf("small value not scientific: %q", got)
	}
	if got := FormatValue(1.5, "eV"); got != "1.500 eV" {
		t.Errorf("got %q", got)
	}
}
