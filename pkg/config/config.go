// Package config loads the YAML tabulation deck for the ratetab command.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"primchem/pkg/table"
)

type GridSpec struct {
	TStart  float64 `yaml:"tstart"`
	TStop   float64 `yaml:"tstop"`
	Points  int     `yaml:"points"`
	Spacing string  `yaml:"spacing"` // "lin" or "log"
}

type Config struct {
	Title string   `yaml:"title"`
	Grid  GridSpec `yaml:"grid"`
	Rates []string `yaml:"rates"` // "twobody", "threebody"
}

// Defaults applied when a field is omitted from the deck.
const (
	DefaultPoints  = 50
	DefaultSpacing = "log"
)

// Load parses and validates a tabulation deck.
func Load(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (c *Config) applyDefaults() {
	if c.Grid.Points == 0 {
		c.Grid.Points = DefaultPoints
	}
	if c.Grid.Spacing == "" {
		c.Grid.Spacing = DefaultSpacing
	}
	if len(c.Rates) == 0 {
		c.Rates = []string{table.FamilyTwoBody, table.FamilyThreeBody}
	}
}

func (c *Config) validate() error {
	if c.Grid.Spacing != "lin" && c.Grid.Spacing != "log" {
		return fmt.Errorf("config: spacing must be \"lin\" or \"log\", got %q", c.Grid.Spacing)
	}
	for _, f := range c.Rates {
		if f != table.FamilyTwoBody && f != table.FamilyThreeBody {
			return fmt.Errorf("config: unknown rate family %q", f)
		}
	}

	grid, err := c.ToGrid()
	if err != nil {
		return err
	}
	return grid.Validate()
}

// ToGrid converts the deck's grid spec into a sweep grid.
func (c *Config) ToGrid() (table.Grid, error) {
	spacing := table.Linear
	switch c.Grid.Spacing {
	case "lin":
		spacing = table.Linear
	case "log":
		spacing = table.Log
	default:
		return table.Grid{}, fmt.Errorf("config: spacing must be \"lin\" or \"log\", got %q", c.Grid.Spacing)
	}

	return table.Grid{
		TStart:  c.Grid.TStart,
		TStop:   c.Grid.TStop,
		Points:  c.Grid.Points,
		Spacing: spacing,
	}, nil
}
