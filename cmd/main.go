package main // import "ratetab"

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"primchem/pkg/config"
	"primchem/pkg/table"
	"primchem/pkg/util"
)

func printTable(title string, families []string, results map[string][]float64) {
	if title != "" {
		fmt.Println(title)
	}

	temps := results["T"]
	cols := table.Columns(families)

	fmt.Printf("\nRate Coefficients (%d points):\n", len(temps))

	header := fmt.Sprintf("%-11s", "Temperature")
	for _, name := range cols[1:] {
		header += fmt.Sprintf("  %10s", name)
	}
	fmt.Println(header)
	fmt.Println(strings.Repeat("-", len(header)))

	for i := range temps {
		fmt.Printf("%s", util.FormatTemperature(temps[i]))
		for _, name := range cols[1:] {
			fmt.Printf("  %s", util.FormatRate(results[name][i]))
		}
		fmt.Println()
	}
}

func main() {
	configFile := flag.String("c", "", "tabulation deck file (yaml)")
	tstart := flag.Float64("tstart", 100.0, "sweep start temperature (K)")
	tstop := flag.Float64("tstop", 30000.0, "sweep stop temperature (K)")
	points := flag.Int("points", config.DefaultPoints, "number of sweep points")
	spacing := flag.String("spacing", config.DefaultSpacing, "sweep spacing: lin or log")
	families := flag.String("rates", "twobody,threebody", "rate families, comma separated")
	flag.Parse()

	var cfg *config.Config
	var err error

	if *configFile != "" {
		cfg, err = config.LoadFile(*configFile)
		if err != nil {
			log.Fatalf("Error loading deck: %v", err)
		}
	} else {
		cfg = &config.Config{
			Grid: config.GridSpec{
				TStart:  *tstart,
				TStop:   *tstop,
				Points:  *points,
				Spacing: *spacing,
			},
			Rates: strings.Split(*families, ","),
		}
	}

	grid, err := cfg.ToGrid()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	results, err := table.Tabulate(grid, cfg.Rates)
	if err != nil {
		log.Fatalf("Tabulation failed: %v", err)
	}

	printTable(cfg.Title, cfg.Rates, results)
	os.Exit(0)
}
