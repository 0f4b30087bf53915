package main

import (
	"flag"
	"fmt"
	"os"

	"taxoscan/internal/obslog"
	"taxoscan/pkg/checker"
)

// runCheck implements the "check" verb (spec.md §6): runs the
// taxonomy-vs-generator consistency gate and exits non-zero on any
// failure, per spec.md §4.H.
func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	taxonomyDir := fs.String("taxonomy", "", "taxonomy document directory (default: bundled)")
	samples := fs.Int("samples", checker.DefaultSampleCount, "samples drawn per type")
	seed := fs.Int64("seed", 1, "deterministic RNG seed")
	logLevel := fs.String("log-level", "info", "obslog level for the check run (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tax, err := loadTaxonomy(*taxonomyDir)
	if err != nil {
		return fmt.Errorf("loading taxonomy: %w", err)
	}

	logger := obslog.New(obslog.Config{Level: *logLevel, Output: os.Stdout})
	report := checker.CheckWithLogger(tax, *samples, *seed, logger)
	report.Print(logger)

	if !report.OK() {
		return fmt.Errorf("consistency check failed with %d offense(s)", len(report.Offenses))
	}
	return nil
}
