package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"taxoscan/pkg/validator"
)

// runValidate implements the "validate" verb (spec.md §6): validates a
// column of values against a named label's schema and applies a
// cleaning strategy, printing stats as JSON and quarantined rows as
// line-delimited JSON to stderr.
func runValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	taxonomyDir := fs.String("taxonomy", "", "taxonomy document directory (default: bundled)")
	label := fs.String("label", "", "taxonomy key (3-level or locale-qualified 4-level) to validate against")
	inputPath := fs.String("input", "", "file of newline-delimited values; a blank line is treated as null")
	strategyFlag := fs.String("strategy", "quarantine", "quarantine|set_null|forward_fill|backward_fill")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *label == "" || *inputPath == "" {
		return fmt.Errorf("validate requires -label and -input")
	}

	tax, err := loadTaxonomy(*taxonomyDir)
	if err != nil {
		return fmt.Errorf("loading taxonomy: %w", err)
	}

	def, _, err := tax.GetLocalized(*label)
	if err != nil {
		def, err = tax.Get(*label)
		if err != nil {
			return fmt.Errorf("unknown label %q: %w", *label, err)
		}
	}

	strategy, err := parseStrategy(*strategyFlag)
	if err != nil {
		return err
	}

	values, err := readValidatorColumn(*inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result := validator.ValidateColumn(values, &def.Validation, strategy)

	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(struct {
		BatchID string          `json:"batch_id"`
		Stats   validator.Stats `json:"stats"`
	}{BatchID: result.BatchID, Stats: result.Stats}); err != nil {
		return err
	}

	errEnc := json.NewEncoder(os.Stderr)
	for _, row := range result.Quarantined {
		rec := struct {
			BatchID  string   `json:"batch_id"`
			RowIndex int      `json:"row_index"`
			Value    *string  `json:"value"`
			Label    string   `json:"label"`
			Errors   []string `json:"errors"`
		}{BatchID: result.BatchID, RowIndex: row.RowIndex, Value: row.Value, Label: def.Key(), Errors: row.Errors}
		if err := errEnc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

func parseStrategy(s string) (validator.Strategy, error) {
	switch s {
	case "quarantine":
		return validator.Quarantine, nil
	case "set_null":
		return validator.SetNull, nil
	case "forward_fill":
		return validator.ForwardFill, nil
	case "backward_fill":
		return validator.BackwardFill, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", s)
	}
}

func readValidatorColumn(path string) ([]*string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var values []*string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			values = append(values, nil)
			continue
		}
		v := line
		values = append(values, &v)
	}
	return values, scanner.Err()
}
