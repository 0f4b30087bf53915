package main

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"taxoscan/pkg/classifier"
	"taxoscan/pkg/column"
)

// runInfer implements the "infer" verb (spec.md §6): row mode when
// -text is given, column mode when -column points at a file of
// newline-delimited values.
func runInfer(args []string) error {
	fs := flag.NewFlagSet("infer", flag.ExitOnError)
	text := fs.String("text", "", "a single value to classify (row mode)")
	columnFile := fs.String("column", "", "path to a file of newline-delimited values (column mode)")
	modelPath := fs.String("model", "", "classifier artifact directory (default: embedded)")
	format := fs.String("format", "plain", "output format: plain|json|csv")
	if err := fs.Parse(args); err != nil {
		return err
	}

	clf, err := loadClassifier(*modelPath)
	if err != nil {
		return fmt.Errorf("loading classifier: %w", err)
	}

	switch {
	case *text != "":
		pred := clf.Classify(*text)
		return writePrediction(os.Stdout, *format, pred)
	case *columnFile != "":
		values, err := readLines(*columnFile)
		if err != nil {
			return fmt.Errorf("reading column file: %w", err)
		}
		result := column.ClassifyColumn(values, clf, column.DefaultConfig())
		return writeColumnResult(os.Stdout, *format, result)
	default:
		return fmt.Errorf("infer requires -text or -column")
	}
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func writePrediction(w *os.File, format string, pred classifier.Prediction) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		return enc.Encode(struct {
			Label      string  `json:"label"`
			Confidence float64 `json:"confidence"`
		}{pred.Label, pred.Confidence})
	case "csv":
		cw := csv.NewWriter(w)
		defer cw.Flush()
		return cw.Write([]string{pred.Label, fmt.Sprintf("%.6f", pred.Confidence)})
	default:
		fmt.Fprintf(w, "%s\t%.6f\n", pred.Label, pred.Confidence)
		return nil
	}
}

func writeColumnResult(w *os.File, format string, result column.Result) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		return enc.Encode(result)
	case "csv":
		cw := csv.NewWriter(w)
		defer cw.Flush()
		row := []string{
			result.Label,
			fmt.Sprintf("%.6f", result.Confidence),
			fmt.Sprintf("%d", result.SamplesUsed),
			fmt.Sprintf("%d", result.NonNull),
			fmt.Sprintf("%d", result.NullCount),
			result.DisambiguationApplied,
		}
		return cw.Write(row)
	default:
		fmt.Fprintf(w, "%s\t%.6f\tsamples=%d\tnon_null=%d\tnull=%d",
			result.Label, result.Confidence, result.SamplesUsed, result.NonNull, result.NullCount)
		if result.DisambiguationApplied != "" {
			fmt.Fprintf(w, "\trule=%s", result.DisambiguationApplied)
		}
		fmt.Fprintln(w)
		return nil
	}
}
