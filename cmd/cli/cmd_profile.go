package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"taxoscan/pkg/column"
)

// runProfile implements the "profile" verb (spec.md §6): column-mode
// inference over every column of a CSV file.
func runProfile(args []string) error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	csvPath := fs.String("csv", "", "path to the CSV file to profile")
	modelPath := fs.String("model", "", "classifier artifact directory (default: embedded)")
	format := fs.String("format", "plain", "output format: plain|json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *csvPath == "" {
		return fmt.Errorf("profile requires -csv")
	}

	clf, err := loadClassifier(*modelPath)
	if err != nil {
		return fmt.Errorf("loading classifier: %w", err)
	}

	headers, columns, err := readCSVColumns(*csvPath)
	if err != nil {
		return fmt.Errorf("reading csv: %w", err)
	}

	p := mpb.New(mpb.WithWidth(60))
	bar := p.AddBar(int64(len(headers)),
		mpb.PrependDecorators(decor.Name("Profiling columns: "), decor.Percentage(decor.WCSyncSpace)),
		mpb.AppendDecorators(decor.OnComplete(decor.AverageETA(decor.ET_STYLE_GO), "done!")),
	)

	results := make(map[string]column.Result, len(headers))
	for _, h := range headers {
		results[h] = column.ClassifyColumn(columns[h], clf, column.DefaultConfig())
		bar.Increment()
	}
	p.Wait()

	if *format == "json" {
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(results)
	}
	for _, h := range headers {
		r := results[h]
		fmt.Printf("%s\t%s\t%.4f\tsamples=%d\n", h, r.Label, r.Confidence, r.SamplesUsed)
	}
	return nil
}

func readCSVColumns(path string) (headers []string, columns map[string][]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	headers, err = r.Read()
	if err != nil {
		return nil, nil, err
	}
	columns = make(map[string][]string, len(headers))
	for _, h := range headers {
		columns[h] = nil
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		for i, h := range headers {
			if i < len(record) {
				columns[h] = append(columns[h], record[i])
			}
		}
	}
	return headers, columns, nil
}
