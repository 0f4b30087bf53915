package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"taxoscan/internal/checkpoint"
	"taxoscan/internal/obslog"
	"taxoscan/pkg/generator"
	"taxoscan/pkg/taxonomy"
)

// runGenerate implements the "generate" verb (spec.md §6): produces
// training samples to stdout as line-delimited JSON.
func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	taxonomyDir := fs.String("taxonomy", "", "taxonomy document directory (default: bundled)")
	key := fs.String("key", "", "a single 3-level taxonomy key to generate")
	all := fs.Bool("all", false, "generate every type meeting -priority")
	localeFlag := fs.String("locale", "", "comma-separated locale subset for -all (default: every locale the type declares); with -key, exactly one locale selects localized output, otherwise UNIVERSAL")
	count := fs.Int("count", 10, "samples per label")
	seed := fs.Int64("seed", 1, "deterministic RNG seed")
	priority := fs.Int("priority", 1, "release_priority floor for -all")
	checkpointPath := fs.String("checkpoint", "", "bbolt database tracking already-written labels, for resumable -all runs")
	logLevel := fs.String("log-level", "warn", "obslog level for the -all progress hook (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tax, err := loadTaxonomy(*taxonomyDir)
	if err != nil {
		return fmt.Errorf("loading taxonomy: %w", err)
	}

	var locales []taxonomy.Locale
	if *localeFlag != "" {
		for _, l := range strings.Split(*localeFlag, ",") {
			locales = append(locales, taxonomy.Locale(strings.TrimSpace(l)))
		}
	}

	switch {
	case *key != "":
		var samples []generator.Sample
		if len(locales) == 1 {
			samples, err = generator.GenerateLocalized(*key, locales[0], *count, *seed)
		} else {
			samples, err = generator.Generate(*key, *count, *seed)
		}
		if err != nil {
			return err
		}
		return writeSamples(os.Stdout, samples)

	case *all:
		logger := obslog.New(obslog.Config{Level: *logLevel, Output: os.Stderr})
		return runGenerateAll(tax, locales, *count, *seed, *priority, *checkpointPath, logger)

	default:
		return fmt.Errorf("generate requires -key or -all")
	}
}

func runGenerateAll(tax *taxonomy.Taxonomy, locales []taxonomy.Locale, count int, seed int64, priorityFloor int, checkpointPath string, logger *obslog.Logger) error {
	var store *checkpoint.Store
	if checkpointPath != "" {
		var err error
		store, err = checkpoint.Open(checkpointPath)
		if err != nil {
			return fmt.Errorf("opening checkpoint: %w", err)
		}
		defer store.Close()
	}

	allowed := map[taxonomy.Locale]bool{}
	for _, l := range locales {
		allowed[l] = true
	}

	defs := tax.ByPriority(priorityFloor)
	p := mpb.New(mpb.WithWidth(60))
	bar := p.AddBar(int64(len(defs)),
		mpb.PrependDecorators(decor.Name("Generating: "), decor.Percentage(decor.WCSyncSpace)),
		mpb.AppendDecorators(decor.OnComplete(decor.AverageETA(decor.ET_STYLE_GO), "done!")),
	)

	for _, def := range defs {
		locSet := def.Locales
		if len(allowed) > 0 {
			var filtered []taxonomy.Locale
			for _, l := range locSet {
				if allowed[l] {
					filtered = append(filtered, l)
				}
			}
			if len(filtered) > 0 {
				locSet = filtered
			}
		}

		for _, loc := range locSet {
			label := def.LocaleKey(loc)
			if store != nil && store.IsDone(label) {
				logger.Debug("skipping %s: already checkpointed", label)
				continue
			}
			samples, err := generator.GenerateLocalized(def.Key(), loc, count, seed)
			if err != nil {
				logger.Error("generating %s: %v", label, err)
				return err
			}
			if err := writeSamples(os.Stdout, samples); err != nil {
				return err
			}
			if store != nil {
				if err := store.MarkDone(checkpoint.LabelMetadata{
					Label: label, SampleCount: len(samples), WrittenAt: time.Now(),
				}); err != nil {
					return fmt.Errorf("recording checkpoint for %s: %w", label, err)
				}
			}
			logger.Debug("wrote %d samples for %s", len(samples), label)
			seed++
		}
		bar.Increment()
	}
	p.Wait()
	return nil
}

func writeSamples(w *os.File, samples []generator.Sample) error {
	data, err := generator.MarshalNDJSON(samples)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
