// Command taxoscan is the CLI front end for the format-detection
// engine: it dispatches the verbs named in spec.md §6 (infer, profile,
// generate, validate, check) to the core packages. Argument parsing
// and dispatch are themselves outside the engine's core (spec.md §1),
// but every verb here is a thin wrapper over a core operation.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	verb := os.Args[1]
	args := os.Args[2:]

	var err error
	switch verb {
	case "infer":
		err = runInfer(args)
	case "profile":
		err = runProfile(args)
	case "generate":
		err = runGenerate(args)
	case "validate":
		err = runValidate(args)
	case "check":
		err = runCheck(args)
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "taxoscan: unknown verb %q\n", verb)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "taxoscan: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `taxoscan - precision format-detection engine

Usage:
  taxoscan infer    -text VALUE | -column FILE  [-model DIR] [-format plain|json|csv]
  taxoscan profile  -csv FILE                    [-model DIR] [-format plain|json]
  taxoscan generate -key KEY | -all              [-taxonomy DIR] [-locale LOC] [-count N] [-seed N] [-priority N] [-checkpoint FILE]
  taxoscan validate -label KEY -input FILE       [-taxonomy DIR] [-strategy quarantine|set_null|forward_fill|backward_fill]
  taxoscan check                                 [-taxonomy DIR] [-samples N] [-seed N]`)
}
