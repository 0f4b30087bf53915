// Package checker is the self-consistency gate (spec.md §4.H): it
// verifies that every taxonomy key has a generator arm, every
// generator arm has a taxonomy key, and every sample a generator
// produces validates against its own type's schema.
package checker

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"taxoscan/internal/obslog"
	"taxoscan/pkg/generator"
	"taxoscan/pkg/taxonomy"
	"taxoscan/pkg/validator"
)

// DefaultSampleCount is how many samples are drawn per type when
// checking the generator-vs-schema link, matching spec.md §4.H's
// stated default of 50.
const DefaultSampleCount = 50

// DomainReport is the per-domain pass/fail breakdown named in spec.md
// §4.H's reporting contract.
type DomainReport struct {
	Domain string
	Checked int
	Passed  int
	Failed  int
}

// Report is the full consistency-gate result. OK reports whether every
// bidirectional link held and every sample validated; a non-OK report
// corresponds to the non-zero "check" exit code in spec.md §6. RunID
// stamps the report with a stable identifier so multiple check runs
// logged to the same destination can be correlated.
type Report struct {
	RunID    string
	Domains  []DomainReport
	Offenses []Offense
}

// OK reports whether the taxonomy and generator are fully consistent.
func (r Report) OK() bool {
	return len(r.Offenses) == 0
}

// Print writes the per-domain breakdown at Info level and every offense at
// Warn level. This is the report printer spec.md §4.H's check verb drives.
func (r Report) Print(logger *obslog.Logger) {
	logger.Info("run %s", r.RunID)
	for _, dr := range r.Domains {
		logger.Info("%-15s checked=%-4d passed=%-4d failed=%d", dr.Domain, dr.Checked, dr.Passed, dr.Failed)
	}
	for _, o := range r.Offenses {
		logger.Warn("%v", o)
	}
}

// Check runs the three bidirectional properties of spec.md §4.H against
// tax, drawing sampleCount samples per type with the given seed, logging
// nothing along the way.
func Check(tax *taxonomy.Taxonomy, sampleCount int, seed int64) Report {
	return CheckWithLogger(tax, sampleCount, seed, obslog.Default)
}

// CheckWithLogger is Check with Debug-level progress logging through logger,
// for hosts that want visibility into a long-running check pass.
func CheckWithLogger(tax *taxonomy.Taxonomy, sampleCount int, seed int64, logger *obslog.Logger) Report {
	if sampleCount <= 0 {
		sampleCount = DefaultSampleCount
	}

	var offenses []Offense
	domainCounts := map[taxonomy.Domain]*DomainReport{}

	reportFor := func(d taxonomy.Domain) *DomainReport {
		dr, ok := domainCounts[d]
		if !ok {
			dr = &DomainReport{Domain: string(d)}
			domainCounts[d] = dr
		}
		return dr
	}

	// Every taxonomy key must have a generator arm, and every sample
	// drawn for it must validate against its own schema.
	for _, def := range tax.Definitions() {
		key := def.Key()
		dr := reportFor(def.Domain)
		dr.Checked++
		logger.Debug("checking %s", key)

		if !generator.HasArm(key) {
			offenses = append(offenses, newOffense(KindMissingArm, key,
				"taxonomy key has no registered generator arm"))
			dr.Failed++
			continue
		}

		samples, err := generator.Generate(key, sampleCount, seed)
		if err != nil {
			offenses = append(offenses, newOffense(KindMissingArm, key, err.Error()))
			dr.Failed++
			continue
		}

		ok := true
		for _, s := range samples {
			result := validator.ValidateValue(s.Text, &def.Validation)
			if !result.IsValid {
				offenses = append(offenses, newOffense(KindSampleInvalid, key,
					fmt.Sprintf("sample %q failed its own schema: %v", s.Text, result.Errors)))
				ok = false
			}
		}
		if ok {
			dr.Passed++
		} else {
			dr.Failed++
		}
	}

	// Every registered generator arm must resolve to a declared
	// taxonomy key (spec.md §9: "undeclared arm" is the mirror of
	// "undeclared key", both raised as the same Integrity-class error).
	for key := range generator.Arms() {
		if _, err := tax.Get(key); err != nil {
			offenses = append(offenses, newOffense(KindUndeclaredArm, key,
				"generator arm has no matching taxonomy definition"))
		}
	}

	// Every definition must resolve to a leaf in its own tier graph: a
	// definition with an empty tier[0] is silently dropped by
	// TierGraph rather than rejected at load, so the checker is the
	// backstop that catches it.
	logger.Debug("verifying tier graph completeness")
	leaves := map[string]bool{}
	for _, broad := range tax.TierGraph() {
		for _, category := range broad.Children {
			for _, leaf := range category.Children {
				if leaf.Leaf != nil {
					leaves[leaf.Leaf.Key()] = true
				}
			}
		}
	}
	for _, def := range tax.Definitions() {
		if !leaves[def.Key()] {
			offenses = append(offenses, newOffense(KindTierIncomplete, def.Key(),
				"type is missing from the tier graph (empty tier[0])"))
		}
	}

	domains := make([]DomainReport, 0, len(domainCounts))
	for _, dr := range domainCounts {
		domains = append(domains, *dr)
	}
	sort.Slice(domains, func(i, j int) bool { return domains[i].Domain < domains[j].Domain })

	return Report{RunID: uuid.New().String(), Domains: domains, Offenses: offenses}
}
