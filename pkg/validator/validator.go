// Package validator checks values and columns against a taxonomy
// type's validation schema, and implements the four cleaning
// strategies a host may apply to invalid rows.
package validator

import (
	"sort"

	"github.com/google/uuid"

	"taxoscan/pkg/taxonomy"
)

// Strategy is the cleaning strategy applied to invalid rows in
// validate_column.
type Strategy int

const (
	// Quarantine collects invalid rows separately and is the default.
	Quarantine Strategy = iota
	// SetNull replaces every invalid value with the null marker.
	SetNull
	// ForwardFill replaces an invalid value with the last seen valid value.
	ForwardFill
	// BackwardFill replaces an invalid value with the next valid value.
	BackwardFill
)

// ValidateValue checks value against schema's supported keywords,
// without short-circuiting on the first failure.
func ValidateValue(value string, schema *taxonomy.ValidationSchema) taxonomy.ValidationResult {
	return taxonomy.ValidateValue(value, schema)
}

// QuarantinedRow is one invalid row pulled out of the cleaned output,
// in the line-delimited-JSON shape spec.md §6 names for the
// quarantine format.
type QuarantinedRow struct {
	RowIndex int      `json:"row_index"`
	Value    *string  `json:"value"`
	Errors   []string `json:"errors"`
}

// Stats are always computed over a column validation pass.
type Stats struct {
	Valid            int                 `json:"valid"`
	Invalid          int                 `json:"invalid"`
	Null             int                 `json:"null"`
	ValidityRate     float64             `json:"validity_rate"`
	TopErrorPatterns []ErrorPatternCount `json:"top_error_patterns"`
}

// ErrorPatternCount counts how often a given constraint name failed,
// across the whole column.
type ErrorPatternCount struct {
	Constraint string `json:"constraint"`
	Count      int    `json:"count"`
}

// ColumnValidationResult is the outcome of validate_column. BatchID
// identifies this validation pass so a quarantine stream and its stats
// line can be correlated downstream.
type ColumnValidationResult struct {
	BatchID     string           `json:"batch_id"`
	Stats       Stats            `json:"stats"`
	Output      []*string        `json:"output"`
	Quarantined []QuarantinedRow `json:"quarantined"`
}

// ValidateColumn runs ValidateValue over every non-null entry of
// values, applies strategy to invalid rows, and computes aggregate
// statistics. Row indices in Output and Quarantined stay consistent
// with the input slice's indices.
func ValidateColumn(values []*string, schema *taxonomy.ValidationSchema, strategy Strategy) ColumnValidationResult {
	output := make([]*string, len(values))
	var quarantined []QuarantinedRow
	errorCounts := map[string]int{}

	stats := Stats{}
	lastValid := (*string)(nil)

	type pending struct {
		index int
	}
	var needsBackwardFill []pending

	for i, v := range values {
		if v == nil {
			stats.Null++
			output[i] = nil
			continue
		}

		result := taxonomy.ValidateValue(*v, schema)
		if result.IsValid {
			stats.Valid++
			output[i] = v
			lastValid = v
			continue
		}

		stats.Invalid++
		for _, e := range result.Errors {
			errorCounts[e]++
		}

		switch strategy {
		case Quarantine:
			quarantined = append(quarantined, QuarantinedRow{RowIndex: i, Value: v, Errors: result.Errors})
			output[i] = nil
		case SetNull:
			output[i] = nil
		case ForwardFill:
			output[i] = lastValid
		case BackwardFill:
			output[i] = nil
			needsBackwardFill = append(needsBackwardFill, pending{index: i})
		}
	}

	if strategy == BackwardFill {
		var nextValid *string
		for i := len(values) - 1; i >= 0; i-- {
			v := values[i]
			if v != nil {
				result := taxonomy.ValidateValue(*v, schema)
				if result.IsValid {
					nextValid = v
					continue
				}
			}
			if output[i] == nil && v != nil {
				output[i] = nextValid
			}
		}
	}

	if stats.Valid+stats.Invalid > 0 {
		stats.ValidityRate = float64(stats.Valid) / float64(stats.Valid+stats.Invalid)
	}
	stats.TopErrorPatterns = topErrorPatterns(errorCounts)

	return ColumnValidationResult{BatchID: uuid.New().String(), Stats: stats, Output: output, Quarantined: quarantined}
}

func topErrorPatterns(counts map[string]int) []ErrorPatternCount {
	out := make([]ErrorPatternCount, 0, len(counts))
	for k, v := range counts {
		out = append(out, ErrorPatternCount{Constraint: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Constraint < out[j].Constraint
	})
	return out
}
