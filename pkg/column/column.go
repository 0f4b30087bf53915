// Package column classifies a bag of values when single-value
// classification alone is ambiguous, applying a fixed, ordered set of
// disambiguation rules after a batched classifier pass.
package column

import (
	"sort"
	"strconv"
	"strings"

	"taxoscan/pkg/classifier"
)

// Config recognizes sample_size (default 100) and min_agreement
// (default 0.5). ClassifyColumn reads SampleSize only; MinAgreement is
// carried in the config but does not change which rules run.
type Config struct {
	SampleSize   int
	MinAgreement float64
}

// DefaultConfig matches spec.md §4.F's defaults.
func DefaultConfig() Config {
	return Config{SampleSize: 100, MinAgreement: 0.5}
}

// VoteShare is one label's share of the sampled predictions.
type VoteShare struct {
	Label string  `json:"label"`
	Share float64 `json:"share"`
}

// Result is the outcome of ClassifyColumn, matching the ColumnResult
// fields named in spec.md §3.
type Result struct {
	Label                 string      `json:"label"`
	Confidence            float64     `json:"confidence"`
	VoteDistribution      []VoteShare `json:"vote_distribution"`
	SamplesUsed           int         `json:"samples_used"`
	NonNull               int         `json:"non_null"`
	NullCount             int         `json:"null_count"`
	DisambiguationApplied string      `json:"disambiguation_applied,omitempty"`
}

var nullValues = map[string]bool{
	"": true, "NA": true, "NULL": true, "NaN": true, "None": true,
}

// ClassifyColumn classifies a bag of raw string values, deterministically
// sampling up to config.SampleSize non-null values, running them through
// the classifier's batch path, aggregating a vote distribution, and
// applying at most one disambiguation rule.
func ClassifyColumn(values []string, clf *classifier.Classifier, config Config) Result {
	var nonNull []string
	nullCount := 0
	for _, v := range values {
		if nullValues[strings.TrimSpace(v)] {
			nullCount++
			continue
		}
		nonNull = append(nonNull, v)
	}

	if len(nonNull) == 0 {
		return Result{Label: "representation.text.plain_text", Confidence: 0, NullCount: nullCount}
	}

	sampleSize := config.SampleSize
	if sampleSize <= 0 || sampleSize > len(nonNull) {
		sampleSize = len(nonNull)
	}
	sample := nonNull[:sampleSize]

	preds := clf.ClassifyBatch(sample)
	votes := aggregateVotes(preds)

	label, rule := disambiguate(sample, votes)
	if label == "" {
		label = plurality(votes)
	}

	return Result{
		Label:                 label,
		Confidence:            votes[label],
		VoteDistribution:      voteDistribution(votes),
		SamplesUsed:           len(sample),
		NonNull:               len(nonNull),
		NullCount:             nullCount,
		DisambiguationApplied: rule,
	}
}

func aggregateVotes(preds []classifier.Prediction) map[string]float64 {
	counts := map[string]int{}
	for _, p := range preds {
		counts[p.Label]++
	}
	votes := make(map[string]float64, len(counts))
	for label, count := range counts {
		votes[label] = float64(count) / float64(len(preds))
	}
	return votes
}

func voteDistribution(votes map[string]float64) []VoteShare {
	out := make([]VoteShare, 0, len(votes))
	for label, share := range votes {
		out = append(out, VoteShare{Label: label, Share: share})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Share != out[j].Share {
			return out[i].Share > out[j].Share
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func plurality(votes map[string]float64) string {
	dist := voteDistribution(votes)
	if len(dist) == 0 {
		return ""
	}
	return dist[0].Label
}
