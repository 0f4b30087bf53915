package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyColumnReturnsPlainTextZeroConfidence(t *testing.T) {
	result := ClassifyColumn([]string{"", "NA", "NULL"}, nil, DefaultConfig())
	assert.Equal(t, "representation.text.plain_text", result.Label)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Empty(t, result.DisambiguationApplied)
	assert.Equal(t, 3, result.NullCount)
}

func TestDateSlashRuleEUWhenFirstComponentOver12(t *testing.T) {
	votes := map[string]float64{labelUSSlash: 0.5, labelEUSlash: 0.5}
	label, ok := dateSlashRule([]string{"14/03/2024"}, votes)
	assert.True(t, ok)
	assert.Equal(t, labelEUSlash, label)
}

func TestDateSlashRuleUSWhenSecondComponentOver12(t *testing.T) {
	votes := map[string]float64{labelUSSlash: 0.5, labelEUSlash: 0.5}
	label, ok := dateSlashRule([]string{"03/14/2024"}, votes)
	assert.True(t, ok)
	assert.Equal(t, labelUSSlash, label)
}

func TestYearDetectionFiresBeforeSequentialInteger(t *testing.T) {
	votes := map[string]float64{labelYear: 1.0}
	sample := []string{"2018", "2019", "2020"}
	label, ok := yearDetectionRule(sample, votes)
	assert.True(t, ok)
	assert.Equal(t, labelYear, label)

	seqLabel, seqOK := sequentialIntegerRule(sample, votes)
	assert.True(t, seqOK)
	assert.Equal(t, labelIncrement, seqLabel)
}

func TestPostalYearExclusionPromotesToYear(t *testing.T) {
	votes := map[string]float64{labelPostalCode: 1.0}
	sample := []string{"1999", "2000", "2001", "2002"}
	label, ok := postalYearExclusionRule(sample, votes)
	assert.True(t, ok)
	assert.Equal(t, labelYear, label)
}

func TestPortDetectionFiresOnWellKnownPorts(t *testing.T) {
	votes := map[string]float64{labelPort: 1.0}
	sample := []string{"80", "443", "22", "8080"}
	label, ok := portDetectionRule(sample, votes)
	assert.True(t, ok)
	assert.Equal(t, labelPort, label)
}

func TestSequentialIntegerRequiresNonDecreasing(t *testing.T) {
	votes := map[string]float64{}
	_, ok := sequentialIntegerRule([]string{"5", "3", "4"}, votes)
	assert.False(t, ok)
}

func TestStreetNumberRuleFiresOnShortIntegers(t *testing.T) {
	votes := map[string]float64{}
	label, ok := streetNumberRule([]string{"221", "42", "7"}, votes)
	assert.True(t, ok)
	assert.Equal(t, labelStreetNum, label)
}

func TestCoordinateRangeSelectsLongitudeOnOutOfLatitudeRangeValue(t *testing.T) {
	votes := map[string]float64{labelLatitude: 0.5, labelLongitude: 0.5}
	label, ok := coordinateRangeRule([]string{"120.5"}, votes)
	assert.True(t, ok)
	assert.Equal(t, labelLongitude, label)
}
