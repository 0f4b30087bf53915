package checker

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxoscan/internal/obslog"
	"taxoscan/pkg/taxonomy"
)

func loadTestTaxonomy(t *testing.T) *taxonomy.Taxonomy {
	t.Helper()
	tax, err := taxonomy.Load("../../taxonomy")
	require.NoError(t, err)
	return tax
}

func TestCheckPassesOnShippedTaxonomy(t *testing.T) {
	tax := loadTestTaxonomy(t)
	report := Check(tax, 20, 7)
	for _, o := range report.Offenses {
		t.Errorf("unexpected offense: %v", o)
	}
	assert.True(t, report.OK())
	assert.NotEmpty(t, report.Domains)
}

func TestCheckFlagsMissingArm(t *testing.T) {
	tax, err := taxonomy.Load("testdata/missing_arm.yaml")
	require.NoError(t, err)

	report := Check(tax, 5, 1)
	assert.False(t, report.OK())
	found := false
	for _, o := range report.Offenses {
		if o.Kind == KindMissingArm && o.Key == "representation.text.no_such_generator" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCheckFlagsEmptyTierRoot(t *testing.T) {
	tax, err := taxonomy.Load("testdata/empty_tier.yaml")
	require.NoError(t, err)

	report := Check(tax, 5, 1)
	assert.False(t, report.OK())
	found := false
	for _, o := range report.Offenses {
		if o.Kind == KindTierIncomplete && o.Key == "representation.text.no_tier_root" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCheckDefaultsSampleCount(t *testing.T) {
	tax := loadTestTaxonomy(t)
	report := Check(tax, 0, 3)
	assert.True(t, report.OK())
}

func TestDomainReportCountsMatchDefinitions(t *testing.T) {
	tax := loadTestTaxonomy(t)
	report := Check(tax, 5, 11)
	total := 0
	for _, dr := range report.Domains {
		assert.Equal(t, dr.Checked, dr.Passed+dr.Failed)
		total += dr.Checked
	}
	assert.Equal(t, len(tax.Definitions()), total)
}

func TestCheckWithLoggerEmitsPerDomainLines(t *testing.T) {
	tax := loadTestTaxonomy(t)
	var buf bytes.Buffer
	logger := obslog.New(obslog.Config{Level: "debug", Output: &buf})

	report := CheckWithLogger(tax, 5, 2, logger)
	assert.True(t, report.OK())
	assert.Contains(t, buf.String(), "checking")

	buf.Reset()
	report.Print(logger)
	for _, dr := range report.Domains {
		assert.Contains(t, buf.String(), dr.Domain)
	}
}
