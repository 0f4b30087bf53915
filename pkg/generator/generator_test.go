package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxoscan/pkg/taxonomy"
)

func loadTestTaxonomy(t *testing.T) *taxonomy.Taxonomy {
	t.Helper()
	tax, err := taxonomy.Load("../../taxonomy")
	require.NoError(t, err)
	return tax
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, err := Generate("identity.financial.credit_card", 5, 42)
	require.NoError(t, err)
	b, err := Generate("identity.financial.credit_card", 5, 42)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateDistinctAcrossIndex(t *testing.T) {
	samples, err := Generate("identity.financial.credit_card", 5, 42)
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, s := range samples {
		seen[s.Text] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestGenerateUnknownKeyFails(t *testing.T) {
	_, err := Generate("not.a.key", 1, 1)
	assert.Error(t, err)
}

func TestCreditCardSamplesPassTaxonomyValidation(t *testing.T) {
	tax := loadTestTaxonomy(t)
	def, err := tax.Get("identity.financial.credit_card")
	require.NoError(t, err)

	samples, err := Generate("identity.financial.credit_card", 25, 7)
	require.NoError(t, err)
	for _, s := range samples {
		result := taxonomy.ValidateValue(s.Text, &def.Validation)
		assert.Truef(t, result.IsValid, "credit card %q failed: %v", s.Text, result.Errors)
	}
}

func TestAllArmsHaveTaxonomyEntryAndValidateClean(t *testing.T) {
	tax := loadTestTaxonomy(t)
	for key := range arms {
		def, err := tax.Get(key)
		require.NoErrorf(t, err, "arm %q has no taxonomy definition", key)

		locale := taxonomy.LocaleUniversal
		if len(def.Locales) > 0 {
			locale = def.Locales[0]
		}
		samples, err := GenerateLocalized(key, locale, 10, 99)
		require.NoError(t, err)
		for _, s := range samples {
			result := taxonomy.ValidateValue(s.Text, &def.Validation)
			assert.Truef(t, result.IsValid, "%s sample %q failed: %v", key, s.Text, result.Errors)
		}
	}
}

func TestGenerateAllRespectsPriorityFloor(t *testing.T) {
	tax := loadTestTaxonomy(t)
	samples, err := GenerateAll(tax, 4, 2, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, samples)
	for _, s := range samples {
		def, err := tax.Get(s.Label)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, def.ReleasePriority, 4)
	}
}

func TestGenerateAllLocalizedFiltersByLocale(t *testing.T) {
	tax := loadTestTaxonomy(t)
	samples, err := GenerateAllLocalized(tax, 1, 2, 1, []taxonomy.Locale{taxonomy.LocaleJA})
	require.NoError(t, err)
	found := false
	for _, s := range samples {
		if s.Label == "identity.contact.phone_number.JA" {
			found = true
			assert.True(t, len(s.Text) > 0 && s.Text[0] == '+')
		}
	}
	assert.True(t, found)
}

func TestGenerateLocalizedUsesFourLevelLabel(t *testing.T) {
	samples, err := GenerateLocalized("identity.contact.phone_number", taxonomy.LocaleJA, 3, 5)
	require.NoError(t, err)
	for _, s := range samples {
		assert.Equal(t, "identity.contact.phone_number.JA", s.Label)
	}
}

func TestMarshalNDJSONRoundTripsLines(t *testing.T) {
	samples := []Sample{{Text: "a", Label: "x.y.z"}, {Text: "b", Label: "x.y.z"}}
	out, err := MarshalNDJSON(samples)
	require.NoError(t, err)
	assert.Equal(t, "{\"text\":\"a\",\"label\":\"x.y.z\"}\n{\"text\":\"b\",\"label\":\"x.y.z\"}\n", string(out))
}
