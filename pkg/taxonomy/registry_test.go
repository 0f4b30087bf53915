package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadValidDocument(t *testing.T) {
	tx, err := Load("testdata/sample.yaml")
	require.NoError(t, err)
	require.Len(t, tx.Definitions(), 3)
}

func TestGetExactKey(t *testing.T) {
	tx, err := Load("testdata/sample.yaml")
	require.NoError(t, err)

	def, err := tx.Get("identity.financial.credit_card")
	require.NoError(t, err)
	assert.Equal(t, DomainIdentity, def.Domain)
	assert.Equal(t, BroadVarchar, def.BroadType)
}

func TestGetUnknownKeyReturnsNotFound(t *testing.T) {
	tx, err := Load("testdata/sample.yaml")
	require.NoError(t, err)

	_, err = tx.Get("identity.financial.does_not_exist")
	require.Error(t, err)
	var taxErr *Error
	require.ErrorAs(t, err, &taxErr)
	assert.Equal(t, KindNotFound, taxErr.Kind)
}

func TestGetLocalizedVerifiesDeclaredLocale(t *testing.T) {
	tx, err := Load("testdata/sample.yaml")
	require.NoError(t, err)

	def, locale, err := tx.GetLocalized("identity.person.name.DE")
	require.NoError(t, err)
	assert.Equal(t, LocaleDE, locale)
	assert.Equal(t, "identity.person.name", def.Key())

	_, _, err = tx.GetLocalized("identity.person.name.FR")
	require.Error(t, err)
}

func TestByDomainAndByPriority(t *testing.T) {
	tx, err := Load("testdata/sample.yaml")
	require.NoError(t, err)

	assert.Len(t, tx.ByDomain(DomainIdentity), 2)
	assert.Len(t, tx.ByPriority(4), 2)
	assert.Len(t, tx.ByPriority(5), 1)
}

func TestTierGraphMarksDirectResolve(t *testing.T) {
	tx, err := Load("testdata/sample.yaml")
	require.NoError(t, err)

	graph := tx.TierGraph()
	require.NotEmpty(t, graph)

	for _, broad := range graph {
		for _, category := range broad.Children {
			if len(category.Children) == 1 {
				assert.True(t, category.DirectResolve)
			}
		}
	}
}

func TestExpandLocalesRespectsPriorityFloor(t *testing.T) {
	tx, err := Load("testdata/sample.yaml")
	require.NoError(t, err)

	labels := ExpandLocales(tx.Definitions(), 5)
	assert.Len(t, labels, 1)
	assert.Equal(t, "identity.financial.credit_card.UNIVERSAL", labels[0])

	all := ExpandLocales(tx.Definitions(), 1)
	assert.Len(t, all, 1+1+3)
}

func TestDuplicateKeyAcrossDocumentsIsFatal(t *testing.T) {
	_, err := Load("testdata/duplicate")
	require.Error(t, err)
}
