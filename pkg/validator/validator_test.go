package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxoscan/pkg/taxonomy"
)

func strp(s string) *string { return &s }

func yearSchema() *taxonomy.ValidationSchema {
	min := 1900.0
	max := 2100.0
	return &taxonomy.ValidationSchema{Type: "number", Minimum: &min, Maximum: &max}
}

func TestValidateColumnQuarantineDefault(t *testing.T) {
	values := []*string{strp("2020"), strp("not-a-year"), nil, strp("1899")}
	result := ValidateColumn(values, yearSchema(), Quarantine)

	require.Equal(t, 1, result.Stats.Valid)
	require.Equal(t, 2, result.Stats.Invalid)
	require.Equal(t, 1, result.Stats.Null)
	assert.InDelta(t, 1.0/3.0, result.Stats.ValidityRate, 0.0001)
	require.Len(t, result.Quarantined, 2)
	assert.Equal(t, 1, result.Quarantined[0].RowIndex)
	assert.Equal(t, 3, result.Quarantined[1].RowIndex)
	assert.Nil(t, result.Output[1])
}

func TestValidateColumnSetNull(t *testing.T) {
	values := []*string{strp("2020"), strp("bad")}
	result := ValidateColumn(values, yearSchema(), SetNull)
	assert.NotNil(t, result.Output[0])
	assert.Nil(t, result.Output[1])
	assert.Empty(t, result.Quarantined)
}

func TestValidateColumnForwardFill(t *testing.T) {
	values := []*string{strp("2020"), strp("bad"), strp("bad-again")}
	result := ValidateColumn(values, yearSchema(), ForwardFill)
	require.NotNil(t, result.Output[1])
	assert.Equal(t, "2020", *result.Output[1])
	require.NotNil(t, result.Output[2])
	assert.Equal(t, "2020", *result.Output[2])
}

func TestValidateColumnForwardFillWithNoPriorValidIsNull(t *testing.T) {
	values := []*string{strp("bad"), strp("2020")}
	result := ValidateColumn(values, yearSchema(), ForwardFill)
	assert.Nil(t, result.Output[0])
	assert.NotNil(t, result.Output[1])
}

func TestValidateColumnBackwardFill(t *testing.T) {
	values := []*string{strp("bad"), strp("bad-again"), strp("2020")}
	result := ValidateColumn(values, yearSchema(), BackwardFill)
	require.NotNil(t, result.Output[0])
	assert.Equal(t, "2020", *result.Output[0])
	require.NotNil(t, result.Output[1])
	assert.Equal(t, "2020", *result.Output[1])
}

func TestValidateColumnBackwardFillWithNoFollowingValidIsNull(t *testing.T) {
	values := []*string{strp("2020"), strp("bad")}
	result := ValidateColumn(values, yearSchema(), BackwardFill)
	assert.NotNil(t, result.Output[0])
	assert.Nil(t, result.Output[1])
}

func TestValidateColumnTopErrorPatterns(t *testing.T) {
	schema := &taxonomy.ValidationSchema{Type: "number"}
	values := []*string{strp("x"), strp("y"), strp("1")}
	result := ValidateColumn(values, schema, Quarantine)
	require.NotEmpty(t, result.Stats.TopErrorPatterns)
	assert.Equal(t, "type", result.Stats.TopErrorPatterns[0].Constraint)
	assert.Equal(t, 2, result.Stats.TopErrorPatterns[0].Count)
}
