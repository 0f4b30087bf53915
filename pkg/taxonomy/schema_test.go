package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateValueRunsAllKeywordsWithoutShortCircuit(t *testing.T) {
	minLen := 5
	maxLen := 10
	schema := &ValidationSchema{
		Type:      "string",
		Pattern:   "^[0-9]+$",
		MinLength: &minLen,
		MaxLength: &maxLen,
	}
	require := compileSchema(schema, "test")
	assert.NoError(t, require)

	result := ValidateValue("ab", schema)
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "pattern")
	assert.Contains(t, result.Errors, "minLength")
	assert.ElementsMatch(t, result.ChecksRun, []string{"type", "pattern", "minLength", "maxLength"})
}

func TestValidateValueEnum(t *testing.T) {
	schema := &ValidationSchema{Enum: []string{"a", "b", "c"}}
	assert.True(t, ValidateValue("b", schema).IsValid)
	assert.False(t, ValidateValue("z", schema).IsValid)
}

func TestValidateValueNumericBounds(t *testing.T) {
	min := 1900.0
	max := 2100.0
	schema := &ValidationSchema{Type: "number", Minimum: &min, Maximum: &max}

	assert.True(t, ValidateValue("2020", schema).IsValid)
	assert.False(t, ValidateValue("1899", schema).IsValid)
	assert.False(t, ValidateValue("2101", schema).IsValid)
	assert.False(t, ValidateValue("not-a-number", schema).IsValid)
}

func TestCompileSchemaRejectsInvalidRegex(t *testing.T) {
	schema := &ValidationSchema{Pattern: "("}
	err := compileSchema(schema, "test-location")
	assert.Error(t, err)
}
