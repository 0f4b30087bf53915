package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLuhnCheckDigitKnownVisa(t *testing.T) {
	assert.Equal(t, byte('1'), luhnCheckDigit("411111111111111"))
}

func TestCusipCheckDigitKnownApple(t *testing.T) {
	assert.Equal(t, byte('0'), cusipCheckDigit("03783310"))
}

func TestSedolCheckDigitKnownApple(t *testing.T) {
	assert.Equal(t, byte('1'), sedolCheckDigit("204625"))
}

func TestIsbn10CheckDigitRemainderTen(t *testing.T) {
	assert.Equal(t, byte('X'), isbn10CheckDigit("080442957"))
}

func TestEanCheckDigit(t *testing.T) {
	assert.Equal(t, byte('7'), eanCheckDigit("590123412345"))
}

func TestIsinCheckDigit(t *testing.T) {
	assert.Equal(t, byte('5'), isinCheckDigit("US037833100"))
}

func TestMod9710CheckDigits(t *testing.T) {
	assert.Equal(t, "43", mod9710CheckDigits("529900T8BM49AURSD"))
}
