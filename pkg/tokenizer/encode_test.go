package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDeterministic(t *testing.T) {
	first := Encode("hello@example.com", 32)
	second := Encode("hello@example.com", 32)
	assert.Equal(t, first, second)
}

func TestEncodeLeftAlignedZeroPadded(t *testing.T) {
	out := Encode("ab", 5)
	assert.Len(t, out, 5)
	assert.NotZero(t, out[0])
	assert.NotZero(t, out[1])
	assert.Zero(t, out[2])
	assert.Zero(t, out[3])
	assert.Zero(t, out[4])
}

func TestEncodeTruncatesOnRight(t *testing.T) {
	out := Encode("abcdef", 3)
	assert.Len(t, out, 3)
	assert.Equal(t, Encode("abc", 3), out)
}

func TestEncodeOutOfVocabMapsToZero(t *testing.T) {
	out := Encode("é", 1)
	assert.Equal(t, uint32(0), out[0])
}

func TestVocabSizeIsNinetySeven(t *testing.T) {
	assert.Equal(t, 97, VocabSize())
}

func TestCharVocabHasNoDuplicateIndices(t *testing.T) {
	seen := map[uint32]rune{}
	for r, idx := range CharVocab {
		if other, exists := seen[idx]; exists {
			t.Fatalf("index %d assigned to both %q and %q", idx, other, r)
		}
		seen[idx] = r
	}
}
