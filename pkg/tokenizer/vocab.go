// Package tokenizer encodes strings into fixed-length integer sequences
// for the CharCNN classifier. The vocabulary is a process constant: it
// ships with the model and changing it requires retraining.
package tokenizer

// CharVocab is the fixed 97-symbol mapping shared by the tokenizer and
// the classifier's embedding table. Index 0 is reserved for
// out-of-vocabulary characters; everything else is assigned in a fixed
// scan order so the mapping never depends on map iteration order.
var CharVocab = buildVocab()

const vocabSize = 97

func buildVocab() map[rune]uint32 {
	var symbols []rune
	for r := rune('a'); r <= 'z'; r++ {
		symbols = append(symbols, r)
	}
	for r := rune('A'); r <= 'Z'; r++ {
		symbols = append(symbols, r)
	}
	for r := rune('0'); r <= '9'; r++ {
		symbols = append(symbols, r)
	}
	symbols = append(symbols, []rune(" .,-_/:@+()[]{}'\"!?#$%&*=<>|\\^`;\t\n")...)

	vocab := make(map[rune]uint32, len(symbols)+1)
	next := uint32(1)
	for _, r := range symbols {
		if _, exists := vocab[r]; exists {
			continue
		}
		if int(next) >= vocabSize {
			break
		}
		vocab[r] = next
		next++
	}
	return vocab
}

// VocabSize is the total vocabulary size including the OOV slot 0.
func VocabSize() int { return vocabSize }
