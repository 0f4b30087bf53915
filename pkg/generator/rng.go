package generator

import "math/rand"

// newRand builds a seeded pseudo-random source private to one
// generation call. The generator never reads global randomness, so
// given the same seed, outputs are always reproducible (spec.md §4.C).
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes the base seed with an index so that generating
// count samples for one key produces count distinct, still-deterministic
// draws instead of repeating the same value count times.
func deriveSeed(seed int64, index int) int64 {
	h := uint64(seed)
	h ^= uint64(index) + 0x9e3779b97f4a7c15 + (h << 6) + (h >> 2)
	return int64(h)
}

func randDigits(r *rand.Rand, n int) string {
	digits := make([]byte, n)
	for i := range digits {
		digits[i] = byte('0' + r.Intn(10))
	}
	return string(digits)
}

func randDigitsRange(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

const upperAlpha = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
const alnumUpper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randFrom(r *rand.Rand, alphabet string, n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(out)
}

func randChoice[T any](r *rand.Rand, items []T) T {
	return items[r.Intn(len(items))]
}

func weightedChoice(r *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	x := r.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if x < acc {
			return i
		}
	}
	return len(weights) - 1
}
