package generator

import (
	"fmt"
	"math/rand"
	"strings"

	"taxoscan/pkg/taxonomy"
)

var plainTextWords = []string{
	"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
	"report", "contains", "several", "fields", "and", "values",
}

func genPlainText(r *rand.Rand, _ taxonomy.Locale) string {
	n := 3 + r.Intn(5)
	words := make([]string, n)
	for i := range words {
		words[i] = randChoice(r, plainTextWords)
	}
	return strings.Join(words, " ")
}

func genSlug(r *rand.Rand, locale taxonomy.Locale) string {
	n := 2 + r.Intn(4)
	words := make([]string, n)
	for i := range words {
		words[i] = randChoice(r, plainTextWords)
	}
	return strings.Join(words, "-")
}

var emojiSet = []string{"😀", "🎉", "🚀", "🐍", "🔥", "✨", "🌟", "🐙"}

func genEmoji(r *rand.Rand, _ taxonomy.Locale) string {
	return randChoice(r, emojiSet)
}

var genderSymbolSet = []string{"♂", "♀", "⚧", "⚪"}

func genGenderSymbol(r *rand.Rand, _ taxonomy.Locale) string {
	return randChoice(r, genderSymbolSet)
}

func genDecimalNumber(r *rand.Rand, _ taxonomy.Locale) string {
	v := r.Float64() * 10000
	return fmt.Sprintf("%.2f", v)
}

func genIncrement(r *rand.Rand, _ taxonomy.Locale) string {
	return fmt.Sprintf("%d", randDigitsRange(r, 1, 999999))
}

// hashLengths are the four canonical MD5/SHA-1/SHA-256/SHA-512 hex
// digest lengths. tokenHexLengths deliberately avoids all of them so
// token_hex samples never collide with a canonical hash length.
var hashLengths = []int{32, 40, 64, 128}
var tokenHexLengths = []int{16, 20, 24, 28, 36, 44, 48}

func genHash(r *rand.Rand, _ taxonomy.Locale) string {
	n := randChoice(r, hashLengths)
	return randFrom(r, "0123456789abcdef", n)
}

func genTokenHex(r *rand.Rand, _ taxonomy.Locale) string {
	n := randChoice(r, tokenHexLengths)
	return randFrom(r, "0123456789abcdef", n)
}

var urlSafeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

func genURLSafeToken(r *rand.Rand, _ taxonomy.Locale) string {
	n := 16 + r.Intn(49)
	return randFrom(r, urlSafeAlphabet, n)
}

func registerRepresentationArms(reg map[string]armFunc) {
	reg["representation.text.plain_text"] = genPlainText
	reg["representation.text.slug"] = genSlug
	reg["representation.symbol.emoji"] = genEmoji
	reg["representation.symbol.gender_symbol"] = genGenderSymbol
	reg["representation.numeric.decimal_number"] = genDecimalNumber
	reg["representation.numeric.increment"] = genIncrement
	reg["representation.hash.hash"] = genHash
	reg["representation.hash.token_hex"] = genTokenHex
	reg["representation.token.url_safe"] = genURLSafeToken
}
