package generator

import (
	"fmt"
	"math/rand"

	"taxoscan/pkg/taxonomy"
)

func genYear(r *rand.Rand, _ taxonomy.Locale) string {
	switch weightedChoice(r, []float64{0.6, 0.25, 0.15}) {
	case 0:
		return fmt.Sprintf("%d", randDigitsRange(r, 1900, 2025))
	case 1:
		return fmt.Sprintf("%d", randDigitsRange(r, 1000, 1900))
	default:
		return fmt.Sprintf("%d", randDigitsRange(r, 2026, 2100))
	}
}

func randDateParts(r *rand.Rand) (year, month, day int) {
	year = randDigitsRange(r, 1970, 2030)
	month = randDigitsRange(r, 1, 12)
	day = randDigitsRange(r, 1, 28)
	return
}

func randTimeParts(r *rand.Rand) (h, m, s int) {
	return r.Intn(24), r.Intn(60), r.Intn(60)
}

func genRFC3339(r *rand.Rand, _ taxonomy.Locale) string {
	year, month, day := randDateParts(r)
	h, m, s := randTimeParts(r)
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02dZ", year, month, day, h, m, s)
}

func genISO8601Offset(r *rand.Rand, _ taxonomy.Locale) string {
	year, month, day := randDateParts(r)
	h, m, s := randTimeParts(r)
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02dZ", year, month, day, h, m, s)
}

func genUSSlash(r *rand.Rand, _ taxonomy.Locale) string {
	year, month, day := randDateParts(r)
	return fmt.Sprintf("%d/%d/%04d", month, day, year)
}

func genEUSlash(r *rand.Rand, _ taxonomy.Locale) string {
	year, month, day := randDateParts(r)
	return fmt.Sprintf("%d/%d/%04d", day, month, year)
}

func genShortDMY(r *rand.Rand, _ taxonomy.Locale) string {
	_, month, day := randDateParts(r)
	yy := r.Intn(100)
	return fmt.Sprintf("%02d-%02d-%02d", day, month, yy)
}

func genShortMDY(r *rand.Rand, _ taxonomy.Locale) string {
	_, month, day := randDateParts(r)
	yy := r.Intn(100)
	return fmt.Sprintf("%02d-%02d-%02d", month, day, yy)
}

func genCompactDMY(r *rand.Rand, _ taxonomy.Locale) string {
	_, month, day := randDateParts(r)
	yy := r.Intn(100)
	return fmt.Sprintf("%02d%02d%02d", day, month, yy)
}

func genCompactMDY(r *rand.Rand, _ taxonomy.Locale) string {
	_, month, day := randDateParts(r)
	yy := r.Intn(100)
	return fmt.Sprintf("%02d%02d%02d", month, day, yy)
}

func registerDatetimeArms(reg map[string]armFunc) {
	reg["datetime.component.year"] = genYear
	reg["datetime.timestamp.rfc_3339"] = genRFC3339
	reg["datetime.timestamp.iso8601_offset"] = genISO8601Offset
	reg["datetime.date.us_slash"] = genUSSlash
	reg["datetime.date.eu_slash"] = genEUSlash
	reg["datetime.date.short_dmy"] = genShortDMY
	reg["datetime.date.short_mdy"] = genShortMDY
	reg["datetime.date.compact_dmy"] = genCompactDMY
	reg["datetime.date.compact_mdy"] = genCompactMDY
}
