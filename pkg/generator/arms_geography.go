package generator

import (
	"fmt"
	"math/rand"

	"taxoscan/pkg/taxonomy"
)

// postalTemplates maps each routed locale to its country-shape postal
// code generator (spec.md §4.C names eight distinct shapes).
var postalTemplates = map[taxonomy.Locale]func(*rand.Rand) string{
	taxonomy.LocaleENUS: func(r *rand.Rand) string {
		if r.Intn(2) == 0 {
			return randDigits(r, 5)
		}
		return randDigits(r, 5) + "-" + randDigits(r, 4)
	},
	taxonomy.LocaleENGB: func(r *rand.Rand) string {
		return fmt.Sprintf("%s%d %d%s", randFrom(r, upperAlpha, 1+r.Intn(2)), r.Intn(10),
			r.Intn(10), randFrom(r, upperAlpha, 2))
	},
	taxonomy.LocaleENCA: func(r *rand.Rand) string {
		return fmt.Sprintf("%s%d%s %d%s%d", randFrom(r, upperAlpha, 1), r.Intn(10),
			randFrom(r, upperAlpha, 1), r.Intn(10), randFrom(r, upperAlpha, 1), r.Intn(10))
	},
	taxonomy.LocaleJA: func(r *rand.Rand) string {
		return randDigits(r, 3) + "-" + randDigits(r, 4)
	},
	taxonomy.LocaleDE: func(r *rand.Rand) string {
		return randDigits(r, 5)
	},
	taxonomy.LocaleFR: func(r *rand.Rand) string {
		return randDigits(r, 5)
	},
	taxonomy.LocaleENAU: func(r *rand.Rand) string {
		return randDigits(r, 4)
	},
	taxonomy.LocaleNL: func(r *rand.Rand) string {
		return randDigits(r, 4) + " " + randFrom(r, upperAlpha, 2)
	},
}

func genPostalCode(r *rand.Rand, locale taxonomy.Locale) string {
	if tmpl, ok := postalTemplates[locale]; ok {
		return tmpl(r)
	}
	return postalTemplates[taxonomy.LocaleENUS](r)
}

func genStreetNumber(r *rand.Rand, _ taxonomy.Locale) string {
	return fmt.Sprintf("%d", randDigitsRange(r, 1, 9999))
}

func genLatitude(r *rand.Rand, _ taxonomy.Locale) string {
	v := -90 + r.Float64()*180
	return fmt.Sprintf("%.4f", v)
}

func genLongitude(r *rand.Rand, _ taxonomy.Locale) string {
	v := -180 + r.Float64()*360
	return fmt.Sprintf("%.4f", v)
}

var placeNamesByLocale = map[taxonomy.Locale][]string{
	taxonomy.LocaleENUS: {"San Francisco", "Austin", "Denver"},
	taxonomy.LocaleENGB: {"London", "Manchester", "Bristol"},
	taxonomy.LocaleDE:   {"Munich", "Hamburg", "Cologne"},
	taxonomy.LocaleFR:   {"Lyon", "Marseille", "Nantes"},
	taxonomy.LocaleES:   {"Madrid", "Sevilla", "Valencia"},
	taxonomy.LocaleIT:   {"Milan", "Turin", "Naples"},
	taxonomy.LocaleJA:   {"Osaka", "Kyoto", "Sapporo"},
	taxonomy.LocaleZH:   {"Shanghai", "Chengdu", "Hangzhou"},
	taxonomy.LocaleKO:   {"Busan", "Incheon", "Daegu"},
}

func genPlaceName(r *rand.Rand, locale taxonomy.Locale) string {
	names, ok := placeNamesByLocale[locale]
	if !ok {
		names = placeNamesByLocale[taxonomy.LocaleENUS]
	}
	return randChoice(r, names)
}

func registerGeographyArms(reg map[string]armFunc) {
	reg["geography.address.postal_code"] = genPostalCode
	reg["geography.address.street_number"] = genStreetNumber
	reg["geography.coordinate.latitude"] = genLatitude
	reg["geography.coordinate.longitude"] = genLongitude
	reg["geography.place.name"] = genPlaceName
}
