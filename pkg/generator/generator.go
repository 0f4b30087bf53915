// Package generator produces checksum-correct, deterministic synthetic
// text samples for every type in the taxonomy registry, plus the
// {text, label} pairs used to train and validate the classifier.
package generator

import (
	"math/rand"
	"sort"

	"taxoscan/pkg/taxonomy"
)

// armFunc draws one synthetic value for a type, routed by locale where
// the type is locale_specific. Universal types ignore the locale.
type armFunc func(r *rand.Rand, locale taxonomy.Locale) string

var arms = buildRegistry()

func buildRegistry() map[string]armFunc {
	reg := map[string]armFunc{}
	registerDatetimeArms(reg)
	registerTechnologyArms(reg)
	registerIdentityArms(reg)
	registerGeographyArms(reg)
	registerRepresentationArms(reg)
	registerContainerArms(reg)
	return reg
}

// Arms returns the set of taxonomy keys with a registered generator arm.
func Arms() map[string]bool {
	out := make(map[string]bool, len(arms))
	for k := range arms {
		out[k] = true
	}
	return out
}

// HasArm reports whether key has a registered generator.
func HasArm(key string) bool {
	_, ok := arms[key]
	return ok
}

// Generate draws count deterministic samples for key using the
// UNIVERSAL locale, labeled with the 3-level key; locale-routed arms
// fall back to their EN_US template. Returns KindUnknownKey if no arm
// is registered for key.
func Generate(key string, count int, seed int64) ([]Sample, error) {
	texts, err := draw(key, taxonomy.LocaleUniversal, count, seed)
	if err != nil {
		return nil, err
	}
	samples := make([]Sample, len(texts))
	for i, text := range texts {
		samples[i] = Sample{Text: text, Label: key}
	}
	return samples, nil
}

// GenerateLocalized draws count deterministic samples for key routed
// through locale, labeled with the 4-level "domain.category.type.LOCALE"
// key. Locale is ignored by arms that do not vary by locale.
func GenerateLocalized(key string, locale taxonomy.Locale, count int, seed int64) ([]Sample, error) {
	texts, err := draw(key, locale, count, seed)
	if err != nil {
		return nil, err
	}
	label := key + "." + string(locale)
	samples := make([]Sample, len(texts))
	for i, text := range texts {
		samples[i] = Sample{Text: text, Label: label}
	}
	return samples, nil
}

// draw runs the registered arm for key count times, deriving a fresh
// seeded source per index.
func draw(key string, locale taxonomy.Locale, count int, seed int64) ([]string, error) {
	arm, ok := arms[key]
	if !ok {
		return nil, newError(KindUnknownKey, key, "no generator arm registered for this taxonomy key")
	}
	texts := make([]string, count)
	for i := 0; i < count; i++ {
		r := newRand(deriveSeed(seed, i))
		texts[i] = arm(r, locale)
	}
	return texts, nil
}

// GenerateAll draws countPerLabel samples for every registered key
// whose release_priority meets priorityFloor, in deterministic key
// order, labeled with the 3-level key regardless of which locale a
// locale_specific arm drew from.
func GenerateAll(tax *taxonomy.Taxonomy, priorityFloor, countPerLabel int, seed int64) ([]Sample, error) {
	return generateAll(tax, priorityFloor, countPerLabel, seed, nil, func(key string, _ taxonomy.Locale) string {
		return key
	})
}

// GenerateAllLocalized draws countPerLabel samples for every registered
// key meeting priorityFloor, labeled with the 4-level
// "domain.category.type.LOCALE" key. For locale_specific types, locales
// (when non-empty) restricts which of the type's own locales are drawn
// from; a nil/empty locales list draws from every locale the type
// declares.
func GenerateAllLocalized(tax *taxonomy.Taxonomy, priorityFloor, countPerLabel int, seed int64, locales []taxonomy.Locale) ([]Sample, error) {
	return generateAll(tax, priorityFloor, countPerLabel, seed, locales, func(key string, locale taxonomy.Locale) string {
		return key + "." + string(locale)
	})
}

// generateAll is the shared Cartesian-expansion walk behind GenerateAll
// and GenerateAllLocalized; label builds each sample's Label from the
// key and the locale it was actually drawn under.
func generateAll(tax *taxonomy.Taxonomy, priorityFloor, countPerLabel int, seed int64, locales []taxonomy.Locale, label func(key string, locale taxonomy.Locale) string) ([]Sample, error) {
	keys := make([]string, 0, len(arms))
	for k := range arms {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	allowed := map[taxonomy.Locale]bool{}
	for _, l := range locales {
		allowed[l] = true
	}

	var out []Sample
	for _, key := range keys {
		def, err := tax.Get(key)
		if err != nil {
			continue
		}
		if def.ReleasePriority < priorityFloor {
			continue
		}
		locSet := def.Locales
		if len(allowed) > 0 {
			var filtered []taxonomy.Locale
			for _, l := range locSet {
				if allowed[l] {
					filtered = append(filtered, l)
				}
			}
			if len(filtered) > 0 {
				locSet = filtered
			}
		}
		for _, loc := range locSet {
			texts, err := draw(key, loc, countPerLabel, seed)
			if err != nil {
				return nil, err
			}
			lbl := label(key, loc)
			for _, text := range texts {
				out = append(out, Sample{Text: text, Label: lbl})
			}
			seed = deriveSeed(seed, len(out))
		}
	}
	return out, nil
}
