package generator

import (
	"fmt"
	"math/rand"
	"strings"

	"taxoscan/pkg/taxonomy"
)

var jsonKeys = []string{"a", "id", "name", "count", "status"}

func genJSONDocument(r *rand.Rand, _ taxonomy.Locale) string {
	n := 1 + r.Intn(3)
	fields := make([]string, n)
	used := map[string]bool{}
	for i := 0; i < n; i++ {
		k := randChoice(r, jsonKeys)
		for used[k] {
			k = randChoice(r, jsonKeys)
		}
		used[k] = true
		fields[i] = fmt.Sprintf("%q:%d", k, r.Intn(100))
	}
	return "{" + strings.Join(fields, ",") + "}"
}

func genCSVRow(r *rand.Rand, _ taxonomy.Locale) string {
	n := 2 + r.Intn(4)
	fields := make([]string, n)
	for i := range fields {
		fields[i] = randChoice(r, plainTextWords)
	}
	return strings.Join(fields, ",")
}

func genFormData(r *rand.Rand, _ taxonomy.Locale) string {
	n := 1 + r.Intn(3)
	pairs := make([]string, n)
	used := map[string]bool{}
	for i := 0; i < n; i++ {
		k := randChoice(r, jsonKeys)
		for used[k] {
			k = randChoice(r, jsonKeys)
		}
		used[k] = true
		pairs[i] = fmt.Sprintf("%s=%d", k, r.Intn(100))
	}
	return strings.Join(pairs, "&")
}

func registerContainerArms(reg map[string]armFunc) {
	reg["container.format.json_document"] = genJSONDocument
	reg["container.format.csv_row"] = genCSVRow
	reg["container.format.form_data"] = genFormData
}
