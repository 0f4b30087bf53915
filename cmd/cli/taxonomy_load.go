package main

import (
	"taxoscan/internal/config"
	"taxoscan/pkg/taxonomy"
)

// loadTaxonomy resolves the taxonomy document directory the same way
// loadClassifier resolves the model artifact: an explicit flag wins,
// then the configured override, then the bundled "taxonomy" default.
func loadTaxonomy(dirFlag string) (*taxonomy.Taxonomy, error) {
	path := dirFlag
	if path == "" {
		path = config.GetTaxonomyPath()
	}
	return taxonomy.Load(path)
}
