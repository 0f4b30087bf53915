package main

import (
	"taxoscan/internal/config"
	"taxoscan/pkg/classifier"

	_ "taxoscan/pkg/classifier/embedded"
)

// loadClassifier resolves the classifier artifact the way spec.md
// §4.D's load-path contract requires: an explicit -model flag wins,
// then a configured MODEL_PATH override, then the embedded default.
func loadClassifier(modelFlag string) (*classifier.Classifier, error) {
	path := modelFlag
	if path == "" {
		path = config.GetModelPath()
	}
	if path == "" {
		return classifier.LoadEmbedded()
	}
	return classifier.Load(path)
}
