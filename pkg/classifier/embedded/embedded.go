// Package embedded binds a default CharCNN artifact into the binary at
// compile time, so a release build can classify without any
// filesystem access (spec.md §4.D's embedded-path contract).
package embedded

import (
	_ "embed"

	"taxoscan/pkg/classifier"
)

//go:embed assets/model.safetensors
var defaultWeights []byte

//go:embed assets/labels.json
var defaultLabels []byte

//go:embed assets/config.json
var defaultConfig []byte

func init() {
	classifier.RegisterEmbeddedDefault(DefaultModelBytes)
}

// DefaultModelBytes returns the three embedded artifact slices: weight
// tensors, the ordered label map, and the architecture config.
func DefaultModelBytes() (weights, labels, config []byte) {
	return defaultWeights, defaultLabels, defaultConfig
}
