package classifier

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Classifier is the loaded, immutable artifact: network weights plus
// the ordered label map. It is safe to share read-only across
// goroutines once Load returns (spec.md §5 shared-resource model).
type Classifier struct {
	net *network
}

// Labels returns the ordered label map (index = class id).
func (c *Classifier) Labels() []string { return c.net.labels }

// Config returns the architecture record the loaded weights were
// trained with.
func (c *Classifier) Config() Config { return c.net.config }

// Load tries to read the three artifact files (model.safetensors,
// labels.json, config.json or config.yaml) from the directory at path.
// If any required file is absent or unreadable, it falls back to the
// embedded default bytes — the embedded path must always succeed, per
// spec.md §4.D's load-path contract.
func Load(path string) (*Classifier, error) {
	weights, labelsJSON, configBytes, configIsYAML, err := readArtifactDir(path)
	if err != nil {
		return LoadEmbedded()
	}
	return build(weights, labelsJSON, configBytes, configIsYAML, path)
}

// LoadFromBytes constructs a Classifier directly from the three
// artifact byte slices, used for the embedded release path.
func LoadFromBytes(weights, labelsJSON, configJSON []byte) (*Classifier, error) {
	return build(weights, labelsJSON, configJSON, false, "embedded")
}

// embeddedBytesFunc is set by pkg/classifier/embedded's init so this
// package can fall back to the embedded artifact without importing
// the embedded package directly (which would create an import cycle,
// since the embedded package imports this one for its types).
var embeddedBytesFunc func() (weights, labels, config []byte)

// RegisterEmbeddedDefault is called by pkg/classifier/embedded's init
// to wire the release-path fallback.
func RegisterEmbeddedDefault(f func() (weights, labels, config []byte)) {
	embeddedBytesFunc = f
}

// LoadEmbedded constructs a Classifier from the registered embedded
// default bytes. A binary built without importing pkg/classifier/embedded
// has no registered default; that is a configuration error reported at
// construction, per spec.md §4.D.
func LoadEmbedded() (*Classifier, error) {
	if embeddedBytesFunc == nil {
		return nil, newError(KindModel, "embedded", "no embedded model registered: import taxoscan/pkg/classifier/embedded", nil)
	}
	weights, labels, config := embeddedBytesFunc()
	return build(weights, labels, config, false, "embedded")
}

func readArtifactDir(path string) (weights, labelsJSON, configBytes []byte, isYAML bool, err error) {
	weights, err = os.ReadFile(filepath.Join(path, "model.safetensors"))
	if err != nil {
		return nil, nil, nil, false, err
	}
	labelsJSON, err = os.ReadFile(filepath.Join(path, "labels.json"))
	if err != nil {
		return nil, nil, nil, false, err
	}
	configBytes, err = os.ReadFile(filepath.Join(path, "config.json"))
	if err == nil {
		return weights, labelsJSON, configBytes, false, nil
	}
	configBytes, err = os.ReadFile(filepath.Join(path, "config.yaml"))
	if err != nil {
		return nil, nil, nil, false, err
	}
	return weights, labelsJSON, configBytes, true, nil
}

func build(weightsBlob, labelsJSON, configBytes []byte, configIsYAML bool, location string) (*Classifier, error) {
	var labels []string
	if err := json.Unmarshal(labelsJSON, &labels); err != nil {
		return nil, newError(KindModel, location, "cannot parse labels.json", err)
	}

	var cfg Config
	var err error
	if configIsYAML {
		err = yaml.Unmarshal(configBytes, &cfg)
	} else {
		err = json.Unmarshal(configBytes, &cfg)
	}
	if err != nil {
		return nil, newError(KindModel, location, "cannot parse classifier config", err)
	}
	if cfg.NumClasses != len(labels) {
		return nil, newError(KindModel, location, "config.num_classes does not match labels.json length", nil)
	}

	tensors, err := DecodeSafetensors(weightsBlob)
	if err != nil {
		return nil, newError(KindModel, location, "cannot decode model.safetensors", err)
	}

	net, err := newNetwork(cfg, labels, tensors)
	if err != nil {
		return nil, err
	}
	return &Classifier{net: net}, nil
}
