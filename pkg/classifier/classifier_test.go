package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tinyTensors(cfg Config) map[string]Tensor {
	tensors := map[string]Tensor{
		"embedding":    {Shape: []int{cfg.VocabSize, cfg.EmbedDim}, Data: make([]float32, cfg.VocabSize*cfg.EmbedDim)},
		"dense.bias":   {Shape: []int{cfg.HiddenDim}, Data: make([]float32, cfg.HiddenDim)},
		"output.bias":  {Shape: []int{cfg.NumClasses}, Data: make([]float32, cfg.NumClasses)},
	}
	concatDim := 0
	for _, k := range cfg.KernelSizes {
		tensors[tensorKey(k, "weight")] = Tensor{Shape: []int{cfg.NumFilters, cfg.EmbedDim, k}, Data: make([]float32, cfg.NumFilters*cfg.EmbedDim*k)}
		tensors[tensorKey(k, "bias")] = Tensor{Shape: []int{cfg.NumFilters}, Data: make([]float32, cfg.NumFilters)}
		concatDim += cfg.NumFilters
	}
	tensors["dense.weight"] = Tensor{Shape: []int{cfg.HiddenDim, concatDim}, Data: make([]float32, cfg.HiddenDim*concatDim)}
	tensors["output.weight"] = Tensor{Shape: []int{cfg.NumClasses, cfg.HiddenDim}, Data: make([]float32, cfg.NumClasses*cfg.HiddenDim)}
	return tensors
}

func tensorKey(k int, suffix string) string {
	return "conv." + itoa(k) + "." + suffix
}

func itoa(n int) string {
	digits := "0123456789"
	if n == 0 {
		return "0"
	}
	var b []byte
	for n > 0 {
		b = append([]byte{digits[n%10]}, b...)
		n /= 10
	}
	return string(b)
}

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	cfg := DefaultConfig(97, 32, 4)
	net, err := newNetwork(cfg, []string{"a", "b", "c", "d"}, tinyTensors(cfg))
	require.NoError(t, err)
	return &Classifier{net: net}
}

func TestClassifyReturnsLabelFromMap(t *testing.T) {
	c := newTestClassifier(t)
	pred := c.Classify("hello world")
	assert.Contains(t, c.Labels(), pred.Label)
}

func TestClassifyBatchPreservesOrder(t *testing.T) {
	c := newTestClassifier(t)
	inputs := []string{"one", "two", "three"}
	preds := c.ClassifyBatch(inputs)
	require.Len(t, preds, 3)
	for i, in := range inputs {
		assert.Equal(t, c.Classify(in), preds[i])
	}
}

func TestTopKOrdersByDescendingConfidence(t *testing.T) {
	c := newTestClassifier(t)
	preds := c.TopK("sample value", 4)
	require.Len(t, preds, 4)
	for i := 1; i < len(preds); i++ {
		assert.GreaterOrEqual(t, preds[i-1].Confidence, preds[i].Confidence)
	}
}

func TestSafetensorsRoundTrip(t *testing.T) {
	original := map[string]Tensor{
		"w": {Shape: []int{2, 3}, Data: []float32{1, 2, 3, 4, 5, 6}},
	}
	blob, err := EncodeSafetensors(original)
	require.NoError(t, err)

	decoded, err := DecodeSafetensors(blob)
	require.NoError(t, err)
	assert.Equal(t, original["w"].Shape, decoded["w"].Shape)
	assert.Equal(t, original["w"].Data, decoded["w"].Data)
}

func TestLoadFallsBackToEmbeddedWhenPathMissing(t *testing.T) {
	// Without importing pkg/classifier/embedded, no default is
	// registered; Load on a nonexistent path falls back to the embedded
	// loader, which surfaces that as a model error rather than panicking.
	_, err := Load("/nonexistent/path/that/does/not/exist")
	require.Error(t, err)
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "embedded", cerr.Location)
}
