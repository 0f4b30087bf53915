package classifier

import (
	"fmt"
	"math"

	"taxoscan/pkg/tokenizer"
)

// network holds the fixed-architecture CharCNN weights named in
// spec.md §4.D: an embedding table, one 1-D convolution per kernel
// size, a fully-connected hidden layer, and a final linear projection.
// It is immutable after construction and safe to share read-only
// across goroutines.
type network struct {
	config Config
	labels []string

	embedding   Tensor // [vocab_size, embed_dim]
	convWeight  map[int]Tensor // kernel size -> [num_filters, embed_dim, k]
	convBias    map[int]Tensor // kernel size -> [num_filters]
	denseWeight Tensor         // [hidden_dim, concat_dim]
	denseBias   Tensor         // [hidden_dim]
	outWeight   Tensor         // [num_classes, hidden_dim]
	outBias     Tensor         // [num_classes]
}

func newNetwork(cfg Config, labels []string, tensors map[string]Tensor) (*network, error) {
	n := &network{
		config:     cfg,
		labels:     labels,
		convWeight: make(map[int]Tensor, len(cfg.KernelSizes)),
		convBias:   make(map[int]Tensor, len(cfg.KernelSizes)),
	}

	get := func(name string) (Tensor, error) {
		t, ok := tensors[name]
		if !ok {
			return Tensor{}, newError(KindModel, name, "missing required tensor", nil)
		}
		return t, nil
	}

	var err error
	if n.embedding, err = get("embedding"); err != nil {
		return nil, err
	}
	for _, k := range cfg.KernelSizes {
		w, err := get(fmt.Sprintf("conv.%d.weight", k))
		if err != nil {
			return nil, err
		}
		b, err := get(fmt.Sprintf("conv.%d.bias", k))
		if err != nil {
			return nil, err
		}
		n.convWeight[k] = w
		n.convBias[k] = b
	}
	if n.denseWeight, err = get("dense.weight"); err != nil {
		return nil, err
	}
	if n.denseBias, err = get("dense.bias"); err != nil {
		return nil, err
	}
	if n.outWeight, err = get("output.weight"); err != nil {
		return nil, err
	}
	if n.outBias, err = get("output.bias"); err != nil {
		return nil, err
	}
	return n, nil
}

// forward runs the embedding -> conv -> maxpool -> dense -> output
// pipeline for one token sequence and returns a softmax distribution
// over classes.
func (n *network) forward(tokens []uint32) []float64 {
	cfg := n.config
	embed := make([][]float32, len(tokens))
	for i, tok := range tokens {
		row := make([]float32, cfg.EmbedDim)
		base := int(tok) * cfg.EmbedDim
		if base >= 0 && base+cfg.EmbedDim <= len(n.embedding.Data) {
			copy(row, n.embedding.Data[base:base+cfg.EmbedDim])
		}
		embed[i] = row
	}

	var pooled []float32
	for _, k := range cfg.KernelSizes {
		pooled = append(pooled, n.convAndPool(embed, k)...)
	}

	hidden := n.denseLayer(pooled)
	logits := n.outputLayer(hidden)
	return softmax(logits)
}

// convAndPool applies the kernel-size-k convolution over embed and
// global-max-pools each filter's activations across time.
func (n *network) convAndPool(embed [][]float32, k int) []float32 {
	cfg := n.config
	weight := n.convWeight[k] // [num_filters, embed_dim, k]
	bias := n.convBias[k]     // [num_filters]
	seqLen := len(embed)

	out := make([]float32, cfg.NumFilters)
	for f := 0; f < cfg.NumFilters; f++ {
		maxVal := float32(math.Inf(-1))
		positions := seqLen - k + 1
		if positions < 1 {
			positions = 0
		}
		for p := 0; p < positions; p++ {
			var sum float32
			for e := 0; e < cfg.EmbedDim; e++ {
				for j := 0; j < k; j++ {
					wIdx := f*cfg.EmbedDim*k + e*k + j
					sum += weight.Data[wIdx] * embed[p+j][e]
				}
			}
			sum += bias.Data[f]
			activated := relu(sum)
			if activated > maxVal {
				maxVal = activated
			}
		}
		if positions == 0 {
			maxVal = 0
		}
		out[f] = maxVal
	}
	return out
}

func (n *network) denseLayer(pooled []float32) []float32 {
	cfg := n.config
	out := make([]float32, cfg.HiddenDim)
	for h := 0; h < cfg.HiddenDim; h++ {
		var sum float32
		for i, v := range pooled {
			sum += n.denseWeight.Data[h*len(pooled)+i] * v
		}
		sum += n.denseBias.Data[h]
		out[h] = relu(sum)
	}
	return out
}

func (n *network) outputLayer(hidden []float32) []float64 {
	cfg := n.config
	out := make([]float64, cfg.NumClasses)
	for c := 0; c < cfg.NumClasses; c++ {
		var sum float32
		for h, v := range hidden {
			sum += n.outWeight.Data[c*len(hidden)+h] * v
		}
		sum += n.outBias.Data[c]
		out[c] = float64(sum)
	}
	return out
}

func relu(x float32) float32 {
	if x < 0 {
		return 0
	}
	return x
}

func softmax(logits []float64) []float64 {
	maxVal := logits[0]
	for _, v := range logits[1:] {
		if v > maxVal {
			maxVal = v
		}
	}
	sum := 0.0
	exps := make([]float64, len(logits))
	for i, v := range logits {
		e := math.Exp(v - maxVal)
		exps[i] = e
		sum += e
	}
	for i := range exps {
		exps[i] /= sum
	}
	return exps
}

// encode delegates to the shared tokenizer so the classifier and any
// external trainer agree on the exact same vocabulary.
func (n *network) encode(s string) []uint32 {
	return tokenizer.Encode(s, n.config.MaxLength)
}
