package classifier

import (
	"sort"

	"taxoscan/pkg/postproc"
)

// Prediction is a single label/confidence pair.
type Prediction struct {
	Label      string
	Confidence float64
}

// Classify runs a single string through the network and returns the
// top-1 prediction after post-processing.
func (c *Classifier) Classify(s string) Prediction {
	scores := c.net.forward(c.net.encode(s))
	top := argmax(scores)
	label, _ := postproc.Apply(s, c.net.labels[top])
	return Prediction{Label: label, Confidence: scores[top]}
}

// ClassifyBatch runs every string through Classify in turn, preserving
// input order on output. There is no single batched forward pass: each
// string gets its own forward pass and is post-processed right after it.
func (c *Classifier) ClassifyBatch(strings []string) []Prediction {
	out := make([]Prediction, len(strings))
	for i, s := range strings {
		out[i] = c.Classify(s)
	}
	return out
}

// TopK returns the k highest-scoring classes before post-processing,
// for diagnostics and column-mode voting.
func (c *Classifier) TopK(s string, k int) []Prediction {
	scores := c.net.forward(c.net.encode(s))
	indices := make([]int, len(scores))
	for i := range indices {
		indices[i] = i
	}
	sort.Slice(indices, func(i, j int) bool { return scores[indices[i]] > scores[indices[j]] })
	if k > len(indices) {
		k = len(indices)
	}
	out := make([]Prediction, k)
	for i := 0; i < k; i++ {
		idx := indices[i]
		out[i] = Prediction{Label: c.net.labels[idx], Confidence: scores[idx]}
	}
	return out
}

func argmax(scores []float64) int {
	best := 0
	for i, v := range scores {
		if v > scores[best] {
			best = i
		}
	}
	return best
}
