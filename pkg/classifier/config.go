package classifier

// Config is the fixed-shape architecture record that must match the
// artifact the weights were trained with.
type Config struct {
	VocabSize   int   `json:"vocab_size" yaml:"vocab_size"`
	EmbedDim    int   `json:"embed_dim" yaml:"embed_dim"`
	NumFilters  int   `json:"num_filters" yaml:"num_filters"`
	KernelSizes []int `json:"kernel_sizes" yaml:"kernel_sizes"`
	HiddenDim   int   `json:"hidden_dim" yaml:"hidden_dim"`
	MaxLength   int   `json:"max_length" yaml:"max_length"`
	NumClasses  int   `json:"num_classes" yaml:"num_classes"`
}

// DefaultConfig matches the fixed architecture named in spec.md §4.D.
func DefaultConfig(vocabSize, maxLength, numClasses int) Config {
	return Config{
		VocabSize:   vocabSize,
		EmbedDim:    32,
		NumFilters:  64,
		KernelSizes: []int{2, 3, 4, 5},
		HiddenDim:   128,
		MaxLength:   maxLength,
		NumClasses:  numClasses,
	}
}
