package embedded

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxoscan/pkg/classifier"
)

func TestLoadEmbeddedSucceedsWithoutFilesystemAccess(t *testing.T) {
	c, err := classifier.LoadEmbedded()
	require.NoError(t, err)
	assert.Equal(t, 50, c.Config().NumClasses)
	assert.Len(t, c.Labels(), 50)
}

func TestLoadFallsBackToEmbeddedForMissingPath(t *testing.T) {
	c, err := classifier.Load("/nonexistent/taxoscan/model/dir")
	require.NoError(t, err)
	assert.NotEmpty(t, c.Labels())
}

func TestClassifyProducesLabelFromEmbeddedMap(t *testing.T) {
	c, err := classifier.LoadEmbedded()
	require.NoError(t, err)
	pred := c.Classify("alice@example.com")
	assert.Contains(t, c.Labels(), pred.Label)
}
