package ai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := NewConfig()
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
		assert.Equal(t, "embeddinggemma", cfg.EmbeddingModel)
		assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
	})

	t.Run("options override defaults", func(t *testing.T) {
		cfg := NewConfig(
			WithEmbeddingHost("http://remote:9100/v1"),
			WithEmbeddingModel("text-embedding-3-small"),
			WithRequestTimeout(10*time.Second),
		)
		assert.Equal(t, "http://remote:9100/v1", cfg.EmbeddingHost)
		assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	})
}

func TestConfigNormalize(t *testing.T) {
	t.Run("adds v1 suffix", func(t *testing.T) {
		cfg := NewConfig(WithEmbeddingHost("http://localhost:11434"))
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	})

	t.Run("strips trailing slash before suffix", func(t *testing.T) {
		cfg := NewConfig(WithEmbeddingHost("http://localhost:11434/"))
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	})

	t.Run("idempotent", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Normalize()
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, NewConfig().Validate())
	})

	t.Run("missing host", func(t *testing.T) {
		cfg := NewConfig(WithEmbeddingHost(""))
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing model", func(t *testing.T) {
		cfg := NewConfig(WithEmbeddingModel(""))
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		cfg := NewConfig(WithRequestTimeout(0))
		assert.Error(t, cfg.Validate())
	})
}
