package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.SeedURL = "https://example.com"
	return cfg
}

func TestConfigValidate_Valid(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestConfigValidate_RejectsBadSeed(t *testing.T) {
	for _, seed := range []string{"", "example.com", "not a url", "ftp://example.com"} {
		cfg := validConfig()
		cfg.SeedURL = seed
		err := cfg.Validate()
		require.Error(t, err, seed)
		assert.ErrorIs(t, err, ErrConfiguration)
	}
}

func TestConfigValidate_RejectsNonPositiveBudget(t *testing.T) {
	cfg := validConfig()
	cfg.MaxPages = 0
	assert.ErrorIs(t, cfg.Validate(), ErrConfiguration)

	cfg = validConfig()
	cfg.MaxDepth = -1
	assert.ErrorIs(t, cfg.Validate(), ErrConfiguration)

	cfg = validConfig()
	cfg.Workers = 0
	assert.ErrorIs(t, cfg.Validate(), ErrConfiguration)

	cfg = validConfig()
	cfg.QuickWinsTopN = 0
	assert.ErrorIs(t, cfg.Validate(), ErrConfiguration)
}

func TestConfigValidate_RejectsUnknownRenderer(t *testing.T) {
	cfg := validConfig()
	cfg.Renderer = "firefox"
	assert.ErrorIs(t, cfg.Validate(), ErrConfiguration)
}

func TestConfigValidate_RejectsBadExcludePattern(t *testing.T) {
	cfg := validConfig()
	cfg.ExcludePatterns = []string{"(unclosed"}
	assert.ErrorIs(t, cfg.Validate(), ErrConfiguration)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 40, cfg.MaxPages)
	assert.Equal(t, 10, cfg.QuickWinsTopN)
	assert.Equal(t, RendererChromium, cfg.Renderer)
	assert.NotEmpty(t, cfg.AxeScriptURL)
}
