package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is a stand-in for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestInitializeConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 86, cfg.Matching.FuzzyThreshold)
	assert.InDelta(t, 0.7, cfg.Matching.MinConfidence, 0.0001)
	assert.InDelta(t, 0.95, cfg.Matching.KeywordExactConfidence, 0.0001)
	assert.InDelta(t, 0.85, cfg.Matching.KeywordSubstringConfidence, 0.0001)
	assert.InDelta(t, 1.2, cfg.Matching.AgreementBoost, 0.0001)
	assert.False(t, cfg.AI.Enabled)
	assert.InDelta(t, 0.75, cfg.AI.Confidence, 0.0001)
	assert.NotEmpty(t, cfg.Learner.Stopwords)
	assert.NotEmpty(t, cfg.Categories)
}

func TestInitializeConfig_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("EXPENSECAT_MATCHING_FUZZY_THRESHOLD", "92")
	t.Setenv("EXPENSECAT_LOG_LEVEL", "debug")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, 92, cfg.Matching.FuzzyThreshold)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestInitializeConfig_APIKeyFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.AI.APIKey)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.Log.Format = "text"
		cfg.Matching.FuzzyThreshold = 86
		cfg.Matching.MinConfidence = 0.7
		cfg.Categories = []string{"Other"}
		return cfg
	}

	assert.NoError(t, validateConfig(valid()))

	cfg := valid()
	cfg.Log.Level = "verbose"
	assert.Error(t, validateConfig(cfg))

	cfg = valid()
	cfg.Log.Format = "xml"
	assert.Error(t, validateConfig(cfg))

	cfg = valid()
	cfg.Matching.FuzzyThreshold = 150
	assert.Error(t, validateConfig(cfg))

	cfg = valid()
	cfg.Matching.MinConfidence = 1.5
	assert.Error(t, validateConfig(cfg))

	cfg = valid()
	cfg.Categories = nil
	assert.Error(t, validateConfig(cfg))

	// AI enabled without a key is allowed: the remote tier degrades.
	cfg = valid()
	cfg.AI.Enabled = true
	cfg.AI.TimeoutSeconds = 30
	cfg.AI.Confidence = 0.75
	assert.NoError(t, validateConfig(cfg))

	cfg = valid()
	cfg.AI.Enabled = true
	cfg.AI.TimeoutSeconds = 0
	assert.Error(t, validateConfig(cfg))
}
