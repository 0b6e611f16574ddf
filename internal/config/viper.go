// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration. It is built
// once at startup and passed explicitly into every component; there is
// no settings singleton.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Matching struct {
		// FuzzyThreshold is the token-set score cutoff on a 0-100 scale.
		FuzzyThreshold int `mapstructure:"fuzzy_threshold" yaml:"fuzzy_threshold"`
		// MinConfidence is the ensemble floor; winners below it are refused.
		MinConfidence              float64 `mapstructure:"min_confidence" yaml:"min_confidence"`
		KeywordExactConfidence     float64 `mapstructure:"keyword_exact_confidence" yaml:"keyword_exact_confidence"`
		KeywordSubstringConfidence float64 `mapstructure:"keyword_substring_confidence" yaml:"keyword_substring_confidence"`
		AgreementBoost             float64 `mapstructure:"agreement_boost" yaml:"agreement_boost"`
	} `mapstructure:"matching" yaml:"matching"`

	AI struct {
		Enabled        bool    `mapstructure:"enabled" yaml:"enabled"`
		Model          string  `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int     `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		Confidence     float64 `mapstructure:"confidence" yaml:"confidence"`
		APIKey         string  `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`

	Data struct {
		RulesFile   string `mapstructure:"rules_file" yaml:"rules_file"`
		VendorsFile string `mapstructure:"vendors_file" yaml:"vendors_file"`
	} `mapstructure:"data" yaml:"data"`

	Learner struct {
		Stopwords []string `mapstructure:"stopwords" yaml:"stopwords"`
	} `mapstructure:"learner" yaml:"learner"`

	Categories []string `mapstructure:"categories" yaml:"categories"`
}

// defaultStopwords is the multilingual stop-word list the learner uses:
// Hebrew function words, Hebrew legal-entity suffixes, and generic
// English business words.
var defaultStopwords = []string{
	// Hebrew function words
	"של", "את", "על", "עם", "אל", "מן", "כי", "אם", "לא", "או", "גם", "רק",
	// Hebrew legal-entity suffixes
	"בע\"מ", "בעמ", "בע''מ", "חפ", "עמ", "ושות",
	// English
	"the", "and", "for", "with", "from",
	"ltd", "inc", "llc", "corp", "limited", "corporation",
	"company", "group", "international",
}

// defaultCategories is the closed category list used when no config file
// supplies one.
var defaultCategories = []string{
	"Groceries", "Restaurants", "Transportation", "Shopping",
	"Utilities", "Health", "Entertainment", "Housing", "Income", "Other",
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.expensecat")
	v.AddConfigPath(".expensecat")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("EXPENSECAT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Config file not found or invalid is OK, we'll use defaults and env vars
	}

	// 5. The API key always comes from the unprefixed environment variable
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("matching.fuzzy_threshold", 86)
	v.SetDefault("matching.min_confidence", 0.7)
	v.SetDefault("matching.keyword_exact_confidence", 0.95)
	v.SetDefault("matching.keyword_substring_confidence", 0.85)
	v.SetDefault("matching.agreement_boost", 1.2)

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout_seconds", 30)
	v.SetDefault("ai.confidence", 0.75)

	v.SetDefault("data.rules_file", "data/rules.csv")
	v.SetDefault("data.vendors_file", "data/vendors.yaml")

	v.SetDefault("learner.stopwords", defaultStopwords)
	v.SetDefault("categories", defaultCategories)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Matching.FuzzyThreshold < 0 || config.Matching.FuzzyThreshold > 100 {
		return fmt.Errorf("matching.fuzzy_threshold must be between 0 and 100, got: %d", config.Matching.FuzzyThreshold)
	}

	if config.Matching.MinConfidence < 0.0 || config.Matching.MinConfidence > 1.0 {
		return fmt.Errorf("matching.min_confidence must be between 0.0 and 1.0, got: %f", config.Matching.MinConfidence)
	}

	if config.AI.Enabled {
		// A missing API key is not an error: the remote tier degrades to
		// a zero-confidence signal instead of blocking the ensemble.
		if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
			return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
		}
		if config.AI.Confidence < 0.0 || config.AI.Confidence > 1.0 {
			return fmt.Errorf("ai.confidence must be between 0.0 and 1.0, got: %f", config.AI.Confidence)
		}
	}

	if len(config.Categories) == 0 {
		return fmt.Errorf("categories list must not be empty")
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
