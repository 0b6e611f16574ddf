// Package container provides dependency injection for the expensecat
// application. It centralizes the creation and wiring of all
// application dependencies, making them explicit and testable.
package container

import (
	"context"
	"fmt"
	"time"

	"yroth/expensecat/internal/categorizer"
	"yroth/expensecat/internal/config"
	"yroth/expensecat/internal/logging"
	"yroth/expensecat/internal/models"
	"yroth/expensecat/internal/store"
)

// Container holds all application dependencies and provides methods to
// access them.
//
// Container is immutable after creation - all fields are private and
// can only be accessed through getter methods. This prevents accidental
// modification of dependencies after initialization.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	ruleStore   *store.RuleStore
	vendorStore *store.VendorStore
	aiClient    categorizer.AIClient
	gemini      *categorizer.GeminiClient
	engine      *categorizer.Engine
	learner     *categorizer.Learner

	rules   []models.MappingRule
	vendors models.VendorMap
}

// NewContainer creates and wires all application dependencies. Rule and
// vendor stores are loaded eagerly: both degrade to empty on missing
// files, so construction only fails on genuine wiring errors.
//
// Parameters:
//   - ctx: Context used for remote client initialization
//   - cfg: Application configuration
//
// Returns:
//   - *Container: Fully wired container with all dependencies
//   - error: Any error encountered during dependency creation
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	ruleStore := store.NewRuleStore(cfg.Data.RulesFile, logger)
	vendorStore := store.NewVendorStore(cfg.Data.VendorsFile, logger)

	rules, err := ruleStore.LoadRules()
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}
	vendors, err := vendorStore.LoadVendors()
	if err != nil {
		return nil, fmt.Errorf("loading vendors: %w", err)
	}

	var aiClient categorizer.AIClient
	var gemini *categorizer.GeminiClient
	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		gemini, err = categorizer.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Model, logger)
		if err != nil {
			logger.WithError(err).Warn("Remote classifier unavailable, continuing without it")
			gemini = nil
		} else {
			aiClient = gemini
			logger.Info("Remote classification enabled")
		}
	} else {
		logger.Info("Remote classification disabled")
	}

	engineCfg := categorizer.Config{
		FuzzyThreshold:             cfg.Matching.FuzzyThreshold,
		MinConfidence:              cfg.Matching.MinConfidence,
		KeywordExactConfidence:     cfg.Matching.KeywordExactConfidence,
		KeywordSubstringConfidence: cfg.Matching.KeywordSubstringConfidence,
		AgreementBoost:             cfg.Matching.AgreementBoost,
		RemoteConfidence:           cfg.AI.Confidence,
		RemoteTimeout:              time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
		Categories:                 cfg.Categories,
	}
	engine := categorizer.NewEngine(engineCfg, rules, vendors, aiClient, logger)
	learner := categorizer.NewLearner(cfg.Learner.Stopwords, ruleStore, vendorStore, logger)

	logger.Info("Container initialized successfully",
		logging.Field{Key: "rules_count", Value: len(rules)},
		logging.Field{Key: "vendors_count", Value: len(vendors)},
		logging.Field{Key: "ai_enabled", Value: aiClient != nil})

	return &Container{
		logger:      logger,
		config:      cfg,
		ruleStore:   ruleStore,
		vendorStore: vendorStore,
		aiClient:    aiClient,
		gemini:      gemini,
		engine:      engine,
		learner:     learner,
		rules:       rules,
		vendors:     vendors,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetEngine returns the container's arbitration engine.
func (c *Container) GetEngine() *categorizer.Engine {
	return c.engine
}

// GetLearner returns the container's feedback learner.
func (c *Container) GetLearner() *categorizer.Learner {
	return c.learner
}

// GetRuleStore returns the container's rule store instance.
func (c *Container) GetRuleStore() *store.RuleStore {
	return c.ruleStore
}

// GetVendorStore returns the container's vendor store instance.
func (c *Container) GetVendorStore() *store.VendorStore {
	return c.vendorStore
}

// GetRules returns the rule table loaded at construction.
func (c *Container) GetRules() []models.MappingRule {
	return c.rules
}

// GetVendors returns the live vendor map shared with the engine.
func (c *Container) GetVendors() models.VendorMap {
	return c.vendors
}

// Learn records a confirmed correction and keeps the engine's rule
// table in sync with the persisted one.
func (c *Container) Learn(description, category string) error {
	rules, err := c.learner.Learn(description, category, c.rules, c.vendors)
	if err != nil {
		return err
	}
	c.rules = rules
	c.engine.SetRules(rules)
	return nil
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	if c.gemini != nil {
		if err := c.gemini.Close(); err != nil {
			return fmt.Errorf("closing remote client: %w", err)
		}
	}
	c.logger.Debug("Container closed")
	return nil
}
