// Package store provides durable storage for the learned rule table,
// the vendor map, and transaction CSV files.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"yroth/expensecat/internal/logging"
	"yroth/expensecat/internal/models"

	"github.com/gocarina/gocsv"
)

// RuleStore persists mapping rules as a two-column CSV record set
// (keyword, category). Rules are loaded wholesale at session start and
// rewritten wholesale, deduplicated, on every learning event.
type RuleStore struct {
	path   string
	logger logging.Logger
}

// NewRuleStore creates a rule store backed by the given CSV file.
func NewRuleStore(path string, logger logging.Logger) *RuleStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &RuleStore{path: path, logger: logger}
}

// LoadRules reads the full rule table. A missing or unreadable file is
// treated as zero learned rules, never as a fatal error: the keyword
// tier simply always misses.
func (s *RuleStore) LoadRules() ([]models.MappingRule, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField(logging.FieldFile, s.path).Debug("Rule file not found, starting with empty rule table")
			return []models.MappingRule{}, nil
		}
		s.logger.WithError(err).WithField(logging.FieldFile, s.path).Warn("Could not open rule file, starting with empty rule table")
		return []models.MappingRule{}, nil
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close rule file")
		}
	}()

	var rows []models.MappingRule
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		s.logger.WithError(err).WithField(logging.FieldFile, s.path).Warn("Could not parse rule file, starting with empty rule table")
		return []models.MappingRule{}, nil
	}

	rules := make([]models.MappingRule, 0, len(rows))
	for _, row := range rows {
		rule := models.NewMappingRule(row.Keyword, row.Category)
		if rule.Keyword == "" {
			continue
		}
		rules = append(rules, rule)
	}

	s.logger.WithField(logging.FieldCount, len(rules)).Debug("Loaded mapping rules")
	return rules, nil
}

// SaveRules rewrites the rule table, deduplicated by exact keyword.
// First occurrence wins, preserving tie-break order. Write failures are
// returned to the caller: a dropped user correction is a correctness
// regression and must surface.
func (s *RuleStore) SaveRules(rules []models.MappingRule) error {
	deduped := DedupeRules(rules)

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating rule directory: %w", err)
	}

	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("error creating rule file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close rule file")
		}
	}()

	if err := gocsv.MarshalFile(&deduped, file); err != nil {
		return fmt.Errorf("error writing rule file: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: s.path},
		logging.Field{Key: logging.FieldCount, Value: len(deduped)},
	).Debug("Saved mapping rules")
	return nil
}

// DedupeRules removes duplicate keywords, keeping the first occurrence.
func DedupeRules(rules []models.MappingRule) []models.MappingRule {
	seen := make(map[string]bool, len(rules))
	deduped := make([]models.MappingRule, 0, len(rules))
	for _, rule := range rules {
		if rule.Keyword == "" || seen[rule.Keyword] {
			continue
		}
		seen[rule.Keyword] = true
		deduped = append(deduped, rule)
	}
	return deduped
}
