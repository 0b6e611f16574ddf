package categorizer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"yroth/expensecat/internal/logging"
	"yroth/expensecat/internal/models"
)

// boostCap bounds the agreement boost so no ensemble decision ever
// claims near-certainty.
const boostCap = 0.98

// Config carries the tunables the engine and its strategies need,
// decoupled from the application-wide configuration layer.
type Config struct {
	FuzzyThreshold             int
	MinConfidence              float64
	KeywordExactConfidence     float64
	KeywordSubstringConfidence float64
	AgreementBoost             float64
	RemoteConfidence           float64
	RemoteTimeout              time.Duration
	Categories                 []string
}

// Engine runs the strategy ensemble over a transaction and arbitrates
// the proposals: agreement between strategies boosts confidence, the
// highest-confidence proposal wins, and anything below the confidence
// floor becomes an explicit refusal rather than a guess.
type Engine struct {
	keyword       *KeywordStrategy
	fuzzy         *FuzzyStrategy
	strategies    []MatchStrategy
	minConfidence float64
	boost         float64
	logger        logging.Logger
}

// NewEngine wires the three strategies over the given rule table and
// vendor map. A nil client disables the remote tier.
func NewEngine(cfg Config, rules []models.MappingRule, vendors models.VendorMap, client AIClient, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.GetLogger()
	}
	keyword := NewKeywordStrategy(rules, cfg.KeywordExactConfidence, cfg.KeywordSubstringConfidence, logger)
	fuzzy := NewFuzzyStrategy(vendors, cfg.FuzzyThreshold, logger)
	remote := NewRemoteStrategy(client, cfg.Categories, cfg.RemoteConfidence, cfg.RemoteTimeout, logger)

	return &Engine{
		keyword: keyword,
		fuzzy:   fuzzy,
		// Evaluation order doubles as the tie-break order.
		strategies:    []MatchStrategy{keyword, fuzzy, remote},
		minConfidence: cfg.MinConfidence,
		boost:         cfg.AgreementBoost,
		logger:        logger,
	}
}

// Vendors returns the live vendor map shared with the fuzzy strategy.
func (e *Engine) Vendors() models.VendorMap {
	return e.fuzzy.Vendors()
}

// SetRules replaces the keyword rule table for this session.
func (e *Engine) SetRules(rules []models.MappingRule) {
	e.keyword.SetRules(rules)
}

// Categorize runs the full ensemble for one transaction. Exclusion
// rules veto before any strategy runs. Otherwise every available
// strategy proposes, agreeing proposals are boosted, and the best
// proposal wins if it clears the confidence floor.
func (e *Engine) Categorize(ctx context.Context, tx models.Transaction) models.MatchResult {
	if strings.TrimSpace(tx.Description) == "" {
		return models.NoDecision("empty description")
	}

	if root, excluded := e.keyword.Excluded(tx.Description); excluded {
		e.logger.WithFields(
			logging.Field{Key: logging.FieldDescription, Value: tx.Description},
			logging.Field{Key: logging.FieldKeyword, Value: root},
		).Debug("Description excluded by rule")
		return models.NoDecision(fmt.Sprintf("excluded by rule %q", root))
	}

	results := make([]models.MatchResult, 0, len(e.strategies))
	for _, strategy := range e.strategies {
		results = append(results, strategy.Match(ctx, tx))
	}

	agreement := make(map[string]int)
	for _, r := range results {
		if r.Matched() {
			agreement[r.Category]++
		}
	}
	for i := range results {
		if results[i].Matched() && agreement[results[i].Category] >= 2 {
			boosted := results[i].Confidence * e.boost
			if boosted > boostCap {
				boosted = boostCap
			}
			results[i].Confidence = boosted
		}
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.Confidence > best.Confidence {
			best = r
		}
	}

	if best.Confidence < e.minConfidence {
		e.logger.WithFields(
			logging.Field{Key: logging.FieldDescription, Value: tx.Description},
			logging.Field{Key: logging.FieldConfidence, Value: best.Confidence},
		).Debug("No strategy cleared the confidence floor")
		return models.NoDecision("no strategy cleared the confidence floor")
	}

	e.logger.WithFields(
		logging.Field{Key: logging.FieldDescription, Value: tx.Description},
		logging.Field{Key: logging.FieldCategory, Value: best.Category},
		logging.Field{Key: logging.FieldStrategy, Value: string(best.Strategy)},
		logging.Field{Key: logging.FieldConfidence, Value: best.Confidence},
	).Info("Categorized transaction")
	return best
}

// CategorizeAll categorizes a batch of transactions sequentially,
// skipping rows that already carry a category. Results align with the
// input slice by index; skipped rows get a zero-value result.
func (e *Engine) CategorizeAll(ctx context.Context, transactions []models.Transaction) ([]models.MatchResult, error) {
	results := make([]models.MatchResult, len(transactions))
	categorized := 0
	for i, tx := range transactions {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		if tx.IsCategorized() {
			continue
		}
		results[i] = e.Categorize(ctx, tx)
		if results[i].Matched() {
			categorized++
		}
	}
	e.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: categorized},
		logging.Field{Key: "total", Value: len(transactions)},
	).Info("Batch categorization complete")
	return results, nil
}
