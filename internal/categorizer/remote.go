package categorizer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"yroth/expensecat/internal/logging"
	"yroth/expensecat/internal/models"
)

// AIClient is the port to an external text-classification service.
// Implementations return exactly one category name for a transaction,
// chosen from the provided closed list.
type AIClient interface {
	Classify(ctx context.Context, tx models.Transaction, categories []string) (string, error)
}

// RemoteStrategy delegates to an external classifier when one is
// configured. The strategy is strictly best-effort: a missing
// credential, a transport failure, or an answer outside the closed
// category list all degrade to a zero-confidence result and never
// abort the ensemble.
type RemoteStrategy struct {
	client     AIClient
	categories []string
	confidence float64
	timeout    time.Duration
	logger     logging.Logger
}

// NewRemoteStrategy creates a remote strategy. A nil client is valid
// and means no credential was configured.
func NewRemoteStrategy(client AIClient, categories []string, confidence float64, timeout time.Duration, logger logging.Logger) *RemoteStrategy {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &RemoteStrategy{
		client:     client,
		categories: categories,
		confidence: confidence,
		timeout:    timeout,
		logger:     logger,
	}
}

// Name returns the name of this strategy.
func (s *RemoteStrategy) Name() string {
	return string(models.StrategyRemote)
}

// Match asks the remote classifier for a category and validates the
// answer against the closed category list. The remote signal carries a
// flat confidence: the service reports no calibrated score of its own.
func (s *RemoteStrategy) Match(ctx context.Context, tx models.Transaction) models.MatchResult {
	if s.client == nil {
		return models.NoMatch(models.StrategyRemote, "no credential")
	}
	if strings.TrimSpace(tx.Description) == "" {
		return models.NoMatch(models.StrategyRemote, "empty description")
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	answer, err := s.client.Classify(ctx, tx, s.categories)
	if err != nil {
		s.logger.WithError(err).WithField(logging.FieldDescription, tx.Description).Warn("Remote classification failed")
		return models.NoMatch(models.StrategyRemote, fmt.Sprintf("remote classification failed: %v", err))
	}

	answer = strings.TrimSpace(answer)
	if !s.validCategory(answer) {
		s.logger.WithField(logging.FieldCategory, answer).Warn("Remote classifier returned unknown category")
		return models.NoMatch(models.StrategyRemote, fmt.Sprintf("remote answer %q is not a known category", answer))
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldCategory, Value: answer},
		logging.Field{Key: logging.FieldConfidence, Value: s.confidence},
	).Debug("Remote classification")

	return models.MatchResult{
		Category:   answer,
		Strategy:   models.StrategyRemote,
		Confidence: s.confidence,
		Evidence:   answer,
		Note:       "remote classifier suggestion",
	}
}

// validCategory checks exact membership in the closed list. No
// trimming beyond surrounding whitespace, no case folding: an answer
// that does not match a known category verbatim is rejected.
func (s *RemoteStrategy) validCategory(answer string) bool {
	for _, c := range s.categories {
		if answer == c {
			return true
		}
	}
	return false
}
