package categorizer

import (
	"context"
	"fmt"
	"strings"

	"yroth/expensecat/internal/fuzzy"
	"yroth/expensecat/internal/logging"
	"yroth/expensecat/internal/models"
	"yroth/expensecat/internal/textutils"
)

const (
	fuzzyConfidenceCap = 0.9
	nearExactBonus     = 1.05
	nearExactConfCap   = 0.95
	nearExactScore     = 95
)

// FuzzyStrategy matches the description against known vendor phrases
// using token-set similarity. Vendor names drift across bank exports
// (truncation, branch suffixes, transliteration), so the strategy
// compares several word windows of the normalized description rather
// than the whole string.
type FuzzyStrategy struct {
	vendors   models.VendorMap
	threshold int
	logger    logging.Logger
}

// NewFuzzyStrategy creates a fuzzy strategy over the given vendor map.
// The map is held by reference: additions made by the learner during a
// session are visible immediately.
func NewFuzzyStrategy(vendors models.VendorMap, threshold int, logger logging.Logger) *FuzzyStrategy {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &FuzzyStrategy{vendors: vendors, threshold: threshold, logger: logger}
}

// Name returns the name of this strategy.
func (s *FuzzyStrategy) Name() string {
	return string(models.StrategyFuzzy)
}

// Vendors returns the live vendor map backing this strategy.
func (s *FuzzyStrategy) Vendors() models.VendorMap {
	return s.vendors
}

// Match extracts candidate vendor windows from the description and
// scores each against the vendor map, keeping the best hit at or above
// the similarity threshold.
func (s *FuzzyStrategy) Match(ctx context.Context, tx models.Transaction) models.MatchResult {
	if len(s.vendors) == 0 {
		return models.NoMatch(models.StrategyFuzzy, "no vendor mappings available")
	}

	normalized := textutils.NormalizeVendorName(tx.Description)
	if normalized == "" {
		return models.NoMatch(models.StrategyFuzzy, "empty description")
	}

	candidates := candidateWindows(normalized)
	keys := s.vendors.Keys()

	bestScore := 0
	bestVendor := ""
	bestCandidate := ""
	for _, candidate := range candidates {
		vendor, score, ok := fuzzy.ExtractOne(candidate, keys, s.threshold)
		if ok && score > bestScore {
			bestScore = score
			bestVendor = vendor
			bestCandidate = candidate
		}
	}

	if bestVendor == "" {
		return models.NoMatch(models.StrategyFuzzy, fmt.Sprintf("no vendor similar enough (threshold %d)", s.threshold))
	}

	confidence := float64(bestScore) / 100
	if confidence > fuzzyConfidenceCap {
		confidence = fuzzyConfidenceCap
	}
	if bestScore >= nearExactScore {
		confidence *= nearExactBonus
		if confidence > nearExactConfCap {
			confidence = nearExactConfCap
		}
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldVendor, Value: bestVendor},
		logging.Field{Key: logging.FieldScore, Value: bestScore},
		logging.Field{Key: logging.FieldCategory, Value: s.vendors[bestVendor]},
	).Debug("Fuzzy vendor match")

	return models.MatchResult{
		Category:   s.vendors[bestVendor],
		Strategy:   models.StrategyFuzzy,
		Confidence: confidence,
		Evidence:   bestVendor,
		Note:       fmt.Sprintf("candidate %q scored %d against vendor %q", bestCandidate, bestScore, bestVendor),
	}
}

// candidateWindows builds the word windows compared against the vendor
// map: the leading two, three, and four words, the second through
// fourth words, and the whole string when it is three words or fewer.
func candidateWindows(normalized string) []string {
	words := strings.Fields(normalized)

	var candidates []string
	seen := make(map[string]bool)
	add := func(ws []string) {
		if len(ws) == 0 {
			return
		}
		candidate := strings.Join(ws, " ")
		if !seen[candidate] {
			seen[candidate] = true
			candidates = append(candidates, candidate)
		}
	}

	for _, n := range []int{2, 3, 4} {
		if len(words) >= n {
			add(words[:n])
		}
	}
	if len(words) > 1 {
		end := len(words)
		if end > 4 {
			end = 4
		}
		add(words[1:end])
	}
	if len(words) <= 3 {
		add(words)
	}
	return candidates
}
