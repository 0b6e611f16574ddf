package categorizer

import (
	"context"
	"fmt"
	"strings"

	"yroth/expensecat/internal/logging"
	"yroth/expensecat/internal/models"
)

const (
	// phraseWordBonus is added per phrase word on top of the exact
	// confidence, capped at phraseConfidenceCap.
	phraseWordBonus     = 0.01
	phraseConfidenceCap = 0.98

	// minSubstringRunes guards short keywords from matching inside
	// unrelated longer words.
	minSubstringRunes = 4
)

// KeywordStrategy matches learned keyword rules against the lowercased
// description. Exclusion rules (keywords with a leading "!") veto the
// whole pipeline, ordinary rules propose a category with a confidence
// that reflects how specific the match was.
type KeywordStrategy struct {
	rules         []models.MappingRule
	exactConf     float64
	substringConf float64
	logger        logging.Logger
}

// NewKeywordStrategy creates a keyword strategy over the given rule
// table. The slice is scanned in order, so earlier rules win ties.
func NewKeywordStrategy(rules []models.MappingRule, exactConf, substringConf float64, logger logging.Logger) *KeywordStrategy {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &KeywordStrategy{
		rules:         rules,
		exactConf:     exactConf,
		substringConf: substringConf,
		logger:        logger,
	}
}

// Name returns the name of this strategy.
func (s *KeywordStrategy) Name() string {
	return string(models.StrategyKeyword)
}

// SetRules replaces the rule table, used after a learning event so the
// session picks up fresh rules without a reload.
func (s *KeywordStrategy) SetRules(rules []models.MappingRule) {
	s.rules = rules
}

// Excluded reports whether any exclusion rule's root appears in the
// description. The engine checks this before running any strategy: an
// exclusion veto outranks every positive signal.
func (s *KeywordStrategy) Excluded(description string) (string, bool) {
	desc := strings.ToLower(strings.TrimSpace(description))
	if desc == "" {
		return "", false
	}
	for _, rule := range s.rules {
		if !rule.IsExclusion() {
			continue
		}
		root := rule.ExclusionRoot()
		if root != "" && strings.Contains(desc, root) {
			return root, true
		}
	}
	return "", false
}

// Match scans the rule table and returns the highest-confidence keyword
// hit. Multi-word keywords are matched as contiguous phrases, single
// words first as whole words and then as substrings.
func (s *KeywordStrategy) Match(ctx context.Context, tx models.Transaction) models.MatchResult {
	desc := strings.ToLower(strings.TrimSpace(tx.Description))
	if desc == "" {
		return models.NoMatch(models.StrategyKeyword, "empty description")
	}
	if root, excluded := s.Excluded(desc); excluded {
		return models.NoMatch(models.StrategyKeyword, fmt.Sprintf("excluded by rule %q", root))
	}

	words := make(map[string]bool)
	for _, w := range strings.Fields(desc) {
		words[w] = true
	}

	best := models.NoMatch(models.StrategyKeyword, "no keyword rules matched")
	for _, rule := range s.rules {
		if rule.IsExclusion() {
			continue
		}
		confidence := s.score(rule.Keyword, desc, words)
		if confidence > best.Confidence {
			best = models.MatchResult{
				Category:   rule.Category,
				Strategy:   models.StrategyKeyword,
				Confidence: confidence,
				Evidence:   rule.Keyword,
				Note:       fmt.Sprintf("matched keyword %q", rule.Keyword),
			}
		}
	}

	if best.Matched() {
		s.logger.WithFields(
			logging.Field{Key: logging.FieldKeyword, Value: best.Evidence},
			logging.Field{Key: logging.FieldCategory, Value: best.Category},
			logging.Field{Key: logging.FieldConfidence, Value: best.Confidence},
		).Debug("Keyword match")
	}
	return best
}

// score returns the confidence for one keyword against the description,
// or 0 when the keyword does not apply.
func (s *KeywordStrategy) score(keyword, desc string, words map[string]bool) float64 {
	if keyword == "" {
		return 0
	}
	if strings.Contains(keyword, " ") {
		if !strings.Contains(desc, keyword) {
			return 0
		}
		confidence := s.exactConf + phraseWordBonus*float64(len(strings.Fields(keyword)))
		if confidence > phraseConfidenceCap {
			confidence = phraseConfidenceCap
		}
		return confidence
	}
	if words[keyword] {
		return s.exactConf
	}
	if len([]rune(keyword)) > minSubstringRunes && strings.Contains(desc, keyword) {
		return s.substringConf
	}
	return 0
}
