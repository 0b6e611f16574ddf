package categorizer

import (
	"fmt"
	"strings"

	"yroth/expensecat/internal/logging"
	"yroth/expensecat/internal/models"
	"yroth/expensecat/internal/textutils"
)

const (
	// learnKeepTokens is the maximum number of vendor tokens kept.
	learnKeepTokens = 3
	// minTokenRunes drops connective fragments and unit markers.
	minTokenRunes = 2
	// minSingleTokenRunes gates the lone single-token rule: short
	// tokens are too ambiguous to match on alone.
	minSingleTokenRunes = 5

	tokenPunctuation = `.,;:!?()[]{}"'-`
)

// RulePersister persists the learned rule table.
type RulePersister interface {
	SaveRules(rules []models.MappingRule) error
}

// VendorPersister persists the vendor map.
type VendorPersister interface {
	SaveVendors(vendors models.VendorMap) error
}

// Learner turns a confirmed user correction into durable matching
// signals: phrase and single-token keyword rules plus vendor map
// entries. Learning the same correction twice is a no-op.
type Learner struct {
	stopwords map[string]bool
	rules     RulePersister
	vendors   VendorPersister
	logger    logging.Logger
}

// NewLearner creates a learner with the given stopword list.
func NewLearner(stopwords []string, rules RulePersister, vendors VendorPersister, logger logging.Logger) *Learner {
	if logger == nil {
		logger = logging.GetLogger()
	}
	set := make(map[string]bool, len(stopwords))
	for _, w := range stopwords {
		set[strings.ToLower(w)] = true
	}
	return &Learner{stopwords: set, rules: rules, vendors: vendors, logger: logger}
}

// Learn records that description belongs to category. It derives new
// keyword rules and vendor entries, appends only rules not already
// present, and persists both stores. Persistence failure is the one
// error that propagates: a lost correction must surface.
func (l *Learner) Learn(description, category string, rules []models.MappingRule, vendors models.VendorMap) ([]models.MappingRule, error) {
	description = strings.TrimSpace(description)
	category = strings.TrimSpace(category)
	if description == "" || category == "" {
		return rules, nil
	}

	words := strings.Fields(strings.ToLower(description))
	tokens := l.vendorTokens(words)

	existing := make(map[string]bool, len(rules))
	for _, r := range rules {
		existing[r.Keyword] = true
	}
	added := 0
	addRule := func(keyword string) {
		if keyword == "" || existing[keyword] {
			return
		}
		rules = append(rules, models.NewMappingRule(keyword, category))
		existing[keyword] = true
		added++
	}

	if len(tokens) >= 2 {
		addRule(strings.Join(tokens[:2], " "))
	}
	if len(tokens) >= 3 {
		addRule(strings.Join(tokens[:3], " "))
	}
	for _, token := range tokens {
		if len([]rune(token)) > minSingleTokenRunes {
			addRule(token)
			break
		}
	}

	phrase := strings.Join(firstWords(words, learnKeepTokens), " ")
	vendors.Add(phrase, category)
	if normalized := textutils.NormalizeVendorName(phrase); normalized != phrase {
		vendors.Add(normalized, category)
	}

	if err := l.rules.SaveRules(rules); err != nil {
		return rules, fmt.Errorf("persisting learned rules: %w", err)
	}
	if err := l.vendors.SaveVendors(vendors); err != nil {
		return rules, fmt.Errorf("persisting vendor mappings: %w", err)
	}

	l.logger.WithFields(
		logging.Field{Key: logging.FieldCategory, Value: category},
		logging.Field{Key: logging.FieldCount, Value: added},
	).Info("Learned from user feedback")
	return rules, nil
}

// vendorTokens extracts up to learnKeepTokens identifying tokens from a
// description's words, in original order, skipping stopwords and short
// fragments.
func (l *Learner) vendorTokens(words []string) []string {
	var tokens []string
	for _, w := range words {
		token := strings.Trim(w, tokenPunctuation)
		if len([]rune(token)) <= minTokenRunes || l.stopwords[token] {
			continue
		}
		tokens = append(tokens, token)
		if len(tokens) == learnKeepTokens {
			break
		}
	}
	return tokens
}

func firstWords(words []string, n int) []string {
	if len(words) < n {
		return words
	}
	return words[:n]
}
