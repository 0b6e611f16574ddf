// Package models provides the data structures used throughout the application.
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CategoryUncategorized is the fallback category name for transactions
// that no strategy could classify.
const CategoryUncategorized = "Uncategorized"

// Transaction represents a financial transaction supplied by the import
// layer. The categorizer never mutates the source store; callers apply
// the returned category back to it.
type Transaction struct {
	Date        string          `csv:"Date" yaml:"date"`
	Description string          `csv:"Description" yaml:"description"`
	Amount      decimal.Decimal `csv:"Amount" yaml:"amount"`
	Category    string          `csv:"Category" yaml:"category"`
}

// IsCategorized reports whether the transaction already carries a category.
func (t Transaction) IsCategorized() bool {
	return strings.TrimSpace(t.Category) != ""
}

// MappingRule maps a keyword (or phrase) to a category. Keywords are
// stored lower-cased and trimmed. A leading '!' marks an exclusion rule:
// descriptions containing the remainder are never auto-categorized and
// the rule's category is ignored.
type MappingRule struct {
	Keyword  string `csv:"keyword" yaml:"keyword"`
	Category string `csv:"category" yaml:"category"`
}

// IsExclusion reports whether the rule is an exclusion rule.
func (r MappingRule) IsExclusion() bool {
	return strings.HasPrefix(r.Keyword, "!")
}

// ExclusionRoot returns the keyword without the leading '!'.
func (r MappingRule) ExclusionRoot() string {
	return strings.TrimPrefix(r.Keyword, "!")
}

// NewMappingRule builds a rule with the keyword canonicalized the way
// the rule store persists it.
func NewMappingRule(keyword, category string) MappingRule {
	return MappingRule{
		Keyword:  strings.ToLower(strings.TrimSpace(keyword)),
		Category: strings.TrimSpace(category),
	}
}

// VendorMap maps a normalized vendor phrase to a category. It is rebuilt
// per categorization session from previously categorized transactions
// plus incremental learner writes.
type VendorMap map[string]string

// Add admits a vendor mapping. Empty phrases and empty categories are
// rejected silently; the map only ever holds non-empty category values.
func (m VendorMap) Add(phrase, category string) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" || strings.TrimSpace(category) == "" {
		return
	}
	m[phrase] = category
}

// Keys returns the vendor phrases in unspecified order.
func (m VendorMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
