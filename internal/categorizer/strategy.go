// Package categorizer assigns spending categories to freeform
// transaction descriptions using an ensemble of independent matching
// strategies: learned keyword rules, fuzzy vendor similarity, and an
// optional remote classifier. The arbitration engine reconciles their
// confidence-scored proposals into a single decision or an explicit
// refusal.
package categorizer

import (
	"context"

	"yroth/expensecat/internal/models"
)

// MatchStrategy defines one independent method for categorizing a
// transaction description. Strategies never fail: malformed or empty
// input degrades to a zero-confidence result.
type MatchStrategy interface {
	// Match scores the transaction against this strategy's signal
	// source and returns a confidence-tagged result.
	//
	// Parameters:
	//   - ctx: Context for cancellation, honored by strategies that
	//     perform blocking calls
	//   - tx: Transaction to categorize
	Match(ctx context.Context, tx models.Transaction) models.MatchResult

	// Name returns the name of this strategy for logging and debugging purposes.
	Name() string
}
