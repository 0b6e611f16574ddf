package models

// Strategy identifies which matcher produced a MatchResult. Arbitration
// branches on this tag instead of untyped strings.
type Strategy string

const (
	StrategyKeyword Strategy = "keyword"
	StrategyFuzzy   Strategy = "fuzzy"
	StrategyRemote  Strategy = "remote"
	StrategyNone    Strategy = "none"
)

// MatchResult is the outcome of a single matcher or of the arbitration
// engine. It is a value type; matchers return fresh instances and never
// share state through it.
type MatchResult struct {
	Category   string
	Strategy   Strategy
	Confidence float64
	Evidence   string
	Note       string
}

// Matched reports whether the result proposes a category.
func (r MatchResult) Matched() bool {
	return r.Category != "" && r.Confidence > 0
}

// NoMatch builds the zero-confidence result for a strategy tier.
func NoMatch(strategy Strategy, note string) MatchResult {
	return MatchResult{Strategy: strategy, Note: note}
}

// NoDecision is the engine's hard-refusal result: no category, no
// strategy, zero confidence.
func NoDecision(note string) MatchResult {
	return MatchResult{Strategy: StrategyNone, Note: note}
}
