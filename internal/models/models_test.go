package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMappingRule_Exclusion(t *testing.T) {
	rule := NewMappingRule("!Salary ", "")
	assert.True(t, rule.IsExclusion())
	assert.Equal(t, "salary", rule.ExclusionRoot())

	plain := NewMappingRule("coffee", "Restaurants")
	assert.False(t, plain.IsExclusion())
	assert.Equal(t, "coffee", plain.ExclusionRoot())
}

func TestNewMappingRule_Canonicalizes(t *testing.T) {
	rule := NewMappingRule("  Coffee Shop ", " Restaurants ")
	assert.Equal(t, "coffee shop", rule.Keyword)
	assert.Equal(t, "Restaurants", rule.Category)
}

func TestVendorMap_Add(t *testing.T) {
	m := VendorMap{}
	m.Add("coffee shop", "Restaurants")
	m.Add("", "Groceries")
	m.Add("  ", "Groceries")
	m.Add("gas station", "")

	assert.Len(t, m, 1)
	assert.Equal(t, "Restaurants", m["coffee shop"])
}

func TestTransaction_IsCategorized(t *testing.T) {
	assert.False(t, Transaction{}.IsCategorized())
	assert.False(t, Transaction{Category: "  "}.IsCategorized())
	assert.True(t, Transaction{Category: "Groceries"}.IsCategorized())
}

func TestMatchResult_Matched(t *testing.T) {
	assert.True(t, MatchResult{Category: "Groceries", Confidence: 0.8}.Matched())
	assert.False(t, MatchResult{Category: "Groceries"}.Matched())
	assert.False(t, MatchResult{Confidence: 0.8}.Matched())
	assert.False(t, NoDecision("nothing matched").Matched())
	assert.False(t, NoMatch(StrategyFuzzy, "empty").Matched())
}
