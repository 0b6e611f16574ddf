package store

import (
	"os"
	"path/filepath"
	"testing"

	"yroth/expensecat/internal/logging"
	"yroth/expensecat/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)
}

func TestRuleStore_LoadRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.csv")
	writeFile(t, path, "keyword,category\ncoffee shop,Restaurants\nSUPERMARKET ,Groceries\n!salary,\n")

	store := NewRuleStore(path, logging.NewMockLogger())
	rules, err := store.LoadRules()
	require.NoError(t, err)
	require.Len(t, rules, 3)

	assert.Equal(t, "coffee shop", rules[0].Keyword)
	assert.Equal(t, "Restaurants", rules[0].Category)
	// Keywords are canonicalized on load.
	assert.Equal(t, "supermarket", rules[1].Keyword)
	assert.True(t, rules[2].IsExclusion())
	assert.Equal(t, "salary", rules[2].ExclusionRoot())
}

func TestRuleStore_LoadRules_MissingFile(t *testing.T) {
	store := NewRuleStore(filepath.Join(t.TempDir(), "missing.csv"), logging.NewMockLogger())
	rules, err := store.LoadRules()
	assert.NoError(t, err)
	assert.Empty(t, rules)
}

func TestRuleStore_LoadRules_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.csv")
	writeFile(t, path, "not,a,valid\"csv\nrow")

	store := NewRuleStore(path, logging.NewMockLogger())
	rules, err := store.LoadRules()
	assert.NoError(t, err)
	assert.Empty(t, rules)
}

func TestRuleStore_SaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "rules.csv")
	store := NewRuleStore(path, logging.NewMockLogger())

	rules := []models.MappingRule{
		models.NewMappingRule("coffee shop", "Restaurants"),
		models.NewMappingRule("supermarket", "Groceries"),
	}
	require.NoError(t, store.SaveRules(rules))

	reloaded, err := store.LoadRules()
	require.NoError(t, err)
	assert.Equal(t, rules, reloaded)
}

func TestRuleStore_SaveDeduplicates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.csv")
	store := NewRuleStore(path, logging.NewMockLogger())

	rules := []models.MappingRule{
		models.NewMappingRule("coffee", "Restaurants"),
		models.NewMappingRule("coffee", "Groceries"),
		models.NewMappingRule("supermarket", "Groceries"),
	}
	require.NoError(t, store.SaveRules(rules))

	reloaded, err := store.LoadRules()
	require.NoError(t, err)
	require.Len(t, reloaded, 2)
	// First occurrence wins.
	assert.Equal(t, "Restaurants", reloaded[0].Category)
}

func TestDedupeRules(t *testing.T) {
	rules := []models.MappingRule{
		{Keyword: "a", Category: "X"},
		{Keyword: "", Category: "Y"},
		{Keyword: "a", Category: "Z"},
		{Keyword: "b", Category: "Y"},
	}
	deduped := DedupeRules(rules)
	require.Len(t, deduped, 2)
	assert.Equal(t, "X", deduped[0].Category)
	assert.Equal(t, "b", deduped[1].Keyword)
}
