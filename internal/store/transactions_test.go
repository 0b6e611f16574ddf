package store

import (
	"path/filepath"
	"testing"

	"yroth/expensecat/internal/logging"
	"yroth/expensecat/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTransactionsCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transactions.csv")
	writeFile(t, path, "Date,Description,Amount,Category\n2026-01-15,coffee   shop,-18.50,\n2026-01-16,supermarket,-230.00,Groceries\n")

	rows, err := ReadTransactionsCSV(path, logging.NewMockLogger())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Whitespace is collapsed on read.
	assert.Equal(t, "coffee shop", rows[0].Description)
	assert.True(t, rows[0].Amount.Equal(decimal.NewFromFloat(-18.5)))
	assert.False(t, rows[0].IsCategorized())
	assert.True(t, rows[1].IsCategorized())
}

func TestReadTransactionsCSV_MissingFile(t *testing.T) {
	_, err := ReadTransactionsCSV(filepath.Join(t.TempDir(), "missing.csv"), logging.NewMockLogger())
	assert.Error(t, err)
}

func TestWriteTransactionsCSV_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "transactions.csv")

	transactions := []models.Transaction{
		{Date: "2026-01-15", Description: "coffee shop", Amount: decimal.NewFromFloat(-18.5), Category: "Restaurants"},
	}
	require.NoError(t, WriteTransactionsCSV(transactions, path, logging.NewMockLogger()))

	reloaded, err := ReadTransactionsCSV(path, logging.NewMockLogger())
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.Equal(t, "Restaurants", reloaded[0].Category)
	assert.True(t, reloaded[0].Amount.Equal(transactions[0].Amount))
}

func TestWriteTransactionsCSV_NilSlice(t *testing.T) {
	err := WriteTransactionsCSV(nil, filepath.Join(t.TempDir(), "x.csv"), logging.NewMockLogger())
	assert.Error(t, err)
}
