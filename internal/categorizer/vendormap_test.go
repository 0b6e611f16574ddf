package categorizer

import (
	"testing"

	"yroth/expensecat/internal/logging"
	"yroth/expensecat/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildVendorMap(t *testing.T) {
	transactions := []models.Transaction{
		{Description: "Super Market Chain #4521 tel aviv", Category: "Groceries"},
		{Description: "Coffee Shop", Category: "Restaurants"},
		{Description: "uncategorized merchant"},
		{Description: "  ", Category: "Other"},
	}

	vendors := BuildVendorMap(transactions, nil, logging.NewMockLogger())

	assert.Equal(t, "Groceries", vendors["super market chain"])
	assert.Equal(t, "Restaurants", vendors["coffee shop"])
	assert.Len(t, vendors, 2)
}

func TestBuildVendorMap_FirstCategoryWins(t *testing.T) {
	transactions := []models.Transaction{
		{Description: "Coffee Shop", Category: "Restaurants"},
		{Description: "coffee shop", Category: "Entertainment"},
	}

	vendors := BuildVendorMap(transactions, nil, logging.NewMockLogger())
	assert.Equal(t, "Restaurants", vendors["coffee shop"])
}

func TestBuildVendorMap_ExistingEntriesKept(t *testing.T) {
	existing := models.VendorMap{"coffee shop": "Restaurants"}
	transactions := []models.Transaction{
		{Description: "Coffee Shop", Category: "Entertainment"},
		{Description: "Gas Station North", Category: "Transportation"},
	}

	vendors := BuildVendorMap(transactions, existing, logging.NewMockLogger())
	assert.Equal(t, "Restaurants", vendors["coffee shop"])
	assert.Equal(t, "Transportation", vendors["gas station north"])
}

func TestBuildVendorMap_StripsLegalSuffixes(t *testing.T) {
	transactions := []models.Transaction{
		{Description: "Acme Widgets Ltd", Category: "Shopping"},
	}

	vendors := BuildVendorMap(transactions, nil, logging.NewMockLogger())
	assert.Equal(t, "Shopping", vendors["acme widgets"])
}

func TestBuildVendorMap_DropsDegenerateKeys(t *testing.T) {
	transactions := []models.Transaction{
		{Description: "ok", Category: "Other"},
	}

	vendors := BuildVendorMap(transactions, nil, logging.NewMockLogger())
	assert.Empty(t, vendors)
}
