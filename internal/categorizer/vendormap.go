package categorizer

import (
	"strings"

	"yroth/expensecat/internal/logging"
	"yroth/expensecat/internal/models"
	"yroth/expensecat/internal/textutils"
)

// vendorKeyWords is the window of leading words used as a vendor key.
const vendorKeyWords = 3

// minVendorKeyRunes drops degenerate keys that would fuzzy-match
// everything.
const minVendorKeyRunes = 2

// BuildVendorMap derives vendor-to-category entries from already
// categorized transactions, keyed by the normalized leading words of
// each description. Earlier transactions win on key collisions, so a
// session's curated map is never overwritten by bulk history.
func BuildVendorMap(transactions []models.Transaction, into models.VendorMap, logger logging.Logger) models.VendorMap {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if into == nil {
		into = models.VendorMap{}
	}

	added := 0
	for _, tx := range transactions {
		if !tx.IsCategorized() {
			continue
		}
		key := vendorKey(tx.Description)
		if len([]rune(key)) <= minVendorKeyRunes {
			continue
		}
		if _, ok := into[key]; ok {
			continue
		}
		into.Add(key, tx.Category)
		added++
	}

	logger.WithField(logging.FieldCount, added).Debug("Built vendor map from categorized transactions")
	return into
}

// vendorKey normalizes a description and keeps its leading words.
func vendorKey(description string) string {
	normalized := textutils.NormalizeVendorName(description)
	words := strings.Fields(normalized)
	if len(words) > vendorKeyWords {
		words = words[:vendorKeyWords]
	}
	return strings.Join(words, " ")
}
