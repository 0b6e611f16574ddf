package store

import (
	"fmt"
	"os"
	"path/filepath"

	"yroth/expensecat/internal/logging"
	"yroth/expensecat/internal/models"
	"yroth/expensecat/internal/textutils"

	"github.com/gocarina/gocsv"
)

// ReadTransactionsCSV reads a transactions CSV into models.Transaction
// rows. Descriptions are normalized on the way in: bank exports embed
// directional marks and non-breaking spaces that would otherwise leak
// into every matcher.
func ReadTransactionsCSV(filePath string, logger logging.Logger) ([]models.Transaction, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	logger.WithField(logging.FieldFile, filePath).Info("Reading transactions CSV")

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening transactions file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close transactions file")
		}
	}()

	var rows []models.Transaction
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing transactions file: %w", err)
	}

	for i := range rows {
		rows[i].Description = textutils.NormalizeText(rows[i].Description)
	}

	logger.WithField(logging.FieldCount, len(rows)).Info("Successfully read transactions")
	return rows, nil
}

// WriteTransactionsCSV writes transactions to a CSV file.
func WriteTransactionsCSV(transactions []models.Transaction, filePath string, logger logging.Logger) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&transactions, file); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Successfully wrote transactions to CSV")
	return nil
}
