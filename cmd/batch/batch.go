// Package batch handles batch categorization of transaction CSV files
package batch

import (
	"fmt"

	"yroth/expensecat/cmd/root"
	"yroth/expensecat/internal/categorizer"
	"yroth/expensecat/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Categorize every uncategorized row of a transactions CSV",
	Long: `Read a transactions CSV, categorize each row that has no category
yet, and write the result. Rows already categorized pass through
untouched and also seed the session's vendor map, so a partially
categorized file improves the matching of its own remaining rows.`,
	RunE: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		return fmt.Errorf("batch requires --input and --output")
	}

	logger := root.App.GetLogger()
	transactions, err := store.ReadTransactionsCSV(root.SharedFlags.Input, logger)
	if err != nil {
		return fmt.Errorf("reading transactions: %w", err)
	}

	engine := root.App.GetEngine()
	categorizer.BuildVendorMap(transactions, engine.Vendors(), logger)

	results, err := engine.CategorizeAll(cmd.Context(), transactions)
	if err != nil {
		return fmt.Errorf("categorizing transactions: %w", err)
	}
	for i, result := range results {
		if result.Matched() {
			transactions[i].Category = result.Category
		}
	}

	if err := store.WriteTransactionsCSV(transactions, root.SharedFlags.Output, logger); err != nil {
		return fmt.Errorf("writing transactions: %w", err)
	}
	return nil
}
