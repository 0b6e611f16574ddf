// Package categorize handles single-transaction categorization commands
package categorize

import (
	"fmt"

	"yroth/expensecat/cmd/root"
	"yroth/expensecat/internal/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a single transaction description",
	Long: `Categorize one transaction description using the full strategy
ensemble: learned keyword rules, fuzzy vendor matching, and the remote
classifier when a credential is configured.`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Description, "description", "d", "", "Transaction description to categorize")
	Cmd.Flags().StringVarP(&root.Amount, "amount", "a", "", "Transaction amount (optional)")
	Cmd.Flags().StringVarP(&root.Date, "date", "t", "", "Transaction date (optional)")
	_ = Cmd.MarkFlagRequired("description")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	tx := models.Transaction{
		Description: root.Description,
		Date:        root.Date,
	}
	if root.Amount != "" {
		amount, err := decimal.NewFromString(root.Amount)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", root.Amount, err)
		}
		tx.Amount = amount
	}

	result := root.App.GetEngine().Categorize(cmd.Context(), tx)
	if !result.Matched() {
		root.Log.Infof("No confident category (%s)", result.Note)
		return nil
	}

	root.Log.Infof("Category: %s (strategy %s, confidence %.2f)",
		result.Category, result.Strategy, result.Confidence)
	return nil
}
