// Package learn handles the user-feedback learning command
package learn

import (
	"fmt"

	"yroth/expensecat/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the learn command
var Cmd = &cobra.Command{
	Use:   "learn",
	Short: "Learn a category correction for a description",
	Long: `Record that a transaction description belongs to a category. The
correction is distilled into keyword rules and vendor mappings and
persisted, so future runs categorize similar descriptions directly.`,
	RunE: learnFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Description, "description", "d", "", "Transaction description that was miscategorized")
	Cmd.Flags().StringVarP(&root.Category, "category", "c", "", "Correct category for the description")
	_ = Cmd.MarkFlagRequired("description")
	_ = Cmd.MarkFlagRequired("category")
}

func learnFunc(cmd *cobra.Command, args []string) error {
	if err := root.App.Learn(root.Description, root.Category); err != nil {
		return fmt.Errorf("learning correction: %w", err)
	}
	root.Log.Infof("Learned: %q -> %s", root.Description, root.Category)
	return nil
}
