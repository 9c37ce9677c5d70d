package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop and recreate the dataset schema",
	Long: `
Drop every dataset table and recreate the schema empty.

⚠️  WARNING: This permanently deletes the generated dataset!

Use --force to skip the confirmation prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()

		force, _ := cmd.Flags().GetBool("force")
		if !force && !askConfirmation(fmt.Sprintf("Delete the dataset at %s?", location(env.cfg))) {
			fmt.Println("Reset cancelled")
			return nil
		}

		if err := env.store.Reset(context.Background()); err != nil {
			return fmt.Errorf("failed to reset database: %w", err)
		}

		env.logger.Info("schema reset", "location", location(env.cfg))
		color.Green("✅ Schema reset, all tables empty")
		return nil
	},
}

func askConfirmation(message string) bool {
	fmt.Printf("🤔 %s (y/N): ", message)
	reader := bufio.NewReader(os.Stdin)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "yes" || response == "y"
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
