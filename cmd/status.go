package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current dataset's row counts",
	Long: `
Show how many rows each of the thirteen tables currently holds, plus
where the dataset lives. A database without the schema applied is
reported as empty rather than as an error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()

		counts, err := env.store.Counts(context.Background())
		if err != nil {
			color.Yellow("⚠ No dataset found at %s", location(env.cfg))
			fmt.Println("Run 'seedgen generate' to create one.")
			return nil
		}

		renderCounts(counts)
		fmt.Printf("\nLocation: %s\n", location(env.cfg))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
