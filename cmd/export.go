package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tarak510605/asana-rl-seed-data/internal/export"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the dataset to JSON or CSV",
	Long: `
Export every table to portable files, in dependency order so the rows
can be replayed top to bottom without dangling references.

Formats:
  json (default)  one snapshot file with all thirteen tables
  csv             a directory with one file per table

Examples:
  seedgen export
  seedgen export --csv
  seedgen export --json --out /tmp/dataset`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()

		exporter := export.New(env.store, env.logger)
		ctx := context.Background()

		var path string
		if csvFlag, _ := cmd.Flags().GetBool("csv"); csvFlag {
			path, err = exporter.CSV(ctx, exportDir)
		} else {
			path, err = exporter.JSON(ctx, exportDir)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		fmt.Printf("✅ Export completed: %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().BoolP("json", "j", false, "Export as JSON (default)")
	exportCmd.Flags().BoolP("csv", "c", false, "Export as CSV")
	exportCmd.Flags().StringVar(&exportDir, "out", "output/export", "Directory to write exports into")
}
