package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/tarak510605/asana-rl-seed-data/internal/verify"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Audit the generated dataset's integrity",
	Long: `
Re-derive the dataset's guarantees from the stored rows alone:

- every foreign key resolves to an existing row
- no child's timestamp precedes its parent's
- completed flags and completion timestamps agree
- section positions, tag pairs and field values keep their shape

The command exits non-zero when any check reports violations, so it
can gate a pipeline that consumes the dataset.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()

		report, err := verify.New(env.store, env.logger).Run(context.Background())
		if err != nil {
			return fmt.Errorf("verification failed to run: %w", err)
		}

		renderReport(report)

		if failed := report.Failed(); len(failed) > 0 {
			return fmt.Errorf("%d of %d integrity checks failed", len(failed), len(report.Checks))
		}
		color.Green("✅ All %d integrity checks passed", len(report.Checks))
		return nil
	},
}

func renderReport(report *verify.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Check", "Violations", "Status"})

	for _, c := range report.Checks {
		status := "✔"
		if c.Violations > 0 {
			status = "✘"
		}
		t.AppendRow(table.Row{c.Name, c.Violations, status})
	}
	t.Render()

	fmt.Println()
	renderStats(report.Stats)
	fmt.Println()
	renderCounts(report.Counts)
	fmt.Println()
}

func renderStats(stats []verify.Stat) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Statistic", "Value"})

	for _, s := range stats {
		t.AppendRow(table.Row{s.Name, s.Value})
	}
	t.Render()
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
