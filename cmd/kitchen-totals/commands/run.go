package commands

import (
	"github.com/mmdatafocus/kitchen_totals/config"
	"github.com/mmdatafocus/kitchen_totals/report"
	"github.com/mmdatafocus/kitchen_totals/utils"
	"github.com/mmdatafocus/kitchen_totals/workflow"
	"github.com/spf13/cobra"
)

var (
	// Run flags
	xlsxOut string
)

// runCmd runs the whole batch
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Load, validate and total a batch",
	Long: `Load the three input files, validate every record and print the totals.

Nothing is totalled when any record is invalid; every violation is logged instead.

Examples:
  kitchen-totals run
  kitchen-totals run --orders orders.csv --xlsx-out totals.xlsx
  kitchen-totals run --config batch.yaml --metrics-file kitchen.prom`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		p := workflow.NewPipeline(config.GetLogger(), cfg, nil)
		result, err := p.Run(utils.WithCommand(cmd.Context(), "run"))
		if err != nil {
			return err
		}
		return report.WriteConsole(cmd.OutOrStdout(), result.Totals)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&xlsxOut, "xlsx-out", "", "Also export the totals to this .xlsx file")
}
