package commands

import (
	"fmt"

	"github.com/mmdatafocus/kitchen_totals/config"
	"github.com/mmdatafocus/kitchen_totals/utils"
	"github.com/mmdatafocus/kitchen_totals/workflow"
	"github.com/spf13/cobra"
)

// validateCmd checks the inputs without totalling them
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and validate a batch without computing totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		p := workflow.NewPipeline(config.GetLogger(), cfg, nil)
		result, err := p.Check(utils.WithCommand(cmd.Context(), "validate"))
		if err != nil {
			if result != nil && len(result.Failures) > 0 {
				return fmt.Errorf("%w: %d invalid record(s)", err, len(result.Failures))
			}
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d orders, %d products and %d recipes are valid.\n",
			len(result.Inputs.Orders), len(result.Inputs.Products), len(result.Inputs.Ingredients))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
