package commands

import (
	"fmt"
	"os"

	"github.com/mmdatafocus/kitchen_totals/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile      string
	ordersFile      string
	productsFile    string
	ingredientsFile string
	workers         int
	metricsFile     string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "kitchen-totals",
	Short: "Validate kitchen orders and compute order and ingredient totals",
	Long: `kitchen-totals loads orders, products and product recipes, validates every record,
and prints the price total and the ingredient totals of each order.

Orders may be JSON, CSV or XLSX. Products and recipes are JSON.
Settings come from defaults, .env, the environment, an optional YAML file and flags,
later sources overriding earlier ones.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML run configuration")
	rootCmd.PersistentFlags().StringVar(&ordersFile, "orders", config.DefaultOrdersFile, "Orders file (.json, .csv or .xlsx)")
	rootCmd.PersistentFlags().StringVar(&productsFile, "products", config.DefaultProductsFile, "Products file (.json)")
	rootCmd.PersistentFlags().StringVar(&ingredientsFile, "ingredients", config.DefaultIngredientsFile, "Product recipes file (.json)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "Validation workers (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics to this file")
}

// resolveConfig layers explicitly set flags over the file and environment configuration.
func resolveConfig(cmd *cobra.Command) (config.BatchConfig, error) {
	cfg, err := config.LoadBatchConfig(configFile)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("orders") {
		cfg.OrdersFile = ordersFile
	}
	if flags.Changed("products") {
		cfg.ProductsFile = productsFile
	}
	if flags.Changed("ingredients") {
		cfg.IngredientsFile = ingredientsFile
	}
	if flags.Changed("workers") {
		cfg.ValidationWorkers = workers
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = metricsFile
	}
	if flags.Lookup("xlsx-out") != nil && flags.Changed("xlsx-out") {
		cfg.ReportXlsx = xlsxOut
	}
	cfg.Normalize()
	return cfg, nil
}
