package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultOrdersFile      = "order.json"
	DefaultProductsFile    = "products.json"
	DefaultIngredientsFile = "ingredients.json"
)

// BatchConfig holds the inputs and optional outputs of one batch run.
type BatchConfig struct {
	OrdersFile        string `yaml:"orders_file"`
	ProductsFile      string `yaml:"products_file"`
	IngredientsFile   string `yaml:"ingredients_file"`
	ValidationWorkers int    `yaml:"validation_workers"`
	ReportXlsx        string `yaml:"report_xlsx"`
	MetricsFile       string `yaml:"metrics_file"`
}

func DefaultBatchConfig() BatchConfig {
	return BatchConfig{
		OrdersFile:      DefaultOrdersFile,
		ProductsFile:    DefaultProductsFile,
		IngredientsFile: DefaultIngredientsFile,
	}
}

// LoadBatchConfig resolves the run configuration: defaults, then .env and the process
// environment, then the YAML file at yamlPath when one is given.
// Command line flags are applied by the caller on top of the result.
func LoadBatchConfig(yamlPath string) (BatchConfig, error) {
	// Load env from .env
	godotenv.Load()

	cfg := DefaultBatchConfig()
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	if strings.TrimSpace(yamlPath) != "" {
		data, err := os.ReadFile(yamlPath)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", yamlPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", yamlPath, err)
		}
	}

	cfg.Normalize()
	return cfg, nil
}

func (cfg *BatchConfig) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv("ORDERS_FILE")); v != "" {
		cfg.OrdersFile = v
	}
	if v := strings.TrimSpace(os.Getenv("PRODUCTS_FILE")); v != "" {
		cfg.ProductsFile = v
	}
	if v := strings.TrimSpace(os.Getenv("INGREDIENTS_FILE")); v != "" {
		cfg.IngredientsFile = v
	}
	if v := strings.TrimSpace(os.Getenv("VALIDATION_WORKERS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("VALIDATION_WORKERS: %w", err)
		}
		cfg.ValidationWorkers = n
	}
	if v := strings.TrimSpace(os.Getenv("REPORT_XLSX")); v != "" {
		cfg.ReportXlsx = v
	}
	if v := strings.TrimSpace(os.Getenv("METRICS_FILE")); v != "" {
		cfg.MetricsFile = v
	}
	return nil
}

// Normalize fills a non-positive worker count with GOMAXPROCS.
func (cfg *BatchConfig) Normalize() {
	if cfg.ValidationWorkers <= 0 {
		cfg.ValidationWorkers = runtime.GOMAXPROCS(0)
	}
}
