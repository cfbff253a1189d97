package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBatchConfig_Defaults(t *testing.T) {
	t.Setenv("ORDERS_FILE", "")
	t.Setenv("PRODUCTS_FILE", "")
	t.Setenv("INGREDIENTS_FILE", "")
	t.Setenv("VALIDATION_WORKERS", "")

	cfg, err := LoadBatchConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultOrdersFile, cfg.OrdersFile)
	assert.Equal(t, DefaultProductsFile, cfg.ProductsFile)
	assert.Equal(t, DefaultIngredientsFile, cfg.IngredientsFile)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.ValidationWorkers)
}

func TestLoadBatchConfig_EnvThenYaml(t *testing.T) {
	t.Setenv("ORDERS_FILE", "env-orders.csv")
	t.Setenv("PRODUCTS_FILE", "env-products.json")
	t.Setenv("VALIDATION_WORKERS", "3")

	path := filepath.Join(t.TempDir(), "batch.yaml")
	yml := "products_file: yaml-products.json\nmetrics_file: run.prom\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := LoadBatchConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env-orders.csv", cfg.OrdersFile)
	assert.Equal(t, "yaml-products.json", cfg.ProductsFile)
	assert.Equal(t, "run.prom", cfg.MetricsFile)
	assert.Equal(t, 3, cfg.ValidationWorkers)
}

func TestLoadBatchConfig_BadWorkerCount(t *testing.T) {
	t.Setenv("VALIDATION_WORKERS", "many")

	_, err := LoadBatchConfig("")
	assert.Error(t, err)
}

func TestLoadBatchConfig_MissingYaml(t *testing.T) {
	t.Setenv("VALIDATION_WORKERS", "")

	_, err := LoadBatchConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSkipUnparseableCsvDates(t *testing.T) {
	t.Setenv("CSV_SKIP_BAD_DATES", "yes")
	assert.True(t, SkipUnparseableCsvDates())

	t.Setenv("CSV_SKIP_BAD_DATES", "")
	assert.False(t, SkipUnparseableCsvDates())
}

func TestNewLogger_FallsBackToInfo(t *testing.T) {
	l := NewLogger("text", "chatty")
	assert.Equal(t, "info", l.GetLevel().String())

	l = NewLogger("", "debug")
	assert.Equal(t, "debug", l.GetLevel().String())
}
