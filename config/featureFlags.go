package config

import (
	"os"
	"strings"
)

// SkipUnparseableCsvDates makes the delimited/spreadsheet order loaders drop a row whose
// DeliveryAt or CreatedAt cannot be parsed, instead of failing the whole load.
// Integer columns always default to 0; dates fail hard unless this is set.
//
// Set via env:
// - CSV_SKIP_BAD_DATES=true
func SkipUnparseableCsvDates() bool {
	return envBool("CSV_SKIP_BAD_DATES")
}

func envBool(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return v == "1" || v == "true" || v == "yes" || v == "y"
}
