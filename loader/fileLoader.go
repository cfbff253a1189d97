package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmdatafocus/kitchen_totals/models"
	"github.com/mmdatafocus/kitchen_totals/utils"
	"github.com/sirupsen/logrus"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

// FormatOf picks the input format from the file extension, ignoring case.
func FormatOf(filePath string) models.FileFormat {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		return models.FileFormatJSON
	case ".csv":
		return models.FileFormatCSV
	case ".xlsx":
		return models.FileFormatXLSX
	default:
		return models.FileFormatUnknown
	}
}

// LoadOrders reads order line items from a .json, .csv or .xlsx file.
// A missing file or an unsupported extension is reported on logger and yields no orders.
func LoadOrders(logger logrus.FieldLogger, filePath string) ([]models.Order, error) {
	found, err := fileExists(filePath)
	if err != nil {
		return nil, err
	}
	if !found {
		notFound(logger, models.EntityKindOrder, "Orders", filePath)
		return []models.Order{}, nil
	}

	switch FormatOf(filePath) {
	case models.FileFormatJSON:
		return loadJSONList[models.Order](filePath)
	case models.FileFormatCSV:
		return loadOrdersFromCsv(logger, filePath)
	case models.FileFormatXLSX:
		return loadOrdersFromXlsx(logger, filePath)
	default:
		unsupported(logger, models.EntityKindOrder, "order", filePath)
		return []models.Order{}, nil
	}
}

// LoadProducts reads products from a JSON array file.
func LoadProducts(logger logrus.FieldLogger, filePath string) ([]models.Product, error) {
	return loadJSONOnly[models.Product](logger, models.EntityKindProduct, "Products", filePath)
}

// LoadIngredients reads product recipes from a JSON array file.
func LoadIngredients(logger logrus.FieldLogger, filePath string) ([]models.ProductIngredients, error) {
	return loadJSONOnly[models.ProductIngredients](logger, models.EntityKindProductIngredients, "Ingredients", filePath)
}

func loadJSONOnly[T any](logger logrus.FieldLogger, kind models.EntityKind, label string, filePath string) ([]T, error) {
	found, err := fileExists(filePath)
	if err != nil {
		return nil, err
	}
	if !found {
		notFound(logger, kind, label, filePath)
		return []T{}, nil
	}
	if FormatOf(filePath) != models.FileFormatJSON {
		unsupported(logger, kind, strings.ToLower(label), filePath)
		return []T{}, nil
	}
	return loadJSONList[T](filePath)
}

func loadJSONList[T any](filePath string) ([]T, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filePath, err)
	}
	list, err := utils.UnmarshalListFromJSON[T](data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filePath, err)
	}
	return list, nil
}

// fileExists treats a directory like a missing file.
func fileExists(filePath string) (bool, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", filePath, err)
	}
	return !info.IsDir(), nil
}

func notFound(logger logrus.FieldLogger, kind models.EntityKind, label string, filePath string) {
	logger.WithFields(logrus.Fields{
		"entity": kind,
		"file":   filePath,
	}).Warn(label + " file not found: " + filePath)
}

func unsupported(logger logrus.FieldLogger, kind models.EntityKind, label string, filePath string) {
	logger.WithFields(logrus.Fields{
		"entity": kind,
		"file":   filePath,
		"error":  ErrUnsupportedFormat.Error(),
	}).Warn("Unsupported " + label + " file format.")
}
