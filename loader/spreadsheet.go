package loader

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mmdatafocus/kitchen_totals/models"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// loadOrdersFromXlsx reads the first sheet with the same column layout as the CSV form.
func loadOrdersFromXlsx(logger logrus.FieldLogger, filePath string) ([]models.Order, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file %s: %w", filePath, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return []models.Order{}, nil
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet %s: %w", sheets[0], err)
	}
	return ordersFromRows(logger, filePath, rows, parseSheetTimestamp)
}

// parseSheetTimestamp accepts text timestamps and Excel date serials.
func parseSheetTimestamp(value string) (time.Time, error) {
	t, err := models.ParseTimestamp(value)
	if err == nil {
		return t, nil
	}
	serial, serr := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if serr != nil {
		return time.Time{}, err
	}
	return excelize.ExcelDateToTime(serial, false)
}
