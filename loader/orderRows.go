package loader

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mmdatafocus/kitchen_totals/config"
	"github.com/mmdatafocus/kitchen_totals/models"
	"github.com/mmdatafocus/kitchen_totals/utils"
	"github.com/sirupsen/logrus"
)

// OrderId,ProductId,Quantity,DeliveryAt,CreatedAt,DeliveryAddress
const orderColumnCount = 6

type timestampParser func(string) (time.Time, error)

// loadOrdersFromCsv splits each line on commas; quoting is not supported.
func loadOrdersFromCsv(logger logrus.FieldLogger, filePath string) ([]models.Order, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filePath, err)
	}

	content := strings.TrimPrefix(string(data), "\ufeff")
	lines := strings.Split(content, "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, strings.Split(strings.TrimRight(line, "\r"), ","))
	}
	return ordersFromRows(logger, filePath, rows, models.ParseTimestamp)
}

// ordersFromRows maps positional rows to orders. The first row is a header.
// Rows with too few columns are skipped and unparseable integers become 0, while an
// unparseable timestamp fails the whole load unless CSV_SKIP_BAD_DATES is set.
func ordersFromRows(logger logrus.FieldLogger, source string, rows [][]string, parseTime timestampParser) ([]models.Order, error) {
	skipBadDates := config.SkipUnparseableCsvDates()
	orders := make([]models.Order, 0, len(rows))

	for idx, row := range rows {
		if idx == 0 {
			continue
		}
		rowNo := idx + 1
		if len(row) < orderColumnCount {
			logger.WithFields(logrus.Fields{
				"file":    source,
				"row":     rowNo,
				"columns": len(row),
			}).Debug("skipping short order row")
			continue
		}

		deliveryAt, err := parseTime(row[3])
		if err != nil {
			if skipBadDates {
				skipBadDate(logger, source, rowNo, "DeliveryAt", err)
				continue
			}
			return nil, fmt.Errorf("%s row %d: DeliveryAt: %w", source, rowNo, err)
		}
		createdAt, err := parseTime(row[4])
		if err != nil {
			if skipBadDates {
				skipBadDate(logger, source, rowNo, "CreatedAt", err)
				continue
			}
			return nil, fmt.Errorf("%s row %d: CreatedAt: %w", source, rowNo, err)
		}

		address := row[5]
		orders = append(orders, models.Order{
			OrderId:         utils.ParseIntOrZero(row[0]),
			ProductId:       utils.ParseIntOrZero(row[1]),
			Quantity:        utils.ParseIntOrZero(row[2]),
			DeliveryAt:      deliveryAt,
			CreatedAt:       createdAt,
			DeliveryAddress: &address,
		})
	}
	return orders, nil
}

func skipBadDate(logger logrus.FieldLogger, source string, rowNo int, column string, err error) {
	logger.WithFields(logrus.Fields{
		"file":   source,
		"row":    rowNo,
		"column": column,
	}).Warn("skipping order row with unparseable date: " + err.Error())
}
