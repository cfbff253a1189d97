package report

import (
	"fmt"

	"github.com/mmdatafocus/kitchen_totals/utils"
	"github.com/xuri/excelize/v2"
)

const (
	OrderTotalsSheet      = "OrderTotals"
	IngredientTotalsSheet = "IngredientTotals"
)

// ExportExcel writes both totals to filename, one sheet each.
func ExportExcel(totals Totals, filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", OrderTotalsSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(IngredientTotalsSheet); err != nil {
		return err
	}

	// Add headers
	f.SetCellValue(OrderTotalsSheet, "A1", "OrderId")
	f.SetCellValue(OrderTotalsSheet, "B1", "Total")

	// Add data
	for i, orderId := range utils.SortedKeys(totals.Orders) {
		rowNo := fmt.Sprint(i + 2)
		f.SetCellValue(OrderTotalsSheet, "A"+rowNo, orderId)
		f.SetCellValue(OrderTotalsSheet, "B"+rowNo, totals.Orders[orderId].Round(2).InexactFloat64())
	}

	f.SetCellValue(IngredientTotalsSheet, "A1", "OrderId")
	f.SetCellValue(IngredientTotalsSheet, "B1", "Ingredient")
	f.SetCellValue(IngredientTotalsSheet, "C1", "TotalAmount")

	rowNo := 2
	for _, orderId := range utils.SortedKeys(totals.Ingredients) {
		for _, e := range totals.Ingredients[orderId].Entries() {
			f.SetCellValue(IngredientTotalsSheet, "A"+fmt.Sprint(rowNo), orderId)
			f.SetCellValue(IngredientTotalsSheet, "B"+fmt.Sprint(rowNo), e.Name)
			f.SetCellValue(IngredientTotalsSheet, "C"+fmt.Sprint(rowNo), e.Amount)
			rowNo++
		}
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}
