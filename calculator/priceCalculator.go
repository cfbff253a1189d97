package calculator

import (
	"github.com/mmdatafocus/kitchen_totals/models"
	"github.com/shopspring/decimal"
)

// CalculateOrderTotals sums price * quantity per OrderId.
// Line items whose product is unknown add nothing; an order made only of such items has no entry.
func CalculateOrderTotals(orders []models.Order, products []models.Product) map[int]decimal.Decimal {
	prices := models.ProductPrices(products)
	totals := make(map[int]decimal.Decimal)

	for _, o := range orders {
		price, ok := prices[o.ProductId]
		if !ok {
			continue
		}
		lineTotal := price.Mul(decimal.NewFromInt(int64(o.Quantity)))
		if current, exists := totals[o.OrderId]; exists {
			totals[o.OrderId] = current.Add(lineTotal)
		} else {
			totals[o.OrderId] = lineTotal
		}
	}
	return totals
}
