package calculator

import (
	"strconv"

	"github.com/mmdatafocus/kitchen_totals/models"
	"github.com/sirupsen/logrus"
)

// CalculateIngredientTotals sums amount * quantity per ingredient for each OrderId.
// An order whose product has an empty recipe still gets an (empty) entry; an order whose
// product has no recipe at all is reported on logger and gets none.
func CalculateIngredientTotals(logger logrus.FieldLogger, orders []models.Order, recipes []models.ProductIngredients) map[int]*IngredientTotals {
	byProduct := models.RecipesByProduct(recipes)
	totals := make(map[int]*IngredientTotals)

	for _, o := range orders {
		ingredients, ok := byProduct[o.ProductId]
		if !ok {
			logger.WithFields(logrus.Fields{
				"order_id":   o.OrderId,
				"product_id": o.ProductId,
			}).Warn("No ingredients found for ProductId " + strconv.Itoa(o.ProductId))
			continue
		}

		orderTotals, exists := totals[o.OrderId]
		if !exists {
			orderTotals = NewIngredientTotals()
			totals[o.OrderId] = orderTotals
		}
		for _, ingr := range ingredients {
			orderTotals.Add(ingr.Ingredient, ingr.Amount*float64(o.Quantity))
		}
	}
	return totals
}
