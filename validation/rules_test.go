package validation

import (
	"testing"
	"time"

	"github.com/mmdatafocus/kitchen_totals/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	created   = time.Date(2025, 7, 8, 9, 0, 0, 0, time.UTC)
	delivered = time.Date(2025, 7, 10, 10, 0, 0, 0, time.UTC)
)

func strPtr(s string) *string {
	return &s
}

func validOrder() models.Order {
	return models.Order{
		OrderId:         1,
		ProductId:       101,
		Quantity:        2,
		DeliveryAt:      delivered,
		CreatedAt:       created,
		DeliveryAddress: strPtr("123 Main St"),
	}
}

func messages(violations []Violation) []string {
	out := make([]string, 0, len(violations))
	for _, v := range violations {
		out = append(out, v.Message)
	}
	return out
}

func TestValidateOrder(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(o *models.Order)
		expected []string
	}{
		{
			name:   "valid order",
			mutate: func(o *models.Order) {},
		},
		{
			name:     "zero order id",
			mutate:   func(o *models.Order) { o.OrderId = 0 },
			expected: []string{"OrderId must be greater than 0."},
		},
		{
			name:     "negative product id",
			mutate:   func(o *models.Order) { o.ProductId = -4 },
			expected: []string{"ProductId must be greater than 0."},
		},
		{
			name:     "zero quantity",
			mutate:   func(o *models.Order) { o.Quantity = 0 },
			expected: []string{"Quantity must be greater than 0."},
		},
		{
			name:     "delivery before creation",
			mutate:   func(o *models.Order) { o.DeliveryAt = created.Add(-time.Hour) },
			expected: []string{"DeliveryAt must be after CreatedAt."},
		},
		{
			name:     "delivery equal to creation",
			mutate:   func(o *models.Order) { o.DeliveryAt = created },
			expected: []string{"DeliveryAt must be after CreatedAt."},
		},
		{
			name:     "missing address",
			mutate:   func(o *models.Order) { o.DeliveryAddress = nil },
			expected: []string{"DeliveryAddress is required."},
		},
		{
			name:     "empty address",
			mutate:   func(o *models.Order) { o.DeliveryAddress = strPtr("") },
			expected: []string{"DeliveryAddress is required."},
		},
		{
			name:     "blank address",
			mutate:   func(o *models.Order) { o.DeliveryAddress = strPtr(" \t  ") },
			expected: []string{"DeliveryAddress is required."},
		},
		{
			name: "everything wrong",
			mutate: func(o *models.Order) {
				*o = models.Order{}
			},
			expected: []string{
				"OrderId must be greater than 0.",
				"ProductId must be greater than 0.",
				"Quantity must be greater than 0.",
				"DeliveryAt must be after CreatedAt.",
				"CreatedAt is required.",
				"DeliveryAddress is required.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOrder()
			tt.mutate(&o)
			violations := ValidateOrder(o)
			if len(tt.expected) == 0 {
				assert.Empty(t, violations)
				return
			}
			assert.ElementsMatch(t, tt.expected, messages(violations))
		})
	}
}

func TestValidateOrder_ViolationFields(t *testing.T) {
	o := validOrder()
	o.Quantity = -1

	violations := ValidateOrder(o)
	require.Len(t, violations, 1)
	assert.Equal(t, "Quantity", violations[0].Field)
	assert.Equal(t, "gt", violations[0].Rule)
}

func TestValidateProduct(t *testing.T) {
	tests := []struct {
		name     string
		product  models.Product
		expected []string
	}{
		{
			name:    "valid product",
			product: models.Product{ProductId: 101, ProductName: "Pizza", Price: decimal.RequireFromString("12.99")},
		},
		{
			name:     "zero id",
			product:  models.Product{ProductId: 0, ProductName: "Pizza", Price: decimal.RequireFromString("12.99")},
			expected: []string{"ProductId must be greater than 0."},
		},
		{
			name:     "empty name",
			product:  models.Product{ProductId: 101, Price: decimal.RequireFromString("12.99")},
			expected: []string{"ProductName is required."},
		},
		{
			name:     "zero price",
			product:  models.Product{ProductId: 101, ProductName: "Pizza"},
			expected: []string{"Price must be greater than 0."},
		},
		{
			name:     "negative price",
			product:  models.Product{ProductId: 101, ProductName: "Pizza", Price: decimal.RequireFromString("-0.01")},
			expected: []string{"Price must be greater than 0."},
		},
		{
			name:     "blank name",
			product:  models.Product{ProductId: 101, ProductName: "   ", Price: decimal.RequireFromString("12.99")},
			expected: []string{"ProductName is required."},
		},
		{
			name:    "price below float range",
			product: models.Product{ProductId: 101, ProductName: "Pizza", Price: decimal.New(1, -400)},
		},
		{
			name:     "negative price below float range",
			product:  models.Product{ProductId: 101, ProductName: "Pizza", Price: decimal.New(-1, -400)},
			expected: []string{"Price must be greater than 0."},
		},
		{
			name:    "tiny positive price",
			product: models.Product{ProductId: 101, ProductName: "Pizza", Price: decimal.RequireFromString("0.01")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := ValidateProduct(tt.product)
			if len(tt.expected) == 0 {
				assert.Empty(t, violations)
				return
			}
			assert.ElementsMatch(t, tt.expected, messages(violations))
		})
	}
}

func TestValidateProductIngredients(t *testing.T) {
	cheese := models.IngredientInfo{Ingredient: "Cheese", Amount: 100}
	tests := []struct {
		name     string
		recipe   models.ProductIngredients
		expected []string
	}{
		{
			name:   "valid recipe",
			recipe: models.ProductIngredients{ProductId: 101, Ingredients: []models.IngredientInfo{cheese}},
		},
		{
			name:   "five ingredients",
			recipe: models.ProductIngredients{ProductId: 101, Ingredients: []models.IngredientInfo{cheese, cheese, cheese, cheese, cheese}},
		},
		{
			name:     "nil list",
			recipe:   models.ProductIngredients{ProductId: 101},
			expected: []string{"Ingredients list must have 1 to 5 items."},
		},
		{
			name:     "empty list",
			recipe:   models.ProductIngredients{ProductId: 101, Ingredients: []models.IngredientInfo{}},
			expected: []string{"Ingredients list must have 1 to 5 items."},
		},
		{
			name:     "six ingredients",
			recipe:   models.ProductIngredients{ProductId: 101, Ingredients: []models.IngredientInfo{cheese, cheese, cheese, cheese, cheese, cheese}},
			expected: []string{"Ingredients list must have 1 to 5 items."},
		},
		{
			name:     "zero product id",
			recipe:   models.ProductIngredients{ProductId: 0, Ingredients: []models.IngredientInfo{cheese}},
			expected: []string{"ProductId must be greater than 0."},
		},
		{
			name: "invalid ingredients are reported per element",
			recipe: models.ProductIngredients{ProductId: 101, Ingredients: []models.IngredientInfo{
				cheese,
				{Ingredient: "", Amount: 10},
				{Ingredient: "Tomato", Amount: 0},
			}},
			expected: []string{"Ingredient name is required.", "Ingredient amount must be greater than 0."},
		},
		{
			name: "too many and invalid together",
			recipe: models.ProductIngredients{ProductId: 101, Ingredients: []models.IngredientInfo{
				cheese, cheese, cheese, cheese, cheese, {Ingredient: "Salt", Amount: -1},
			}},
			expected: []string{"Ingredient amount must be greater than 0.", "Ingredients list must have 1 to 5 items."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := ValidateProductIngredients(tt.recipe)
			if len(tt.expected) == 0 {
				assert.Empty(t, violations)
				return
			}
			assert.ElementsMatch(t, tt.expected, messages(violations))
		})
	}
}

func TestValidateProductIngredients_ElementPath(t *testing.T) {
	recipe := models.ProductIngredients{ProductId: 101, Ingredients: []models.IngredientInfo{
		{Ingredient: "Cheese", Amount: 100},
		{Ingredient: "Tomato", Amount: 0},
	}}

	violations := ValidateProductIngredients(recipe)
	require.Len(t, violations, 1)
	assert.Equal(t, "Ingredients[1].Amount", violations[0].Field)
}

func TestValidateOrder_BlankAddressRule(t *testing.T) {
	o := validOrder()
	o.DeliveryAddress = strPtr("   ")

	violations := ValidateOrder(o)
	require.Len(t, violations, 1)
	assert.Equal(t, "DeliveryAddress", violations[0].Field)
	assert.Equal(t, "notblank", violations[0].Rule)
}

func TestValidateIngredientInfo(t *testing.T) {
	assert.Empty(t, ValidateIngredientInfo(models.IngredientInfo{Ingredient: "Cheese", Amount: 0.5}))
	assert.Equal(t,
		[]string{"Ingredient name is required."},
		messages(ValidateIngredientInfo(models.IngredientInfo{Ingredient: "  ", Amount: 1})),
	)
	assert.ElementsMatch(t,
		[]string{"Ingredient name is required.", "Ingredient amount must be greater than 0."},
		messages(ValidateIngredientInfo(models.IngredientInfo{})),
	)
}
