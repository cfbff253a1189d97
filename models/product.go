package models

import "github.com/shopspring/decimal"

type Product struct {
	ProductId   int             `json:"ProductId" validate:"gt=0"`
	ProductName string          `json:"ProductName" validate:"required,notblank"`
	Price       decimal.Decimal `json:"Price" validate:"gt=0"`
}

// ProductPrices maps ProductId to Price. The first product listed for an id wins.
func ProductPrices(products []Product) map[int]decimal.Decimal {
	prices := make(map[int]decimal.Decimal, len(products))
	for _, p := range products {
		if _, exists := prices[p.ProductId]; exists {
			continue
		}
		prices[p.ProductId] = p.Price
	}
	return prices
}
