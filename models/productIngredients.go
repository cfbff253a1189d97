package models

const MaxIngredientsPerProduct = 5

// ProductIngredients is the recipe of one product: per-unit amounts of each ingredient.
type ProductIngredients struct {
	ProductId   int              `json:"ProductId" validate:"gt=0"`
	Ingredients []IngredientInfo `json:"Ingredients" validate:"dive"`
}

type IngredientInfo struct {
	Ingredient string  `json:"Ingredient" validate:"required,notblank"`
	Amount     float64 `json:"Amount" validate:"gt=0"`
}

// RecipesByProduct maps ProductId to its ingredient list. The first recipe listed for an id wins.
func RecipesByProduct(recipes []ProductIngredients) map[int][]IngredientInfo {
	byProduct := make(map[int][]IngredientInfo, len(recipes))
	for _, r := range recipes {
		if _, exists := byProduct[r.ProductId]; exists {
			continue
		}
		byProduct[r.ProductId] = r.Ingredients
	}
	return byProduct
}
