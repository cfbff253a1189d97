package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/mmdatafocus/kitchen_totals/models"
	"github.com/shopspring/decimal"
)

// Violation is one broken rule on one record.
type Violation struct {
	Field   string
	Rule    string
	Message string
}

const (
	ruleIngredientCount = "ingredientcount"
	ruleNotBlank        = "notblank"
)

// Every rule on a field shares one message, so the field name alone picks it.
var fieldMessages = map[string]string{
	"OrderId":         "OrderId must be greater than 0.",
	"ProductId":       "ProductId must be greater than 0.",
	"Quantity":        "Quantity must be greater than 0.",
	"DeliveryAt":      "DeliveryAt must be after CreatedAt.",
	"CreatedAt":       "CreatedAt is required.",
	"DeliveryAddress": "DeliveryAddress is required.",
	"ProductName":     "ProductName is required.",
	"Price":           "Price must be greater than 0.",
	"Ingredients":     fmt.Sprintf("Ingredients list must have 1 to %d items.", models.MaxIngredientsPerProduct),
	"Ingredient":      "Ingredient name is required.",
	"Amount":          "Ingredient amount must be greater than 0.",
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterCustomTypeFunc(decimalSign, decimal.Decimal{})
		// Registration only fails on an empty tag or a nil func.
		_ = v.RegisterValidation(ruleNotBlank, validators.NotBlank)
		v.RegisterStructValidation(ingredientCountRule, models.ProductIngredients{})
		validate = v
	})
	return validate
}

// decimalSign exposes a decimal to the rules as its sign (-1, 0 or 1), so "gt=0" stays exact
// for any magnitude. Decimal fields only carry rules that compare against 0.
func decimalSign(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.Sign()
	}
	return nil
}

func ingredientCountRule(sl validator.StructLevel) {
	pi := sl.Current().Interface().(models.ProductIngredients)
	if n := len(pi.Ingredients); n == 0 || n > models.MaxIngredientsPerProduct {
		sl.ReportError(pi.Ingredients, "Ingredients", "Ingredients", ruleIngredientCount, "")
	}
}

func ValidateOrder(o models.Order) []Violation {
	return check(o)
}

func ValidateProduct(p models.Product) []Violation {
	return check(p)
}

// ValidateProductIngredients checks the recipe and every ingredient in it.
func ValidateProductIngredients(pi models.ProductIngredients) []Violation {
	return check(pi)
}

func ValidateIngredientInfo(ii models.IngredientInfo) []Violation {
	return check(ii)
}

func check(record any) []Violation {
	err := getValidator().Struct(record)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []Violation{{Message: err.Error()}}
	}
	violations := make([]Violation, 0, len(validationErrors))
	for _, fe := range validationErrors {
		violations = append(violations, Violation{
			Field:   fieldPath(fe.Namespace()),
			Rule:    fe.Tag(),
			Message: messageFor(fe),
		})
	}
	return violations
}

// fieldPath drops the leading struct name: "ProductIngredients.Ingredients[0].Amount" -> "Ingredients[0].Amount".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()]; ok {
		return msg
	}
	return fmt.Sprintf("%s failed the '%s' rule.", fe.Field(), fe.Tag())
}
