package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mmdatafocus/kitchen_totals/utils"
)

// Order is one line item; several line items may share an OrderId.
type Order struct {
	OrderId         int       `json:"OrderId" validate:"gt=0"`
	ProductId       int       `json:"ProductId" validate:"gt=0"`
	Quantity        int       `json:"Quantity" validate:"gt=0"`
	DeliveryAt      time.Time `json:"DeliveryAt" validate:"gtfield=CreatedAt"`
	CreatedAt       time.Time `json:"CreatedAt" validate:"required"`
	DeliveryAddress *string   `json:"DeliveryAddress" validate:"required,notblank"`
}

// UnmarshalJSON accepts timestamps with or without a zone designator.
// A null or empty timestamp decodes to the zero time and is left for validation to report.
func (o *Order) UnmarshalJSON(data []byte) error {
	type orderAlias Order
	aux := struct {
		*orderAlias
		DeliveryAt *string `json:"DeliveryAt"`
		CreatedAt  *string `json:"CreatedAt"`
	}{orderAlias: (*orderAlias)(o)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var err error
	if o.DeliveryAt, err = decodeTimestamp(aux.DeliveryAt); err != nil {
		return fmt.Errorf("DeliveryAt: %w", err)
	}
	if o.CreatedAt, err = decodeTimestamp(aux.CreatedAt); err != nil {
		return fmt.Errorf("CreatedAt: %w", err)
	}
	return nil
}

func decodeTimestamp(raw *string) (time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return time.Time{}, nil
	}
	return ParseTimestamp(*raw)
}

// Address returns the delivery address or "" when none was given.
func (o Order) Address() string {
	return utils.DereferencePtr(o.DeliveryAddress)
}
