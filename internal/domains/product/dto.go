package product

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// ========================================
// PRODUCT DTOs
// ========================================

// CreateProductReq carries the caller-supplied fields of a new product.
// ID and creation time are never accepted from the client.
type CreateProductReq struct {
	Name        string          `json:"name"`
	Category    *string         `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Description *string         `json:"description"`
}

func (r CreateProductReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.By(trimmedLength(2, 60)),
		),
		validation.Field(&r.Category,
			validation.By(trimmedLength(0, 40)),
		),
		validation.Field(&r.Price,
			validation.By(positiveDecimal),
		),
		validation.Field(&r.Stock,
			validation.Min(0).Error("stock must be zero or greater"),
		),
		validation.Field(&r.Description,
			validation.Length(0, 200).Error("description must be at most 200 characters"),
		),
	)
}

// trimmedLength validates string length after whitespace trimming, since
// name and category are stored trimmed. The blank check is explicit:
// ozzo's Length rule treats an empty string as absent and lets it pass,
// which would allow a whitespace-only value through a min bound.
func trimmedLength(min, max int) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := indirectString(value)
		if !ok || s == nil {
			return nil
		}
		trimmed := strings.TrimSpace(*s)
		if min > 0 && trimmed == "" {
			return errors.New("cannot be blank")
		}
		return validation.Length(min, max).Validate(trimmed)
	}
}

func positiveDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a number")
	}
	if !d.IsPositive() {
		return errors.New("price must be greater than zero")
	}
	return nil
}

func indirectString(value interface{}) (*string, bool) {
	switch v := value.(type) {
	case string:
		return &v, true
	case *string:
		return v, true
	}
	return nil, false
}
