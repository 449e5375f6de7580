package product

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product is the sole entity of the registry. A product is born fully
// formed at creation time and never changes afterwards: the store is
// append-only and no update or delete path exists.
//
// The json tags double as the journal line schema: what this struct
// marshals to is exactly what lands in productos.jsonl.
type Product struct {
	// Identity: assigned by the allocator, unique and monotonically
	// increasing, never reused even across restarts.
	ID int64 `json:"id"`

	// Caller-supplied fields, validated at the boundary.
	Name        string          `json:"name"`
	Category    *string         `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Description *string         `json:"description"`

	// Stamped by the service at creation; never supplied by the caller.
	CreatedAt time.Time `json:"created_at"`
}

// NewProduct builds the persisted record from validated input plus the
// allocated id and creation timestamp. Name and category are stored
// trimmed; description is kept as received.
func NewProduct(id int64, req *CreateProductReq, createdAt time.Time) *Product {
	p := &Product{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
		CreatedAt:   createdAt,
	}
	if req.Category != nil {
		trimmed := strings.TrimSpace(*req.Category)
		p.Category = &trimmed
	}
	return p
}
