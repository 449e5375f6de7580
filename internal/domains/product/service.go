package product

import "context"

// ============================================================
// SERVICE INTERFACE: Service
// ============================================================

// Service is the façade over the allocator and the record store.
type Service interface {
	// Create allocates the next id, stamps the creation time and
	// persists the record, all under one exclusion gate. The completed
	// record is returned. A storage failure fails this request only;
	// the allocated id stays consumed (gaps are acceptable).
	Create(ctx context.Context, req *CreateProductReq) (*Product, error)

	// List returns all persisted records in insertion order.
	List(ctx context.Context) ([]Product, error)

	// Get returns the record with the given id or ErrProductNotFound.
	Get(ctx context.Context, id int64) (*Product, error)
}
