package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"product-registry-backend/internal/domains/product"
	"product-registry-backend/pkg/logger"
)

type productServiceImpl struct {
	// mu is the exclusion gate: it spans id allocation AND the append, so
	// ids are always issued and persisted in the same order and no two
	// creates ever race on the counter or interleave file writes.
	mu   sync.Mutex
	repo product.Repository
	ids  *product.IDAllocator
}

// NewProductService wires the façade over the record store and the
// recovered id allocator.
func NewProductService(repo product.Repository, ids *product.IDAllocator) product.Service {
	return &productServiceImpl{
		repo: repo,
		ids:  ids,
	}
}

func (s *productServiceImpl) Create(ctx context.Context, req *product.CreateProductReq) (*product.Product, error) {
	// Safety check: req should be validated by the handler already.
	if req == nil {
		return nil, fmt.Errorf("create product: %w", product.ErrInvalidRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.ids.Next()
	entity := product.NewProduct(id, req, time.Now().UTC())

	if err := s.repo.Append(ctx, entity); err != nil {
		// The id stays consumed; gaps in the sequence are acceptable and
		// preferable to ever reusing an id.
		logger.Error(fmt.Sprintf("Create: append failed, id %d is lost", id), err)
		return nil, fmt.Errorf("create product: %w", err)
	}

	return entity, nil
}

// List and Get take no gate: the store is append-only and single-writer,
// so a scan only ever observes fully appended records.
func (s *productServiceImpl) List(ctx context.Context) ([]product.Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.Error("List: scan failed", err)
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *productServiceImpl) Get(ctx context.Context, id int64) (*product.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		// Not-found is an expected outcome, not a failure; pass it through
		// untouched so the handler can map it.
		return nil, err
	}
	return p, nil
}
