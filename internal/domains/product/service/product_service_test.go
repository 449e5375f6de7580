package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-registry-backend/internal/domains/product"
	"product-registry-backend/internal/domains/product/repository"
)

func validReq(name string) *product.CreateProductReq {
	return &product.CreateProductReq{
		Name:  name,
		Price: decimal.NewFromFloat(9.99),
		Stock: 1,
	}
}

func newFileBackedService(t *testing.T) product.Service {
	t.Helper()
	store, err := repository.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewProductService(store, product.NewIDAllocator(0))
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	svc := newFileBackedService(t)
	ctx := context.Background()

	for want := int64(1); want <= 10; want++ {
		p, err := svc.Create(ctx, validReq("Producto"))
		require.NoError(t, err)
		assert.Equal(t, want, p.ID)
		assert.False(t, p.CreatedAt.IsZero())
	}
}

func TestCreateThenListReturnsTheRecord(t *testing.T) {
	svc := newFileBackedService(t)
	ctx := context.Background()

	req := validReq("Teclado mecánico")
	cat := "Periféricos"
	req.Category = &cat

	created, err := svc.Create(ctx, req)
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, "Teclado mecánico", list[0].Name)
	require.NotNil(t, list[0].Category)
	assert.Equal(t, "Periféricos", *list[0].Category)
	assert.True(t, list[0].Price.Equal(decimal.NewFromFloat(9.99)))
	assert.True(t, created.CreatedAt.Equal(list[0].CreatedAt))
}

func TestGetReturnsExactRecordOrNotFound(t *testing.T) {
	svc := newFileBackedService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validReq("Monitor"))
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)

	_, err = svc.Get(ctx, 9999)
	assert.ErrorIs(t, err, product.ErrProductNotFound)
}

func TestConcurrentCreatesYieldDistinctSequentialIDs(t *testing.T) {
	svc := newFileBackedService(t)
	ctx := context.Background()

	const n = 50
	ids := make([]int64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := svc.Create(ctx, validReq("Concurrente"))
			if err != nil {
				t.Error(err)
				return
			}
			ids[i] = p.ID
		}(i)
	}
	wg.Wait()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i, id := range ids {
		assert.Equal(t, int64(i+1), id, "no duplicates, no gaps")
	}
}

// failingRepo errors on every append; reads are irrelevant here.
type failingRepo struct{}

func (failingRepo) Append(context.Context, *product.Product) error { return errors.New("disk full") }
func (failingRepo) GetAll(context.Context) ([]product.Product, error) {
	return nil, nil
}
func (failingRepo) GetByID(context.Context, int64) (*product.Product, error) {
	return nil, product.ErrProductNotFound
}
func (failingRepo) LastID(context.Context) (int64, error) { return 0, nil }

func TestCreateSurfacesWriteFailureAndBurnsTheID(t *testing.T) {
	alloc := product.NewIDAllocator(0)
	failing := NewProductService(failingRepo{}, alloc)

	_, err := failing.Create(context.Background(), validReq("Perdido"))
	require.Error(t, err)

	// The failed create consumed id 1; a working service over the same
	// allocator must hand out 2 next.
	store, err2 := repository.NewFileStore(t.TempDir())
	require.NoError(t, err2)
	working := NewProductService(store, alloc)

	p, err := working.Create(context.Background(), validReq("Siguiente"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.ID)
}

func TestCreateStampsUTCCreationTime(t *testing.T) {
	svc := newFileBackedService(t)

	before := time.Now().UTC().Add(-time.Second)
	p, err := svc.Create(context.Background(), validReq("Reloj"))
	require.NoError(t, err)
	after := time.Now().UTC().Add(time.Second)

	assert.True(t, p.CreatedAt.After(before) && p.CreatedAt.Before(after))
}
