package container

import (
	"context"
	"fmt"
	"log"

	"product-registry-backend/internal/config"
	"product-registry-backend/pkg/logger"

	"product-registry-backend/internal/domains/product"
	productHandler "product-registry-backend/internal/domains/product/handler"
	productRepo "product-registry-backend/internal/domains/product/repository"
	productService "product-registry-backend/internal/domains/product/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds ALL dependencies of the application and is the root of
// the dependency graph. Everything in here is a singleton for the process
// lifetime.
type Container struct {
	Config *config.Config

	// Record store: owns the two on-disk logs exclusively.
	Store product.Repository

	// Façade over allocator + store.
	ProductService product.Service

	// HTTP layer.
	ProductHandler *productHandler.ProductHandler
}

// NewContainer builds the dependency graph in order: config → logger →
// record store → allocator recovery → service → handler. A failure at any
// step aborts startup.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Init(cfg.App.Environment)
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: OPEN THE RECORD STORE
	// ========================================
	// Creates the data dir and the audit header if absent. Failing to
	// bootstrap storage is the one unrecoverable startup fault.
	store, err := productRepo.NewFileStore(cfg.Storage.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open record store: %w", err)
	}
	c.Store = store
	log.Printf("✅ Record store ready (dir: %s, single-writer, do not run a second instance against it)", cfg.Storage.DataDir)

	// ========================================
	// STEP 3: RECOVER THE ID ALLOCATOR
	// ========================================
	// One lenient scan of the journal seeds the counter; after this the
	// journal is only read by list/get.
	lastID, err := store.LastID(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to recover last id: %w", err)
	}
	allocator := product.NewIDAllocator(lastID)
	log.Printf("✅ ID allocator recovered (last id: %d)", lastID)

	// ========================================
	// STEP 4: SERVICES AND HANDLERS
	// ========================================
	c.ProductService = productService.NewProductService(store, allocator)
	c.ProductHandler = productHandler.NewProductHandler(c.ProductService)
	log.Println("✅ Services and handlers initialized")

	return c, nil
}

// Cleanup releases held resources on shutdown. The record store opens and
// closes its files per append, so there is nothing to tear down yet; the
// hook exists so cmd/api does not change when that stops being true.
func (c *Container) Cleanup() {
	log.Println("🧹 Container cleanup complete")
}
