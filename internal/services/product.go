package services

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/inventory-api/internal/events"
	"github.com/sbilibin2017/inventory-api/internal/logger"
	"github.com/sbilibin2017/inventory-api/internal/models"
)

// ErrProductNotFound is returned when an operation targets a missing product.
var ErrProductNotFound = errors.New("product not found")

// ProductReader defines read-only operations for products.
type ProductReader interface {
	GetAll(ctx context.Context) ([]models.ProductDB, error)
}

// ProductWriter defines write operations for products.
type ProductWriter interface {
	Save(ctx context.Context, name string, price float64, stock int64) (*models.ProductDB, error)
	UpdateStock(ctx context.Context, id, stock int64) (*models.ProductDB, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ProductCache defines cache operations for the product list.
type ProductCache interface {
	GetProducts(ctx context.Context) ([]models.ProductDB, error)
	SetProducts(ctx context.Context, products []models.ProductDB) error
	Invalidate(ctx context.Context) error
}

// StockPublisher defines an interface for publishing stock events.
type StockPublisher interface {
	Publish(ctx context.Context, event events.StockEvent) error
}

// ProductService handles product listing and mutations.
type ProductService struct {
	reader    ProductReader
	writer    ProductWriter
	cache     ProductCache
	publisher StockPublisher
}

// NewProductService creates a new ProductService instance.
func NewProductService(reader ProductReader, writer ProductWriter, cache ProductCache, publisher StockPublisher) *ProductService {
	return &ProductService{
		reader:    reader,
		writer:    writer,
		cache:     cache,
		publisher: publisher,
	}
}

// List returns all products, serving from the cache when possible.
func (svc *ProductService) List(ctx context.Context) ([]models.ProductDB, error) {
	cached, err := svc.cache.GetProducts(ctx)
	if err != nil {
		logger.Log.Errorw("product cache read failed", "err", err)
	}
	if cached != nil {
		return cached, nil
	}

	products, err := svc.reader.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list products", "err", err)
		return nil, err
	}

	if err := svc.cache.SetProducts(ctx, products); err != nil {
		logger.Log.Errorw("product cache write failed", "err", err)
	}

	return products, nil
}

// Create stores a new product, drops the cached list, and publishes a
// created event.
func (svc *ProductService) Create(ctx context.Context, name string, price float64, stock int64) (*models.ProductDB, error) {
	product, err := svc.writer.Save(ctx, name, price, stock)
	if err != nil {
		logger.Log.Errorw("failed to create product", "err", err)
		return nil, err
	}

	svc.invalidateAndPublish(ctx, events.StockEvent{
		ProductID:  product.ID,
		Action:     events.ActionCreated,
		Stock:      product.Stock,
		OccurredAt: time.Now().UTC(),
	})

	return product, nil
}

// UpdateStock sets the stock of an existing product.
func (svc *ProductService) UpdateStock(ctx context.Context, id, stock int64) (*models.ProductDB, error) {
	product, err := svc.writer.UpdateStock(ctx, id, stock)
	if err != nil {
		logger.Log.Errorw("failed to update stock", "id", id, "err", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	svc.invalidateAndPublish(ctx, events.StockEvent{
		ProductID:  product.ID,
		Action:     events.ActionStockUpdated,
		Stock:      product.Stock,
		OccurredAt: time.Now().UTC(),
	})

	return product, nil
}

// Delete removes an existing product.
func (svc *ProductService) Delete(ctx context.Context, id int64) error {
	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete product", "id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}

	svc.invalidateAndPublish(ctx, events.StockEvent{
		ProductID:  id,
		Action:     events.ActionDeleted,
		OccurredAt: time.Now().UTC(),
	})

	return nil
}

// invalidateAndPublish performs the best-effort side effects of a product
// mutation. Failures are logged and never surfaced to the caller.
func (svc *ProductService) invalidateAndPublish(ctx context.Context, event events.StockEvent) {
	if err := svc.cache.Invalidate(ctx); err != nil {
		logger.Log.Errorw("product cache invalidation failed", "err", err)
	}
	if err := svc.publisher.Publish(ctx, event); err != nil {
		logger.Log.Errorw("stock event publish failed", "err", err)
	}
}
