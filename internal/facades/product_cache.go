package facades

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/inventory-api/internal/logger"
	"github.com/sbilibin2017/inventory-api/internal/models"
)

// productsKey is the cache key holding the full product list.
const productsKey = "products:all"

// RedisClient is the subset of redis commands the facade uses.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// ProductCacheRedisFacade caches the product list in redis.
type ProductCacheRedisFacade struct {
	client RedisClient
	exp    time.Duration
}

// NewProductCacheRedisFacade creates a new facade with a redis client and
// cache entry time-to-live.
func NewProductCacheRedisFacade(client RedisClient, exp time.Duration) *ProductCacheRedisFacade {
	return &ProductCacheRedisFacade{client: client, exp: exp}
}

// GetProducts returns the cached product list, or nil on a cache miss.
func (f *ProductCacheRedisFacade) GetProducts(ctx context.Context) ([]models.ProductDB, error) {
	val, err := f.client.Get(ctx, productsKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to read product cache", "error", err)
		return nil, err
	}

	var products []models.ProductDB
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		logger.Log.Errorw("failed to decode product cache", "error", err)
		return nil, err
	}

	return products, nil
}

// SetProducts stores the product list with the configured expiration.
func (f *ProductCacheRedisFacade) SetProducts(ctx context.Context, products []models.ProductDB) error {
	payload, err := json.Marshal(products)
	if err != nil {
		return err
	}

	if err := f.client.Set(ctx, productsKey, payload, f.exp).Err(); err != nil {
		logger.Log.Errorw("failed to write product cache", "error", err)
		return err
	}

	return nil
}

// Invalidate drops the cached product list.
func (f *ProductCacheRedisFacade) Invalidate(ctx context.Context) error {
	if err := f.client.Del(ctx, productsKey).Err(); err != nil {
		logger.Log.Errorw("failed to invalidate product cache", "error", err)
		return err
	}
	return nil
}
