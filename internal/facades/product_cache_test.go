package facades

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/inventory-api/internal/models"
	"github.com/stretchr/testify/assert"
)

// fakeRedisClient returns canned results per command.
type fakeRedisClient struct {
	getResult *redis.StringCmd
	setResult *redis.StatusCmd
	delResult *redis.IntCmd

	setKey   string
	setValue interface{}
	setExp   time.Duration
	delKeys  []string
}

func (f *fakeRedisClient) Get(ctx context.Context, key string) *redis.StringCmd {
	return f.getResult
}

func (f *fakeRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.setKey = key
	f.setValue = value
	f.setExp = expiration
	return f.setResult
}

func (f *fakeRedisClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.delKeys = keys
	return f.delResult
}

func TestProductCacheRedisFacade_GetProducts_Hit(t *testing.T) {
	products := []models.ProductDB{{ID: 1, Name: "Widget", Price: 9.99, Stock: 5}}
	payload, _ := json.Marshal(products)

	client := &fakeRedisClient{getResult: redis.NewStringResult(string(payload), nil)}
	facade := NewProductCacheRedisFacade(client, time.Minute)

	got, err := facade.GetProducts(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestProductCacheRedisFacade_GetProducts_Miss(t *testing.T) {
	client := &fakeRedisClient{getResult: redis.NewStringResult("", redis.Nil)}
	facade := NewProductCacheRedisFacade(client, time.Minute)

	got, err := facade.GetProducts(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductCacheRedisFacade_GetProducts_Error(t *testing.T) {
	client := &fakeRedisClient{getResult: redis.NewStringResult("", errors.New("redis down"))}
	facade := NewProductCacheRedisFacade(client, time.Minute)

	got, err := facade.GetProducts(context.Background())
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestProductCacheRedisFacade_GetProducts_CorruptPayload(t *testing.T) {
	client := &fakeRedisClient{getResult: redis.NewStringResult("{not json", nil)}
	facade := NewProductCacheRedisFacade(client, time.Minute)

	got, err := facade.GetProducts(context.Background())
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestProductCacheRedisFacade_SetProducts(t *testing.T) {
	client := &fakeRedisClient{setResult: redis.NewStatusResult("OK", nil)}
	facade := NewProductCacheRedisFacade(client, time.Minute)

	products := []models.ProductDB{{ID: 1, Name: "Widget"}}
	err := facade.SetProducts(context.Background(), products)
	assert.NoError(t, err)

	assert.Equal(t, "products:all", client.setKey)
	assert.Equal(t, time.Minute, client.setExp)

	var stored []models.ProductDB
	assert.NoError(t, json.Unmarshal(client.setValue.([]byte), &stored))
	assert.Equal(t, products, stored)
}

func TestProductCacheRedisFacade_SetProducts_Error(t *testing.T) {
	client := &fakeRedisClient{setResult: redis.NewStatusResult("", errors.New("redis down"))}
	facade := NewProductCacheRedisFacade(client, time.Minute)

	err := facade.SetProducts(context.Background(), []models.ProductDB{})
	assert.Error(t, err)
}

func TestProductCacheRedisFacade_Invalidate(t *testing.T) {
	client := &fakeRedisClient{delResult: redis.NewIntResult(1, nil)}
	facade := NewProductCacheRedisFacade(client, time.Minute)

	err := facade.Invalidate(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"products:all"}, client.delKeys)
}

func TestProductCacheRedisFacade_Invalidate_Error(t *testing.T) {
	client := &fakeRedisClient{delResult: redis.NewIntResult(0, errors.New("redis down"))}
	facade := NewProductCacheRedisFacade(client, time.Minute)

	err := facade.Invalidate(context.Background())
	assert.Error(t, err)
}
