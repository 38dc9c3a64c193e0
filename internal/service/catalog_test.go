package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Ksaiko-Vlad/sofa-order-service/internal/entities"
	"github.com/Ksaiko-Vlad/sofa-order-service/internal/service"
	mocks "github.com/Ksaiko-Vlad/sofa-order-service/internal/service/mocks"
)

func TestCatalogService_ListProducts(t *testing.T) {
	variants := []entities.ProductVariant{
		{ID: 10, ProductName: "Диван", MaterialName: "Велюр", SKU: "SOFA-10", Price: 150000, Active: true},
	}

	t.Run("cache miss loads from repo and fills cache", func(t *testing.T) {
		repo := mocks.NewMockCatalogRepo(t)
		cache := mocks.NewMockCache(t)

		cache.EXPECT().Get("catalog:variants").Return(nil, false)
		repo.EXPECT().ListVariants(mock.Anything).Return(variants, nil)
		cache.EXPECT().Set("catalog:variants", mock.Anything).Run(func(key string, value []byte) {
			var decoded []entities.ProductVariant
			require.NoError(t, json.Unmarshal(value, &decoded))
			assert.Equal(t, variants, decoded)
		})

		svc := service.NewCatalogService(newTestLogger(), repo, cache)

		got, err := svc.ListProducts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, variants, got)
	})

	t.Run("cache hit skips repo", func(t *testing.T) {
		repo := mocks.NewMockCatalogRepo(t)
		cache := mocks.NewMockCache(t)

		raw, err := json.Marshal(variants)
		require.NoError(t, err)
		cache.EXPECT().Get("catalog:variants").Return(raw, true)

		svc := service.NewCatalogService(newTestLogger(), repo, cache)

		got, err := svc.ListProducts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, variants, got)
	})

	t.Run("corrupt cached value falls through to repo", func(t *testing.T) {
		repo := mocks.NewMockCatalogRepo(t)
		cache := mocks.NewMockCache(t)

		cache.EXPECT().Get("catalog:variants").Return([]byte("{not json"), true)
		repo.EXPECT().ListVariants(mock.Anything).Return(variants, nil)
		cache.EXPECT().Set("catalog:variants", mock.Anything)

		svc := service.NewCatalogService(newTestLogger(), repo, cache)

		got, err := svc.ListProducts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, variants, got)
	})
}

func TestCatalogService_ListShops(t *testing.T) {
	shops := []entities.Shop{{ID: 5, Name: "Салон на Ленина", City: "Минск"}}

	repo := mocks.NewMockCatalogRepo(t)
	cache := mocks.NewMockCache(t)

	cache.EXPECT().Get("catalog:shops").Return(nil, false)
	repo.EXPECT().ListShops(mock.Anything).Return(shops, nil)
	cache.EXPECT().Set("catalog:shops", mock.Anything)

	svc := service.NewCatalogService(newTestLogger(), repo, cache)

	got, err := svc.ListShops(context.Background())
	require.NoError(t, err)
	assert.Equal(t, shops, got)
}

func TestCatalogService_WarmUp(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	cache := mocks.NewMockCache(t)

	cache.EXPECT().Get(mock.Anything).Return(nil, false)
	cache.EXPECT().Set(mock.Anything, mock.Anything)
	repo.EXPECT().ListVariants(mock.Anything).Return(nil, nil)
	repo.EXPECT().ListShops(mock.Anything).Return(nil, nil)

	svc := service.NewCatalogService(newTestLogger(), repo, cache)

	require.NoError(t, svc.WarmUp(context.Background()))
}
