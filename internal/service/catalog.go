package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/Ksaiko-Vlad/sofa-order-service/internal/entities"
	"github.com/Ksaiko-Vlad/sofa-order-service/pkg/utils"
)

type CatalogRepo interface {
	ListVariants(ctx context.Context) ([]entities.ProductVariant, error)
	ListShops(ctx context.Context) ([]entities.Shop, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

const (
	cacheKeyVariants = "catalog:variants"
	cacheKeyShops    = "catalog:shops"
)

type catalogService struct {
	logger *slog.Logger
	repo   CatalogRepo
	cache  Cache
}

func NewCatalogService(logger *slog.Logger, repo CatalogRepo, cache Cache) *catalogService {
	return &catalogService{
		logger: logger.With(slog.String("service", "catalog")),
		repo:   repo,
		cache:  cache,
	}
}

func (s *catalogService) ListProducts(ctx context.Context) ([]entities.ProductVariant, error) {
	return cached(ctx, s, cacheKeyVariants, s.repo.ListVariants)
}

func (s *catalogService) ListShops(ctx context.Context) ([]entities.Shop, error) {
	return cached(ctx, s, cacheKeyShops, s.repo.ListShops)
}

// WarmUp прогревает кэш каталога при старте, чтобы первые запросы
// не ходили в базу.
func (s *catalogService) WarmUp(ctx context.Context) error {
	return utils.Retry(utils.RetryConfig{
		MaxAttempts:  5,
		InitialDelay: time.Millisecond * 200,
		MaxDelay:     time.Second * 2,
	}, func() error {
		if _, err := s.ListProducts(ctx); err != nil {
			return err
		}
		if _, err := s.ListShops(ctx); err != nil {
			return err
		}
		s.logger.Info("catalog cache warmed up")
		return nil
	}, context.Canceled)
}

func cached[T any](ctx context.Context, s *catalogService, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if raw, ok := s.cache.Get(key); ok {
		var values []T
		if err := json.Unmarshal(raw, &values); err == nil {
			return values, nil
		}
		s.logger.Warn("failed to decode cached value", slog.String("key", key))
	}

	values, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(values); err == nil {
		s.cache.Set(key, raw)
	}
	return values, nil
}
