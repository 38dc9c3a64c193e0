package repo

import (
	"context"
	"fmt"

	"github.com/Ksaiko-Vlad/sofa-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var variantColumns = []string{
	"pv.variant_id", "pv.product_id", "p.name AS product_name",
	"pv.material_id", "m.name AS material_name",
	"pv.sku", "pv.price", "pv.active",
}

func (r *postgresRepo) ListVariants(ctx context.Context) ([]entities.ProductVariant, error) {
	return r.listVariants(ctx, sq.Eq{"pv.active": true})
}

func (r *postgresRepo) GetVariantsByIDs(ctx context.Context, ids []int64) ([]entities.ProductVariant, error) {
	if len(ids) == 0 {
		return []entities.ProductVariant{}, nil
	}
	return r.listVariants(ctx, sq.Eq{"pv.variant_id": ids})
}

func (r *postgresRepo) ListShops(ctx context.Context) ([]entities.Shop, error) {
	query, args := r.qb.Select("shop_id", "name", "city", "street", "phone", "email").
		From("shops").
		OrderBy("shop_id").
		MustSql()

	var shops []Shop
	if err := r.selectContext(ctx, &shops, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select shops: %w", err)
	}

	result := make([]entities.Shop, 0, len(shops))
	for _, s := range shops {
		result = append(result, ShopToEntity(s))
	}
	return result, nil
}

func (r *postgresRepo) listVariants(ctx context.Context, where any) ([]entities.ProductVariant, error) {
	query, args := r.qb.Select(variantColumns...).
		From("product_variants pv").
		Join("products p ON p.product_id = pv.product_id").
		Join("materials m ON m.material_id = pv.material_id").
		Where(where).
		OrderBy("pv.variant_id").
		MustSql()

	var variants []ProductVariant
	if err := r.selectContext(ctx, &variants, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select product variants: %w", err)
	}

	result := make([]entities.ProductVariant, 0, len(variants))
	for _, v := range variants {
		result = append(result, VariantToEntity(v))
	}
	return result, nil
}
