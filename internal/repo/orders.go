package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Ksaiko-Vlad/sofa-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var orderColumns = []string{
	"order_id", "created_at", "status", "delivery_type",
	"customer_name", "customer_phone", "customer_email", "note",
	"total_amount", "factory_worker_id", "customer_id", "shop_id", "address_id",
}

var itemColumns = []string{
	"oi.item_id", "oi.order_id", "oi.variant_id", "oi.quantity",
	"oi.is_from_shop_stock", "oi.unit_price",
	"pv.sku", "pv.price AS variant_price",
	"p.product_id", "p.name AS product_name",
	"m.material_id", "m.name AS material_name",
}

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	var addressID sql.NullInt64
	if o.Address != nil {
		query, args := r.qb.Insert("addresses").
			Columns("city", "street", "house_number", "apartment", "entrance", "floor", "comment").
			Values(
				o.Address.City, o.Address.Street,
				nullString(o.Address.HouseNumber), nullString(o.Address.Apartment),
				nullString(o.Address.Entrance), nullString(o.Address.Floor),
				nullString(o.Address.Comment),
			).
			Suffix("RETURNING address_id").
			MustSql()

		if err := r.getContext(ctx, &addressID.Int64, query, args...); err != nil {
			return entities.Order{}, fmt.Errorf("failed to save address: %w", err)
		}
		addressID.Valid = true
	}

	var shopID sql.NullInt64
	if o.Shop != nil {
		shopID = sql.NullInt64{Int64: o.Shop.ID, Valid: true}
	}

	query, args := r.qb.Insert("orders").
		Columns(
			"status", "delivery_type", "customer_name", "customer_phone",
			"customer_email", "note", "total_amount",
			"customer_id", "shop_id", "address_id",
		).
		Values(
			o.Status.String(), o.DeliveryType.String(), o.CustomerName, o.CustomerPhone,
			nullString(o.CustomerEmail), nullString(o.Note), o.TotalAmount,
			nullInt64(o.CustomerID), shopID, addressID,
		).
		Suffix("RETURNING order_id").
		MustSql()

	var orderID int64
	if err := r.getContext(ctx, &orderID, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to save order: %w", err)
	}

	if len(o.Items) > 0 {
		q := r.qb.Insert("order_items").
			Columns("order_id", "variant_id", "quantity", "is_from_shop_stock", "unit_price")
		for _, it := range o.Items {
			q = q.Values(orderID, it.ProductVariantID, it.Quantity, it.IsFromShopStock, it.UnitPrice)
		}
		query, args := q.MustSql()
		if _, err := r.execContext(ctx, query, args...); err != nil {
			return entities.Order{}, fmt.Errorf("failed to save order items: %w", err)
		}
	}

	return r.GetOrderByID(ctx, orderID)
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	result, err := r.loadOrderDetails(ctx, []Order{order})
	if err != nil {
		return entities.Order{}, err
	}
	return result[0], nil
}

func (r *postgresRepo) ListAvailableOrders(ctx context.Context) ([]entities.Order, error) {
	return r.listOrders(ctx, sq.And{
		sq.Eq{"status": entities.OrderCreated.String()},
		sq.Eq{"factory_worker_id": nil},
	})
}

func (r *postgresRepo) ListWorkerOrders(ctx context.Context, workerID int64) ([]entities.Order, error) {
	return r.listOrders(ctx, sq.And{
		sq.Eq{"status": entities.OrderInProduction.String()},
		sq.Eq{"factory_worker_id": workerID},
	})
}

func (r *postgresRepo) ListReadyOrders(ctx context.Context) ([]entities.Order, error) {
	return r.listOrders(ctx, sq.Eq{"status": entities.OrderReadyToShip.String()})
}

func (r *postgresRepo) ListAllOrders(ctx context.Context) ([]entities.Order, error) {
	return r.listOrders(ctx, nil)
}

// ClaimOrder атомарно назначает заказ работнику: условный UPDATE - это и есть
// compare-and-set, из двух конкурентных claim выигрывает ровно один.
func (r *postgresRepo) ClaimOrder(ctx context.Context, orderID, workerID int64) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", entities.OrderInProduction.String()).
		Set("factory_worker_id", workerID).
		Where(sq.And{
			sq.Eq{"order_id": orderID},
			sq.Eq{"status": entities.OrderCreated.String()},
			sq.Eq{"factory_worker_id": nil},
		}).
		MustSql()

	return r.execUpdated(ctx, query, args...)
}

func (r *postgresRepo) MarkOrderReady(ctx context.Context, orderID, workerID int64) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", entities.OrderReadyToShip.String()).
		Where(sq.And{
			sq.Eq{"order_id": orderID},
			sq.Eq{"status": entities.OrderInProduction.String()},
			sq.Eq{"factory_worker_id": workerID},
		}).
		MustSql()

	return r.execUpdated(ctx, query, args...)
}

// TakeOrder переводит ready_to_ship -> in_transit тем же CAS-приёмом, что и ClaimOrder.
func (r *postgresRepo) TakeOrder(ctx context.Context, orderID int64) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", entities.OrderInTransit.String()).
		Where(sq.And{
			sq.Eq{"order_id": orderID},
			sq.Eq{"status": entities.OrderReadyToShip.String()},
		}).
		MustSql()

	return r.execUpdated(ctx, query, args...)
}

func (r *postgresRepo) UpdateOrdersStatusByShipment(ctx context.Context, shipmentID int64, status entities.OrderStatus) error {
	query, args := r.qb.Update("orders").
		Set("status", status.String()).
		Where(sq.Expr(
			"order_id IN (SELECT order_id FROM shipment_orders WHERE shipment_id = ?)", shipmentID,
		)).
		Where(sq.Eq{"status": entities.OrderInTransit.String()}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update shipment orders: %w", err)
	}
	return nil
}

func (r *postgresRepo) listOrders(ctx context.Context, where any) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC")
	if where != nil {
		q = q.Where(where)
	}
	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	return r.loadOrderDetails(ctx, orders)
}

// loadOrderDetails дозагружает позиции, магазины и адреса одним батчем на коллекцию.
func (r *postgresRepo) loadOrderDetails(ctx context.Context, orders []Order) ([]entities.Order, error) {
	ids := make([]int64, len(orders))
	shopIDs := make([]int64, 0)
	addressIDs := make([]int64, 0)
	for i, o := range orders {
		ids[i] = o.OrderID
		if o.ShopID.Valid {
			shopIDs = append(shopIDs, o.ShopID.Int64)
		}
		if o.AddressID.Valid {
			addressIDs = append(addressIDs, o.AddressID.Int64)
		}
	}

	query, args := r.qb.Select(itemColumns...).
		From("order_items oi").
		Join("product_variants pv ON pv.variant_id = oi.variant_id").
		Join("products p ON p.product_id = pv.product_id").
		Join("materials m ON m.material_id = pv.material_id").
		Where(sq.Eq{"oi.order_id": ids}).
		OrderBy("oi.item_id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsMap := make(map[int64][]OrderItem, len(ids))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}

	shopMap := make(map[int64]Shop, len(shopIDs))
	if len(shopIDs) > 0 {
		query, args := r.qb.Select("shop_id", "name", "city", "street", "phone", "email").
			From("shops").
			Where(sq.Eq{"shop_id": shopIDs}).
			MustSql()

		var shops []Shop
		if err := r.selectContext(ctx, &shops, query, args...); err != nil {
			return nil, fmt.Errorf("failed to select shops: %w", err)
		}
		for _, s := range shops {
			shopMap[s.ShopID] = s
		}
	}

	addressMap := make(map[int64]Address, len(addressIDs))
	if len(addressIDs) > 0 {
		query, args := r.qb.Select("address_id", "city", "street", "house_number", "apartment", "entrance", "floor", "comment").
			From("addresses").
			Where(sq.Eq{"address_id": addressIDs}).
			MustSql()

		var addresses []Address
		if err := r.selectContext(ctx, &addresses, query, args...); err != nil {
			return nil, fmt.Errorf("failed to select addresses: %w", err)
		}
		for _, a := range addresses {
			addressMap[a.AddressID] = a
		}
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		var shop *Shop
		if o.ShopID.Valid {
			if s, ok := shopMap[o.ShopID.Int64]; ok {
				shop = &s
			}
		}
		var addr *Address
		if o.AddressID.Valid {
			if a, ok := addressMap[o.AddressID.Int64]; ok {
				addr = &a
			}
		}
		result = append(result, OrderToEntity(o, itemsMap[o.OrderID], shop, addr))
	}

	return result, nil
}

func (r *postgresRepo) execUpdated(ctx context.Context, query string, args ...any) (bool, error) {
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return affected > 0, nil
}
