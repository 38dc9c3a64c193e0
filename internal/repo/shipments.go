package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Ksaiko-Vlad/sofa-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var shipmentColumns = []string{
	"shipment_id", "driver_id", "planned_at", "status",
	"route_hint", "comment", "started_at", "finished_at",
}

func (r *postgresRepo) CreateShipment(ctx context.Context, s entities.Shipment) (entities.Shipment, error) {
	query, args := r.qb.Insert("shipments").
		Columns("driver_id", "planned_at", "status", "route_hint", "comment", "started_at").
		Values(
			s.DriverID, s.PlannedAt, s.Status.String(),
			nullString(s.RouteHint), nullString(s.Comment), s.StartedAt,
		).
		Suffix("RETURNING shipment_id").
		MustSql()

	var shipmentID int64
	if err := r.getContext(ctx, &shipmentID, query, args...); err != nil {
		return entities.Shipment{}, fmt.Errorf("failed to save shipment: %w", err)
	}

	s.ID = shipmentID
	return s, nil
}

func (r *postgresRepo) LinkOrder(ctx context.Context, shipmentID, orderID int64) error {
	query, args := r.qb.Insert("shipment_orders").
		Columns("shipment_id", "order_id").
		Values(shipmentID, orderID).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to link order to shipment: %w", err)
	}
	return nil
}

// GetOpenShipment возвращает открытый (in_transit) рейс водителя, если он есть.
// Строка блокируется: два конкурентных приёма заказа одним водителем в режиме
// merge сериализуются, заказы не расползаются по параллельным рейсам.
func (r *postgresRepo) GetOpenShipment(ctx context.Context, driverID int64) (entities.Shipment, error) {
	query, args := r.qb.Select(shipmentColumns...).
		From("shipments").
		Where(sq.And{
			sq.Eq{"driver_id": driverID},
			sq.Eq{"status": entities.ShipmentInTransit.String()},
		}).
		OrderBy("started_at DESC").
		Limit(1).
		Suffix("FOR UPDATE").
		MustSql()

	var shipment Shipment
	err := r.getContext(ctx, &shipment, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Shipment{}, entities.ErrShipmentNotFound
	}
	if err != nil {
		return entities.Shipment{}, fmt.Errorf("failed to get open shipment: %w", err)
	}

	return ShipmentToEntity(shipment), nil
}

// GetShipmentForUpdate читает рейс с блокировкой строки: конкурентные deliver/cancel
// одного рейса сериализуются на ней.
func (r *postgresRepo) GetShipmentForUpdate(ctx context.Context, shipmentID int64) (entities.Shipment, error) {
	query, args := r.qb.Select(shipmentColumns...).
		From("shipments").
		Where(sq.Eq{"shipment_id": shipmentID}).
		Suffix("FOR UPDATE").
		MustSql()

	var shipment Shipment
	err := r.getContext(ctx, &shipment, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Shipment{}, entities.ErrShipmentNotFound
	}
	if err != nil {
		return entities.Shipment{}, fmt.Errorf("failed to get shipment: %w", err)
	}

	result, err := r.loadShipmentOrders(ctx, []entities.Shipment{ShipmentToEntity(shipment)})
	if err != nil {
		return entities.Shipment{}, err
	}
	return result[0], nil
}

func (r *postgresRepo) ListDriverShipments(ctx context.Context, driverID int64) ([]entities.Shipment, error) {
	query, args := r.qb.Select(shipmentColumns...).
		From("shipments").
		Where(sq.Eq{"driver_id": driverID}).
		OrderBy("started_at DESC").
		MustSql()

	var shipments []Shipment
	if err := r.selectContext(ctx, &shipments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select shipments: %w", err)
	}
	if len(shipments) == 0 {
		return []entities.Shipment{}, nil
	}

	result := make([]entities.Shipment, 0, len(shipments))
	for _, s := range shipments {
		result = append(result, ShipmentToEntity(s))
	}
	return r.loadShipmentOrders(ctx, result)
}

func (r *postgresRepo) FinishShipment(ctx context.Context, shipmentID int64, status entities.ShipmentStatus, finishedAt time.Time) error {
	query, args := r.qb.Update("shipments").
		Set("status", status.String()).
		Set("finished_at", finishedAt).
		Where(sq.Eq{"shipment_id": shipmentID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to finish shipment: %w", err)
	}
	return nil
}

func (r *postgresRepo) loadShipmentOrders(ctx context.Context, shipments []entities.Shipment) ([]entities.Shipment, error) {
	ids := make([]int64, len(shipments))
	for i, s := range shipments {
		ids[i] = s.ID
	}

	query, args := r.qb.Select("link_id", "shipment_id", "order_id").
		From("shipment_orders").
		Where(sq.Eq{"shipment_id": ids}).
		OrderBy("link_id").
		MustSql()

	var links []ShipmentOrder
	if err := r.selectContext(ctx, &links, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select shipment orders: %w", err)
	}
	if len(links) == 0 {
		return shipments, nil
	}

	orderIDs := make([]int64, len(links))
	for i, l := range links {
		orderIDs[i] = l.OrderID
	}

	orders, err := r.listOrders(ctx, sq.Eq{"order_id": orderIDs})
	if err != nil {
		return nil, err
	}
	orderMap := make(map[int64]entities.Order, len(orders))
	for _, o := range orders {
		orderMap[o.ID] = o
	}

	linkMap := make(map[int64][]entities.ShipmentOrder, len(ids))
	for _, l := range links {
		linkMap[l.ShipmentID] = append(linkMap[l.ShipmentID], entities.ShipmentOrder{
			ID:         l.LinkID,
			ShipmentID: l.ShipmentID,
			OrderID:    l.OrderID,
			Order:      orderMap[l.OrderID],
		})
	}

	for i := range shipments {
		shipments[i].Orders = linkMap[shipments[i].ID]
	}
	return shipments, nil
}
