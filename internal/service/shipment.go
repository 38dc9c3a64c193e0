package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Ksaiko-Vlad/sofa-order-service/internal/entities"
	"github.com/Ksaiko-Vlad/sofa-order-service/pkg/trm"
)

type ShipmentRepo interface {
	GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error)
	ListReadyOrders(ctx context.Context) ([]entities.Order, error)

	// TakeOrder - условный UPDATE ready_to_ship -> in_transit
	TakeOrder(ctx context.Context, orderID int64) (bool, error)

	CreateShipment(ctx context.Context, shipment entities.Shipment) (entities.Shipment, error)
	LinkOrder(ctx context.Context, shipmentID, orderID int64) error
	GetOpenShipment(ctx context.Context, driverID int64) (entities.Shipment, error)
	GetShipmentForUpdate(ctx context.Context, shipmentID int64) (entities.Shipment, error)
	ListDriverShipments(ctx context.Context, driverID int64) ([]entities.Shipment, error)
	FinishShipment(ctx context.Context, shipmentID int64, status entities.ShipmentStatus, finishedAt time.Time) error
	UpdateOrdersStatusByShipment(ctx context.Context, shipmentID int64, status entities.OrderStatus) error
}

type shipmentService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      ShipmentRepo
	events    EventPublisher

	// mergeOpen: добавлять заказ в открытый рейс водителя вместо нового рейса
	// на каждый приём
	mergeOpen bool
}

func NewShipmentService(logger *slog.Logger, txManager trm.Manager, repo ShipmentRepo, events EventPublisher, mergeOpen bool) *shipmentService {
	return &shipmentService{
		logger:    logger.With(slog.String("service", "shipment")),
		txManager: txManager,
		repo:      repo,
		events:    events,
		mergeOpen: mergeOpen,
	}
}

func (s *shipmentService) ListReadyOrders(ctx context.Context, actor entities.Actor) ([]entities.Order, error) {
	if !entities.Allow(actor.Role, entities.ActionListReadyOrders) {
		return nil, entities.ErrUnauthorized
	}
	return s.repo.ListReadyOrders(ctx)
}

func (s *shipmentService) ListActiveShipments(ctx context.Context, actor entities.Actor) ([]entities.Shipment, error) {
	if !entities.Allow(actor.Role, entities.ActionListShipments) {
		return nil, entities.ErrUnauthorized
	}
	return s.repo.ListDriverShipments(ctx, actor.UserID)
}

// TakeOrder принимает готовый заказ в доставку: переводит его в in_transit и
// привязывает к рейсу водителя. Из двух конкурирующих водителей заказ достаётся
// одному, второй получает ErrClaimConflict.
func (s *shipmentService) TakeOrder(ctx context.Context, actor entities.Actor, orderID int64, routeHint, comment string) (entities.Shipment, error) {
	if !entities.Allow(actor.Role, entities.ActionTakeOrder) {
		return entities.Shipment{}, entities.ErrUnauthorized
	}

	var shipment entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		taken, err := s.repo.TakeOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if !taken {
			return s.diagnoseTakeFailure(ctx, orderID)
		}

		shipment, err = s.shipmentFor(ctx, actor.UserID, routeHint, comment)
		if err != nil {
			return err
		}

		if err := s.repo.LinkOrder(ctx, shipment.ID, orderID); err != nil {
			return err
		}

		shipment, err = s.repo.GetShipmentForUpdate(ctx, shipment.ID)
		return err
	})
	if err != nil {
		return entities.Shipment{}, err
	}

	s.publishStatusChanged(ctx, entities.OrderStatusEvent{
		OrderID: orderID,
		From:    entities.OrderReadyToShip,
		To:      entities.OrderInTransit,
		ActorID: actor.UserID,
	})
	return shipment, nil
}

// UpdateShipment завершает рейс. deliver помечает рейс и все его заказы
// доставленными; cancel возвращает заказы в ready_to_ship, чтобы их можно было
// принять заново.
func (s *shipmentService) UpdateShipment(ctx context.Context, actor entities.Actor, shipmentID int64, action entities.ShipmentAction) (entities.Shipment, error) {
	if !entities.Allow(actor.Role, entities.ActionUpdateShipment) {
		return entities.Shipment{}, entities.ErrUnauthorized
	}

	var shipmentStatus entities.ShipmentStatus
	var orderStatus entities.OrderStatus
	switch action {
	case entities.ShipmentDeliver:
		shipmentStatus = entities.ShipmentDelivered
		orderStatus = entities.OrderDelivered
	case entities.ShipmentCancel:
		shipmentStatus = entities.ShipmentCancelled
		orderStatus = entities.OrderReadyToShip
	default:
		return entities.Shipment{}, entities.ErrInvalidAction
	}

	var shipment entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		shipment, err = s.repo.GetShipmentForUpdate(ctx, shipmentID)
		if err != nil {
			return err
		}

		if shipment.DriverID != actor.UserID && actor.Role != entities.RoleAdmin {
			return entities.ErrUnauthorized
		}
		if shipment.Status != entities.ShipmentInTransit {
			return entities.ErrInvalidTransition
		}

		finishedAt := time.Now().UTC()
		if err := s.repo.FinishShipment(ctx, shipmentID, shipmentStatus, finishedAt); err != nil {
			return err
		}
		if err := s.repo.UpdateOrdersStatusByShipment(ctx, shipmentID, orderStatus); err != nil {
			return err
		}

		shipment.Status = shipmentStatus
		shipment.FinishedAt = &finishedAt
		for i := range shipment.Orders {
			shipment.Orders[i].Order.Status = orderStatus
		}
		return nil
	})
	if err != nil {
		return entities.Shipment{}, err
	}

	for _, link := range shipment.Orders {
		s.publishStatusChanged(ctx, entities.OrderStatusEvent{
			OrderID: link.OrderID,
			From:    entities.OrderInTransit,
			To:      orderStatus,
			ActorID: actor.UserID,
		})
	}
	return shipment, nil
}

// shipmentFor возвращает рейс, к которому привязывать заказ: в режиме mergeOpen -
// открытый рейс водителя, иначе всегда новый.
func (s *shipmentService) shipmentFor(ctx context.Context, driverID int64, routeHint, comment string) (entities.Shipment, error) {
	if s.mergeOpen {
		shipment, err := s.repo.GetOpenShipment(ctx, driverID)
		if err == nil {
			return shipment, nil
		}
		if !errors.Is(err, entities.ErrShipmentNotFound) {
			return entities.Shipment{}, err
		}
	}

	now := time.Now().UTC()
	return s.repo.CreateShipment(ctx, entities.Shipment{
		DriverID:  driverID,
		PlannedAt: now,
		Status:    entities.ShipmentInTransit,
		RouteHint: routeHint,
		Comment:   comment,
		StartedAt: now,
	})
}

func (s *shipmentService) diagnoseTakeFailure(ctx context.Context, orderID int64) error {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if errors.Is(err, entities.ErrOrderNotFound) {
		return entities.ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	// Заказ уже ушёл другому водителю
	if order.Status == entities.OrderInTransit {
		return entities.ErrClaimConflict
	}
	if !entities.CanTransition(order.Status, entities.OrderInTransit) {
		return entities.ErrInvalidTransition
	}
	return entities.ErrClaimConflict
}

func (s *shipmentService) publishStatusChanged(ctx context.Context, event entities.OrderStatusEvent) {
	if err := s.events.PublishStatusChanged(ctx, event); err != nil {
		s.logger.Error("failed to publish status event",
			slog.Int64("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}
