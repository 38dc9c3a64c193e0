package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Ksaiko-Vlad/sofa-order-service/internal/entities"
	"github.com/Ksaiko-Vlad/sofa-order-service/pkg/trm"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error)

	ListAvailableOrders(ctx context.Context) ([]entities.Order, error)
	ListWorkerOrders(ctx context.Context, workerID int64) ([]entities.Order, error)
	ListAllOrders(ctx context.Context) ([]entities.Order, error)

	// Условные UPDATE, возвращают false при проигрыше гонки или неподходящем статусе
	ClaimOrder(ctx context.Context, orderID, workerID int64) (bool, error)
	MarkOrderReady(ctx context.Context, orderID, workerID int64) (bool, error)
}

type VariantGetter interface {
	GetVariantsByIDs(ctx context.Context, ids []int64) ([]entities.ProductVariant, error)
}

type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event entities.OrderStatusEvent) error
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	variants  VariantGetter
	events    EventPublisher
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, variants VariantGetter, events EventPublisher) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		variants:  variants,
		events:    events,
	}
}

// ListFactoryOrders возвращает заказы, доступные для взятия, и заказы, уже
// взятые этим работником.
func (s *orderService) ListFactoryOrders(ctx context.Context, actor entities.Actor) ([]entities.Order, []entities.Order, error) {
	if !entities.Allow(actor.Role, entities.ActionListFactoryOrders) {
		return nil, nil, entities.ErrUnauthorized
	}

	available, err := s.repo.ListAvailableOrders(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list available orders: %w", err)
	}

	mine, err := s.repo.ListWorkerOrders(ctx, actor.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list worker orders: %w", err)
	}

	return available, mine, nil
}

// ClaimOrder выполняет переход created -> in_production. Первый успевший
// работник получает заказ, проигравший гонку - ErrClaimConflict.
func (s *orderService) ClaimOrder(ctx context.Context, actor entities.Actor, orderID int64) (entities.Order, error) {
	if !entities.Allow(actor.Role, entities.ActionClaimOrder) {
		return entities.Order{}, entities.ErrUnauthorized
	}

	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		claimed, err := s.repo.ClaimOrder(ctx, orderID, actor.UserID)
		if err != nil {
			return err
		}
		if !claimed {
			return s.diagnoseClaimFailure(ctx, orderID)
		}

		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.publishStatusChanged(ctx, entities.OrderStatusEvent{
		OrderID: orderID,
		From:    entities.OrderCreated,
		To:      entities.OrderInProduction,
		ActorID: actor.UserID,
	})
	return order, nil
}

// MarkReady выполняет переход in_production -> ready_to_ship. Разрешён только
// работнику, за которым закреплён заказ; admin действует от имени этого работника.
func (s *orderService) MarkReady(ctx context.Context, actor entities.Actor, orderID int64) (entities.Order, error) {
	if !entities.Allow(actor.Role, entities.ActionMarkOrderReady) {
		return entities.Order{}, entities.ErrUnauthorized
	}

	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		if err != nil {
			return err
		}

		if err := entities.CheckTransition(actor.Role, order.Status, entities.OrderReadyToShip); err != nil {
			return err
		}
		if order.FactoryWorkerID == nil {
			return entities.ErrInvalidTransition
		}

		workerID := *order.FactoryWorkerID
		if actor.Role != entities.RoleAdmin && workerID != actor.UserID {
			return entities.ErrUnauthorized
		}

		updated, err := s.repo.MarkOrderReady(ctx, orderID, workerID)
		if err != nil {
			return err
		}
		if !updated {
			// Статус успел поменяться между чтением и UPDATE
			return entities.ErrInvalidTransition
		}

		order.Status = entities.OrderReadyToShip
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.publishStatusChanged(ctx, entities.OrderStatusEvent{
		OrderID: orderID,
		From:    entities.OrderInProduction,
		To:      entities.OrderReadyToShip,
		ActorID: actor.UserID,
	})
	return order, nil
}

func (s *orderService) ListManagerOrders(ctx context.Context, actor entities.Actor) ([]entities.Order, error) {
	if !entities.Allow(actor.Role, entities.ActionListAllOrders) {
		return nil, entities.ErrUnauthorized
	}
	return s.repo.ListAllOrders(ctx)
}

type CustomerInput struct {
	Name       string
	SecondName string
	LastName   string
	Phone      string
	Email      string
}

type DeliveryInput struct {
	Type    entities.DeliveryType
	ShopID  *int64
	Address *entities.Address
}

type ItemInput struct {
	ProductVariantID int64
	Quantity         int
	IsFromShopStock  bool
}

type CreateOrderInput struct {
	Customer CustomerInput
	Delivery DeliveryInput
	Note     string
	Items    []ItemInput

	// CustomerID заполняется для заказов витрины
	CustomerID *int64
}

// CreateOfflineOrder создаёт офлайн-заказ от имени менеджера.
func (s *orderService) CreateOfflineOrder(ctx context.Context, actor entities.Actor, input CreateOrderInput) (entities.Order, error) {
	if !entities.Allow(actor.Role, entities.ActionCreateOfflineOrder) {
		return entities.Order{}, entities.ErrUnauthorized
	}
	return s.createOrder(ctx, input)
}

// CreateStorefrontOrder создаёт заказ из клиентского потока (Kafka),
// авторизация выполнена выше по течению.
func (s *orderService) CreateStorefrontOrder(ctx context.Context, input CreateOrderInput) (entities.Order, error) {
	return s.createOrder(ctx, input)
}

func (s *orderService) createOrder(ctx context.Context, input CreateOrderInput) (entities.Order, error) {
	if len(input.Items) == 0 {
		return entities.Order{}, entities.ErrInvalidOrder
	}
	if input.Customer.Name == "" || input.Customer.Phone == "" {
		return entities.Order{}, entities.ErrInvalidOrder
	}
	for _, it := range input.Items {
		if it.Quantity < 1 {
			return entities.Order{}, entities.ErrInvalidOrder
		}
	}

	ids := make([]int64, len(input.Items))
	for i, it := range input.Items {
		ids[i] = it.ProductVariantID
	}

	variants, err := s.variants.GetVariantsByIDs(ctx, ids)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get variants: %w", err)
	}
	variantMap := make(map[int64]entities.ProductVariant, len(variants))
	for _, v := range variants {
		variantMap[v.ID] = v
	}

	items := make([]entities.OrderItem, 0, len(input.Items))
	for _, it := range input.Items {
		v, ok := variantMap[it.ProductVariantID]
		if !ok || !v.Active {
			return entities.Order{}, entities.ErrVariantNotFound
		}
		items = append(items, entities.OrderItem{
			ProductVariantID: it.ProductVariantID,
			Quantity:         it.Quantity,
			IsFromShopStock:  it.IsFromShopStock,
			// Снимок цены: дальнейшие изменения каталога не трогают размещённый заказ
			UnitPrice: v.Price,
		})
	}

	order := entities.Order{
		Status:        entities.OrderCreated,
		DeliveryType:  input.Delivery.Type,
		CustomerName:  joinName(input.Customer),
		CustomerPhone: input.Customer.Phone,
		CustomerEmail: input.Customer.Email,
		Note:          input.Note,
		TotalAmount:   entities.ItemsTotal(items),
		CustomerID:    input.CustomerID,
		Items:         items,
	}

	switch input.Delivery.Type {
	case entities.DeliveryPickup:
		if input.Delivery.ShopID != nil {
			order.Shop = &entities.Shop{ID: *input.Delivery.ShopID}
		}
	case entities.DeliveryHome:
		order.Address = input.Delivery.Address
	}

	if err := order.ValidateDeliveryTarget(); err != nil {
		return entities.Order{}, err
	}

	var created entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repo.CreateOrder(ctx, order)
		return err
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Debug("order created", slog.Int64("order_id", created.ID))
	return created, nil
}

// diagnoseClaimFailure различает причины неудавшегося claim не выходя из транзакции.
func (s *orderService) diagnoseClaimFailure(ctx context.Context, orderID int64) error {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if errors.Is(err, entities.ErrOrderNotFound) {
		return entities.ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if order.FactoryWorkerID != nil {
		return entities.ErrClaimConflict
	}
	if !entities.CanTransition(order.Status, entities.OrderInProduction) {
		return entities.ErrInvalidTransition
	}
	// Статус позволял claim, но строка изменилась под нами
	return entities.ErrClaimConflict
}

func (s *orderService) publishStatusChanged(ctx context.Context, event entities.OrderStatusEvent) {
	if err := s.events.PublishStatusChanged(ctx, event); err != nil {
		s.logger.Error("failed to publish status event",
			slog.Int64("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}

func joinName(c CustomerInput) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.Name, c.SecondName, c.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
