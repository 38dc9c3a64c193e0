package entities

import "time"

type OrderStatus string

const (
	OrderCreated      OrderStatus = "created"
	OrderInProduction OrderStatus = "in_production"
	OrderReadyToShip  OrderStatus = "ready_to_ship"
	OrderInTransit    OrderStatus = "in_transit"
	OrderDelivered    OrderStatus = "delivered"
	OrderCancelled    OrderStatus = "cancelled"
)

func (s OrderStatus) String() string {
	return string(s)
}

type DeliveryType string

const (
	DeliveryPickup DeliveryType = "pickup"
	DeliveryHome   DeliveryType = "home_delivery"
)

func (t DeliveryType) String() string {
	return string(t)
}

type transition struct {
	from OrderStatus
	to   OrderStatus
}

// orderTransitions - таблица допустимых переходов и роль, которая их выполняет.
// Переходов вне таблицы не существует.
var orderTransitions = map[transition]Role{
	{OrderCreated, OrderInProduction}:     RoleFactoryWorker,
	{OrderInProduction, OrderReadyToShip}: RoleFactoryWorker,
	{OrderReadyToShip, OrderInTransit}:    RoleDriver,
	{OrderInTransit, OrderDelivered}:      RoleDriver,
	{OrderInTransit, OrderCancelled}:      RoleDriver,
}

func CanTransition(from, to OrderStatus) bool {
	_, ok := orderTransitions[transition{from, to}]
	return ok
}

// CheckTransition проверяет переход и право роли его выполнить.
// Возвращает ErrInvalidTransition для перехода вне таблицы и ErrUnauthorized,
// если переход существует, но роль не та (admin проходит любую проверку).
func CheckTransition(role Role, from, to OrderStatus) error {
	required, ok := orderTransitions[transition{from, to}]
	if !ok {
		return ErrInvalidTransition
	}
	if role != required && role != RoleAdmin {
		return ErrUnauthorized
	}
	return nil
}

type Order struct {
	ID            int64
	CreatedAt     time.Time
	Status        OrderStatus
	DeliveryType  DeliveryType
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Note          string

	// TotalAmount в копейках, фиксируется при создании заказа
	TotalAmount int64

	FactoryWorkerID *int64
	CustomerID      *int64

	// Ровно одно из Shop/Address заполнено, в соответствии с DeliveryType
	Shop    *Shop
	Address *Address

	Items []OrderItem
}

type OrderItem struct {
	ID               int64
	ProductVariantID int64
	Quantity         int
	IsFromShopStock  bool

	// UnitPrice в копейках, снимок цены варианта на момент создания заказа
	UnitPrice int64

	Variant *ProductVariant
}

// ItemsTotal возвращает сумму unit_price * quantity по позициям.
func ItemsTotal(items []OrderItem) int64 {
	var total int64
	for _, it := range items {
		total += it.UnitPrice * int64(it.Quantity)
	}
	return total
}

// ValidateDeliveryTarget проверяет инвариант: pickup требует магазин и запрещает
// адрес, home_delivery - наоборот.
func (o Order) ValidateDeliveryTarget() error {
	switch o.DeliveryType {
	case DeliveryPickup:
		if o.Shop == nil || o.Address != nil {
			return ErrInvalidOrder
		}
	case DeliveryHome:
		if o.Address == nil || o.Shop != nil {
			return ErrInvalidOrder
		}
	default:
		return ErrInvalidOrder
	}
	return nil
}

// OrderStatusEvent публикуется после каждого успешного перехода статуса.
type OrderStatusEvent struct {
	OrderID    int64       `json:"order_id"`
	From       OrderStatus `json:"from"`
	To         OrderStatus `json:"to"`
	ActorID    int64       `json:"actor_id"`
	OccurredAt time.Time   `json:"occurred_at"`
}
