package entities

import "time"

type ShipmentStatus string

const (
	ShipmentInTransit ShipmentStatus = "in_transit"
	ShipmentDelivered ShipmentStatus = "delivered"
	ShipmentCancelled ShipmentStatus = "cancelled"
)

func (s ShipmentStatus) String() string {
	return string(s)
}

type ShipmentAction string

const (
	ShipmentDeliver ShipmentAction = "deliver"
	ShipmentCancel  ShipmentAction = "cancel"
)

type Shipment struct {
	ID         int64
	DriverID   int64
	PlannedAt  time.Time
	Status     ShipmentStatus
	RouteHint  string
	Comment    string
	StartedAt  time.Time
	FinishedAt *time.Time

	Orders []ShipmentOrder
}

// ShipmentOrder - связь рейса с заказом. Заказ может состоять максимум
// в одном активном (не отменённом) рейсе.
type ShipmentOrder struct {
	ID         int64
	ShipmentID int64
	OrderID    int64
	Order      Order
}
