package entities_test

import (
	"testing"

	"github.com/Ksaiko-Vlad/sofa-order-service/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestCheckTransition(t *testing.T) {
	testCases := []struct {
		name    string
		role    entities.Role
		from    entities.OrderStatus
		to      entities.OrderStatus
		wantErr error
	}{
		{
			name: "worker claims created order",
			role: entities.RoleFactoryWorker,
			from: entities.OrderCreated,
			to:   entities.OrderInProduction,
		},
		{
			name: "worker marks order ready",
			role: entities.RoleFactoryWorker,
			from: entities.OrderInProduction,
			to:   entities.OrderReadyToShip,
		},
		{
			name: "driver takes ready order",
			role: entities.RoleDriver,
			from: entities.OrderReadyToShip,
			to:   entities.OrderInTransit,
		},
		{
			name: "driver delivers",
			role: entities.RoleDriver,
			from: entities.OrderInTransit,
			to:   entities.OrderDelivered,
		},
		{
			name: "driver cancels",
			role: entities.RoleDriver,
			from: entities.OrderInTransit,
			to:   entities.OrderCancelled,
		},
		{
			name: "admin may perform any transition",
			role: entities.RoleAdmin,
			from: entities.OrderCreated,
			to:   entities.OrderInProduction,
		},
		{
			name:    "created directly to delivered is impossible",
			role:    entities.RoleAdmin,
			from:    entities.OrderCreated,
			to:      entities.OrderDelivered,
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:    "delivered is terminal",
			role:    entities.RoleAdmin,
			from:    entities.OrderDelivered,
			to:      entities.OrderInTransit,
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:    "driver cannot claim",
			role:    entities.RoleDriver,
			from:    entities.OrderCreated,
			to:      entities.OrderInProduction,
			wantErr: entities.ErrUnauthorized,
		},
		{
			name:    "worker cannot deliver",
			role:    entities.RoleFactoryWorker,
			from:    entities.OrderInTransit,
			to:      entities.OrderDelivered,
			wantErr: entities.ErrUnauthorized,
		},
		{
			name:    "manager cannot take order",
			role:    entities.RoleManager,
			from:    entities.OrderReadyToShip,
			to:      entities.OrderInTransit,
			wantErr: entities.ErrUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := entities.CheckTransition(tc.role, tc.from, tc.to)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCanTransition_NoPathSkipsStates(t *testing.T) {
	statuses := []entities.OrderStatus{
		entities.OrderCreated,
		entities.OrderInProduction,
		entities.OrderReadyToShip,
		entities.OrderInTransit,
		entities.OrderDelivered,
		entities.OrderCancelled,
	}

	allowed := map[[2]entities.OrderStatus]bool{
		{entities.OrderCreated, entities.OrderInProduction}:     true,
		{entities.OrderInProduction, entities.OrderReadyToShip}: true,
		{entities.OrderReadyToShip, entities.OrderInTransit}:    true,
		{entities.OrderInTransit, entities.OrderDelivered}:      true,
		{entities.OrderInTransit, entities.OrderCancelled}:      true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			got := entities.CanTransition(from, to)
			assert.Equal(t, allowed[[2]entities.OrderStatus{from, to}], got, "%s -> %s", from, to)
		}
	}
}

func TestItemsTotal(t *testing.T) {
	items := []entities.OrderItem{
		{UnitPrice: 1500, Quantity: 2},
		{UnitPrice: 1500, Quantity: 1},
	}
	assert.Equal(t, int64(4500), entities.ItemsTotal(items))
	assert.Equal(t, int64(0), entities.ItemsTotal(nil))
}

func TestOrder_ValidateDeliveryTarget(t *testing.T) {
	shop := &entities.Shop{ID: 1}
	addr := &entities.Address{City: "Минск"}

	testCases := []struct {
		name    string
		order   entities.Order
		wantErr bool
	}{
		{name: "pickup with shop", order: entities.Order{DeliveryType: entities.DeliveryPickup, Shop: shop}},
		{name: "home delivery with address", order: entities.Order{DeliveryType: entities.DeliveryHome, Address: addr}},
		{name: "pickup without shop", order: entities.Order{DeliveryType: entities.DeliveryPickup}, wantErr: true},
		{name: "pickup with address", order: entities.Order{DeliveryType: entities.DeliveryPickup, Shop: shop, Address: addr}, wantErr: true},
		{name: "home delivery without address", order: entities.Order{DeliveryType: entities.DeliveryHome}, wantErr: true},
		{name: "unknown delivery type", order: entities.Order{DeliveryType: "teleport", Address: addr}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.order.ValidateDeliveryTarget()
			if tc.wantErr {
				assert.ErrorIs(t, err, entities.ErrInvalidOrder)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAllow(t *testing.T) {
	assert.True(t, entities.Allow(entities.RoleFactoryWorker, entities.ActionClaimOrder))
	assert.True(t, entities.Allow(entities.RoleDriver, entities.ActionTakeOrder))
	assert.True(t, entities.Allow(entities.RoleManager, entities.ActionCreateOfflineOrder))
	assert.True(t, entities.Allow(entities.RoleAdmin, entities.ActionClaimOrder))
	assert.True(t, entities.Allow(entities.RoleAdmin, entities.ActionUpdateShipment))

	assert.False(t, entities.Allow(entities.RoleDriver, entities.ActionClaimOrder))
	assert.False(t, entities.Allow(entities.RoleCustomer, entities.ActionListAllOrders))
	assert.False(t, entities.Allow(entities.RoleFactoryWorker, entities.ActionUpdateShipment))
	assert.False(t, entities.Allow(entities.RoleManager, entities.ActionMarkOrderReady))
}
