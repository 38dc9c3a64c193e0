package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Ksaiko-Vlad/sofa-order-service/internal/entities"
	"github.com/Ksaiko-Vlad/sofa-order-service/internal/service"
	mocks "github.com/Ksaiko-Vlad/sofa-order-service/internal/service/mocks"
	txMocks "github.com/Ksaiko-Vlad/sofa-order-service/pkg/trm/mocks"
)

func TestShipmentService_TakeOrder(t *testing.T) {
	type MockBehavior func(repo *mocks.MockShipmentRepo, events *mocks.MockEventPublisher)

	driver := entities.Actor{UserID: 5, Role: entities.RoleDriver}

	loaded := entities.Shipment{
		ID:       20,
		DriverID: 5,
		Status:   entities.ShipmentInTransit,
		Orders: []entities.ShipmentOrder{
			{ID: 1, ShipmentID: 20, OrderID: 1, Order: entities.Order{ID: 1, Status: entities.OrderInTransit}},
		},
	}

	testCases := []struct {
		name         string
		actor        entities.Actor
		mergeOpen    bool
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:  "OK creates new shipment",
			actor: driver,
			mockBehavior: func(repo *mocks.MockShipmentRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().TakeOrder(mock.Anything, int64(1)).Return(true, nil)
				repo.EXPECT().CreateShipment(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, shipment entities.Shipment) (entities.Shipment, error) {
						assert.Equal(t, int64(5), shipment.DriverID)
						assert.Equal(t, entities.ShipmentInTransit, shipment.Status)
						assert.Equal(t, "маршрут А", shipment.RouteHint)
						shipment.ID = 20
						return shipment, nil
					})
				repo.EXPECT().LinkOrder(mock.Anything, int64(20), int64(1)).Return(nil)
				repo.EXPECT().GetShipmentForUpdate(mock.Anything, int64(20)).Return(loaded, nil)
				events.EXPECT().PublishStatusChanged(mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:      "mergeOpen reuses driver's open shipment",
			actor:     driver,
			mergeOpen: true,
			mockBehavior: func(repo *mocks.MockShipmentRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().TakeOrder(mock.Anything, int64(1)).Return(true, nil)
				repo.EXPECT().GetOpenShipment(mock.Anything, int64(5)).
					Return(entities.Shipment{ID: 20, DriverID: 5, Status: entities.ShipmentInTransit}, nil)
				repo.EXPECT().LinkOrder(mock.Anything, int64(20), int64(1)).Return(nil)
				repo.EXPECT().GetShipmentForUpdate(mock.Anything, int64(20)).Return(loaded, nil)
				events.EXPECT().PublishStatusChanged(mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:      "mergeOpen without open shipment creates new",
			actor:     driver,
			mergeOpen: true,
			mockBehavior: func(repo *mocks.MockShipmentRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().TakeOrder(mock.Anything, int64(1)).Return(true, nil)
				repo.EXPECT().GetOpenShipment(mock.Anything, int64(5)).
					Return(entities.Shipment{}, entities.ErrShipmentNotFound)
				repo.EXPECT().CreateShipment(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, shipment entities.Shipment) (entities.Shipment, error) {
						shipment.ID = 20
						return shipment, nil
					})
				repo.EXPECT().LinkOrder(mock.Anything, int64(20), int64(1)).Return(nil)
				repo.EXPECT().GetShipmentForUpdate(mock.Anything, int64(20)).Return(loaded, nil)
				events.EXPECT().PublishStatusChanged(mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:  "order already taken by another driver",
			actor: driver,
			mockBehavior: func(repo *mocks.MockShipmentRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().TakeOrder(mock.Anything, int64(1)).Return(false, nil)
				repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).
					Return(entities.Order{ID: 1, Status: entities.OrderInTransit}, nil)
			},
			wantErr: entities.ErrClaimConflict,
		},
		{
			name:  "order not ready to ship",
			actor: driver,
			mockBehavior: func(repo *mocks.MockShipmentRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().TakeOrder(mock.Anything, int64(1)).Return(false, nil)
				repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).
					Return(entities.Order{ID: 1, Status: entities.OrderInProduction}, nil)
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:  "row changed while still ready",
			actor: driver,
			mockBehavior: func(repo *mocks.MockShipmentRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().TakeOrder(mock.Anything, int64(1)).Return(false, nil)
				repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).
					Return(entities.Order{ID: 1, Status: entities.OrderReadyToShip}, nil)
			},
			wantErr: entities.ErrClaimConflict,
		},
		{
			name:  "order not found",
			actor: driver,
			mockBehavior: func(repo *mocks.MockShipmentRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().TakeOrder(mock.Anything, int64(1)).Return(false, nil)
				repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).
					Return(entities.Order{}, entities.ErrOrderNotFound)
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:         "factory worker is not allowed",
			actor:        entities.Actor{UserID: 5, Role: entities.RoleFactoryWorker},
			mockBehavior: func(repo *mocks.MockShipmentRepo, events *mocks.MockEventPublisher) {},
			wantErr:      entities.ErrUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockShipmentRepo(t)
			events := mocks.NewMockEventPublisher(t)
			tx := txMocks.NewMockManager(t)
			passthroughTx(tx)

			tc.mockBehavior(repo, events)

			svc := service.NewShipmentService(newTestLogger(), tx, repo, events, tc.mergeOpen)

			shipment, err := svc.TakeOrder(context.Background(), tc.actor, 1, "маршрут А", "")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(20), shipment.ID)
			require.Len(t, shipment.Orders, 1)
			assert.Equal(t, entities.OrderInTransit, shipment.Orders[0].Order.Status)
		})
	}
}

func TestShipmentService_UpdateShipment(t *testing.T) {
	type MockBehavior func(repo *mocks.MockShipmentRepo, events *mocks.MockEventPublisher)

	driver := entities.Actor{UserID: 5, Role: entities.RoleDriver}
	admin := entities.Actor{UserID: 100, Role: entities.RoleAdmin}

	inTransit := func() entities.Shipment {
		return entities.Shipment{
			ID:       20,
			DriverID: 5,
			Status:   entities.ShipmentInTransit,
			Orders: []entities.ShipmentOrder{
				{ID: 1, ShipmentID: 20, OrderID: 1, Order: entities.Order{ID: 1, Status: entities.OrderInTransit}},
				{ID: 2, ShipmentID: 20, OrderID: 2, Order: entities.Order{ID: 2, Status: entities.OrderInTransit}},
			},
		}
	}

	testCases := []struct {
		name         string
		actor        entities.Actor
		action       entities.ShipmentAction
		mockBehavior MockBehavior
		wantStatus   entities.ShipmentStatus
		wantOrders   entities.OrderStatus
		wantErr      error
	}{
		{
			name:   "deliver marks shipment and orders delivered",
			actor:  driver,
			action: entities.ShipmentDeliver,
			mockBehavior: func(repo *mocks.MockShipmentRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().GetShipmentForUpdate(mock.Anything, int64(20)).Return(inTransit(), nil)
				repo.EXPECT().FinishShipment(mock.Anything, int64(20), entities.ShipmentDelivered, mock.AnythingOfType("time.Time")).Return(nil)
				repo.EXPECT().UpdateOrdersStatusByShipment(mock.Anything, int64(20), entities.OrderDelivered).Return(nil)
				events.EXPECT().PublishStatusChanged(mock.Anything, mock.Anything).Return(nil).Times(2)
			},
			wantStatus: entities.ShipmentDelivered,
			wantOrders: entities.OrderDelivered,
		},
		{
			name:   "cancel returns orders to ready_to_ship",
			actor:  driver,
			action: entities.ShipmentCancel,
			mockBehavior: func(repo *mocks.MockShipmentRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().GetShipmentForUpdate(mock.Anything, int64(20)).Return(inTransit(), nil)
				repo.EXPECT().FinishShipment(mock.Anything, int64(20), entities.ShipmentCancelled, mock.AnythingOfType("time.Time")).Return(nil)
				repo.EXPECT().UpdateOrdersStatusByShipment(mock.Anything, int64(20), entities.OrderReadyToShip).Return(nil)
				events.EXPECT().PublishStatusChanged(mock.Anything, mock.Anything).Return(nil).Times(2)
			},
			wantStatus: entities.ShipmentCancelled,
			wantOrders: entities.OrderReadyToShip,
		},
		{
			name:   "admin may finish another driver's shipment",
			actor:  admin,
			action: entities.ShipmentDeliver,
			mockBehavior: func(repo *mocks.MockShipmentRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().GetShipmentForUpdate(mock.Anything, int64(20)).Return(inTransit(), nil)
				repo.EXPECT().FinishShipment(mock.Anything, int64(20), entities.ShipmentDelivered, mock.AnythingOfType("time.Time")).Return(nil)
				repo.EXPECT().UpdateOrdersStatusByShipment(mock.Anything, int64(20), entities.OrderDelivered).Return(nil)
				events.EXPECT().PublishStatusChanged(mock.Anything, mock.Anything).Return(nil).Times(2)
			},
			wantStatus: entities.ShipmentDelivered,
			wantOrders: entities.OrderDelivered,
		},
		{
			name:   "not the shipment's driver",
			actor:  entities.Actor{UserID: 6, Role: entities.RoleDriver},
			action: entities.ShipmentDeliver,
			mockBehavior: func(repo *mocks.MockShipmentRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().GetShipmentForUpdate(mock.Anything, int64(20)).Return(inTransit(), nil)
			},
			wantErr: entities.ErrUnauthorized,
		},
		{
			name:   "shipment already finished",
			actor:  driver,
			action: entities.ShipmentDeliver,
			mockBehavior: func(repo *mocks.MockShipmentRepo, events *mocks.MockEventPublisher) {
				finished := inTransit()
				finished.Status = entities.ShipmentDelivered
				now := time.Now()
				finished.FinishedAt = &now
				repo.EXPECT().GetShipmentForUpdate(mock.Anything, int64(20)).Return(finished, nil)
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:         "unknown action",
			actor:        driver,
			action:       entities.ShipmentAction("teleport"),
			mockBehavior: func(repo *mocks.MockShipmentRepo, events *mocks.MockEventPublisher) {},
			wantErr:      entities.ErrInvalidAction,
		},
		{
			name:         "manager is not allowed",
			actor:        entities.Actor{UserID: 3, Role: entities.RoleManager},
			action:       entities.ShipmentDeliver,
			mockBehavior: func(repo *mocks.MockShipmentRepo, events *mocks.MockEventPublisher) {},
			wantErr:      entities.ErrUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockShipmentRepo(t)
			events := mocks.NewMockEventPublisher(t)
			tx := txMocks.NewMockManager(t)
			passthroughTx(tx)

			tc.mockBehavior(repo, events)

			svc := service.NewShipmentService(newTestLogger(), tx, repo, events, false)

			shipment, err := svc.UpdateShipment(context.Background(), tc.actor, 20, tc.action)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, shipment.Status)
			require.NotNil(t, shipment.FinishedAt)
			for _, link := range shipment.Orders {
				assert.Equal(t, tc.wantOrders, link.Order.Status)
			}
		})
	}
}

func TestShipmentService_ListReadyOrders(t *testing.T) {
	repo := mocks.NewMockShipmentRepo(t)
	events := mocks.NewMockEventPublisher(t)
	tx := txMocks.NewMockManager(t)
	passthroughTx(tx)

	repo.EXPECT().ListReadyOrders(mock.Anything).
		Return([]entities.Order{{ID: 1, Status: entities.OrderReadyToShip}}, nil)

	svc := service.NewShipmentService(newTestLogger(), tx, repo, events, false)

	orders, err := svc.ListReadyOrders(context.Background(), entities.Actor{UserID: 5, Role: entities.RoleDriver})
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	_, err = svc.ListReadyOrders(context.Background(), entities.Actor{UserID: 1, Role: entities.RoleCustomer})
	assert.ErrorIs(t, err, entities.ErrUnauthorized)
}
