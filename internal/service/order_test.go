package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/Ksaiko-Vlad/sofa-order-service/internal/entities"
	"github.com/Ksaiko-Vlad/sofa-order-service/internal/service"
	mocks "github.com/Ksaiko-Vlad/sofa-order-service/internal/service/mocks"
	txMocks "github.com/Ksaiko-Vlad/sofa-order-service/pkg/trm/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func passthroughTx(tx *txMocks.MockManager) {
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
}

func TestOrderService_ClaimOrder(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, events *mocks.MockEventPublisher)

	worker := entities.Actor{UserID: 7, Role: entities.RoleFactoryWorker}
	otherWorker := int64(99)

	testCases := []struct {
		name         string
		actor        entities.Actor
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:  "OK",
			actor: worker,
			mockBehavior: func(repo *mocks.MockOrderRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().ClaimOrder(mock.Anything, int64(1), int64(7)).Return(true, nil)
				repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).
					Return(entities.Order{ID: 1, Status: entities.OrderInProduction}, nil)
				events.EXPECT().PublishStatusChanged(mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:  "lost race to another worker",
			actor: worker,
			mockBehavior: func(repo *mocks.MockOrderRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().ClaimOrder(mock.Anything, int64(1), int64(7)).Return(false, nil)
				repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).
					Return(entities.Order{ID: 1, Status: entities.OrderInProduction, FactoryWorkerID: &otherWorker}, nil)
			},
			wantErr: entities.ErrClaimConflict,
		},
		{
			name:  "order not in created status",
			actor: worker,
			mockBehavior: func(repo *mocks.MockOrderRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().ClaimOrder(mock.Anything, int64(1), int64(7)).Return(false, nil)
				repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).
					Return(entities.Order{ID: 1, Status: entities.OrderDelivered}, nil)
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:  "row changed while still claimable",
			actor: worker,
			mockBehavior: func(repo *mocks.MockOrderRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().ClaimOrder(mock.Anything, int64(1), int64(7)).Return(false, nil)
				repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).
					Return(entities.Order{ID: 1, Status: entities.OrderCreated}, nil)
			},
			wantErr: entities.ErrClaimConflict,
		},
		{
			name:  "order not found",
			actor: worker,
			mockBehavior: func(repo *mocks.MockOrderRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().ClaimOrder(mock.Anything, int64(1), int64(7)).Return(false, nil)
				repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).
					Return(entities.Order{}, entities.ErrOrderNotFound)
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:         "driver is not allowed",
			actor:        entities.Actor{UserID: 7, Role: entities.RoleDriver},
			mockBehavior: func(repo *mocks.MockOrderRepo, events *mocks.MockEventPublisher) {},
			wantErr:      entities.ErrUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			variants := mocks.NewMockVariantGetter(t)
			events := mocks.NewMockEventPublisher(t)
			tx := txMocks.NewMockManager(t)
			passthroughTx(tx)

			tc.mockBehavior(repo, events)

			svc := service.NewOrderService(newTestLogger(), tx, repo, variants, events)

			order, err := svc.ClaimOrder(context.Background(), tc.actor, 1)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.OrderInProduction, order.Status)
		})
	}
}

func TestOrderService_ClaimOrder_Concurrent(t *testing.T) {
	const workers = 8

	repo := mocks.NewMockOrderRepo(t)
	variants := mocks.NewMockVariantGetter(t)
	events := mocks.NewMockEventPublisher(t)
	tx := txMocks.NewMockManager(t)
	passthroughTx(tx)

	var claimedBy atomic.Int64

	// Эмуляция условного UPDATE: побеждает ровно один
	repo.EXPECT().ClaimOrder(mock.Anything, int64(1), mock.Anything).
		RunAndReturn(func(ctx context.Context, orderID, workerID int64) (bool, error) {
			return claimedBy.CompareAndSwap(0, workerID), nil
		})
	repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).
		RunAndReturn(func(ctx context.Context, orderID int64) (entities.Order, error) {
			winner := claimedBy.Load()
			return entities.Order{ID: 1, Status: entities.OrderInProduction, FactoryWorkerID: &winner}, nil
		})
	events.EXPECT().PublishStatusChanged(mock.Anything, mock.Anything).Return(nil).Once()

	svc := service.NewOrderService(newTestLogger(), tx, repo, variants, events)

	var wins, conflicts atomic.Int64
	var g errgroup.Group
	for i := 1; i <= workers; i++ {
		actor := entities.Actor{UserID: int64(i), Role: entities.RoleFactoryWorker}
		g.Go(func() error {
			_, err := svc.ClaimOrder(context.Background(), actor, 1)
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, entities.ErrClaimConflict):
				conflicts.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int64(1), wins.Load())
	assert.Equal(t, int64(workers-1), conflicts.Load())
}

func TestOrderService_MarkReady(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, events *mocks.MockEventPublisher)

	ownerID := int64(7)
	owner := entities.Actor{UserID: ownerID, Role: entities.RoleFactoryWorker}
	stranger := entities.Actor{UserID: 8, Role: entities.RoleFactoryWorker}
	admin := entities.Actor{UserID: 100, Role: entities.RoleAdmin}

	inProduction := entities.Order{ID: 1, Status: entities.OrderInProduction, FactoryWorkerID: &ownerID}

	testCases := []struct {
		name         string
		actor        entities.Actor
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:  "OK",
			actor: owner,
			mockBehavior: func(repo *mocks.MockOrderRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).Return(inProduction, nil)
				repo.EXPECT().MarkOrderReady(mock.Anything, int64(1), ownerID).Return(true, nil)
				events.EXPECT().PublishStatusChanged(mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:  "admin may finish another worker's order",
			actor: admin,
			mockBehavior: func(repo *mocks.MockOrderRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).Return(inProduction, nil)
				repo.EXPECT().MarkOrderReady(mock.Anything, int64(1), ownerID).Return(true, nil)
				events.EXPECT().PublishStatusChanged(mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:  "not the assigned worker",
			actor: stranger,
			mockBehavior: func(repo *mocks.MockOrderRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).Return(inProduction, nil)
			},
			wantErr: entities.ErrUnauthorized,
		},
		{
			name:  "order not in production",
			actor: owner,
			mockBehavior: func(repo *mocks.MockOrderRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).
					Return(entities.Order{ID: 1, Status: entities.OrderCreated}, nil)
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:  "order already delivered",
			actor: owner,
			mockBehavior: func(repo *mocks.MockOrderRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).
					Return(entities.Order{ID: 1, Status: entities.OrderDelivered, FactoryWorkerID: &ownerID}, nil)
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:  "status changed between read and update",
			actor: owner,
			mockBehavior: func(repo *mocks.MockOrderRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().GetOrderByID(mock.Anything, int64(1)).Return(inProduction, nil)
				repo.EXPECT().MarkOrderReady(mock.Anything, int64(1), ownerID).Return(false, nil)
			},
			wantErr: entities.ErrInvalidTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			variants := mocks.NewMockVariantGetter(t)
			events := mocks.NewMockEventPublisher(t)
			tx := txMocks.NewMockManager(t)
			passthroughTx(tx)

			tc.mockBehavior(repo, events)

			svc := service.NewOrderService(newTestLogger(), tx, repo, variants, events)

			order, err := svc.MarkReady(context.Background(), tc.actor, 1)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.OrderReadyToShip, order.Status)
		})
	}
}

func TestOrderService_CreateOfflineOrder(t *testing.T) {
	manager := entities.Actor{UserID: 3, Role: entities.RoleManager}
	shopID := int64(5)

	variant := entities.ProductVariant{ID: 10, ProductID: 1, MaterialID: 2, Price: 150000, Active: true}

	validInput := service.CreateOrderInput{
		Customer: service.CustomerInput{Name: "Иван", LastName: "Петров", Phone: "+79990001122"},
		Delivery: service.DeliveryInput{Type: entities.DeliveryPickup, ShopID: &shopID},
		Items: []service.ItemInput{
			{ProductVariantID: 10, Quantity: 2},
		},
	}

	t.Run("OK with price snapshot", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		variants := mocks.NewMockVariantGetter(t)
		events := mocks.NewMockEventPublisher(t)
		tx := txMocks.NewMockManager(t)
		passthroughTx(tx)

		variants.EXPECT().GetVariantsByIDs(mock.Anything, []int64{10}).
			Return([]entities.ProductVariant{variant}, nil)

		var saved entities.Order
		repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, order entities.Order) (entities.Order, error) {
				saved = order
				order.ID = 42
				return order, nil
			})

		svc := service.NewOrderService(newTestLogger(), tx, repo, variants, events)

		created, err := svc.CreateOfflineOrder(context.Background(), manager, validInput)
		require.NoError(t, err)

		assert.Equal(t, int64(42), created.ID)
		assert.Equal(t, entities.OrderCreated, saved.Status)
		assert.Equal(t, "Иван Петров", saved.CustomerName)
		require.Len(t, saved.Items, 1)
		assert.Equal(t, int64(150000), saved.Items[0].UnitPrice)
		assert.Equal(t, int64(300000), saved.TotalAmount)
		require.NotNil(t, saved.Shop)
		assert.Equal(t, shopID, saved.Shop.ID)
	})

	t.Run("customer is not allowed", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		variants := mocks.NewMockVariantGetter(t)
		events := mocks.NewMockEventPublisher(t)
		tx := txMocks.NewMockManager(t)
		passthroughTx(tx)

		svc := service.NewOrderService(newTestLogger(), tx, repo, variants, events)

		_, err := svc.CreateOfflineOrder(context.Background(), entities.Actor{UserID: 1, Role: entities.RoleCustomer}, validInput)
		assert.ErrorIs(t, err, entities.ErrUnauthorized)
	})

	t.Run("empty items", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		variants := mocks.NewMockVariantGetter(t)
		events := mocks.NewMockEventPublisher(t)
		tx := txMocks.NewMockManager(t)
		passthroughTx(tx)

		svc := service.NewOrderService(newTestLogger(), tx, repo, variants, events)

		input := validInput
		input.Items = nil
		_, err := svc.CreateOfflineOrder(context.Background(), manager, input)
		assert.ErrorIs(t, err, entities.ErrInvalidOrder)
	})

	t.Run("inactive variant", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		variants := mocks.NewMockVariantGetter(t)
		events := mocks.NewMockEventPublisher(t)
		tx := txMocks.NewMockManager(t)
		passthroughTx(tx)

		inactive := variant
		inactive.Active = false
		variants.EXPECT().GetVariantsByIDs(mock.Anything, []int64{10}).
			Return([]entities.ProductVariant{inactive}, nil)

		svc := service.NewOrderService(newTestLogger(), tx, repo, variants, events)

		_, err := svc.CreateOfflineOrder(context.Background(), manager, validInput)
		assert.ErrorIs(t, err, entities.ErrVariantNotFound)
	})

	t.Run("home delivery without address", func(t *testing.T) {
		repo := mocks.NewMockOrderRepo(t)
		variants := mocks.NewMockVariantGetter(t)
		events := mocks.NewMockEventPublisher(t)
		tx := txMocks.NewMockManager(t)
		passthroughTx(tx)

		variants.EXPECT().GetVariantsByIDs(mock.Anything, []int64{10}).
			Return([]entities.ProductVariant{variant}, nil)

		svc := service.NewOrderService(newTestLogger(), tx, repo, variants, events)

		input := validInput
		input.Delivery = service.DeliveryInput{Type: entities.DeliveryHome}
		_, err := svc.CreateOfflineOrder(context.Background(), manager, input)
		assert.ErrorIs(t, err, entities.ErrInvalidOrder)
	})
}
