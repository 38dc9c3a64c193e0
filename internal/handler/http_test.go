package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Ksaiko-Vlad/sofa-order-service/internal/entities"
	"github.com/Ksaiko-Vlad/sofa-order-service/internal/handler"
	mocks "github.com/Ksaiko-Vlad/sofa-order-service/internal/handler/mocks"
	"github.com/Ksaiko-Vlad/sofa-order-service/internal/service"
	"github.com/Ksaiko-Vlad/sofa-order-service/pkg/token"
)

type testServices struct {
	auth      *mocks.MockAuthService
	orders    *mocks.MockOrderService
	shipments *mocks.MockShipmentService
	catalog   *mocks.MockCatalogService
}

func newTestServer(t *testing.T) (*testServices, http.Handler, *token.Manager) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := token.NewManager("test-secret-at-least-16", time.Hour)

	svcs := &testServices{
		auth:      mocks.NewMockAuthService(t),
		orders:    mocks.NewMockOrderService(t),
		shipments: mocks.NewMockShipmentService(t),
		catalog:   mocks.NewMockCatalogService(t),
	}

	h := handler.NewHTTPHandler(logger, tokens, svcs.auth, svcs.orders, svcs.shipments, svcs.catalog)
	r := chi.NewRouter()
	h.Init(r)
	return svcs, r, tokens
}

func bearer(t *testing.T, tokens *token.Manager, userID int64, role entities.Role) string {
	raw, err := tokens.Sign(userID, string(role))
	require.NoError(t, err)
	return "Bearer " + raw
}

func doRequest(router http.Handler, method, target, auth, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHTTPHandler_Register(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svcs *testServices)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"email":"ivan@example.com","password":"secret123","phone":"+79990001122","first_name":"Иван"}`,
			mockBehavior: func(svcs *testServices) {
				svcs.auth.EXPECT().
					Register(mock.Anything, mock.Anything).
					Return(service.AuthResult{
						Token: "jwt-token",
						User:  entities.User{ID: 1, Email: "ivan@example.com", Role: entities.RoleCustomer},
					}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"token":"jwt-token"`,
		},
		{
			name:         "password too short",
			body:         `{"email":"ivan@example.com","password":"short","phone":"+79990001122","first_name":"Иван"}`,
			mockBehavior: func(svcs *testServices) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Password"`,
		},
		{
			name: "email taken",
			body: `{"email":"ivan@example.com","password":"secret123","phone":"+79990001122","first_name":"Иван"}`,
			mockBehavior: func(svcs *testServices) {
				svcs.auth.EXPECT().
					Register(mock.Anything, mock.Anything).
					Return(service.AuthResult{}, entities.ErrEmailTaken).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"email already registered"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svcs, router, _ := newTestServer(t)
			tc.mockBehavior(svcs)

			rec := doRequest(router, http.MethodPost, "/api/v1/auth/register", "", tc.body)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_Login(t *testing.T) {
	svcs, router, _ := newTestServer(t)

	svcs.auth.EXPECT().
		Login(mock.Anything, "ivan@example.com", "secret123").
		Return(service.AuthResult{}, entities.ErrInvalidCreds).Once()

	rec := doRequest(router, http.MethodPost, "/api/v1/auth/login", "",
		`{"email":"ivan@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHTTPHandler_AuthMiddleware(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		_, router, _ := newTestServer(t)

		rec := doRequest(router, http.MethodGet, "/api/v1/factory/orders", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, router, _ := newTestServer(t)

		rec := doRequest(router, http.MethodGet, "/api/v1/factory/orders", "Bearer not-a-token", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token with unknown role", func(t *testing.T) {
		_, router, tokens := newTestServer(t)

		raw, err := tokens.Sign(1, "superuser")
		require.NoError(t, err)

		rec := doRequest(router, http.MethodGet, "/api/v1/factory/orders", "Bearer "+raw, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHTTPHandler_FactoryOrders(t *testing.T) {
	svcs, router, tokens := newTestServer(t)

	svcs.orders.EXPECT().
		ListFactoryOrders(mock.Anything, entities.Actor{UserID: 7, Role: entities.RoleFactoryWorker}).
		Return(
			[]entities.Order{{ID: 1, Status: entities.OrderCreated}},
			[]entities.Order{{ID: 2, Status: entities.OrderInProduction}},
			nil,
		).Once()

	rec := doRequest(router, http.MethodGet, "/api/v1/factory/orders",
		bearer(t, tokens, 7, entities.RoleFactoryWorker), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"available"`)
	assert.Contains(t, rec.Body.String(), `"mine"`)
}

func TestHTTPHandler_FactoryAction(t *testing.T) {
	worker := entities.Actor{UserID: 7, Role: entities.RoleFactoryWorker}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svcs *testServices)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "take success",
			body: `{"orderId":1,"action":"take"}`,
			mockBehavior: func(svcs *testServices) {
				svcs.orders.EXPECT().
					ClaimOrder(mock.Anything, worker, int64(1)).
					Return(entities.Order{ID: 1, Status: entities.OrderInProduction}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"in_production"`,
		},
		{
			name: "mark_ready success",
			body: `{"orderId":1,"action":"mark_ready"}`,
			mockBehavior: func(svcs *testServices) {
				svcs.orders.EXPECT().
					MarkReady(mock.Anything, worker, int64(1)).
					Return(entities.Order{ID: 1, Status: entities.OrderReadyToShip}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"ready_to_ship"`,
		},
		{
			name: "claim conflict",
			body: `{"orderId":1,"action":"take"}`,
			mockBehavior: func(svcs *testServices) {
				svcs.orders.EXPECT().
					ClaimOrder(mock.Anything, worker, int64(1)).
					Return(entities.Order{}, entities.ErrClaimConflict).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"order already claimed"`,
		},
		{
			name: "order not found",
			body: `{"orderId":999,"action":"take"}`,
			mockBehavior: func(svcs *testServices) {
				svcs.orders.EXPECT().
					ClaimOrder(mock.Anything, worker, int64(999)).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name: "forbidden role",
			body: `{"orderId":1,"action":"take"}`,
			mockBehavior: func(svcs *testServices) {
				svcs.orders.EXPECT().
					ClaimOrder(mock.Anything, worker, int64(1)).
					Return(entities.Order{}, entities.ErrUnauthorized).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"forbidden"`,
		},
		{
			name:         "unknown action",
			body:         `{"orderId":1,"action":"explode"}`,
			mockBehavior: func(svcs *testServices) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Action"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svcs, router, tokens := newTestServer(t)
			tc.mockBehavior(svcs)

			rec := doRequest(router, http.MethodPost, "/api/v1/factory/orders",
				bearer(t, tokens, 7, entities.RoleFactoryWorker), tc.body)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_TakeOrder(t *testing.T) {
	driver := entities.Actor{UserID: 5, Role: entities.RoleDriver}

	t.Run("success", func(t *testing.T) {
		svcs, router, tokens := newTestServer(t)

		svcs.shipments.EXPECT().
			TakeOrder(mock.Anything, driver, int64(1), "маршрут А", "").
			Return(entities.Shipment{
				ID:       20,
				DriverID: 5,
				Status:   entities.ShipmentInTransit,
				Orders: []entities.ShipmentOrder{
					{OrderID: 1, Order: entities.Order{ID: 1, Status: entities.OrderInTransit, TotalAmount: 300000}},
				},
			}, nil).Once()

		rec := doRequest(router, http.MethodPost, "/api/v1/driver/orders",
			bearer(t, tokens, 5, entities.RoleDriver),
			`{"orderId":1,"routeHint":"маршрут А"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"shipmentId":20`)
		assert.Contains(t, rec.Body.String(), `"total_amount":"3000.00"`)
	})

	t.Run("already taken", func(t *testing.T) {
		svcs, router, tokens := newTestServer(t)

		svcs.shipments.EXPECT().
			TakeOrder(mock.Anything, driver, int64(1), "", "").
			Return(entities.Shipment{}, entities.ErrClaimConflict).Once()

		rec := doRequest(router, http.MethodPost, "/api/v1/driver/orders",
			bearer(t, tokens, 5, entities.RoleDriver),
			`{"orderId":1}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestHTTPHandler_ShipmentAction(t *testing.T) {
	driver := entities.Actor{UserID: 5, Role: entities.RoleDriver}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svcs *testServices)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "deliver",
			body: `{"shipmentId":20,"action":"deliver"}`,
			mockBehavior: func(svcs *testServices) {
				svcs.shipments.EXPECT().
					UpdateShipment(mock.Anything, driver, int64(20), entities.ShipmentDeliver).
					Return(entities.Shipment{ID: 20, Status: entities.ShipmentDelivered}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"delivered"`,
		},
		{
			name: "cancel",
			body: `{"shipmentId":20,"action":"cancel"}`,
			mockBehavior: func(svcs *testServices) {
				svcs.shipments.EXPECT().
					UpdateShipment(mock.Anything, driver, int64(20), entities.ShipmentCancel).
					Return(entities.Shipment{ID: 20, Status: entities.ShipmentCancelled}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"cancelled"`,
		},
		{
			name: "already finished",
			body: `{"shipmentId":20,"action":"deliver"}`,
			mockBehavior: func(svcs *testServices) {
				svcs.shipments.EXPECT().
					UpdateShipment(mock.Anything, driver, int64(20), entities.ShipmentDeliver).
					Return(entities.Shipment{}, entities.ErrInvalidTransition).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"invalid status transition"`,
		},
		{
			name: "shipment not found",
			body: `{"shipmentId":999,"action":"deliver"}`,
			mockBehavior: func(svcs *testServices) {
				svcs.shipments.EXPECT().
					UpdateShipment(mock.Anything, driver, int64(999), entities.ShipmentDeliver).
					Return(entities.Shipment{}, entities.ErrShipmentNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"shipment not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svcs, router, tokens := newTestServer(t)
			tc.mockBehavior(svcs)

			rec := doRequest(router, http.MethodPost, "/api/v1/driver/active",
				bearer(t, tokens, 5, entities.RoleDriver), tc.body)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	manager := entities.Actor{UserID: 3, Role: entities.RoleManager}

	t.Run("success", func(t *testing.T) {
		svcs, router, tokens := newTestServer(t)

		svcs.orders.EXPECT().
			CreateOfflineOrder(mock.Anything, manager, mock.Anything).
			Return(entities.Order{
				ID:           42,
				Status:       entities.OrderCreated,
				DeliveryType: entities.DeliveryPickup,
				CustomerName: "Иван Петров",
				TotalAmount:  300000,
				Shop:         &entities.Shop{ID: 5},
				Items: []entities.OrderItem{
					{ProductVariantID: 10, Quantity: 2, UnitPrice: 150000},
				},
			}, nil).Once()

		body := `{
			"customer": {"name":"Иван","last_name":"Петров","phone":"+79990001122"},
			"delivery": {"type":"pickup","shopId":5},
			"items": [{"product_variant_id":10,"quantity":2}]
		}`

		rec := doRequest(router, http.MethodPost, "/api/v1/manager/orders",
			bearer(t, tokens, 3, entities.RoleManager), body)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":42`)
		assert.Contains(t, rec.Body.String(), `"total_amount":"3000.00"`)
		assert.Contains(t, rec.Body.String(), `"unit_price":"1500.00"`)
	})

	t.Run("empty items rejected", func(t *testing.T) {
		_, router, tokens := newTestServer(t)

		body := `{
			"customer": {"name":"Иван","phone":"+79990001122"},
			"delivery": {"type":"pickup","shopId":5},
			"items": []
		}`

		rec := doRequest(router, http.MethodPost, "/api/v1/manager/orders",
			bearer(t, tokens, 3, entities.RoleManager), body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"Items"`)
	})

	t.Run("unknown delivery type rejected", func(t *testing.T) {
		_, router, tokens := newTestServer(t)

		body := `{
			"customer": {"name":"Иван","phone":"+79990001122"},
			"delivery": {"type":"teleport"},
			"items": [{"product_variant_id":10,"quantity":2}]
		}`

		rec := doRequest(router, http.MethodPost, "/api/v1/manager/orders",
			bearer(t, tokens, 3, entities.RoleManager), body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"Type"`)
	})
}

func TestHTTPHandler_Catalog(t *testing.T) {
	svcs, router, tokens := newTestServer(t)

	svcs.catalog.EXPECT().
		ListProducts(mock.Anything).
		Return([]entities.ProductVariant{
			{ID: 10, ProductName: "Диван", MaterialName: "Велюр", SKU: "SOFA-10", Price: 150000},
		}, nil).Once()

	rec := doRequest(router, http.MethodGet, "/api/v1/products",
		bearer(t, tokens, 1, entities.RoleCustomer), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"price":"1500.00"`)
	assert.Contains(t, rec.Body.String(), `"sku":"SOFA-10"`)
}

func TestHTTPHandler_UpdateUser(t *testing.T) {
	svcs, router, tokens := newTestServer(t)

	svcs.auth.EXPECT().
		UpdateProfile(mock.Anything, entities.Actor{UserID: 7, Role: entities.RoleCustomer}, mock.Anything).
		Return(entities.User{ID: 7, Email: "ivan@example.com", Phone: "+79990009988", Role: entities.RoleCustomer}, nil).Once()

	rec := doRequest(router, http.MethodPost, "/api/v1/user/update",
		bearer(t, tokens, 7, entities.RoleCustomer),
		`{"phone":"+79990009988"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"+79990009988"`)
}
