package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/Ksaiko-Vlad/sofa-order-service/internal/entities"
	"github.com/Ksaiko-Vlad/sofa-order-service/internal/middleware"
	"github.com/Ksaiko-Vlad/sofa-order-service/internal/service"
	"github.com/Ksaiko-Vlad/sofa-order-service/pkg/utils"
)

type AuthService interface {
	Register(ctx context.Context, input service.RegisterInput) (service.AuthResult, error)
	Login(ctx context.Context, email, password string) (service.AuthResult, error)
	UpdateProfile(ctx context.Context, actor entities.Actor, update entities.UserUpdate) (entities.User, error)
}

type OrderService interface {
	ListFactoryOrders(ctx context.Context, actor entities.Actor) (available []entities.Order, mine []entities.Order, err error)
	ClaimOrder(ctx context.Context, actor entities.Actor, orderID int64) (entities.Order, error)
	MarkReady(ctx context.Context, actor entities.Actor, orderID int64) (entities.Order, error)
	ListManagerOrders(ctx context.Context, actor entities.Actor) ([]entities.Order, error)
	CreateOfflineOrder(ctx context.Context, actor entities.Actor, input service.CreateOrderInput) (entities.Order, error)
}

type ShipmentService interface {
	ListReadyOrders(ctx context.Context, actor entities.Actor) ([]entities.Order, error)
	TakeOrder(ctx context.Context, actor entities.Actor, orderID int64, routeHint, comment string) (entities.Shipment, error)
	ListActiveShipments(ctx context.Context, actor entities.Actor) ([]entities.Shipment, error)
	UpdateShipment(ctx context.Context, actor entities.Actor, shipmentID int64, action entities.ShipmentAction) (entities.Shipment, error)
}

type CatalogService interface {
	ListProducts(ctx context.Context) ([]entities.ProductVariant, error)
	ListShops(ctx context.Context) ([]entities.Shop, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	tokens   middleware.TokenParser

	auth      AuthService
	orders    OrderService
	shipments ShipmentService
	catalog   CatalogService
}

func NewHTTPHandler(
	logger *slog.Logger,
	tokens middleware.TokenParser,
	auth AuthService,
	orders OrderService,
	shipments ShipmentService,
	catalog CatalogService,
) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "http")),
		validate:  validator.New(),
		tokens:    tokens,
		auth:      auth,
		orders:    orders,
		shipments: shipments,
		catalog:   catalog,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", h.Register)
		r.Post("/auth/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(h.tokens))

			r.Post("/user/update", h.UpdateUser)

			r.Get("/factory/orders", h.ListFactoryOrders)
			r.Post("/factory/orders", h.FactoryAction)

			r.Get("/driver/orders", h.ListReadyOrders)
			r.Post("/driver/orders", h.TakeOrder)
			r.Get("/driver/active", h.ListActiveShipments)
			r.Post("/driver/active", h.ShipmentAction)

			r.Get("/manager/orders", h.ListManagerOrders)
			r.Post("/manager/orders", h.CreateOrder)

			r.Get("/products", h.ListProducts)
			r.Get("/shops", h.ListShops)
		})
	})
}

// Register регистрирует покупателя.
// @Summary      Регистрация
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body RegisterRequest true "Данные регистрации"
// @Success      201  {object}  AuthResponse
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Email занят"
// @Router       /auth/register [post]
func (h *HTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	result, err := h.auth.Register(r.Context(), service.RegisterInput{
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		FirstName:  req.FirstName,
		SecondName: req.SecondName,
		LastName:   req.LastName,
	})
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}

	utils.WriteJSON(w, AuthResponse{Token: result.Token, User: UserEntityToJSON(result.User)}, http.StatusCreated)
}

// Login выполняет вход по email и паролю.
// @Summary      Вход
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body LoginRequest true "Учётные данные"
// @Success      200  {object}  AuthResponse
// @Failure      401  {object}  utils.ErrorResponse "Неверные учётные данные"
// @Router       /auth/login [post]
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	result, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}

	utils.WriteJSON(w, AuthResponse{Token: result.Token, User: UserEntityToJSON(result.User)}, http.StatusOK)
}

// UpdateUser обновляет профиль текущего пользователя.
// @Summary      Обновить профиль
// @Tags         user
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body UpdateUserRequest true "Изменяемые поля"
// @Success      200  {object}  User
// @Router       /user/update [post]
func (h *HTTPHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateUserRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.auth.UpdateProfile(r.Context(), actor, entities.UserUpdate{
		Phone:      req.Phone,
		FirstName:  req.FirstName,
		SecondName: req.SecondName,
		LastName:   req.LastName,
	})
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusOK)
}

// ListFactoryOrders возвращает свободные заказы и заказы текущего работника.
// @Summary      Заказы фабрики
// @Tags         factory
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  FactoryOrdersResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Router       /factory/orders [get]
func (h *HTTPHandler) ListFactoryOrders(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	available, mine, err := h.orders.ListFactoryOrders(r.Context(), actor)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}

	utils.WriteJSON(w, FactoryOrdersResponse{
		Available: OrdersEntityToJSON(available),
		Mine:      OrdersEntityToJSON(mine),
	}, http.StatusOK)
}

// FactoryAction берёт заказ в производство или помечает его готовым.
// @Summary      Действие над заказом фабрики
// @Tags         factory
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body FactoryActionRequest true "Заказ и действие"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Конфликт или недопустимый переход"
// @Router       /factory/orders [post]
func (h *HTTPHandler) FactoryAction(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req FactoryActionRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var order entities.Order
	var err error
	switch req.Action {
	case "take":
		order, err = h.orders.ClaimOrder(r.Context(), actor, req.OrderID)
	case "mark_ready":
		order, err = h.orders.MarkReady(r.Context(), actor, req.OrderID)
	}
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListReadyOrders возвращает заказы, готовые к доставке.
// @Summary      Заказы к доставке
// @Tags         driver
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  Order
// @Router       /driver/orders [get]
func (h *HTTPHandler) ListReadyOrders(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	orders, err := h.shipments.ListReadyOrders(r.Context(), actor)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// TakeOrder принимает готовый заказ в доставку.
// @Summary      Принять заказ в доставку
// @Tags         driver
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body TakeOrderRequest true "Заказ и маршрут"
// @Success      200  {object}  TakeOrderResponse
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже в доставке"
// @Router       /driver/orders [post]
func (h *HTTPHandler) TakeOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req TakeOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	shipment, err := h.shipments.TakeOrder(r.Context(), actor, req.OrderID, req.RouteHint, req.Comment)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}

	utils.WriteJSON(w, TakeOrderResponse{
		ShipmentID: shipment.ID,
		Shipment:   ShipmentEntityToJSON(shipment),
	}, http.StatusOK)
}

// ListActiveShipments возвращает рейсы текущего водителя.
// @Summary      Рейсы водителя
// @Tags         driver
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  Shipment
// @Router       /driver/active [get]
func (h *HTTPHandler) ListActiveShipments(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	shipments, err := h.shipments.ListActiveShipments(r.Context(), actor)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}

	out := make([]Shipment, 0, len(shipments))
	for _, s := range shipments {
		out = append(out, ShipmentEntityToJSON(s))
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

// ShipmentAction завершает рейс: доставлен или отменён.
// @Summary      Завершить рейс
// @Tags         driver
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body ShipmentActionRequest true "Рейс и действие"
// @Success      200  {object}  Shipment
// @Failure      404  {object}  utils.ErrorResponse "Рейс не найден"
// @Failure      409  {object}  utils.ErrorResponse "Рейс уже завершён"
// @Router       /driver/active [post]
func (h *HTTPHandler) ShipmentAction(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req ShipmentActionRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	shipment, err := h.shipments.UpdateShipment(r.Context(), actor, req.ShipmentID, entities.ShipmentAction(req.Action))
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}

	utils.WriteJSON(w, ShipmentEntityToJSON(shipment), http.StatusOK)
}

// ListManagerOrders возвращает все заказы.
// @Summary      Все заказы
// @Tags         manager
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  Order
// @Router       /manager/orders [get]
func (h *HTTPHandler) ListManagerOrders(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	orders, err := h.orders.ListManagerOrders(r.Context(), actor)
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// CreateOrder создаёт офлайн-заказ.
// @Summary      Создать офлайн-заказ
// @Tags         manager
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body CreateOrderRequest true "Заказ"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Невалидный заказ"
// @Router       /manager/orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.CreateOfflineOrder(r.Context(), actor, createOrderInput(req))
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// ListProducts возвращает активные позиции каталога.
// @Summary      Каталог
// @Tags         catalog
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  ProductVariant
// @Router       /products [get]
func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	variants, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}

	out := make([]ProductVariant, 0, len(variants))
	for _, v := range variants {
		out = append(out, VariantEntityToJSON(v))
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

// ListShops возвращает магазины самовывоза.
// @Summary      Магазины
// @Tags         catalog
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  Shop
// @Router       /shops [get]
func (h *HTTPHandler) ListShops(w http.ResponseWriter, r *http.Request) {
	shops, err := h.catalog.ListShops(r.Context())
	if err != nil {
		h.writeDomainError(r.Context(), w, err)
		return
	}

	out := make([]Shop, 0, len(shops))
	for _, s := range shops {
		out = append(out, ShopEntityToJSON(s))
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

func (h *HTTPHandler) writeDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entities.ErrUnauthenticated), errors.Is(err, entities.ErrInvalidCreds):
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, entities.ErrUnauthorized):
		utils.WriteError(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrShipmentNotFound):
		utils.WriteError(w, "shipment not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrUserNotFound):
		utils.WriteError(w, "user not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrClaimConflict):
		utils.WriteError(w, "order already claimed", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidTransition):
		utils.WriteError(w, "invalid status transition", http.StatusConflict)
	case errors.Is(err, entities.ErrEmailTaken):
		utils.WriteError(w, "email already registered", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidOrder), errors.Is(err, entities.ErrVariantNotFound), errors.Is(err, entities.ErrInvalidAction):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
