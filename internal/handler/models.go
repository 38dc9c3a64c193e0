package handler

import (
	"fmt"
	"time"

	"github.com/Ksaiko-Vlad/sofa-order-service/internal/entities"
	"github.com/Ksaiko-Vlad/sofa-order-service/internal/service"
)

// Money отдаём строками с двумя знаками, внутри суммы хранятся в копейках.
func moneyString(kopecks int64) string {
	sign := ""
	if kopecks < 0 {
		sign = "-"
		kopecks = -kopecks
	}
	return fmt.Sprintf("%s%d.%02d", sign, kopecks/100, kopecks%100)
}

// RegisterRequest тело регистрации покупателя
type RegisterRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Phone      string `json:"phone" validate:"required"`
	FirstName  string `json:"first_name" validate:"required"`
	SecondName string `json:"second_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
}

// LoginRequest тело входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse ответ на регистрацию и вход
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// User профиль пользователя
type User struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	SecondName string `json:"second_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Role       string `json:"role"`
}

// UpdateUserRequest частичное обновление профиля
type UpdateUserRequest struct {
	Phone      *string `json:"phone,omitempty"`
	FirstName  *string `json:"first_name,omitempty"`
	SecondName *string `json:"second_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
}

// FactoryActionRequest действие фабричного работника над заказом
type FactoryActionRequest struct {
	OrderID int64  `json:"orderId" validate:"required,gt=0"`
	Action  string `json:"action" validate:"required,oneof=take mark_ready"`
}

// FactoryOrdersResponse заказы фабрики: свободные и взятые текущим работником
type FactoryOrdersResponse struct {
	Available []Order `json:"available"`
	Mine      []Order `json:"mine"`
}

// TakeOrderRequest приём готового заказа в доставку
type TakeOrderRequest struct {
	OrderID   int64  `json:"orderId" validate:"required,gt=0"`
	RouteHint string `json:"routeHint,omitempty"`
	Comment   string `json:"comment,omitempty"`
}

// TakeOrderResponse результат приёма заказа
type TakeOrderResponse struct {
	ShipmentID int64    `json:"shipmentId"`
	Shipment   Shipment `json:"shipment"`
}

// ShipmentActionRequest завершение рейса
type ShipmentActionRequest struct {
	ShipmentID int64  `json:"shipmentId" validate:"required,gt=0"`
	Action     string `json:"action" validate:"required,oneof=deliver cancel"`
}

// CreateOrderRequest офлайн-заказ менеджера
type CreateOrderRequest struct {
	Customer Customer    `json:"customer" validate:"required"`
	Delivery Delivery    `json:"delivery" validate:"required"`
	Note     string      `json:"note,omitempty"`
	Items    []OrderItem `json:"items" validate:"required,min=1,dive"`
}

// Customer данные покупателя в заказе
type Customer struct {
	Name       string `json:"name" validate:"required"`
	SecondName string `json:"second_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Phone      string `json:"phone" validate:"required"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
}

// Delivery способ получения заказа
type Delivery struct {
	Type    string   `json:"type" validate:"required,oneof=pickup home_delivery"`
	ShopID  *int64   `json:"shopId,omitempty"`
	Address *Address `json:"address,omitempty"`
}

// Address адрес доставки
type Address struct {
	City      string `json:"city" validate:"required"`
	Street    string `json:"street" validate:"required"`
	House     string `json:"house" validate:"required"`
	Apartment string `json:"apartment,omitempty"`
	Entrance  string `json:"entrance,omitempty"`
	Floor     string `json:"floor,omitempty"`
	Comment   string `json:"comment,omitempty"`
}

// OrderItem позиция заказа
type OrderItem struct {
	ProductVariantID int64  `json:"product_variant_id" validate:"required,gt=0"`
	Quantity         int    `json:"quantity" validate:"required,gt=0"`
	IsFromShopStock  bool   `json:"is_from_shop_stock"`
	UnitPrice        string `json:"unit_price,omitempty"`
	Total            string `json:"total,omitempty"`
	SKU              string `json:"sku,omitempty"`
	ProductName      string `json:"product_name,omitempty"`
	MaterialName     string `json:"material_name,omitempty"`
}

// Order заказ
type Order struct {
	ID           int64       `json:"id"`
	CreatedAt    time.Time   `json:"created_at"`
	Status       string      `json:"status"`
	DeliveryType string      `json:"delivery_type"`
	Customer     Customer    `json:"customer"`
	Note         string      `json:"note,omitempty"`
	TotalAmount  string      `json:"total_amount"`
	Shop         *Shop       `json:"shop,omitempty"`
	Address      *Address    `json:"address,omitempty"`
	Items        []OrderItem `json:"items"`
}

// Shop магазин самовывоза
type Shop struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	City   string `json:"city"`
	Street string `json:"street"`
	Phone  string `json:"phone,omitempty"`
	Email  string `json:"email,omitempty"`
}

// Shipment рейс водителя
type Shipment struct {
	ID         int64      `json:"id"`
	DriverID   int64      `json:"driver_id"`
	PlannedAt  time.Time  `json:"planned_at"`
	Status     string     `json:"status"`
	RouteHint  string     `json:"route_hint,omitempty"`
	Comment    string     `json:"comment,omitempty"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Orders     []Order    `json:"orders"`
}

// ProductVariant позиция каталога
type ProductVariant struct {
	ID           int64  `json:"id"`
	ProductID    int64  `json:"product_id"`
	ProductName  string `json:"product_name"`
	MaterialID   int64  `json:"material_id"`
	MaterialName string `json:"material_name"`
	SKU          string `json:"sku"`
	Price        string `json:"price"`
}

// StorefrontOrder заказ из клиентского потока Kafka
type StorefrontOrder struct {
	CustomerID int64       `json:"customer_id" validate:"required,gt=0"`
	Customer   Customer    `json:"customer" validate:"required"`
	Delivery   Delivery    `json:"delivery" validate:"required"`
	Note       string      `json:"note,omitempty"`
	Items      []OrderItem `json:"items" validate:"required,min=1,dive"`
}

func UserEntityToJSON(u entities.User) User {
	return User{
		ID:         u.ID,
		Email:      u.Email,
		Phone:      u.Phone,
		FirstName:  u.FirstName,
		SecondName: u.SecondName,
		LastName:   u.LastName,
		Role:       u.Role.String(),
	}
}

func ShopEntityToJSON(s entities.Shop) Shop {
	return Shop{
		ID:     s.ID,
		Name:   s.Name,
		City:   s.City,
		Street: s.Street,
		Phone:  s.Phone,
		Email:  s.Email,
	}
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		City:      a.City,
		Street:    a.Street,
		House:     a.HouseNumber,
		Apartment: a.Apartment,
		Entrance:  a.Entrance,
		Floor:     a.Floor,
		Comment:   a.Comment,
	}
}

func ItemEntityToJSON(it entities.OrderItem) OrderItem {
	item := OrderItem{
		ProductVariantID: it.ProductVariantID,
		Quantity:         it.Quantity,
		IsFromShopStock:  it.IsFromShopStock,
		UnitPrice:        moneyString(it.UnitPrice),
		Total:            moneyString(it.UnitPrice * int64(it.Quantity)),
	}
	if it.Variant != nil {
		item.SKU = it.Variant.SKU
		item.ProductName = it.Variant.ProductName
		item.MaterialName = it.Variant.MaterialName
	}
	return item
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemEntityToJSON(it))
	}

	order := Order{
		ID:           o.ID,
		CreatedAt:    o.CreatedAt,
		Status:       o.Status.String(),
		DeliveryType: o.DeliveryType.String(),
		Customer: Customer{
			Name:  o.CustomerName,
			Phone: o.CustomerPhone,
			Email: o.CustomerEmail,
		},
		Note:        o.Note,
		TotalAmount: moneyString(o.TotalAmount),
		Items:       items,
	}
	if o.Shop != nil {
		shop := ShopEntityToJSON(*o.Shop)
		order.Shop = &shop
	}
	if o.Address != nil {
		addr := AddressEntityToJSON(*o.Address)
		order.Address = &addr
	}
	return order
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderEntityToJSON(o))
	}
	return out
}

func ShipmentEntityToJSON(s entities.Shipment) Shipment {
	orders := make([]Order, 0, len(s.Orders))
	for _, link := range s.Orders {
		orders = append(orders, OrderEntityToJSON(link.Order))
	}

	return Shipment{
		ID:         s.ID,
		DriverID:   s.DriverID,
		PlannedAt:  s.PlannedAt,
		Status:     s.Status.String(),
		RouteHint:  s.RouteHint,
		Comment:    s.Comment,
		StartedAt:  s.StartedAt,
		FinishedAt: s.FinishedAt,
		Orders:     orders,
	}
}

func VariantEntityToJSON(v entities.ProductVariant) ProductVariant {
	return ProductVariant{
		ID:           v.ID,
		ProductID:    v.ProductID,
		ProductName:  v.ProductName,
		MaterialID:   v.MaterialID,
		MaterialName: v.MaterialName,
		SKU:          v.SKU,
		Price:        moneyString(v.Price),
	}
}

func createOrderInput(req CreateOrderRequest) service.CreateOrderInput {
	return service.CreateOrderInput{
		Customer: customerInput(req.Customer),
		Delivery: deliveryInput(req.Delivery),
		Note:     req.Note,
		Items:    itemInputs(req.Items),
	}
}

func storefrontOrderInput(req StorefrontOrder) service.CreateOrderInput {
	return service.CreateOrderInput{
		Customer:   customerInput(req.Customer),
		Delivery:   deliveryInput(req.Delivery),
		Note:       req.Note,
		Items:      itemInputs(req.Items),
		CustomerID: &req.CustomerID,
	}
}

func customerInput(c Customer) service.CustomerInput {
	return service.CustomerInput{
		Name:       c.Name,
		SecondName: c.SecondName,
		LastName:   c.LastName,
		Phone:      c.Phone,
		Email:      c.Email,
	}
}

func deliveryInput(d Delivery) service.DeliveryInput {
	input := service.DeliveryInput{
		Type:   entities.DeliveryType(d.Type),
		ShopID: d.ShopID,
	}
	if d.Address != nil {
		input.Address = &entities.Address{
			City:        d.Address.City,
			Street:      d.Address.Street,
			HouseNumber: d.Address.House,
			Apartment:   d.Address.Apartment,
			Entrance:    d.Address.Entrance,
			Floor:       d.Address.Floor,
			Comment:     d.Address.Comment,
		}
	}
	return input
}

func itemInputs(items []OrderItem) []service.ItemInput {
	out := make([]service.ItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, service.ItemInput{
			ProductVariantID: it.ProductVariantID,
			Quantity:         it.Quantity,
			IsFromShopStock:  it.IsFromShopStock,
		})
	}
	return out
}
