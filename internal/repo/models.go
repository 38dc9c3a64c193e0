package repo

import (
	"database/sql"
	"time"

	"github.com/Ksaiko-Vlad/sofa-order-service/internal/entities"
)

type Order struct {
	OrderID         int64          `db:"order_id"`
	CreatedAt       time.Time      `db:"created_at"`
	Status          string         `db:"status"`
	DeliveryType    string         `db:"delivery_type"`
	CustomerName    string         `db:"customer_name"`
	CustomerPhone   string         `db:"customer_phone"`
	CustomerEmail   sql.NullString `db:"customer_email"`
	Note            sql.NullString `db:"note"`
	TotalAmount     int64          `db:"total_amount"`
	FactoryWorkerID sql.NullInt64  `db:"factory_worker_id"`
	CustomerID      sql.NullInt64  `db:"customer_id"`
	ShopID          sql.NullInt64  `db:"shop_id"`
	AddressID       sql.NullInt64  `db:"address_id"`
}

type OrderItem struct {
	ItemID          int64          `db:"item_id"`
	OrderID         int64          `db:"order_id"`
	VariantID       int64          `db:"variant_id"`
	Quantity        int            `db:"quantity"`
	IsFromShopStock bool           `db:"is_from_shop_stock"`
	UnitPrice       int64          `db:"unit_price"`
	SKU             sql.NullString `db:"sku"`
	VariantPrice    sql.NullInt64  `db:"variant_price"`
	ProductID       sql.NullInt64  `db:"product_id"`
	ProductName     sql.NullString `db:"product_name"`
	MaterialID      sql.NullInt64  `db:"material_id"`
	MaterialName    sql.NullString `db:"material_name"`
}

type Shop struct {
	ShopID int64          `db:"shop_id"`
	Name   sql.NullString `db:"name"`
	City   string         `db:"city"`
	Street string         `db:"street"`
	Phone  sql.NullString `db:"phone"`
	Email  sql.NullString `db:"email"`
}

type Address struct {
	AddressID   int64          `db:"address_id"`
	City        string         `db:"city"`
	Street      string         `db:"street"`
	HouseNumber sql.NullString `db:"house_number"`
	Apartment   sql.NullString `db:"apartment"`
	Entrance    sql.NullString `db:"entrance"`
	Floor       sql.NullString `db:"floor"`
	Comment     sql.NullString `db:"comment"`
}

type Shipment struct {
	ShipmentID int64          `db:"shipment_id"`
	DriverID   int64          `db:"driver_id"`
	PlannedAt  time.Time      `db:"planned_at"`
	Status     string         `db:"status"`
	RouteHint  sql.NullString `db:"route_hint"`
	Comment    sql.NullString `db:"comment"`
	StartedAt  time.Time      `db:"started_at"`
	FinishedAt sql.NullTime   `db:"finished_at"`
}

type ShipmentOrder struct {
	LinkID     int64 `db:"link_id"`
	ShipmentID int64 `db:"shipment_id"`
	OrderID    int64 `db:"order_id"`
}

type User struct {
	UserID       int64          `db:"user_id"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	Phone        string         `db:"phone"`
	FirstName    sql.NullString `db:"first_name"`
	SecondName   sql.NullString `db:"second_name"`
	LastName     sql.NullString `db:"last_name"`
	Role         string         `db:"role"`
	CreatedAt    time.Time      `db:"created_at"`
}

type ProductVariant struct {
	VariantID    int64          `db:"variant_id"`
	ProductID    int64          `db:"product_id"`
	ProductName  string         `db:"product_name"`
	MaterialID   int64          `db:"material_id"`
	MaterialName string         `db:"material_name"`
	SKU          sql.NullString `db:"sku"`
	Price        int64          `db:"price"`
	Active       bool           `db:"active"`
}

func OrderToEntity(o Order, items []OrderItem, shop *Shop, addr *Address) entities.Order {
	order := entities.Order{
		ID:            o.OrderID,
		CreatedAt:     o.CreatedAt,
		Status:        entities.OrderStatus(o.Status),
		DeliveryType:  entities.DeliveryType(o.DeliveryType),
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		CustomerEmail: nullStringToString(o.CustomerEmail),
		Note:          nullStringToString(o.Note),
		TotalAmount:   o.TotalAmount,
	}

	if o.FactoryWorkerID.Valid {
		id := o.FactoryWorkerID.Int64
		order.FactoryWorkerID = &id
	}
	if o.CustomerID.Valid {
		id := o.CustomerID.Int64
		order.CustomerID = &id
	}
	if shop != nil {
		s := ShopToEntity(*shop)
		order.Shop = &s
	}
	if addr != nil {
		a := AddressToEntity(*addr)
		order.Address = &a
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	item := entities.OrderItem{
		ID:               i.ItemID,
		ProductVariantID: i.VariantID,
		Quantity:         i.Quantity,
		IsFromShopStock:  i.IsFromShopStock,
		UnitPrice:        i.UnitPrice,
	}

	if i.ProductID.Valid {
		item.Variant = &entities.ProductVariant{
			ID:           i.VariantID,
			ProductID:    i.ProductID.Int64,
			ProductName:  nullStringToString(i.ProductName),
			MaterialID:   i.MaterialID.Int64,
			MaterialName: nullStringToString(i.MaterialName),
			SKU:          nullStringToString(i.SKU),
			Price:        i.VariantPrice.Int64,
			Active:       true,
		}
	}

	return item
}

func ShopToEntity(s Shop) entities.Shop {
	return entities.Shop{
		ID:     s.ShopID,
		Name:   nullStringToString(s.Name),
		City:   s.City,
		Street: s.Street,
		Phone:  nullStringToString(s.Phone),
		Email:  nullStringToString(s.Email),
	}
}

func AddressToEntity(a Address) entities.Address {
	return entities.Address{
		ID:          a.AddressID,
		City:        a.City,
		Street:      a.Street,
		HouseNumber: nullStringToString(a.HouseNumber),
		Apartment:   nullStringToString(a.Apartment),
		Entrance:    nullStringToString(a.Entrance),
		Floor:       nullStringToString(a.Floor),
		Comment:     nullStringToString(a.Comment),
	}
}

func ShipmentToEntity(s Shipment) entities.Shipment {
	shipment := entities.Shipment{
		ID:        s.ShipmentID,
		DriverID:  s.DriverID,
		PlannedAt: s.PlannedAt,
		Status:    entities.ShipmentStatus(s.Status),
		RouteHint: nullStringToString(s.RouteHint),
		Comment:   nullStringToString(s.Comment),
		StartedAt: s.StartedAt,
	}
	if s.FinishedAt.Valid {
		t := s.FinishedAt.Time
		shipment.FinishedAt = &t
	}
	return shipment
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:           u.UserID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Phone:        u.Phone,
		FirstName:    nullStringToString(u.FirstName),
		SecondName:   nullStringToString(u.SecondName),
		LastName:     nullStringToString(u.LastName),
		Role:         entities.Role(u.Role),
		CreatedAt:    u.CreatedAt,
	}
}

func VariantToEntity(v ProductVariant) entities.ProductVariant {
	return entities.ProductVariant{
		ID:           v.VariantID,
		ProductID:    v.ProductID,
		ProductName:  v.ProductName,
		MaterialID:   v.MaterialID,
		MaterialName: v.MaterialName,
		SKU:          nullStringToString(v.SKU),
		Price:        v.Price,
		Active:       v.Active,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt64(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
