package entities

// ProductVariant - продаваемая позиция каталога: продукт + материал + SKU + цена.
// С точки зрения workflow неизменяема, кроме флага Active.
type ProductVariant struct {
	ID           int64
	ProductID    int64
	ProductName  string
	MaterialID   int64
	MaterialName string
	SKU          string

	// Price в копейках
	Price  int64
	Active bool
}

type Shop struct {
	ID     int64
	Name   string
	City   string
	Street string
	Phone  string
	Email  string
}

type Address struct {
	ID          int64
	City        string
	Street      string
	HouseNumber string
	Apartment   string
	Entrance    string
	Floor       string
	Comment     string
}
