package entities

import "errors"

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrUnauthorized    = errors.New("unauthorized")

	ErrOrderNotFound    = errors.New("order not found")
	ErrShipmentNotFound = errors.New("shipment not found")
	ErrVariantNotFound  = errors.New("product variant not found")
	ErrUserNotFound     = errors.New("user not found")

	// ErrInvalidTransition - запрошенный переход статуса отсутствует в таблице переходов
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrClaimConflict - проигрыш гонки за заказ, первый писатель победил
	ErrClaimConflict = errors.New("order already claimed")

	ErrInvalidOrder  = errors.New("invalid order")
	ErrInvalidAction = errors.New("invalid action")
	ErrEmailTaken    = errors.New("email already registered")
	ErrInvalidCreds  = errors.New("invalid credentials")
)
