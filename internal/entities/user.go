package entities

import "time"

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Phone        string
	FirstName    string
	SecondName   string
	LastName     string
	Role         Role
	CreatedAt    time.Time
}

// UserUpdate - частичное обновление профиля, nil-поля не трогаются.
type UserUpdate struct {
	Phone      *string
	FirstName  *string
	SecondName *string
	LastName   *string
}
