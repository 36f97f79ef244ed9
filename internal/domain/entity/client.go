package entity

import "time"

// Client representa un cliente (contacto) de un usuario. Todo salvo Name es opcional.
type Client struct {
	ID        string
	UserID    string
	Name      string
	Email     *string
	Phone     *string
	Company   *string
	Address   *string
	City      *string
	State     *string
	ZipCode   *string
	Country   *string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
