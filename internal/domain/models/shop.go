package models

import "time"

// Shop представляет магазин, который оформляет заказы
type Shop struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
