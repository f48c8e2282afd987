package models

import "time"

// Product представляет товар каталога.
// Price - поле цены со скидкой из старых записей, SalePrice - из новых.
// Оба поля независимы и не сводятся друг к другу.
type Product struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	MRP       float64   `json:"mrp" db:"mrp"`
	Price     *float64  `json:"price,omitempty" db:"price"`
	SalePrice *float64  `json:"salePrice,omitempty" db:"sale_price"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
