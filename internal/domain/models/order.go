package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// OrderStatus - статус заказа, допустимы только три значения
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

// Order представляет заказ магазина. Имя магазина и данные товаров
// копируются в заказ на момент оформления.
type Order struct {
	ID          string      `json:"id" db:"id"`
	ShopID      string      `json:"shopId" db:"shop_id"`
	ShopName    string      `json:"shopName" db:"shop_name"`
	Items       LineItems   `json:"items" db:"items"`
	TotalAmount float64     `json:"totalAmount" db:"total_amount"`
	Status      OrderStatus `json:"status" db:"status"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
}

// LineItem - позиция заказа, отдельно от заказа не существует
type LineItem struct {
	ProductID   *string `json:"productId"`
	ProductName *string `json:"productName,omitempty"`
	MRP         float64 `json:"mrp"`
	Price       float64 `json:"price"`
	Qty         float64 `json:"qty"`
	LineTotal   float64 `json:"lineTotal"`
	Note        string  `json:"note"`
}

// LineItems хранится в колонке jsonb как один документ
type LineItems []LineItem

// Value реализует driver.Valuer
func (li LineItems) Value() (driver.Value, error) {
	if li == nil {
		return []byte("[]"), nil
	}
	b, err := json.Marshal([]LineItem(li))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal line items: %w", err)
	}
	return b, nil
}

// Scan реализует sql.Scanner
func (li *LineItems) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*li = LineItems{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for line items")
	}

	items := LineItems{}
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to unmarshal line items: %w", err)
	}
	*li = items
	return nil
}
