package orders

import (
	"errors"
	"fmt"

	"github.com/linemk/shop-orders/internal/domain/models"
)

var ErrInvalidStatus = errors.New("invalid order status")

// Statuses - все допустимые статусы заказа
var Statuses = []models.OrderStatus{
	models.StatusPending,
	models.StatusDelivered,
	models.StatusCancelled,
}

// InitialStatus - статус нового заказа
const InitialStatus = models.StatusPending

// ParseStatus проверяет, что значение - ровно один из допустимых статусов.
// Сравнение чувствительно к регистру.
func ParseStatus(s string) (models.OrderStatus, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}
