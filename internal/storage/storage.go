package storage

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidStatus - БД отклонила статус по ограничению orders_status_check
	ErrInvalidStatus = errors.New("invalid order status")
)

// коды ошибок postgres
const (
	pqCheckViolation      = "23514"
	pqInvalidTextEncoding = "22P02"
)

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
