package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/linemk/shop-orders/internal/domain/models"
)

// OrderFilter - фильтры списка заказов, пустое поле не фильтрует
type OrderFilter struct {
	ShopID string
	Status string
}

// OrderStorage описывает методы для работы с заказами.
// Блокировок и проверки версий нет: последняя запись побеждает.
type OrderStorage interface {
	// CreateOrder вставляет новый заказ вместе с позициями.
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	// GetOrderByID возвращает заказ по идентификатору.
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
	// ListOrders возвращает заказы по фильтру, новые первыми.
	ListOrders(ctx context.Context, filter OrderFilter) ([]*models.Order, error)
	// ReplaceOrder перезаписывает магазин, позиции и сумму. Статус не трогает.
	ReplaceOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	// UpdateOrderStatus меняет только статус.
	UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error)
	// DeleteOrder удаляет заказ и возвращает число удалённых записей.
	DeleteOrder(ctx context.Context, id string) (int64, error)
}

type orderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository создаёт новый репозиторий заказов.
func NewOrderRepository(db *sqlx.DB) OrderStorage {
	return &orderRepository{db: db}
}

const orderColumns = "id, shop_id, shop_name, items, total_amount, status, created_at"

func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	created := &models.Order{}
	query := `INSERT INTO orders (id, shop_id, shop_name, items, total_amount, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, NOW())
	          RETURNING ` + orderColumns
	err := r.db.GetContext(ctx, created, query,
		order.ID, order.ShopID, order.ShopName, order.Items, order.TotalAmount, order.Status,
	)
	if err != nil {
		if pqCode(err) == pqCheckViolation {
			return nil, ErrInvalidStatus
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return created, nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	order := &models.Order{}
	query := "SELECT " + orderColumns + " FROM orders WHERE id = $1"
	if err := r.db.GetContext(ctx, order, query, id); err != nil {
		return nil, notFound(err)
	}
	return order, nil
}

func (r *orderRepository) ListOrders(ctx context.Context, filter OrderFilter) ([]*models.Order, error) {
	var (
		conds []string
		args  []any
	)
	if filter.ShopID != "" {
		args = append(args, filter.ShopID)
		conds = append(conds, fmt.Sprintf("shop_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	query := "SELECT " + orderColumns + " FROM orders"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	orders := []*models.Order{}
	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) ReplaceOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	updated := &models.Order{}
	query := `UPDATE orders SET shop_id = $2, shop_name = $3, items = $4, total_amount = $5
	          WHERE id = $1
	          RETURNING ` + orderColumns
	err := r.db.GetContext(ctx, updated, query,
		order.ID, order.ShopID, order.ShopName, order.Items, order.TotalAmount,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return updated, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	updated := &models.Order{}
	query := "UPDATE orders SET status = $2 WHERE id = $1 RETURNING " + orderColumns
	if err := r.db.GetContext(ctx, updated, query, id, status); err != nil {
		if pqCode(err) == pqCheckViolation {
			return nil, ErrInvalidStatus
		}
		return nil, notFound(err)
	}
	return updated, nil
}

func (r *orderRepository) DeleteOrder(ctx context.Context, id string) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		// невалидный uuid не может совпасть ни с одной записью
		if pqCode(err) == pqInvalidTextEncoding {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to delete order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to delete order: %w", err)
	}
	return affected, nil
}

// notFound сводит отсутствие строки и невалидный идентификатор к ErrOrderNotFound
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) || pqCode(err) == pqInvalidTextEncoding {
		return ErrOrderNotFound
	}
	return err
}
