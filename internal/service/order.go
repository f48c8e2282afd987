package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/linemk/shop-orders/internal/domain/models"
	"github.com/linemk/shop-orders/internal/domain/orders"
	"github.com/linemk/shop-orders/internal/lib/metrics"
	"github.com/linemk/shop-orders/internal/storage"
)

// OrderInput - тело создания и полной замены заказа.
// Наличие shopId и непустой список позиций проверяет вызывающий слой.
type OrderInput struct {
	ShopID   string
	ShopName string
	Items    []orders.RawLineItem
}

// OrderService определяет интерфейс для работы с заказами.
type OrderService interface {
	CreateOrder(ctx context.Context, in OrderInput) (*models.Order, error)
	ReplaceOrder(ctx context.Context, id string, in OrderInput) (*models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	ListOrders(ctx context.Context, filter storage.OrderFilter) ([]*models.Order, error)
	ChangeStatus(ctx context.Context, id string, status string) (*models.Order, error)
	DeleteOrder(ctx context.Context, id string) (int64, error)
}

type orderService struct {
	log       *slog.Logger
	orderRepo storage.OrderStorage
}

func NewOrderService(log *slog.Logger, orderRepo storage.OrderStorage) OrderService {
	return &orderService{
		log:       log,
		orderRepo: orderRepo,
	}
}

// CreateOrder нормализует позиции, считает сумму и сохраняет заказ в статусе Pending
func (s *orderService) CreateOrder(ctx context.Context, in OrderInput) (*models.Order, error) {
	const op = "service.OrderService.CreateOrder"
	logger := s.log.With(slog.String("op", op), slog.String("shopID", in.ShopID))

	priced := orders.Price(in.Items)

	order, err := s.orderRepo.CreateOrder(ctx, &models.Order{
		ID:          uuid.NewString(),
		ShopID:      in.ShopID,
		ShopName:    in.ShopName,
		Items:       priced.Items,
		TotalAmount: priced.TotalAmount,
		Status:      orders.InitialStatus,
	})
	if err != nil {
		logger.Error("failed to create order", slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to create order: %w", op, err)
	}

	metrics.RecordOrderCreated()
	logger.Info("order created",
		slog.String("orderID", order.ID),
		slog.Int("items", len(order.Items)),
		slog.Float64("totalAmount", order.TotalAmount),
	)
	return order, nil
}

// ReplaceOrder заново нормализует позиции и перезаписывает магазин, позиции и сумму.
// Статус остаётся прежним.
func (s *orderService) ReplaceOrder(ctx context.Context, id string, in OrderInput) (*models.Order, error) {
	const op = "service.OrderService.ReplaceOrder"
	logger := s.log.With(slog.String("op", op), slog.String("orderID", id))

	priced := orders.Price(in.Items)

	order, err := s.orderRepo.ReplaceOrder(ctx, &models.Order{
		ID:          id,
		ShopID:      in.ShopID,
		ShopName:    in.ShopName,
		Items:       priced.Items,
		TotalAmount: priced.TotalAmount,
	})
	if err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			logger.Warn("order not found")
		} else {
			logger.Error("failed to replace order", slog.Any("error", err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	logger.Info("order replaced", slog.Float64("totalAmount", order.TotalAmount))
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	const op = "service.OrderService.GetOrder"

	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		if !errors.Is(err, storage.ErrOrderNotFound) {
			s.log.Error("failed to get order", slog.String("op", op), slog.Any("error", err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, filter storage.OrderFilter) ([]*models.Order, error) {
	const op = "service.OrderService.ListOrders"

	list, err := s.orderRepo.ListOrders(ctx, filter)
	if err != nil {
		s.log.Error("failed to list orders",
			slog.String("op", op),
			slog.String("shopID", filter.ShopID),
			slog.String("status", filter.Status),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

// ChangeStatus проверяет новый статус и сохраняет его.
// Переход разрешён из любого статуса в любой; текущий статус не читается.
func (s *orderService) ChangeStatus(ctx context.Context, id string, status string) (*models.Order, error) {
	const op = "service.OrderService.ChangeStatus"
	logger := s.log.With(slog.String("op", op), slog.String("orderID", id), slog.String("status", status))

	target, err := orders.ParseStatus(status)
	if err != nil {
		logger.Warn("rejected status change")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	order, err := s.orderRepo.UpdateOrderStatus(ctx, id, target)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidStatus):
			return nil, fmt.Errorf("%s: %w", op, orders.ErrInvalidStatus)
		case errors.Is(err, storage.ErrOrderNotFound):
			logger.Warn("order not found")
		default:
			logger.Error("failed to update status", slog.Any("error", err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.RecordStatusChange(string(target))
	logger.Info("order status changed")
	return order, nil
}

// DeleteOrder удаляет заказ и возвращает число удалённых записей (0 или 1)
func (s *orderService) DeleteOrder(ctx context.Context, id string) (int64, error) {
	const op = "service.OrderService.DeleteOrder"
	logger := s.log.With(slog.String("op", op), slog.String("orderID", id))

	deleted, err := s.orderRepo.DeleteOrder(ctx, id)
	if err != nil {
		logger.Error("failed to delete order", slog.Any("error", err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	logger.Info("order delete processed", slog.Int64("deleted", deleted))
	return deleted, nil
}
