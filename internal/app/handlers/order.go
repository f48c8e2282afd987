package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/linemk/shop-orders/internal/domain/orders"
	"github.com/linemk/shop-orders/internal/lib/api/response"
	"github.com/linemk/shop-orders/internal/service"
	"github.com/linemk/shop-orders/internal/storage"
)

// OrderRequest - тело POST /orders и PUT /orders/{id}.
// Позиции принимаются как есть и нормализуются в сервисе.
type OrderRequest struct {
	ShopID   string               `json:"shopId" validate:"required"`
	ShopName string               `json:"shopName"`
	Items    []orders.RawLineItem `json:"items" validate:"required,min=1"`
}

// StatusRequest - тело PATCH /orders/{id}/status
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// DeleteResponse сообщает, сколько записей удалено
type DeleteResponse struct {
	DeletedCount int64  `json:"deletedCount"`
	Message      string `json:"message,omitempty"`
}

const (
	msgOrderNotFound = "order not found"
	msgInvalidStatus = "status must be one of Pending, Delivered, Cancelled"
	msgInternal      = "internal server error"
)

// CreateOrderHandler обрабатывает запрос POST /orders
func CreateOrderHandler(log *slog.Logger, orderService service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.CreateOrderHandler"
		logger := log.With(slog.String("op", op))

		req, ok := decodeOrderRequest(w, r, logger)
		if !ok {
			return
		}

		order, err := orderService.CreateOrder(r.Context(), service.OrderInput{
			ShopID:   req.ShopID,
			ShopName: req.ShopName,
			Items:    req.Items,
		})
		if err != nil {
			logger.Error("failed to create order", slog.Any("error", err))
			response.Error(w, logger, http.StatusInternalServerError, msgInternal)
			return
		}

		response.JSON(w, logger, http.StatusCreated, order)
	}
}

// ReplaceOrderHandler обрабатывает запрос PUT /orders/{id}
func ReplaceOrderHandler(log *slog.Logger, orderService service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ReplaceOrderHandler"
		id := chi.URLParam(r, "id")
		logger := log.With(slog.String("op", op), slog.String("orderID", id))

		req, ok := decodeOrderRequest(w, r, logger)
		if !ok {
			return
		}

		order, err := orderService.ReplaceOrder(r.Context(), id, service.OrderInput{
			ShopID:   req.ShopID,
			ShopName: req.ShopName,
			Items:    req.Items,
		})
		if err != nil {
			writeOrderError(w, logger, err)
			return
		}

		response.JSON(w, logger, http.StatusOK, order)
	}
}

// GetOrderHandler обрабатывает запрос GET /orders/{id}
func GetOrderHandler(log *slog.Logger, orderService service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.GetOrderHandler"
		id := chi.URLParam(r, "id")
		logger := log.With(slog.String("op", op), slog.String("orderID", id))

		order, err := orderService.GetOrder(r.Context(), id)
		if err != nil {
			writeOrderError(w, logger, err)
			return
		}

		response.JSON(w, logger, http.StatusOK, order)
	}
}

// ListOrdersHandler обрабатывает запрос GET /orders?shopId=&status=
func ListOrdersHandler(log *slog.Logger, orderService service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ListOrdersHandler"
		logger := log.With(slog.String("op", op))

		query := r.URL.Query()
		filter := storage.OrderFilter{
			ShopID: query.Get("shopId"),
			Status: query.Get("status"),
		}

		list, err := orderService.ListOrders(r.Context(), filter)
		if err != nil {
			logger.Error("failed to list orders", slog.Any("error", err))
			response.Error(w, logger, http.StatusInternalServerError, msgInternal)
			return
		}

		response.JSON(w, logger, http.StatusOK, list)
	}
}

// ChangeOrderStatusHandler обрабатывает запрос PATCH /orders/{id}/status
func ChangeOrderStatusHandler(log *slog.Logger, orderService service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ChangeOrderStatusHandler"
		id := chi.URLParam(r, "id")
		logger := log.With(slog.String("op", op), slog.String("orderID", id))

		var req StatusRequest
		if err := decodeJSON(r, &req); err != nil {
			logger.Error("invalid request: decoding error", slog.Any("error", err))
			response.Error(w, logger, http.StatusBadRequest, "invalid request")
			return
		}
		if err := validate.Struct(req); err != nil {
			logger.Error("invalid request: validation error", slog.Any("error", err))
			response.Error(w, logger, http.StatusBadRequest, validationMessage(err))
			return
		}

		order, err := orderService.ChangeStatus(r.Context(), id, req.Status)
		if err != nil {
			writeOrderError(w, logger, err)
			return
		}

		response.JSON(w, logger, http.StatusOK, order)
	}
}

// DeleteOrderHandler обрабатывает запрос DELETE /orders/{id}
func DeleteOrderHandler(log *slog.Logger, orderService service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.DeleteOrderHandler"
		id := chi.URLParam(r, "id")
		logger := log.With(slog.String("op", op), slog.String("orderID", id))

		deleted, err := orderService.DeleteOrder(r.Context(), id)
		if err != nil {
			logger.Error("failed to delete order", slog.Any("error", err))
			response.Error(w, logger, http.StatusInternalServerError, msgInternal)
			return
		}

		if deleted == 0 {
			response.JSON(w, logger, http.StatusNotFound, DeleteResponse{
				DeletedCount: 0,
				Message:      msgOrderNotFound,
			})
			return
		}

		response.JSON(w, logger, http.StatusOK, DeleteResponse{DeletedCount: deleted})
	}
}

func decodeOrderRequest(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*OrderRequest, bool) {
	var req OrderRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.Error("invalid request: decoding error", slog.Any("error", err))
		response.Error(w, logger, http.StatusBadRequest, "invalid request")
		return nil, false
	}

	if err := validate.Struct(req); err != nil {
		logger.Error("invalid request: validation error", slog.Any("error", err))
		response.Error(w, logger, http.StatusBadRequest, validationMessage(err))
		return nil, false
	}
	return &req, true
}

// writeOrderError выбирает код ответа по ошибке сервиса; детали 500 только в логах
func writeOrderError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, storage.ErrOrderNotFound):
		logger.Warn("order not found")
		response.Error(w, logger, http.StatusNotFound, msgOrderNotFound)
	case errors.Is(err, orders.ErrInvalidStatus):
		logger.Warn("invalid status", slog.Any("error", err))
		response.Error(w, logger, http.StatusBadRequest, msgInvalidStatus)
	default:
		logger.Error("order operation failed", slog.Any("error", err))
		response.Error(w, logger, http.StatusInternalServerError, msgInternal)
	}
}
