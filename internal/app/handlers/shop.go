package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/linemk/shop-orders/internal/lib/api/response"
	"github.com/linemk/shop-orders/internal/service"
)

// CreateShopRequest - тело POST /shops
type CreateShopRequest struct {
	Name string `json:"name" validate:"required"`
}

// ListShopsHandler обрабатывает запрос GET /shops
func ListShopsHandler(log *slog.Logger, shopService service.ShopService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ListShopsHandler"
		logger := log.With(slog.String("op", op))

		shops, err := shopService.ListShops(r.Context())
		if err != nil {
			logger.Error("failed to list shops", slog.Any("error", err))
			response.Error(w, logger, http.StatusInternalServerError, "internal server error")
			return
		}

		response.JSON(w, logger, http.StatusOK, shops)
	}
}

// CreateShopHandler обрабатывает запрос POST /shops
func CreateShopHandler(log *slog.Logger, shopService service.ShopService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.CreateShopHandler"
		logger := log.With(slog.String("op", op))

		var req CreateShopRequest
		if err := decodeJSON(r, &req); err != nil {
			logger.Error("invalid request: decoding error", slog.Any("error", err))
			response.Error(w, logger, http.StatusBadRequest, "invalid request")
			return
		}

		// имя из одних пробелов считаем отсутствующим
		req.Name = strings.TrimSpace(req.Name)
		if err := validate.Struct(req); err != nil {
			logger.Error("invalid request: validation error", slog.Any("error", err))
			response.Error(w, logger, http.StatusBadRequest, validationMessage(err))
			return
		}

		shop, err := shopService.CreateShop(r.Context(), req.Name)
		if err != nil {
			logger.Error("failed to create shop", slog.Any("error", err))
			response.Error(w, logger, http.StatusInternalServerError, "internal server error")
			return
		}

		response.JSON(w, logger, http.StatusCreated, shop)
	}
}
