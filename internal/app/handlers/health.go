package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/linemk/shop-orders/internal/lib/api/response"
)

// Pinger - проверка доступности хранилища
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthResponse struct {
	Status string `json:"status"`
}

// HealthHandler обрабатывает запрос GET /healthz
func HealthHandler(log *slog.Logger, db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.HealthHandler"
		logger := log.With(slog.String("op", op))

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Error("database is unavailable", slog.Any("error", err))
			response.JSON(w, logger, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}

		response.JSON(w, logger, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
