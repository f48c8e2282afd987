package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse - тело любой ошибки
type ErrorResponse struct {
	Message string `json:"message"`
}

// JSON пишет статус и тело в формате json.
// Тело сериализуется до отправки заголовков, чтобы при ошибке успеть ответить 500.
func JSON(w http.ResponseWriter, log *slog.Logger, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error("failed to encode response", slog.Any("error", err))
		status = http.StatusInternalServerError
		body, _ = json.Marshal(ErrorResponse{Message: "internal server error"})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		log.Error("failed to write response", slog.Any("error", err))
	}
}

// Error пишет ошибку с человекочитаемым сообщением
func Error(w http.ResponseWriter, log *slog.Logger, status int, msg string) {
	JSON(w, log, status, ErrorResponse{Message: msg})
}
