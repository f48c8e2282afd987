package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/linemk/shop-orders/internal/lib/api/response"
	"github.com/linemk/shop-orders/internal/service"
)

// CreateProductRequest - тело POST /products.
// price встречается в старых клиентах, salePrice - в новых; храним оба.
type CreateProductRequest struct {
	Name      string   `json:"name" validate:"required"`
	MRP       *float64 `json:"mrp" validate:"required"`
	Price     *float64 `json:"price"`
	SalePrice *float64 `json:"salePrice"`
}

// ListProductsHandler обрабатывает запрос GET /products
func ListProductsHandler(log *slog.Logger, productService service.ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ListProductsHandler"
		logger := log.With(slog.String("op", op))

		products, err := productService.ListProducts(r.Context())
		if err != nil {
			logger.Error("failed to list products", slog.Any("error", err))
			response.Error(w, logger, http.StatusInternalServerError, "internal server error")
			return
		}

		response.JSON(w, logger, http.StatusOK, products)
	}
}

// CreateProductHandler обрабатывает запрос POST /products
func CreateProductHandler(log *slog.Logger, productService service.ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.CreateProductHandler"
		logger := log.With(slog.String("op", op))

		var req CreateProductRequest
		if err := decodeJSON(r, &req); err != nil {
			logger.Error("invalid request: decoding error", slog.Any("error", err))
			response.Error(w, logger, http.StatusBadRequest, "invalid request")
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		if err := validate.Struct(req); err != nil {
			logger.Error("invalid request: validation error", slog.Any("error", err))
			response.Error(w, logger, http.StatusBadRequest, validationMessage(err))
			return
		}

		product, err := productService.CreateProduct(r.Context(), service.ProductInput{
			Name:      req.Name,
			MRP:       *req.MRP,
			Price:     req.Price,
			SalePrice: req.SalePrice,
		})
		if err != nil {
			logger.Error("failed to create product", slog.Any("error", err))
			response.Error(w, logger, http.StatusInternalServerError, "internal server error")
			return
		}

		response.JSON(w, logger, http.StatusCreated, product)
	}
}
