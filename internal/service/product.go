package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/linemk/shop-orders/internal/domain/models"
	"github.com/linemk/shop-orders/internal/storage"
)

// ProductInput - данные нового товара
type ProductInput struct {
	Name      string
	MRP       float64
	Price     *float64
	SalePrice *float64
}

// ProductService определяет интерфейс для работы с каталогом.
type ProductService interface {
	ListProducts(ctx context.Context) ([]*models.Product, error)
	CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error)
}

type productService struct {
	log         *slog.Logger
	productRepo storage.ProductStorage
}

func NewProductService(log *slog.Logger, productRepo storage.ProductStorage) ProductService {
	return &productService{
		log:         log,
		productRepo: productRepo,
	}
}

func (s *productService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	const op = "service.ProductService.ListProducts"

	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.log.Error("failed to list products", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return products, nil
}

// CreateProduct сохраняет товар; price и salePrice пишутся как есть, без объединения
func (s *productService) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	const op = "service.ProductService.CreateProduct"
	logger := s.log.With(slog.String("op", op), slog.String("name", in.Name))

	product, err := s.productRepo.CreateProduct(ctx, &models.Product{
		ID:        uuid.NewString(),
		Name:      in.Name,
		MRP:       in.MRP,
		Price:     in.Price,
		SalePrice: in.SalePrice,
	})
	if err != nil {
		logger.Error("failed to create product", slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to create product: %w", op, err)
	}

	logger.Info("product created", slog.String("productID", product.ID))
	return product, nil
}
