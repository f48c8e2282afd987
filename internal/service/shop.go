package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/linemk/shop-orders/internal/domain/models"
	"github.com/linemk/shop-orders/internal/storage"
)

// ShopService определяет интерфейс для работы с магазинами.
type ShopService interface {
	ListShops(ctx context.Context) ([]*models.Shop, error)
	CreateShop(ctx context.Context, name string) (*models.Shop, error)
}

type shopService struct {
	log      *slog.Logger
	shopRepo storage.ShopStorage
}

func NewShopService(log *slog.Logger, shopRepo storage.ShopStorage) ShopService {
	return &shopService{
		log:      log,
		shopRepo: shopRepo,
	}
}

func (s *shopService) ListShops(ctx context.Context) ([]*models.Shop, error) {
	const op = "service.ShopService.ListShops"

	shops, err := s.shopRepo.ListShops(ctx)
	if err != nil {
		s.log.Error("failed to list shops", slog.String("op", op), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return shops, nil
}

// CreateShop создаёт магазин. Имя уже проверено и обрезано на транспортном слое.
func (s *shopService) CreateShop(ctx context.Context, name string) (*models.Shop, error) {
	const op = "service.ShopService.CreateShop"
	logger := s.log.With(slog.String("op", op), slog.String("name", name))

	shop, err := s.shopRepo.CreateShop(ctx, &models.Shop{
		ID:   uuid.NewString(),
		Name: name,
	})
	if err != nil {
		logger.Error("failed to create shop", slog.Any("error", err))
		return nil, fmt.Errorf("%s: failed to create shop: %w", op, err)
	}

	logger.Info("shop created", slog.String("shopID", shop.ID))
	return shop, nil
}
