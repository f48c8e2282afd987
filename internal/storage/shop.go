package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/linemk/shop-orders/internal/domain/models"
)

// ShopStorage описывает методы для работы с магазинами.
type ShopStorage interface {
	// ListShops возвращает все магазины, отсортированные по имени.
	ListShops(ctx context.Context) ([]*models.Shop, error)
	// CreateShop сохраняет магазин и возвращает его с датой создания.
	CreateShop(ctx context.Context, shop *models.Shop) (*models.Shop, error)
}

type shopRepository struct {
	db *sqlx.DB
}

// NewShopRepository создаёт новый репозиторий магазинов.
func NewShopRepository(db *sqlx.DB) ShopStorage {
	return &shopRepository{db: db}
}

func (r *shopRepository) ListShops(ctx context.Context) ([]*models.Shop, error) {
	shops := []*models.Shop{}
	query := "SELECT id, name, created_at FROM shops ORDER BY name ASC"
	if err := r.db.SelectContext(ctx, &shops, query); err != nil {
		return nil, fmt.Errorf("failed to query shops: %w", err)
	}
	return shops, nil
}

func (r *shopRepository) CreateShop(ctx context.Context, shop *models.Shop) (*models.Shop, error) {
	created := &models.Shop{}
	query := `INSERT INTO shops (id, name, created_at) VALUES ($1, $2, NOW())
	          RETURNING id, name, created_at`
	if err := r.db.GetContext(ctx, created, query, shop.ID, shop.Name); err != nil {
		return nil, fmt.Errorf("failed to create shop: %w", err)
	}
	return created, nil
}
