package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/linemk/shop-orders/internal/domain/models"
)

// ProductStorage описывает методы для работы с товарами.
type ProductStorage interface {
	ListProducts(ctx context.Context) ([]*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
}

type productRepository struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) ProductStorage {
	return &productRepository{db: db}
}

// ListProducts возвращает товары по имени по возрастанию
func (r *productRepository) ListProducts(ctx context.Context) ([]*models.Product, error) {
	products := []*models.Product{}
	query := "SELECT id, name, mrp, price, sale_price, created_at FROM products ORDER BY name ASC"
	if err := r.db.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	return products, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	created := &models.Product{}
	query := `INSERT INTO products (id, name, mrp, price, sale_price, created_at)
	          VALUES ($1, $2, $3, $4, $5, NOW())
	          RETURNING id, name, mrp, price, sale_price, created_at`
	err := r.db.GetContext(ctx, created, query,
		product.ID, product.Name, product.MRP, product.Price, product.SalePrice,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return created, nil
}
