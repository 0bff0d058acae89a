package repository

import (
	"context"

	"github.com/ecofinds/marketplace/internal/domain/entity"
)

// ProductRepository stores the marketplace catalog. ListAll and ListByUser
// return products in creation order; presentation layers may re-sort, the
// canonical order is creation order.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, productID string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, productID string) error
	ListByUser(ctx context.Context, userID string) ([]entity.Product, error)
	ListAll(ctx context.Context) ([]entity.Product, error)
}
