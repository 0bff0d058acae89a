package repository

import (
	"context"

	"github.com/ecofinds/marketplace/internal/domain/entity"
)

// PurchaseRepository stores completed orders. ListByUser returns a buyer's
// purchases newest-first.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	GetByID(ctx context.Context, purchaseID string) (*entity.Purchase, error)
	Update(ctx context.Context, purchase *entity.Purchase) error
	ListByUser(ctx context.Context, userID string) ([]entity.Purchase, error)
}
