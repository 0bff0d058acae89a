package repository

import (
	"context"
	"time"

	"github.com/ecofinds/marketplace/internal/domain/entity"
)

// CartRepository stores one cart per user. GetByUserID returns a fresh empty
// cart when none is stored yet, never ErrNotFound: an absent cart and an empty
// cart are the same thing to a buyer.
type CartRepository interface {
	GetByUserID(ctx context.Context, userID string) (*entity.Cart, error)
	Save(ctx context.Context, cart *entity.Cart, ttl time.Duration) error
	DeleteByUserID(ctx context.Context, userID string) error
}
