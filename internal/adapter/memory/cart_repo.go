package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ecofinds/marketplace/internal/domain/entity"
	"github.com/ecofinds/marketplace/internal/repository"
)

// CartRepository keeps one cart per user in memory. Carts are stored and
// returned as deep copies, so two sessions can never alias each other's
// collection; the mutex is the single-writer guard for the map itself.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string]entity.Cart
}

func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[string]entity.Cart)}
}

var _ repository.CartRepository = (*CartRepository)(nil)

func cloneCart(c entity.Cart) entity.Cart {
	cp := c
	cp.Lines = make([]entity.CartLine, len(c.Lines))
	for i, l := range c.Lines {
		l.Product = cloneProduct(l.Product)
		cp.Lines[i] = l
	}
	return cp
}

func (r *CartRepository) GetByUserID(_ context.Context, userID string) (*entity.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.carts[userID]
	if !ok {
		return entity.NewCart(userID), nil
	}
	cp := cloneCart(c)
	return &cp, nil
}

// Save stores the cart. The TTL parameter only matters to stores that expire
// abandoned carts; an in-memory cart lives as long as the process.
func (r *CartRepository) Save(_ context.Context, cart *entity.Cart, _ time.Duration) error {
	if cart == nil || cart.UserID == "" {
		return errors.New("cannot save nil cart or cart with empty userID")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cart.UpdatedAt = time.Now().UTC()
	r.carts[cart.UserID] = cloneCart(*cart)
	return nil
}

func (r *CartRepository) DeleteByUserID(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, userID)
	return nil
}
