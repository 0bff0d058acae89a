package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ecofinds/marketplace/internal/domain/entity"
	"github.com/ecofinds/marketplace/internal/repository"
)

type PurchaseRepository struct {
	mu   sync.RWMutex
	byID map[string]entity.Purchase
}

func NewPurchaseRepository() *PurchaseRepository {
	return &PurchaseRepository{byID: make(map[string]entity.Purchase)}
}

var _ repository.PurchaseRepository = (*PurchaseRepository)(nil)

func clonePurchase(p entity.Purchase) entity.Purchase {
	cp := p
	cp.Products = make([]entity.Product, len(p.Products))
	for i, prod := range p.Products {
		cp.Products[i] = cloneProduct(prod)
	}
	return cp
}

func (r *PurchaseRepository) Create(_ context.Context, purchase *entity.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[purchase.ID]; ok {
		return repository.ErrAlreadyExists
	}
	r.byID[purchase.ID] = clonePurchase(*purchase)
	return nil
}

func (r *PurchaseRepository) GetByID(_ context.Context, purchaseID string) (*entity.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[purchaseID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := clonePurchase(p)
	return &cp, nil
}

func (r *PurchaseRepository) Update(_ context.Context, purchase *entity.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[purchase.ID]; !ok {
		return repository.ErrNotFound
	}
	r.byID[purchase.ID] = clonePurchase(*purchase)
	return nil
}

func (r *PurchaseRepository) ListByUser(_ context.Context, userID string) ([]entity.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Purchase, 0)
	for _, p := range r.byID {
		if p.UserID == userID {
			out = append(out, clonePurchase(p))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PurchaseDate.After(out[j].PurchaseDate)
	})
	return out, nil
}
