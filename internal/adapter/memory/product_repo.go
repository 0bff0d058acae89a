package memory

import (
	"context"
	"sync"

	"github.com/ecofinds/marketplace/internal/domain/entity"
	"github.com/ecofinds/marketplace/internal/repository"
)

// ProductRepository is a process-local catalog store. A single mutex guards
// the collection; insertion order is tracked explicitly so listings come back
// in creation order.
type ProductRepository struct {
	mu    sync.RWMutex
	byID  map[string]entity.Product
	order []string
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		byID:  make(map[string]entity.Product),
		order: make([]string, 0),
	}
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

func cloneProduct(p entity.Product) entity.Product {
	cp := p
	cp.Images = append([]string(nil), p.Images...)
	return cp
}

func (r *ProductRepository) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[product.ID]; ok {
		return repository.ErrAlreadyExists
	}
	r.byID[product.ID] = cloneProduct(*product)
	r.order = append(r.order, product.ID)
	return nil
}

func (r *ProductRepository) GetByID(_ context.Context, productID string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[productID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := cloneProduct(p)
	return &cp, nil
}

func (r *ProductRepository) Update(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[product.ID]; !ok {
		return repository.ErrNotFound
	}
	r.byID[product.ID] = cloneProduct(*product)
	return nil
}

func (r *ProductRepository) Delete(_ context.Context, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[productID]; !ok {
		return repository.ErrNotFound
	}
	delete(r.byID, productID)
	for i, id := range r.order {
		if id == productID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *ProductRepository) ListByUser(_ context.Context, userID string) ([]entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Product, 0)
	for _, id := range r.order {
		if p := r.byID[id]; p.UserID == userID {
			out = append(out, cloneProduct(p))
		}
	}
	return out, nil
}

func (r *ProductRepository) ListAll(_ context.Context) ([]entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneProduct(r.byID[id]))
	}
	return out, nil
}
