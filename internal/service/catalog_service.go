package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecofinds/marketplace/internal/domain/entity"
	"github.com/ecofinds/marketplace/internal/platform/logger"
	"github.com/ecofinds/marketplace/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

// CatalogService exposes the browsable product catalog. Search applies the
// free-text and category predicates over the stored collection, in creation
// order.
type CatalogService interface {
	Search(ctx context.Context, query, category string) ([]entity.Product, error)
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
	log         logger.Logger
}

func NewCatalogService(productRepo repository.ProductRepository, log logger.Logger) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		log:         log,
	}
}

func (s *catalogService) Search(ctx context.Context, query, category string) ([]entity.Product, error) {
	s.log.Debugf("CatalogService.Search: query=%q category=%q", query, category)

	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		s.log.Errorf("CatalogService.Search: failed to list products: %v", err)
		return nil, fmt.Errorf("could not load catalog: %w", err)
	}
	return entity.FilterProducts(products, query, category), nil
}

func (s *catalogService) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		s.log.Errorf("CatalogService.GetProduct: failed to get product %s: %v", productID, err)
		return nil, fmt.Errorf("could not load product: %w", err)
	}
	return product, nil
}
