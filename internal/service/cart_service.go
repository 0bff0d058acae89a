package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecofinds/marketplace/internal/adapter/nats"
	"github.com/ecofinds/marketplace/internal/domain/entity"
	"github.com/ecofinds/marketplace/internal/platform/logger"
	"github.com/ecofinds/marketplace/internal/repository"
)

const (
	defaultCartTTL     = 24 * time.Hour
	defaultMergePolicy = entity.PolicyMerge

	natsSubjectCartUpdated = "cart.updated"
)

var ErrProductUnavailable = errors.New("product is not available for purchase")

// CartService owns the per-user cart ledger. Mutations on unknown line IDs
// are silent no-ops: a stale ID means the UI raced itself, not that anything
// is wrong with the cart.
type CartService interface {
	AddProduct(ctx context.Context, userID, productID string, quantity int) (*entity.Cart, error)
	AdjustQuantity(ctx context.Context, userID, lineID string, delta int) (*entity.Cart, error)
	RemoveLine(ctx context.Context, userID, lineID string) (*entity.Cart, error)
	GetCart(ctx context.Context, userID string) (*entity.Cart, error)
	ClearCart(ctx context.Context, userID string) error
}

type CartServiceConfig struct {
	CartTTL     time.Duration
	MergePolicy entity.MergePolicy
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	publisher   nats.MessagePublisher
	log         logger.Logger
	cartTTL     time.Duration
	policy      entity.MergePolicy
}

func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	publisher nats.MessagePublisher,
	log logger.Logger,
	cfg CartServiceConfig,
) CartService {
	cartTTL := cfg.CartTTL
	if cartTTL <= 0 {
		cartTTL = defaultCartTTL
	}
	policy := cfg.MergePolicy
	if !policy.Valid() {
		policy = defaultMergePolicy
	}

	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		publisher:   publisher,
		log:         log,
		cartTTL:     cartTTL,
		policy:      policy,
	}
}

type cartUpdatedEvent struct {
	UserID    string `json:"user_id"`
	LineCount int    `json:"line_count"`
	Total     string `json:"total"`
}

func (s *cartService) publishUpdated(ctx context.Context, cart *entity.Cart) {
	if s.publisher == nil {
		return
	}
	event := cartUpdatedEvent{
		UserID:    cart.UserID,
		LineCount: len(cart.Lines),
		Total:     cart.Total().String(),
	}
	if err := s.publisher.Publish(ctx, natsSubjectCartUpdated, event); err != nil {
		s.log.Warnf("Failed to publish cart update for user %s: %v", cart.UserID, err)
	}
}

func (s *cartService) AddProduct(ctx context.Context, userID, productID string, quantity int) (*entity.Cart, error) {
	s.log.Infof("Adding product to cart: UserID=%s, ProductID=%s, Quantity=%d", userID, productID, quantity)

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		s.log.Errorf("Failed to load product %s: %v", productID, err)
		return nil, fmt.Errorf("could not load product: %w", err)
	}
	if product.IsSold {
		s.log.Warnf("Attempted to add sold product %s (%s) to cart", product.Title, productID)
		return nil, ErrProductUnavailable
	}

	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.log.Errorf("Error getting cart for user %s: %v", userID, err)
		return nil, fmt.Errorf("could not retrieve cart: %w", err)
	}

	cart.AddOrMerge(*product, quantity, s.policy)

	if err := s.cartRepo.Save(ctx, cart, s.cartTTL); err != nil {
		s.log.Errorf("Error saving cart for user %s: %v", userID, err)
		return nil, fmt.Errorf("could not save cart: %w", err)
	}
	s.publishUpdated(ctx, cart)
	return cart, nil
}

func (s *cartService) AdjustQuantity(ctx context.Context, userID, lineID string, delta int) (*entity.Cart, error) {
	s.log.Infof("Adjusting cart quantity: UserID=%s, LineID=%s, Delta=%d", userID, lineID, delta)

	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.log.Errorf("Error getting cart for user %s: %v", userID, err)
		return nil, fmt.Errorf("could not retrieve cart: %w", err)
	}

	if line := cart.AdjustQuantity(lineID, delta); line == nil {
		s.log.Debugf("AdjustQuantity: line %s not in cart for user %s, ignoring", lineID, userID)
		return cart, nil
	}

	if err := s.cartRepo.Save(ctx, cart, s.cartTTL); err != nil {
		s.log.Errorf("Error saving cart for user %s: %v", userID, err)
		return nil, fmt.Errorf("could not save cart: %w", err)
	}
	s.publishUpdated(ctx, cart)
	return cart, nil
}

func (s *cartService) RemoveLine(ctx context.Context, userID, lineID string) (*entity.Cart, error) {
	s.log.Infof("Removing cart line: UserID=%s, LineID=%s", userID, lineID)

	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.log.Errorf("Error getting cart for user %s: %v", userID, err)
		return nil, fmt.Errorf("could not retrieve cart: %w", err)
	}

	if !cart.Remove(lineID) {
		s.log.Debugf("RemoveLine: line %s not in cart for user %s, ignoring", lineID, userID)
		return cart, nil
	}

	if err := s.cartRepo.Save(ctx, cart, s.cartTTL); err != nil {
		s.log.Errorf("Error saving cart for user %s: %v", userID, err)
		return nil, fmt.Errorf("could not save cart: %w", err)
	}
	s.publishUpdated(ctx, cart)
	return cart, nil
}

func (s *cartService) GetCart(ctx context.Context, userID string) (*entity.Cart, error) {
	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.log.Errorf("Error getting cart for user %s: %v", userID, err)
		return nil, fmt.Errorf("could not retrieve cart: %w", err)
	}
	return cart, nil
}

func (s *cartService) ClearCart(ctx context.Context, userID string) error {
	s.log.Infof("Clearing cart for user: UserID=%s", userID)
	if err := s.cartRepo.DeleteByUserID(ctx, userID); err != nil {
		s.log.Errorf("Error deleting cart for user %s: %v", userID, err)
		return fmt.Errorf("could not clear cart: %w", err)
	}
	return nil
}
