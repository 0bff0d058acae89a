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
	"github.com/shopspring/decimal"
)

const (
	natsSubjectListingCreated     = "listing.created"
	natsSubjectListingDeleted     = "listing.deleted"
	natsSubjectListingSoldToggled = "listing.sold_toggled"
)

var ErrForbidden = errors.New("user not authorized to perform this action")

type CreateListingParams struct {
	UserID      string
	Title       string
	Description string
	Category    entity.Category
	Price       decimal.Decimal
	Condition   entity.Condition
	Location    string
	Images      []string
}

type UpdateListingParams struct {
	ProductID   string
	UserID      string
	Title       string
	Description string
	Category    entity.Category
	Price       decimal.Decimal
	Condition   entity.Condition
	Location    string
}

// ListingService manages a seller's own product collection. Delete and
// ToggleSold treat an unknown product ID as a no-op so that a double-clicked
// button or a stale row never surfaces an error.
type ListingService interface {
	CreateListing(ctx context.Context, params CreateListingParams) (*entity.Product, error)
	UpdateListing(ctx context.Context, params UpdateListingParams) (*entity.Product, error)
	DeleteListing(ctx context.Context, productID, userID string) error
	ToggleSold(ctx context.Context, productID, userID string) (*entity.Product, error)
	MyListings(ctx context.Context, userID string) ([]entity.Product, error)
}

type listingService struct {
	productRepo repository.ProductRepository
	publisher   nats.MessagePublisher
	log         logger.Logger
}

func NewListingService(productRepo repository.ProductRepository, publisher nats.MessagePublisher, log logger.Logger) ListingService {
	return &listingService{
		productRepo: productRepo,
		publisher:   publisher,
		log:         log,
	}
}

func (s *listingService) publish(ctx context.Context, subject string, message interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, subject, message); err != nil {
		s.log.Warnf("Failed to publish %s event: %v", subject, err)
	}
}

type listingEvent struct {
	ProductID string `json:"product_id"`
	UserID    string `json:"user_id"`
	IsSold    bool   `json:"is_sold,omitempty"`
}

func (s *listingService) CreateListing(ctx context.Context, params CreateListingParams) (*entity.Product, error) {
	s.log.Infof("ListingService.CreateListing: user_id=%s title=%q", params.UserID, params.Title)

	product, err := entity.NewProduct(
		params.UserID,
		params.Title,
		params.Description,
		params.Category,
		params.Price,
		params.Condition,
		params.Location,
		params.Images,
	)
	if err != nil {
		s.log.Warnf("ListingService.CreateListing: invalid listing from user %s: %v", params.UserID, err)
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.log.Errorf("ListingService.CreateListing: failed to store listing: %v", err)
		return nil, fmt.Errorf("could not create listing: %w", err)
	}
	s.publish(ctx, natsSubjectListingCreated, listingEvent{ProductID: product.ID, UserID: product.UserID})
	return product, nil
}

func (s *listingService) UpdateListing(ctx context.Context, params UpdateListingParams) (*entity.Product, error) {
	s.log.Infof("ListingService.UpdateListing: product_id=%s user_id=%s", params.ProductID, params.UserID)

	product, err := s.productRepo.GetByID(ctx, params.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("could not load listing: %w", err)
	}
	if product.UserID != params.UserID {
		s.log.Warnf("ListingService.UpdateListing: user %s is not the owner of %s", params.UserID, params.ProductID)
		return nil, ErrForbidden
	}

	if params.Title != "" {
		product.Title = params.Title
	}
	if params.Description != "" {
		product.Description = params.Description
	}
	if params.Category != "" {
		if !params.Category.Valid() {
			return nil, entity.ErrUnknownCategory
		}
		product.Category = params.Category
	}
	if params.Condition != "" {
		if !params.Condition.Valid() {
			return nil, entity.ErrUnknownCondition
		}
		product.Condition = params.Condition
	}
	if params.Location != "" {
		product.Location = params.Location
	}
	if params.Price.IsPositive() {
		product.Price = params.Price
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.productRepo.Update(ctx, product); err != nil {
		s.log.Errorf("ListingService.UpdateListing: failed to update listing %s: %v", params.ProductID, err)
		return nil, fmt.Errorf("could not update listing: %w", err)
	}
	return product, nil
}

// DeleteListing removes the product and is idempotent: deleting an already
// absent listing succeeds without effect.
func (s *listingService) DeleteListing(ctx context.Context, productID, userID string) error {
	s.log.Infof("ListingService.DeleteListing: product_id=%s user_id=%s", productID, userID)

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Debugf("ListingService.DeleteListing: listing %s already gone", productID)
			return nil
		}
		return fmt.Errorf("could not load listing: %w", err)
	}
	if product.UserID != userID {
		s.log.Warnf("ListingService.DeleteListing: user %s is not the owner of %s", userID, productID)
		return ErrForbidden
	}

	if err := s.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		s.log.Errorf("ListingService.DeleteListing: failed to delete listing %s: %v", productID, err)
		return fmt.Errorf("could not delete listing: %w", err)
	}
	s.publish(ctx, natsSubjectListingDeleted, listingEvent{ProductID: productID, UserID: userID})
	return nil
}

// ToggleSold flips the product's sold flag and bumps UpdatedAt. An unknown
// product ID is a no-op and returns nil without error.
func (s *listingService) ToggleSold(ctx context.Context, productID, userID string) (*entity.Product, error) {
	s.log.Infof("ListingService.ToggleSold: product_id=%s user_id=%s", productID, userID)

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Debugf("ListingService.ToggleSold: listing %s not found, ignoring", productID)
			return nil, nil
		}
		return nil, fmt.Errorf("could not load listing: %w", err)
	}
	if product.UserID != userID {
		s.log.Warnf("ListingService.ToggleSold: user %s is not the owner of %s", userID, productID)
		return nil, ErrForbidden
	}

	product.ToggleSold()

	if err := s.productRepo.Update(ctx, product); err != nil {
		s.log.Errorf("ListingService.ToggleSold: failed to update listing %s: %v", productID, err)
		return nil, fmt.Errorf("could not update listing: %w", err)
	}
	s.publish(ctx, natsSubjectListingSoldToggled, listingEvent{ProductID: productID, UserID: userID, IsSold: product.IsSold})
	return product, nil
}

// MyListings returns the seller's products in creation order; presentation
// layers may re-sort, the registry never does.
func (s *listingService) MyListings(ctx context.Context, userID string) ([]entity.Product, error) {
	listings, err := s.productRepo.ListByUser(ctx, userID)
	if err != nil {
		s.log.Errorf("ListingService.MyListings: failed to list for user %s: %v", userID, err)
		return nil, fmt.Errorf("could not list listings: %w", err)
	}
	return listings, nil
}
