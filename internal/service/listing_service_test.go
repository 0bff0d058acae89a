package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ecofinds/marketplace/internal/domain/entity"
	"github.com/ecofinds/marketplace/internal/repository"
)

func TestListingService_CreateListing(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	log := NewNoOpLogger()

	svc := NewListingService(mockProductRepo, nil, log)

	mockProductRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
		return p.UserID == "seller-1" && p.Title == "Upcycled Glass Vases" && !p.IsSold && p.ID != ""
	})).Return(nil).Once()

	product, err := svc.CreateListing(context.Background(), CreateListingParams{
		UserID:      "seller-1",
		Title:       "Upcycled Glass Vases",
		Description: "Set of hand-painted vases.",
		Category:    entity.CategoryHandmade,
		Price:       decimal.RequireFromString("22.00"),
		Condition:   entity.ConditionNew,
	})

	require.NoError(t, err)
	assert.Equal(t, "22.00", product.Price.StringFixed(2))

	mockProductRepo.AssertExpectations(t)
}

func TestListingService_CreateListing_InvalidInput(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	log := NewNoOpLogger()

	svc := NewListingService(mockProductRepo, nil, log)

	_, err := svc.CreateListing(context.Background(), CreateListingParams{
		UserID:    "seller-1",
		Title:     "",
		Category:  entity.CategoryOther,
		Price:     decimal.RequireFromString("10.00"),
		Condition: entity.ConditionGood,
	})

	assert.ErrorIs(t, err, entity.ErrEmptyTitle)
	mockProductRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListingService_UpdateListing_OnlyOwner(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	log := NewNoOpLogger()

	svc := NewListingService(mockProductRepo, nil, log)

	owned := availableProduct("product1", "Backpack", "45.00")
	mockProductRepo.On("GetByID", mock.Anything, "product1").Return(owned, nil).Once()

	_, err := svc.UpdateListing(context.Background(), UpdateListingParams{
		ProductID: "product1",
		UserID:    "somebody-else",
		Title:     "Hijacked",
	})

	assert.ErrorIs(t, err, ErrForbidden)
	mockProductRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestListingService_UpdateListing_PartialFields(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	log := NewNoOpLogger()

	svc := NewListingService(mockProductRepo, nil, log)

	owned := availableProduct("product1", "Backpack", "45.00")
	owned.Description = "Original description."
	mockProductRepo.On("GetByID", mock.Anything, "product1").Return(owned, nil).Once()
	mockProductRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
		return p.Title == "Backpack, barely used" &&
			p.Description == "Original description." &&
			p.Price.StringFixed(2) == "40.00"
	})).Return(nil).Once()

	product, err := svc.UpdateListing(context.Background(), UpdateListingParams{
		ProductID: "product1",
		UserID:    "seller-1",
		Title:     "Backpack, barely used",
		Price:     decimal.RequireFromString("40.00"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Backpack, barely used", product.Title)

	mockProductRepo.AssertExpectations(t)
}

func TestListingService_DeleteListing_IsIdempotent(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	log := NewNoOpLogger()

	svc := NewListingService(mockProductRepo, nil, log)

	mockProductRepo.On("GetByID", mock.Anything, "already-gone").Return(nil, repository.ErrNotFound).Once()

	err := svc.DeleteListing(context.Background(), "already-gone", "seller-1")

	assert.NoError(t, err)
	mockProductRepo.AssertExpectations(t)
	mockProductRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestListingService_DeleteListing_OnlyOwner(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	log := NewNoOpLogger()

	svc := NewListingService(mockProductRepo, nil, log)

	owned := availableProduct("product1", "Backpack", "45.00")
	mockProductRepo.On("GetByID", mock.Anything, "product1").Return(owned, nil).Once()

	err := svc.DeleteListing(context.Background(), "product1", "somebody-else")

	assert.ErrorIs(t, err, ErrForbidden)
	mockProductRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestListingService_ToggleSold_IsAnInverse(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	log := NewNoOpLogger()

	svc := NewListingService(mockProductRepo, nil, log)

	product := availableProduct("product1", "Ceramic Mugs", "35.00")
	mockProductRepo.On("GetByID", mock.Anything, "product1").Return(product, nil).Twice()
	mockProductRepo.On("Update", mock.Anything, product).Return(nil).Twice()

	toggled, err := svc.ToggleSold(context.Background(), "product1", "seller-1")
	require.NoError(t, err)
	assert.True(t, toggled.IsSold)

	toggled, err = svc.ToggleSold(context.Background(), "product1", "seller-1")
	require.NoError(t, err)
	assert.False(t, toggled.IsSold)

	mockProductRepo.AssertExpectations(t)
}

func TestListingService_ToggleSold_UnknownProductIsNoOp(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	log := NewNoOpLogger()

	svc := NewListingService(mockProductRepo, nil, log)

	mockProductRepo.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound).Once()

	product, err := svc.ToggleSold(context.Background(), "missing", "seller-1")

	assert.NoError(t, err)
	assert.Nil(t, product)
	mockProductRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestListingService_MyListings(t *testing.T) {
	mockProductRepo := new(MockProductRepository)
	log := NewNoOpLogger()

	svc := NewListingService(mockProductRepo, nil, log)

	mine := []entity.Product{
		*availableProduct("product1", "Ceramic Mugs", "35.00"),
		*availableProduct("product2", "Wooden Desk", "150.00"),
	}
	mockProductRepo.On("ListByUser", mock.Anything, "seller-1").Return(mine, nil).Once()

	listings, err := svc.MyListings(context.Background(), "seller-1")

	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "product1", listings[0].ID)
	assert.Equal(t, "product2", listings[1].ID)
}
