package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecofinds/marketplace/internal/domain/entity"
	"github.com/ecofinds/marketplace/internal/repository"
)

func storedPurchase(id, userID string, date time.Time) *entity.Purchase {
	return &entity.Purchase{
		ID:           id,
		UserID:       userID,
		Products:     []entity.Product{*storedProduct("p1", "seller-1", "Backpack")},
		TotalAmount:  storedProduct("p1", "seller-1", "Backpack").Price,
		PurchaseDate: date,
		Status:       entity.PurchaseStatusPending,
	}
}

func TestPurchaseRepository_CreateAndGet(t *testing.T) {
	repo := NewPurchaseRepository()
	ctx := context.Background()

	purchase := storedPurchase("purchase-1", "buyer-1", time.Now())
	require.NoError(t, repo.Create(ctx, purchase))
	assert.ErrorIs(t, repo.Create(ctx, purchase), repository.ErrAlreadyExists)

	got, err := repo.GetByID(ctx, "purchase-1")
	require.NoError(t, err)
	assert.Equal(t, "buyer-1", got.UserID)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPurchaseRepository_Update(t *testing.T) {
	repo := NewPurchaseRepository()
	ctx := context.Background()

	purchase := storedPurchase("purchase-1", "buyer-1", time.Now())
	require.NoError(t, repo.Create(ctx, purchase))

	purchase.Status = entity.PurchaseStatusCompleted
	require.NoError(t, repo.Update(ctx, purchase))

	got, err := repo.GetByID(ctx, "purchase-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseStatusCompleted, got.Status)

	assert.ErrorIs(t, repo.Update(ctx, storedPurchase("missing", "buyer-1", time.Now())), repository.ErrNotFound)
}

func TestPurchaseRepository_ListByUser_NewestFirst(t *testing.T) {
	repo := NewPurchaseRepository()
	ctx := context.Background()

	base := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, storedPurchase("purchase-old", "buyer-1", base)))
	require.NoError(t, repo.Create(ctx, storedPurchase("purchase-new", "buyer-1", base.Add(48*time.Hour))))
	require.NoError(t, repo.Create(ctx, storedPurchase("purchase-mid", "buyer-1", base.Add(24*time.Hour))))
	require.NoError(t, repo.Create(ctx, storedPurchase("purchase-other", "buyer-2", base)))

	history, err := repo.ListByUser(ctx, "buyer-1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "purchase-new", history[0].ID)
	assert.Equal(t, "purchase-mid", history[1].ID)
	assert.Equal(t, "purchase-old", history[2].ID)
}
