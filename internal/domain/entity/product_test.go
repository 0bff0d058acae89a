package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	price := decimal.RequireFromString("45.00")

	product, err := NewProduct("seller-1", "Vintage Leather Backpack", "Gently used.",
		CategoryClothing, price, ConditionLikeNew, "San Francisco, CA", nil)
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "seller-1", product.UserID)
	assert.False(t, product.IsSold)
	assert.NotNil(t, product.Images)
	assert.Equal(t, product.CreatedAt, product.UpdatedAt)
}

func TestNewProduct_Validation(t *testing.T) {
	price := decimal.RequireFromString("10.00")

	tests := []struct {
		name      string
		userID    string
		title     string
		category  Category
		price     decimal.Decimal
		condition Condition
		wantErr   error
	}{
		{"empty owner", "", "Backpack", CategoryClothing, price, ConditionGood, ErrEmptyUserID},
		{"empty title", "seller-1", "", CategoryClothing, price, ConditionGood, ErrEmptyTitle},
		{"negative price", "seller-1", "Backpack", CategoryClothing, decimal.RequireFromString("-1"), ConditionGood, ErrNegativePrice},
		{"unknown category", "seller-1", "Backpack", Category("vehicles"), price, ConditionGood, ErrUnknownCategory},
		{"unknown condition", "seller-1", "Backpack", CategoryClothing, price, Condition("broken"), ErrUnknownCondition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProduct(tt.userID, tt.title, "", tt.category, tt.price, tt.condition, "", nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProduct_ToggleSold(t *testing.T) {
	product := testProduct("p1", "Backpack", "45.00")
	require.False(t, product.IsSold)

	product.ToggleSold()
	assert.True(t, product.IsSold)

	product.ToggleSold()
	assert.False(t, product.IsSold)
}

func TestCategory(t *testing.T) {
	assert.True(t, CategoryHomeGarden.Valid())
	assert.False(t, Category("vehicles").Valid())
	assert.Equal(t, "Home & Garden", CategoryHomeGarden.Label())
	assert.Len(t, Categories(), 10)
}

func TestCondition_Valid(t *testing.T) {
	assert.True(t, ConditionLikeNew.Valid())
	assert.False(t, Condition("mint").Valid())
}
