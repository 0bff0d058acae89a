package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryHomeGarden  Category = "home-garden"
	CategoryBooks       Category = "books"
	CategoryToysGames   Category = "toys-games"
	CategorySports      Category = "sports"
	CategoryBeauty      Category = "beauty"
	CategoryFurniture   Category = "furniture"
	CategoryHandmade    Category = "handmade"
	CategoryOther       Category = "other"
)

// CategoryAll is the sentinel filter value that matches every category.
const CategoryAll = "all"

var categoryLabels = map[Category]string{
	CategoryElectronics: "Electronics",
	CategoryClothing:    "Clothing & Accessories",
	CategoryHomeGarden:  "Home & Garden",
	CategoryBooks:       "Books & Media",
	CategoryToysGames:   "Toys & Games",
	CategorySports:      "Sports & Outdoors",
	CategoryBeauty:      "Beauty & Health",
	CategoryFurniture:   "Furniture",
	CategoryHandmade:    "Handmade & Crafts",
	CategoryOther:       "Other",
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Categories returns the closed category set in display order.
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryClothing,
		CategoryHomeGarden,
		CategoryBooks,
		CategoryToysGames,
		CategorySports,
		CategoryBeauty,
		CategoryFurniture,
		CategoryHandmade,
		CategoryOther,
	}
}

type Condition string

const (
	ConditionNew     Condition = "new"
	ConditionLikeNew Condition = "like-new"
	ConditionGood    Condition = "good"
	ConditionFair    Condition = "fair"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair:
		return true
	}
	return false
}

var (
	ErrEmptyTitle       = errors.New("product title cannot be empty")
	ErrEmptyUserID      = errors.New("product owner ID cannot be empty")
	ErrNegativePrice    = errors.New("product price cannot be negative")
	ErrUnknownCategory  = errors.New("unknown product category")
	ErrUnknownCondition = errors.New("unknown product condition")
)

type Product struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
	Condition   Condition       `json:"condition"`
	Location    string          `json:"location,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	IsSold      bool            `json:"is_sold"`
}

// NewProduct validates the seller-supplied fields and assigns identity and
// timestamps. ID and UserID never change after this point.
func NewProduct(userID, title, description string, category Category, price decimal.Decimal, condition Condition, location string, images []string) (*Product, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if !category.Valid() {
		return nil, ErrUnknownCategory
	}
	if !condition.Valid() {
		return nil, ErrUnknownCondition
	}
	if images == nil {
		images = []string{}
	}

	now := time.Now().UTC()
	return &Product{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Category:    category,
		Price:       price,
		Images:      images,
		Condition:   condition,
		Location:    location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ToggleSold flips the sold flag and bumps UpdatedAt.
func (p *Product) ToggleSold() {
	p.IsSold = !p.IsSold
	p.UpdatedAt = time.Now().UTC()
}
