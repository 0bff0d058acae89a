package memory

import (
	"context"
	"time"

	"github.com/ecofinds/marketplace/internal/domain/entity"
	"github.com/ecofinds/marketplace/internal/repository"
	"github.com/shopspring/decimal"
)

// DemoUserID identifies the seeded demo account that owns the sample listings
// and purchase history.
const DemoUserID = "demo-user"

func demoProducts() []entity.Product {
	created := time.Date(2024, time.January, 12, 10, 0, 0, 0, time.UTC)
	return []entity.Product{
		{
			ID:          "prod-backpack",
			UserID:      "seller-1",
			Title:       "Vintage Leather Backpack",
			Description: "Beautiful handcrafted leather backpack in excellent condition",
			Category:    entity.CategoryClothing,
			Price:       decimal.RequireFromString("45.00"),
			Images:      []string{"/images/backpack.jpg"},
			Condition:   entity.ConditionLikeNew,
			Location:    "San Francisco, CA",
			CreatedAt:   created,
			UpdatedAt:   created,
		},
		{
			ID:          "prod-bamboo-set",
			UserID:      "seller-2",
			Title:       "Bamboo Kitchen Set",
			Description: "Eco-friendly bamboo kitchen utensils, never used",
			Category:    entity.CategoryHomeGarden,
			Price:       decimal.RequireFromString("28.50"),
			Images:      []string{"/images/bamboo-set.jpg"},
			Condition:   entity.ConditionNew,
			Location:    "Portland, OR",
			CreatedAt:   created.Add(time.Hour),
			UpdatedAt:   created.Add(time.Hour),
		},
		{
			ID:          "prod-tote-bags",
			UserID:      "seller-3",
			Title:       "Organic Cotton Tote Bags (Set of 5)",
			Description: "Reusable organic cotton bags, perfect for shopping",
			Category:    entity.CategoryHandmade,
			Price:       decimal.RequireFromString("15.00"),
			Images:      []string{"/images/tote-bags.jpg"},
			Condition:   entity.ConditionNew,
			Location:    "Austin, TX",
			CreatedAt:   created.Add(2 * time.Hour),
			UpdatedAt:   created.Add(2 * time.Hour),
		},
	}
}

func demoListings() []entity.Product {
	return []entity.Product{
		{
			ID:          "listing-mugs",
			UserID:      DemoUserID,
			Title:       "Handmade Ceramic Mugs Set",
			Description: "Set of 4 beautiful handmade ceramic mugs",
			Category:    entity.CategoryHandmade,
			Price:       decimal.RequireFromString("35.00"),
			Images:      []string{"/images/mugs.jpg"},
			Condition:   entity.ConditionNew,
			Location:    "Seattle, WA",
			CreatedAt:   time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "listing-desk",
			UserID:      DemoUserID,
			Title:       "Vintage Wooden Desk",
			Description: "Solid oak desk from the 1960s",
			Category:    entity.CategoryFurniture,
			Price:       decimal.RequireFromString("150.00"),
			Images:      []string{"/images/desk.jpg"},
			Condition:   entity.ConditionGood,
			Location:    "Seattle, WA",
			CreatedAt:   time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC),
			IsSold:      true,
		},
	}
}

func demoPurchases() []entity.Purchase {
	notebook := entity.Product{
		ID:          "prod-notebooks",
		UserID:      "seller-4",
		Title:       "Recycled Paper Notebooks Set",
		Description: "Set of 5 eco-friendly notebooks",
		Category:    entity.CategoryBooks,
		Price:       decimal.RequireFromString("25.00"),
		Images:      []string{"/images/notebooks.jpg"},
		Condition:   entity.ConditionNew,
		Location:    "Boston, MA",
		IsSold:      true,
	}
	shirt := entity.Product{
		ID:          "prod-tshirt",
		UserID:      "seller-5",
		Title:       "Organic Cotton T-Shirt",
		Description: "100% organic cotton t-shirt",
		Category:    entity.CategoryClothing,
		Price:       decimal.RequireFromString("18.00"),
		Images:      []string{"/images/tshirt.jpg"},
		Condition:   entity.ConditionNew,
		Location:    "Denver, CO",
		IsSold:      true,
	}
	cutlery := entity.Product{
		ID:          "prod-cutlery",
		UserID:      "seller-6",
		Title:       "Bamboo Cutlery Set",
		Description: "Reusable bamboo cutlery",
		Category:    entity.CategoryHomeGarden,
		Price:       decimal.RequireFromString("15.00"),
		Images:      []string{"/images/cutlery.jpg"},
		Condition:   entity.ConditionNew,
		Location:    "Portland, OR",
		IsSold:      true,
	}

	return []entity.Purchase{
		{
			ID:           "purchase-1",
			UserID:       DemoUserID,
			Products:     []entity.Product{notebook, shirt},
			TotalAmount:  decimal.RequireFromString("43.00"),
			PurchaseDate: time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
			Status:       entity.PurchaseStatusCompleted,
		},
		{
			ID:           "purchase-2",
			UserID:       DemoUserID,
			Products:     []entity.Product{cutlery},
			TotalAmount:  decimal.RequireFromString("15.00"),
			PurchaseDate: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			Status:       entity.PurchaseStatusCompleted,
		},
	}
}

func demoUser() entity.User {
	return entity.User{
		ID:        DemoUserID,
		Email:     "eco.seller@example.com",
		Username:  "ecoseller",
		FullName:  "Eco Seller",
		Address:   "Seattle, WA",
		Bio:       "Selling pre-loved and handmade goods.",
		CreatedAt: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

// SeedDemoData loads the sample catalog, the demo account with its listings,
// and its purchase history. Replace with a real persistence layer in
// production; these records exist so the demo session and a fresh checkout
// have something to work with.
func SeedDemoData(
	ctx context.Context,
	products repository.ProductRepository,
	purchases repository.PurchaseRepository,
	users repository.UserRepository,
) error {
	for _, p := range demoProducts() {
		prod := p
		if err := products.Create(ctx, &prod); err != nil {
			return err
		}
	}
	for _, l := range demoListings() {
		listing := l
		if err := products.Create(ctx, &listing); err != nil {
			return err
		}
	}
	for _, pur := range demoPurchases() {
		purchase := pur
		if err := purchases.Create(ctx, &purchase); err != nil {
			return err
		}
	}
	u := demoUser()
	return users.Create(ctx, &u)
}
