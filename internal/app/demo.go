package app

import (
	"context"

	"github.com/ecofinds/marketplace/internal/adapter/memory"
	"github.com/ecofinds/marketplace/internal/domain/entity"
	"github.com/ecofinds/marketplace/internal/service"
	"github.com/shopspring/decimal"
)

// runDemoSession exercises every marketplace operation once against the
// seeded catalog, logging what a UI would render at each step.
func (a *App) runDemoSession(ctx context.Context) error {
	userID := memory.DemoUserID

	// Browse and filter the catalog.
	all, err := a.Catalog.Search(ctx, "", entity.CategoryAll)
	if err != nil {
		return err
	}
	a.log.Infof("Catalog holds %d products", len(all))

	matches, err := a.Catalog.Search(ctx, "bamboo", entity.CategoryAll)
	if err != nil {
		return err
	}
	for _, p := range matches {
		a.log.Infof("Search %q matched: %s (%s)", "bamboo", p.Title, p.Price.StringFixed(2))
	}

	// Fill the cart: one backpack, two bamboo sets.
	if _, err := a.Cart.AddProduct(ctx, userID, "prod-backpack", 1); err != nil {
		return err
	}
	cart, err := a.Cart.AddProduct(ctx, userID, "prod-bamboo-set", 2)
	if err != nil {
		return err
	}
	for _, line := range cart.List() {
		a.log.Infof("Cart line: %s x%d = %s", line.Product.Title, line.Quantity, line.LineTotal().StringFixed(2))
	}
	a.log.Infof("Cart total: %s", cart.Total().StringFixed(2))

	// Manage the seller's own listings.
	created, err := a.Listings.CreateListing(ctx, service.CreateListingParams{
		UserID:      userID,
		Title:       "Upcycled Glass Vases",
		Description: "Pair of vases made from reclaimed bottles",
		Category:    entity.CategoryHandmade,
		Price:       decimal.RequireFromString("22.00"),
		Condition:   entity.ConditionNew,
		Location:    "Seattle, WA",
	})
	if err != nil {
		return err
	}
	if _, err := a.Listings.ToggleSold(ctx, created.ID, userID); err != nil {
		return err
	}
	if err := a.Listings.DeleteListing(ctx, "listing-desk", userID); err != nil {
		return err
	}
	listings, err := a.Listings.MyListings(ctx, userID)
	if err != nil {
		return err
	}
	a.log.Infof("Seller has %d listings", len(listings))

	// Check out and review the purchase history.
	profile, err := a.Profile.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	purchase, err := a.Purchases.Checkout(ctx, userID, profile.Email)
	if err != nil {
		return err
	}
	if _, err := a.Purchases.CompletePurchase(ctx, purchase.ID); err != nil {
		return err
	}
	history, err := a.Purchases.History(ctx, userID)
	if err != nil {
		return err
	}
	a.log.Infof("Purchase history has %d orders, latest total %s", len(history), purchase.TotalAmount.StringFixed(2))

	return ctx.Err()
}
