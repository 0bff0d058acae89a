package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MergePolicy controls what AddOrMerge does when a line for the same product
// already exists in the cart.
type MergePolicy string

const (
	// PolicyMerge increments the existing line's quantity. This is the default.
	PolicyMerge MergePolicy = "merge"
	// PolicyAppend always creates a new line, even for a product already in
	// the cart.
	PolicyAppend MergePolicy = "append"
)

func (p MergePolicy) Valid() bool {
	return p == PolicyMerge || p == PolicyAppend
}

// CartLine is a quantity of one product held in a buyer's cart. Product is a
// denormalized snapshot taken when the line was created, so the line stays
// displayable even if the listing changes afterwards.
type CartLine struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Product   Product   `json:"product"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// LineTotal is price * quantity on unrounded decimals. Rounding to two places
// belongs to presentation, never to the ledger itself.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Cart struct {
	UserID    string     `json:"user_id"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewCart(userID string) *Cart {
	return &Cart{
		UserID:    userID,
		Lines:     make([]CartLine, 0),
		UpdatedAt: time.Now().UTC(),
	}
}

func (c *Cart) lineByProduct(productID string) (*CartLine, int) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return &c.Lines[i], i
		}
	}
	return nil, -1
}

func (c *Cart) line(lineID string) (*CartLine, int) {
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			return &c.Lines[i], i
		}
	}
	return nil, -1
}

// AddOrMerge puts quantity units of product into the cart and returns the
// affected line. Under PolicyMerge an existing line for the same product is
// incremented; otherwise a new line is appended. Quantities below one are
// treated as one.
func (c *Cart) AddOrMerge(product Product, quantity int, policy MergePolicy) *CartLine {
	if quantity < 1 {
		quantity = 1
	}

	if policy != PolicyAppend {
		if existing, _ := c.lineByProduct(product.ID); existing != nil {
			existing.Quantity += quantity
			c.UpdatedAt = time.Now().UTC()
			return existing
		}
	}

	now := time.Now().UTC()
	c.Lines = append(c.Lines, CartLine{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		Product:   product,
		Quantity:  quantity,
		AddedAt:   now,
	})
	c.UpdatedAt = now
	return &c.Lines[len(c.Lines)-1]
}

// AdjustQuantity sets the line's quantity to max(1, quantity+delta). A
// decrement can never drop a line below one unit and never removes it; use
// Remove for that. An unknown line ID is a silent no-op (stale IDs are a
// normal UI race, not a fault) and nil is returned.
func (c *Cart) AdjustQuantity(lineID string, delta int) *CartLine {
	target, _ := c.line(lineID)
	if target == nil {
		return nil
	}
	target.Quantity += delta
	if target.Quantity < 1 {
		target.Quantity = 1
	}
	c.UpdatedAt = time.Now().UTC()
	return target
}

// Remove deletes the line if present. Removing an absent line is a no-op, so
// the operation is idempotent. Reports whether a line was actually removed.
func (c *Cart) Remove(lineID string) bool {
	_, idx := c.line(lineID)
	if idx == -1 {
		return false
	}
	c.Lines = append(c.Lines[:idx], c.Lines[idx+1:]...)
	c.UpdatedAt = time.Now().UTC()
	return true
}

// Total sums every line total on unrounded decimals. An empty cart totals to
// exactly zero.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// List returns the lines in insertion order, first-added first.
func (c *Cart) List() []CartLine {
	out := make([]CartLine, len(c.Lines))
	copy(out, c.Lines)
	return out
}

func (c *Cart) Clear() {
	c.Lines = make([]CartLine, 0)
	c.UpdatedAt = time.Now().UTC()
}
