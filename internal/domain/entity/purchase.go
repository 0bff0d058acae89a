package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pending"
	PurchaseStatusCompleted PurchaseStatus = "completed"
	PurchaseStatusCancelled PurchaseStatus = "cancelled"
)

var ErrNoProducts = errors.New("purchase must contain at least one product")

// Purchase is a completed (or pending/cancelled) order. Products are frozen
// snapshots and TotalAmount is the sum of their prices at purchase time; later
// edits to a listing never change a past purchase.
type Purchase struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	Products     []Product       `json:"products"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	PurchaseDate time.Time       `json:"purchase_date"`
	Status       PurchaseStatus  `json:"status"`
}

func NewPurchase(userID string, products []Product) (*Purchase, error) {
	if userID == "" {
		return nil, errors.New("buyer ID cannot be empty")
	}
	if len(products) == 0 {
		return nil, ErrNoProducts
	}

	snapshots := make([]Product, len(products))
	copy(snapshots, products)

	total := decimal.Zero
	for _, p := range snapshots {
		total = total.Add(p.Price)
	}

	return &Purchase{
		ID:           uuid.NewString(),
		UserID:       userID,
		Products:     snapshots,
		TotalAmount:  total,
		PurchaseDate: time.Now().UTC(),
		Status:       PurchaseStatusPending,
	}, nil
}

func (p *Purchase) CanBeCancelled() bool {
	return p.Status == PurchaseStatusPending
}

// UpdateStatus enforces the monotonic transitions pending -> completed and
// pending -> cancelled. Completed and cancelled are terminal.
func (p *Purchase) UpdateStatus(newStatus PurchaseStatus) error {
	if p.Status == newStatus {
		return nil
	}
	validTransitions := map[PurchaseStatus][]PurchaseStatus{
		PurchaseStatusPending:   {PurchaseStatusCompleted, PurchaseStatusCancelled},
		PurchaseStatusCompleted: {},
		PurchaseStatusCancelled: {},
	}
	allowed, ok := validTransitions[p.Status]
	if !ok {
		return fmt.Errorf("cannot transition from unknown status %s", p.Status)
	}
	for _, s := range allowed {
		if s == newStatus {
			p.Status = newStatus
			return nil
		}
	}
	return fmt.Errorf("invalid status transition from %s to %s", p.Status, newStatus)
}
