package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecofinds/marketplace/internal/adapter/email"
	"github.com/ecofinds/marketplace/internal/adapter/nats"
	"github.com/ecofinds/marketplace/internal/domain/entity"
	"github.com/ecofinds/marketplace/internal/platform/logger"
	"github.com/ecofinds/marketplace/internal/repository"
)

const natsSubjectPurchaseCreated = "purchase.created"

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrPurchaseNotFound = errors.New("purchase not found")
)

// PurchaseService turns carts into orders and owns the purchase history. A
// purchase freezes product snapshots and the total at checkout time; later
// price edits never reach past purchases.
type PurchaseService interface {
	Checkout(ctx context.Context, userID, receiptEmail string) (*entity.Purchase, error)
	GetPurchase(ctx context.Context, purchaseID, userID string) (*entity.Purchase, error)
	History(ctx context.Context, userID string) ([]entity.Purchase, error)
	CompletePurchase(ctx context.Context, purchaseID string) (*entity.Purchase, error)
	CancelPurchase(ctx context.Context, purchaseID, userID string) (*entity.Purchase, error)
}

type purchaseService struct {
	purchaseRepo repository.PurchaseRepository
	cartService  CartService
	publisher    nats.MessagePublisher
	receiptMail  email.Sender
	log          logger.Logger
}

func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	cartService CartService,
	publisher nats.MessagePublisher,
	receiptMail email.Sender,
	log logger.Logger,
) PurchaseService {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		cartService:  cartService,
		publisher:    publisher,
		receiptMail:  receiptMail,
		log:          log,
	}
}

type purchaseCreatedEvent struct {
	PurchaseID string `json:"purchase_id"`
	UserID     string `json:"user_id"`
	Total      string `json:"total"`
}

// Checkout converts the user's current cart into a pending purchase and
// clears the cart. Each cart line contributes one product snapshot per unit,
// so the frozen total equals the cart total at this moment.
func (s *purchaseService) Checkout(ctx context.Context, userID, receiptEmail string) (*entity.Purchase, error) {
	s.log.Infof("Checking out cart for user: UserID=%s", userID)

	cart, err := s.cartService.GetCart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not retrieve cart: %w", err)
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	var snapshots []entity.Product
	for _, line := range cart.List() {
		for i := 0; i < line.Quantity; i++ {
			snapshots = append(snapshots, line.Product)
		}
	}

	purchase, err := entity.NewPurchase(userID, snapshots)
	if err != nil {
		return nil, fmt.Errorf("could not build purchase: %w", err)
	}

	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		s.log.Errorf("Failed to store purchase for user %s: %v", userID, err)
		return nil, fmt.Errorf("could not store purchase: %w", err)
	}

	if err := s.cartService.ClearCart(ctx, userID); err != nil {
		s.log.Warnf("Purchase %s stored but cart for user %s was not cleared: %v", purchase.ID, userID, err)
	}

	if s.publisher != nil {
		event := purchaseCreatedEvent{PurchaseID: purchase.ID, UserID: userID, Total: purchase.TotalAmount.String()}
		if err := s.publisher.Publish(ctx, natsSubjectPurchaseCreated, event); err != nil {
			s.log.Warnf("Failed to publish purchase.created for %s: %v", purchase.ID, err)
		}
	}

	if s.receiptMail != nil && receiptEmail != "" {
		subject := fmt.Sprintf("Your EcoFinds order %s", purchase.ID)
		if err := s.receiptMail.Send(ctx, []string{receiptEmail}, subject, FormatReceipt(purchase)); err != nil {
			s.log.Warnf("Failed to send receipt for purchase %s: %v", purchase.ID, err)
		}
	}

	s.log.Infof("Checkout complete for user %s: purchase %s, total %s", userID, purchase.ID, purchase.TotalAmount.StringFixed(2))
	return purchase, nil
}

func (s *purchaseService) GetPurchase(ctx context.Context, purchaseID, userID string) (*entity.Purchase, error) {
	purchase, err := s.purchaseRepo.GetByID(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("could not load purchase: %w", err)
	}
	if purchase.UserID != userID {
		s.log.Warnf("User %s attempted to access purchase %s belonging to user %s", userID, purchaseID, purchase.UserID)
		return nil, ErrForbidden
	}
	return purchase, nil
}

func (s *purchaseService) History(ctx context.Context, userID string) ([]entity.Purchase, error) {
	purchases, err := s.purchaseRepo.ListByUser(ctx, userID)
	if err != nil {
		s.log.Errorf("Failed to list purchases for user %s: %v", userID, err)
		return nil, fmt.Errorf("could not list purchases: %w", err)
	}
	return purchases, nil
}

func (s *purchaseService) CompletePurchase(ctx context.Context, purchaseID string) (*entity.Purchase, error) {
	return s.transition(ctx, purchaseID, "", entity.PurchaseStatusCompleted)
}

func (s *purchaseService) CancelPurchase(ctx context.Context, purchaseID, userID string) (*entity.Purchase, error) {
	return s.transition(ctx, purchaseID, userID, entity.PurchaseStatusCancelled)
}

func (s *purchaseService) transition(ctx context.Context, purchaseID, userID string, status entity.PurchaseStatus) (*entity.Purchase, error) {
	s.log.Infof("Updating purchase status: PurchaseID=%s, NewStatus=%s", purchaseID, status)

	purchase, err := s.purchaseRepo.GetByID(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("could not load purchase: %w", err)
	}
	if userID != "" && purchase.UserID != userID {
		return nil, ErrForbidden
	}

	if err := purchase.UpdateStatus(status); err != nil {
		return nil, err
	}
	if err := s.purchaseRepo.Update(ctx, purchase); err != nil {
		s.log.Errorf("Failed to update purchase %s: %v", purchaseID, err)
		return nil, fmt.Errorf("could not update purchase: %w", err)
	}
	return purchase, nil
}

// FormatReceipt renders a plain-text receipt. This is the only place amounts
// get rounded to two decimal places.
func FormatReceipt(p *entity.Purchase) string {
	receipt := fmt.Sprintf(
		"Order ID: %s\nBuyer ID: %s\nDate: %s\nStatus: %s\n\nItems:\n",
		p.ID,
		p.UserID,
		p.PurchaseDate.Format("2006-01-02"),
		p.Status,
	)
	for _, product := range p.Products {
		receipt += fmt.Sprintf("- %s = %s\n", product.Title, product.Price.StringFixed(2))
	}
	receipt += fmt.Sprintf("\nTotal: %s\n", p.TotalAmount.StringFixed(2))
	return receipt
}
