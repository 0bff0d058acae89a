package mongo

import (
	"fmt"
	"time"

	"github.com/ecofinds/marketplace/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Money amounts are stored as canonical decimal strings so the database never
// sees a binary float.

type productDocument struct {
	ID          string           `bson:"_id"`
	UserID      string           `bson:"user_id"`
	Title       string           `bson:"title"`
	Description string           `bson:"description"`
	Category    entity.Category  `bson:"category"`
	Price       string           `bson:"price"`
	Images      []string         `bson:"images,omitempty"`
	Condition   entity.Condition `bson:"condition"`
	Location    string           `bson:"location,omitempty"`
	CreatedAt   time.Time        `bson:"created_at"`
	UpdatedAt   time.Time        `bson:"updated_at"`
	IsSold      bool             `bson:"is_sold"`
}

func toProductDocument(p *entity.Product) *productDocument {
	return &productDocument{
		ID:          p.ID,
		UserID:      p.UserID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price.String(),
		Images:      p.Images,
		Condition:   p.Condition,
		Location:    p.Location,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		IsSold:      p.IsSold,
	}
}

func toDomainProduct(d *productDocument) (*entity.Product, error) {
	price, err := decimal.NewFromString(d.Price)
	if err != nil {
		return nil, fmt.Errorf("invalid stored price %q for product %s: %w", d.Price, d.ID, err)
	}
	images := d.Images
	if images == nil {
		images = []string{}
	}
	return &entity.Product{
		ID:          d.ID,
		UserID:      d.UserID,
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		Price:       price,
		Images:      images,
		Condition:   d.Condition,
		Location:    d.Location,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		IsSold:      d.IsSold,
	}, nil
}

type purchaseDocument struct {
	ID           string                `bson:"_id"`
	UserID       string                `bson:"user_id"`
	Products     []productDocument     `bson:"products"`
	TotalAmount  string                `bson:"total_amount"`
	PurchaseDate time.Time             `bson:"purchase_date"`
	Status       entity.PurchaseStatus `bson:"status"`
}

func toPurchaseDocument(p *entity.Purchase) *purchaseDocument {
	products := make([]productDocument, len(p.Products))
	for i := range p.Products {
		products[i] = *toProductDocument(&p.Products[i])
	}
	return &purchaseDocument{
		ID:           p.ID,
		UserID:       p.UserID,
		Products:     products,
		TotalAmount:  p.TotalAmount.String(),
		PurchaseDate: p.PurchaseDate,
		Status:       p.Status,
	}
}

func toDomainPurchase(d *purchaseDocument) (*entity.Purchase, error) {
	total, err := decimal.NewFromString(d.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid stored total %q for purchase %s: %w", d.TotalAmount, d.ID, err)
	}
	products := make([]entity.Product, 0, len(d.Products))
	for i := range d.Products {
		p, err := toDomainProduct(&d.Products[i])
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return &entity.Purchase{
		ID:           d.ID,
		UserID:       d.UserID,
		Products:     products,
		TotalAmount:  total,
		PurchaseDate: d.PurchaseDate,
		Status:       d.Status,
	}, nil
}
