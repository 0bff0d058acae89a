package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecofinds/marketplace/internal/app/config"
	"github.com/ecofinds/marketplace/internal/domain/entity"
	"github.com/ecofinds/marketplace/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const purchaseCollectionName = "purchases"

type PurchaseRepository struct {
	collection *mongo.Collection
}

func NewPurchaseRepository(client *mongo.Client, cfg config.MongoDBConfig) *PurchaseRepository {
	return &PurchaseRepository{
		collection: client.Database(cfg.Database).Collection(purchaseCollectionName),
	}
}

var _ repository.PurchaseRepository = (*PurchaseRepository)(nil)

func (r *PurchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	if _, err := r.collection.InsertOne(ctx, toPurchaseDocument(purchase)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create purchase: %w", err)
	}
	return nil
}

func (r *PurchaseRepository) GetByID(ctx context.Context, purchaseID string) (*entity.Purchase, error) {
	var doc purchaseDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": purchaseID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get purchase by ID %s: %w", purchaseID, err)
	}
	return toDomainPurchase(&doc)
}

func (r *PurchaseRepository) Update(ctx context.Context, purchase *entity.Purchase) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": purchase.ID}, toPurchaseDocument(purchase))
	if err != nil {
		return fmt.Errorf("failed to update purchase %s: %w", purchase.ID, err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PurchaseRepository) ListByUser(ctx context.Context, userID string) ([]entity.Purchase, error) {
	opts := options.Find().SetSort(bson.D{{Key: "purchase_date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var docs []purchaseDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode purchases: %w", err)
	}

	out := make([]entity.Purchase, 0, len(docs))
	for i := range docs {
		p, err := toDomainPurchase(&docs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}
