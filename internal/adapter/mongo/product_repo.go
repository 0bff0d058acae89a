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

const productCollectionName = "products"

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(client *mongo.Client, cfg config.MongoDBConfig) *ProductRepository {
	return &ProductRepository{
		collection: client.Database(cfg.Database).Collection(productCollectionName),
	}
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if _, err := r.collection.InsertOne(ctx, toProductDocument(product)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, productID string) (*entity.Product, error) {
	var doc productDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": productID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", productID, err)
	}
	return toDomainProduct(&doc)
}

func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": product.ID}, toProductDocument(product))
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", product.ID, err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, productID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": productID})
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) list(ctx context.Context, filter bson.M) ([]entity.Product, error) {
	// Creation order is the canonical listing order.
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	out := make([]entity.Product, 0, len(docs))
	for i := range docs {
		p, err := toDomainProduct(&docs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *ProductRepository) ListByUser(ctx context.Context, userID string) ([]entity.Product, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *ProductRepository) ListAll(ctx context.Context) ([]entity.Product, error) {
	return r.list(ctx, bson.M{})
}
