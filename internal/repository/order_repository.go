// Package repository provides data access for the order archive.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tribelet/kit-service/internal/domain/model"
)

// OrderDocument is an archived order as stored in MongoDB.
type OrderDocument struct {
	OrderID  string             `bson:"order_id" json:"order_id"`
	Payload  model.OrderPayload `bson:"payload" json:"payload"`
	PlacedAt time.Time          `bson:"placed_at" json:"placed_at"`
}

// OrderRepository provides methods for the order archive.
type OrderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *MongoDB) *OrderRepository {
	return &OrderRepository{
		collection: db.Orders,
	}
}

// Save archives a placed order.
func (r *OrderRepository) Save(ctx context.Context, order *model.OrderPayload) error {
	doc := OrderDocument{
		OrderID:  order.OrderID,
		Payload:  *order,
		PlacedAt: time.Now().UTC(),
	}
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// FindByOrderID returns the archived order with the given reference, or
// nil when absent.
func (r *OrderRepository) FindByOrderID(ctx context.Context, orderID string) (*OrderDocument, error) {
	var doc OrderDocument
	err := r.collection.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListRecent returns archived orders, newest first.
func (r *OrderRepository) ListRecent(ctx context.Context, limit int) ([]OrderDocument, error) {
	opts := options.Find().SetSort(bson.M{"placed_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []OrderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
