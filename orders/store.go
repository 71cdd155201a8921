package orders

import (
	"context"
	"errors"

	"saaj/db"
	"saaj/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrDuplicateOrderID means the client-generated id already exists; callers
// treat it as "this order was already placed", not as a new failure.
var ErrDuplicateOrderID = errors.New("order id already exists")

// Store persists orders with orderId as the idempotency key.
type Store struct{}

func (Store) Create(ctx context.Context, order *models.Order) error {
	count, err := db.OrdersCollection.CountDocuments(ctx, bson.M{"orderId": order.OrderID})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateOrderID
	}
	_, err = db.OrdersCollection.InsertOne(ctx, order)
	return err
}

func (Store) ByID(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	if err := db.OrdersCollection.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}
