package mq

import (
	"context"
	"encoding/json"
	"log"

	"saaj/catalog"
	"saaj/db"
	"saaj/email"
	"saaj/models"
	"saaj/rdx"

	"go.mongodb.org/mongo-driver/bson"
)

// mongoOrderFlags backs OrderFlags with the orders collection.
type mongoOrderFlags struct{}

func (mongoOrderFlags) Get(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	err := db.OrdersCollection.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (mongoOrderFlags) MarkStockApplied(ctx context.Context, orderID string) error {
	_, err := db.OrdersCollection.UpdateOne(ctx,
		bson.M{"orderId": orderID},
		bson.M{"$set": bson.M{"fulfillment.stockApplied": true}})
	return err
}

func (mongoOrderFlags) MarkEmailSent(ctx context.Context, orderID string) error {
	_, err := db.OrdersCollection.UpdateOne(ctx,
		bson.M{"orderId": orderID},
		bson.M{"$set": bson.M{"fulfillment.emailSent": true}})
	return err
}

// mongoStock decrements through the same atomic increment the admin stock
// controls write through. The counter can go negative; nothing re-validates
// live stock first.
type mongoStock struct{}

func (mongoStock) Decrement(ctx context.Context, productID string, quantity int) error {
	_, err := catalog.IncrementStock(ctx, productID, -quantity)
	return err
}

// StartFulfillmentWorker consumes queued tasks until the context is done.
func StartFulfillmentWorker(ctx context.Context, mailer *email.Mailer) {
	sub := rdx.Conn.Subscribe(ctx, fulfillmentChannel)
	defer sub.Close()
	ch := sub.Channel()

	fulfiller := &Fulfiller{
		Orders: mongoOrderFlags{},
		Stock:  mongoStock{},
		Mailer: mailer,
	}

	log.Println("[FulfillmentWorker] Listening for fulfillment tasks...")

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var task FulfillmentTask
			if err := json.Unmarshal([]byte(msg.Payload), &task); err != nil {
				log.Printf("[FulfillmentWorker] Failed to parse task: %v", err)
				continue
			}
			if err := fulfiller.Process(ctx, task); err != nil {
				log.Printf("[FulfillmentWorker] Task %s/%s failed: %v", task.Kind, task.OrderID, err)
			}
		case <-ctx.Done():
			return
		}
	}
}
