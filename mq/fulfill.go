package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"saaj/models"
	"saaj/rdx"
)

const fulfillmentChannel = "fulfillment-tasks"

type TaskKind string

const (
	TaskStock TaskKind = "stock"
	TaskEmail TaskKind = "email"
)

// FulfillmentTask is one queued follow-up side effect of an order, keyed by
// the order id so a replayed task never double-applies.
type FulfillmentTask struct {
	OrderID string   `json:"orderId"`
	Kind    TaskKind `json:"kind"`
}

// EnqueueFulfillment publishes follow-up tasks for an order.
func EnqueueFulfillment(ctx context.Context, orderID string, kinds ...TaskKind) error {
	for _, kind := range kinds {
		data, err := json.Marshal(FulfillmentTask{OrderID: orderID, Kind: kind})
		if err != nil {
			return err
		}
		if err := rdx.Conn.Publish(ctx, fulfillmentChannel, data).Err(); err != nil {
			return fmt.Errorf("publish %s task for %s: %w", kind, orderID, err)
		}
	}
	return nil
}

// StockAdjuster applies an atomic stock decrement for one product.
type StockAdjuster interface {
	Decrement(ctx context.Context, productID string, quantity int) error
}

// OrderMailer sends the confirmation/notification pair for an order.
type OrderMailer interface {
	SendOrderEmails(ctx context.Context, order *models.Order) error
}

// OrderFlags loads orders and records which side effects already ran.
type OrderFlags interface {
	Get(ctx context.Context, orderID string) (*models.Order, error)
	MarkStockApplied(ctx context.Context, orderID string) error
	MarkEmailSent(ctx context.Context, orderID string) error
}

// Fulfiller applies queued tasks against its collaborators.
type Fulfiller struct {
	Orders OrderFlags
	Stock  StockAdjuster
	Mailer OrderMailer
}

// Process applies one task. Stock decrements are per-line best-effort: a
// failing line is logged and the rest still run. Email failures are logged
// and swallowed. Both paths are no-ops when the applied-flag is already set.
func (f *Fulfiller) Process(ctx context.Context, task FulfillmentTask) error {
	order, err := f.Orders.Get(ctx, task.OrderID)
	if err != nil {
		return fmt.Errorf("load order %s: %w", task.OrderID, err)
	}

	switch task.Kind {
	case TaskStock:
		if order.Fulfill.StockApplied {
			return nil
		}
		for _, item := range order.Items {
			if err := f.Stock.Decrement(ctx, item.ProductID, item.Quantity); err != nil {
				log.Printf("fulfill %s: stock decrement failed for %s: %v", order.OrderID, item.ProductID, err)
			}
		}
		return f.Orders.MarkStockApplied(ctx, order.OrderID)

	case TaskEmail:
		if order.Fulfill.EmailSent {
			return nil
		}
		if order.Customer.Email == "" {
			return f.Orders.MarkEmailSent(ctx, order.OrderID)
		}
		if err := f.Mailer.SendOrderEmails(ctx, order); err != nil {
			log.Printf("fulfill %s: email send failed: %v", order.OrderID, err)
			return nil
		}
		return f.Orders.MarkEmailSent(ctx, order.OrderID)

	default:
		return fmt.Errorf("unknown task kind %q", task.Kind)
	}
}
