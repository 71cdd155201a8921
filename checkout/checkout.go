package checkout

import (
	"context"
	"errors"
	"log"
	"time"

	"saaj/cart"
	"saaj/models"
	"saaj/mq"
	"saaj/utils"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrMissingCustomer = errors.New("customer name, email, phone and address are required")
)

// OrderID generates ids of the form SAAJ-<base36 ms timestamp>-<4 random
// base36 chars>, all uppercase. Collisions are possible but the persistence
// layer rejects a duplicate id instead of silently creating a second order.
func OrderID(now time.Time) string {
	return "SAAJ-" + utils.Base36Timestamp(now) + "-" + utils.RandomBase36(4)
}

// OrderStore persists the order record; this is the only step whose failure
// surfaces to the customer.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
}

// TaskQueue schedules the best-effort follow-ups (stock decrement, email).
type TaskQueue interface {
	Enqueue(ctx context.Context, orderID string, kinds ...mq.TaskKind) error
}

// Carts loads and drops persisted customer carts.
type Carts interface {
	Load(ctx context.Context, cartID string) *cart.Store
	Drop(ctx context.Context, cartID string) error
}

type Service struct {
	Orders OrderStore
	Tasks  TaskQueue
	Carts  Carts
}

// PlaceOrder converts the cart into a pending web order. Only the order
// write can fail the operation; the cart survives that failure so the
// customer can retry. Side effects are queued, never awaited.
func (s *Service) PlaceOrder(ctx context.Context, cartID string, customer models.Customer) (*models.Order, error) {
	store := s.Carts.Load(ctx, cartID)
	lines := store.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if customer.Name == "" || customer.Email == "" || customer.Phone == "" || customer.Address == "" {
		return nil, ErrMissingCustomer
	}

	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
			ImageURL:  line.ImageURL,
		})
	}

	now := time.Now()
	subtotal := store.Subtotal()
	order := &models.Order{
		OrderID:   OrderID(now),
		Customer:  customer,
		Items:     items,
		Subtotal:  subtotal,
		Total:     subtotal, // shipping/tax may come later
		Status:    models.OrderPending,
		Type:      models.OrderTypeWeb,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := s.Tasks.Enqueue(ctx, order.OrderID, mq.TaskStock, mq.TaskEmail); err != nil {
		log.Printf("checkout %s: enqueue fulfillment failed: %v", order.OrderID, err)
	}

	if err := s.Carts.Drop(ctx, cartID); err != nil {
		log.Printf("checkout %s: cart clear failed: %v", order.OrderID, err)
	}

	return order, nil
}
