package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"saaj/cart"
	"saaj/live"
	"saaj/models"
	"saaj/mq"
	"saaj/orders"
	"saaj/utils"

	"github.com/julienschmidt/httprouter"
)

type redisCarts struct{}

func (redisCarts) Load(ctx context.Context, cartID string) *cart.Store { return cart.Load(ctx, cartID) }
func (redisCarts) Drop(ctx context.Context, cartID string) error       { return cart.Drop(ctx, cartID) }

type redisTasks struct{}

func (redisTasks) Enqueue(ctx context.Context, orderID string, kinds ...mq.TaskKind) error {
	return mq.EnqueueFulfillment(ctx, orderID, kinds...)
}

func defaultService() *Service {
	return &Service{
		Orders: orders.Store{},
		Tasks:  redisTasks{},
		Carts:  redisCarts{},
	}
}

// PlaceOrder is the customer checkout endpoint.
func PlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		Customer models.Customer `json:"customer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("PlaceOrder decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	cartID := cart.CartID(w, r)
	order, err := defaultService().PlaceOrder(ctx, cartID, payload.Customer)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyCart), errors.Is(err, ErrMissingCustomer):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, orders.ErrDuplicateOrderID):
			http.Error(w, "Order was already placed", http.StatusConflict)
		default:
			log.Println("PlaceOrder persist error:", err)
			http.Error(w, "Failed to place order. Please try again.", http.StatusInternalServerError)
		}
		return
	}

	live.BroadcastOrder("order_created", order)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"orderId": order.OrderID,
		"order":   order,
	})
}
