package orderbuilder

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"saaj/live"
	"saaj/models"
	"saaj/mq"
	"saaj/orders"
	"saaj/utils"

	"github.com/julienschmidt/httprouter"
)

// The admin UI keeps the builder client-side and posts the whole thing on
// submit. The payload is replayed through the builder ops so quantity floors
// and price/discount coercion apply server-side too.
type submitPayload struct {
	Customer models.Customer `json:"customer"`
	Items    []struct {
		ProductID     string      `json:"id"`
		Name          string      `json:"name"`
		Price         json.Number `json:"price"`
		OriginalPrice float64     `json:"originalPrice"`
		ImageURL      string      `json:"imageUrl"`
		Quantity      int         `json:"quantity"`
		Stock         int         `json:"stock"`
	} `json:"items"`
	Discount json.Number `json:"discount"`
}

// CreateManualOrder persists a staff-entered order.
func CreateManualOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload submitPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("CreateManualOrder decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	b := NewBuilder()
	for _, item := range payload.Items {
		product := models.Product{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.OriginalPrice,
			ImageURL:  item.ImageURL,
			Count:     item.Stock,
		}
		b.AddProduct(product)
		b.UpdateQuantity(item.ProductID, item.Quantity-1)
		b.UpdatePrice(item.ProductID, item.Price.String())
	}
	b.SetDiscount(payload.Discount.String())

	order, err := b.Submit(ctx, payload.Customer, orders.Store{})
	if err != nil {
		switch {
		case errors.Is(err, ErrNoItems), errors.Is(err, ErrMissingCustomer):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Println("CreateManualOrder persist error:", err)
			http.Error(w, "Failed to create order", http.StatusInternalServerError)
		}
		return
	}

	live.BroadcastOrder("order_created", order)

	// Manual orders skip stock decrement (staff adjust counts directly) but
	// still get a best-effort confirmation email when an address is present.
	if order.Customer.Email != "" {
		if err := mq.EnqueueFulfillment(ctx, order.OrderID, mq.TaskEmail); err != nil {
			log.Println("CreateManualOrder email enqueue error:", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusCreated, order)
}
