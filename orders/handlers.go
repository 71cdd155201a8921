package orders

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"saaj/db"
	"saaj/live"
	"saaj/models"
	"saaj/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validStatuses = map[string]bool{
	models.OrderPending:   true,
	models.OrderConfirmed: true,
	models.OrderShipped:   true,
	models.OrderDelivered: true,
	models.OrderCancelled: true,
}

// GetOrders lists orders newest first, with optional ?status= filter.
func GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.OrdersCollection.Find(ctx, filter, opts)
	if err != nil {
		log.Println("GetOrders Find error:", err)
		http.Error(w, "Could not retrieve orders", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var list []models.Order
	if err := cursor.All(ctx, &list); err != nil {
		log.Println("GetOrders cursor.All error:", err)
		http.Error(w, "Error reading orders", http.StatusInternalServerError)
		return
	}
	if len(list) == 0 {
		list = []models.Order{}
	}

	utils.RespondWithJSON(w, http.StatusOK, list)
}

func GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, err := Store{}.ByID(ctx, ps.ByName("orderid"))
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

// UpdateOrderStatus applies an admin-driven status transition.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if !validStatuses[payload.Status] {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	orderID := ps.ByName("orderid")
	res, err := db.OrdersCollection.UpdateOne(ctx,
		bson.M{"orderId": orderID},
		bson.M{"$set": bson.M{"status": payload.Status, "updatedAt": time.Now()}})
	if err != nil {
		log.Println("UpdateOrderStatus error:", err)
		http.Error(w, "Failed to update order status", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	if order, err := (Store{}).ByID(ctx, orderID); err == nil {
		live.BroadcastOrder("order_status", order)
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": payload.Status})
}

func DeleteOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.OrdersCollection.DeleteOne(ctx, bson.M{"orderId": ps.ByName("orderid")})
	if err != nil {
		log.Println("DeleteOrder error:", err)
		http.Error(w, "Failed to delete order", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
