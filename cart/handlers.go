package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"saaj/db"
	"saaj/globals"
	"saaj/models"
	"saaj/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const cartCookie = "saaj_cart"

// CartID resolves the cart owner: the authenticated user if present,
// otherwise a UUID pinned to a cookie so guest carts survive reloads.
func CartID(w http.ResponseWriter, r *http.Request) string {
	if userID, ok := r.Context().Value(globals.UserIDKey).(string); ok && userID != "" {
		return userID
	}
	if c, err := r.Cookie(cartCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     cartCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 30,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func cartPayload(s *Store) utils.M {
	return utils.M{
		"items":     s.Lines(),
		"itemCount": s.ItemCount(),
		"subtotal":  s.Subtotal(),
	}
}

// GetCart returns the current cart with derived totals.
func GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s := Load(r.Context(), CartID(w, r))
	utils.RespondWithJSON(w, http.StatusOK, cartPayload(s))
}

// AddItem looks the product up in the catalog and merges it into the cart.
func AddItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		ProductID string `json:"id"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("AddItem decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if payload.ProductID == "" {
		http.Error(w, "Product id is required", http.StatusBadRequest)
		return
	}
	if payload.Quantity < 1 {
		payload.Quantity = 1
	}

	var product models.Product
	err := db.InventoryCollection.FindOne(ctx, bson.M{"productid": payload.ProductID}).Decode(&product)
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	cartID := CartID(w, r)
	s := Load(ctx, cartID)
	s.AddItem(product, payload.Quantity)

	if err := Save(ctx, cartID, s); err != nil {
		log.Println("AddItem save error:", err)
		http.Error(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, cartPayload(s))
}

// UpdateQuantity sets an absolute quantity; zero or less removes the line.
func UpdateQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("UpdateQuantity decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	cartID := CartID(w, r)
	s := Load(ctx, cartID)
	s.UpdateQuantity(ps.ByName("productid"), payload.Quantity)

	if err := Save(ctx, cartID, s); err != nil {
		log.Println("UpdateQuantity save error:", err)
		http.Error(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, cartPayload(s))
}

// RemoveItem deletes a line unconditionally; removing a missing line is a no-op.
func RemoveItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cartID := CartID(w, r)
	s := Load(ctx, cartID)
	s.RemoveItem(ps.ByName("productid"))

	if err := Save(ctx, cartID, s); err != nil {
		log.Println("RemoveItem save error:", err)
		http.Error(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, cartPayload(s))
}

// ClearCart empties the whole collection.
func ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cartID := CartID(w, r)
	if err := Drop(ctx, cartID); err != nil {
		log.Println("ClearCart error:", err)
		http.Error(w, "Failed to clear cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
