package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"saaj/db"
	"saaj/models"
	"saaj/rdx"
	"saaj/storage"
	"saaj/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNoProduct = errors.New("no such product")

const productCacheTTL = 10 * time.Minute

func productCacheKey(id string) string { return "product:" + id }

// CreateProduct handles the admin multipart form: product fields plus an
// optional image file.
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Unable to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	if len(name) == 0 || len(name) > 200 {
		http.Error(w, "Name must be between 1 and 200 characters.", http.StatusBadRequest)
		return
	}
	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil || price < 0 {
		http.Error(w, "Invalid price value. Must be a non-negative number.", http.StatusBadRequest)
		return
	}
	count, err := strconv.Atoi(r.FormValue("count"))
	if err != nil || count < 0 {
		http.Error(w, "Invalid count value. Must be a non-negative integer.", http.StatusBadRequest)
		return
	}

	now := time.Now()
	product := models.Product{
		ProductID:   utils.RandomBase36(14),
		Name:        name,
		Description: r.FormValue("description"),
		Price:       price,
		Count:       count,
		Featured:    r.FormValue("featured") == "true",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := attachCategory(ctx, &product, r.FormValue("categoryId")); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := attachBrand(ctx, &product, r.FormValue("brandId")); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	imageURL, ok := uploadFormImage(w, r, "image", storage.FolderProducts)
	if !ok {
		return
	}
	product.ImageURL = imageURL

	if _, err := db.InventoryCollection.InsertOne(ctx, product); err != nil {
		storage.Delete(product.ImageURL)
		http.Error(w, "Failed to create product: "+err.Error(), http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"data":    product,
	})
}

// listFilter maps catalog query parameters onto a mongo filter.
func listFilter(q url.Values) bson.M {
	filter := bson.M{}
	if category := q.Get("category"); category != "" {
		filter["categoryId"] = category
	}
	if brand := q.Get("brand"); brand != "" {
		filter["brandId"] = brand
	}
	if q.Get("featured") == "true" {
		filter["featured"] = true
	}
	if search := q.Get("q"); search != "" {
		filter["name"] = bson.M{"$regex": search, "$options": "i"}
	}
	return filter
}

func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	findOpts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := db.InventoryCollection.Find(ctx, listFilter(r.URL.Query()), findOpts)
	if err != nil {
		http.Error(w, "Failed to fetch products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		http.Error(w, "Failed to decode products", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, products)
}

func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	productID := ps.ByName("productid")

	if cached, err := rdx.RdxGet(productCacheKey(productID)); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	var product models.Product
	err := db.InventoryCollection.FindOne(r.Context(), bson.M{"productid": productID}).Decode(&product)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	if raw, err := json.Marshal(product); err == nil {
		rdx.RdxSetWithTTL(productCacheKey(productID), string(raw), productCacheTTL)
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}

// UpdateProduct applies a partial JSON update. Pointer fields distinguish
// "absent" from zero values.
func UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	productID := ps.ByName("productid")

	var payload struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Count       *int     `json:"count"`
		Featured    *bool    `json:"featured"`
		CategoryID  *string  `json:"categoryId"`
		BrandID     *string  `json:"brandId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid input data", http.StatusBadRequest)
		return
	}

	updateFields := bson.M{"updatedAt": time.Now()}
	if payload.Name != nil {
		if *payload.Name == "" {
			http.Error(w, "Name cannot be empty", http.StatusBadRequest)
			return
		}
		updateFields["name"] = *payload.Name
	}
	if payload.Description != nil {
		updateFields["description"] = *payload.Description
	}
	if payload.Price != nil {
		if *payload.Price < 0 {
			http.Error(w, "Price cannot be negative", http.StatusBadRequest)
			return
		}
		updateFields["price"] = *payload.Price
	}
	if payload.Count != nil {
		if *payload.Count < 0 {
			http.Error(w, "Count cannot be negative", http.StatusBadRequest)
			return
		}
		updateFields["count"] = *payload.Count
	}
	if payload.Featured != nil {
		updateFields["featured"] = *payload.Featured
	}
	if payload.CategoryID != nil {
		var p models.Product
		if err := attachCategory(ctx, &p, *payload.CategoryID); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		updateFields["categoryId"] = p.CategoryID
		updateFields["categoryName"] = p.CategoryName
	}
	if payload.BrandID != nil {
		var p models.Product
		if err := attachBrand(ctx, &p, *payload.BrandID); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		updateFields["brandId"] = p.BrandID
		updateFields["brandName"] = p.BrandName
		updateFields["brandLogoUrl"] = p.BrandLogoURL
	}

	res, err := db.InventoryCollection.UpdateOne(ctx,
		bson.M{"productid": productID},
		bson.M{"$set": updateFields})
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to update product: %v", err), http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	rdx.RdxDel(productCacheKey(productID))

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Product updated successfully",
	})
}

// UpdateProductImage replaces the stored image and removes the old one.
func UpdateProductImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	productID := ps.ByName("productid")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Unable to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	var product models.Product
	if err := db.InventoryCollection.FindOne(ctx, bson.M{"productid": productID}).Decode(&product); err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	imageURL, ok := uploadFormImage(w, r, "image", storage.FolderProducts)
	if !ok {
		return
	}
	if imageURL == "" {
		http.Error(w, "Image file is required", http.StatusBadRequest)
		return
	}

	_, err := db.InventoryCollection.UpdateOne(ctx,
		bson.M{"productid": productID},
		bson.M{"$set": bson.M{"imageUrl": imageURL, "updatedAt": time.Now()}})
	if err != nil {
		storage.Delete(imageURL)
		http.Error(w, "Failed to update product image", http.StatusInternalServerError)
		return
	}

	storage.Delete(product.ImageURL)
	rdx.RdxDel(productCacheKey(productID))

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":  true,
		"imageUrl": imageURL,
	})
}

func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	productID := ps.ByName("productid")

	var product models.Product
	if err := db.InventoryCollection.FindOne(ctx, bson.M{"productid": productID}).Decode(&product); err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	if _, err := db.InventoryCollection.DeleteOne(ctx, bson.M{"productid": productID}); err != nil {
		http.Error(w, fmt.Sprintf("Failed to delete product: %v", err), http.StatusInternalServerError)
		return
	}

	storage.Delete(product.ImageURL)
	rdx.RdxDel(productCacheKey(productID))

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Product deleted successfully",
	})
}

// IncrementStock is the one write path for stock counters. Admin adjustments
// and checkout decrements both go through this atomic $inc; the counter can
// go negative, nothing re-validates live stock first.
func IncrementStock(ctx context.Context, productID string, delta int) (int, error) {
	res := db.InventoryCollection.FindOneAndUpdate(ctx,
		bson.M{"productid": productID},
		bson.M{"$inc": bson.M{"count": delta}, "$set": bson.M{"updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After))

	var product models.Product
	if err := res.Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, fmt.Errorf("%w: %s", ErrNoProduct, productID)
		}
		return 0, err
	}

	rdx.RdxDel(productCacheKey(productID))
	return product.Count, nil
}

// AdjustStock handles the admin stock controls: a relative delta or an
// absolute set.
func AdjustStock(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	productID := ps.ByName("productid")

	var payload struct {
		Delta *int `json:"delta"`
		Set   *int `json:"set"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid input data", http.StatusBadRequest)
		return
	}

	switch {
	case payload.Set != nil:
		if *payload.Set < 0 {
			http.Error(w, "Stock cannot be set below zero", http.StatusBadRequest)
			return
		}
		res, err := db.InventoryCollection.UpdateOne(ctx,
			bson.M{"productid": productID},
			bson.M{"$set": bson.M{"count": *payload.Set, "updatedAt": time.Now()}})
		if err != nil {
			http.Error(w, "Failed to update stock", http.StatusInternalServerError)
			return
		}
		if res.MatchedCount == 0 {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		rdx.RdxDel(productCacheKey(productID))
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "count": *payload.Set})

	case payload.Delta != nil && *payload.Delta != 0:
		count, err := IncrementStock(ctx, productID, *payload.Delta)
		if err != nil {
			if errors.Is(err, ErrNoProduct) {
				http.Error(w, "Product not found", http.StatusNotFound)
				return
			}
			log.Println("AdjustStock error:", err)
			http.Error(w, "Failed to update stock", http.StatusInternalServerError)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "count": count})

	default:
		http.Error(w, "Either delta or set is required", http.StatusBadRequest)
	}
}
