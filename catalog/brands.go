package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"saaj/db"
	"saaj/models"
	"saaj/storage"
	"saaj/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateBrand handles the admin multipart form: name plus an optional logo.
func CreateBrand(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Unable to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	if name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	now := time.Now()
	brand := models.Brand{
		BrandID:   utils.RandomBase36(14),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	logoURL, ok := uploadFormImage(w, r, "logo", storage.FolderBrands)
	if !ok {
		return
	}
	brand.LogoURL = logoURL

	if _, err := db.BrandsCollection.InsertOne(ctx, brand); err != nil {
		storage.Delete(brand.LogoURL)
		http.Error(w, "Failed to create brand: "+err.Error(), http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"data":    brand,
	})
}

func GetBrands(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	findOpts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := db.BrandsCollection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		http.Error(w, "Failed to fetch brands", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	brands := []models.Brand{}
	if err := cursor.All(ctx, &brands); err != nil {
		http.Error(w, "Failed to decode brands", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, brands)
}

func UpdateBrand(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	brandID := ps.ByName("brandid")

	var payload struct {
		Name *string `json:"name"`
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

	res, err := db.BrandsCollection.UpdateOne(ctx,
		bson.M{"brandid": brandID},
		bson.M{"$set": updateFields})
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to update brand: %v", err), http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Brand not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Brand updated successfully",
	})
}

// DeleteBrand removes the brand only; products keep their denormalized
// brand fields.
func DeleteBrand(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	brandID := ps.ByName("brandid")

	var brand models.Brand
	if err := db.BrandsCollection.FindOne(ctx, bson.M{"brandid": brandID}).Decode(&brand); err != nil {
		http.Error(w, "Brand not found", http.StatusNotFound)
		return
	}

	if _, err := db.BrandsCollection.DeleteOne(ctx, bson.M{"brandid": brandID}); err != nil {
		http.Error(w, fmt.Sprintf("Failed to delete brand: %v", err), http.StatusInternalServerError)
		return
	}

	storage.Delete(brand.LogoURL)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Brand deleted successfully",
	})
}
