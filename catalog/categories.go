package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"saaj/db"
	"saaj/models"
	"saaj/storage"
	"saaj/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateCategory handles the admin multipart form: name, color, sortOrder
// and an optional image.
func CreateCategory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
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
	sortOrder, _ := strconv.Atoi(r.FormValue("sortOrder"))

	now := time.Now()
	category := models.Category{
		CategoryID: utils.RandomBase36(14),
		Name:       name,
		Slug:       utils.Slugify(name),
		Color:      r.FormValue("color"),
		SortOrder:  sortOrder,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	imageURL, ok := uploadFormImage(w, r, "image", storage.FolderCategories)
	if !ok {
		return
	}
	category.ImageURL = imageURL

	if _, err := db.CategoriesCollection.InsertOne(ctx, category); err != nil {
		storage.Delete(category.ImageURL)
		http.Error(w, "Failed to create category: "+err.Error(), http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"data":    category,
	})
}

func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	findOpts := options.Find().SetSort(bson.D{
		{Key: "sortOrder", Value: 1},
		{Key: "name", Value: 1},
	})
	cursor, err := db.CategoriesCollection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		http.Error(w, "Failed to fetch categories", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		http.Error(w, "Failed to decode categories", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, categories)
}

// UpdateCategory applies a partial JSON update. Renaming refreshes the slug;
// products keep their denormalized categoryName until they are next edited.
func UpdateCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	categoryID := ps.ByName("categoryid")

	var payload struct {
		Name      *string `json:"name"`
		Color     *string `json:"color"`
		SortOrder *int    `json:"sortOrder"`
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
		updateFields["slug"] = utils.Slugify(*payload.Name)
	}
	if payload.Color != nil {
		updateFields["color"] = *payload.Color
	}
	if payload.SortOrder != nil {
		updateFields["sortOrder"] = *payload.SortOrder
	}

	res, err := db.CategoriesCollection.UpdateOne(ctx,
		bson.M{"categoryid": categoryID},
		bson.M{"$set": updateFields})
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to update category: %v", err), http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Category updated successfully",
	})
}

// DeleteCategory removes the category only; products referencing it keep
// their denormalized name.
func DeleteCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	categoryID := ps.ByName("categoryid")

	var category models.Category
	if err := db.CategoriesCollection.FindOne(ctx, bson.M{"categoryid": categoryID}).Decode(&category); err != nil {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}

	if _, err := db.CategoriesCollection.DeleteOne(ctx, bson.M{"categoryid": categoryID}); err != nil {
		http.Error(w, fmt.Sprintf("Failed to delete category: %v", err), http.StatusInternalServerError)
		return
	}

	storage.Delete(category.ImageURL)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Category deleted successfully",
	})
}
