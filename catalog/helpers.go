package catalog

import (
	"context"
	"fmt"
	"net/http"

	"saaj/db"
	"saaj/models"
	"saaj/storage"
	"saaj/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// attachCategory denormalizes the category name onto the product. Empty id
// clears both fields.
func attachCategory(ctx context.Context, product *models.Product, categoryID string) error {
	if categoryID == "" {
		product.CategoryID = ""
		product.CategoryName = ""
		return nil
	}
	var category models.Category
	err := db.CategoriesCollection.FindOne(ctx, bson.M{"categoryid": categoryID}).Decode(&category)
	if err != nil {
		return fmt.Errorf("unknown category %q", categoryID)
	}
	product.CategoryID = category.CategoryID
	product.CategoryName = category.Name
	return nil
}

func attachBrand(ctx context.Context, product *models.Product, brandID string) error {
	if brandID == "" {
		product.BrandID = ""
		product.BrandName = ""
		product.BrandLogoURL = ""
		return nil
	}
	var brand models.Brand
	err := db.BrandsCollection.FindOne(ctx, bson.M{"brandid": brandID}).Decode(&brand)
	if err != nil {
		return fmt.Errorf("unknown brand %q", brandID)
	}
	product.BrandID = brand.BrandID
	product.BrandName = brand.Name
	product.BrandLogoURL = brand.LogoURL
	return nil
}

// uploadFormImage stores the optional image file from a parsed multipart
// form. Returns ok=false after writing an error response; an absent file is
// ok with an empty URL.
func uploadFormImage(w http.ResponseWriter, r *http.Request, field, folder string) (string, bool) {
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return "", true
	}
	if err != nil {
		http.Error(w, "Error retrieving image file: "+err.Error(), http.StatusBadRequest)
		return "", false
	}
	defer file.Close()

	if !utils.ValidateImageFileType(w, header) {
		return "", false
	}

	publicURL, err := storage.Upload(file, utils.SanitizeFilename(header.Filename), folder)
	if err != nil {
		http.Error(w, "Error saving image: "+err.Error(), http.StatusInternalServerError)
		return "", false
	}
	return publicURL, true
}
