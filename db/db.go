package db

import (
	"context"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	InventoryCollection  *mongo.Collection
	CategoriesCollection *mongo.Collection
	BrandsCollection     *mongo.Collection
	OrdersCollection     *mongo.Collection
	ContactsCollection   *mongo.Collection
	UserCollection       *mongo.Collection
	Client               *mongo.Client
)

// Initialize MongoDB connection
func init() {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("saajdb")
	InventoryCollection = database.Collection("inventory")
	CategoriesCollection = database.Collection("categories")
	BrandsCollection = database.Collection("brands")
	OrdersCollection = database.Collection("orders")
	ContactsCollection = database.Collection("contacts")
	UserCollection = database.Collection("users")
}
