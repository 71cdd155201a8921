package models

import "time"

// Product is one catalog entry browsed by customers and managed by admins.
type Product struct {
	ProductID    string    `json:"id" bson:"productid"`
	Name         string    `json:"name" bson:"name"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	CategoryID   string    `json:"categoryId,omitempty" bson:"categoryId,omitempty"`
	CategoryName string    `json:"categoryName,omitempty" bson:"categoryName,omitempty"`
	BrandID      string    `json:"brandId,omitempty" bson:"brandId,omitempty"`
	BrandName    string    `json:"brandName,omitempty" bson:"brandName,omitempty"`
	BrandLogoURL string    `json:"brandLogoUrl,omitempty" bson:"brandLogoUrl,omitempty"`
	Count        int       `json:"count" bson:"count"`
	Price        float64   `json:"price" bson:"price"`
	Featured     bool      `json:"featured" bson:"featured"`
	ImageURL     string    `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

type Category struct {
	CategoryID string    `json:"id" bson:"categoryid"`
	Name       string    `json:"name" bson:"name"`
	Slug       string    `json:"slug" bson:"slug"`
	Color      string    `json:"color,omitempty" bson:"color,omitempty"`
	ImageURL   string    `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	SortOrder  int       `json:"sortOrder" bson:"sortOrder"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}

type Brand struct {
	BrandID   string    `json:"id" bson:"brandid"`
	Name      string    `json:"name" bson:"name"`
	LogoURL   string    `json:"logoUrl,omitempty" bson:"logoUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Contact is one contact-form submission.
type Contact struct {
	ContactID string    `json:"id" bson:"contactid"`
	FirstName string    `json:"firstName" bson:"firstName"`
	LastName  string    `json:"lastName,omitempty" bson:"lastName,omitempty"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty" bson:"subject,omitempty"`
	Message   string    `json:"message" bson:"message"`
	Read      bool      `json:"read" bson:"read"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type User struct {
	UserID   string   `json:"userid" bson:"userid"`
	Username string   `json:"username" bson:"username"`
	Password string   `json:"-" bson:"password"`
	Role     []string `json:"role" bson:"role"`
}
