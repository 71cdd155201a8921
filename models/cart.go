package models

// CartLine is one product-quantity pairing in a customer's cart.
// At most one line exists per product id; a quantity of zero or less
// is never persisted (the line is removed instead).
type CartLine struct {
	ProductID    string  `json:"id" bson:"productid"`
	Name         string  `json:"name" bson:"name"`
	Price        float64 `json:"price" bson:"price"`
	ImageURL     string  `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	CategoryName string  `json:"categoryName,omitempty" bson:"categoryName,omitempty"`
	Quantity     int     `json:"quantity" bson:"quantity"`
}
