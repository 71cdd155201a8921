package models

import "time"

// Order statuses, admin-driven after creation.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Order types.
const (
	OrderTypeWeb    = "web"
	OrderTypeManual = "manual"
)

type Customer struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email,omitempty" bson:"email,omitempty"`
	Phone   string `json:"phone" bson:"phone"`
	Address string `json:"address" bson:"address"`
}

type OrderItem struct {
	ProductID string  `json:"id" bson:"productid"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	ImageURL  string  `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
}

// Fulfillment tracks which follow-up side effects have been applied to an
// order, keyed by the order id so a replayed task is a no-op.
type Fulfillment struct {
	StockApplied bool `json:"stockApplied" bson:"stockApplied"`
	EmailSent    bool `json:"emailSent" bson:"emailSent"`
}

type Order struct {
	OrderID   string      `json:"orderId" bson:"orderId"`
	Customer  Customer    `json:"customer" bson:"customer"`
	Items     []OrderItem `json:"items" bson:"items"`
	Subtotal  float64     `json:"subtotal" bson:"subtotal"`
	Discount  float64     `json:"discount,omitempty" bson:"discount,omitempty"`
	Total     float64     `json:"total" bson:"total"`
	Status    string      `json:"status" bson:"status"`
	Type      string      `json:"type,omitempty" bson:"type,omitempty"`
	Fulfill   Fulfillment `json:"fulfillment" bson:"fulfillment"`
	CreatedAt time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt" bson:"updatedAt"`
}
