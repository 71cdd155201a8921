package invoice

import (
	"bytes"
	"testing"
	"time"

	"saaj/models"
)

func sampleOrder() *models.Order {
	return &models.Order{
		OrderID: "M-SAAJ-TEST1",
		Customer: models.Customer{
			Name: "Asha Stores", Phone: "9876543210", Address: "12 MG Road, Pune",
		},
		Items: []models.OrderItem{
			{ProductID: "p1", Name: "Teddy Bear", Price: 250, Quantity: 4},
			{ProductID: "p2", Name: "Toy Car", Price: 120, Quantity: 10},
		},
		Subtotal:  2200,
		Discount:  200,
		Total:     2000,
		Status:    models.OrderConfirmed,
		Type:      models.OrderTypeManual,
		CreatedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestBuildProducesPDF(t *testing.T) {
	pdfBytes, err := Build(sampleOrder())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatalf("output is not a pdf, starts with %q", pdfBytes[:8])
	}
	if len(pdfBytes) < 1000 {
		t.Fatalf("suspiciously small pdf: %d bytes", len(pdfBytes))
	}
}

func TestBuildHandlesWebOrderWithoutDiscount(t *testing.T) {
	order := sampleOrder()
	order.Type = models.OrderTypeWeb
	order.Discount = 0
	order.Customer.Email = "asha@example.com"

	if _, err := Build(order); err != nil {
		t.Fatalf("build: %v", err)
	}
}
