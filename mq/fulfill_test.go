package mq

import (
	"context"
	"errors"
	"testing"

	"saaj/models"
)

type memFlags struct {
	order *models.Order
}

func (m *memFlags) Get(_ context.Context, orderID string) (*models.Order, error) {
	if m.order == nil || m.order.OrderID != orderID {
		return nil, errors.New("not found")
	}
	copied := *m.order
	return &copied, nil
}

func (m *memFlags) MarkStockApplied(_ context.Context, _ string) error {
	m.order.Fulfill.StockApplied = true
	return nil
}

func (m *memFlags) MarkEmailSent(_ context.Context, _ string) error {
	m.order.Fulfill.EmailSent = true
	return nil
}

type recordingStock struct {
	failFor    map[string]bool
	decrements map[string]int
}

func (s *recordingStock) Decrement(_ context.Context, productID string, quantity int) error {
	if s.failFor[productID] {
		return errors.New("decrement failed")
	}
	if s.decrements == nil {
		s.decrements = make(map[string]int)
	}
	s.decrements[productID] += quantity
	return nil
}

type countingMailer struct {
	sent int
	err  error
}

func (m *countingMailer) SendOrderEmails(_ context.Context, _ *models.Order) error {
	if m.err != nil {
		return m.err
	}
	m.sent++
	return nil
}

func twoLineOrder() *models.Order {
	return &models.Order{
		OrderID: "SAAJ-TEST-AAAA",
		Customer: models.Customer{
			Name: "Asha", Email: "asha@example.com", Phone: "1", Address: "x",
		},
		Items: []models.OrderItem{
			{ProductID: "p1", Name: "Toy Car", Price: 100, Quantity: 2},
			{ProductID: "p2", Name: "Doll", Price: 50, Quantity: 1},
		},
		Status: models.OrderPending,
	}
}

func TestStockTaskToleratesPerLineFailure(t *testing.T) {
	flags := &memFlags{order: twoLineOrder()}
	stock := &recordingStock{failFor: map[string]bool{"p2": true}}
	f := &Fulfiller{Orders: flags, Stock: stock, Mailer: &countingMailer{}}

	err := f.Process(context.Background(), FulfillmentTask{OrderID: "SAAJ-TEST-AAAA", Kind: TaskStock})
	if err != nil {
		t.Fatalf("a failing line must not fail the task: %v", err)
	}
	if stock.decrements["p1"] != 2 {
		t.Fatalf("first line must still decrement, got %v", stock.decrements)
	}
	if !flags.order.Fulfill.StockApplied {
		t.Fatal("stock task must mark itself applied")
	}
}

func TestStockTaskIsIdempotent(t *testing.T) {
	flags := &memFlags{order: twoLineOrder()}
	stock := &recordingStock{}
	f := &Fulfiller{Orders: flags, Stock: stock, Mailer: &countingMailer{}}

	task := FulfillmentTask{OrderID: "SAAJ-TEST-AAAA", Kind: TaskStock}
	if err := f.Process(context.Background(), task); err != nil {
		t.Fatal(err)
	}
	if err := f.Process(context.Background(), task); err != nil {
		t.Fatal(err)
	}

	if stock.decrements["p1"] != 2 || stock.decrements["p2"] != 1 {
		t.Fatalf("replayed task must not double-decrement: %v", stock.decrements)
	}
}

func TestEmailTaskIsIdempotentAndSwallowsFailure(t *testing.T) {
	flags := &memFlags{order: twoLineOrder()}
	mailer := &countingMailer{}
	f := &Fulfiller{Orders: flags, Stock: &recordingStock{}, Mailer: mailer}

	task := FulfillmentTask{OrderID: "SAAJ-TEST-AAAA", Kind: TaskEmail}
	if err := f.Process(context.Background(), task); err != nil {
		t.Fatal(err)
	}
	if err := f.Process(context.Background(), task); err != nil {
		t.Fatal(err)
	}
	if mailer.sent != 1 {
		t.Fatalf("replayed task must not double-send, sent=%d", mailer.sent)
	}

	// send failure is logged, not raised, and the flag stays unset
	flags2 := &memFlags{order: twoLineOrder()}
	failing := &countingMailer{err: errors.New("provider down")}
	f2 := &Fulfiller{Orders: flags2, Stock: &recordingStock{}, Mailer: failing}
	if err := f2.Process(context.Background(), task); err != nil {
		t.Fatalf("email failure must be swallowed: %v", err)
	}
	if flags2.order.Fulfill.EmailSent {
		t.Fatal("failed send must not be marked sent")
	}
}

func TestEmailTaskSkipsOrdersWithoutAddress(t *testing.T) {
	order := twoLineOrder()
	order.Customer.Email = ""
	flags := &memFlags{order: order}
	mailer := &countingMailer{}
	f := &Fulfiller{Orders: flags, Stock: &recordingStock{}, Mailer: mailer}

	if err := f.Process(context.Background(), FulfillmentTask{OrderID: order.OrderID, Kind: TaskEmail}); err != nil {
		t.Fatal(err)
	}
	if mailer.sent != 0 {
		t.Fatal("no email expected without a customer address")
	}
	if !flags.order.Fulfill.EmailSent {
		t.Fatal("skip must still mark the task done")
	}
}
