package orderbuilder

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"saaj/models"
)

func toy(id string, price float64, count int) models.Product {
	return models.Product{ProductID: id, Name: "toy " + id, Price: price, Count: count}
}

func TestAddProductMergesAndSnapshots(t *testing.T) {
	b := NewBuilder()
	b.AddProduct(toy("p1", 150, 4))
	b.AddProduct(toy("p1", 150, 4))

	lines := b.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	line := lines[0]
	if line.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", line.Quantity)
	}
	if line.OriginalPrice != 150 || line.Stock != 4 {
		t.Fatalf("snapshots wrong: %+v", line)
	}
}

func TestUpdateQuantityFloorsAtOne(t *testing.T) {
	b := NewBuilder()
	b.AddProduct(toy("p1", 100, 10))

	b.UpdateQuantity("p1", -1)
	if got := b.Lines()[0].Quantity; got != 1 {
		t.Fatalf("expected quantity floored at 1, got %d", got)
	}

	b.UpdateQuantity("p1", -100)
	if got := b.Lines()[0].Quantity; got != 1 {
		t.Fatalf("expected quantity floored at 1, got %d", got)
	}

	b.UpdateQuantity("p1", 3)
	if got := b.Lines()[0].Quantity; got != 4 {
		t.Fatalf("expected quantity 4, got %d", got)
	}
}

func TestUpdatePriceNeverTouchesOriginal(t *testing.T) {
	b := NewBuilder()
	b.AddProduct(toy("p1", 200, 10))

	b.UpdatePrice("p1", "120.5")
	line := b.Lines()[0]
	if line.Price != 120.5 || line.OriginalPrice != 200 {
		t.Fatalf("override leaked into snapshot: %+v", line)
	}
	if !line.Discounted() {
		t.Fatal("expected discounted flag after override")
	}

	b.UpdatePrice("p1", "200")
	if b.Lines()[0].Discounted() {
		t.Fatal("reverting to original price must clear the discounted flag")
	}
}

func TestUpdatePriceCoercesGarbageToZero(t *testing.T) {
	b := NewBuilder()
	b.AddProduct(toy("p1", 200, 10))
	b.UpdatePrice("p1", "abc")
	if got := b.Lines()[0].Price; got != 0 {
		t.Fatalf("expected price 0, got %v", got)
	}
}

func TestDiscountClampsTotalAtZero(t *testing.T) {
	b := NewBuilder()
	b.AddProduct(toy("p1", 500, 10))
	b.SetDiscount("800")

	if got := b.Subtotal(); got != 500 {
		t.Fatalf("expected subtotal 500, got %v", got)
	}
	if got := b.Total(); got != 0 {
		t.Fatalf("expected total clamped to 0, got %v", got)
	}
}

func TestInvalidDiscountCoercesToZero(t *testing.T) {
	b := NewBuilder()
	b.AddProduct(toy("p1", 500, 10))
	for _, raw := range []string{"", "nope", "-50"} {
		b.SetDiscount(raw)
		if got := b.Discount(); got != 0 {
			t.Fatalf("discount %q: expected 0, got %v", raw, got)
		}
	}
}

func TestLowStockFlag(t *testing.T) {
	b := NewBuilder()
	b.AddProduct(toy("p1", 100, 2))

	if b.Lines()[0].LowStock() {
		t.Fatal("stock 2 vs quantity 1 must not flag")
	}
	b.UpdateQuantity("p1", 1)
	if !b.Lines()[0].LowStock() {
		t.Fatal("stock 2 vs quantity 2 must flag")
	}
}

func TestManualOrderIDFormat(t *testing.T) {
	id := ManualOrderID(time.Now())
	if !regexp.MustCompile(`^M-SAAJ-[0-9A-Z]+$`).MatchString(id) {
		t.Fatalf("bad manual order id: %s", id)
	}
}

type fakeCreator struct {
	err   error
	saved *models.Order
}

func (f *fakeCreator) Create(_ context.Context, order *models.Order) error {
	if f.err != nil {
		return f.err
	}
	f.saved = order
	return nil
}

func validCustomer() models.Customer {
	return models.Customer{Name: "A Shop", Phone: "99999", Address: "Market Rd"}
}

func TestSubmitBuildsConfirmedManualOrder(t *testing.T) {
	b := NewBuilder()
	b.AddProduct(toy("p1", 150, 10))
	b.UpdateQuantity("p1", 1) // quantity 2
	b.SetDiscount("50")

	creator := &fakeCreator{}
	order, err := b.Submit(context.Background(), validCustomer(), creator)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if order.Subtotal != 300 || order.Total != 250 {
		t.Fatalf("totals wrong: subtotal=%v total=%v", order.Subtotal, order.Total)
	}
	if order.Status != models.OrderConfirmed || order.Type != models.OrderTypeManual {
		t.Fatalf("expected confirmed manual order, got %s/%s", order.Status, order.Type)
	}
	if creator.saved == nil {
		t.Fatal("order was not persisted")
	}
	if len(b.Lines()) != 0 || b.Discount() != 0 {
		t.Fatal("builder must reset after a confirmed success")
	}
}

func TestSubmitValidation(t *testing.T) {
	b := NewBuilder()
	if _, err := b.Submit(context.Background(), validCustomer(), &fakeCreator{}); !errors.Is(err, ErrNoItems) {
		t.Fatalf("expected ErrNoItems, got %v", err)
	}

	b.AddProduct(toy("p1", 100, 5))
	if _, err := b.Submit(context.Background(), models.Customer{Name: "x"}, &fakeCreator{}); !errors.Is(err, ErrMissingCustomer) {
		t.Fatalf("expected ErrMissingCustomer, got %v", err)
	}

	// email is optional
	if _, err := b.Submit(context.Background(), validCustomer(), &fakeCreator{}); err != nil {
		t.Fatalf("email must be optional: %v", err)
	}
}

func TestSubmitFailurePreservesState(t *testing.T) {
	b := NewBuilder()
	b.AddProduct(toy("p1", 100, 5))
	b.SetDiscount("10")

	creator := &fakeCreator{err: errors.New("write failed")}
	if _, err := b.Submit(context.Background(), validCustomer(), creator); err == nil {
		t.Fatal("expected persistence failure to propagate")
	}
	if len(b.Lines()) != 1 || b.Discount() != 10 {
		t.Fatal("builder state must survive a failed submit for retry")
	}
}
