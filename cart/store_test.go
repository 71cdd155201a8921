package cart

import (
	"testing"

	"saaj/models"
)

func product(id string, price float64) models.Product {
	return models.Product{ProductID: id, Name: "toy " + id, Price: price}
}

func TestAddItemMergesExistingLine(t *testing.T) {
	s := NewStore()
	s.AddItem(product("p1", 100), 1)
	s.AddItem(product("p1", 100), 1)

	lines := s.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", lines[0].Quantity)
	}
}

func TestAddItemDefaultsMissingPriceToZero(t *testing.T) {
	s := NewStore()
	s.AddItem(models.Product{ProductID: "p1", Name: "no price"}, 1)
	if got := s.Lines()[0].Price; got != 0 {
		t.Fatalf("expected price 0, got %v", got)
	}
}

func TestUpdateQuantityRemovesAtZeroOrBelow(t *testing.T) {
	for _, quantity := range []int{0, -5} {
		s := NewStore()
		s.AddItem(product("p1", 50), 2)
		s.UpdateQuantity("p1", quantity)
		if len(s.Lines()) != 0 {
			t.Fatalf("quantity %d: expected line removed", quantity)
		}
	}
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	s := NewStore()
	s.AddItem(product("p1", 50), 2)
	s.UpdateQuantity("p1", 7)
	if got := s.Lines()[0].Quantity; got != 7 {
		t.Fatalf("expected quantity 7, got %d", got)
	}
}

func TestRemoveMissingLineIsNoop(t *testing.T) {
	s := NewStore()
	s.AddItem(product("p1", 50), 1)
	s.RemoveItem("p2")
	if len(s.Lines()) != 1 {
		t.Fatal("removing an absent line must not touch other lines")
	}
}

func TestDerivedTotals(t *testing.T) {
	s := NewStore()
	s.AddItem(product("p1", 100), 2)
	s.AddItem(product("p2", 50), 3)

	if got := s.Subtotal(); got != 350 {
		t.Fatalf("expected subtotal 350, got %v", got)
	}
	if got := s.ItemCount(); got != 5 {
		t.Fatalf("expected item count 5, got %d", got)
	}
}

func TestClearEmptiesCart(t *testing.T) {
	s := NewStore()
	s.AddItem(product("p1", 100), 2)
	s.Clear()
	if s.ItemCount() != 0 || s.Subtotal() != 0 || len(s.Lines()) != 0 {
		t.Fatal("expected empty cart after Clear")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s := NewStore()
	s.AddItem(product("p1", 100), 2)
	s.AddItem(product("p2", 50), 1)

	data, err := s.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	restored := Decode(data)
	if got := restored.Subtotal(); got != 250 {
		t.Fatalf("expected subtotal 250 after round trip, got %v", got)
	}
	lines := restored.Lines()
	if len(lines) != 2 || lines[0].ProductID != "p1" || lines[1].ProductID != "p2" {
		t.Fatalf("line order not preserved: %+v", lines)
	}
}

func TestDecodeCorruptPayloadFallsBackToEmpty(t *testing.T) {
	s := Decode([]byte(`{"not":"a cart"`))
	if s == nil {
		t.Fatal("expected a store, got nil")
	}
	if len(s.Lines()) != 0 {
		t.Fatal("corrupt payload must yield an empty cart")
	}
}

func TestDecodeDropsInvalidLines(t *testing.T) {
	s := Decode([]byte(`[{"id":"p1","price":10,"quantity":2},{"id":"","quantity":1},{"id":"p2","quantity":0}]`))
	if len(s.Lines()) != 1 {
		t.Fatalf("expected only the valid line to survive, got %+v", s.Lines())
	}
}
