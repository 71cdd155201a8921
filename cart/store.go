package cart

import (
	"encoding/json"
	"log"

	"saaj/models"
)

// Store owns a customer's in-progress selection, one line per product id.
// Derived values are computed on read, never cached.
type Store struct {
	lines map[string]*models.CartLine
	order []string // insertion order of product ids
}

func NewStore() *Store {
	return &Store{lines: make(map[string]*models.CartLine)}
}

// AddItem merges into an existing line or inserts a new one. Quantities
// below 1 are treated as 1. No validation against live stock happens here.
func (s *Store) AddItem(p models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	if line, ok := s.lines[p.ProductID]; ok {
		line.Quantity += quantity
		return
	}
	s.lines[p.ProductID] = &models.CartLine{
		ProductID:    p.ProductID,
		Name:         p.Name,
		Price:        p.Price,
		ImageURL:     p.ImageURL,
		CategoryName: p.CategoryName,
		Quantity:     quantity,
	}
	s.order = append(s.order, p.ProductID)
}

func (s *Store) RemoveItem(productID string) {
	if _, ok := s.lines[productID]; !ok {
		return
	}
	delete(s.lines, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// UpdateQuantity sets a line's quantity to exactly quantity. A quantity of
// zero or less removes the line.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(productID)
		return
	}
	if line, ok := s.lines[productID]; ok {
		line.Quantity = quantity
	}
}

func (s *Store) Clear() {
	s.lines = make(map[string]*models.CartLine)
	s.order = nil
}

// Lines returns the cart contents in insertion order.
func (s *Store) Lines() []models.CartLine {
	out := make([]models.CartLine, 0, len(s.order))
	for _, id := range s.order {
		if line, ok := s.lines[id]; ok {
			out = append(out, *line)
		}
	}
	return out
}

func (s *Store) ItemCount() int {
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

func (s *Store) Subtotal() float64 {
	sum := 0.0
	for _, line := range s.lines {
		sum += line.Price * float64(line.Quantity)
	}
	return sum
}

// Encode serializes the full line collection.
func (s *Store) Encode() ([]byte, error) {
	return json.Marshal(s.Lines())
}

// Decode rebuilds a store from a serialized line collection. A corrupt
// payload falls back to an empty cart; the failure is logged, not surfaced.
func Decode(data []byte) *Store {
	s := NewStore()
	if len(data) == 0 {
		return s
	}
	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		log.Println("cart: failed to parse saved cart, starting empty:", err)
		return s
	}
	for _, line := range lines {
		if line.ProductID == "" || line.Quantity <= 0 {
			continue
		}
		if existing, ok := s.lines[line.ProductID]; ok {
			existing.Quantity += line.Quantity
			continue
		}
		l := line
		s.lines[l.ProductID] = &l
		s.order = append(s.order, l.ProductID)
	}
	return s
}
