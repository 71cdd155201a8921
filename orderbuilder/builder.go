package orderbuilder

import (
	"context"
	"errors"
	"strconv"
	"time"

	"saaj/models"
	"saaj/utils"
)

var (
	ErrNoItems         = errors.New("order must contain at least one product")
	ErrMissingCustomer = errors.New("customer name, phone and address are required")
)

// Line is one staff-entered order position. OriginalPrice and Stock are
// snapshots taken when the product was added; only Price and Quantity change
// afterwards.
type Line struct {
	ProductID     string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	ImageURL      string  `json:"imageUrl,omitempty"`
	Quantity      int     `json:"quantity"`
	Stock         int     `json:"stock"`
}

// Discounted reports whether staff overrode the catalog price on this line.
func (l Line) Discounted() bool {
	return l.Price != l.OriginalPrice
}

// LowStock flags a line whose snapshotted stock does not cover the quantity.
// Presentation only; Submit does not re-check against live inventory.
func (l Line) LowStock() bool {
	return l.Stock <= l.Quantity
}

// Builder assembles a manual order independent of any customer cart.
type Builder struct {
	lines    map[string]*Line
	order    []string
	discount float64
}

func NewBuilder() *Builder {
	return &Builder{lines: make(map[string]*Line)}
}

// AddProduct merges by product id (quantity +1) or inserts a fresh line with
// price, original price and stock snapshotted from the catalog entry.
func (b *Builder) AddProduct(p models.Product) {
	if line, ok := b.lines[p.ProductID]; ok {
		line.Quantity++
		return
	}
	b.lines[p.ProductID] = &Line{
		ProductID:     p.ProductID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.Price,
		ImageURL:      p.ImageURL,
		Quantity:      1,
		Stock:         p.Count,
	}
	b.order = append(b.order, p.ProductID)
}

// UpdateQuantity applies a delta, floored at 1. Lines are only ever removed
// explicitly, never by decrementing.
func (b *Builder) UpdateQuantity(productID string, delta int) {
	if line, ok := b.lines[productID]; ok {
		newQty := line.Quantity + delta
		if newQty < 1 {
			newQty = 1
		}
		line.Quantity = newQty
	}
}

// UpdatePrice overrides a line's price from raw staff input. Unparseable
// input coerces to 0. The original-price snapshot is untouched.
func (b *Builder) UpdatePrice(productID, raw string) {
	if line, ok := b.lines[productID]; ok {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil || price < 0 {
			price = 0
		}
		line.Price = price
	}
}

func (b *Builder) RemoveItem(productID string) {
	if _, ok := b.lines[productID]; !ok {
		return
	}
	delete(b.lines, productID)
	for i, id := range b.order {
		if id == productID {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// SetDiscount stores the flat order-level amount. Invalid or negative input
// coerces to 0.
func (b *Builder) SetDiscount(raw string) {
	discount, err := strconv.ParseFloat(raw, 64)
	if err != nil || discount < 0 {
		discount = 0
	}
	b.discount = discount
}

func (b *Builder) Discount() float64 { return b.discount }

func (b *Builder) Lines() []Line {
	out := make([]Line, 0, len(b.order))
	for _, id := range b.order {
		if line, ok := b.lines[id]; ok {
			out = append(out, *line)
		}
	}
	return out
}

func (b *Builder) Subtotal() float64 {
	sum := 0.0
	for _, line := range b.lines {
		sum += line.Price * float64(line.Quantity)
	}
	return sum
}

// Total is never negative regardless of discount magnitude.
func (b *Builder) Total() float64 {
	total := b.Subtotal() - b.discount
	if total < 0 {
		return 0
	}
	return total
}

func (b *Builder) Reset() {
	b.lines = make(map[string]*Line)
	b.order = nil
	b.discount = 0
}

// ManualOrderID generates ids of the form M-SAAJ-<base36 ms timestamp>.
func ManualOrderID(now time.Time) string {
	return "M-SAAJ-" + utils.Base36Timestamp(now)
}

// OrderCreator persists finalized orders.
type OrderCreator interface {
	Create(ctx context.Context, order *models.Order) error
}

// Submit validates the builder, persists a confirmed manual order and resets
// the builder. On persistence failure the builder state is preserved so staff
// can retry.
func (b *Builder) Submit(ctx context.Context, customer models.Customer, creator OrderCreator) (*models.Order, error) {
	if len(b.lines) == 0 {
		return nil, ErrNoItems
	}
	if customer.Name == "" || customer.Phone == "" || customer.Address == "" {
		return nil, ErrMissingCustomer
	}

	lines := b.Lines()
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
			ImageURL:  line.ImageURL,
		})
	}

	now := time.Now()
	order := &models.Order{
		OrderID:   ManualOrderID(now),
		Customer:  customer,
		Items:     items,
		Subtotal:  b.Subtotal(),
		Discount:  b.discount,
		Total:     b.Total(),
		Status:    models.OrderConfirmed,
		Type:      models.OrderTypeManual,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := creator.Create(ctx, order); err != nil {
		return nil, err
	}

	b.Reset()
	return order, nil
}
