package live

import (
	"encoding/json"
	"log"
	"sync"

	"saaj/models"
)

// Hub fans order events out to subscribers (the admin dashboard's live feed).
// Subscribers attach through Subscribe and detach via the returned cancel
// function; slow subscribers are dropped rather than blocking the hub.
type Hub struct {
	subscribers map[chan []byte]bool
	register    chan chan []byte
	unregister  chan chan []byte
	broadcast   chan []byte
	done        chan struct{}
	mu          sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan []byte]bool),
		register:    make(chan chan []byte),
		unregister:  make(chan chan []byte),
		broadcast:   make(chan []byte),
		done:        make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case ch := <-h.register:
			h.mu.Lock()
			h.subscribers[ch] = true
			h.mu.Unlock()

		case ch := <-h.unregister:
			h.mu.Lock()
			if h.subscribers[ch] {
				delete(h.subscribers, ch)
				close(ch)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for ch := range h.subscribers {
				select {
				case ch <- msg:
				default:
					delete(h.subscribers, ch)
					close(ch)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for ch := range h.subscribers {
				delete(h.subscribers, ch)
				close(ch)
			}
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// Subscribe attaches a new subscriber and returns its channel plus a cancel
// handle. Cancel is safe to call more than once.
func (h *Hub) Subscribe() (<-chan []byte, func()) {
	ch := make(chan []byte, 16)
	h.register <- ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			select {
			case h.unregister <- ch:
			case <-h.done:
			}
		})
	}
	return ch, cancel
}

func (h *Hub) Broadcast(msg []byte) {
	select {
	case h.broadcast <- msg:
	case <-h.done:
	}
}

// Default is the process-wide hub wired into main.
var Default = NewHub()

// BroadcastOrder publishes an order event on the default hub.
func BroadcastOrder(event string, order *models.Order) {
	data, err := json.Marshal(map[string]any{
		"type":    event,
		"orderId": order.OrderID,
		"status":  order.Status,
		"total":   order.Total,
	})
	if err != nil {
		log.Println("live: marshal order event:", err)
		return
	}
	Default.Broadcast(data)
}
