package store

import (
	"fmt"
	"sync"

	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/models"
)

// Memory is an in-process Store used by handler tests. Saves counts the
// write-throughs per collection so tests can assert that failed validation
// never touched durable storage.
type Memory struct {
	mu       sync.Mutex
	orders   []models.Order
	messages []models.Message
	ratings  []models.Rating

	Saves map[string]int
}

func NewMemory() *Memory {
	return &Memory{Saves: make(map[string]int)}
}

func (m *Memory) Orders() []models.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Order(nil), m.orders...)
}

func (m *Memory) AppendOrder(order models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append(m.orders, order)
	m.Saves[CollectionOrders]++
	return nil
}

func (m *Memory) ToggleOrderStatus(index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.orders) {
		return fmt.Errorf("order index %d out of range", index)
	}
	if m.orders[index].Status == models.OrderCompleted {
		m.orders[index].Status = models.OrderPending
	} else {
		m.orders[index].Status = models.OrderCompleted
	}
	m.Saves[CollectionOrders]++
	return nil
}

func (m *Memory) DeleteOrder(index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	next, err := deleteAt(m.orders, index)
	if err != nil {
		return err
	}
	m.orders = next
	m.Saves[CollectionOrders]++
	return nil
}

func (m *Memory) Messages() []models.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Message(nil), m.messages...)
}

func (m *Memory) AppendMessage(msg models.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	m.Saves[CollectionMessages]++
	return nil
}

func (m *Memory) ToggleMessageRead(index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= len(m.messages) {
		return fmt.Errorf("message index %d out of range", index)
	}
	m.messages[index].Read = !m.messages[index].Read
	m.Saves[CollectionMessages]++
	return nil
}

func (m *Memory) Ratings() []models.Rating {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Rating(nil), m.ratings...)
}

func (m *Memory) AppendRating(rating models.Rating) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ratings = append(m.ratings, rating)
	m.Saves[CollectionRatings]++
	return nil
}

func (m *Memory) DeleteRating(index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	next, err := deleteAt(m.ratings, index)
	if err != nil {
		return err
	}
	m.ratings = next
	m.Saves[CollectionRatings]++
	return nil
}
