// Package store persists the three storefront collections. Each collection
// is kept in memory as the single source of truth and written through to
// durable storage as a whole JSON snapshot after every mutation; partial
// updates never happen.
package store

import (
	"fmt"

	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/models"
)

// Collection keys in durable storage.
const (
	CollectionOrders   = "orders"
	CollectionMessages = "messages"
	CollectionRatings  = "ratings"
)

// Store is the persistence surface shared by the public forms (append) and
// the admin panel (read, toggle, delete). There is deliberately no
// DeleteMessage: messages can only be marked read or unread.
type Store interface {
	Orders() []models.Order
	AppendOrder(models.Order) error
	ToggleOrderStatus(index int) error
	DeleteOrder(index int) error

	Messages() []models.Message
	AppendMessage(models.Message) error
	ToggleMessageRead(index int) error

	Ratings() []models.Rating
	AppendRating(models.Rating) error
	DeleteRating(index int) error
}

// deleteAt removes element i, preserving the relative order of the rest.
func deleteAt[T any](s []T, i int) ([]T, error) {
	if i < 0 || i >= len(s) {
		return nil, fmt.Errorf("index %d out of range (len %d)", i, len(s))
	}
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out, nil
}
