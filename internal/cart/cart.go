// Package cart implements the in-memory order builder. A Cart lives inside
// one visitor's session and is discarded once the order is submitted, so
// there is no persistence and no locking here; all methods are plain state
// transitions that the handlers glue to the request cycle.
package cart

import (
	"fmt"
	"strings"

	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/models"
)

type Cart struct {
	Items []models.LineItem
	// PresetQty is the quantity applied by the next Add. Selecting a
	// preset button or typing a manual quantity sets it; Add resets it
	// back to 1.
	PresetQty int
}

func New() *Cart {
	return &Cart{PresetQty: 1}
}

// SetQuantity sets the pending quantity for the next Add. Values below 1
// are coerced to 1.
func (c *Cart) SetQuantity(n int) {
	if n < 1 {
		n = 1
	}
	c.PresetQty = n
}

// Add puts a product in the cart at the pending quantity. If a line with
// the same name already exists its quantity is incremented instead of a
// second line being appended. The pending quantity resets to 1 afterwards.
// The caller is responsible for rejecting empty names and zero prices
// before calling Add.
func (c *Cart) Add(name string, unitPrice int) {
	qty := c.PresetQty
	if qty < 1 {
		qty = 1
	}
	for i := range c.Items {
		if c.Items[i].Name == name {
			c.Items[i].Quantity += qty
			c.PresetQty = 1
			return
		}
	}
	c.Items = append(c.Items, models.LineItem{Name: name, Quantity: qty, UnitPrice: unitPrice})
	c.PresetQty = 1
}

// Remove deletes the line at index, preserving the order of the rest.
// Out-of-range indexes are ignored.
func (c *Cart) Remove(index int) {
	if index < 0 || index >= len(c.Items) {
		return
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
}

// Total returns the running order total.
func (c *Cart) Total() int {
	total := 0
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

// TotalQuantity returns the number of units across all lines.
func (c *Cart) TotalQuantity() int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

func (c *Cart) Empty() bool {
	return len(c.Items) == 0
}

// Summary renders the cart as confirmation text: one bullet per line item
// followed by the combined quantity and price.
func (c *Cart) Summary() string {
	var b strings.Builder
	for _, item := range c.Items {
		fmt.Fprintf(&b, "• %dx %s\n", item.Quantity, item.Name)
	}
	fmt.Fprintf(&b, "%d items = ₹%d", c.TotalQuantity(), c.Total())
	return b.String()
}
