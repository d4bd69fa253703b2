// Package catalog holds the fixed drink menu. Prices are in whole rupees;
// the menu is static, there is no admin surface for editing it.
package catalog

import (
	"regexp"
	"strings"
)

type Product struct {
	ID        string // stable slug, used as form value
	Label     string // canonical display name
	UnitPrice int
}

var products = []Product{
	{ID: "limbu-soda", Label: "Limbu Soda", UnitPrice: 20},
	{ID: "jira-soda", Label: "Jira Soda", UnitPrice: 20},
	{ID: "orange-soda", Label: "Orange Soda", UnitPrice: 20},
	{ID: "kalakhatta-soda", Label: "Kalakhatta Soda", UnitPrice: 20},
	{ID: "jamfal-soda", Label: "Jamfal Soda", UnitPrice: 20},
	{ID: "nariyal-soda", Label: "Nariyal Soda", UnitPrice: 20},
	{ID: "mint-mojito", Label: "Mint Mojito", UnitPrice: 20},
	{ID: "blue-berry-soda", Label: "Blue Berry Soda", UnitPrice: 20},
	{ID: "fuljar-soda", Label: "Fuljar Soda", UnitPrice: 25},
	{ID: "limbu-sharbat", Label: "Limbu Sharbat", UnitPrice: 20},
	{ID: "orange-sharbat", Label: "Orange Sharbat", UnitPrice: 20},
	{ID: "pineapple-sharbat", Label: "Pineapple Sharbat", UnitPrice: 20},
	{ID: "limbu-mix-soda", Label: "Limbu Mix Soda", UnitPrice: 20},
	{ID: "pineapple-soda", Label: "Pineapple Soda", UnitPrice: 20},
	{ID: "masala-soda", Label: "Masala Soda", UnitPrice: 20},
}

// Products returns the menu in display order.
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// Lookup finds a product by its stable slug.
func Lookup(id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// priceSuffix matches an embedded price annotation such as " - ₹20".
var priceSuffix = regexp.MustCompile(`\s*-\s*₹\d+`)

// CanonicalName strips decorative symbols and embedded price annotations
// from a display label, leaving the canonical product name. Rather than
// enumerating known emoji, anything outside letters, digits and spaces is
// dropped, so newly decorated labels still resolve.
func CanonicalName(label string) string {
	label = priceSuffix.ReplaceAllString(label, "")
	var b strings.Builder
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Resolve maps a possibly decorated label to its product. The second return
// is false when the label resolves to nothing on the menu; callers treat
// that (price 0) as an invalid selection.
func Resolve(label string) (Product, bool) {
	name := CanonicalName(label)
	for _, p := range products {
		if strings.EqualFold(p.Label, name) {
			return p, true
		}
	}
	return Product{}, false
}

// ResolvePrice returns the unit price for a decorated or plain label,
// or 0 when the label is not on the menu.
func ResolvePrice(label string) int {
	p, ok := Resolve(label)
	if !ok {
		return 0
	}
	return p.UnitPrice
}
