package cart

import (
	"strings"
	"testing"
)

func TestAddMergesByName(t *testing.T) {
	t.Parallel()

	c := New()
	c.SetQuantity(2)
	c.Add("Limbu Soda", 20)
	c.Add("Limbu Soda", 20) // preset reset to 1 by the first Add

	if len(c.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(c.Items))
	}
	item := c.Items[0]
	if item.Quantity != 3 {
		t.Fatalf("Quantity = %d, want 3", item.Quantity)
	}
	if item.UnitPrice != 20 {
		t.Fatalf("UnitPrice = %d, want 20", item.UnitPrice)
	}
	if got := c.Total(); got != 60 {
		t.Fatalf("Total = %d, want 60", got)
	}
}

func TestAddResetsPresetQuantity(t *testing.T) {
	t.Parallel()

	c := New()
	c.SetQuantity(5)
	c.Add("Jira Soda", 20)
	if c.PresetQty != 1 {
		t.Fatalf("PresetQty = %d, want 1 after Add", c.PresetQty)
	}
	c.Add("Masala Soda", 20)
	if c.Items[1].Quantity != 1 {
		t.Fatalf("second item Quantity = %d, want 1", c.Items[1].Quantity)
	}
}

func TestSetQuantityCoercesToOne(t *testing.T) {
	t.Parallel()

	c := New()
	c.SetQuantity(0)
	if c.PresetQty != 1 {
		t.Fatalf("PresetQty = %d, want 1", c.PresetQty)
	}
	c.SetQuantity(-3)
	if c.PresetQty != 1 {
		t.Fatalf("PresetQty = %d, want 1", c.PresetQty)
	}
}

func TestTotalTracksAddAndRemove(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add("Limbu Soda", 20)
	c.SetQuantity(2)
	c.Add("Fuljar Soda", 25)
	if got := c.Total(); got != 70 {
		t.Fatalf("Total = %d, want 70", got)
	}

	c.Remove(0)
	if len(c.Items) != 1 || c.Items[0].Name != "Fuljar Soda" {
		t.Fatalf("Items after Remove = %+v", c.Items)
	}
	if got := c.Total(); got != 50 {
		t.Fatalf("Total after Remove = %d, want 50", got)
	}
}

func TestRemoveOutOfRange(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add("Limbu Soda", 20)
	c.Remove(5)
	c.Remove(-1)
	if len(c.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(c.Items))
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	c := New()
	c.SetQuantity(2)
	c.Add("Limbu Soda", 20)
	c.Add("Mint Mojito", 20)

	got := c.Summary()
	if !strings.Contains(got, "• 2x Limbu Soda") {
		t.Fatalf("Summary missing merged line: %q", got)
	}
	if !strings.Contains(got, "3 items = ₹60") {
		t.Fatalf("Summary missing totals: %q", got)
	}
}
