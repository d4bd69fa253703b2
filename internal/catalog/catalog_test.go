package catalog

import "testing"

func TestResolvePlainLabel(t *testing.T) {
	t.Parallel()

	p, ok := Resolve("Limbu Soda")
	if !ok {
		t.Fatal("Resolve(Limbu Soda) not found")
	}
	if p.UnitPrice != 20 {
		t.Fatalf("UnitPrice = %d, want 20", p.UnitPrice)
	}
}

func TestResolveDecoratedLabel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		label string
		want  string
		price int
	}{
		{"🍋 Limbu Soda - ₹20", "Limbu Soda", 20},
		{"✨ Fuljar Soda - ₹25", "Fuljar Soda", 25},
		{"🥥 Nariyal Soda", "Nariyal Soda", 20},
		{"mint mojito", "Mint Mojito", 20},
	}
	for _, c := range cases {
		p, ok := Resolve(c.label)
		if !ok {
			t.Fatalf("Resolve(%q) not found", c.label)
		}
		if p.Label != c.want {
			t.Fatalf("Resolve(%q).Label = %q, want %q", c.label, p.Label, c.want)
		}
		if p.UnitPrice != c.price {
			t.Fatalf("Resolve(%q).UnitPrice = %d, want %d", c.label, p.UnitPrice, c.price)
		}
	}
}

func TestResolvePriceUnknown(t *testing.T) {
	t.Parallel()

	if got := ResolvePrice("Cola"); got != 0 {
		t.Fatalf("ResolvePrice(Cola) = %d, want 0", got)
	}
	if got := ResolvePrice(""); got != 0 {
		t.Fatalf("ResolvePrice(empty) = %d, want 0", got)
	}
}

func TestCanonicalName(t *testing.T) {
	t.Parallel()

	if got := CanonicalName("🍇 Kalakhatta  Soda - ₹20"); got != "Kalakhatta Soda" {
		t.Fatalf("CanonicalName = %q, want %q", got, "Kalakhatta Soda")
	}
}

func TestLookupBySlug(t *testing.T) {
	t.Parallel()

	p, ok := Lookup("fuljar-soda")
	if !ok || p.Label != "Fuljar Soda" {
		t.Fatalf("Lookup(fuljar-soda) = %+v, %v", p, ok)
	}
	if _, ok := Lookup("no-such-drink"); ok {
		t.Fatal("Lookup(no-such-drink) found, want miss")
	}
}
