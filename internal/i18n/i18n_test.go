package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveTagQueryParamWins(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "http://shop.local/?lang=mr", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})
	tag, persist := ResolveTag(req)
	if tag != Marathi {
		t.Fatalf("tag = %v, want %v", tag, Marathi)
	}
	if !persist {
		t.Fatal("persist = false, want true")
	}
}

func TestResolveTagCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "http://shop.local/", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "mr"})
	tag, persist := ResolveTag(req)
	if tag != Marathi {
		t.Fatalf("tag = %v, want %v", tag, Marathi)
	}
	if persist {
		t.Fatal("persist = true, want false")
	}
}

func TestResolveTagDefault(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "http://shop.local/", nil)
	tag, _ := ResolveTag(req)
	if tag != English {
		t.Fatalf("tag = %v, want %v", tag, English)
	}
}

func TestParseTagUnknown(t *testing.T) {
	t.Parallel()

	if _, ok := ParseTag("zz"); ok {
		t.Fatal("ParseTag(zz) ok, want miss")
	}
	if _, ok := ParseTag(""); ok {
		t.Fatal("ParseTag(empty) ok, want miss")
	}
}

func TestToggleRoundTrip(t *testing.T) {
	t.Parallel()

	if Other(English) != Marathi || Other(Marathi) != English {
		t.Fatal("Other does not flip between the two languages")
	}

	// Switching away and back restores every string.
	before := Strings(English)
	after := Strings(Other(Other(English)))
	for key, want := range before {
		if after[key] != want {
			t.Fatalf("Strings[%q] = %q after round trip, want %q", key, after[key], want)
		}
	}
}

func TestTranslationsAndFallback(t *testing.T) {
	t.Parallel()

	if got := T(Marathi, "err_fill_fields"); got != "कृपया सर्व फील्ड भरा." {
		t.Fatalf("T(mr, err_fill_fields) = %q", got)
	}
	if got := T(English, "err_fill_fields"); got != "Please fill in all fields." {
		t.Fatalf("T(en, err_fill_fields) = %q", got)
	}
	// Unknown keys render unchanged.
	if got := T(Marathi, "no_such_key"); got != "no_such_key" {
		t.Fatalf("T(mr, no_such_key) = %q", got)
	}
}

func TestToggleLabelNamesOtherLanguage(t *testing.T) {
	t.Parallel()

	if got := ToggleLabel(English); got != "मराठी" {
		t.Fatalf("ToggleLabel(en) = %q", got)
	}
	if got := ToggleLabel(Marathi); got != "EN" {
		t.Fatalf("ToggleLabel(mr) = %q", got)
	}
}
