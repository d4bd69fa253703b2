package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/sessions"

	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/models"
	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/store"
)

func newTestDeps(t *testing.T) (*store.Memory, *TemplateCache, *sessions.CookieStore) {
	t.Helper()
	mem := store.NewMemory()
	templates := NewTemplateCache()
	if err := templates.Load("../../templates"); err != nil {
		t.Fatalf("load templates: %v", err)
	}
	sessionStore := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	return mem, templates, sessionStore
}

func postForm(t *testing.T, h http.HandlerFunc, target string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

// mergeCookies keeps the latest value per cookie name across requests.
func mergeCookies(existing []*http.Cookie, rec *httptest.ResponseRecorder) []*http.Cookie {
	byName := make(map[string]*http.Cookie)
	for _, c := range existing {
		byName[c.Name] = c
	}
	for _, c := range rec.Result().Cookies() {
		byName[c.Name] = c
	}
	out := make([]*http.Cookie, 0, len(byName))
	for _, c := range byName {
		out = append(out, c)
	}
	return out
}

func TestHomeRenders(t *testing.T) {
	t.Parallel()

	mem, templates, sessionStore := newTestDeps(t)
	h := &HomeHandler{Store: mem, Templates: templates, SessionStore: sessionStore}

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	h.Index(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Limbu Soda") {
		t.Fatal("home page does not list the catalog")
	}
	if !strings.Contains(body, "light-mode") {
		t.Fatal("home page missing default theme class")
	}
}

func TestHomeRendersMarathi(t *testing.T) {
	t.Parallel()

	mem, templates, sessionStore := newTestDeps(t)
	h := &HomeHandler{Store: mem, Templates: templates, SessionStore: sessionStore}

	req := httptest.NewRequest("GET", "/?lang=mr", nil)
	rec := httptest.NewRecorder()
	h.Index(rec, req)

	if !strings.Contains(rec.Body.String(), "तुमची ऑर्डर तयार करा") {
		t.Fatal("home page not translated to Marathi")
	}
}

func TestOrderFlowMergesAndSubmits(t *testing.T) {
	t.Parallel()

	mem, templates, sessionStore := newTestDeps(t)
	h := &OrderHandler{Store: mem, Templates: templates, SessionStore: sessionStore}

	rec := postForm(t, h.AddItem, "/order/items",
		url.Values{"product": {"limbu-soda"}, "quantity": {"2"}}, nil)
	cookies := mergeCookies(nil, rec)

	rec = postForm(t, h.AddItem, "/order/items",
		url.Values{"product": {"limbu-soda"}}, cookies)
	cookies = mergeCookies(cookies, rec)

	rec = postForm(t, h.SubmitOrder, "/order/submit",
		url.Values{"customer_name": {"Asha"}}, cookies)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}

	orders := mem.Orders()
	if len(orders) != 1 {
		t.Fatalf("len(orders) = %d, want 1", len(orders))
	}
	order := orders[0]
	if order.CustomerName != "Asha" {
		t.Fatalf("CustomerName = %q", order.CustomerName)
	}
	if order.Status != models.OrderPending {
		t.Fatalf("Status = %q, want pending", order.Status)
	}
	if len(order.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1 merged line", len(order.Items))
	}
	if order.Items[0].Quantity != 3 || order.Total != 60 {
		t.Fatalf("Items[0].Quantity = %d, Total = %d, want 3 and 60", order.Items[0].Quantity, order.Total)
	}
}

func TestSubmitOrderRejectsEmptyName(t *testing.T) {
	t.Parallel()

	mem, templates, sessionStore := newTestDeps(t)
	h := &OrderHandler{Store: mem, Templates: templates, SessionStore: sessionStore}

	rec := postForm(t, h.AddItem, "/order/items", url.Values{"product": {"limbu-soda"}}, nil)
	cookies := mergeCookies(nil, rec)

	postForm(t, h.SubmitOrder, "/order/submit", url.Values{"customer_name": {""}}, cookies)

	if len(mem.Orders()) != 0 {
		t.Fatal("order appended despite empty customer name")
	}
	if mem.Saves[store.CollectionOrders] != 0 {
		t.Fatal("durable storage written despite validation failure")
	}
}

func TestSubmitOrderRejectsEmptyCart(t *testing.T) {
	t.Parallel()

	mem, templates, sessionStore := newTestDeps(t)
	h := &OrderHandler{Store: mem, Templates: templates, SessionStore: sessionStore}

	postForm(t, h.SubmitOrder, "/order/submit", url.Values{"customer_name": {"Asha"}}, nil)

	if len(mem.Orders()) != 0 {
		t.Fatal("order appended despite empty cart")
	}
}

func TestAddItemRejectsUnknownProduct(t *testing.T) {
	t.Parallel()

	mem, templates, sessionStore := newTestDeps(t)
	h := &OrderHandler{Store: mem, Templates: templates, SessionStore: sessionStore}

	rec := postForm(t, h.AddItem, "/order/items", url.Values{"product": {"cola"}}, nil)
	cookies := mergeCookies(nil, rec)

	// Even with a name, the empty cart blocks submission.
	postForm(t, h.SubmitOrder, "/order/submit", url.Values{"customer_name": {"Asha"}}, cookies)
	if len(mem.Orders()) != 0 {
		t.Fatal("unknown product ended up in an order")
	}
}

func TestSubmitMessage(t *testing.T) {
	t.Parallel()

	mem, templates, sessionStore := newTestDeps(t)
	h := &ContactHandler{Store: mem, Templates: templates, SessionStore: sessionStore}

	// Missing subject: nothing stored.
	postForm(t, h.SubmitMessage, "/contact", url.Values{
		"name": {"Asha"}, "email": {"asha@example.com"}, "message": {"hello"},
	}, nil)
	if len(mem.Messages()) != 0 {
		t.Fatal("message appended despite missing subject")
	}
	if mem.Saves[store.CollectionMessages] != 0 {
		t.Fatal("durable storage written despite validation failure")
	}

	// All four fields present.
	postForm(t, h.SubmitMessage, "/contact", url.Values{
		"name": {"Asha"}, "email": {"asha@example.com"}, "subject": {"Hi"}, "message": {"hello"},
	}, nil)
	msgs := mem.Messages()
	if len(msgs) != 1 {
		t.Fatalf("len(messages) = %d, want 1", len(msgs))
	}
	if msgs[0].Read {
		t.Fatal("new message marked read")
	}
}

func TestSubmitRating(t *testing.T) {
	t.Parallel()

	mem, templates, sessionStore := newTestDeps(t)
	h := &RatingHandler{Store: mem, Templates: templates, SessionStore: sessionStore}

	// No star selected: rejected, no state change.
	postForm(t, h.SubmitRating, "/rate/submit", url.Values{
		"product": {"limbu-soda"}, "name": {"Ravi"}, "stars": {"0"},
	}, nil)
	if len(mem.Ratings()) != 0 {
		t.Fatal("rating appended despite stars=0")
	}

	// Four stars, no review text.
	postForm(t, h.SubmitRating, "/rate/submit", url.Values{
		"product": {"limbu-soda"}, "name": {"Ravi"}, "stars": {"4"},
	}, nil)
	ratings := mem.Ratings()
	if len(ratings) != 1 {
		t.Fatalf("len(ratings) = %d, want 1", len(ratings))
	}
	got := ratings[0]
	if got.Stars != 4 || got.Review != "" {
		t.Fatalf("rating = %+v, want 4 stars and empty review", got)
	}
	if got.ProductName != "Limbu Soda" {
		t.Fatalf("ProductName = %q, want canonical label", got.ProductName)
	}
}

func TestRateFormShowsSelection(t *testing.T) {
	t.Parallel()

	mem, templates, sessionStore := newTestDeps(t)
	h := &RatingHandler{Store: mem, Templates: templates, SessionStore: sessionStore}

	req := httptest.NewRequest("GET", "/rate?product=limbu-soda&stars=3", nil)
	rec := httptest.NewRecorder()
	h.RateForm(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := strings.Count(rec.Body.String(), "selected"); got != 3 {
		t.Fatalf("selected star controls = %d, want 3", got)
	}
}

func TestAdminPanelAndMutations(t *testing.T) {
	t.Parallel()

	mem, templates, sessionStore := newTestDeps(t)
	mem.AppendOrder(models.Order{ID: 1, CustomerName: "Asha", Status: models.OrderPending, Total: 40})
	mem.AppendMessage(models.Message{ID: 2, Name: "Ravi", Email: "r@x.y", Subject: "Hi", Body: "Hello"})
	mem.AppendRating(models.Rating{ID: 3, ProductName: "Limbu Soda", ReviewerName: "Asha", Stars: 5})
	mem.AppendRating(models.Rating{ID: 4, ProductName: "Jira Soda", ReviewerName: "Ravi", Stars: 3})

	h := &AdminHandler{Store: mem, Templates: templates, SessionStore: sessionStore}

	req := httptest.NewRequest("GET", "/admin?tab=ratings", nil)
	rec := httptest.NewRecorder()
	h.Panel(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "4.0") {
		t.Fatal("ratings tab missing average")
	}

	postForm(t, h.ToggleOrderStatus, "/admin/orders/status", url.Values{"index": {"0"}}, nil)
	if got := mem.Orders()[0].Status; got != models.OrderCompleted {
		t.Fatalf("Status = %q, want completed", got)
	}

	postForm(t, h.ToggleMessageRead, "/admin/messages/read", url.Values{"index": {"0"}}, nil)
	if !mem.Messages()[0].Read {
		t.Fatal("message not marked read")
	}

	postForm(t, h.DeleteRating, "/admin/ratings/delete", url.Values{"index": {"0"}}, nil)
	ratings := mem.Ratings()
	if len(ratings) != 1 || ratings[0].ProductName != "Jira Soda" {
		t.Fatalf("ratings after delete = %+v", ratings)
	}

	// Out-of-range index fails without mutating anything.
	postForm(t, h.DeleteOrder, "/admin/orders/delete", url.Values{"index": {"7"}}, nil)
	if len(mem.Orders()) != 1 {
		t.Fatal("out-of-range delete mutated the orders collection")
	}
}

func TestThemeToggle(t *testing.T) {
	t.Parallel()

	h := &PrefsHandler{}

	rec := postForm(t, h.ToggleTheme, "/prefs/theme", url.Values{}, nil)
	var theme *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == ThemeCookieName {
			theme = c
		}
	}
	if theme == nil || theme.Value != "true" {
		t.Fatalf("theme cookie = %+v, want true", theme)
	}

	// Toggling again flips back.
	rec = postForm(t, h.ToggleTheme, "/prefs/theme", url.Values{}, []*http.Cookie{theme})
	for _, c := range rec.Result().Cookies() {
		if c.Name == ThemeCookieName && c.Value != "false" {
			t.Fatalf("theme cookie after second toggle = %q, want false", c.Value)
		}
	}
}

func TestSwitchLanguageSetsCookie(t *testing.T) {
	t.Parallel()

	h := &PrefsHandler{}
	rec := postForm(t, h.SwitchLanguage, "/prefs/lang", url.Values{"lang": {"mr"}}, nil)

	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "jk_lang" && c.Value == "mr" {
			found = true
		}
	}
	if !found {
		t.Fatal("language cookie not set")
	}
}
