package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/sessions"

	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/catalog"
	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/i18n"
	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/models"
	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/store"
)

// OrderHandler glues the order builder to the request cycle. The builder
// itself lives in the visitor's session; only a submitted order reaches
// the store.
type OrderHandler struct {
	Store        store.Store
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

// SetQuantity records the preset quantity for the next added item.
func (h *OrderHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, ShopSession)
	defer session.Save(r, w)

	qty, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		qty = 1
	}
	c := cartFromSession(session)
	c.SetQuantity(qty)
	saveCart(session, c)
	redirectToOrder(w, r)
}

// AddItem resolves the picked product and puts it in the cart, merging
// with an existing line for the same drink.
func (h *OrderHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, ShopSession)
	defer session.Save(r, w)
	tag, _ := i18n.ResolveTag(r)

	picked := r.FormValue("product")
	if picked == "" {
		session.AddFlash(FlashMessage{Type: "error", Message: i18n.T(tag, "err_select_flavour")})
		redirectToOrder(w, r)
		return
	}

	product, ok := catalog.Lookup(picked)
	if !ok {
		// Fall back to label resolution for decorated free-form values.
		product, ok = catalog.Resolve(picked)
	}
	if !ok || product.UnitPrice == 0 {
		session.AddFlash(FlashMessage{Type: "error", Message: i18n.T(tag, "err_invalid_flavour")})
		redirectToOrder(w, r)
		return
	}

	c := cartFromSession(session)
	if qtyStr := r.FormValue("quantity"); qtyStr != "" {
		if qty, err := strconv.Atoi(qtyStr); err == nil {
			c.SetQuantity(qty)
		}
	}
	c.Add(product.Label, product.UnitPrice)
	saveCart(session, c)
	redirectToOrder(w, r)
}

// RemoveItem drops one line from the cart.
func (h *OrderHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, ShopSession)
	defer session.Save(r, w)

	index, err := strconv.Atoi(r.FormValue("index"))
	if err != nil {
		redirectToOrder(w, r)
		return
	}
	c := cartFromSession(session)
	c.Remove(index)
	saveCart(session, c)
	redirectToOrder(w, r)
}

// SubmitOrder turns the cart into a persisted pending order and resets
// the builder. Validation happens before any state is touched.
func (h *OrderHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, ShopSession)
	defer session.Save(r, w)
	tag, _ := i18n.ResolveTag(r)

	name := r.FormValue("customer_name")
	c := cartFromSession(session)

	if name == "" {
		session.AddFlash(FlashMessage{Type: "error", Message: i18n.T(tag, "err_enter_name")})
		redirectToOrder(w, r)
		return
	}
	if c.Empty() {
		session.AddFlash(FlashMessage{Type: "error", Message: i18n.T(tag, "err_add_one_item")})
		redirectToOrder(w, r)
		return
	}

	now := time.Now()
	order := models.Order{
		ID:           now.UnixMilli(),
		CustomerName: name,
		Items:        c.Items,
		Total:        c.Total(),
		Status:       models.OrderPending,
		CreatedAt:    now.Format(models.TimeFormat),
	}

	if err := h.Store.AppendOrder(order); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Failed to place order. Please try again."})
		redirectToOrder(w, r)
		return
	}

	confirmation := fmt.Sprintf(i18n.T(tag, "msg_order_confirmed"), name, c.Summary())
	session.AddFlash(FlashMessage{Type: "success", Message: confirmation})
	clearCart(session)
	redirectToOrder(w, r)
}

func redirectToOrder(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/#order", http.StatusSeeOther)
}
