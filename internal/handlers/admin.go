package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/sessions"

	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/store"
)

// AdminHandler renders the review panel over the three collections.
// The panel is deliberately unauthenticated; it is merely unlinked from
// the public navigation.
type AdminHandler struct {
	Store        store.Store
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

const AdminSession = "admin-session"

var adminTabs = map[string]bool{
	"orders":   true,
	"messages": true,
	"ratings":  true,
}

// Panel renders the admin page with the requested tab active. Stats are
// recomputed from the live collections on every render.
func (h *AdminHandler) Panel(w http.ResponseWriter, r *http.Request) {
	tab := r.URL.Query().Get("tab")
	if !adminTabs[tab] {
		tab = "orders"
	}

	tmpl := h.Templates.Get("admin.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	orders := h.Store.Orders()
	messages := h.Store.Messages()
	ratings := h.Store.Ratings()

	session, _ := h.SessionStore.Get(r, AdminSession)
	data := basePageData(w, r, session)
	data["Tab"] = tab
	data["Orders"] = orders
	data["Messages"] = messages
	data["Ratings"] = ratings
	data["OrderStats"] = store.ComputeOrderStats(orders)
	data["MessageStats"] = store.ComputeMessageStats(messages)
	data["RatingStats"] = store.ComputeRatingStats(ratings)
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// ToggleOrderStatus flips one order between pending and completed.
func (h *AdminHandler) ToggleOrderStatus(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "orders", "Order updated!", h.Store.ToggleOrderStatus)
}

// DeleteOrder removes one order. The template asks for confirmation
// before this endpoint is reached.
func (h *AdminHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "orders", "Order deleted!", h.Store.DeleteOrder)
}

// ToggleMessageRead flips the read flag on one message. Messages cannot
// be deleted.
func (h *AdminHandler) ToggleMessageRead(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "messages", "Message updated!", h.Store.ToggleMessageRead)
}

// DeleteRating removes one rating after template-side confirmation.
func (h *AdminHandler) DeleteRating(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "ratings", "Rating deleted!", h.Store.DeleteRating)
}

// mutate runs one index-addressed store operation and bounces back to the
// relevant tab, where stats and lists re-render from the mutated state.
func (h *AdminHandler) mutate(w http.ResponseWriter, r *http.Request, tab, success string, op func(int) error) {
	session, _ := h.SessionStore.Get(r, AdminSession)
	defer session.Save(r, w)

	index, err := strconv.Atoi(r.FormValue("index"))
	if err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Invalid index."})
		http.Redirect(w, r, "/admin?tab="+tab, http.StatusSeeOther)
		return
	}
	if err := op(index); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Operation failed: " + err.Error()})
		http.Redirect(w, r, "/admin?tab="+tab, http.StatusSeeOther)
		return
	}
	session.AddFlash(FlashMessage{Type: "success", Message: success})
	http.Redirect(w, r, "/admin?tab="+tab, http.StatusSeeOther)
}
