package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/sessions"

	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/catalog"
	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/i18n"
	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/models"
	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/store"
)

// RatingHandler serves the rate-a-drink page. It stands in for the
// original modal: opening binds a product, picking a star count re-renders
// with the first n of 5 stars selected, cancelling returns home with the
// selection dropped.
type RatingHandler struct {
	Store        store.Store
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

// RateForm shows the rating page bound to one product.
func (h *RatingHandler) RateForm(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, ShopSession)

	product, ok := catalog.Lookup(r.URL.Query().Get("product"))
	if !ok {
		product, ok = catalog.Resolve(r.URL.Query().Get("product"))
	}
	if !ok {
		tag, _ := i18n.ResolveTag(r)
		session.AddFlash(FlashMessage{Type: "error", Message: i18n.T(tag, "err_invalid_flavour")})
		session.Save(r, w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	stars, _ := strconv.Atoi(r.URL.Query().Get("stars"))
	if stars < 0 || stars > 5 {
		stars = 0
	}

	tmpl := h.Templates.Get("rate.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	data := basePageData(w, r, session)
	data["Product"] = product
	data["Selected"] = stars
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// SubmitRating validates and persists a rating, then closes the page by
// redirecting home. A missing name or an unselected star count changes
// nothing.
func (h *RatingHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, ShopSession)
	defer session.Save(r, w)
	tag, _ := i18n.ResolveTag(r)

	productName := r.FormValue("product")
	name := r.FormValue("name")
	review := r.FormValue("review")
	stars, _ := strconv.Atoi(r.FormValue("stars"))

	backToForm := "/rate?product=" + url.QueryEscape(productName) + "&stars=" + strconv.Itoa(stars)

	if name == "" {
		session.AddFlash(FlashMessage{Type: "error", Message: i18n.T(tag, "err_enter_name")})
		http.Redirect(w, r, backToForm, http.StatusSeeOther)
		return
	}
	if stars < 1 || stars > 5 {
		session.AddFlash(FlashMessage{Type: "error", Message: i18n.T(tag, "err_select_rating")})
		http.Redirect(w, r, backToForm, http.StatusSeeOther)
		return
	}

	product, ok := catalog.Lookup(productName)
	if !ok {
		product, ok = catalog.Resolve(productName)
	}
	if !ok {
		session.AddFlash(FlashMessage{Type: "error", Message: i18n.T(tag, "err_invalid_flavour")})
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	now := time.Now()
	rating := models.Rating{
		ID:           now.UnixMilli(),
		ProductName:  product.Label,
		ReviewerName: name,
		Stars:        stars,
		Review:       review,
		CreatedAt:    now.Format(models.TimeFormat),
	}

	if err := h.Store.AppendRating(rating); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Failed to save rating. Please try again."})
		http.Redirect(w, r, backToForm, http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: i18n.T(tag, "msg_rating_thanks")})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
