package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/catalog"
	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/store"
)

type HomeHandler struct {
	Store        store.Store
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	tmpl := h.Templates.Get("home.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	session, _ := h.SessionStore.Get(r, ShopSession)
	c := cartFromSession(session)

	data := basePageData(w, r, session)
	data["Products"] = catalog.Products()
	data["Cart"] = c
	data["CartTotal"] = c.Total()
	session.Save(r, w)
	tmpl.Execute(w, data)
}
