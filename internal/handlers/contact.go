package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/i18n"
	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/models"
	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/store"
)

type ContactHandler struct {
	Store        store.Store
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

// SubmitMessage captures a contact-form message. All four fields are
// required; nothing is stored when any is missing.
func (h *ContactHandler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, ShopSession)
	defer session.Save(r, w)
	tag, _ := i18n.ResolveTag(r)

	name := r.FormValue("name")
	email := r.FormValue("email")
	subject := r.FormValue("subject")
	body := r.FormValue("message")

	if name == "" || email == "" || subject == "" || body == "" {
		session.AddFlash(FlashMessage{Type: "error", Message: i18n.T(tag, "err_fill_fields")})
		http.Redirect(w, r, "/#contact", http.StatusSeeOther)
		return
	}

	now := time.Now()
	msg := models.Message{
		ID:        now.UnixMilli(),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Body:      body,
		Read:      false,
		CreatedAt: now.Format(models.TimeFormat),
	}

	if err := h.Store.AppendMessage(msg); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Failed to send message. Please try again."})
		http.Redirect(w, r, "/#contact", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: i18n.T(tag, "msg_message_thanks")})
	http.Redirect(w, r, "/#contact", http.StatusSeeOther)
}
