package handlers

import (
	"net/http"
	"time"

	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/i18n"
)

// PrefsHandler persists the two per-browser display preferences:
// language and theme.
type PrefsHandler struct{}

// SwitchLanguage stores the picked locale and re-renders whatever page
// the visitor was on. An unknown code falls back to the default.
func (h *PrefsHandler) SwitchLanguage(w http.ResponseWriter, r *http.Request) {
	tag, ok := i18n.ParseTag(r.FormValue("lang"))
	if !ok {
		tag = i18n.Default()
	}
	i18n.SetLanguageCookie(w, tag)
	redirectBack(w, r)
}

// ToggleTheme flips the dark-mode flag and persists it.
func (h *PrefsHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	next := "true"
	if DarkMode(r) {
		next = "false"
	}
	http.SetCookie(w, &http.Cookie{
		Name:     ThemeCookieName,
		Value:    next,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
	redirectBack(w, r)
}

func redirectBack(w http.ResponseWriter, r *http.Request) {
	target := r.Referer()
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
