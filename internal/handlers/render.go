package handlers

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/cart"
	"github.com/TusharBadgujar235/jk-soda-water-website-new/internal/i18n"
)

// ShopSession is the cookie session carrying the visitor's cart and
// flash messages.
const ShopSession = "shop-session"

// ThemeCookieName stores the dark-mode preference.
const ThemeCookieName = "jk_dark"

// DarkMode reports the visitor's persisted theme flag.
func DarkMode(r *http.Request) bool {
	cookie, err := r.Cookie(ThemeCookieName)
	return err == nil && cookie.Value == "true"
}

// basePageData assembles the fields every page template expects: the
// resolved language catalog, the theme flag and the pending flashes.
// A ?lang= override is persisted onto the response here.
func basePageData(w http.ResponseWriter, r *http.Request, session *sessions.Session) map[string]interface{} {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}

	dark := DarkMode(r)
	themeIcon := "🌙"
	bodyClass := "light-mode"
	if dark {
		themeIcon = "☀️"
		bodyClass = "dark-mode"
	}

	return map[string]interface{}{
		"L":          i18n.Strings(tag),
		"Lang":       tag.String(),
		"LangToggle": i18n.ToggleLabel(tag),
		"OtherLang":  i18n.Other(tag).String(),
		"Dark":       dark,
		"ThemeIcon":  themeIcon,
		"BodyClass":  bodyClass,
		"Flashes":    GetFlash(session),
		"CsrfField":  csrf.TemplateField(r),
	}
}

// cartFromSession returns the order-builder state for this visitor,
// starting a fresh session when none exists yet.
func cartFromSession(session *sessions.Session) *cart.Cart {
	if v, ok := session.Values["cart"].(cart.Cart); ok {
		c := v
		if c.PresetQty < 1 {
			c.PresetQty = 1
		}
		return &c
	}
	return cart.New()
}

func saveCart(session *sessions.Session, c *cart.Cart) {
	session.Values["cart"] = *c
}

func clearCart(session *sessions.Session) {
	delete(session.Values, "cart")
}
