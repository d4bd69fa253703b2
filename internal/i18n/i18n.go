// Package i18n switches the storefront between its two display languages,
// English and Marathi. The preference travels in a cookie; requests without
// one fall back to Accept-Language negotiation.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	// LangParam selects a language via query string.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "jk_lang"
)

var (
	English = language.English
	Marathi = language.Marathi

	supported = []language.Tag{English, Marathi}
	matcher   = language.NewMatcher(supported)
)

// Supported returns the two supported language tags.
func Supported() []language.Tag {
	return supported
}

// Default returns the startup language.
func Default() language.Tag {
	return English
}

// ParseTag maps a raw value onto a supported tag. The bool is false when
// the value names no supported language.
func ParseTag(value string) (language.Tag, bool) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return Default(), false
	}
	_, index, conf := matcher.Match(tag)
	if conf == language.No {
		return Default(), false
	}
	return supported[index], true
}

// ResolveTag determines the request's language: explicit ?lang= wins, then
// the cookie, then Accept-Language, then the default. The bool reports
// whether the choice came from the query param and should be persisted.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}
	if v := r.URL.Query().Get(LangParam); v != "" {
		if tag, ok := ParseTag(v); ok {
			return tag, true
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, index, conf := matcher.Match(tags...)
			if conf != language.No {
				return supported[index], false
			}
		}
	}
	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// Other returns the language the toggle would switch to.
func Other(tag language.Tag) language.Tag {
	if tag == Marathi {
		return English
	}
	return Marathi
}

// ToggleLabel names the other language, in that language, for the toggle
// control itself.
func ToggleLabel(tag language.Tag) string {
	if tag == Marathi {
		return "EN"
	}
	return "मराठी"
}

// T returns the translation of key for tag, falling back to English and
// finally to the key itself so an untranslated element renders unchanged.
func T(tag language.Tag, key string) string {
	entry, ok := messages[key]
	if !ok {
		return key
	}
	if tag == Marathi && entry.mr != "" {
		return entry.mr
	}
	return entry.en
}

// Strings returns the whole catalog resolved for one language, for handing
// to templates as a flat lookup map.
func Strings(tag language.Tag) map[string]string {
	out := make(map[string]string, len(messages))
	for key := range messages {
		out[key] = T(tag, key)
	}
	return out
}
