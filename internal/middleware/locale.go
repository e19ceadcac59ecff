package middleware

import (
	"net/http"
	"strings"

	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/i18n"
)

const localeCookieName = "hl"

// VaryLocale sets Vary header for Accept-Language on dynamic responses
func VaryLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Language")
		next.ServeHTTP(w, r)
	})
}

// Locale resolves the request language from ?hl=, the hl cookie, then Accept-Language. An
// explicit ?hl= for a supported language is remembered in the cookie.
func Locale(bundle *i18n.Bundle, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("hl"))); q != "" && bundle.IsSupported(q) {
				lang = q
				http.SetCookie(w, &http.Cookie{
					Name:     localeCookieName,
					Value:    q,
					Path:     "/",
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
					MaxAge:   365 * 24 * 60 * 60,
				})
			}
			if lang == "" {
				if c, err := r.Cookie(localeCookieName); err == nil && bundle.IsSupported(c.Value) {
					lang = strings.ToLower(c.Value)
				}
			}
			if lang == "" {
				lang = bundle.Resolve(r.Header.Get("Accept-Language"))
			}
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(WithLang(r.Context(), lang)))
		})
	}
}

// Lang returns the resolved language, defaulting to "en" outside the Locale middleware.
func Lang(r *http.Request) string {
	if l, ok := LangFromContext(r.Context()); ok {
		return l
	}
	return "en"
}
