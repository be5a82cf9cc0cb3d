package middleware

import (
	"context"
	"net/http"

	"github.com/attachlab/ecr/internal/utils"
)

type ctxKey int

const localeKey ctxKey = 1

// supportedLocales are the locales the catalog and summary texts ship in.
var supportedLocales = []string{"en", "zh"}

// Locale extracts the locale from the lang query param or Accept-Language
// and stores it in the request context.
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale := utils.DetermineLocale(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), supportedLocales, "en")
		ctx := context.WithValue(r.Context(), localeKey, locale)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LocaleFromContext retrieves the locale stored by Locale, defaulting to
// English.
func LocaleFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(localeKey).(string); ok && s != "" {
		return s
	}
	return "en"
}
