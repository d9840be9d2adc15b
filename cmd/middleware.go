package main

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"khadamatFront/internal/i18n"
)

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Frame-Options", "deny")
		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)
		app.infoLog.Printf("%s %s - %s %s %s", requestID, r.RemoteAddr, r.Proto, r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverError(w, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// resolveLocale decides the page language: explicit ?lang= switch first,
// then the cookie, then Accept-Language. A switch is persisted in the cookie.
func (app *application) resolveLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("lang")

		var cookieVal string
		if c, err := r.Cookie("lang"); err == nil {
			cookieVal = c.Value
		}

		locale := i18n.Resolve(query, cookieVal, r.Header.Get("Accept-Language"), app.defaultLocale)

		if _, ok := i18n.Parse(query); ok && query != cookieVal {
			http.SetCookie(w, &http.Cookie{Name: "lang", Value: query, Path: "/"})
		}

		next.ServeHTTP(w, r.WithContext(i18n.WithLocale(r.Context(), locale)))
	})
}
