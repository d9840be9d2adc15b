package i18n

import (
	"context"

	"golang.org/x/text/language"
)

type Locale string

const (
	English Locale = "en"
	Persian Locale = "fa"
)

// Dir reports the layout direction for the locale.
func (l Locale) Dir() string {
	if l == Persian {
		return "rtl"
	}
	return "ltr"
}

var supported = []language.Tag{language.Persian, language.English}

var matcher = language.NewMatcher(supported)

// Parse maps a raw locale string to a supported Locale.
func Parse(s string) (Locale, bool) {
	switch s {
	case "en":
		return English, true
	case "fa":
		return Persian, true
	}
	return "", false
}

// Resolve picks the request locale: explicit query value first, then the
// locale cookie, then Accept-Language, then the configured default.
func Resolve(query, cookie, acceptLanguage string, def Locale) Locale {
	if l, ok := Parse(query); ok {
		return l
	}
	if l, ok := Parse(cookie); ok {
		return l
	}
	if acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf > language.No {
				if supported[idx] == language.English {
					return English
				}
				return Persian
			}
		}
	}
	if def != "" {
		return def
	}
	return Persian
}

type contextKey struct{}

func WithLocale(ctx context.Context, l Locale) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

func FromContext(ctx context.Context) Locale {
	if l, ok := ctx.Value(contextKey{}).(Locale); ok {
		return l
	}
	return Persian
}

// T looks a key up in the locale's message table, falling back to English
// and finally to the key itself so a missing entry stays visible.
func T(l Locale, key string) string {
	m, ok := messages[key]
	if !ok {
		return key
	}
	if s, ok := m[l]; ok {
		return s
	}
	if s, ok := m[English]; ok {
		return s
	}
	return key
}
