package site

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// VisitorCookie names the cookie carrying the anonymous visitor id.
const VisitorCookie = "visitor"

const visitorMaxAge = 365 * 24 * time.Hour

type visitorKey struct{}

// WithVisitor returns a context carrying id.
func WithVisitor(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, visitorKey{}, id)
}

// VisitorID returns the visitor id set by the visitor middleware, or "".
func VisitorID(ctx context.Context) string {
	id, _ := ctx.Value(visitorKey{}).(string)
	return id
}

// visitorMiddleware makes sure every request carries a visitor id,
// issuing a new cookie when the request has none or a malformed one.
func (s *Site) visitorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(VisitorCookie); err == nil {
			if parsed, err := uuid.Parse(c.Value); err == nil {
				id = parsed.String()
			}
		}
		if id == "" {
			id = uuid.New().String()
			http.SetCookie(w, &http.Cookie{
				Name:     VisitorCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   int(visitorMaxAge.Seconds()),
				HttpOnly: true,
				Secure:   isHTTPS(r),
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(WithVisitor(r.Context(), id)))
	})
}

// isHTTPS reports whether the visitor reached the site over TLS, directly
// or through a proxy that sets X-Forwarded-Proto.
func isHTTPS(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
