package middleware

import (
	"context"
	"net/http"
	"time"

	"catalog-backend/internal/session"
)

const SessionCookie = "catalog_session"

type sessionKey struct{}

type SessionOptions struct {
	Secure bool
	MaxAge time.Duration
}

// Sessions attaches the visitor's session to the request, issuing a new
// cookie when the presented one is missing or expired.
func Sessions(reg *session.Registry, opts SessionOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(SessionCookie); err == nil {
				id = c.Value
			}

			s, created := reg.Resolve(id)
			if created {
				cookie := &http.Cookie{
					Name:     SessionCookie,
					Value:    s.ID(),
					Path:     "/",
					HttpOnly: true,
					Secure:   opts.Secure,
					SameSite: http.SameSiteLaxMode,
				}
				if opts.MaxAge > 0 {
					cookie.MaxAge = int(opts.MaxAge.Seconds())
				}
				http.SetCookie(w, cookie)
			}

			ctx := context.WithValue(r.Context(), sessionKey{}, s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SessionFromContext(ctx context.Context) *session.Session {
	if s, ok := ctx.Value(sessionKey{}).(*session.Session); ok {
		return s
	}
	return nil
}

// WithSession is used by tests and by callers that resolve sessions themselves.
func WithSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}
