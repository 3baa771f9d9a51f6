package middleware

import (
	"net/http"

	"catalog-backend/internal/transport"
)

// RequireAdmin rejects requests whose session has not passed the passcode
// gate. It must run after Sessions.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := SessionFromContext(r.Context())
		if s == nil {
			transport.WriteError(w, http.StatusUnauthorized, "no session", nil)
			return
		}
		if !s.IsAdmin() {
			transport.WriteError(w, http.StatusForbidden, "admin mode required", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
