package handlers

import (
	"context"
	"net/http"
	"time"

	"catalog-backend/internal/transport"
)

// Pinger is implemented by the dependencies health checks probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// Health reports liveness plus the state of each probe; a failing probe
// turns the response into a 503.
func (s *Server) Health(probes map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		checks := make(map[string]string, len(probes))
		for name, p := range probes {
			if err := p.Ping(ctx); err != nil {
				checks[name] = "down"
				status = http.StatusServiceUnavailable
				continue
			}
			checks[name] = "ok"
		}
		transport.WriteJSON(w, status, map[string]interface{}{
			"status":   http.StatusText(status),
			"sessions": s.Sessions.Len(),
			"checks":   checks,
		})
	}
}
