package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"catalog-backend/internal/cache"
	"catalog-backend/internal/config"
	"catalog-backend/internal/editor"
	"catalog-backend/internal/gallery"
	"catalog-backend/internal/middleware"
	"catalog-backend/internal/session"
	"catalog-backend/internal/store"
	"catalog-backend/internal/transport"
	"catalog-backend/internal/validation"
)

type Server struct {
	Cfg      *config.Config
	Store    store.Store
	Sessions *session.Registry
	Val      *validation.Validator
	Log      *slog.Logger
	Cache    cache.Cache
}

func (s *Server) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return s.Log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return s.Log.With(slog.String("request_id", id))
	}
	return s.Log
}

// eventResponse is the reply to every session event: the fresh snapshot and,
// when the event was refused or failed, the reason.
type eventResponse struct {
	session.Snapshot
	Error   string            `json:"error,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

func (s *Server) currentSession(w http.ResponseWriter, r *http.Request) *session.Session {
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		transport.WriteError(w, http.StatusUnauthorized, "no session", nil)
	}
	return sess
}

func (s *Server) writeSnapshot(w http.ResponseWriter, sess *session.Session) {
	transport.WriteJSON(w, http.StatusOK, eventResponse{Snapshot: sess.Snapshot()})
}

// writeEventError reports a refused or failed event together with the
// snapshot, so notices raised by the failure still reach the client.
func (s *Server) writeEventError(w http.ResponseWriter, r *http.Request, sess *session.Session, op string, err error) {
	status, message := statusFor(err)
	resp := eventResponse{Snapshot: sess.Snapshot(), Error: message}

	var ve *editor.ValidationError
	if errors.As(err, &ve) {
		resp.Details = ve.Fields
	}

	log := s.logWithRequest(r)
	if status >= http.StatusInternalServerError {
		log.Error(op+": failed", slog.String("error", err.Error()))
	} else {
		log.Warn(op+": refused", slog.String("error", err.Error()))
	}
	transport.WriteJSON(w, status, resp)
}

func statusFor(err error) (int, string) {
	var se *store.Error
	switch {
	case errors.Is(err, editor.ErrValidation):
		return http.StatusUnprocessableEntity, "validation error"
	case errors.Is(err, editor.ErrNotAdmin), errors.Is(err, session.ErrNotAdmin):
		return http.StatusForbidden, "admin mode required"
	case errors.Is(err, session.ErrEntryNotFound):
		return http.StatusNotFound, "entry not found"
	case errors.Is(err, editor.ErrBadIndex):
		return http.StatusBadRequest, "media index out of range"
	case errors.Is(err, editor.ErrEmptyURL):
		return http.StatusBadRequest, "url is required"
	case errors.Is(err, session.ErrUnknownLang):
		return http.StatusBadRequest, "unsupported language"
	case errors.Is(err, session.ErrUnknownTheme):
		return http.StatusBadRequest, "unsupported theme"
	case errors.Is(err, editor.ErrClosed):
		return http.StatusConflict, "editor is not open"
	case errors.Is(err, editor.ErrBusy):
		return http.StatusConflict, "another action is in progress"
	case errors.Is(err, editor.ErrStale), errors.Is(err, gallery.ErrStale):
		return http.StatusConflict, "superseded by a newer action"
	case errors.Is(err, gallery.ErrNothingPending):
		return http.StatusConflict, "no delete pending"
	case errors.Is(err, store.ErrBucketNotFound):
		return http.StatusBadGateway, store.UserMessage(err, "store error")
	case errors.As(err, &se):
		return http.StatusBadGateway, "store error"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
