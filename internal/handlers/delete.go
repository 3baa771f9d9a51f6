package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func (s *Server) RequestDelete(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(w, r)
	if sess == nil {
		return
	}
	if err := sess.RequestDelete(strings.TrimSpace(chi.URLParam(r, "id"))); err != nil {
		s.writeEventError(w, r, sess, "delete request", err)
		return
	}
	s.writeSnapshot(w, sess)
}

func (s *Server) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(w, r)
	if sess == nil {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := sess.ConfirmDelete(ctx); err != nil {
		s.writeEventError(w, r, sess, "delete confirm", err)
		return
	}
	s.invalidateEntries(ctx, r)
	s.writeSnapshot(w, sess)
}

func (s *Server) CancelDelete(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(w, r)
	if sess == nil {
		return
	}
	sess.CancelDelete()
	s.writeSnapshot(w, sess)
}
