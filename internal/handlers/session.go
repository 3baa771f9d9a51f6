package handlers

import (
	"context"
	"net/http"
	"time"

	"catalog-backend/internal/httpx"
	"catalog-backend/internal/transport"
)

type filterRequest struct {
	Filter string `json:"filter" validate:"required"`
}

type langRequest struct {
	Lang string `json:"lang" validate:"required,oneof=en id"`
}

type themeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

// GetSession renders the visitor's state, loading the gallery on first use.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(w, r)
	if sess == nil {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sess.EnsureLoaded(ctx)
	s.writeSnapshot(w, sess)
}

func (s *Server) RefreshSession(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(w, r)
	if sess == nil {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := sess.Refresh(ctx); err != nil {
		s.writeEventError(w, r, sess, "session refresh", err)
		return
	}
	s.writeSnapshot(w, sess)
}

func (s *Server) SetFilter(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(w, r)
	if sess == nil {
		return
	}
	var req filterRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	sess.SetFilter(req.Filter)
	s.writeSnapshot(w, sess)
}

func (s *Server) SetLang(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(w, r)
	if sess == nil {
		return
	}
	var req langRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	if err := sess.SetLang(req.Lang); err != nil {
		s.writeEventError(w, r, sess, "session lang", err)
		return
	}
	s.writeSnapshot(w, sess)
}

func (s *Server) SetTheme(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(w, r)
	if sess == nil {
		return
	}
	var req themeRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	if err := sess.SetTheme(req.Theme); err != nil {
		s.writeEventError(w, r, sess, "session theme", err)
		return
	}
	s.writeSnapshot(w, sess)
}

// decodeValid decodes and validates a JSON body, writing the 400 itself.
func (s *Server) decodeValid(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	log := s.logWithRequest(r)
	if err := httpx.DecodeJSON(r.Body, v); err != nil {
		log.Warn("invalid json", "path", r.URL.Path)
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return false
	}
	if err := s.Val.Struct(v); err != nil {
		log.Warn("validation error", "path", r.URL.Path)
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(s.Val.ValidationErrors(err)))
		return false
	}
	return true
}
