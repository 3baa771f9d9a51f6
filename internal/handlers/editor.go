package handlers

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"catalog-backend/internal/editor"
	"catalog-backend/internal/httpx"
	"catalog-backend/internal/store"
	"catalog-backend/internal/transport"

	"github.com/go-chi/chi/v5"
)

type draftPatchRequest struct {
	URL         *string `json:"url"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category" validate:"omitempty,category"`
}

type mediaURLRequest struct {
	URL string `json:"url" validate:"required,notblank"`
}

type moveMediaRequest struct {
	From *int `json:"from" validate:"required"`
	To   *int `json:"to" validate:"required"`
}

type autoFetchRequest struct {
	URL *string `json:"url"`
}

func (s *Server) OpenCreate(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(w, r)
	if sess == nil {
		return
	}
	if err := sess.OpenCreate(); err != nil {
		s.writeEventError(w, r, sess, "editor open create", err)
		return
	}
	s.writeSnapshot(w, sess)
}

func (s *Server) OpenEdit(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(w, r)
	if sess == nil {
		return
	}
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if err := sess.OpenEdit(id); err != nil {
		s.writeEventError(w, r, sess, "editor open edit", err)
		return
	}
	s.writeSnapshot(w, sess)
}

func (s *Server) CancelEditor(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(w, r)
	if sess == nil {
		return
	}
	if err := sess.Editor().Cancel(); err != nil {
		s.writeEventError(w, r, sess, "editor cancel", err)
		return
	}
	s.writeSnapshot(w, sess)
}

func (s *Server) PatchDraft(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(w, r)
	if sess == nil {
		return
	}
	var req draftPatchRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	err := sess.Editor().Update(editor.Patch{
		URL:         req.URL,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		s.writeEventError(w, r, sess, "editor patch", err)
		return
	}
	s.writeSnapshot(w, sess)
}

func (s *Server) AddMedia(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(w, r)
	if sess == nil {
		return
	}
	var req mediaURLRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	if err := sess.Editor().AddMediaURL(req.URL); err != nil {
		s.writeEventError(w, r, sess, "editor add media", err)
		return
	}
	s.writeSnapshot(w, sess)
}

func (s *Server) RemoveMedia(w http.ResponseWriter, r *http.Request) {
	s.mediaAt(w, r, "editor remove media", func(ed *editor.Editor, i int) error {
		return ed.RemoveMedia(i)
	})
}

func (s *Server) MakeCover(w http.ResponseWriter, r *http.Request) {
	s.mediaAt(w, r, "editor make cover", func(ed *editor.Editor, i int) error {
		return ed.MakeCover(i)
	})
}

func (s *Server) mediaAt(w http.ResponseWriter, r *http.Request, op string, fn func(*editor.Editor, int) error) {
	sess := s.currentSession(w, r)
	if sess == nil {
		return
	}
	i, ok := indexParam(r, "index")
	if !ok {
		transport.WriteError(w, http.StatusBadRequest, "invalid index", nil)
		return
	}
	if err := fn(sess.Editor(), i); err != nil {
		s.writeEventError(w, r, sess, op, err)
		return
	}
	s.writeSnapshot(w, sess)
}

func (s *Server) MoveMedia(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(w, r)
	if sess == nil {
		return
	}
	var req moveMediaRequest
	if !s.decodeValid(w, r, &req) {
		return
	}
	if err := sess.Editor().MoveMedia(*req.From, *req.To); err != nil {
		s.writeEventError(w, r, sess, "editor move media", err)
		return
	}
	s.writeSnapshot(w, sess)
}

// UploadMedia streams the multipart "files" parts to the bucket in order.
func (s *Server) UploadMedia(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	sess := s.currentSession(w, r)
	if sess == nil {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.Cfg.MaxUploadBytes())
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			transport.WriteError(w, http.StatusRequestEntityTooLarge, "upload too large", nil)
			return
		}
		log.Warn("editor upload: bad form", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, "invalid multipart form", nil)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		transport.WriteError(w, http.StatusBadRequest, "validation error", map[string]string{"files": "required"})
		return
	}

	uploads := make([]store.Upload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			log.Error("editor upload: open part", slog.String("file", fh.Filename), slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusBadRequest, "invalid file", nil)
			return
		}
		defer f.Close()
		uploads = append(uploads, store.Upload{
			Name:        fh.Filename,
			ContentType: partContentType(fh),
			Size:        fh.Size,
			Body:        f,
		})
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Minute)
	defer cancel()

	if _, err := sess.Editor().Upload(ctx, uploads); err != nil {
		s.writeEventError(w, r, sess, "editor upload", err)
		return
	}
	s.writeSnapshot(w, sess)
}

func partContentType(fh *multipart.FileHeader) string {
	if ct := fh.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// AutoFetch optionally takes the URL to fetch, which replaces the draft URL.
func (s *Server) AutoFetch(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(w, r)
	if sess == nil {
		return
	}
	var req autoFetchRequest
	if err := httpx.DecodeOptionalJSON(r.Body, &req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	ed := sess.Editor()
	if req.URL != nil {
		if err := ed.SetURL(*req.URL); err != nil {
			s.writeEventError(w, r, sess, "editor autofetch", err)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	if _, err := ed.AutoFetch(ctx); err != nil {
		s.writeEventError(w, r, sess, "editor autofetch", err)
		return
	}
	s.writeSnapshot(w, sess)
}

func (s *Server) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	sess := s.currentSession(w, r)
	if sess == nil {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	if err := sess.Editor().Submit(ctx); err != nil {
		s.writeEventError(w, r, sess, "editor submit", err)
		return
	}
	s.invalidateEntries(ctx, r)
	s.writeSnapshot(w, sess)
}
