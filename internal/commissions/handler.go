package commissions

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"catalog-backend/internal/httpx"
	"catalog-backend/internal/i18n"
	"catalog-backend/internal/logging"
	"catalog-backend/internal/middleware"
	"catalog-backend/internal/transport"
	"catalog-backend/internal/validation"
	"github.com/go-chi/chi/v5"
)

const (
	createTimeout = 8 * time.Second
	adminTimeout  = 5 * time.Second
)

// Handler serves the commission inbox. Visitors post inquiries; admins page
// through them and move them along the status flow.
type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{service: service, val: val, log: logging.OrDiscard(log)}
}

// Contact points the visitor at the direct channels once the inquiry is in.
type Contact struct {
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
}

type createResponse struct {
	Success bool    `json:"success"`
	ID      string  `json:"id"`
	Status  string  `json:"status"`
	Contact Contact `json:"contact"`
}

type listResponse struct {
	Items  []Inquiry `json:"items"`
	Limit  int64     `json:"limit"`
	Offset int64     `json:"offset"`
	Total  int64     `json:"total"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.requestLog(r, "commission create")

	var req CreateRequest
	if !h.bind(w, r, log, &req) {
		return
	}

	var lang string
	if s := middleware.SessionFromContext(r.Context()); s != nil {
		lang = string(s.Lang())
	}

	ctx, cancel := context.WithTimeout(r.Context(), createTimeout)
	defer cancel()

	inquiry, err := h.service.Create(ctx, req, lang)
	if err != nil {
		h.fail(w, log, err)
		return
	}

	go h.notifyOwner(inquiry)

	log.Info("ok", slog.String("inquiry_id", inquiry.ID), slog.String("service", inquiry.Service), slog.String("channel", inquiry.Channel))
	transport.WriteJSON(w, http.StatusCreated, createResponse{
		Success: true,
		ID:      inquiry.ID,
		Status:  inquiry.Status,
		Contact: Contact{WhatsApp: i18n.WhatsAppURL, Email: i18n.EmailURL},
	})
}

// notifyOwner runs detached from the request.
func (h *Handler) notifyOwner(inquiry Inquiry) {
	ctx, cancel := context.WithTimeout(context.Background(), createTimeout)
	defer cancel()
	if err := h.service.NotifyOwner(ctx, inquiry); err != nil {
		h.log.Warn("commission notify: failed", slog.String("inquiry_id", inquiry.ID), slog.String("error", err.Error()))
	}
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.requestLog(r, "commission list")
	q := r.URL.Query()
	limit, offset, err := httpx.ParseLimitOffset(q, 20, 100)
	if err != nil {
		log.Warn("bad paging", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), adminTimeout)
	defer cancel()

	filter := ListFilter{Status: strings.TrimSpace(q.Get("status")), Service: strings.TrimSpace(q.Get("service"))}
	items, total, err := h.service.ListAdmin(ctx, filter, limit, offset)
	if err != nil {
		h.fail(w, log, err)
		return
	}

	log.Debug("ok", slog.Int("count", len(items)), slog.Int64("total", total))
	transport.WriteJSON(w, http.StatusOK, listResponse{Items: items, Limit: limit, Offset: offset, Total: total})
}

func (h *Handler) AdminUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	log := h.requestLog(r, "commission status").With(slog.String("inquiry_id", id))
	if id == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req StatusUpdateRequest
	if !h.bind(w, r, log, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), adminTimeout)
	defer cancel()

	inquiry, err := h.service.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		h.fail(w, log, err)
		return
	}

	log.Info("ok", slog.String("status", inquiry.Status))
	transport.WriteJSON(w, http.StatusOK, inquiry)
}

// bind decodes and validates the body, answering 400 itself on failure.
func (h *Handler) bind(w http.ResponseWriter, r *http.Request, log *slog.Logger, dst interface{}) bool {
	if err := httpx.DecodeJSON(r.Body, dst); err != nil {
		log.Warn("invalid json", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return false
	}
	if err := h.val.Struct(dst); err != nil {
		log.Warn("validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return false
	}
	return true
}

// fail maps service errors onto responses. Anything unrecognised is a
// storage failure and is logged.
func (h *Handler) fail(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, ErrInvalidService):
		transport.WriteError(w, http.StatusBadRequest, "validation error", map[string]string{"service": "oneof"})
	case errors.Is(err, ErrInvalidStatus):
		transport.WriteError(w, http.StatusBadRequest, "validation error", map[string]string{"status": "oneof"})
	case errors.Is(err, ErrMissingContact):
		transport.WriteError(w, http.StatusBadRequest, "validation error", map[string]string{"email": "required_without", "phone": "required_without"})
	case errors.Is(err, ErrNotFound):
		log.Warn("not found")
		transport.WriteError(w, http.StatusNotFound, "inquiry not found", nil)
	default:
		log.Error("database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
	}
}

func (h *Handler) requestLog(r *http.Request, op string) *slog.Logger {
	log := h.log.With(slog.String("op", op))
	if r == nil {
		return log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return log.With(slog.String("request_id", id))
	}
	return log
}
