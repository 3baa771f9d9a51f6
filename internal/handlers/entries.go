package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"catalog-backend/internal/cache"
	"catalog-backend/internal/catalog"
	"catalog-backend/internal/gallery"
	"catalog-backend/internal/i18n"
	"catalog-backend/internal/store"
	"catalog-backend/internal/transport"

	"github.com/go-chi/chi/v5"
)

const (
	entriesCacheKey = "entries"
	entriesCacheTTL = 60 * time.Second
)

type entriesResponse struct {
	Items []catalog.Entry `json:"items"`
	Total int             `json:"total"`
}

// ListEntries is the read-only public feed of the catalog, newest first.
// ?category narrows the cached full list in memory.
func (s *Server) ListEntries(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := s.cachedEntries(ctx)
	if err != nil {
		log.Error("entries list: failed", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadGateway, store.UserMessage(err, "store error"), nil)
		return
	}

	if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
		items = gallery.Visible(category, items)
	}
	transport.WriteJSON(w, http.StatusOK, entriesResponse{Items: items, Total: len(items)})
}

func (s *Server) cachedEntries(ctx context.Context) ([]catalog.Entry, error) {
	var items []catalog.Entry
	if s.Cache != nil && cache.GetJSON(ctx, s.Cache, entriesCacheKey, &items) {
		return items, nil
	}

	items, err := s.Store.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []catalog.Entry{}
	}
	if s.Cache != nil {
		_ = cache.SetJSON(ctx, s.Cache, entriesCacheKey, items, entriesCacheTTL)
	}
	return items, nil
}

func (s *Server) invalidateEntries(ctx context.Context, r *http.Request) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Delete(ctx, entriesCacheKey); err != nil {
		s.logWithRequest(r).Warn("entries cache: invalidate failed", slog.String("error", err.Error()))
	}
}

type textResponse struct {
	Lang          i18n.Lang   `json:"lang"`
	Text          i18n.Bundle `json:"text"`
	WorkflowOrder []string    `json:"workflow_order"`
	ServiceOrder  []string    `json:"service_order"`
	TechStack     []string    `json:"tech_stack"`
	Categories    []string    `json:"categories"`
}

// GetText serves the static copy of one locale.
func (s *Server) GetText(w http.ResponseWriter, r *http.Request) {
	lang, ok := i18n.Parse(strings.TrimSpace(chi.URLParam(r, "lang")))
	if !ok {
		transport.WriteError(w, http.StatusNotFound, "unsupported language", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, textResponse{
		Lang:          lang,
		Text:          i18n.For(lang),
		WorkflowOrder: i18n.WorkflowOrder,
		ServiceOrder:  i18n.ServiceOrder,
		TechStack:     i18n.TechStack,
		Categories:    catalog.Categories,
	})
}
