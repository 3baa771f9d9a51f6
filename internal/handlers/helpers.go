package handlers

import (
	"net/http"

	"catalog-backend/internal/httpx"

	"github.com/go-chi/chi/v5"
)

func indexParam(r *http.Request, name string) (int, bool) {
	i, err := httpx.ParseIndex(chi.URLParam(r, name))
	return i, err == nil
}
