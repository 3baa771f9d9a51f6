package handlers

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"catalog-backend/internal/i18n"
	"catalog-backend/internal/session"
	"catalog-backend/internal/transport"
)

//go:embed templates/page.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

type pageData struct {
	Snap      session.Snapshot
	Text      i18n.Bundle
	Services  []i18n.Feature
	Steps     []i18n.Feature
	TechStack []string
}

// Page renders the shell for the visitor's session. ?lang and ?filter are
// applied to the session before rendering.
func (s *Server) Page(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	sess := s.currentSession(w, r)
	if sess == nil {
		return
	}

	q := r.URL.Query()
	if raw := q.Get("lang"); raw != "" {
		_ = sess.SetLang(raw)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	sess.EnsureLoaded(ctx)

	if q.Has("filter") {
		sess.SetFilter(q.Get("filter"))
	}

	snap := sess.Snapshot()
	data := pageData{
		Snap:      snap,
		Text:      snap.Text,
		Services:  ordered(snap.Text.Services.Features, i18n.ServiceOrder),
		Steps:     ordered(snap.Text.Workflow.Steps, i18n.WorkflowOrder),
		TechStack: i18n.TechStack,
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		log.Error("page render: failed", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal error", nil)
		return
	}
	transport.WriteRaw(w, http.StatusOK, transport.ContentTypeHTML, buf.Bytes())
}

func ordered(items map[string]i18n.Feature, order []string) []i18n.Feature {
	out := make([]i18n.Feature, 0, len(order))
	for _, key := range order {
		if f, ok := items[key]; ok {
			out = append(out, f)
		}
	}
	return out
}
