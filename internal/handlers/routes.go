package handlers

import (
	"net/http"
	"time"

	"catalog-backend/internal/commissions"
	"catalog-backend/internal/metrics"
	"catalog-backend/internal/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires every route of the site. inquiries may be nil when the
// commission inbox is not configured.
func NewRouter(s *Server, inquiries *commissions.Handler, probes map[string]Pinger) http.Handler {
	cfg := s.Cfg

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(s.Log))
	r.Use(middleware.CORS(cfg.FrontendOrigins))

	loginLimiter := middleware.NewRateLimiter(cfg.RateLimitLogin, cfg.RateLimitWindow())
	uploadLimiter := middleware.NewRateLimiter(cfg.RateLimitUploads, cfg.RateLimitWindow())
	inquiryLimiter := middleware.NewRateLimiter(cfg.RateLimitInquiries, cfg.RateLimitWindow())

	sessions := middleware.Sessions(s.Sessions, middleware.SessionOptions{
		Secure: cfg.CookieSecure,
		MaxAge: cfg.SessionIdle(),
	})

	r.Get("/healthz", s.Health(probes))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.With(sessions, chiMiddleware.Timeout(30*time.Second)).Get("/", s.Page)

	registerRoutes := func(api chi.Router) {
		api.Group(func(public chi.Router) {
			public.Use(chiMiddleware.Timeout(30 * time.Second))
			public.Get("/entries", s.ListEntries)
			public.Get("/i18n/{lang}", s.GetText)
			if inquiries != nil {
				public.With(inquiryLimiter.Middleware, sessions).Post("/commissions", inquiries.Create)
			}
		})

		api.Route("/session", func(sr chi.Router) {
			sr.Use(sessions)

			sr.Group(func(ev chi.Router) {
				ev.Use(chiMiddleware.Timeout(30 * time.Second))
				ev.Get("/", s.GetSession)
				ev.Post("/refresh", s.RefreshSession)
				ev.Put("/filter", s.SetFilter)
				ev.Put("/lang", s.SetLang)
				ev.Put("/theme", s.SetTheme)

				ev.Post("/admin/gate", s.OpenGate)
				ev.Delete("/admin/gate", s.CloseGate)
				ev.With(loginLimiter.Middleware).Post("/admin/login", s.AdminLogin)
				ev.Post("/admin/logout", s.AdminLogout)

				// Cancelling is always allowed so a demoted session can close its dialogs.
				ev.Post("/editor/cancel", s.CancelEditor)
				ev.Post("/delete/cancel", s.CancelDelete)

				// Important (chi): middlewares must be attached before defining routes.
				ev.Group(func(protected chi.Router) {
					protected.Use(middleware.RequireAdmin)
					protected.Post("/editor", s.OpenCreate)
					protected.Post("/editor/edit/{id}", s.OpenEdit)
					protected.Patch("/editor/draft", s.PatchDraft)
					protected.Post("/editor/media", s.AddMedia)
					protected.Delete("/editor/media/{index}", s.RemoveMedia)
					protected.Post("/editor/media/{index}/cover", s.MakeCover)
					protected.Post("/editor/media/move", s.MoveMedia)
					protected.Post("/editor/autofetch", s.AutoFetch)
					protected.Post("/editor/submit", s.SubmitDraft)

					protected.Post("/delete/{id}", s.RequestDelete)
					protected.Post("/delete/confirm", s.ConfirmDelete)
				})
			})

			sr.Group(func(up chi.Router) {
				up.Use(middleware.RequireAdmin, uploadLimiter.Middleware)
				up.Use(chiMiddleware.Timeout(3 * time.Minute))
				up.Post("/editor/uploads", s.UploadMedia)
			})
		})

		if inquiries != nil {
			api.Route("/admin/commissions", func(ar chi.Router) {
				ar.Use(sessions, middleware.RequireAdmin, chiMiddleware.Timeout(30*time.Second))
				ar.Get("/", inquiries.AdminList)
				ar.Patch("/{id}", inquiries.AdminUpdateStatus)
			})
		}
	}

	r.Route("/api", registerRoutes)
	r.Route("/api/v1", registerRoutes)
	return r
}
