package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/invoicedash/internal/auth"
	"github.com/MrJamesThe3rd/invoicedash/internal/cache"
	"github.com/MrJamesThe3rd/invoicedash/internal/http/api"
	"github.com/MrJamesThe3rd/invoicedash/internal/http/dashboard"
	"github.com/MrJamesThe3rd/invoicedash/internal/http/health"
	"github.com/MrJamesThe3rd/invoicedash/internal/http/invoices"
	"github.com/MrJamesThe3rd/invoicedash/internal/http/page"
	"github.com/MrJamesThe3rd/invoicedash/internal/http/session"
)

type Options struct {
	Timeout        time.Duration
	AllowedOrigins []string
}

func New(
	authSvc *auth.Service,
	pages *cache.Pages,
	sessionH *session.Handler,
	dashboardH *dashboard.Handler,
	invoicesH *invoices.Handler,
	apiV1 *api.Handler,
	healthH *health.Handler,
	opts Options,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(securityHeaders)

	if opts.Timeout > 0 {
		router.Use(middleware.Timeout(opts.Timeout))
	}

	router.Method(http.MethodGet, "/healthz", healthH)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	})

	router.Group(sessionH.Routes)

	router.Route("/dashboard", func(r chi.Router) {
		r.Use(session.RequirePage(authSvc))

		dashboardH.Routes(r)

		r.Route("/invoices", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(skipCacheWithFlash(pages.Middleware))
				invoicesH.ListRoutes(r)
			})

			invoicesH.Routes(r)
		})
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
		r.Use(session.RequireAPI(authSvc))

		apiV1.Routes(r)
	})

	return router
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next.ServeHTTP(w, r)
	})
}

// skipCacheWithFlash bypasses the page cache while a flash message is pending,
// so the message is rendered instead of a stored copy.
func skipCacheWithFlash(cached func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		withCache := cached(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := r.Cookie(page.FlashCookie); err == nil {
				next.ServeHTTP(w, r)
				return
			}

			withCache.ServeHTTP(w, r)
		})
	}
}
