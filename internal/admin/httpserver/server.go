package httpserver

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/hexfield/catalog-admin/internal/admin/auth"
	"github.com/hexfield/catalog-admin/internal/admin/catalog"
	custommw "github.com/hexfield/catalog-admin/internal/admin/httpserver/middleware"
	"github.com/hexfield/catalog-admin/internal/admin/httpserver/ui"
	appsession "github.com/hexfield/catalog-admin/internal/admin/session"
	"github.com/hexfield/catalog-admin/public"
)

// Config holds runtime options for the admin HTTP server.
type Config struct {
	Address     string
	BasePath    string
	LoginPath   string
	Environment string

	SessionCookieName string
	SessionHashKey    []byte
	SessionBlockKey   []byte
	SessionLifetime   time.Duration
	CookieSecure      bool

	Authenticator  custommw.Authenticator
	AuthService    auth.Service
	CatalogService catalog.Service
}

// New constructs the HTTP server with the full middleware stack, embedded
// assets and the product administration routes.
func New(cfg Config) (*http.Server, error) {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(chimw.Logger)
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(60 * time.Second))

	staticContent, err := public.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("embed static: %w", err)
	}
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))

	basePath := normalizeBasePath(cfg.BasePath)
	loginPath := resolveLoginPath(basePath, cfg.LoginPath)

	authService := cfg.AuthService
	if authService == nil {
		authService = auth.NewStaticService(nil, nil, 0)
	}

	authenticator := cfg.Authenticator
	if authenticator == nil {
		authenticator = custommw.NewCheckAuthenticator(authService)
	}

	sessionStore, err := appsession.NewManager(appsession.Config{
		CookieName:   cfg.SessionCookieName,
		HashKey:      cfg.SessionHashKey,
		BlockKey:     cfg.SessionBlockKey,
		CookiePath:   "/",
		CookieSecure: cfg.CookieSecure,
		Lifetime:     cfg.SessionLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("session manager: %w", err)
	}

	uiHandlers := ui.NewHandlers(ui.Dependencies{
		CatalogService: cfg.CatalogService,
		BasePath:       basePath,
	})
	authHandlers := newAuthHandlers(authService, uiHandlers, basePath, loginPath)

	router.Route(basePath, func(r chi.Router) {
		r.Use(custommw.RequestInfoMiddleware(basePath))
		r.Use(custommw.Environment(cfg.Environment))
		r.Use(custommw.HTMX())
		r.Use(custommw.Session(sessionStore))

		// Login and logout sit outside the auth gate.
		r.Group(func(r chi.Router) {
			r.Use(custommw.CSRF(custommw.CSRFConfig{}))
			r.Get("/login", authHandlers.LoginForm)
			r.Post("/login", authHandlers.LoginSubmit)
			r.Post("/logout", authHandlers.Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(custommw.NoStore())
			r.Use(custommw.Auth(authenticator, loginPath))
			r.Use(custommw.CSRF(custommw.CSRFConfig{}))

			r.Get("/", func(w http.ResponseWriter, req *http.Request) {
				http.Redirect(w, req, joinPath(basePath, "/products"), http.StatusFound)
			})

			r.Get("/products", uiHandlers.ProductsPage)
			r.With(custommw.RequireHTMX()).Get("/products/table", uiHandlers.ProductsTable)

			r.Route("/products/modal", func(r chi.Router) {
				r.Post("/open", uiHandlers.ModalOpen)
				r.Post("/close", uiHandlers.ModalClose)
				r.Post("/field", uiHandlers.ModalField)
				r.Post("/images/add", uiHandlers.ModalImagesAdd)
				r.Post("/images/remove", uiHandlers.ModalImagesRemove)
				r.Post("/images/{index}", uiHandlers.ModalImageSlot)
				r.Post("/confirm", uiHandlers.ModalConfirm)
			})
		})
	})

	return &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, nil
}

func normalizeBasePath(path string) string {
	p := strings.TrimSpace(path)
	if p == "" {
		return "/admin"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
	}
	if p == "" {
		return "/"
	}
	return p
}

func resolveLoginPath(base string, override string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	return joinPath(base, "/login")
}

func joinPath(base, suffix string) string {
	if base == "/" || base == "" {
		return suffix
	}
	return strings.TrimRight(base, "/") + suffix
}
