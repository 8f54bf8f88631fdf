package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hexfield/catalog-admin/internal/admin/auth"
	"github.com/hexfield/catalog-admin/internal/admin/catalog"
	"github.com/hexfield/catalog-admin/internal/admin/config"
	"github.com/hexfield/catalog-admin/internal/admin/httpserver"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	authService, catalogService := buildServices(cfg)

	srv, err := httpserver.New(httpserver.Config{
		Address:         cfg.Address,
		BasePath:        cfg.BasePath,
		Environment:     cfg.Environment,
		SessionHashKey:  []byte(cfg.SessionHashKey),
		SessionBlockKey: []byte(cfg.SessionBlockKey),
		SessionLifetime: cfg.SessionLifetime,
		CookieSecure:    cfg.CookieSecure,
		AuthService:     authService,
		CatalogService:  catalogService,
	})
	if err != nil {
		log.Fatalf("server setup failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server failed: %v", err)
		}
	}()

	log.Printf("admin server listening on %s (base path %s)", cfg.Address, cfg.BasePath)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
		cancel()
		stop()
		os.Exit(1)
	}
}

func buildServices(cfg *config.Config) (auth.Service, catalog.Service) {
	if !cfg.UseRemoteAPI() {
		log.Printf("ADMIN_API_BASE not set; using in-memory services (account %s)", cfg.DevAccount)
		authService := auth.NewStaticService(
			[]byte(cfg.SessionHashKey),
			map[string]string{cfg.DevAccount: cfg.DevPassword},
			cfg.SessionLifetime,
		)
		return authService, catalog.NewStaticService()
	}

	authService, err := auth.NewHTTPService(cfg.APIBase, http.DefaultClient)
	if err != nil {
		log.Fatalf("auth client: %v", err)
	}
	catalogService, err := catalog.NewHTTPService(cfg.APIBase, cfg.APIPath, http.DefaultClient)
	if err != nil {
		log.Fatalf("catalog client: %v", err)
	}
	log.Printf("catalog API client enabled (base=%s)", cfg.APIBase)
	return authService, catalogService
}
