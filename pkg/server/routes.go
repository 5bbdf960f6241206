package server

import (
	"fmt"
	"net/http"
	"time"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"github.com/riandyrn/otelchi"

	"github.com/nearbyfyi/ner/pkg/auth"
	"github.com/nearbyfyi/ner/pkg/models"
)

const (
	ReadHeaderTimeout = 5 * time.Second
	RouterName        = "ner"
)

// Create creates a new HTTP server with the given app state
func Create(appState *models.AppState) (*http.Server, error) {
	router, err := setupRouter(appState)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr: fmt.Sprintf(
			"%s:%d",
			appState.Config.Server.Host,
			appState.Config.Server.Port,
		),
		Handler:           router,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}, nil
}

func setupRouter(appState *models.AppState) (*chi.Mux, error) {
	router := chi.NewRouter()
	router.Use(httpLogger.Logger("router", log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(SendVersion)
	router.Use(middleware.Heartbeat("/healthz"))

	if size := appState.Config.Server.MaxRequestSize; size > 0 {
		router.Use(middleware.RequestSize(size))
	}

	if appState.Config.Tracing.Enabled {
		router.Use(otelchi.Middleware(RouterName, otelchi.WithChiRoutes(router)))
	}

	if appState.Config.Auth.Required {
		log.Info("JWT authentication required")
		verifier, err := auth.JWTVerifier(appState.Config)
		if err != nil {
			return nil, err
		}
		router.Use(verifier)
		router.Use(jwtauth.Authenticator)
	}

	for _, path := range []string{"/classify", "/api/v1/classify"} {
		router.Post(path, ClassifyTextHandler(appState))
		router.Get(path, ClassifyQueryHandler(appState))
	}

	return router, nil
}
