package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nearbyfyi/ner/config"
	"github.com/nearbyfyi/ner/pkg/auth"
	"github.com/nearbyfyi/ner/pkg/classifiers"
	"github.com/nearbyfyi/ner/pkg/models"
	"github.com/nearbyfyi/ner/pkg/server"
	"github.com/nearbyfyi/ner/pkg/telemetry"
)

const shutdownTimeout = 10 * time.Second

// run is the entrypoint for the ner server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring ner: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting ner server version %s", config.VersionString)

	config.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.SetupTracing(ctx, &cfg.Tracing)
	if err != nil {
		log.Fatalf("Error setting up tracing: %s", err)
	}

	appState, err := NewAppState(ctx, cfg)
	if err != nil {
		log.Fatalf("Error loading classifiers: %s", err)
	}

	srv, err := server.Create(appState)
	if err != nil {
		log.Fatalf("Error creating server: %s", err)
	}

	go func() {
		<-ctx.Done()
		log.Info("Shutting down ner server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Errorf("Error shutting down server: %v", err)
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Errorf("Error flushing traces: %v", err)
		}
	}()

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// NewAppState loads the configured classifiers and creates the AppState
// shared by all handlers.
func NewAppState(ctx context.Context, cfg *config.Config) (*models.AppState, error) {
	registry, err := classifiers.NewRegistry(ctx, &cfg.Classifiers)
	if err != nil {
		return nil, err
	}

	log.Infof(
		"Loaded classifiers %v, default %q",
		registry.Names(),
		registry.Default(),
	)

	return &models.AppState{
		Classifiers: registry,
		Config:      cfg,
	}, nil
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if dumpConfig {
		out, err := config.Dump(cfg)
		if err != nil {
			log.Fatalf("Error dumping config: %s", err)
		}
		fmt.Print(string(out))
		os.Exit(0)
	}
	if generateKey {
		token, err := auth.GenerateToken(cfg)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(token)
		os.Exit(0)
	}
}
