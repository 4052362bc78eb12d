package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpHandlers "github.com/globalnotes/notes-workspace/internal/api/http"
	"github.com/globalnotes/notes-workspace/internal/api/respond"
	"github.com/globalnotes/notes-workspace/internal/auth"
	"github.com/globalnotes/notes-workspace/internal/config"
	"github.com/globalnotes/notes-workspace/internal/core/account"
	notescore "github.com/globalnotes/notes-workspace/internal/core/notes"
	"github.com/globalnotes/notes-workspace/internal/kv"
	"github.com/globalnotes/notes-workspace/internal/kv/memory"
	"github.com/globalnotes/notes-workspace/internal/kv/sqlite"
	"github.com/globalnotes/notes-workspace/internal/platform/logger"
	"github.com/globalnotes/notes-workspace/internal/share"
	"github.com/globalnotes/notes-workspace/internal/share/lzcodec"
	"github.com/globalnotes/notes-workspace/internal/share/qr"
	"github.com/globalnotes/notes-workspace/internal/store"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fallbackLog := logger.New("notes-service", "info")
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(cfg.ServiceName, cfg.LogLevel)

	log.Info().
		Str("db_path", cfg.DBPath).
		Int("http_port", cfg.HTTPPort).
		Msg("Notes service starting")

	// -------- Persistence -----------------
	var kvs kv.Store
	kvs, err = sqlite.NewStore(cfg.DBPath)
	if err != nil {
		// degraded mode: serve from memory, nothing survives a restart
		log.Error().Err(err).Str("db_path", cfg.DBPath).Msg("Failed to open local store, falling back to in-memory storage")
		kvs = memory.New()
	}
	defer func() { _ = kvs.Close() }()
	st := store.New(kvs)

	// -------- Core services ---------------
	notesSvc := notescore.NewService(st)
	accountSvc := account.NewService(st)

	// -------- Share pipeline --------------
	codec := lzcodec.New()
	encoder := &share.Encoder{
		Compressor: codec,
		Origin:     cfg.ShareOrigin,
		Path:       cfg.SharePath,
		Company:    cfg.Company,
	}

	// -------- Optional auth provider ------
	var authClient *auth.Client
	if cfg.AuthBaseURL != "" {
		authClient = auth.NewClient(cfg.AuthBaseURL, cfg.AuthAnonKey)
		log.Info().Str("base_url", cfg.AuthBaseURL).Msg("External auth provider configured")
	}

	// -------- Router & Server -------------
	router := httpHandlers.NewRouter(httpHandlers.Handlers{
		Page:     httpHandlers.NewPageHandler(codec, cfg.Company),
		Health:   httpHandlers.NewHealthHandler(kvs),
		Notes:    httpHandlers.NewNotesHandler(notesSvc),
		Accounts: httpHandlers.NewAccountsHandler(accountSvc, notesSvc),
		Sessions: httpHandlers.NewSessionsHandler(accountSvc, st),
		Share:    httpHandlers.NewShareHandler(encoder, qr.New()),
		Auth:     httpHandlers.NewAuthBridgeHandler(authClient),
	})
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond.WriteNotFound(w, "route not found")
	})

	server := &http.Server{
		Addr:         cfg.GetHTTPAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}
