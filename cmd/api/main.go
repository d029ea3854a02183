package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/amansman77/buddy/internal/config"
	"github.com/amansman77/buddy/internal/handler"
	chatHandler "github.com/amansman77/buddy/internal/handler/chat"
	chatService "github.com/amansman77/buddy/internal/service/chat"
	"github.com/amansman77/buddy/internal/store/analytics"
	"github.com/amansman77/buddy/internal/store/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if cfg.AI.MockMode() {
		log.Println("mock mode active: all LLM calls answered locally")
	} else if !cfg.AI.Configured() {
		log.Println("warning: no LLM API keys configured, chat requests will fail")
	}

	recorder := newRecorder(ctx, cfg.Database)
	sessions := session.NewGateway(session.NewMemoryKV())
	chatSvc := chatService.NewService(cfg.AI, sessions, recorder)

	router := handler.NewRouter(chatHandler.New(chatSvc))

	startServer(ctx, cfg.Server, router)
}

// newRecorder opens the analytics database when configured, falling
// back to log-only recording.
func newRecorder(ctx context.Context, cfg config.DatabaseConfig) analytics.Recorder {
	if cfg.URL == "" {
		log.Println("DATABASE_URL not set, interaction records go to the process log only")
		return analytics.LogRecorder{}
	}

	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		log.Printf("warning: failed to open analytics db: %v", err)
		return analytics.LogRecorder{}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		log.Printf("warning: analytics db unreachable: %v", err)
		return analytics.LogRecorder{}
	}

	recorder := analytics.NewPostgresRecorder(db)
	if err := recorder.EnsureSchema(ctx); err != nil {
		log.Printf("warning: %v", err)
		return analytics.LogRecorder{}
	}

	log.Println("analytics recorder connected to postgres")
	return recorder
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Buddy backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
