package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}
	gin.SetMode(cfg.GinMode)

	renderer, err := NewRenderer()
	if err != nil {
		log.Fatal("Failed to build renderer: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var metrics *MetricsStore
	if cfg.MetricsEnabled {
		salt := cfg.HashSalt
		if salt == "" {
			salt = generateAdminToken()
		}
		metrics, err = OpenMetrics(cfg.DatabasePath, salt)
		if err != nil {
			log.Fatal("Failed to open metrics database: ", err)
		}
		defer metrics.Close()

		// Clean up old visitor data for privacy compliance
		go func() {
			if _, err := metrics.Cleanup(ctx); err != nil {
				log.Printf("Error cleaning up old visitor data: %v", err)
			}
		}()
	}

	sessions := NewSessionStore(cfg.SessionTTL, cfg.MaxSessions)
	go sessions.Run(ctx, cfg.SweepInterval)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: NewServer(cfg, renderer, sessions, metrics).Router(),
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	log.Printf("Portfolio listening on :%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("Server error: ", err)
	}
	<-done
}
