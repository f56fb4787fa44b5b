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
	"github.com/nebulastellary-afk/fash-rodah/internal/config"
	"github.com/nebulastellary-afk/fash-rodah/internal/ratelimit"
	"github.com/nebulastellary-afk/fash-rodah/internal/server"
	"github.com/nebulastellary-afk/fash-rodah/internal/storage"
)

func main() {
	// Load env if it exists
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	limiter := ratelimit.NewSlidingWindow(cfg.RateLimit.Limit, cfg.RateLimit.Window)
	store := storage.NewFileStore(cfg.Store.Path, cfg.Store.MaxEntries)

	srv := server.New(cfg, limiter, store)

	go func() {
		addr := ":" + cfg.Server.Port
		if err := srv.Run(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
