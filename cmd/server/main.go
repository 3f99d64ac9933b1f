// Command server runs the quotation HTTP API.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"eventquote/api"
	"eventquote/internal/config"
	"eventquote/internal/logging"
)

const version = "0.1.0"

func main() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfgPath := os.Getenv("EVENTQUOTE_CONFIG")
	if cfgPath != "" {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	addr := cfg.Server.Addr
	if envAddr := os.Getenv("EVENTQUOTE_ADDR"); envAddr != "" {
		addr = envAddr
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      api.NewServer(version),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	logging.Info("quotation API listening",
		zap.String("addr", addr),
		zap.String("version", version),
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logging.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
