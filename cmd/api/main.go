package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"

	appanalysis "github.com/Pan-Binghong/family-constellation/internal/application/analysis"
	"github.com/Pan-Binghong/family-constellation/internal/config"
	"github.com/Pan-Binghong/family-constellation/internal/infra/ai/openai"
	"github.com/Pan-Binghong/family-constellation/internal/infra/ai/prompt"
	"github.com/Pan-Binghong/family-constellation/internal/infra/httpserver"
	"github.com/Pan-Binghong/family-constellation/internal/infra/screenshot"
	"github.com/Pan-Binghong/family-constellation/internal/middleware"
)

func main() {
	log.SetHandler(text.New(os.Stderr))

	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.WithError(err).Fatal("config load error")
	}
	if lvl, err := log.ParseLevel(cfg.Server.LogLevel); err == nil {
		log.SetLevel(lvl)
	} else {
		log.WithField("level", cfg.Server.LogLevel).Warn("unknown log level, using info")
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	svc := appanalysis.NewService(
		screenshot.NewProber(),
		prompt.NewBuilder(),
		openai.NewClient(cfg),
	)

	checkers := map[string]middleware.HealthChecker{
		"completion": middleware.CompletionConfigChecker{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.TextModel,
		},
	}

	srv := &http.Server{
		Addr:        cfg.Addr(),
		Handler:     httpserver.NewRouter(svc, checkers),
		ReadTimeout: 15 * time.Second,
		// no WriteTimeout: /analyze blocks for the full completion round-trip
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.WithFields(log.Fields{
			"addr":         cfg.Addr(),
			"base_url":     cfg.OpenAI.BaseURL,
			"text_model":   cfg.OpenAI.TextModel,
			"vision_model": cfg.OpenAI.VisionModel,
		}).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server error")
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutdown error")
	}
}
