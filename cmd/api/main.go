package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"dogwalking/internal/notify"
	"dogwalking/internal/platform/config"
	"dogwalking/internal/platform/logger"
	"dogwalking/internal/router"
	"dogwalking/internal/storage"
)

// @title Dog Walking API
// @version 1.0
// @description Reservas, reseñas y mensajes de contacto del sitio de paseos.
// @BasePath /
func main() {
	cfg := config.Load()
	log := logger.NewFromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Error("storage init failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	notifier := buildNotifier(cfg, log)

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Storage:    store,
			Logger:     log,
			Notifier:   notifier,
			CORSOrigin: cfg.CORSOrigin,
		}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr(), "backend": string(store.Backend)})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"error": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", map[string]any{"error": err.Error()})
	}
	if err := notifier.Close(); err != nil {
		log.Warn("notifier close error", map[string]any{"error": err.Error()})
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Warn("storage close error", map[string]any{"error": err.Error()})
	}
}

func buildNotifier(cfg config.Config, log logger.Logger) *notify.Notifier {
	var sinks []notify.Sink

	if cfg.WebhookURL != "" {
		w, err := notify.NewWebhookSink(cfg.WebhookURL, cfg.WriteTimeout/2)
		if err != nil {
			log.Warn("webhook notifications disabled", map[string]any{"error": err.Error()})
		} else {
			sinks = append(sinks, w)
			log.Info("webhook notifications enabled", nil)
		}
	}
	if len(cfg.KafkaBrokers) > 0 {
		k, err := notify.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			log.Warn("kafka notifications disabled", map[string]any{"error": err.Error()})
		} else {
			sinks = append(sinks, k)
			log.Info("kafka notifications enabled", map[string]any{"topic": cfg.KafkaTopic})
		}
	}

	return notify.New(sinks...)
}
