// Command soundscribe runs the audio transcription HTTP service.
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/soundscribe/soundscribe/api"
	"github.com/soundscribe/soundscribe/config"
	"github.com/soundscribe/soundscribe/logger"
	"github.com/soundscribe/soundscribe/observability"
	"github.com/soundscribe/soundscribe/server"
	"github.com/soundscribe/soundscribe/transcription"
	"github.com/soundscribe/soundscribe/transcription/groq"
	"github.com/soundscribe/soundscribe/transcription/openai"
	"github.com/soundscribe/soundscribe/util"
	"github.com/soundscribe/soundscribe/version"
)

const serviceName = "soundscribe"

func main() {
	cfg, err := config.Load(serviceName)
	if err != nil {
		logger.Fatal("Failed to load configuration", logger.Fields(
			logger.FieldError, err.Error(),
		))
	}

	log := logger.New(&cfg.Logging, cfg.Name)
	logger.SetGlobalLogger(log)

	info := version.GetVersionInfo()
	log.Info("Starting soundscribe", logger.Fields(
		"version", info.Version,
		"environment", cfg.Environment,
	))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var metrics *observability.Metrics
	if cfg.Observability.Enabled {
		cfg.Observability.ServiceVersion = info.Version

		tp, err := observability.InitTracer(ctx, cfg.Observability)
		if err != nil {
			log.Fatal("Failed to initialize tracer", logger.Fields(
				logger.FieldError, err.Error(),
			))
		}
		defer shutdownProvider(tp.Shutdown, log, "tracer")

		mp, err := observability.InitMeter(ctx, cfg.Observability)
		if err != nil {
			log.Fatal("Failed to initialize meter", logger.Fields(
				logger.FieldError, err.Error(),
			))
		}
		defer shutdownProvider(mp.Shutdown, log, "meter")

		metrics, err = observability.NewMetrics(observability.Meter(serviceName))
		if err != nil {
			log.Fatal("Failed to create metrics", logger.Fields(
				logger.FieldError, err.Error(),
			))
		}
	}

	catalog := transcription.NewCatalog(cfg.Defaults, log)
	opts := []transcription.Option{
		transcription.WithSpoolDir(cfg.SpoolDir),
		transcription.WithMetrics(metrics),
	}
	if cfg.Groq.APIKey != "" {
		client, err := groq.New(cfg.Groq)
		if err != nil {
			log.Fatal("Failed to create groq client", logger.Fields(
				logger.FieldError, err.Error(),
			))
		}
		log.Info("Groq provider enabled", logger.Fields(
			"api_key", util.MaskSecret(cfg.Groq.APIKey, 4),
		))
		opts = append(opts, transcription.WithClient(transcription.ProviderGroq, client))
	}
	if cfg.OpenAI.APIKey != "" {
		client, err := openai.New(cfg.OpenAI)
		if err != nil {
			log.Fatal("Failed to create openai client", logger.Fields(
				logger.FieldError, err.Error(),
			))
		}
		log.Info("OpenAI provider enabled", logger.Fields(
			"api_key", util.MaskSecret(cfg.OpenAI.APIKey, 4),
		))
		opts = append(opts, transcription.WithClient(transcription.ProviderOpenAI, client))
	}
	svc := transcription.New(catalog, log, opts...)

	srv := server.New(cfg.Server, log)
	srv.ApplyDefaults(cfg.Name)
	api.New(svc, log).Register(srv.GinEngine())

	if err := srv.Start(ctx); err != nil {
		log.Fatal("Failed to start server", logger.Fields(
			logger.FieldError, err.Error(),
		))
	}

	<-ctx.Done()
	log.Info("Shutdown signal received")

	if err := srv.Stop(context.Background()); err != nil {
		log.Error("Shutdown error", logger.Fields(
			logger.FieldError, err.Error(),
		))
	}
}

func shutdownProvider(shutdown func(context.Context) error, log *logger.Logger, name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Warn("Failed to shut down "+name, logger.Fields(
			logger.FieldError, err.Error(),
		))
	}
}
