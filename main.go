package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"newsdeck/config"
	"newsdeck/di"
	"newsdeck/job"
	"newsdeck/rest"
	"newsdeck/utils/logger"
	"newsdeck/utils/otel"

	"github.com/labstack/echo/v4"
)

func main() {
	// Docker healthcheck in a distroless image
	if len(os.Args) > 1 && os.Args[1] == "healthcheck" {
		if err := runHealthcheck(); err != nil {
			fmt.Fprintf(os.Stderr, "Healthcheck failed: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	otelShutdown, err := otel.InitProvider(ctx, otel.Config{
		ServiceName:    cfg.Otel.ServiceName,
		ServiceVersion: cfg.Otel.ServiceVersion,
		Environment:    cfg.Otel.Environment,
		OTLPEndpoint:   cfg.Otel.Endpoint,
		Enabled:        cfg.Otel.Enabled,
		SampleRatio:    cfg.Otel.SampleRatio,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize OpenTelemetry: %v\n", err)
		cfg.Otel.Enabled = false
		otelShutdown = func(context.Context) error { return nil }
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to shutdown OpenTelemetry: %v\n", err)
		}
	}()

	log := logger.InitLoggerWithOTel(cfg.Logging.Level, cfg.Otel.Enabled)
	log.InfoContext(ctx, "Starting server", "port", cfg.Server.Port)

	container, err := di.NewApplicationComponents(cfg)
	if err != nil {
		log.ErrorContext(ctx, "Failed to build application", "error", err)
		os.Exit(1)
	}

	scheduler := job.NewJobScheduler()
	scheduler.Add(job.OsintWarmJob(container.OsintUsecase, cfg.Osint.WarmInterval, cfg.Osint.RefreshTimeout+cfg.Osint.MirrorTimeout))
	scheduler.Start(ctx)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout
	// Streams end when the process begins shutting down.
	e.Server.BaseContext = func(net.Listener) context.Context { return ctx }
	rest.RegisterRoutes(e, container, cfg)

	address := ":" + strconv.Itoa(cfg.Server.Port)
	go func() {
		log.InfoContext(ctx, "listening", "address", address)
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.ErrorContext(ctx, "server failed to start", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}
	scheduler.Shutdown()

	log.Info("server exited properly")
}

func runHealthcheck() error {
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "9000"
	}

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://127.0.0.1:%s/health", port))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health endpoint returned status: %d", resp.StatusCode)
	}
	return nil
}
