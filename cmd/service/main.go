package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "foodbank/internal/app"
	"foodbank/internal/handlers/rest/healthcheck_head"
	"foodbank/internal/handlers/rest/household_delete"
	"foodbank/internal/handlers/rest/household_parcels_put"
	"foodbank/internal/handlers/rest/noshow_dismiss_post"
	"foodbank/internal/handlers/rest/noshow_followups_get"
	"foodbank/internal/handlers/rest/parcel_delete"
	"foodbank/internal/handlers/rest/parcel_outcome_post"
	"foodbank/internal/handlers/rest/parcel_post"
	"foodbank/internal/handlers/rest/parcel_put"
	"foodbank/internal/handlers/rest/ping_get"
	"foodbank/internal/handlers/rest/schedule_post"
	"foodbank/internal/handlers/rest/schedule_put"
	"foodbank/internal/handlers/rest/sms_balance_get"
	"foodbank/internal/handlers/rest/sms_cancel_post"
	"foodbank/internal/handlers/rest/sms_dismiss_post"
	"foodbank/internal/handlers/rest/sms_resend_post"
	"foodbank/internal/handlers/rest/sms_status_webhook_post"
	"foodbank/internal/handlers/rest/timeslots_get"
	"foodbank/internal/pkg/config"
	"foodbank/internal/pkg/dotenv"
	metrics_system "foodbank/internal/pkg/metrics"
	"foodbank/internal/pkg/middlewares/graceful_shutdown"
	"foodbank/internal/pkg/middlewares/metrics"
	"foodbank/internal/pkg/middlewares/rate_limiter"
	"foodbank/internal/pkg/middlewares/timeout"
	"foodbank/internal/pkg/postgres"
	"foodbank/pkg/logger"
	"foodbank/pkg/logger/zap_adapter"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	dotenvErr := dotenv.Load()

	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting foodbank application")

	if dotenvErr != nil {
		mainLog.Error("failed to load .env file", logger.NewField("error", dotenvErr))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// фоновые задачи живут до SIGTERM
	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx, pool)

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pool, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	pool *pgxpool.Pool,
	app *application.Application,
	cfg *config.Config,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, app.RateLimiter,
		"/healthcheck",
		"/metrics",
		"/webhooks/sms/status",
		"/webhooks/sms/status/{secret}",
	))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log, pool)).Methods("GET")

	router.Handle("/parcels", parcel_post.New(log, app.ServiceParcel)).Methods("POST")
	router.Handle("/parcels/{id}", parcel_put.New(log, app.ServiceParcel)).Methods("PUT")
	router.Handle("/parcels/{id}", parcel_delete.New(log, app.ServiceParcel)).Methods("DELETE")
	router.Handle("/parcels/{id}/outcome", parcel_outcome_post.New(log, app.ServiceParcel)).Methods("POST")
	router.Handle("/parcels/{id}/sms/resend", sms_resend_post.New(log, app.ServiceSms)).Methods("POST")

	router.Handle("/households/{id}/parcels", household_parcels_put.New(log, app.ServiceParcel)).Methods("PUT")
	router.Handle("/households/{id}", household_delete.New(log, app.ServiceHousehold)).Methods("DELETE")
	router.Handle("/households/{id}/noshow/dismiss", noshow_dismiss_post.New(log, app.ServiceNoShow)).Methods("POST")
	router.Handle("/noshow/followups", noshow_followups_get.New(log, app.ServiceNoShow)).Methods("GET")

	router.Handle("/locations/{id}/schedules", schedule_post.New(log, app.ServiceSchedule)).Methods("POST")
	router.Handle("/locations/{id}/schedules/{scheduleId}", schedule_put.New(log, app.ServiceSchedule)).Methods("PUT")
	router.Handle("/locations/{id}/timeslots", timeslots_get.New(log, app.ServiceSchedule)).Methods("GET")

	router.Handle("/sms/balance", sms_balance_get.New(log, app.ServiceSms)).Methods("GET")
	router.Handle("/sms/{id}/cancel", sms_cancel_post.New(log, app.ServiceSms)).Methods("POST")
	router.Handle("/sms/{id}/dismiss", sms_dismiss_post.New(log, app.ServiceSms)).Methods("POST")

	webhook := sms_status_webhook_post.New(log, app.ServiceSms, &cfg.SmsGateway)
	router.Handle("/webhooks/sms/status", webhook).Methods("POST")
	router.Handle("/webhooks/sms/status/{secret}", webhook).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
