package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"statement-importer/internal/handlers"
	"statement-importer/internal/middleware"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := opts.newLogger(cmd.ErrOrStderr(), cfg)
			slog.SetDefault(logger)

			a, err := newApp(cfg, logger, prometheus.DefaultRegisterer)
			if err != nil {
				return err
			}
			defer a.Close()

			if addr == "" {
				addr = net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, a, addr, prometheus.DefaultGatherer)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default SERVER_HOST:SERVER_PORT)")

	return cmd
}

// serve runs the API until ctx is cancelled and then drains in-flight requests
func serve(ctx context.Context, a *app, addr string, gatherer prometheus.Gatherer) error {
	e, limiter := newServer(a, gatherer)

	go limiter.Run(ctx, time.Minute)

	server := &http.Server{
		Addr:         addr,
		Handler:      e,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Starting server", "addr", addr, "environment", a.cfg.Server.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// newServer builds the echo instance with every route registered
func newServer(a *app, gatherer prometheus.Gatherer) (*echo.Echo, *middleware.RateLimiter) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(a.logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: a.cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderContentType, middleware.TraceIDHeader},
	}))

	// base64 inflates the payload by a third, plus room for the JSON envelope
	e.Use(echomw.BodyLimit(fmt.Sprintf("%dK", a.cfg.Import.MaxUploadBytes*4/3/1024+64)))

	health := handlers.NewHealthCheckHandler(a.db.DB)
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1")

	limiter := middleware.NewRateLimiter(a.cfg.Security.RateLimitPerSecond, a.cfg.Security.RateLimitBurst)

	importHandler := handlers.NewImportHandler(a.imports, a.cfg.Import.MaxUploadBytes)
	imports := api.Group("/imports", limiter.Middleware())
	imports.POST("", importHandler.ImportStatement)
	imports.POST("/preview", importHandler.PreviewImport)
	imports.POST("/commit", importHandler.CommitImport)
	imports.GET("", importHandler.ListBatches)

	accountHandler := handlers.NewAccountHandler(a.accounts)
	api.POST("/accounts", accountHandler.CreateAccount)
	api.GET("/accounts", accountHandler.ListAccounts)
	api.GET("/accounts/:accountId", accountHandler.GetAccount)

	transactionHandler := handlers.NewTransactionHandler(a.accounts)
	api.GET("/transactions", transactionHandler.ListTransactions)

	categoryHandler := handlers.NewCategoryHandler(a.categories)
	api.GET("/categories", categoryHandler.ListCategories)
	api.POST("/categories/seed", categoryHandler.SeedCategories)

	if a.cfg.IsDevelopment() {
		api.GET("/dev/sample-statement", handlers.NewDevHandler().SampleStatement)
	}

	return e, limiter
}
