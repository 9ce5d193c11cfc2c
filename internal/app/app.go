package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"videoapi/internal/config"
	"videoapi/internal/core"
	httpapi "videoapi/internal/http"
	"videoapi/internal/rate"
	"videoapi/internal/store"
)

// App wires config, storage, core service, rate limiter, and the HTTP router.
type App struct {
	Cfg     config.Config
	Store   store.Store
	Service *core.Service
	Limiter *rate.Limiter
	Router  *gin.Engine
}

// New builds a fully-wired application instance.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	st, err := store.Open(ctx, store.Options{
		Driver:         cfg.DBDriver,
		SQLitePath:     cfg.DBPath,
		PostgresDSN:    cfg.DatabaseURL,
		DynamoTable:    cfg.DynamoTable,
		DynamoEndpoint: cfg.DynamoEndpoint,
	})
	if err != nil {
		return nil, err
	}

	svc := core.NewService(st)

	var limiter *rate.Limiter
	if cfg.RateLimitRPS > 0 {
		limiter = rate.NewLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	router := httpapi.NewRouter(svc, httpapi.Options{
		RateLimiter: limiter,
		CORSOrigins: cfg.CORSOrigins,
	})

	return &App{
		Cfg:     cfg,
		Store:   st,
		Service: svc,
		Limiter: limiter,
		Router:  router,
	}, nil
}

// Addr returns the HTTP listen address, e.g. ":8080".
func (a *App) Addr() string {
	return fmt.Sprintf(":%d", a.Cfg.Port)
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully and
// closes the store.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Addr(),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	var err error
	select {
	case err = <-errCh:
	case <-ctx.Done():
		log.Printf("shutting down (timeout %s)", a.Cfg.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
		defer cancel()
		err = srv.Shutdown(shutdownCtx)
	}
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	return errors.Join(err, a.Close())
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}
