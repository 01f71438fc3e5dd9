// Package server exposes the labkit tools over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/danmuck/labkit/internal/charts"
	"github.com/danmuck/labkit/internal/dataset"
	"github.com/danmuck/labkit/internal/logging"
	"github.com/danmuck/labkit/internal/observability"
	"github.com/danmuck/labkit/internal/tools"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	serviceName = "labkit-api"
	version     = "0.1.0"
)

type Config struct {
	Addr        string
	CorsOrigins []string
	Chart       charts.Options
}

type Server struct {
	cfg      Config
	router   *gin.Engine
	log      zerolog.Logger
	appeared time.Time
	tools    *tools.Registry

	frameOnce sync.Once
	frame     *dataset.Frame
	frameErr  error
}

func New(cfg Config) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		cfg:      cfg,
		router:   gin.New(),
		log:      logging.Logger(serviceName),
		appeared: time.Now(),
		tools:    tools.Builtin(),
	}

	s.router.Use(gin.Recovery())
	s.router.Use(observability.RequestID())
	s.router.Use(observability.RequestLogger(s.log))
	s.router.Use(observability.RequestMetricsMiddleware())
	if len(cfg.CorsOrigins) > 0 {
		s.router.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CorsOrigins,
			AllowMethods: []string{"GET", "POST"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}
	s.registerRoutes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.log.Info().Msg("stopped")
	return <-errCh
}

func (s *Server) iris() (*dataset.Frame, error) {
	s.frameOnce.Do(func() {
		s.frame, s.frameErr = dataset.LoadIris()
	})
	return s.frame, s.frameErr
}
