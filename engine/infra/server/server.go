// Package server assembles the HTTP gateway: middleware chain, route
// registration and the process lifecycle around the gin engine.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RumanAkhtar/lms-app-backend/engine/auth"
	courserouter "github.com/RumanAkhtar/lms-app-backend/engine/course/router"
	"github.com/RumanAkhtar/lms-app-backend/engine/identity"
	"github.com/RumanAkhtar/lms-app-backend/engine/infra/monitoring"
	authmw "github.com/RumanAkhtar/lms-app-backend/engine/infra/server/middleware/auth"
	"github.com/RumanAkhtar/lms-app-backend/engine/infra/server/middleware/ratelimit"
	"github.com/RumanAkhtar/lms-app-backend/engine/infra/server/middleware/size"
	sessionrouter "github.com/RumanAkhtar/lms-app-backend/engine/livesession/router"
	"github.com/RumanAkhtar/lms-app-backend/engine/store"
	userrouter "github.com/RumanAkhtar/lms-app-backend/engine/user/router"
	"github.com/RumanAkhtar/lms-app-backend/pkg/config"
	"github.com/RumanAkhtar/lms-app-backend/pkg/logger"
	"github.com/RumanAkhtar/lms-app-backend/pkg/version"
)

const (
	httpReadTimeout       = 15 * time.Second
	httpWriteTimeout      = 15 * time.Second
	httpIdleTimeout       = 60 * time.Second
	serverShutdownTimeout = 5 * time.Second
)

// Server wires the configured clients, middleware and routes into a
// running HTTP process.
type Server struct {
	config     *config.Config
	log        logger.Logger
	identity   identity.Service
	store      store.Service
	monitoring *monitoring.Service
	router     *gin.Engine
}

// NewServer builds a server from configuration. The identity and data
// clients are constructed here; tests may swap them via NewServerWith.
func NewServer(cfg *config.Config, log logger.Logger) *Server {
	return NewServerWith(cfg, log, identity.NewClient(&cfg.Identity), store.NewClient(&cfg.Data))
}

// NewServerWith builds a server around explicit service implementations.
func NewServerWith(cfg *config.Config, log logger.Logger, identitySvc identity.Service, storeSvc store.Service) *Server {
	s := &Server{
		config:     cfg,
		log:        log,
		identity:   identitySvc,
		store:      storeSvc,
		monitoring: monitoring.NewService(),
	}
	s.router = s.buildRouter()
	return s
}

// Router exposes the assembled gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(RecoveryMiddleware())
	r.Use(RequestIDMiddleware(s.log))
	r.Use(LoggerMiddleware())
	r.Use(s.monitoring.Middleware())
	if s.config.RateLimit.Enabled {
		r.Use(ratelimit.NewManager(&s.config.RateLimit).Middleware())
	}
	if len(s.config.Server.CORSAllowedOrigins) > 0 {
		r.Use(CORSMiddleware(s.config.Server.CORSAllowedOrigins))
	}
	r.Use(size.BodySizeLimiter(s.config.Server.MaxBodyBytes))

	r.GET("/metrics", gin.WrapH(s.monitoring.Handler()))

	gates := authmw.NewManager(s.identity, auth.NewRoleResolver(s.store), s.store)
	api := r.Group("/api")
	api.GET("/health", healthHandler)
	userrouter.RegisterRoutes(api, gates, s.identity, s.store)
	courserouter.RegisterRoutes(api, gates, s.store, s.config.Server.PublicCourseList)
	sessionrouter.RegisterRoutes(api, gates, s.store)
	return r
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": version.Get().Version,
	})
}

// Run serves HTTP until the context is canceled or a termination signal
// arrives, then drains in-flight requests before returning.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  httpReadTimeout,
		WriteTimeout: httpWriteTimeout,
		IdleTimeout:  httpIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Starting HTTP server", "address", fmt.Sprintf("http://%s", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	case sig := <-quit:
		s.log.Debug("Received shutdown signal", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.log.Info("Server shutdown completed")
	return nil
}
