// Package http serves the journal over a JSON API using Gin.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/mindnotes/internal/platform/config"
)

// Server is the journal API listener. Routes go on Engine before Start.
type Server struct {
	engine *gin.Engine
	srv    *http.Server
	log    *slog.Logger

	// bound is the listening address once Start succeeded.
	bound atomic.Pointer[string]
}

func New(cfg *config.ServerConfig, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(limitBody(cfg.MaxRequestSize))

	return &Server{
		engine: engine,
		log:    logger,
		srv: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:           engine,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		},
	}
}

func (s *Server) Engine() *gin.Engine { return s.engine }

// Addr is the bound address after Start, so port 0 reports the port the
// kernel picked. Before Start it is the configured address.
func (s *Server) Addr() string {
	if addr := s.bound.Load(); addr != nil {
		return *addr
	}

	return s.srv.Addr
}

// Start binds synchronously, so a taken port fails here, then serves in
// the background. The returned channel carries a serve failure and is
// closed once the server has stopped.
func (s *Server) Start() (<-chan error, error) {
	var lc net.ListenConfig

	ln, err := lc.Listen(context.Background(), "tcp", s.srv.Addr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}

	addr := ln.Addr().String()
	s.bound.Store(&addr)

	s.log.Info("journal API listening",
		slog.String("addr", addr),
		slog.Duration("read_timeout", s.srv.ReadTimeout),
		slog.Duration("write_timeout", s.srv.WriteTimeout),
	)

	done := make(chan error, 1)

	go func() {
		defer close(done)

		if err := s.srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			done <- fmt.Errorf("serving journal API: %w", err)
		}
	}()

	return done, nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("draining journal API")

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down journal API: %w", err)
	}

	s.log.Info("journal API stopped")

	return nil
}

func limitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}
