// Package server exposes the simulation over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/TavernSim_Go/docs"

	"github.com/osse101/TavernSim_Go/internal/handler"
	"github.com/osse101/TavernSim_Go/internal/logger"
	"github.com/osse101/TavernSim_Go/internal/metrics"
	"github.com/osse101/TavernSim_Go/internal/save"
	"github.com/osse101/TavernSim_Go/internal/sim"
	"github.com/osse101/TavernSim_Go/internal/sse"
)

// Options configure the HTTP server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string

	// Hub enables GET /api/v1/notifications/stream when set
	Hub *sse.Hub
}

// Server wraps the HTTP server and its router
type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(opts Options, world *sim.World) *Server {
	r := NewRouter(opts, world)
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router: r,
	}
}

// NewRouter builds the routes. Middleware runs outermost first.
func NewRouter(opts Options, world *sim.World) chi.Router {
	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(world))
	r.Get("/version", handler.HandleVersion(opts.Version, save.Version))
	r.Handle("/metrics", promhttp.Handler())

	game := handler.NewGameHandlers(world)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", game.HandleGetState())
		r.Get("/notifications", handler.HandleListNotifications(world.Journal()))
		if opts.Hub != nil {
			r.Get("/notifications/stream", sse.Handler(opts.Hub))
		}
		r.Put("/settings/autosave", game.HandleSetAutoSave())

		r.Route("/time", func(r chi.Router) {
			r.Post("/advance", game.HandleAdvanceTime())
			r.Post("/control", game.HandleTimeControl())
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", game.HandleListEvents())
			r.Post("/{id}/activate", game.HandleActivateEvent())
			r.Post("/{id}/result", game.HandleRecordEventResult())
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", game.HandleListCustomers())
			r.Post("/", game.HandleSpawnCustomer())
			r.Post("/{id}/serve", game.HandleServeCustomer())
		})

		r.Post("/potions/craft", game.HandleCraftPotion())
		r.Post("/battles", game.HandleRecordBattle())

		r.Route("/staff", func(r chi.Router) {
			r.Post("/", game.HandleHireStaff())
			r.Delete("/{id}", game.HandleFireStaff())
		})
		r.Post("/tavern/upgrade", game.HandleUpgradeTavern())

		r.Route("/saves", func(r chi.Router) {
			r.Get("/", game.HandleListSaves())
			r.Post("/quicksave", game.HandleQuickSave())
			r.Post("/quickload", game.HandleQuickLoad())
			r.Post("/{slot}", game.HandleSave())
			r.Delete("/{slot}", game.HandleDeleteSave())
			r.Post("/{slot}/load", game.HandleLoad())
			r.Get("/{slot}/export", game.HandleExport())
			r.Post("/{slot}/import", game.HandleImport())
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Handler returns the router, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer
func (rw *responseWriter) Unwrap() http.ResponseWriter { return rw.ResponseWriter }

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isProbe(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitized := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitized[k] = []string{RedactedValue}
			} else {
				sanitized[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitized)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

func isProbe(path string) bool {
	return strings.HasPrefix(path, "/healthz") ||
		strings.HasPrefix(path, "/readyz") ||
		strings.HasPrefix(path, "/metrics")
}

// Start serves until Stop is called. http.ErrServerClosed is not an error.
func (s *Server) Start() error {
	logger.FromContext(context.Background()).Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
