// Package httpapi exposes the kiosk over HTTP so a browser front end can ask
// questions and browse the catalog.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/LinFrancis/aucca-app/internal/service"
)

const (
	requestTimeout  = 15 * time.Second
	shutdownTimeout = 10 * time.Second
	maxBodyBytes    = 64 << 10
)

// Server serves the kiosk JSON API.
type Server struct {
	kiosk  *service.Kiosk
	logger zerolog.Logger
}

// NewServer creates a server answering from kiosk.
func NewServer(kiosk *service.Kiosk, logger zerolog.Logger) *Server {
	return &Server{kiosk: kiosk, logger: logger.With().Str("component", "http").Logger()}
}

// Handler returns the router with every route and middleware mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(requestTimeout))

	r.Get("/healthz", s.health)
	r.Post("/resolve", s.resolve)
	r.Get("/suggest", s.suggest)

	r.Route("/plants", func(r chi.Router) {
		r.Get("/", s.listPlants)
		r.Get("/options", s.plantOptions)
	})

	r.Get("/topics", s.listTopics)
	r.Get("/topics/{category}", s.topicConcepts)
	r.Get("/concepts/related", s.relatedConcepts)

	return r
}

// requestLogger writes one debug line per request through zerolog.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug().
			Str("request_id", chimiddleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      requestTimeout + 5*time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("listening")
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info().Msg("shutdown requested")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("graceful shutdown failed")
		return srv.Close()
	}
	return nil
}
