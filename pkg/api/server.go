// Package api exposes muninn's PNG chunk operations over HTTP: encode,
// decode, remove and chunk listing over uploaded PNG bytes, plus
// history from the local archive.
package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/muninnlabs/muninn/pkg/archive"
)

// StartServer starts the HTTP server with all routes configured. It
// blocks until the listener fails.
func StartServer(config ServerConfig) error {
	metrics := NewMetrics()

	var arc *archive.Archive
	if config.ArchiveDir != "" {
		var err error
		arc, err = archive.Open(config.ArchiveDir)
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		defer arc.Close()
	}

	server := NewServer(config, metrics, arc)
	r := NewRouter(server, metrics)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	log.Printf("muninn API listening on %s", addr)
	return http.ListenAndServe(addr, r)
}

// NewRouter builds the chi router for a server. Split from StartServer
// so tests can drive the routes through httptest.
func NewRouter(server *Server, metrics *Metrics) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API key authentication middleware for protected routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(metrics.InstrumentAuthMiddleware(apiKeyMiddleware(server.config.APIKey)))

		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))

		// PNG chunk operations over uploaded files
		r.Post("/encode", metrics.InstrumentHandler("POST", "/api/v1/encode", server.handleEncode))
		r.Post("/decode", metrics.InstrumentHandler("POST", "/api/v1/decode", server.handleDecode))
		r.Post("/remove", metrics.InstrumentHandler("POST", "/api/v1/remove", server.handleRemove))
		r.Post("/chunks", metrics.InstrumentHandler("POST", "/api/v1/chunks", server.handleChunks))

		// Archive
		r.Get("/history", metrics.InstrumentHandler("GET", "/api/v1/history", server.handleHistory))
	})

	return r
}
