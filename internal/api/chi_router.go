// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/debatelive/internal/middleware"
	"github.com/tomtom215/debatelive/internal/models"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	wsPath        string
}

// NewRouter creates a Router. A nil mw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	wsPath := "/ws"
	if handler.config != nil && handler.config.WebSocket.Path != "" {
		wsPath = handler.config.WebSocket.Path
	}
	return &Router{handler: handler, chiMiddleware: mw, wsPath: wsPath}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusNotFound, models.Fail("route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusMethodNotAllowed, models.Fail("method not allowed"))
	})

	// Hijacked connection: no Prometheus wrapper.
	r.Get(router.wsPath, router.handler.WebSocket)

	r.Group(func(r chi.Router) {
		r.Use(middleware.PrometheusMetrics)

		r.Get("/health", router.handler.Health)
		r.Route("/api/v1/health", func(r chi.Router) {
			r.Get("/", router.handler.Health)
			r.Get("/live", router.handler.HealthLive)
			r.Get("/ready", router.handler.HealthReady)
		})

		// Reads
		r.Get("/api/v1/votes", router.handler.GetVotes)
		r.Get("/api/v1/comments", router.handler.ListComments)
		r.Get("/api/v1/debate-topic", router.handler.GetDebateTopic)
		r.Route("/api/v1/admin", func(r chi.Router) {
			r.Get("/votes/statistics", router.handler.VoteStatistics)
			r.Get("/streams", router.handler.Streams)
		})
		r.Route("/api/admin", func(r chi.Router) {
			r.Get("/dashboard", router.handler.Dashboard)
			r.Get("/live/status", router.handler.LiveStatus)
		})

		// Commands
		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())
			r.Post("/api/v1/user-vote", router.handler.SubmitVote)
			r.Post("/api/comment", router.handler.AddComment)
			r.Post("/api/like", router.handler.LikeComment)
			r.Delete("/api/comment/{commentId}", router.handler.RemoveComment)
			r.Post("/api/live/control", router.handler.LiveControl)
			r.Put("/api/admin/debate-topic", router.handler.SetDebateTopic)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
