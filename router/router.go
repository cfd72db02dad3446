// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/staffwatch/handlers"
	"github.com/danielhkuo/staffwatch/middleware"
	"github.com/danielhkuo/staffwatch/poll"
)

func NewRouter(registry *poll.Registry, service *poll.Service) *http.ServeMux {
	mux := http.NewServeMux()

	timelineHandler := handlers.NewTimelineHandler(registry, service)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Poll inspection
	mux.HandleFunc("GET /polls", middleware.WithLogging(timelineHandler.ListPolls))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(timelineHandler.GetPoll))
	mux.HandleFunc("GET /polls/{id}/days", middleware.WithLogging(timelineHandler.GetDays))

	// Timeline payload for the rendering widget
	mux.HandleFunc("GET /timeline", middleware.WithLogging(timelineHandler.Timeline))

	// Recompute from fresh poll data
	mux.HandleFunc("POST /polls/{id}/refresh", middleware.WithLogging(timelineHandler.Refresh))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("staffwatch API v1"))
	})

	return mux
}
