// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/danielhkuo/staffwatch/middleware"
	"github.com/danielhkuo/staffwatch/models"
	"github.com/danielhkuo/staffwatch/poll"
	"github.com/danielhkuo/staffwatch/pollcsv"
	"github.com/danielhkuo/staffwatch/schedule"
)

type TimelineHandler struct {
	registry *poll.Registry
	service  *poll.Service
	// now is swapped out in tests to pin the upcoming-days cutoff.
	now func() time.Time
}

func NewTimelineHandler(registry *poll.Registry, service *poll.Service) *TimelineHandler {
	return &TimelineHandler{
		registry: registry,
		service:  service,
		now:      time.Now,
	}
}

// ListPolls handles GET /polls
func (h *TimelineHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	managed := h.registry.All()
	summaries := make([]models.PollSummary, 0, len(managed))
	for _, m := range managed {
		m.View(func(p *models.Poll) {
			summaries = append(summaries, models.PollSummary{
				PollID:         p.PollID,
				PollURL:        p.PollURL,
				Title:          p.Title,
				Kind:           p.Kind,
				Status:         p.Status,
				TotalWorkforce: p.TotalWorkforce,
				DayCount:       len(p.Days),
				Processed:      p.RawData != "",
			})
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListPollsResponse{Polls: summaries})
}

// GetPoll handles GET /polls/{id}
func (h *TimelineHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	m, ok := h.registry.Get(r.PathValue("id"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	m.View(func(p *models.Poll) {
		middleware.JSONResponse(w, http.StatusOK, p)
	})
}

// GetDays handles GET /polls/{id}/days
func (h *TimelineHandler) GetDays(w http.ResponseWriter, r *http.Request) {
	m, ok := h.registry.Get(r.PathValue("id"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	m.View(func(p *models.Poll) {
		middleware.JSONResponse(w, http.StatusOK, models.DaysResponse{Days: p.Days})
	})
}

// Timeline handles GET /timeline: every day with date >= today across all
// polls, sorted by date. This is the payload the external timeline renderer
// consumes.
func (h *TimelineHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	// Slot dates parse as UTC midnights, so the cutoff is a UTC day too.
	today := h.now().UTC().Truncate(24 * time.Hour)

	var entries []models.TimelineEntry
	for _, m := range h.registry.All() {
		m.View(func(p *models.Poll) {
			for _, day := range p.Days {
				if day.Date.Before(today) {
					continue
				}
				entries = append(entries, models.TimelineEntry{
					Title:           day.Title,
					Date:            day.Date,
					Status:          day.Status,
					PollURL:         p.PollURL,
					Description:     p.Description,
					SignalGroupLink: p.SignalGroupLink,
					TimeSlots:       day.TimeSlots,
				})
			}
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	middleware.JSONResponse(w, http.StatusOK, models.TimelineResponse{Entries: entries})
}

// Refresh handles POST /polls/{id}/refresh. On failure the previously
// classified state is retained: 502 for fetch failures, 422 for malformed
// poll data.
func (h *TimelineHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	m, ok := h.registry.Get(id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	err := m.Update(func(p *models.Poll) error {
		return h.service.Refresh(r.Context(), p)
	})
	if err != nil {
		slog.Error("poll refresh failed", "poll_id", id, "error", err)
		if isDataError(err) {
			middleware.ErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		middleware.ErrorResponse(w, http.StatusBadGateway, "Poll fetch failed, previous state retained")
		return
	}

	slog.Info("poll refreshed", "poll_id", id)
	m.View(func(p *models.Poll) {
		middleware.JSONResponse(w, http.StatusOK, p)
	})
}

func isDataError(err error) bool {
	var unrecognized *pollcsv.UnrecognizedResponseError
	var malformed *pollcsv.MalformedPollDataError
	var badLabel *schedule.InvalidSlotLabelError
	var badDuration *schedule.InvalidDurationError
	return errors.As(err, &unrecognized) ||
		errors.As(err, &malformed) ||
		errors.As(err, &badLabel) ||
		errors.As(err, &badDuration)
}
