// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/danielhkuo/staffwatch/classify"
	"github.com/danielhkuo/staffwatch/config"
	"github.com/danielhkuo/staffwatch/models"
	"github.com/danielhkuo/staffwatch/pollcsv"
	"github.com/danielhkuo/staffwatch/schedule"
)

// Fetcher supplies the raw CSV payload of a poll. The orchestrator itself
// never performs I/O; retry policy for transient failures belongs behind
// this interface.
type Fetcher interface {
	FetchRawData(ctx context.Context, pollID string) (string, error)
}

// New builds a poll from its configuration entry, deriving whichever of
// PollID and PollURL was not supplied.
func New(pc config.PollConfig, domain string) (*models.Poll, error) {
	p := &models.Poll{
		PollID:              pc.PollID,
		PollURL:             pc.PollURL,
		Title:               pc.Title,
		Kind:                models.PollKind(pc.Kind),
		Description:         pc.Description,
		SignalGroupLink:     pc.SignalGroupLink,
		MinimumStaffPerSlot: pc.MinimumStaffPerSlot,
		TotalWorkforce:      pc.TotalWorkforce,
		PersonHoursPerDay:   pc.PersonHoursPerDay,
		PersonHoursTotal:    pc.PersonHoursTotal,
	}

	switch {
	case p.PollID != "" && p.PollURL != "":
		return nil, fmt.Errorf("poll %q: poll_id and poll_url are mutually exclusive", p.Title)
	case p.PollID != "":
		p.PollURL = fmt.Sprintf("https://%s/%s", domain, p.PollID)
	case p.PollURL != "":
		u, err := url.Parse(p.PollURL)
		if err != nil {
			return nil, fmt.Errorf("poll %q: bad poll_url: %w", p.Title, err)
		}
		segments := strings.Split(strings.Trim(u.Path, "/"), "/")
		id := segments[len(segments)-1]
		if id == "" {
			return nil, fmt.Errorf("poll %q: poll_url %q has no poll identifier", p.Title, p.PollURL)
		}
		p.PollID = id
	default:
		return nil, fmt.Errorf("poll %q: either poll_id or poll_url must be set", p.Title)
	}

	return p, nil
}

// Service runs the processing pipeline for polls. It holds no per-poll
// state; the caller owns serialization of writes to a poll (see Registry).
type Service struct {
	fetcher Fetcher
}

func NewService(f Fetcher) *Service {
	return &Service{fetcher: f}
}

// Process runs parse -> build -> group -> classify over raw and replaces the
// poll's derived fields with the result. On any error the poll is left
// untouched, so a failed run means "no update applied" and the previous
// classified state survives.
func (s *Service) Process(p *models.Poll, raw string) error {
	columns, err := pollcsv.Parse(raw)
	if err != nil {
		return fmt.Errorf("poll %s: %w", p.PollID, err)
	}

	slots := make([]*models.TimeSlot, 0, len(columns))
	for _, col := range columns {
		slot, err := schedule.BuildSlot(col)
		if err != nil {
			return fmt.Errorf("poll %s: %w", p.PollID, err)
		}
		slots = append(slots, slot)
	}

	// Point of no return: everything below is pure recomputation.
	p.RawData = raw
	p.Days = schedule.GroupDays(p.Title, slots)
	p.Status = models.StatusNone
	classify.Apply(p)
	return nil
}

// Reprocess re-runs the pipeline over the poll's current raw data.
func (s *Service) Reprocess(p *models.Poll) error {
	if p.RawData == "" {
		return fmt.Errorf("poll %s: no raw data to reprocess", p.PollID)
	}
	return s.Process(p, p.RawData)
}

// Refresh fetches a fresh payload and processes it. Fetch failures leave the
// poll untouched.
func (s *Service) Refresh(ctx context.Context, p *models.Poll) error {
	raw, err := s.fetcher.FetchRawData(ctx, p.PollID)
	if err != nil {
		return fmt.Errorf("poll %s: %w", p.PollID, err)
	}
	return s.Process(p, raw)
}
