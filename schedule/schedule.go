// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/danielhkuo/staffwatch/models"
	"github.com/danielhkuo/staffwatch/pollcsv"
)

const (
	// ConditionalWeight is the share of a full answer that a conditional
	// ("under reserve") answer contributes to the participation score.
	ConditionalWeight = 0.5

	// DefaultSlotDurationHours applies to the last slot of a day when the
	// poll does not state an end time.
	DefaultSlotDurationHours = 1.0
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// InvalidSlotLabelError reports a slot label whose date or time part does
// not parse.
type InvalidSlotLabelError struct {
	Label  string
	Reason string
}

func (e *InvalidSlotLabelError) Error() string {
	return fmt.Sprintf("invalid slot label %q: %s", e.Label, e.Reason)
}

// InvalidDurationError reports a slot whose end time is not after its start
// time. Overnight slots are not supported.
type InvalidDurationError struct {
	Label string
	Start string
	End   string
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("invalid duration in slot %q: end %s is not after start %s", e.Label, e.End, e.Start)
}

// BuildSlot turns one parsed column into a time slot. The label splits on
// whitespace into a YYYY-MM-DD date part and a HH:MM or HH:MM-HH:MM time
// part; a missing end time stays unset until the day aggregator backfills
// it. Responses are tallied into the participation counts and score.
func BuildSlot(col pollcsv.Column) (*models.TimeSlot, error) {
	fields := strings.Fields(col.Label)
	if len(fields) < 2 {
		return nil, &InvalidSlotLabelError{Label: col.Label, Reason: "want a date part and a time part"}
	}

	date, err := time.Parse(dateLayout, fields[0])
	if err != nil {
		return nil, &InvalidSlotLabelError{Label: col.Label, Reason: "bad date: " + err.Error()}
	}

	startStr := fields[1]
	endStr := ""
	if i := strings.IndexByte(startStr, '-'); i >= 0 {
		startStr, endStr = startStr[:i], startStr[i+1:]
		// A hyphen promises an end time; "09:00-" is malformed, not open-ended.
		if endStr == "" {
			return nil, &InvalidSlotLabelError{Label: col.Label, Reason: "bad end time: empty"}
		}
	}

	start, err := parseClock(date, startStr)
	if err != nil {
		return nil, &InvalidSlotLabelError{Label: col.Label, Reason: "bad start time: " + err.Error()}
	}

	slot := &models.TimeSlot{
		SourceLabel: col.Label,
		Date:        date,
		StartTime:   start,
	}

	if endStr != "" {
		end, err := parseClock(date, endStr)
		if err != nil {
			return nil, &InvalidSlotLabelError{Label: col.Label, Reason: "bad end time: " + err.Error()}
		}
		if !end.After(start) {
			return nil, &InvalidDurationError{Label: col.Label, Start: startStr, End: endStr}
		}
		setEnd(slot, end)
	}

	for _, r := range col.Responses {
		switch r {
		case models.ResponseAffirmative:
			slot.AffirmativeCount++
		case models.ResponseConditional:
			slot.ConditionalCount++
		}
	}
	slot.RespondentCount = len(col.Responses)
	slot.ParticipationScore = float64(slot.AffirmativeCount) + float64(slot.ConditionalCount)*ConditionalWeight

	return slot, nil
}

// GroupDays partitions slots by date into days and backfills missing end
// times. Within a day slots are ordered by start time, ties keeping their
// column order. A slot without an end time ends where the next slot starts;
// the last slot of a day falls back to DefaultSlotDurationHours. Slots with
// a known end time are left alone, so running the backfill again changes
// nothing. Overlapping or gapped slots are accepted as-is.
func GroupDays(title string, slots []*models.TimeSlot) []*models.Day {
	byDate := make(map[time.Time][]*models.TimeSlot)
	var dates []time.Time
	for _, s := range slots {
		if _, seen := byDate[s.Date]; !seen {
			dates = append(dates, s.Date)
		}
		byDate[s.Date] = append(byDate[s.Date], s)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	days := make([]*models.Day, 0, len(dates))
	for _, date := range dates {
		daySlots := byDate[date]
		sort.SliceStable(daySlots, func(i, j int) bool {
			return daySlots[i].StartTime.Before(daySlots[j].StartTime)
		})
		Backfill(daySlots)
		days = append(days, &models.Day{
			Title:     title,
			Date:      date,
			TimeSlots: daySlots,
			Status:    models.StatusNone,
		})
	}
	return days
}

// Backfill fills the missing end times of one day's ordered slot sequence.
// Idempotent: already-filled slots are not touched.
func Backfill(daySlots []*models.TimeSlot) {
	for i, s := range daySlots {
		if s.EndTime != nil {
			continue
		}
		if i == len(daySlots)-1 {
			setDuration(s, DefaultSlotDurationHours)
		} else {
			setEnd(s, daySlots[i+1].StartTime)
		}
	}
}

// setEnd and setDuration are the only writers of the EndTime/DurationHours
// pair, so the two fields cannot drift apart.

func setEnd(s *models.TimeSlot, end time.Time) {
	s.EndTime = &end
	s.DurationHours = end.Sub(s.StartTime).Hours()
}

func setDuration(s *models.TimeSlot, hours float64) {
	end := s.StartTime.Add(time.Duration(hours * float64(time.Hour)))
	s.EndTime = &end
	s.DurationHours = hours
}

func parseClock(date time.Time, s string) (time.Time, error) {
	c, err := time.Parse(clockLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return date.Add(time.Duration(c.Hour())*time.Hour + time.Duration(c.Minute())*time.Minute), nil
}
