// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Staffing status taxonomy. StatusDone is never produced by the pipeline;
// it is reserved for the rendering layer to mark past activities.
type Status string

const (
	StatusNone         Status = ""
	StatusUnderstaffed Status = "understaffed"
	StatusHalfStaffed  Status = "half_staffed"
	StatusFullStaffed  Status = "full_staffed"
	StatusDone         Status = "done"
)

// Poll kind constants
type PollKind string

const (
	// KindBooth polls staff a physical booth; slots are classified against a
	// minimum staff target.
	KindBooth PollKind = "booth"
	// KindTask polls distribute work over days; days are classified against a
	// person-hours target.
	KindTask PollKind = "task"
)

// ResponseValue is one of the four recognized poll answers.
type ResponseValue string

const (
	ResponseAffirmative ResponseValue = "affirmative"
	ResponseNegative    ResponseValue = "negative"
	ResponseUnknown     ResponseValue = "unknown"
	ResponseConditional ResponseValue = "conditional"
)

// Domain types

// TimeSlot is a single bookable interval reconstructed from one poll column.
type TimeSlot struct {
	// SourceLabel is the merged two-row column header the slot was derived
	// from. Retained for traceability, never modified.
	SourceLabel string     `json:"source_label"`
	Date        time.Time  `json:"date"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	// DurationHours and EndTime are derived together and only ever set as a
	// pair; a nil EndTime means the duration is not known yet either.
	DurationHours      float64 `json:"duration_hours"`
	RespondentCount    int     `json:"respondent_count"`
	AffirmativeCount   int     `json:"affirmative_count"`
	ConditionalCount   int     `json:"conditional_count"`
	ParticipationScore float64 `json:"participation_score"`
	Status             Status  `json:"status,omitempty"`
}

// Day groups the time slots of one calendar date for one activity.
// TimeSlots is non-empty and ordered by start time.
type Day struct {
	Title     string      `json:"title"`
	Date      time.Time   `json:"date"`
	TimeSlots []*TimeSlot `json:"time_slots"`
	Status    Status      `json:"status,omitempty"`
}

// Poll is the top-level unit bound to one remote scheduling poll.
type Poll struct {
	PollID          string   `json:"poll_id"`
	PollURL         string   `json:"poll_url"`
	Title           string   `json:"title"`
	Kind            PollKind `json:"kind"`
	Description     string   `json:"description,omitempty"`
	SignalGroupLink string   `json:"signal_group_link,omitempty"`

	// RawData is the unparsed CSV payload of the last successful fetch.
	RawData string `json:"-"`

	// Staffing targets from configuration. A nil target suppresses status
	// assignment at the corresponding level; it is not an error.
	MinimumStaffPerSlot *float64 `json:"minimum_staff_per_slot,omitempty"`
	PersonHoursPerDay   *float64 `json:"person_hours_per_day,omitempty"`
	PersonHoursTotal    *float64 `json:"person_hours_total,omitempty"`

	// TotalWorkforce is configured for booth polls and recomputed from the
	// participation scores for task polls.
	TotalWorkforce *float64 `json:"total_workforce,omitempty"`

	Days   []*Day `json:"days"`
	Status Status `json:"status,omitempty"`
}

// Response types

type PollSummary struct {
	PollID         string   `json:"poll_id"`
	PollURL        string   `json:"poll_url"`
	Title          string   `json:"title"`
	Kind           PollKind `json:"kind"`
	Status         Status   `json:"status,omitempty"`
	TotalWorkforce *float64 `json:"total_workforce,omitempty"`
	DayCount       int      `json:"day_count"`
	Processed      bool     `json:"processed"`
}

type ListPollsResponse struct {
	Polls []PollSummary `json:"polls"`
}

type DaysResponse struct {
	Days []*Day `json:"days"`
}

// TimelineEntry is one upcoming day of one poll, the unit consumed by the
// external timeline renderer.
type TimelineEntry struct {
	Title           string      `json:"title"`
	Date            time.Time   `json:"date"`
	Status          Status      `json:"status,omitempty"`
	PollURL         string      `json:"poll_url"`
	Description     string      `json:"description,omitempty"`
	SignalGroupLink string      `json:"signal_group_link,omitempty"`
	TimeSlots       []*TimeSlot `json:"time_slots"`
}

type TimelineResponse struct {
	Entries []TimelineEntry `json:"entries"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
