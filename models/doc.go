// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and API types shared across the pipeline.

# Domain Types

  - TimeSlot: one bookable interval derived from a poll column, with its
    participation tallies and optional staffing status
  - Day: the slots of one calendar date for one activity
  - Poll: one remote scheduling poll with its targets and classified days

# Response Types

Types for JSON responses:

  - PollSummary / ListPollsResponse: poll overview
  - DaysResponse: classified days of one poll
  - TimelineEntry / TimelineResponse: upcoming days across all polls
  - ErrorResponse: error, message

# Constants

Status taxonomy:

	StatusUnderstaffed = "understaffed"
	StatusHalfStaffed  = "half_staffed"
	StatusFullStaffed  = "full_staffed"
	StatusDone         = "done"

StatusDone is reserved for the rendering layer; the pipeline never assigns it.
StatusNone (the empty string) marks items whose staffing target is not
configured.

Poll kinds:

	KindBooth = "booth"
	KindTask  = "task"

Response values:

	ResponseAffirmative, ResponseNegative, ResponseUnknown, ResponseConditional

The bilingual raw spellings behind these values live in the pollcsv package.
*/
package models
