// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP API over the classified polls.

# Endpoints

  - GET /polls: summaries of all configured polls
  - GET /polls/{id}: one poll with its classified days
  - GET /polls/{id}/days: just the day list
  - GET /timeline: upcoming days across all polls, sorted by date
  - POST /polls/{id}/refresh: fetch fresh data and reprocess

# Refresh Semantics

A refresh either fully replaces the poll's classified state or leaves it
untouched. Fetch failures return 502, malformed poll data 422; in both
cases the response body says so and the previous state keeps serving.
*/
package handlers
