// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the staffwatch API server.

staffwatch tracks scheduling polls (Framadate/Nuudel), rebuilds a calendar of
time slots and days from their CSV exports, scores participation per slot,
and classifies staffing adequacy (understaffed / half-staffed /
full-staffed). The classified timeline is served as JSON for an external
rendering widget.

# Starting the Server

	go run . -c data/polls.yaml

Or with environment variables (a .env file is honored):

	POLLS_FILE=data/polls.yaml PORT=4830 go run .

# Configuration

  - PORT (-p): server port (default: 4830)
  - POLLS_FILE (-c): path to the polls file (default: data/polls.yaml)
  - FETCH_TIMEOUT (-fetch-timeout): poll export fetch timeout (default: 30s)

The polls file lists the tracked polls and their staffing targets; see the
config package.

# Architecture

The server uses the processing pipeline underneath a handler layer:

  - pollcsv: CSV export parsing and response normalization
  - schedule: time-slot building and day aggregation
  - classify: staffing status classification
  - poll: pipeline orchestration, poll registry
  - fetch: CSV export download with retry
  - handlers, router, middleware: HTTP surface
  - models: shared domain and API types
  - config, cliparse: polls file and server settings

A terminal timeline viewer lives in cmd/timeline.
*/
package main
