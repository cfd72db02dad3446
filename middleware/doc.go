// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

  - WithLogging: request/response logging with a per-request UUID
  - JSONResponse / ErrorResponse: JSON encoding helpers
  - CORS: cross-origin headers for the timeline widget frontend
*/
package middleware
