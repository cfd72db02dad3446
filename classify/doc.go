// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package classify turns participation scores into staffing statuses.

Two primitives feed everything:

  - RatioStatus: numerator/denominator against the LowThreshold (0.5) and
    HighThreshold (0.8) boundaries; unknown inputs are Understaffed
  - Aggregate: fixed-precedence collapse of child statuses into one parent
    status

Apply orchestrates them per poll kind. Booth polls classify each slot
against the minimum staff target and stamp every day with the poll-wide
slot aggregate. Task polls classify each day's summed score against the
per-day person-hours target; when no day got a status, the poll as a whole
is classified against the total person-hours target.

Missing targets suppress status assignment at their level (StatusNone);
they never fail the pipeline.
*/
package classify
