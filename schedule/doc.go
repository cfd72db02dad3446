// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package schedule reconstructs the temporal model from parsed poll columns.

BuildSlot parses one slot label ("2025-01-10 09:00" or
"2025-01-10 09:00-12:00") and tallies its responses into participation
counts and a weighted score (affirmative + 0.5 x conditional).

GroupDays partitions the slots by calendar date, orders each day
chronologically, and backfills missing end times: a slot runs until the next
slot starts, and the last slot of a day gets a one-hour default. Backfill is
idempotent and assumes the slots of a day are contiguous and non-overlapping;
it does not validate either.

Failure modes: *InvalidSlotLabelError for unparsable labels,
*InvalidDurationError for an explicit end time not after the start
(same-day basis, no overnight wraparound).
*/
package schedule
