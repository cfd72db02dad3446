// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package poll orchestrates the processing pipeline end to end.

Service.Process takes raw CSV text and runs the stages in order: column
parsing (pollcsv), slot building and day grouping (schedule), status
classification (classify). Processing is pure given the raw data and the
poll's configuration; it performs no I/O. A failed run leaves the poll
exactly as it was — callers see either a fully classified poll or no update.

Service.Refresh acquires fresh raw data through the Fetcher collaborator and
then processes it; Service.Reprocess re-runs the pipeline over the data
already held. Recomputation is full replacement, not an incremental merge.

New derives the missing half of the poll_id/poll_url pair from the
configured poll host.

Registry holds the configured polls and provides the per-poll
single-writer serialization that concurrent HTTP handlers need
(Managed.Update for writes, Managed.View for reads).
*/
package poll
