// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package fetch downloads poll CSV exports from the poll service
(GET <base>/exportcsv.php?poll=<id>).

Transient failures — transport errors, 429, 5xx — are retried with jittered
exponential backoff; other non-200 statuses fail immediately. This is the
only place in the system with a retry policy: the processing pipeline treats
the client as an opaque supplier of raw data (it satisfies poll.Fetcher).
*/
package fetch
