// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/codeGROOVE-dev/retry"
)

const DefaultTimeout = 30 * time.Second

// Client downloads the CSV export of a poll.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient builds a client for the given poll service base URL, e.g.
// "https://nuudel.digitalcourage.de". A zero timeout falls back to
// DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// FetchRawData downloads the CSV export for one poll, retrying transient
// failures (transport errors, 429, 5xx) with jittered backoff.
func (c *Client) FetchRawData(ctx context.Context, pollID string) (string, error) {
	exportURL := fmt.Sprintf("%s/exportcsv.php?poll=%s", c.baseURL, url.QueryEscape(pollID))

	var body []byte
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, exportURL, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			resp, err := c.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer func() {
				if err := resp.Body.Close(); err != nil {
					slog.Debug("failed to close export response body", "error", err)
				}
			}()
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
				return fmt.Errorf("export returned status %d", resp.StatusCode)
			}
			if resp.StatusCode != http.StatusOK {
				return retry.Unrecoverable(fmt.Errorf("export returned status %d", resp.StatusCode))
			}
			body, err = io.ReadAll(resp.Body)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(4),
		retry.Delay(time.Second),
		retry.MaxDelay(30*time.Second),
		retry.DelayType(retry.FullJitterBackoffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Debug("retrying poll export fetch", "attempt", n+1, "poll_id", pollID, "error", err)
		}),
	)
	if err != nil {
		return "", fmt.Errorf("fetching export for poll %s: %w", pollID, err)
	}
	return string(body), nil
}
