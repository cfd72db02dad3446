// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/staffwatch/config"
	"github.com/danielhkuo/staffwatch/models"
	"github.com/danielhkuo/staffwatch/poll"
)

// BoothCSV is a minimal two-slot export: one day, three respondents, one
// slot without an end time and one with. Each column tallies to a
// participation score of 1.5 (one yes, one conditional).
const BoothCSV = `"","2025-01-10","2025-01-10"
"","09:00","12:00-14:00"
"Alice","Ja","Yes"
"Bob","Nein","No"
"Carol","Unter Vorbehalt","Under reserve"
`

// TaskCSV spans two days with one slot each.
const TaskCSV = `"","2025-03-01","2025-03-02"
"","10:00","10:00"
"Alice","Yes","No"
"Bob","Ja","Ja"
"Carol","Under reserve","Unbekannt"
`

// Float returns a pointer to v, for optional staffing targets.
func Float(v float64) *float64 {
	return &v
}

// NewBoothPoll builds a booth poll with a minimum staff of 2 and a total
// workforce of 10, processed from BoothCSV.
func NewBoothPoll(t *testing.T) *models.Poll {
	t.Helper()

	p, err := poll.New(config.PollConfig{
		PollID:              "booth123",
		Title:               "Infostand",
		Kind:                string(models.KindBooth),
		MinimumStaffPerSlot: Float(2),
		TotalWorkforce:      Float(10),
	}, config.DefaultDomain)
	if err != nil {
		t.Fatalf("Failed to build booth poll: %v", err)
	}

	svc := poll.NewService(nil)
	if err := svc.Process(p, BoothCSV); err != nil {
		t.Fatalf("Failed to process booth poll: %v", err)
	}
	return p
}

// StubFetcher serves canned payloads by poll ID and records its calls.
type StubFetcher struct {
	Data  map[string]string
	Err   error
	Calls int
}

func (f *StubFetcher) FetchRawData(ctx context.Context, pollID string) (string, error) {
	f.Calls++
	if f.Err != nil {
		return "", f.Err
	}
	raw, ok := f.Data[pollID]
	if !ok {
		return "", fmt.Errorf("no payload for poll %s", pollID)
	}
	return raw, nil
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req := httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		return req
	}
	return httptest.NewRequest(method, path, nil)
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
