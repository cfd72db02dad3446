// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writePollsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "polls.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write polls file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writePollsFile(t, `
domain: nuudel.digitalcourage.de
polls:
  - poll_id: JLKKK3hXJ8w3GExz
    title: Infostand
    kind: booth
    minimum_staff_per_slot: 2
    total_workforce: 20
  - poll_url: https://nuudel.digitalcourage.de/xhLaKnOUkjw7CsXW
    title: Plakatieren
    kind: task
    person_hours_per_day: 8
    person_hours_total: 40
    signal_group_link: https://signal.group/#abc
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Domain != "nuudel.digitalcourage.de" {
		t.Errorf("Domain = %q", cfg.Domain)
	}
	if len(cfg.Polls) != 2 {
		t.Fatalf("Expected 2 polls, got %d", len(cfg.Polls))
	}

	booth := cfg.Polls[0]
	if booth.PollID != "JLKKK3hXJ8w3GExz" || booth.Kind != "booth" {
		t.Errorf("Booth poll = %+v", booth)
	}
	if booth.MinimumStaffPerSlot == nil || *booth.MinimumStaffPerSlot != 2 {
		t.Errorf("MinimumStaffPerSlot = %v, want 2", booth.MinimumStaffPerSlot)
	}
	if booth.PersonHoursPerDay != nil {
		t.Errorf("Booth poll should have no per-day target, got %v", *booth.PersonHoursPerDay)
	}

	task := cfg.Polls[1]
	if task.PollURL == "" || task.Kind != "task" {
		t.Errorf("Task poll = %+v", task)
	}
	if task.PersonHoursTotal == nil || *task.PersonHoursTotal != 40 {
		t.Errorf("PersonHoursTotal = %v, want 40", task.PersonHoursTotal)
	}
}

func TestLoadDefaultDomain(t *testing.T) {
	path := writePollsFile(t, `
polls:
  - poll_id: abc
    title: Something
    kind: booth
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Domain != DefaultDomain {
		t.Errorf("Domain = %q, want default %q", cfg.Domain, DefaultDomain)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no polls", "domain: example.org\npolls: []\n"},
		{"missing title", "polls:\n  - poll_id: abc\n    kind: booth\n"},
		{"bad kind", "polls:\n  - poll_id: abc\n    title: X\n    kind: banana\n"},
		{"neither id nor url", "polls:\n  - title: X\n    kind: booth\n"},
		{"both id and url", "polls:\n  - poll_id: a\n    poll_url: https://example.org/a\n    title: X\n    kind: booth\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writePollsFile(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Error("Load should fail")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}
