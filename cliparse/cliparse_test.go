// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
	"time"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 4830 {
		t.Errorf("expected default port 4830, got %d", cfg.Port)
	}
	if cfg.PollsFile != "data/polls.yaml" {
		t.Errorf("expected default polls file, got %q", cfg.PollsFile)
	}
	if cfg.FetchTimeout != 30*time.Second {
		t.Errorf("expected default fetch timeout 30s, got %v", cfg.FetchTimeout)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("POLLS_FILE", "/etc/staffwatch/polls.yaml")
	os.Setenv("FETCH_TIMEOUT", "5s")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.PollsFile != "/etc/staffwatch/polls.yaml" {
		t.Errorf("expected env polls file, got %q", cfg.PollsFile)
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Errorf("expected fetch timeout 5s, got %v", cfg.FetchTimeout)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-c", "polls.yaml", "-fetch-timeout", "10s"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Errorf("expected 10s, got %v", cfg.FetchTimeout)
	}
}

func TestParseFlags_InvalidEnv(t *testing.T) {
	os.Setenv("PORT", "not-a-number")
	defer os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error for invalid PORT env variable")
	}

	os.Clearenv()
	os.Setenv("FETCH_TIMEOUT", "soon")

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error for invalid FETCH_TIMEOUT env variable")
	}
}
