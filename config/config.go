// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/danielhkuo/staffwatch/models"
)

// DefaultDomain hosts the poll service when the config does not name one.
const DefaultDomain = "nuudel.digitalcourage.de"

// Config is the content of polls.yaml: the poll host plus one entry per
// tracked poll.
type Config struct {
	Domain string       `mapstructure:"domain"`
	Polls  []PollConfig `mapstructure:"polls"`
}

// PollConfig describes one tracked poll. Exactly one of PollID and PollURL
// must be set; the staffing targets are optional and suppress status
// assignment when absent.
type PollConfig struct {
	PollID          string `mapstructure:"poll_id"`
	PollURL         string `mapstructure:"poll_url"`
	Title           string `mapstructure:"title"`
	Kind            string `mapstructure:"kind"`
	Description     string `mapstructure:"description"`
	SignalGroupLink string `mapstructure:"signal_group_link"`

	MinimumStaffPerSlot *float64 `mapstructure:"minimum_staff_per_slot"`
	TotalWorkforce      *float64 `mapstructure:"total_workforce"`
	PersonHoursPerDay   *float64 `mapstructure:"person_hours_per_day"`
	PersonHoursTotal    *float64 `mapstructure:"person_hours_total"`
}

// Load reads and validates the polls file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("domain", DefaultDomain)
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading polls file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing polls file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid polls file %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks every poll entry for the invariants the pipeline relies on.
func (c *Config) Validate() error {
	if len(c.Polls) == 0 {
		return fmt.Errorf("no polls configured")
	}
	for i, p := range c.Polls {
		if p.Title == "" {
			return fmt.Errorf("poll %d: title is required", i)
		}
		if (p.PollID == "") == (p.PollURL == "") {
			return fmt.Errorf("poll %q: exactly one of poll_id and poll_url must be set", p.Title)
		}
		switch models.PollKind(p.Kind) {
		case models.KindBooth, models.KindTask:
		default:
			return fmt.Errorf("poll %q: kind must be %q or %q, got %q",
				p.Title, models.KindBooth, models.KindTask, p.Kind)
		}
	}
	return nil
}
