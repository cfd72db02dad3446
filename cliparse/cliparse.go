package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         int
	PollsFile    string
	FetchTimeout time.Duration
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("staffwatch", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.PollsFile, "c", "", "Path to polls.yaml")
	fs.DurationVar(&cfg.FetchTimeout, "fetch-timeout", 0, "HTTP timeout for poll export fetches")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 4830 // default
		}
	}

	if cfg.PollsFile == "" {
		cfg.PollsFile = os.Getenv("POLLS_FILE")
	}
	if cfg.PollsFile == "" {
		cfg.PollsFile = "data/polls.yaml"
	}

	if cfg.FetchTimeout == 0 {
		if s := os.Getenv("FETCH_TIMEOUT"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, errors.New("invalid FETCH_TIMEOUT env variable")
			}
			cfg.FetchTimeout = d
		} else {
			cfg.FetchTimeout = 30 * time.Second
		}
	}

	return cfg, nil
}
