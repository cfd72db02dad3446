// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command timeline prints the upcoming staffing timeline to the terminal:
// one block per day across all configured polls, with a colored status dot
// per day and per slot.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/staffwatch/config"
	"github.com/danielhkuo/staffwatch/fetch"
	"github.com/danielhkuo/staffwatch/models"
	"github.com/danielhkuo/staffwatch/poll"
)

func main() {
	_ = godotenv.Load()

	pollsFile := flag.String("c", "data/polls.yaml", "Path to polls.yaml")
	fetchTimeout := flag.Duration("fetch-timeout", fetch.DefaultTimeout, "HTTP timeout for poll export fetches")
	showPast := flag.Bool("all", false, "Include past days")
	flag.Parse()

	cfg, err := config.Load(*pollsFile)
	if err != nil {
		slog.Error("Error loading polls file", "error", err)
		os.Exit(1)
	}

	client := fetch.NewClient("https://"+cfg.Domain, *fetchTimeout)
	service := poll.NewService(client)

	type entry struct {
		day *models.Day
		p   *models.Poll
	}
	var entries []entry

	for _, pc := range cfg.Polls {
		p, err := poll.New(pc, cfg.Domain)
		if err != nil {
			slog.Error("Invalid poll configuration", "title", pc.Title, "error", err)
			os.Exit(1)
		}
		if err := service.Refresh(context.Background(), p); err != nil {
			slog.Warn("skipping poll", "title", p.Title, "error", err)
			continue
		}
		for _, day := range p.Days {
			entries = append(entries, entry{day: day, p: p})
		}
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].day.Date.Before(entries[j].day.Date)
	})

	for _, e := range entries {
		if !*showPast && e.day.Date.Before(today) {
			continue
		}
		fmt.Printf("%s %s — %s (%s)\n",
			statusColor(e.day.Status).Sprint("●"),
			e.day.Date.Format("Mon 02.01.2006"),
			e.day.Title,
			humanize.Time(e.day.Date),
		)
		for _, slot := range e.day.TimeSlots {
			end := "?"
			if slot.EndTime != nil {
				end = slot.EndTime.Format("15:04")
			}
			fmt.Printf("    %s %s–%s  %.1f signed up of %d asked\n",
				statusColor(slot.Status).Sprint("●"),
				slot.StartTime.Format("15:04"),
				end,
				slot.ParticipationScore,
				slot.RespondentCount,
			)
		}
		fmt.Printf("    %s\n", e.p.PollURL)
	}
}

func statusColor(s models.Status) *color.Color {
	switch s {
	case models.StatusUnderstaffed:
		return color.New(color.FgRed)
	case models.StatusHalfStaffed:
		return color.New(color.FgYellow)
	case models.StatusFullStaffed:
		return color.New(color.FgBlue)
	case models.StatusDone:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgHiBlack)
	}
}
