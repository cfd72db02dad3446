package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/staffwatch/cliparse"
	"github.com/danielhkuo/staffwatch/config"
	"github.com/danielhkuo/staffwatch/fetch"
	"github.com/danielhkuo/staffwatch/models"
	"github.com/danielhkuo/staffwatch/poll"
	"github.com/danielhkuo/staffwatch/router"
)

func main() {
	// Load .env if present; real env variables win
	_ = godotenv.Load()

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	pollsCfg, err := config.Load(cfg.PollsFile)
	if err != nil {
		slog.Error("Error loading polls file", "error", err)
		os.Exit(1)
	}

	client := fetch.NewClient("https://"+pollsCfg.Domain, cfg.FetchTimeout)
	service := poll.NewService(client)
	registry := poll.NewRegistry()

	// Register every configured poll and fetch its initial data. A failed
	// initial fetch is not fatal; the poll stays unprocessed until a
	// successful refresh.
	for _, pc := range pollsCfg.Polls {
		p, err := poll.New(pc, pollsCfg.Domain)
		if err != nil {
			slog.Error("Invalid poll configuration", "title", pc.Title, "error", err)
			os.Exit(1)
		}
		registry.Add(p)
	}

	for _, m := range registry.All() {
		err := m.Update(func(p *models.Poll) error {
			return service.Refresh(context.Background(), p)
		})
		if err != nil {
			slog.Warn("initial poll refresh failed", "error", err)
		}
	}

	mux := router.NewRouter(registry, service)

	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		server.Close()
	}()

	slog.Info("Listening", "port", cfg.Port, "polls", len(pollsCfg.Polls))
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
