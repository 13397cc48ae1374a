package main

import (
	"errors"
	"log"
	"log/slog"
	"os"

	"github.com/gamma-omg/stockdash/internal/config"
	"github.com/gamma-omg/stockdash/internal/dashboard"
	"github.com/gamma-omg/stockdash/internal/feed"
	"github.com/gamma-omg/stockdash/internal/provider"
	"github.com/gamma-omg/stockdash/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := readConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.Default()

	fetcher, err := provider.Create(logger, *cfg)
	if err != nil {
		log.Fatal(err)
	}

	// explicit composition: the cache memoizes the retried fetch
	retrier := feed.NewRetrier(cfg.Fetch)
	cache, err := feed.NewCache(retrier.History(fetcher.History), cfg.Cache.Size)
	if err != nil {
		log.Fatal(err)
	}

	dash := dashboard.New(logger, fetcher, cache, cfg.Defaults)
	srv := server.New(logger, dash)

	log.Fatal(srv.Listen(cfg.Server.Host, cfg.Server.Port))
}

func readConfig() (*config.Config, error) {
	path := os.Getenv("CONFIG")
	if path != "" {
		return config.ReadFromFile(path)
	}

	cfg, err := config.ReadFromFile("config.yaml")
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}

	return cfg, err
}
