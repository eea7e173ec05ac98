package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/cinequery/cinequery/internal/cache"
	"github.com/cinequery/cinequery/internal/config"
	"github.com/cinequery/cinequery/internal/ui"
)

func newCacheCommand() *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Inspect or clear the answer cache",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Show cached answers",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to config file",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Emit JSON output",
					},
				},
				Action: cacheListAction,
			},
			{
				Name:  "clear",
				Usage: "Delete every cached answer",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to config file",
					},
				},
				Action: cacheClearAction,
			},
		},
	}
}

func loadCache(cmd *cli.Command) (*cache.Cache, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	return cache.Load(cfg.Cache.Path, cfg.Cache.ExpiryDays)
}

func cacheListAction(_ context.Context, cmd *cli.Command) error {
	answerCache, err := loadCache(cmd)
	if err != nil {
		return err
	}

	entries := answerCache.Entries()
	rows := make([]ui.CacheRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, ui.CacheRow{
			Key:      cache.Key(entry.Query),
			Query:    entry.Query,
			CachedAt: entry.CachedAt,
		})
	}

	return ui.RenderCacheList(rows, ui.ListOptions{JSON: cmd.Bool("json")})
}

func cacheClearAction(_ context.Context, cmd *cli.Command) error {
	answerCache, err := loadCache(cmd)
	if err != nil {
		return err
	}

	count := answerCache.Len()
	if err := answerCache.Clear(); err != nil {
		return err
	}

	fmt.Printf("cleared %d cached answer(s)\n", count)

	return nil
}
