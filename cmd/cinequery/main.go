package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/cinequery/cinequery/internal/cache"
	"github.com/cinequery/cinequery/internal/config"
	"github.com/cinequery/cinequery/internal/query"
	"github.com/cinequery/cinequery/internal/tmdb"
)

var (
	//nolint:gochecknoglobals // Build metadata is injected at build time with ldflags.
	version = "dev"
	//nolint:gochecknoglobals // Build metadata is injected at build time with ldflags.
	commit = "unknown"
	//nolint:gochecknoglobals // Build metadata is injected at build time with ldflags.
	buildTime = "unknown"
)

func main() {
	if err := run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	return newRootCommand().Run(context.Background(), args)
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:    "cinequery",
		Usage:   "Ask about movies and TV, rendered as clean HTML",
		Version: versionString(),
		Commands: []*cli.Command{
			newServeCommand(),
			newAskCommand(),
			newRenderCommand(),
			newCheckCommand(),
			newCacheCommand(),
			newInitCommand(),
		},
	}
}

// newEngine builds the full answer pipeline from a loaded config.
func newEngine(cfg *config.Config) (*query.Engine, error) {
	answerCache, err := cache.Load(cfg.Cache.Path, cfg.Cache.ExpiryDays)
	if err != nil {
		return nil, err
	}

	client := tmdb.NewClient(cfg.TMDBAPIKey, cfg.Language)

	return query.NewEngine(client, answerCache), nil
}

func versionString() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildTime)
}
