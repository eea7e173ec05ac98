package main

import (
	"context"
	"fmt"
	"os"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"
)

const starterConfig = `# cinequery configuration

# Listen address for 'cinequery serve'.
addr = ":8385"

# TMDb API key (https://www.themoviedb.org/settings/api).
# The TMDB_API_KEY environment variable overrides this value.
tmdb_api_key = ""

# Language for TMDb responses, as ll-CC.
language = "en-US"

[cache]
# Cached answers live here, relative to this file.
path = "query_cache.json"
expiry_days = 7
`

func newInitCommand() *cli.Command {
	return &cli.Command{
		Name:   "init",
		Usage:  "Create a starter cinequery.toml in the current directory",
		Action: initAction,
	}
}

func initAction(_ context.Context, _ *cli.Command) error {
	const filename = "cinequery.toml"

	if _, err := os.Stat(filename); err == nil {
		return oops.
			Code("FILE_EXISTS").
			With("path", filename).
			Hint("Edit the existing file or remove it first").
			Errorf("%s already exists", filename)
	}

	if err := os.WriteFile(filename, []byte(starterConfig), 0o644); err != nil {
		return oops.Wrapf(err, "writing %s", filename)
	}

	fmt.Printf("created %s, set tmdb_api_key to get started\n", filename)

	return nil
}
