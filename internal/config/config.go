// Package config loads cinequery configuration from a TOML file found in
// the current directory or any parent, with the TMDb key overridable from
// the environment.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
)

const apiKeyEnv = "TMDB_API_KEY"

func configFilenames() []string {
	return []string{"cinequery.toml", ".cinequery.toml"}
}

// Load reads and validates the config. An explicit configPath must exist;
// an empty one triggers an upward search from the working directory. When
// no file exists anywhere but TMDB_API_KEY is set, Load falls back to the
// defaults so the CLI works without an init step.
func Load(configPath string) (*Config, error) {
	resolvedPath, err := resolveConfigPath(configPath)
	if err != nil {
		if configPath == "" && os.Getenv(apiKeyEnv) != "" {
			return defaults()
		}

		return nil, err
	}

	absConfigPath, err := filepath.Abs(resolvedPath)
	if err != nil {
		return nil, oops.Wrapf(err, "resolving absolute config path")
	}

	cfg := &Config{}
	k := koanf.New(".")

	if loadErr := k.Load(file.Provider(absConfigPath), toml.Parser()); loadErr != nil {
		return nil, oops.
			Code("CONFIG_INVALID").
			With("path", absConfigPath).
			Hint("Fix TOML syntax in your config file").
			Wrapf(loadErr, "loading config from %q", absConfigPath)
	}

	if unmarshalErr := k.Unmarshal("", cfg); unmarshalErr != nil {
		return nil, oops.
			Code("CONFIG_INVALID").
			With("path", absConfigPath).
			Hint("Fix config structure to match the cinequery schema").
			Wrapf(unmarshalErr, "decoding config from %q", absConfigPath)
	}

	cfg.ConfigDir = filepath.Dir(absConfigPath)

	return finish(cfg)
}

func defaults() (*Config, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, oops.Wrapf(err, "getting working directory")
	}

	cfg := &Config{ConfigDir: workDir}

	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	if envKey := os.Getenv(apiKeyEnv); envKey != "" {
		cfg.TMDBAPIKey = envKey
	}

	cfg.ApplyDefaults()

	if valErr := cfg.Validate(); valErr != nil {
		return nil, valErr
	}

	if !filepath.IsAbs(cfg.Cache.Path) {
		cfg.Cache.Path = filepath.Clean(filepath.Join(cfg.ConfigDir, cfg.Cache.Path))
	}

	return cfg, nil
}

// FindConfigFile walks from the working directory upward looking for a
// cinequery.toml or .cinequery.toml.
func FindConfigFile() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", oops.Wrapf(err, "getting working directory")
	}

	for {
		foundPath, found, findErr := findConfigInDirectory(dir)
		if findErr != nil {
			return "", findErr
		}

		if found {
			return foundPath, nil
		}

		parentDir := filepath.Dir(dir)
		if parentDir == dir {
			return "", oops.
				Code("CONFIG_NOT_FOUND").
				Hint("Run 'cinequery init' to create a config file").
				Errorf("no cinequery.toml or .cinequery.toml found in any parent directory")
		}

		dir = parentDir
	}
}

func resolveConfigPath(configPath string) (string, error) {
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", oops.
					Code("CONFIG_NOT_FOUND").
					With("path", configPath).
					Hint("Create the file or pass a valid --config path").
					Errorf("config file %q does not exist", configPath)
			}

			return "", oops.Wrapf(err, "checking config file %q", configPath)
		}

		return configPath, nil
	}

	return FindConfigFile()
}

func findConfigInDirectory(dir string) (string, bool, error) {
	for _, name := range configFilenames() {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, oops.Wrapf(err, "checking for config file at %q", path)
		}
	}

	return "", false, nil
}
