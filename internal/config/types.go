package config

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
)

const (
	DefaultAddr       = ":8385"
	DefaultLanguage   = "en-US"
	DefaultCachePath  = "query_cache.json"
	DefaultExpiryDays = 7
)

// Config is the full cinequery configuration, loaded from cinequery.toml.
type Config struct {
	Addr       string      `koanf:"addr"         validate:"omitempty,hostname_port"`
	TMDBAPIKey string      `koanf:"tmdb_api_key" validate:"required"`
	Language   string      `koanf:"language"     validate:"omitempty,language_tag"`
	Cache      CacheConfig `koanf:"cache"`
	ConfigDir  string      `koanf:"-"`
}

// CacheConfig controls the persistent query cache.
type CacheConfig struct {
	Path       string `koanf:"path"`
	ExpiryDays int    `koanf:"expiry_days" validate:"omitempty,gte=1"`
}

// languageTagRe matches the ll-CC shape TMDb expects, e.g. "en-US".
var languageTagRe = regexp.MustCompile(`^[a-z]{2}-[A-Z]{2}$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("language_tag", func(fl validator.FieldLevel) bool {
		return languageTagRe.MatchString(fl.Field().String())
	})

	return v
}

// ApplyDefaults fills in every unset optional field.
func (c *Config) ApplyDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.Cache.Path == "" {
		c.Cache.Path = DefaultCachePath
	}
	if c.Cache.ExpiryDays == 0 {
		c.Cache.ExpiryDays = DefaultExpiryDays
	}
}

// Validate checks the config after defaults are applied.
func (c *Config) Validate() error {
	v := newValidator()

	valErr := v.Struct(c)
	if valErr == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(valErr, &validationErrors) {
		return oops.
			Code("CONFIG_INVALID").
			Wrapf(valErr, "validating config")
	}

	for _, fe := range validationErrors {
		return mapValidationError(fe)
	}

	return nil
}

func mapValidationError(fe validator.FieldError) error {
	field := strings.ToLower(fe.Field())

	switch {
	case field == "tmdbapikey":
		return oops.
			Code("CONFIG_INVALID").
			Hint("Set tmdb_api_key in cinequery.toml or export TMDB_API_KEY").
			Errorf("tmdb_api_key is required")

	case fe.Tag() == "hostname_port":
		return oops.
			Code("CONFIG_INVALID").
			With("addr", fe.Value()).
			Hint(`Use a host:port listen address like ":8385"`).
			Errorf("invalid listen address %q", fe.Value())

	case fe.Tag() == "language_tag":
		return oops.
			Code("CONFIG_INVALID").
			With("language", fe.Value()).
			Hint(`Use a TMDb language tag like "en-US" or "pt-BR"`).
			Errorf("invalid language %q", fe.Value())

	case fe.Tag() == "gte":
		return oops.
			Code("CONFIG_INVALID").
			With("field", field).
			Errorf("cache expiry_days must be at least 1")

	default:
		return oops.
			Code("CONFIG_INVALID").
			With("field", field).
			Errorf("invalid config field %q", field)
	}
}
