package meta

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

// Config holds the settings read from the environment.
type Config struct {
	Seed              uint64 `env:"WAR_SEED"`                       // 0 picks a seed from the clock
	Setup             string `env:"WAR_SETUP" envDefault:"shuffle"` // fixed, shuffle or manual
	StrictElimination bool   `env:"WAR_STRICT_ELIMINATION"`
	MaxTurns          int    `env:"WAR_MAX_TURNS" envDefault:"500"`
	RecordDir         string `env:"WAR_RECORD_DIR"`
	Lang              string `env:"WAR_LANG" envDefault:"en-US"`
}

// SetupEnvironment loads an optional .env file and configures the global logger.
func SetupEnvironment() {
	err := godotenv.Load()

	if os.Getenv("ENV") == "production" {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	levelStr := strings.ToLower(os.Getenv("LOGLEVEL"))
	zerolog.SetGlobalLevel(ParseLogLevel(levelStr))
	if _, known := logLevels[levelStr]; !known && levelStr != "" {
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to warn.", levelStr)
	}

	// report on the .env file only once logging is set up
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found; proceeding with existing environment variables.")
	}
}

var logLevels = map[string]zerolog.Level{
	"debug":    zerolog.DebugLevel,
	"info":     zerolog.InfoLevel,
	"warn":     zerolog.WarnLevel,
	"warning":  zerolog.WarnLevel,
	"error":    zerolog.ErrorLevel,
	"fatal":    zerolog.FatalLevel,
	"panic":    zerolog.PanicLevel,
	"disabled": zerolog.Disabled,
}

// ParseLogLevel maps a LOGLEVEL value to a zerolog level. Warn keeps the console quiet while
// the players type, so it is the default.
func ParseLogLevel(s string) zerolog.Level {
	if level, ok := logLevels[strings.ToLower(s)]; ok {
		return level
	}
	return zerolog.WarnLevel
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.MaxTurns < 1 {
		return fmt.Errorf("WAR_MAX_TURNS must be positive, got %d", c.MaxTurns)
	}
	if _, err := c.Language(); err != nil {
		return err
	}
	return nil
}

// Language parses Lang, falling back to DEFAULT_LANG when empty.
func (c *Config) Language() (language.Tag, error) {
	lang := c.Lang
	if lang == "" {
		lang = DEFAULT_LANG
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return language.Und, fmt.Errorf("WAR_LANG %q: %w", lang, err)
	}
	return tag, nil
}
