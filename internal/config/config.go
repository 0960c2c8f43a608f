package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alexanderramin/testament/internal/domain"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Prefix is prepended to every environment variable name below.
const Prefix = "TESTAMENT_"

type Config struct {
	DBPath     string            `env:"DB"`
	LogFile    string            `env:"LOG_FILE"`
	LogLevel   string            `env:"LOG_LEVEL" envDefault:"info"`
	Difficulty domain.Difficulty `env:"DIFFICULTY" envDefault:"normal"`
	Music      bool              `env:"MUSIC" envDefault:"true"`
}

// Load reads an optional .env file from the working directory, then the
// process environment. Variables already set win over the file.
func Load() (*Config, error) {
	fileVars, err := godotenv.Read()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}

	environ := env.ToMap(os.Environ())
	for k, v := range fileVars {
		if _, set := environ[k]; !set {
			environ[k] = v
		}
	}
	return LoadFrom(environ)
}

// LoadFrom parses configuration from the given variables only.
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix:      Prefix,
		Environment: environ,
	})
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if _, err := cfg.Level(); err != nil {
		return nil, err
	}

	if cfg.DBPath == "" || cfg.LogFile == "" {
		dir, err := DataDir()
		if err != nil {
			return nil, err
		}
		if cfg.DBPath == "" {
			cfg.DBPath = filepath.Join(dir, "testament.db")
		}
		if cfg.LogFile == "" {
			cfg.LogFile = filepath.Join(dir, "testament.log")
		}
	}
	return &cfg, nil
}

// Level parses LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid %sLOG_LEVEL %q: %w", Prefix, c.LogLevel, err)
	}
	return lvl, nil
}

// DataDir is ~/.testament.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, ".testament"), nil
}
