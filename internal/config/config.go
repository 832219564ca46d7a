package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/rayanxn/film-tui/internal/paging"
	"github.com/rayanxn/film-tui/internal/swapi"
)

const (
	appName   = "film-tui"
	envPrefix = "FILM_TUI"
)

// Config holds all application settings. It is read once at startup and
// never written back.
type Config struct {
	Endpoint       string        `mapstructure:"endpoint"`
	PageSize       int           `mapstructure:"page_size"`
	CacheSize      int           `mapstructure:"cache_size"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	LogFile        string        `mapstructure:"log_file"`
	LogLevel       string        `mapstructure:"log_level"`
}

// configDir returns the XDG config directory for the app.
func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(base, appName), nil
}

// configPath returns the full path to the config file.
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// defaultLogFile returns the log path under the user cache dir, or "" when
// there is no cache dir.
func defaultLogFile() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, appName, appName+".log")
}

// Load reads .env, the config file in the user config dir and FILM_TUI_*
// environment variables, in increasing order of precedence.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	path, err := configPath()
	if err != nil {
		return Config{}, err
	}
	return LoadFile(path)
}

// LoadFile is Load without the .env step, reading the config file at path.
// A missing file is not an error.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("endpoint", swapi.DefaultEndpoint)
	v.SetDefault("page_size", paging.DefaultPageSize)
	v.SetDefault("cache_size", 64)
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("log_file", defaultLogFile())
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.PageSize < 1:
		return fmt.Errorf("page_size must be at least 1, got %d", c.PageSize)
	case c.CacheSize < 1:
		return fmt.Errorf("cache_size must be at least 1, got %d", c.CacheSize)
	case c.RequestTimeout < 0:
		return fmt.Errorf("request_timeout must not be negative, got %s", c.RequestTimeout)
	}
	return nil
}
