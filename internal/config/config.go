package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme       = "dark"
	DefaultRecentLimit = 5
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "console"
	configFileName     = "config.yaml"
	configDirName      = "booktracker-t"
	logFileName        = "booktracker-t.log"
)

// Environment variables that override the config file
const (
	EnvTheme       = "BOOKTRACKER_THEME"
	EnvBanner      = "BOOKTRACKER_BANNER"
	EnvRecentLimit = "BOOKTRACKER_RECENT_LIMIT"
	EnvLogLevel    = "BOOKTRACKER_LOG_LEVEL"
	EnvLogFormat   = "BOOKTRACKER_LOG_FORMAT"
	EnvLogFile     = "BOOKTRACKER_LOG_FILE"
)

// LogConfig controls where and how much the application logs
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// Config holds the application configuration. Recorded books are never
// part of it; they live only for the session.
type Config struct {
	Theme       string    `yaml:"theme"`
	BannerImage string    `yaml:"banner_image,omitempty"`
	RecentLimit int       `yaml:"recent_limit"`
	Log         LogConfig `yaml:"log"`

	// Path to config file (not persisted)
	path string
	// What the config file itself holds. Save writes only this, so
	// environment and flag overrides stay session-only.
	stored fileConfig
}

// fileConfig mirrors Config with every field optional, so a saved file
// holds exactly the keys that were read from it or set through SetTheme.
type fileConfig struct {
	Theme       string        `yaml:"theme,omitempty"`
	BannerImage string        `yaml:"banner_image,omitempty"`
	RecentLimit *int          `yaml:"recent_limit,omitempty"`
	Log         fileLogConfig `yaml:"log,omitempty"`
}

type fileLogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
	File   string `yaml:"file,omitempty"`
}

// Default returns the default configuration bound to path
func Default(path string) *Config {
	return &Config{
		Theme:       DefaultTheme,
		RecentLimit: DefaultRecentLimit,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
			File:   filepath.Join(filepath.Dir(path), logFileName),
		},
		path: path,
	}
}

// Load loads configuration from the default config file location
func Load() (*Config, error) {
	configPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom loads configuration from path. A missing file yields defaults.
// Values from a .env file and the environment are applied on top.
func LoadFrom(path string) (*Config, error) {
	cfg := Default(path)

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg.stored); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}
	cfg.mergeFile()

	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	cfg.normalize()

	cfg.path = path
	return cfg, nil
}

// Save writes the file-backed settings to disk. Values that came from the
// environment or the command line are not written.
func (c *Config) Save() error {
	if c.path == "" {
		return errors.New("config has no file path")
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(&c.stored)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return os.WriteFile(c.path, data, 0600)
}

// SetTheme updates the theme and saves
func (c *Config) SetTheme(name string) error {
	c.Theme = name
	c.stored.Theme = name
	return c.Save()
}

// Path returns the file the configuration is loaded from and saved to
func (c *Config) Path() string {
	return c.path
}

// YAML renders the configuration as it would be saved
func (c *Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// mergeFile copies the keys present in the config file over the defaults
func (c *Config) mergeFile() {
	f := c.stored
	if f.Theme != "" {
		c.Theme = f.Theme
	}
	if f.BannerImage != "" {
		c.BannerImage = f.BannerImage
	}
	if f.RecentLimit != nil {
		c.RecentLimit = *f.RecentLimit
	}
	if f.Log.Level != "" {
		c.Log.Level = f.Log.Level
	}
	if f.Log.Format != "" {
		c.Log.Format = f.Log.Format
	}
	if f.Log.File != "" {
		c.Log.File = f.Log.File
	}
}

// applyEnv overrides fields from environment variables
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvTheme); v != "" {
		c.Theme = v
	}
	if v := os.Getenv(EnvBanner); v != "" {
		c.BannerImage = v
	}
	if v := os.Getenv(EnvRecentLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RecentLimit = n
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Log.File = v
	}
}

func (c *Config) normalize() {
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.RecentLimit < 0 {
		c.RecentLimit = DefaultRecentLimit
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	c.BannerImage = expandHome(c.BannerImage)
	c.Log.File = expandHome(c.Log.File)
}

// loadDotEnv reads a .env file from the working directory if there is one.
// Variables already set in the environment win.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load .env file: %w", err)
}

// expandHome replaces a leading ~ with the user's home directory
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// DefaultPath returns the path to the config file
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, ".config")
	}

	return filepath.Join(configDir, configDirName, configFileName), nil
}
