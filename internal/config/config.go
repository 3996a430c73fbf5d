package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/kanban/internal/models"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Defaults applied to missing fields
const (
	DefaultSlot       = "kanbanData"
	DefaultSQLitePath = "~/.kanban/board.db"
	DefaultRedisAddr  = "localhost:6379"
	DefaultLogLevel   = "info"
	DefaultLogDir     = "~/.kanban/logs"
)

// EnvConfigPath overrides the config file location
const EnvConfigPath = "KANBAN_CONFIG"

var (
	ErrUnknownBackend  = errors.New("unknown storage backend")
	ErrUnknownLogLevel = errors.New("unknown log level")
	ErrInvalidBoard    = errors.New("invalid default board")
)

// Config represents the application configuration
type Config struct {
	Storage      StorageConfig `yaml:"storage"`
	Log          LogConfig     `yaml:"log"`
	DefaultBoard models.Board  `yaml:"default_board,omitempty"`
}

// StorageConfig selects and configures the slot store
type StorageConfig struct {
	Backend       string `yaml:"backend"`
	SQLitePath    string `yaml:"sqlite_path"`
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	Slot          string `yaml:"slot"`
}

// LogConfig configures the log file
type LogConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

// Default returns a config with every field set to its default
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path, returning defaults if the file doesn't exist
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// Fill in any missing values with defaults
	config.ApplyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(configPath)
}

// SaveFile writes the config as yaml to path
func (c *Config) SaveFile(path string) error {
	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate rejects unknown backends, unknown log levels and malformed default boards
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Storage.Backend)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, c.Log.Level)
	}

	if c.DefaultBoard != nil {
		if err := c.DefaultBoard.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidBoard, err)
		}
	}
	return nil
}

// Board returns the configured default board, or the built-in one
func (c *Config) Board() models.Board {
	if len(c.DefaultBoard) == 0 {
		return models.DefaultBoard()
	}
	b := c.DefaultBoard.Clone()
	b.Normalize()
	return b
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if override := os.Getenv(EnvConfigPath); override != "" {
		return ExpandHome(override)
	}

	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "kanban", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "kanban", "config.yaml"), nil
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}

// ApplyDefaults fills in missing configuration with defaults
func (c *Config) ApplyDefaults() {
	c.Storage.applyDefaults()
	c.Log.applyDefaults()
}

func (s *StorageConfig) applyDefaults() {
	if s.Backend == "" {
		s.Backend = BackendSQLite
	}
	if s.SQLitePath == "" {
		s.SQLitePath = DefaultSQLitePath
	}
	if s.RedisAddr == "" {
		s.RedisAddr = DefaultRedisAddr
	}
	if s.Slot == "" {
		s.Slot = DefaultSlot
	}
}

func (l *LogConfig) applyDefaults() {
	if l.Level == "" {
		l.Level = DefaultLogLevel
	}
	if l.Dir == "" {
		l.Dir = DefaultLogDir
	}
}
