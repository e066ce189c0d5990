package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for config files that are neither YAML nor TOML
var ErrUnknownFormat = errors.New("unknown config file format")

const appName = "kanban-tui"

// Config holds the unified application configuration
type Config struct {
	BoardFile string
	LogDir    string
	LogLevel  string
	Mouse     bool
}

// Settings represents the config file structure
type Settings struct {
	BoardFile string `yaml:"board_file,omitempty" toml:"board_file,omitempty"`
	LogDir    string `yaml:"log_dir,omitempty" toml:"log_dir,omitempty"`
	LogLevel  string `yaml:"log_level,omitempty" toml:"log_level,omitempty"`
	Mouse     *bool  `yaml:"mouse,omitempty" toml:"mouse,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	BoardFile string
	LogLevel  string
	NoMouse   bool
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg, err := defaults()
	if err != nil {
		return nil, err
	}

	// Priority 3: config file
	if configPath, err := findConfigFile(); err == nil {
		settings, err := LoadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", configPath, err)
		}
		cfg.apply(settings)
	}

	// Priority 2: environment variables
	if v := os.Getenv("KANBAN_BOARD_FILE"); v != "" {
		cfg.BoardFile = expandPath(v)
	}
	if v := os.Getenv("KANBAN_LOG_DIR"); v != "" {
		cfg.LogDir = expandPath(v)
	}
	if v := os.Getenv("KANBAN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	// Priority 1: CLI flags
	if flags.BoardFile != "" {
		cfg.BoardFile = expandPath(flags.BoardFile)
	}
	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}
	if flags.NoMouse {
		cfg.Mouse = false
	}

	return cfg, nil
}

func defaults() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		BoardFile: filepath.Join(homeDir, ".kanban_board.json"),
		LogDir:    filepath.Join(homeDir, ".config", appName, "logs"),
		LogLevel:  "info",
		Mouse:     true,
	}, nil
}

func (c *Config) apply(s *Settings) {
	if s.BoardFile != "" {
		c.BoardFile = expandPath(s.BoardFile)
	}
	if s.LogDir != "" {
		c.LogDir = expandPath(s.LogDir)
	}
	if s.LogLevel != "" {
		c.LogLevel = s.LogLevel
	}
	if s.Mouse != nil {
		c.Mouse = *s.Mouse
	}
}

// GetConfigDir returns the directory holding the config file
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", appName), nil
}

// findConfigFile returns the first existing config file, YAML before TOML
func findConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	for _, name := range []string{"config.yaml", "config.yml", "config.toml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", os.ErrNotExist
}

// LoadFile loads settings from a YAML or TOML file, chosen by extension
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &settings)
	case ".toml":
		err = toml.Unmarshal(data, &settings)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureConfigFile creates the config file with defaults if none exists
func EnsureConfigFile() error {
	if _, err := findConfigFile(); err == nil {
		return nil
	}

	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	cfg, err := defaults()
	if err != nil {
		return err
	}

	mouse := cfg.Mouse
	settings := Settings{
		BoardFile: cfg.BoardFile,
		LogDir:    cfg.LogDir,
		LogLevel:  cfg.LogLevel,
		Mouse:     &mouse,
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
