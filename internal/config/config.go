package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"cat-encyclopedia/internal/logger"
	"cat-encyclopedia/internal/theme"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "cat-encyclopedia.yaml"

// Config holds the application settings.
type Config struct {
	DataFile      string        `yaml:"data_file"`
	ImageDir      string        `yaml:"image_dir"`
	AnimationFile string        `yaml:"animation_file"`
	InitialTheme  string        `yaml:"initial_theme"`
	FrameInterval time.Duration `yaml:"frame_interval"`
	LogLevel      string        `yaml:"log_level"`
	JSONLogs      bool          `yaml:"json_logs"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		DataFile:      "cats_data.json",
		ImageDir:      "image_path",
		AnimationFile: "cat_animation.gif",
		InitialTheme:  "light",
		FrameInterval: 100 * time.Millisecond,
		LogLevel:      "info",
		JSONLogs:      false,
	}
}

// LoadFile merges the YAML file at path over the defaults. A missing file
// yields the defaults; an unreadable or invalid one yields the defaults and
// an error describing why the file was ignored.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	parsed := DefaultConfig()
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return parsed, nil
}

// Load reads the config file named by CATS_CONFIG (or DefaultPath) and then
// applies environment overrides.
func Load() (Config, error) {
	path := DefaultPath
	if p := strings.TrimSpace(os.Getenv("CATS_CONFIG")); p != "" {
		path = p
	}

	cfg, err := LoadFile(path)
	cfg.ApplyEnv()
	return cfg, err
}

// ApplyEnv overrides settings from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("CATS_DATA_FILE"); v != "" {
		c.DataFile = v
	}
	if v := os.Getenv("CATS_IMAGE_DIR"); v != "" {
		c.ImageDir = v
	}
	if v := os.Getenv("CATS_ANIMATION_FILE"); v != "" {
		c.AnimationFile = v
	}
	if v := os.Getenv("CATS_THEME"); v != "" {
		c.InitialTheme = v
	}

	switch {
	case os.Getenv("LOG_LEVEL") != "":
		c.LogLevel = os.Getenv("LOG_LEVEL")
	case os.Getenv("DEBUG") == "1":
		c.LogLevel = "debug"
	}

	if os.Getenv("CATS_JSON_LOGS") == "true" {
		c.JSONLogs = true
	}
}

// Validate reports settings the application cannot start with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return errors.New("data_file must not be empty")
	}
	if _, err := c.Theme(); err != nil {
		return err
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("frame_interval must be positive, got %s", c.FrameInterval)
	}
	return nil
}

// Theme parses InitialTheme.
func (c Config) Theme() (theme.Theme, error) {
	return theme.Parse(c.InitialTheme)
}
