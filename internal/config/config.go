package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"suggestbox/internal/eventbus"
)

// Defaults for engine tuning knobs.
const (
	DefaultMaxResults = 10
	DefaultDebounceMs = 300
)

// Config represents the application configuration
type Config struct {
	Version int      `toml:"version"`
	Engine  Engine   `toml:"engine"`
	Backend Backend  `toml:"backend"`
	UI      Settings `toml:"ui"`
}

// Engine holds the suggestion engine tuning knobs.
type Engine struct {
	MaxResults         int    `toml:"max_results"`
	DebounceMs         int    `toml:"debounce_ms"`
	ShowPopularOnFocus bool   `toml:"show_popular_on_focus"`
	PopularLoad        string `toml:"popular_load"` // "lazy" or "eager"
}

// Backend describes the optional remote suggestion endpoint.
type Backend struct {
	Endpoint       string  `toml:"endpoint"` // empty means local demo data
	QueryParam     string  `toml:"query_param"`
	RequestsPerSec float64 `toml:"requests_per_sec"`
}

// Settings represents UI-related configuration
type Settings struct {
	MaxVisible int `toml:"max_visible"`
	Width      int `toml:"width"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Engine: Engine{
			MaxResults:         DefaultMaxResults,
			DebounceMs:         DefaultDebounceMs,
			ShowPopularOnFocus: true,
			PopularLoad:        "lazy",
		},
		Backend: Backend{
			QueryParam:     "q",
			RequestsPerSec: 5,
		},
		UI: Settings{
			MaxVisible: 8,
			Width:      50,
		},
	}
}

// Validate checks the loaded values and fills gaps with defaults.
func (c *Config) Validate() error {
	if c.Engine.MaxResults <= 0 {
		c.Engine.MaxResults = DefaultMaxResults
	}
	if c.Engine.DebounceMs <= 0 {
		c.Engine.DebounceMs = DefaultDebounceMs
	}
	switch c.Engine.PopularLoad {
	case "":
		c.Engine.PopularLoad = "lazy"
	case "lazy", "eager":
	default:
		return fmt.Errorf("invalid popular_load %q: want \"lazy\" or \"eager\"", c.Engine.PopularLoad)
	}
	if c.UI.MaxVisible <= 0 {
		c.UI.MaxVisible = 8
	}
	if c.UI.Width <= 0 {
		c.UI.Width = 50
	}
	if c.Backend.QueryParam == "" {
		c.Backend.QueryParam = "q"
	}
	if c.Backend.RequestsPerSec <= 0 {
		c.Backend.RequestsPerSec = 5
	}
	return nil
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// service is the concrete implementation
type service struct {
	bus      eventbus.EventBus
	filePath string
}

// NewService creates a config service reading from the user config dir.
func NewService(bus eventbus.EventBus) Service {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	dir := filepath.Join(configDir, "suggestbox")

	return &service{
		bus:      bus,
		filePath: filepath.Join(dir, "config.toml"),
	}
}

// NewServiceWithPath creates a config service bound to an explicit file.
func NewServiceWithPath(bus eventbus.EventBus, path string) Service {
	return &service{bus: bus, filePath: path}
}

// Load loads the configuration from the default path, falling back to
// defaults when no file exists.
func (s *service) Load() (*Config, error) {
	cfg, err := s.LoadFromPath(s.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		s.publishLoaded("")
		return cfg, nil
	}
	return cfg, err
}

// LoadFromPath loads configuration from a specific path
func (s *service) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s.publishLoaded(path)
	return &cfg, nil
}

// Save saves the configuration to the default path.
func (s *service) Save(config *Config) error {
	return s.SaveToPath(config, s.filePath)
}

// SaveToPath saves configuration to a specific path
func (s *service) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.ConfigSavedEvent{})
	}
	return nil
}

func (s *service) publishLoaded(path string) {
	if s.bus != nil {
		s.bus.Publish(eventbus.ConfigLoadedEvent{Path: path})
	}
}
