package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"waterdeck/internal/eventbus"
)

// DefaultPageSize is the number of monitors shown per page
const DefaultPageSize = 10

var envKeyReplacer = strings.NewReplacer(".", "_")

// Config represents the application configuration
type Config struct {
	Version     int        `toml:"version" mapstructure:"version"`
	CatalogPath string     `toml:"catalog" mapstructure:"catalog"`
	UISettings  UISettings `toml:"ui" mapstructure:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowSeverity bool   `toml:"show_severity" mapstructure:"show_severity"`
	ShowModel    bool   `toml:"show_model" mapstructure:"show_model"`
	PageSize     int    `toml:"page_size" mapstructure:"page_size"`
	InitialQuery string `toml:"initial_query" mapstructure:"initial_query"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "waterdeck", "config.toml")
}

// NewConfigService creates a config service for the given file; empty means DefaultPath
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file.
// A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	var (
		cfg *Config
		err error
	)
	if _, statErr := os.Stat(cs.filePath); os.IsNotExist(statErr) {
		cfg, err = read("")
	} else {
		cfg, err = read(cs.filePath)
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{CatalogPath: cfg.CatalogPath})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.Newf("config file not found: %s", path)
	}
	return read(path)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

// read layers defaults, the optional file and WATERDECK_* environment variables
func read(path string) (*Config, error) {
	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("version", defaults.Version)
	v.SetDefault("catalog", defaults.CatalogPath)
	v.SetDefault("ui.show_severity", defaults.UISettings.ShowSeverity)
	v.SetDefault("ui.show_model", defaults.UISettings.ShowModel)
	v.SetDefault("ui.page_size", defaults.UISettings.PageSize)
	v.SetDefault("ui.initial_query", defaults.UISettings.InitialQuery)

	// Environment variables: WATERDECK_CATALOG, WATERDECK_UI_PAGE_SIZE, etc.
	v.SetEnvPrefix("WATERDECK")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	if cfg.UISettings.PageSize <= 0 {
		cfg.UISettings.PageSize = DefaultPageSize
	}
	return &cfg, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:     1,
		CatalogPath: "monitors.toml",
		UISettings: UISettings{
			ShowSeverity: true,
			ShowModel:    true,
			PageSize:     DefaultPageSize,
		},
	}
}
