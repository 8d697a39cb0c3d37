package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// WeatherConfig holds the location and refresh cadence for the
// weather collaborator.
type WeatherConfig struct {
	// Latitude and Longitude locate the user's garden for the
	// weather forecast query.
	Latitude  float64 `mapstructure:"latitude" yaml:"latitude"`
	Longitude float64 `mapstructure:"longitude" yaml:"longitude"`

	// RefreshIntervalMin is how often (in minutes) to refresh the
	// current conditions in the background.
	RefreshIntervalMin int `mapstructure:"refresh_interval_min" yaml:"refresh_interval_min"`
}

// AIConfig holds settings for the Gemini care-advice integration.
type AIConfig struct {
	Model string `mapstructure:"model" yaml:"model"`
}

// DisplayConfig holds first-run display defaults. The user-mutable
// theme and language live in the settings store; these values seed
// them on a fresh database.
type DisplayConfig struct {
	Theme    string `mapstructure:"theme" yaml:"theme"`
	Language string `mapstructure:"language" yaml:"language"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Weather WeatherConfig `mapstructure:"weather" yaml:"weather"`
	AI      AIConfig      `mapstructure:"ai" yaml:"ai"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
}

// DefaultConfigDir returns the configuration directory,
// ~/.config/plantreminder.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "plantreminder")
}

// DefaultConfigPath returns the default path for the configuration file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// defaultAppConfig returns a sensible default configuration.
// The default location is Jakarta, matching the original deployment.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Weather: WeatherConfig{
			Latitude:           -6.2,
			Longitude:          106.8,
			RefreshIntervalMin: 30,
		},
		AI: AIConfig{
			Model: "gemini-pro",
		},
		Display: DisplayConfig{
			Theme:    "dark",
			Language: "en",
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using
// Viper. If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("weather.latitude", -6.2)
	v.SetDefault("weather.longitude", 106.8)
	v.SetDefault("weather.refresh_interval_min", 30)
	v.SetDefault("ai.model", "gemini-pro")
	v.SetDefault("display.theme", "dark")
	v.SetDefault("display.language", "en")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Weather.RefreshIntervalMin <= 0 {
		cfg.Weather.RefreshIntervalMin = 30
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("weather", cfg.Weather)
	v.Set("ai", cfg.AI)
	v.Set("display", cfg.Display)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
