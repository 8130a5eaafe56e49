package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ingagustinmarcel/prop-flow/internal/constants"
)

// Config holds all propflow CLI configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Indec   IndecConfig   `toml:"indec"`
}

// GeneralConfig holds calculation preferences.
type GeneralConfig struct {
	FrequencyMonths int `toml:"frequency_months"`
}

// IndecConfig holds INDEC series API settings.
type IndecConfig struct {
	BaseURL  string `toml:"base_url,omitempty"`
	SeriesID string `toml:"series_id"`
}

// DefaultConfig returns the default configuration: four-month updates against
// the IPC nivel general series.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			FrequencyMonths: constants.DefaultFrequencyMonths,
		},
		Indec: IndecConfig{
			SeriesID: constants.IPCSeriesID,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "propflow")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "propflow")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LoadConfig reads the config file, returning defaults if it doesn't exist.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes the config to disk.
func SaveConfig(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}
