package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed config.toml.sample
var configTemplate string

// Config holds the chartgrep configuration: where to listen, how often
// to refresh the record collection, and where the remote hospital
// services live.
type Config struct {
	ListenAddr      string         `toml:"listen_addr"`
	RefreshInterval Duration       `toml:"refresh_interval"`
	RequestTimeout  Duration       `toml:"request_timeout"`
	Services        ServicesConfig `toml:"services"`
	Hospital        HospitalInfo   `toml:"hospital"`
}

// ServicesConfig holds the base URLs of the remote REST services the
// record collection is assembled from.
type ServicesConfig struct {
	AppointmentsURL string `toml:"appointments_url"`
	PatientsURL     string `toml:"patients_url"`
	BillingURL      string `toml:"billing_url"`
	DoctorsURL      string `toml:"doctors_url"`
}

// HospitalInfo is the hospital identity stamped on every assembled
// record.
type HospitalInfo struct {
	Name    string `toml:"name"`
	Address string `toml:"address"`
	Phone   string `toml:"phone"`
}

type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// GetDefaultConfig returns a configuration with sensible defaults and
// no service URLs configured.
func GetDefaultConfig() *Config {
	return &Config{
		ListenAddr:      ":8080",
		RefreshInterval: Duration{15 * time.Minute},
		RequestTimeout:  Duration{30 * time.Second},
	}
}

// LoadConfig reads the TOML configuration at configPath. A missing
// file yields the defaults; missing fields are filled with defaults
// after unmarshaling.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if config.ListenAddr == "" {
		config.ListenAddr = ":8080"
	}
	if config.RefreshInterval.Duration == 0 {
		config.RefreshInterval = Duration{15 * time.Minute}
	}
	if config.RequestTimeout.Duration == 0 {
		config.RequestTimeout = Duration{30 * time.Second}
	}

	return &config, nil
}

// SaveTemplateConfig writes the commented sample configuration to
// configPath, creating parent directories as needed.
func (c *Config) SaveTemplateConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(configPath, []byte(configTemplate), 0644)
}

// SaveConfig writes the configuration as TOML to configPath.
func (c *Config) SaveConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// GetConfigDir returns the configuration directory for chartgrep,
// honoring XDG_CONFIG_HOME.
func GetConfigDir() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	dir := filepath.Join(configDir, "chartgrep")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	return dir, nil
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}
