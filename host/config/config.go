// Package config loads the host tool's settings.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the nightknob-host configuration file.
type Config struct {
	// Device is the serial path of the firmware's console.
	Device string `yaml:"device"`
	// Baud is the serial speed; ignored by USB CDC consoles.
	Baud int `yaml:"baud"`
	// ReadTimeoutMs bounds each serial read so the viewer can notice
	// a disconnected device.
	ReadTimeoutMs int `yaml:"read_timeout_ms"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Device:        "/dev/ttyACM0",
		Baud:          115200,
		ReadTimeoutMs: 100,
	}
}

// Load reads a YAML config file. Fields absent from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Save writes the configuration as YAML.
func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
