package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/swixbase/log/writer"
)

// Config describes a log destination as loaded from a YAML document.
// Zero values fall back to the writer defaults (UTF-8, ISO-8601
// timestamps with milliseconds).
type Config struct {
	// Path is the destination log file
	Path string `yaml:"path"`
	// Encoding is the output encoding name, e.g. "UTF-8" or "ISO-8859-1"
	Encoding string `yaml:"encoding"`
	// TimeFormat is the Go layout for entry timestamps
	TimeFormat string `yaml:"time_format"`
}

// Parse decodes a YAML document into a Config.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Writer validates the config and converts it into a writer.Config.
func (c Config) Writer() (writer.Config, error) {
	if c.Path == "" {
		return writer.Config{}, fmt.Errorf("config: path is required")
	}
	enc, err := writer.ParseEncoding(c.Encoding)
	if err != nil {
		return writer.Config{}, fmt.Errorf("config: %w", err)
	}
	return writer.Config{
		Path:            c.Path,
		Encoding:        enc,
		TimestampFormat: c.TimeFormat,
	}, nil
}
