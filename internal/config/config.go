package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Model struct {
		ClassifierPath string `yaml:"classifier_path"`
		VectorizerPath string `yaml:"vectorizer_path"`
	} `yaml:"model"`
	Validator struct {
		MinConfidence float64 `yaml:"min_confidence"`
	} `yaml:"validator"`
	Geo struct {
		NominatimURL string `yaml:"nominatim_url"`
		OverpassURL  string `yaml:"overpass_url"`
	} `yaml:"geo"`
}

// LoadConfig reads configuration from the specified YAML file and applies
// defaults. A PORT environment variable overrides the configured listen port.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	config.applyDefaults()
	return config, nil
}

func (c *Config) applyDefaults() {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Port = port
	}
	if c.Server.Port == "" {
		c.Server.Port = "5000"
	}
	if c.Database.Path == "" {
		c.Database.Path = "reviews.db"
	}
	if c.Model.ClassifierPath == "" {
		c.Model.ClassifierPath = "sentiment_model.json"
	}
	if c.Model.VectorizerPath == "" {
		c.Model.VectorizerPath = "vectorizer.json"
	}
	if c.Validator.MinConfidence == 0 {
		c.Validator.MinConfidence = 0.1
	}
	if c.Geo.NominatimURL == "" {
		c.Geo.NominatimURL = "https://nominatim.openstreetmap.org"
	}
	if c.Geo.OverpassURL == "" {
		c.Geo.OverpassURL = "https://overpass-api.de/api/interpreter"
	}
}
