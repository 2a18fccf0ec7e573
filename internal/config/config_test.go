package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "")
	path := writeConfig(t, `
server:
  port: "8081"
database:
  path: "/tmp/test-reviews.db"
model:
  classifier_path: "model.json"
  vectorizer_path: "vec.json"
validator:
  min_confidence: 0.25
geo:
  nominatim_url: "http://localhost:9001"
  overpass_url: "http://localhost:9002"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "8081", cfg.Server.Port)
	require.Equal(t, "/tmp/test-reviews.db", cfg.Database.Path)
	require.Equal(t, "model.json", cfg.Model.ClassifierPath)
	require.Equal(t, 0.25, cfg.Validator.MinConfidence)
	require.Equal(t, "http://localhost:9001", cfg.Geo.NominatimURL)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	path := writeConfig(t, "server:\n  port: \"\"\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "5000", cfg.Server.Port)
	require.Equal(t, "reviews.db", cfg.Database.Path)
	require.Equal(t, "sentiment_model.json", cfg.Model.ClassifierPath)
	require.Equal(t, "vectorizer.json", cfg.Model.VectorizerPath)
	require.Equal(t, 0.1, cfg.Validator.MinConfidence)
	require.Equal(t, "https://nominatim.openstreetmap.org", cfg.Geo.NominatimURL)
	require.Equal(t, "https://overpass-api.de/api/interpreter", cfg.Geo.OverpassURL)
}

func TestLoadConfigPortEnvOverride(t *testing.T) {
	t.Setenv("PORT", "7777")
	path := writeConfig(t, "server:\n  port: \"5000\"\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "7777", cfg.Server.Port)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
