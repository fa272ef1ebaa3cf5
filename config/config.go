package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Config holds runtime-togglable settings, persisted as JSON so they survive
// restarts without a schema migration.
type Config struct {
	MaintenanceMode bool `json:"maintenance_mode"`
}

var (
	config *Config
	once   sync.Once
)

// GetConfig loads the runtime config on first use.
func GetConfig() *Config {
	once.Do(func() {
		config = &Config{
			MaintenanceMode: false,
		}
		loadConfig()
	})
	return config
}

func loadConfig() {
	file, err := os.Open(filepath.Join("config", "config.json"))
	if err != nil {
		return
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return
	}
}

// SaveConfig writes the runtime config atomically via a temp file rename.
func SaveConfig() error {
	if err := os.MkdirAll("config", 0755); err != nil {
		return err
	}

	tmpFile := filepath.Join("config", "config.json.tmp")
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}
	defer os.Remove(tmpFile)

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(config); err != nil {
		file.Close()
		return err
	}
	file.Close()

	return os.Rename(tmpFile, filepath.Join("config", "config.json"))
}

// SetMaintenanceMode flips the maintenance flag and persists it.
func SetMaintenanceMode(enabled bool) error {
	cfg := GetConfig()
	cfg.MaintenanceMode = enabled
	return SaveConfig()
}
