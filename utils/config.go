package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	UI   UIConfig   `json:"ui"`
	Data DataConfig `json:"data"`
	Chat ChatConfig `json:"chat"`
}

// UIConfig represents UI configuration
type UIConfig struct {
	Theme        string `json:"theme"`
	FontSize     int    `json:"font_size"`
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
}

// DataConfig represents data storage configuration
type DataConfig struct {
	DBPath   string `json:"db_path"`
	LogLevel string `json:"log_level"`
}

// ChatConfig bounds the simulated typing delay for agent replies.
type ChatConfig struct {
	MinDelayMs int `json:"min_delay_ms"`
	MaxDelayMs int `json:"max_delay_ms"`
}

// LoadConfig loads configuration from file. Environment variables (and a
// local .env file, if present) override the file values.
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvOverrides(&config)

	if config.Data.DBPath != "" {
		config.Data.DBPath = expandPath(config.Data.DBPath)
	}
	if config.Chat.MinDelayMs <= 0 {
		config.Chat.MinDelayMs = 1000
	}
	if config.Chat.MaxDelayMs <= config.Chat.MinDelayMs {
		config.Chat.MaxDelayMs = config.Chat.MinDelayMs + 2000
	}

	return &config, nil
}

// applyEnvOverrides lets MARKETPLACE_* variables override the config file.
// A missing .env file is fine.
func applyEnvOverrides(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("MARKETPLACE_DB_PATH"); v != "" {
		config.Data.DBPath = v
	}
	if v := os.Getenv("MARKETPLACE_LOG_LEVEL"); v != "" {
		config.Data.LogLevel = v
	}
	if v := os.Getenv("MARKETPLACE_FONT_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.UI.FontSize = n
		}
	}
}

// SaveConfig saves configuration to file
func SaveConfig(configPath string, config *Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// expandPath expands ~ and relative paths
func expandPath(path string) string {
	if len(path) == 0 {
		return path
	}

	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[1:])
		}
	}

	absPath, err := filepath.Abs(path)
	if err == nil {
		return absPath
	}

	return path
}

// GetConfigPath returns the default config path
func GetConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "./config/default.json"
	}

	return filepath.Join(configDir, "agent-marketplace", "config.json")
}

// EnsureDefaultConfig creates a default config file if it doesn't exist
func EnsureDefaultConfig() (string, error) {
	configPath := GetConfigPath()

	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil
	}

	defaultConfig := &Config{
		UI: UIConfig{
			Theme:        "light",
			FontSize:     14,
			WindowWidth:  1200,
			WindowHeight: 800,
		},
		Data: DataConfig{
			DBPath:   "./data/marketplace.db",
			LogLevel: "info",
		},
		Chat: ChatConfig{
			MinDelayMs: 1000,
			MaxDelayMs: 3000,
		},
	}

	if err := SaveConfig(configPath, defaultConfig); err != nil {
		return "", err
	}

	return configPath, nil
}
