// internal/config/config.go
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// LoadProfile loads and validates configuration from the specified JSON file.
// If the file doesn't exist or fails to parse, returns default configuration.
func LoadProfile(path string) (*Profile, error) {
	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// File doesn't exist, return defaults
		return DefaultProfile(), nil
	}

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultProfile(), err
	}

	// Parse JSON
	var profile Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return DefaultProfile(), err
	}

	// Validate and normalize
	if err := profile.Validate(); err != nil {
		return DefaultProfile(), err
	}

	return &profile, nil
}

// LoadDefaultProfile loads configuration from default location "hud.json"
// in the current working directory.
func LoadDefaultProfile() (*Profile, error) {
	// Try current directory first
	configPath := "hud.json"
	if _, err := os.Stat(configPath); err == nil {
		return LoadProfile(configPath)
	}

	// Try config directory relative to executable
	exePath, err := os.Executable()
	if err == nil {
		exeDir := filepath.Dir(exePath)
		configPath = filepath.Join(exeDir, "hud.json")
		if _, err := os.Stat(configPath); err == nil {
			return LoadProfile(configPath)
		}
	}

	// No config file found, return defaults
	return DefaultProfile(), nil
}

// SaveProfile writes configuration to the specified JSON file.
func SaveProfile(profile *Profile, path string) error {
	// Validate before saving
	if err := profile.Validate(); err != nil {
		return err
	}

	// Marshal with indentation
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}

	// Write file
	return os.WriteFile(path, data, 0644)
}
