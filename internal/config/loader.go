package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCities loads the city catalog.
// Search order: customPath -> ~/.trashhero/cities.yaml -> ./configs/cities.yaml -> embedded default
func LoadCities(customPath string) (Catalog, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Catalog{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cat, err := ParseCities(data)
		if err != nil {
			return Catalog{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cat, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("cities.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cat, err := ParseCities(data); err == nil {
				return cat, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "cities.yaml")); err == nil {
		if cat, err := ParseCities(data); err == nil {
			return cat, nil
		}
	}

	// Use embedded default YAML
	cat, err := ParseCities(defaultCitiesYAML)
	if err != nil {
		return DefaultCatalog(), nil // Fallback to hardcoded if embed fails
	}
	return cat, nil
}

// ParseCities validates and decodes a city catalog document.
func ParseCities(data []byte) (Catalog, error) {
	if err := ValidateYAML(data); err != nil {
		return Catalog{}, err
	}
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return Catalog{}, fmt.Errorf("config: cannot decode cities: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".trashhero", filename)
}
