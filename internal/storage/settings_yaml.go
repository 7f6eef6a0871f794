package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"setpace/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	SoundEnabled   *bool  `yaml:"sound_enabled"`
	HapticsEnabled *bool  `yaml:"haptics_enabled"`
	ShowQuotes     *bool  `yaml:"show_quotes"`
	StorageBackend string `yaml:"storage_backend"`
}

// LoadSettings reads user preferences from dir/settings.yaml.
// If the file does not exist, default settings are returned.
func LoadSettings(dir string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(filepath.Join(dir, settingsFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to dir/settings.yaml.
func SaveSettings(dir string, settings preferences.Settings) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		SoundEnabled:   &settings.SoundEnabled,
		HapticsEnabled: &settings.HapticsEnabled,
		ShowQuotes:     &settings.ShowQuotes,
		StorageBackend: settings.StorageBackend,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, settingsFileName), serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}
	if fileData.HapticsEnabled != nil {
		settings.HapticsEnabled = *fileData.HapticsEnabled
	}
	if fileData.ShowQuotes != nil {
		settings.ShowQuotes = *fileData.ShowQuotes
	}
	switch fileData.StorageBackend {
	case BackendFile, BackendSQLite:
		settings.StorageBackend = fileData.StorageBackend
	}
}
