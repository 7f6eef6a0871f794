package preferences

import (
	"time"

	"setpace/internal/feedback"
)

// Storage backends offered in the preferences window.
var StorageBackends = []string{"file", "sqlite"}

// Settings defines editable user preferences.
type Settings struct {
	SoundEnabled   bool
	HapticsEnabled bool
	ShowQuotes     bool
	StorageBackend string
}

// DefaultSettings returns default settings for SetPace.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:   true,
		HapticsEnabled: true,
		ShowQuotes:     true,
		StorageBackend: "file",
	}
}

// FeedbackConfig converts settings to the feedback player configuration.
func (settings Settings) FeedbackConfig() feedback.Config {
	return feedback.Config{
		SoundEnabled:   settings.SoundEnabled,
		HapticsEnabled: settings.HapticsEnabled,
		PlayTimeout:    2 * time.Second,
	}
}
