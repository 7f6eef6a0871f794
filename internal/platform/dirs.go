package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataDir returns the per-user directory for appName, preferring the OS-standard
// configuration directory and falling back to a home-relative location.
func DataDir(appName string) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		homeDir, homeErr := os.UserHomeDir()
		if homeErr != nil {
			if err != nil {
				return "", fmt.Errorf("resolve data dir: %w", err)
			}
			return "", fmt.Errorf("resolve data dir: %w", homeErr)
		}
		base = fallbackConfigDir(homeDir)
	}
	return filepath.Join(base, appName), nil
}
