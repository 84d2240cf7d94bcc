package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Path returns the rn config file location.
// Priority order:
//  1. RN_CONFIG environment variable (if set)
//  2. <user config dir>/rn/config.yaml
//
// The file is not required to exist; Load treats a missing file as
// defaults.
func Path() (string, error) {
	if p := os.Getenv("RN_CONFIG"); p != "" {
		return p, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config directory: %w", err)
	}
	return filepath.Join(base, "rn", "config.yaml"), nil
}
