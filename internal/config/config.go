// Package config persists the working directory and resolves the upscale
// API token.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	appDirName  = "darkroom"
	workDirFile = "workdir"

	// TokenEnvVar holds the bearer token for the upscale service.
	TokenEnvVar = "RECRAFT_API_TOKEN"
)

// WorkDirPath is the location of the one-line working-directory file.
func WorkDirPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appDirName, workDirFile), nil
}

// LoadWorkDir returns the persisted working directory, or "" when unset.
// Read failures are treated as unset.
func LoadWorkDir() string {
	path, err := WorkDirPath()
	if err != nil {
		return ""
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

// SaveWorkDir persists dir as the single line of the settings file. An empty
// dir means "unset".
func SaveWorkDir(dir string) error {
	path, err := WorkDirPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strings.TrimSpace(dir)+"\n"), 0o644)
}

// APIToken returns the upscale bearer token from the environment, loading a
// .env file from the current directory first, best-effort.
func APIToken() string {
	_ = godotenv.Load()
	return os.Getenv(TokenEnvVar)
}
