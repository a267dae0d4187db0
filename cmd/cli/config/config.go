package config

import (
	"os"
	"path/filepath"
	"strings"
)

const defaultAPIURL = "http://localhost:8080"

// APIURL returns the base URL for the MoviePage API.
// It can be overridden with the MOVIEPAGE_API_URL environment variable.
func APIURL() string {
	if v := os.Getenv("MOVIEPAGE_API_URL"); v != "" {
		return v
	}
	return defaultAPIURL
}

// tokenPath returns the file where the CLI stores the JWT token.
func tokenPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".moviepage", "token"), nil
}

// SaveToken stores the JWT token for subsequent CLI commands.
func SaveToken(token string) error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token+"\n"), 0o600)
}

// LoadToken returns the stored JWT token, or "" when none is saved.
func LoadToken() string {
	path, err := tokenPath()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
