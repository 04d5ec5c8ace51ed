// Package env reads raw environment variables for the few settings needed
// before the envconfig-backed config is loaded (log format, bootstrap
// toggles).
package env

import (
	"os"
	"strings"
)

// Get returns the environment variable's value, or fallback when unset or
// blank.
func Get(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
