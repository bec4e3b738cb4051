package env

import (
	"os"
	"strconv"
)

// String returns the value of the environment variable, or defaultValue when unset.
func String(key string, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// Bool parses the environment variable as a boolean, falling back to
// defaultValue when unset or unparseable.
func Bool(key string, defaultValue bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// Int parses the environment variable as an integer, falling back to
// defaultValue when unset or unparseable.
func Int(key string, defaultValue int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return parsed
}
