package config

import (
	"os"
	"testing"
)

func unsetForTest(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		// register restore via Setenv before unsetting
		t.Setenv(key, os.Getenv(key))
		os.Unsetenv(key)
	}
}
