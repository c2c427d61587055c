package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/shapes/pkg/shape"
	"github.com/stretchr/testify/require"
)

// WriteConfig writes content to a shapes.yaml in a fresh temp dir and returns its path.
// It fails the test immediately on error.
func WriteConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "shapes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write config")
	return path
}

// MissingConfig returns a config path that does not exist.
func MissingConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.yaml")
}

// MustShape builds a shape or fails the test.
func MustShape(t *testing.T, kind shape.Kind, measurements ...float64) shape.Shape {
	t.Helper()

	s, err := shape.New(kind, measurements...)
	require.NoError(t, err, "Failed to build %s", kind)
	return s
}
