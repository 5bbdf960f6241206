package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindProjectRoot(t *testing.T) {
	root, err := FindProjectRoot()
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(root, "go.mod"))
	assert.NoError(t, err)
}

func TestNewTestConfig(t *testing.T) {
	cfg, err := NewTestConfig()
	require.NoError(t, err)

	require.NoError(t, cfg.Validate())

	_, err = os.Stat(cfg.Classifiers.Models[EnglishClassifier].Path)
	assert.NoError(t, err)
}
