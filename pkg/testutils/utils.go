package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/nearbyfyi/ner/config"
)

// EnglishClassifier is the name the test config registers the fixture
// gazetteer under.
const EnglishClassifier = "english"

// FindProjectRoot returns the absolute path to the project root directory.
func FindProjectRoot() (string, error) {
	_, currentFilePath, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("could not get current file path")
	}

	dir := filepath.Dir(currentFilePath)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		if dir == filepath.Dir(dir) {
			return "", fmt.Errorf("project root not found")
		}

		dir = filepath.Dir(dir)
	}
}

// GazetteerPath returns the absolute path of the fixture gazetteer shipped
// with the classifiers package.
func GazetteerPath() (string, error) {
	root, err := FindProjectRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "pkg", "classifiers", "testdata", "english.yaml"), nil
}

// NewTestConfig returns a config with the fixture gazetteer as its only,
// and default, classifier.
func NewTestConfig() (*config.Config, error) {
	path, err := GazetteerPath()
	if err != nil {
		return nil, err
	}

	return &config.Config{
		Classifiers: config.ClassifiersConfig{
			Default:     EnglishClassifier,
			CallTimeout: time.Second,
			Models: map[string]config.ClassifierConfig{
				EnglishClassifier: {Path: path},
			},
		},
		Server: config.ServerConfig{
			Port:           config.DefaultPort,
			MaxRequestSize: config.DefaultMaxRequestSize,
		},
		Log: config.LogConfig{Level: "info", Format: "text"},
	}, nil
}
