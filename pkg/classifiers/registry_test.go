package classifiers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nearbyfyi/ner/config"
	"github.com/nearbyfyi/ner/pkg/models"
)

func TestNewRegistry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<ORGANIZATION>Acme</ORGANIZATION>")
	}))
	defer srv.Close()

	cfg := &config.ClassifiersConfig{
		Default:     "english",
		CallTimeout: time.Second,
		Models: map[string]config.ClassifierConfig{
			"english": {Path: englishModel},
			"muc":     {URL: srv.URL, Timeout: time.Second},
		},
	}

	registry, err := NewRegistry(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, "english", registry.Default())
	assert.Equal(t, []string{"english", "muc"}, registry.Names())

	t.Run("empty name selects the default", func(t *testing.T) {
		c, err := registry.Classifier("")
		require.NoError(t, err)
		tagged, err := c.Tag(context.Background(), "Alice")
		require.NoError(t, err)
		assert.Equal(t, "<PERSON>Alice</PERSON>", tagged)
	})

	t.Run("names are case-insensitive", func(t *testing.T) {
		c, err := registry.Classifier("MUC")
		require.NoError(t, err)
		tagged, err := c.Tag(context.Background(), "Acme")
		require.NoError(t, err)
		assert.Equal(t, "<ORGANIZATION>Acme</ORGANIZATION>", tagged)
	})

	t.Run("unknown name is an invalid argument", func(t *testing.T) {
		_, err := registry.Classifier("german")
		assert.ErrorIs(t, err, models.ErrInvalidArgument)
	})
}

func TestNewRegistryStartupFailures(t *testing.T) {
	tests := map[string]*config.ClassifiersConfig{
		"missing model file": {
			Default: "english",
			Models: map[string]config.ClassifierConfig{
				"english": {Path: filepath.Join(t.TempDir(), "missing.yaml")},
			},
		},
		"default not configured": {
			Default: "german",
			Models: map[string]config.ClassifierConfig{
				"english": {Path: englishModel},
			},
		},
		"no classifiers": {
			Default: "english",
		},
		"bad remote url": {
			Default: "english",
			Models: map[string]config.ClassifierConfig{
				"english": {URL: "tagger:9191"},
			},
		},
	}

	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewRegistry(context.Background(), cfg)
			assert.Error(t, err)
		})
	}
}

func TestNew(t *testing.T) {
	registry, err := New("Echo", map[string]models.Classifier{"ECHO": echoClassifier{}})
	require.NoError(t, err)
	assert.Equal(t, "echo", registry.Default())

	_, err = New("other", map[string]models.Classifier{"echo": echoClassifier{}})
	assert.ErrorIs(t, err, config.ErrUnknownDefaultClassifier)

	_, err = New("echo", nil)
	assert.ErrorIs(t, err, config.ErrNoClassifiers)
}
