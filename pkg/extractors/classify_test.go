package extractors

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nearbyfyi/ner/pkg/models"
)

type stubClassifier struct {
	tagged string
	err    error
	calls  int
}

func (s *stubClassifier) Tag(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.tagged, s.err
}

type stubRegistry struct {
	classifiers map[string]models.Classifier
	def         string
}

func (r *stubRegistry) Classifier(name string) (models.Classifier, error) {
	if name == "" {
		name = r.def
	}
	c, ok := r.classifiers[name]
	if !ok {
		return nil, models.NewUnknownClassifierError(name)
	}
	return c, nil
}

func (r *stubRegistry) Default() string { return r.def }

func (r *stubRegistry) Names() []string { return []string{r.def} }

func TestExtractEntities(t *testing.T) {
	ctx := context.Background()

	t.Run("uses the default classifier", func(t *testing.T) {
		c := &stubClassifier{tagged: "<PERSON>Alice</PERSON> in <LOCATION>Paris</LOCATION>"}
		registry := &stubRegistry{classifiers: map[string]models.Classifier{"english": c}, def: "english"}

		group, err := ExtractEntities(ctx, registry, "", "Alice in Paris")
		require.NoError(t, err)
		assert.Equal(t, 1, c.calls)
		assert.Equal(t, []string{"person", "location"}, group.Types())
	})

	t.Run("whitespace input short-circuits", func(t *testing.T) {
		c := &stubClassifier{tagged: "<PERSON>Alice</PERSON>"}
		registry := &stubRegistry{classifiers: map[string]models.Classifier{"english": c}, def: "english"}

		group, err := ExtractEntities(ctx, registry, "", " \t\n ")
		require.NoError(t, err)
		assert.True(t, group.IsEmpty())
		assert.Zero(t, c.calls)
	})

	t.Run("unknown classifier is an invalid argument", func(t *testing.T) {
		registry := &stubRegistry{classifiers: map[string]models.Classifier{}, def: "english"}

		_, err := ExtractEntities(ctx, registry, "german", "Alice")
		assert.ErrorIs(t, err, models.ErrInvalidArgument)
		var unknown *models.UnknownClassifierError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "german", unknown.Name)
	})

	t.Run("classifier failure is wrapped", func(t *testing.T) {
		c := &stubClassifier{err: models.ErrClassifierTimeout}
		registry := &stubRegistry{classifiers: map[string]models.Classifier{"english": c}, def: "english"}

		_, err := ExtractEntities(ctx, registry, "", "Alice")
		assert.ErrorIs(t, err, models.ErrClassifierTimeout)
		var extractorErr *ExtractorError
		assert.True(t, errors.As(err, &extractorErr))
	})
}
