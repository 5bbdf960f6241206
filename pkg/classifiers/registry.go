package classifiers

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/nearbyfyi/ner/config"
	"github.com/nearbyfyi/ner/internal"
	"github.com/nearbyfyi/ner/pkg/models"
)

var log = internal.GetLogger()

var _ models.ClassifierRegistry = &Registry{}

// Registry holds the classifiers loaded at startup. It is never modified
// after construction and is safe for concurrent use.
type Registry struct {
	defaultName string
	classifiers map[string]models.Classifier
}

// NewRegistry loads every configured classifier. Any classifier that cannot
// be loaded fails the whole registry.
func NewRegistry(ctx context.Context, cfg *config.ClassifiersConfig) (*Registry, error) {
	names := make([]string, 0, len(cfg.Models))
	for name := range cfg.Models {
		names = append(names, name)
	}
	sort.Strings(names)

	classifiers := make(map[string]models.Classifier, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		classifier, err := load(name, cfg.Models[name])
		if err != nil {
			return nil, err
		}
		classifiers[name] = Guard(name, classifier, cfg.CallTimeout)
	}

	return New(cfg.Default, classifiers)
}

// New builds a Registry from classifiers that are already loaded.
func New(defaultName string, classifiers map[string]models.Classifier) (*Registry, error) {
	r := &Registry{
		defaultName: strings.ToLower(defaultName),
		classifiers: make(map[string]models.Classifier, len(classifiers)),
	}
	for name, c := range classifiers {
		r.classifiers[strings.ToLower(name)] = c
	}

	if len(r.classifiers) == 0 {
		return nil, config.ErrNoClassifiers
	}
	if _, ok := r.classifiers[r.defaultName]; !ok {
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDefaultClassifier, defaultName)
	}

	return r, nil
}

func load(name string, cfg config.ClassifierConfig) (models.Classifier, error) {
	if cfg.URL != "" {
		remote, err := NewRemote(name, cfg)
		if err != nil {
			return nil, err
		}
		log.Infof("Classifier %q: remote tagger at %s", name, cfg.URL)
		return remote, nil
	}

	info, err := os.Stat(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("no such classifier file %q: %w", cfg.Path, err)
	}

	gazetteer, err := LoadGazetteer(cfg.Path)
	if err != nil {
		return nil, err
	}
	log.Infof(
		"Classifier %q: loaded %s (%s, %d phrases)",
		name,
		cfg.Path,
		humanize.Bytes(uint64(info.Size())),
		gazetteer.Size(),
	)

	return gazetteer, nil
}

// Classifier returns the named classifier, or the default one when name is
// empty. Names are case-insensitive.
func (r *Registry) Classifier(name string) (models.Classifier, error) {
	if name == "" {
		name = r.defaultName
	}

	c, ok := r.classifiers[strings.ToLower(name)]
	if !ok {
		return nil, models.NewUnknownClassifierError(name)
	}
	return c, nil
}

func (r *Registry) Default() string {
	return r.defaultName
}

// Names returns the configured classifier names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.classifiers))
	for name := range r.classifiers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
