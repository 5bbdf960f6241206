package models

import "context"

// Classifier turns raw text into inline-XML tagged text, wrapping every
// recognised entity in <TYPE>...</TYPE>. Implementations must be safe for
// concurrent use.
type Classifier interface {
	Tag(ctx context.Context, text string) (string, error)
}

// ClassifierRegistry gives access to the classifiers loaded at startup. It
// is read-only once built.
type ClassifierRegistry interface {
	// Classifier returns the named classifier. An empty name selects the
	// default classifier.
	Classifier(name string) (Classifier, error)
	Default() string
	Names() []string
}
