package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNoClassifiers            = errors.New("classifiers.models must configure at least one classifier")
	ErrDefaultClassifierNotSet  = errors.New("classifiers.default must be set")
	ErrUnknownDefaultClassifier = errors.New("classifiers.default is not a configured classifier")
)

var validate = validator.New()

// Validate checks the struct-level constraints and that the default
// classifier is one of the configured classifiers.
func (c *Config) Validate() error {
	if len(c.Classifiers.Models) == 0 {
		return ErrNoClassifiers
	}
	if c.Classifiers.Default == "" {
		return ErrDefaultClassifierNotSet
	}
	if _, ok := c.Classifiers.Models[c.Classifiers.Default]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDefaultClassifier, c.Classifiers.Default)
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}
