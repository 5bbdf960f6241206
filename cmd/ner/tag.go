package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/nearbyfyi/ner/config"
	"github.com/nearbyfyi/ner/pkg/classifiers"
	"github.com/nearbyfyi/ner/pkg/extractors"
	"github.com/nearbyfyi/ner/pkg/formatters"
	"github.com/nearbyfyi/ner/pkg/models"
)

type tagOptions struct {
	Classifier string
	Format     string
}

// tag classifies everything read from in and writes the entities to out.
func tag(ctx context.Context, cfg *config.Config, opts tagOptions, in io.Reader, out io.Writer) error {
	formatter, ok := formatters.ByName(opts.Format)
	if !ok {
		return fmt.Errorf("%w: unsupported format %q", models.ErrInvalidArgument, opts.Format)
	}

	text, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read text: %w", err)
	}

	registry, err := classifiers.NewRegistry(ctx, &cfg.Classifiers)
	if err != nil {
		return err
	}

	return tagWith(ctx, registry, opts.Classifier, formatter, string(text), out)
}

func tagWith(
	ctx context.Context,
	registry models.ClassifierRegistry,
	name string,
	formatter formatters.Formatter,
	text string,
	out io.Writer,
) error {
	group, err := extractors.ExtractEntities(ctx, registry, name, text)
	if err != nil {
		return err
	}

	rendered := formatter.Format(group)
	if formatter == formatters.JSON {
		rendered += "\n"
	}
	_, err = io.WriteString(out, rendered)
	return err
}
