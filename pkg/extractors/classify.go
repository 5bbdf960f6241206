package extractors

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/nearbyfyi/ner/pkg/models"
)

const tracerName = "github.com/nearbyfyi/ner/pkg/extractors"

// ExtractEntities runs text through the named classifier (the default one
// when name is empty) and groups the recognised entities. Text that is
// empty after trimming yields an empty group without calling the
// classifier.
func ExtractEntities(
	ctx context.Context,
	registry models.ClassifierRegistry,
	name string,
	text string,
) (*models.EntityGroup, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.NewEntityGroup(), nil
	}

	if name == "" {
		name = registry.Default()
	}

	ctx, span := otel.Tracer(tracerName).Start(
		ctx,
		"ExtractEntities",
		trace.WithAttributes(
			attribute.String("ner.classifier", name),
			attribute.Int("ner.text_bytes", len(text)),
		),
	)
	defer span.End()

	classifier, err := registry.Classifier(name)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	tagged, err := classifier.Tag(ctx, text)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "classifier failed to tag text")
		return nil, NewExtractorError("classifier failed to tag text", err)
	}

	group := Extract(tagged)
	span.SetAttributes(attribute.Int("ner.entity_types", group.Len()))
	log.Debugf("extracted %d entity types from %d bytes of text", group.Len(), len(text))

	return group, nil
}
