// Package formatters serializes an EntityGroup into the response formats the
// classify endpoints offer. Extraction runs once; a Formatter is picked by
// content negotiation and only renders the result.
package formatters

import (
	"mime"
	"strconv"
	"strings"

	"github.com/nearbyfyi/ner/pkg/models"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain"
	ContentTypeCSV  = "text/csv"
)

// Formatter renders an EntityGroup.
type Formatter interface {
	// ContentType is the media type of the rendered output.
	ContentType() string
	// Empty is the rendering of a group with no entities.
	Empty() string
	Format(group *models.EntityGroup) string
}

var (
	JSON Formatter = jsonFormatter{}
	CSV  Formatter = csvFormatter{}
)

// ByName returns the formatter for "json" or "csv".
func ByName(name string) (Formatter, bool) {
	switch strings.ToLower(name) {
	case "json":
		return JSON, true
	case "csv", "text":
		return CSV, true
	}
	return nil, false
}

// ForAccept picks a formatter from an Accept header. JSON is chosen when
// application/json is acceptable and not ranked below a text type; every
// other case falls back to CSV, served as text/plain.
func ForAccept(accept string) Formatter {
	jsonQ, textQ := -1.0, -1.0

	for _, part := range strings.Split(accept, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		mediaType, params, err := mime.ParseMediaType(part)
		if err != nil {
			continue
		}
		q := 1.0
		if raw, ok := params["q"]; ok {
			if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
				q = parsed
			}
		}

		switch mediaType {
		case ContentTypeJSON:
			jsonQ = max(jsonQ, q)
		case ContentTypeText, ContentTypeCSV, "text/*":
			textQ = max(textQ, q)
		}
	}

	if jsonQ > 0 && jsonQ >= textQ {
		return JSON
	}
	return CSV
}
