package formatters

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/nearbyfyi/ner/pkg/models"
)

const emptyJSON = `{"entities":{}}`

// jsonFormatter renders
//
//	{"entities":{"person":["Alice","Bob"],"location":"Paris"}}
//
// A type with a single entity maps to a string, a type with more maps to an
// array. Output is minified and keeps the group's type order.
type jsonFormatter struct{}

func (jsonFormatter) ContentType() string { return ContentTypeJSON }

func (jsonFormatter) Empty() string { return emptyJSON }

func (f jsonFormatter) Format(group *models.EntityGroup) string {
	if group.IsEmpty() {
		return emptyJSON
	}

	types := group.Types()

	// {"entities":{}} plus a comma between types
	size := len(emptyJSON) + len(types) - 1
	quotedTypes := make([]string, len(types))
	quotedEntities := make([][]string, len(types))
	for i, t := range types {
		quotedTypes[i] = quoteJSON(t)
		size += len(quotedTypes[i]) + 1 // "...":

		entities := group.Entities(t)
		quoted := make([]string, len(entities))
		for j, e := range entities {
			quoted[j] = quoteJSON(e)
			size += len(quoted[j])
		}
		if len(entities) > 1 {
			size += 2 + len(entities) - 1 // [...] and commas
		}
		quotedEntities[i] = quoted
	}

	var b strings.Builder
	b.Grow(size)
	b.WriteString(`{"entities":{`)
	for i, t := range quotedTypes {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(t)
		b.WriteByte(':')

		entities := quotedEntities[i]
		if len(entities) == 1 {
			b.WriteString(entities[0])
			continue
		}
		b.WriteByte('[')
		b.WriteString(strings.Join(entities, ","))
		b.WriteByte(']')
	}
	b.WriteString("}}")

	return b.String()
}

// quoteJSON returns s as a JSON string literal. HTML characters are left
// alone; quotes, backslashes and control characters are escaped.
func quoteJSON(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
