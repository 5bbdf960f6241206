package formatters

import (
	"strings"

	"github.com/nearbyfyi/ner/pkg/models"
)

// csvFormatter renders one line per (type, entity) pair:
//
//	"person", "Alice"
//
// Both fields are always quoted and embedded quotes are doubled (RFC 4180),
// so the output reads back with encoding/csv and TrimLeadingSpace.
type csvFormatter struct{}

func (csvFormatter) ContentType() string { return ContentTypeText }

func (csvFormatter) Empty() string { return "" }

func (csvFormatter) Format(group *models.EntityGroup) string {
	if group.IsEmpty() {
		return ""
	}

	pairs := group.Pairs()

	size := 0
	for i := range pairs {
		pairs[i].Type = quoteCSV(pairs[i].Type)
		pairs[i].Entity = quoteCSV(pairs[i].Entity)
		size += len(pairs[i].Type) + len(pairs[i].Entity) + 3 // ", " and \n
	}

	var b strings.Builder
	b.Grow(size)
	for _, p := range pairs {
		b.WriteString(p.Type)
		b.WriteString(", ")
		b.WriteString(p.Entity)
		b.WriteByte('\n')
	}

	return b.String()
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
