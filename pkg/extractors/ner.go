package extractors

import (
	"regexp"
	"strings"

	"github.com/nearbyfyi/ner/pkg/models"
)

// closingTag matches any closing tag. The tag name is not checked against
// the opening tag; classifiers emit well-formed, non-nested spans.
var closingTag = regexp.MustCompile(`</[^>]+>`)

// Extract parses inline-XML tagged text such as
//
//	<PERSON>Alice</PERSON> met <PERSON>Bob</PERSON> in <LOCATION>Paris</LOCATION>
//
// into an EntityGroup keyed by lower-cased type. Fragments that do not
// contain an opening tag, or whose type or entity is empty, are skipped.
// Extract never fails; malformed input only yields fewer entities.
func Extract(tagged string) *models.EntityGroup {
	group := models.NewEntityGroup()

	for _, fragment := range closingTag.Split(tagged, -1) {
		open := strings.IndexByte(fragment, '<')
		if open == -1 {
			continue
		}
		fragment = fragment[open:]

		end := strings.IndexByte(fragment, '>')
		if end == -1 {
			continue
		}

		entityType := fragment[1:end]
		if entityType == "" {
			continue
		}

		entity := strings.TrimSpace(fragment[end+1:])
		if entity == "" {
			continue
		}

		group.Add(strings.ToLower(entityType), entity)
	}

	return group
}
