package classifiers

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/nearbyfyi/ner/pkg/models"
)

var _ models.Classifier = &Gazetteer{}

// validType limits entity types to names that survive inline-XML tagging.
var validType = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// markupEscaper keeps input text from being read back as inline-XML tags.
var markupEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// gazetteerModel is the on-disk model format:
//
//	name: english.3class
//	entities:
//	  PERSON: [Alice Smith, Bob]
//	  LOCATION: [Paris, New York]
type gazetteerModel struct {
	Name     string              `yaml:"name"`
	Entities map[string][]string `yaml:"entities"`
}

// Gazetteer tags every known phrase in the text, preferring the longest
// match at each position. Matching is case-sensitive and happens on word
// boundaries, where a word is a run of letters and digits. A Gazetteer is
// immutable after loading and safe for concurrent use.
type Gazetteer struct {
	name      string
	phrases   map[string]string
	maxTokens int
}

// LoadGazetteer reads a gazetteer model from path. Files ending in .gz are
// decompressed.
func LoadGazetteer(path string) (*Gazetteer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("no such classifier file %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("error reading classifier %q: %w", path, err)
		}
		defer gz.Close()
		r = bufio.NewReader(gz)
	}

	g, err := ParseGazetteer(r)
	if err != nil {
		return nil, fmt.Errorf("error reading classifier %q: %w", path, err)
	}
	return g, nil
}

// ParseGazetteer decodes a YAML gazetteer model.
func ParseGazetteer(r io.Reader) (*Gazetteer, error) {
	var model gazetteerModel
	if err := yaml.NewDecoder(r).Decode(&model); err != nil {
		return nil, err
	}
	if len(model.Entities) == 0 {
		return nil, fmt.Errorf("model %q has no entities", model.Name)
	}

	g := &Gazetteer{
		name:    model.Name,
		phrases: make(map[string]string),
	}
	for entityType, phrases := range model.Entities {
		if !validType.MatchString(entityType) {
			return nil, fmt.Errorf("invalid entity type %q", entityType)
		}
		for _, phrase := range phrases {
			words := tokenize(phrase)
			if len(words) == 0 {
				log.Warnf("gazetteer %q: skipping %s phrase %q with no words", model.Name, entityType, phrase)
				continue
			}
			key := phraseKey(phrase, words)
			if existing, ok := g.phrases[key]; ok && existing != entityType {
				return nil, fmt.Errorf("phrase %q is listed as both %s and %s", phrase, existing, entityType)
			}
			g.phrases[key] = entityType
			g.maxTokens = max(g.maxTokens, len(words))
		}
	}

	return g, nil
}

// Name is the model name declared in the file.
func (g *Gazetteer) Name() string {
	return g.name
}

// Size is the number of distinct phrases.
func (g *Gazetteer) Size() int {
	return len(g.phrases)
}

// Tag wraps every known phrase in <TYPE>...</TYPE>. The markup characters
// &, < and > in the input are escaped as XML entities.
func (g *Gazetteer) Tag(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	words := tokenize(text)

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for i := 0; i < len(words); {
		n, entityType := g.longestMatch(text, words[i:])
		if n == 0 {
			i++
			continue
		}
		start, end := words[i].start, words[i+n-1].end
		markupEscaper.WriteString(&b, text[last:start])
		b.WriteString("<" + entityType + ">")
		markupEscaper.WriteString(&b, text[start:end])
		b.WriteString("</" + entityType + ">")
		last = end
		i += n
	}
	markupEscaper.WriteString(&b, text[last:])

	return b.String(), nil
}

func (g *Gazetteer) longestMatch(text string, words []span) (int, string) {
	for n := min(g.maxTokens, len(words)); n > 0; n-- {
		if entityType, ok := g.phrases[phraseKey(text, words[:n])]; ok {
			return n, entityType
		}
	}
	return 0, ""
}

type span struct {
	start, end int
}

// tokenize returns the byte spans of the words in s.
func tokenize(s string) []span {
	var words []span
	start := -1
	for i, r := range s {
		isWord := unicode.IsLetter(r) || unicode.IsDigit(r)
		switch {
		case isWord && start == -1:
			start = i
		case !isWord && start != -1:
			words = append(words, span{start, i})
			start = -1
		}
	}
	if start != -1 {
		words = append(words, span{start, len(s)})
	}
	return words
}

func phraseKey(s string, words []span) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = s[w.start:w.end]
	}
	return strings.Join(parts, " ")
}
