package load

import (
	"log/slog"
	"os"
	"strings"

	gojson "github.com/goccy/go-json"
)

// contextKey is the JSON-LD member holding the root term mapping.
const contextKey = "@context"

// ParseContextFile reads and parses a JSON-LD context document.
// Diagnostics for dropped entries go to log; a nil log falls back to
// slog.Default.
func ParseContextFile(path string, log *slog.Logger) (*Context, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, NewParseError(path, 0, "cannot read document", err)
	}
	return ParseContext(path, src, log)
}

// ParseContext parses a JSON-LD context document. The root "@context"
// member is required and must be an object; everything below it is
// best-effort. Entries classify into three independent tables:
//
//   - string values ending in "/" or "#" are prefix expansions
//   - other string values are class aliases (possibly themselves prefixed)
//   - objects carrying "@id" are property aliases with an optional "@type"
//     hint ("@id" marks an object property, a datatype IRI marks a literal,
//     absence means opaque string)
//
// Object entries without "@id" are dropped with a warning.
func ParseContext(filename string, src []byte, log *slog.Logger) (*Context, error) {
	if log == nil {
		log = slog.Default()
	}
	var doc map[string]gojson.RawMessage
	if err := gojson.Unmarshal(src, &doc); err != nil {
		return nil, NewParseError(filename, 0, "context document is not a JSON object", err)
	}
	raw, ok := doc[contextKey]
	if !ok {
		return nil, NewParseError(filename, 0, `missing required "@context" mapping`, nil)
	}
	var mapping map[string]gojson.RawMessage
	if err := gojson.Unmarshal(raw, &mapping); err != nil {
		return nil, NewParseError(filename, 0, `"@context" is not an object`, err)
	}

	ctx := NewContext()
	for term, value := range mapping {
		if strings.HasPrefix(term, "@") {
			// Keyword entries (@vocab, @version, ...) are not term mappings.
			continue
		}
		var s string
		if err := gojson.Unmarshal(value, &s); err == nil {
			if strings.HasSuffix(s, "/") || strings.HasSuffix(s, "#") {
				ctx.Prefixes[term] = s
			} else {
				ctx.Classes[term] = s
			}
			continue
		}
		var obj struct {
			ID   string `json:"@id"`
			Type string `json:"@type"`
		}
		if err := gojson.Unmarshal(value, &obj); err != nil {
			return nil, NewParseError(filename, 0, "context entry "+quoteTerm(term)+" is neither a string nor an object", err)
		}
		if obj.ID == "" {
			log.Warn("dropping context entry without @id", "file", filename, "term", term)
			continue
		}
		ctx.Properties[term] = PropertyTerm{ID: obj.ID, Type: obj.Type}
	}
	return ctx, nil
}

// quoteTerm quotes a term for error messages.
func quoteTerm(s string) string { return `"` + s + `"` }
