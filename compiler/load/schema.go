// Package load parses the two generation-time input documents: a SHACL
// shapes file (Turtle) and a JSON-LD context file. The loaded structures
// are plain data, read-only after parse, and exist only for the duration
// of a generation run.
package load

// ClassShape is the structural constraint set of one target class,
// extracted from a node shape in the shapes document.
type ClassShape struct {
	// Shape is the IRI of the originating node shape.
	Shape string `json:"shape,omitempty"`
	// Target is the IRI of the class the shape constrains.
	Target string `json:"target,omitempty"`
	// Properties holds the property constraint sets in document order.
	Properties []*PropertyConstraint `json:"properties,omitempty"`
}

// Unbounded marks an absent sh:maxCount.
const Unbounded = -1

// PropertyConstraint is one property block of a node shape.
type PropertyConstraint struct {
	// Path is the predicate IRI. Always set: blocks without sh:path are
	// dropped during parsing.
	Path string `json:"path,omitempty"`
	// Name and Description carry the optional human-readable annotations.
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	// Datatype is the sh:datatype IRI, if declared.
	Datatype string `json:"datatype,omitempty"`
	// Class is the sh:class (or sh:node target class) IRI, if declared.
	// When both Datatype and Class are present, Class wins.
	Class string `json:"class,omitempty"`
	// MinCount and MaxCount are the cardinality bounds. Absent bounds
	// default to (0, Unbounded).
	MinCount int `json:"min_count,omitempty"`
	MaxCount int `json:"max_count,omitempty"`
	// String facets.
	MinLength *int   `json:"min_length,omitempty"`
	MaxLength *int   `json:"max_length,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
	// Numeric facets.
	MinInclusive *float64 `json:"min_inclusive,omitempty"`
	MaxInclusive *float64 `json:"max_inclusive,omitempty"`
	// In holds the sh:in enumeration values, HasValue the sh:hasValue
	// fixed value. Both are lexical forms.
	In       []string `json:"in,omitempty"`
	HasValue string   `json:"has_value,omitempty"`
}

// IsReference reports whether the constraint selects an object property.
func (p *PropertyConstraint) IsReference() bool { return p.Class != "" }

// PropertyTerm is a context entry mapping a short name to a predicate with
// an optional typing hint.
type PropertyTerm struct {
	// ID is the predicate IRI, possibly still prefixed.
	ID string `json:"id,omitempty"`
	// Type is the "@type" facet: "@id" marks an object-valued property, a
	// concrete datatype IRI marks a literal, empty means opaque string.
	Type string `json:"type,omitempty"`
}

// IsObject reports whether the typing hint marks an object-valued property.
func (t PropertyTerm) IsObject() bool { return t.Type == "@id" }

// Context is the parsed term-mapping document: three independent tables,
// any of which may be empty.
type Context struct {
	// Prefixes maps prefix names to namespace IRIs.
	Prefixes map[string]string `json:"prefixes,omitempty"`
	// Classes maps short class names to class IRIs (possibly prefixed).
	Classes map[string]string `json:"classes,omitempty"`
	// Properties maps short property names to predicate terms.
	Properties map[string]PropertyTerm `json:"properties,omitempty"`
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{
		Prefixes:   make(map[string]string),
		Classes:    make(map[string]string),
		Properties: make(map[string]PropertyTerm),
	}
}

// Expand resolves a possibly prefixed token ("dct:title") against the
// prefix table. Unknown prefixes fail open: the token is returned as-is,
// since context coverage is best-effort and never gates generation.
func (c *Context) Expand(token string) string {
	if c == nil {
		return token
	}
	for i := 0; i < len(token); i++ {
		if token[i] == ':' {
			// Absolute IRIs ("http://...", "urn:...") pass through.
			if i+2 < len(token) && token[i+1] == '/' && token[i+2] == '/' {
				return token
			}
			if ns, ok := c.Prefixes[token[:i]]; ok {
				return ns + token[i+1:]
			}
			return token
		}
	}
	if iri, ok := c.Classes[token]; ok && iri != token {
		return c.Expand(iri)
	}
	return token
}
