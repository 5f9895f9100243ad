// Package rdf defines the term model and the read-only graph contract
// consumed by generated wrappers. The package is deliberately small: the
// full storage and query engine is a collaborator supplied by the host
// application, and wrappers only ever need the two lookup calls declared
// on Graph.
package rdf

import "strings"

// TermKind discriminates the three kinds of graph terms.
type TermKind uint8

const (
	// KindIRI is a named resource.
	KindIRI TermKind = iota
	// KindBlank is an anonymous resource.
	KindBlank
	// KindLiteral is a datatyped value.
	KindLiteral
)

// Term is a node or value appearing in a triple.
type Term interface {
	TermKind() TermKind
	String() string
}

// IRI is a named resource identifier.
type IRI string

// TermKind implements Term.
func (IRI) TermKind() TermKind { return KindIRI }

// String returns the raw identifier without angle brackets.
func (i IRI) String() string { return string(i) }

// LocalName returns the fragment after the last '#' or '/' separator.
// It returns the full IRI when no separator is present.
func (i IRI) LocalName() string {
	s := string(i)
	if idx := strings.LastIndexAny(s, "#/"); idx >= 0 && idx < len(s)-1 {
		return s[idx+1:]
	}
	return s
}

// Namespace returns the IRI up to and including the last '#' or '/'.
func (i IRI) Namespace() string {
	s := string(i)
	if idx := strings.LastIndexAny(s, "#/"); idx >= 0 {
		return s[:idx+1]
	}
	return ""
}

// BlankNode is an anonymous resource, identified by a graph-local label.
type BlankNode string

// TermKind implements Term.
func (BlankNode) TermKind() TermKind { return KindBlank }

// String returns the label with the customary "_:" prefix.
func (b BlankNode) String() string { return "_:" + string(b) }

// Literal is a datatyped value with its lexical form.
type Literal struct {
	// Lexical is the raw string form of the value.
	Lexical string
	// Datatype is the declared datatype IRI. Empty means xsd:string.
	Datatype IRI
	// Lang is the optional language tag of a language-tagged string.
	Lang string
}

// TermKind implements Term.
func (Literal) TermKind() TermKind { return KindLiteral }

// String returns the lexical form.
func (l Literal) String() string { return l.Lexical }

// Triple is one labeled edge of the graph.
type Triple struct {
	Subject   Term
	Predicate IRI
	Object    Term
}

// Graph is the read-only lookup contract wrappers depend on. Implementations
// own their concurrency and consistency semantics; both calls are expected
// to be cheap, synchronous point lookups.
type Graph interface {
	// LiteralValues returns the literal objects of (subject, predicate, *)
	// triples, in insertion order.
	LiteralValues(subject Term, predicate IRI) []Literal

	// ObjectValues returns the resource objects (IRIs and blank nodes) of
	// (subject, predicate, *) triples, in insertion order.
	ObjectValues(subject Term, predicate IRI) []Term
}
