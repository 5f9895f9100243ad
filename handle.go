// Package ontogen is the runtime support library for generated graph
// bindings. Generated wrapper types hold a Handle, answer their property
// reads through the conversion helpers in this package, and self-register
// into the materialization Registry so that application code (and other
// wrappers) can turn any (graph, node) pair into a typed view on demand.
package ontogen

import (
	"sort"

	"github.com/semforge/ontogen/rdf"
)

// Handle is the (graph, node) pair a wrapper reads from. Handles are plain
// values; copying one is free and carries no state beyond the two
// references.
type Handle struct {
	Graph rdf.Graph
	Node  rdf.Term
}

// IsZero reports whether the handle is unbound.
func (h Handle) IsZero() bool { return h.Graph == nil || h.Node == nil }

// Resource is implemented by every generated wrapper and embedded by every
// generated interface. It exposes the backing pair so external tooling
// (validators, exporters) can bypass the typed view, and the predicate set
// the wrapper's shape declared, for generic introspection of mapped versus
// unmapped triples on a node.
type Resource interface {
	// Handle returns the backing (graph, node) pair.
	Handle() Handle

	// KnownPredicates returns the immutable predicate set of the
	// originating shape.
	KnownPredicates() PredicateSet
}

// PredicateSet is an immutable set of predicate IRIs. Wrappers share one
// package-level set per class; callers must not mutate it.
type PredicateSet struct {
	set map[rdf.IRI]struct{}
}

// NewPredicateSet builds a set from the given predicates.
func NewPredicateSet(predicates ...rdf.IRI) PredicateSet {
	set := make(map[rdf.IRI]struct{}, len(predicates))
	for _, p := range predicates {
		set[p] = struct{}{}
	}
	return PredicateSet{set: set}
}

// Contains reports whether the predicate is part of the set.
func (s PredicateSet) Contains(predicate rdf.IRI) bool {
	_, ok := s.set[predicate]
	return ok
}

// Len returns the number of predicates in the set.
func (s PredicateSet) Len() int { return len(s.set) }

// Predicates returns the members in lexical order.
func (s PredicateSet) Predicates() []rdf.IRI {
	out := make([]rdf.IRI, 0, len(s.set))
	for p := range s.set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
