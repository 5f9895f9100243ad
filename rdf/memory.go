package rdf

import (
	"sync"

	"github.com/google/uuid"
)

// MemoryGraph is an in-memory triple index implementing Graph. It backs the
// test suites and small tools; production deployments plug in their own
// Graph implementation.
//
// The zero value is not usable; call NewMemoryGraph.
type MemoryGraph struct {
	mu sync.RWMutex
	// spo index: subject key -> predicate -> objects in insertion order.
	spo map[string]map[IRI][]Term
	// subjects preserves first-seen subject order for iteration.
	subjects []Term
	seen     map[string]bool
}

// NewMemoryGraph returns an empty graph.
func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{
		spo:  make(map[string]map[IRI][]Term),
		seen: make(map[string]bool),
	}
}

// termKey returns a collision-free map key for a subject term.
func termKey(t Term) string {
	switch t.TermKind() {
	case KindBlank:
		return "_:" + t.String()
	default:
		return "<" + t.String() + ">"
	}
}

// NewBlankNode allocates a fresh blank node with a unique label.
func (g *MemoryGraph) NewBlankNode() BlankNode {
	return BlankNode("b" + uuid.NewString())
}

// Add inserts one triple. Duplicate triples are kept; callers that care
// about set semantics deduplicate upstream.
func (g *MemoryGraph) Add(t Triple) {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := termKey(t.Subject)
	po, ok := g.spo[key]
	if !ok {
		po = make(map[IRI][]Term)
		g.spo[key] = po
	}
	po[t.Predicate] = append(po[t.Predicate], t.Object)
	if !g.seen[key] {
		g.seen[key] = true
		g.subjects = append(g.subjects, t.Subject)
	}
}

// AddLiteral is shorthand for adding a literal-object triple.
func (g *MemoryGraph) AddLiteral(subject Term, predicate IRI, lexical string, datatype IRI) {
	g.Add(Triple{Subject: subject, Predicate: predicate, Object: Literal{Lexical: lexical, Datatype: datatype}})
}

// AddObject is shorthand for adding a resource-object triple.
func (g *MemoryGraph) AddObject(subject Term, predicate IRI, object Term) {
	g.Add(Triple{Subject: subject, Predicate: predicate, Object: object})
}

// LiteralValues implements Graph.
func (g *MemoryGraph) LiteralValues(subject Term, predicate IRI) []Literal {
	g.mu.RLock()
	defer g.mu.RUnlock()
	objs := g.spo[termKey(subject)][predicate]
	var out []Literal
	for _, o := range objs {
		if lit, ok := o.(Literal); ok {
			out = append(out, lit)
		}
	}
	return out
}

// ObjectValues implements Graph.
func (g *MemoryGraph) ObjectValues(subject Term, predicate IRI) []Term {
	g.mu.RLock()
	defer g.mu.RUnlock()
	objs := g.spo[termKey(subject)][predicate]
	var out []Term
	for _, o := range objs {
		if o.TermKind() != KindLiteral {
			out = append(out, o)
		}
	}
	return out
}

// Subjects returns all distinct subjects in first-seen order.
func (g *MemoryGraph) Subjects() []Term {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Term, len(g.subjects))
	copy(out, g.subjects)
	return out
}

// SubjectsWith returns the subjects holding at least one
// (subject, predicate, object) triple, in first-seen order.
func (g *MemoryGraph) SubjectsWith(predicate IRI, object Term) []Term {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []Term
	for _, s := range g.subjects {
		for _, o := range g.spo[termKey(s)][predicate] {
			if o == object {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// Len returns the number of triples in the graph.
func (g *MemoryGraph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, po := range g.spo {
		for _, objs := range po {
			n += len(objs)
		}
	}
	return n
}

var _ Graph = (*MemoryGraph)(nil)
