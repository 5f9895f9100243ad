package gen

import (
	"fmt"
	"sort"

	"github.com/semforge/ontogen/compiler/load"
	"github.com/semforge/ontogen/rdf"
)

type (
	// Graph is the canonical ontology model: the merge of all class shapes
	// with context-resolved aliases. It is shape-authoritative — the
	// context never introduces classes or properties, it only resolves
	// short names and fills in typing hints the shapes left out.
	Graph struct {
		*Config
		// Classes holds the class bindings ordered by class IRI.
		Classes []*Class
		// Context is the parsed term mapping used during the merge.
		Context *load.Context

		classes map[string]*Class // by class IRI
		byShape map[string]*Class // by originating shape IRI
	}

	// Class is the generation-time binding of one target class.
	Class struct {
		cfg   *Config
		shape *load.ClassShape
		// Name is the Go name of the generated interface.
		Name string
		// IRI is the resolved target class identifier.
		IRI string
		// Shape is the IRI of the originating node shape.
		Shape string
		// Properties holds the property bindings in document order.
		Properties []*Property
		props      map[string]*Property // by predicate IRI
	}

	// Property is the generation-time binding of one property constraint.
	Property struct {
		cls *Class
		def *load.PropertyConstraint
		// Name is the Go name of the accessor method.
		Name string
		// Predicate is the resolved predicate IRI.
		Predicate string
		// Comment carries sh:name / sh:description for the doc comment.
		Comment string
		// Type is the resolved type descriptor.
		Type TypeDescriptor
	}
)

// NewGraph merges the parsed shapes and context into the ontology model.
// Alias resolution fails open: an unresolved token is kept verbatim, since
// context coverage is best-effort and never gates generation. Structural
// problems fail fast: duplicate predicates within a class, accessor name
// collisions, and reference targets with no shape of their own.
func NewGraph(c *Config, shapes []*load.ClassShape, ctx *load.Context) (*Graph, error) {
	if c == nil {
		c = &Config{}
	}
	if ctx == nil {
		ctx = load.NewContext()
	}
	g := &Graph{
		Config:  c,
		Context: ctx,
		classes: make(map[string]*Class, len(shapes)),
		byShape: make(map[string]*Class, len(shapes)),
	}
	for _, shape := range shapes {
		cls, err := g.newClass(shape)
		if err != nil {
			return nil, err
		}
		if dup, ok := g.classes[cls.IRI]; ok {
			return nil, NewModelError(cls.IRI, "",
				fmt.Sprintf("class constrained by both %s and %s", dup.Shape, cls.Shape), nil)
		}
		g.Classes = append(g.Classes, cls)
		g.classes[cls.IRI] = cls
		g.byShape[cls.Shape] = cls
	}
	sort.Slice(g.Classes, func(i, j int) bool { return g.Classes[i].IRI < g.Classes[j].IRI })
	if err := g.resolveReferences(); err != nil {
		return nil, err
	}
	return g, nil
}

// newClass builds one class binding from its shape.
func (g *Graph) newClass(shape *load.ClassShape) (*Class, error) {
	iri := g.Context.Expand(shape.Target)
	cls := &Class{
		cfg:   g.Config,
		shape: shape,
		Name:  g.classGoName(iri),
		IRI:   iri,
		Shape: shape.Shape,
		props: make(map[string]*Property, len(shape.Properties)),
	}
	names := map[string]string{} // accessor name -> predicate
	for _, pc := range shape.Properties {
		p, err := g.newProperty(cls, pc)
		if err != nil {
			return nil, err
		}
		if _, ok := cls.props[p.Predicate]; ok {
			return nil, NewModelError(cls.Name, p.Predicate, "predicate redeclared", nil)
		}
		if prev, ok := names[p.Name]; ok {
			return nil, NewModelError(cls.Name, p.Predicate,
				fmt.Sprintf("accessor %s collides with predicate %s", p.Name, prev), nil)
		}
		if p.Name == "Handle" || p.Name == "KnownPredicates" {
			return nil, NewModelError(cls.Name, p.Predicate,
				fmt.Sprintf("accessor %s shadows a Resource method", p.Name), nil)
		}
		names[p.Name] = p.Predicate
		cls.Properties = append(cls.Properties, p)
		cls.props[p.Predicate] = p
	}
	return cls, nil
}

// newProperty builds one property binding, applying the context typing
// hint only where the shape is silent.
func (g *Graph) newProperty(cls *Class, pc *load.PropertyConstraint) (*Property, error) {
	predicate := g.Context.Expand(pc.Path)
	datatype := g.Context.Expand(pc.Datatype)
	class := g.Context.Expand(pc.Class)

	term, hint, hasHint := g.propertyHint(predicate)
	iriValued := false
	if pc.Datatype == "" && pc.Class == "" && hasHint {
		if hint.IsObject() {
			// An @id hint without a shape-declared target class cannot name
			// a referenced interface; the value surfaces as its IRI string.
			iriValued = true
		} else if hint.Type != "" {
			datatype = g.Context.Expand(hint.Type)
		}
	}

	name := term
	if name == "" {
		name = rdf.IRI(predicate).LocalName()
	}
	p := &Property{
		cls:       cls,
		def:       pc,
		Name:      goName(name),
		Predicate: predicate,
		Comment:   propertyComment(pc),
		Type:      MapType(datatype, class, pc.MinCount, pc.MaxCount),
	}
	if iriValued {
		p.Type.Scalar = ScalarIRI
	}
	return p, nil
}

// propertyHint finds the context term mapped to the given predicate.
func (g *Graph) propertyHint(predicate string) (string, load.PropertyTerm, bool) {
	for term, pt := range g.Context.Properties {
		if g.Context.Expand(pt.ID) == predicate {
			return term, pt, true
		}
	}
	return "", load.PropertyTerm{}, false
}

// classGoName prefers the context class alias over the IRI local name.
func (g *Graph) classGoName(iri string) string {
	for term, target := range g.Context.Classes {
		if g.Context.Expand(target) == iri {
			return goName(term)
		}
	}
	return goName(rdf.IRI(iri).LocalName())
}

// resolveReferences rewrites sh:node shape targets to their constrained
// classes and verifies every reference target has a shape.
func (g *Graph) resolveReferences() error {
	for _, cls := range g.Classes {
		for _, p := range cls.Properties {
			if !p.Type.Reference {
				continue
			}
			if byShape, ok := g.byShape[p.Type.Target]; ok {
				p.Type.Target = byShape.IRI
			}
			if _, ok := g.classes[p.Type.Target]; !ok {
				return NewMissingShapeError(p.Type.Target, cls.Name, p.Predicate)
			}
		}
	}
	return nil
}

// ClassByIRI returns the class binding for a class IRI.
func (g *Graph) ClassByIRI(iri string) (*Class, bool) {
	c, ok := g.classes[iri]
	return c, ok
}

// TargetClass returns the class binding a reference property points to.
// Resolution was verified during the merge, so the lookup cannot miss for
// a graph built by NewGraph.
func (g *Graph) TargetClass(p *Property) *Class {
	return g.classes[p.Type.Target]
}

// Predicates returns the class's known-predicates set: the union of its
// property predicates, in lexical order.
func (c *Class) Predicates() []string {
	out := make([]string, 0, len(c.Properties))
	for _, p := range c.Properties {
		out = append(out, p.Predicate)
	}
	sort.Strings(out)
	return out
}

// FileName returns the base name of the class's generated files.
func (c *Class) FileName() string {
	return unexportedName(c.Name)
}

// WrapperName returns the unexported name of the generated wrapper struct.
func (c *Class) WrapperName() string {
	return unexportedName(c.Name) + "Wrapper"
}

// PredicateConst returns the name of the generated predicate constant for
// the property.
func (p *Property) PredicateConst() string {
	return p.cls.Name + p.Name + "Predicate"
}

// propertyComment folds sh:name and sh:description into one doc line.
func propertyComment(pc *load.PropertyConstraint) string {
	switch {
	case pc.Name != "" && pc.Description != "":
		return pc.Name + ": " + pc.Description
	case pc.Name != "":
		return pc.Name
	default:
		return pc.Description
	}
}
