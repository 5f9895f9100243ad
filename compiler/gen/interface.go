package gen

import (
	"github.com/dave/jennifer/jen"
)

// Import paths of the runtime packages generated code depends on.
const (
	runtimePkg = "github.com/semforge/ontogen"
	rdfPkg     = "github.com/semforge/ontogen/rdf"
)

// GenInterface emits the typed read-only accessor interface for one class,
// together with its predicate constants. The interface embeds
// ontogen.Resource; one method per property, typed by the class's
// resolved descriptors. A class with zero properties still emits a valid
// (empty) interface. References to other classes use forward names in the
// same package, so no emission ordering between classes is needed.
func (g *Generator) GenInterface(c *Class) *jen.File {
	f := g.newFile()

	f.Commentf("%s is the typed view over nodes of class <%s>.", c.Name, c.IRI)
	f.Commentf("It is derived from shape <%s>.", c.Shape)
	f.Type().Id(c.Name).InterfaceFunc(func(grp *jen.Group) {
		grp.Qual(runtimePkg, "Resource")
		for _, p := range c.Properties {
			grp.Line()
			if p.Comment != "" {
				grp.Commentf("%s reads <%s>. %s", p.Name, p.Predicate, p.Comment)
			} else {
				grp.Commentf("%s reads <%s>.", p.Name, p.Predicate)
			}
			grp.Id(p.Name).Params().Add(g.accessorType(p))
		}
	})

	if len(c.Properties) > 0 {
		f.Line()
		f.Commentf("Predicate IRIs mapped by %s.", c.Name)
		f.Const().DefsFunc(func(d *jen.Group) {
			for _, p := range c.Properties {
				d.Id(p.PredicateConst()).Qual(rdfPkg, "IRI").Op("=").Lit(p.Predicate)
			}
		})
	}
	return f
}

// accessorType returns the Go return type of a property accessor.
func (g *Generator) accessorType(p *Property) jen.Code {
	if p.Type.Reference {
		target := g.graph.TargetClass(p).Name
		if p.Type.Card == List {
			return jen.Index().Id(target)
		}
		// Both nullable and required references surface as the bare
		// interface: an absent or unresolvable node yields nil.
		return jen.Id(target)
	}
	base := g.scalarType(p.Type.Scalar)
	switch p.Type.Card {
	case List:
		return jen.Index().Add(base)
	case NullableScalar:
		return jen.Op("*").Add(base)
	default:
		return base
	}
}

// scalarType returns the base Go type of a literal scalar kind.
func (g *Generator) scalarType(k ScalarKind) *jen.Statement {
	switch k {
	case ScalarInt:
		return jen.Int64()
	case ScalarFloat:
		return jen.Float64()
	case ScalarBool:
		return jen.Bool()
	default:
		return jen.String()
	}
}
