package gen

import (
	"github.com/dave/jennifer/jen"
)

// GenWrapper emits the graph-backed implementation of one class interface.
// The wrapper holds a (graph, node) handle and answers every property as a
// pure, idempotent, lazily evaluated read through the runtime helpers:
// nothing is fetched until an accessor is called, and nothing is cached.
// An init function registers the wrapper's factory under its interface
// identity exactly once, at package load.
func (g *Generator) GenWrapper(c *Class) *jen.File {
	f := g.newFile()

	f.Commentf("%s implements %s over a (graph, node) handle.", c.WrapperName(), c.Name)
	f.Type().Id(c.WrapperName()).Struct(
		jen.Id("h").Qual(runtimePkg, "Handle"),
	)

	f.Line()
	predsVar := unexportedName(c.Name) + "Predicates"
	f.Commentf("%s is the set of predicates shape <%s> declares.", predsVar, c.Shape)
	f.Var().Id(predsVar).Op("=").Qual(runtimePkg, "NewPredicateSet").CallFunc(func(args *jen.Group) {
		for _, p := range c.Properties {
			args.Id(p.PredicateConst())
		}
	})

	f.Line()
	f.Func().Id("init").Params().Block(
		jen.Qual(runtimePkg, "RegisterFactory").Call(
			jen.Func().Params(jen.Id("h").Qual(runtimePkg, "Handle")).Id(c.Name).Block(
				jen.Return(jen.Op("&").Id(c.WrapperName()).Values(jen.Dict{
					jen.Id("h"): jen.Id("h"),
				})),
			),
		),
	)

	f.Line()
	f.Comment("Handle returns the backing (graph, node) pair.")
	f.Func().Params(jen.Id("w").Op("*").Id(c.WrapperName())).Id("Handle").Params().Qual(runtimePkg, "Handle").Block(
		jen.Return(jen.Id("w").Dot("h")),
	)

	f.Line()
	f.Comment("KnownPredicates returns the predicate set of the originating shape.")
	f.Func().Params(jen.Id("w").Op("*").Id(c.WrapperName())).Id("KnownPredicates").Params().Qual(runtimePkg, "PredicateSet").Block(
		jen.Return(jen.Id(predsVar)),
	)

	for _, p := range c.Properties {
		f.Line()
		f.Func().Params(jen.Id("w").Op("*").Id(c.WrapperName())).Id(p.Name).Params().Add(g.accessorType(p)).Block(
			jen.Return(g.accessorBody(p)),
		)
	}

	f.Line()
	f.Var().Id("_").Id(c.Name).Op("=").Parens(jen.Op("*").Id(c.WrapperName())).Call(jen.Nil())
	return f
}

// accessorBody returns the runtime-helper call implementing a property
// read.
func (g *Generator) accessorBody(p *Property) jen.Code {
	args := []jen.Code{jen.Id("w").Dot("h"), jen.Id(p.PredicateConst())}
	if p.Type.Reference {
		target := g.graph.TargetClass(p).Name
		helper := "Ref"
		if p.Type.Card == List {
			helper = "Refs"
		}
		return jen.Qual(runtimePkg, helper).Index(jen.Id(target)).Call(args...)
	}
	return jen.Qual(runtimePkg, g.scalarHelper(p)).Call(args...)
}

// scalarHelper names the runtime conversion helper for a literal property.
func (g *Generator) scalarHelper(p *Property) string {
	var base string
	switch p.Type.Scalar {
	case ScalarInt:
		base = "Int"
	case ScalarFloat:
		base = "Float"
	case ScalarBool:
		base = "Bool"
	case ScalarIRI:
		base = "IRI"
	default:
		base = "String"
	}
	switch p.Type.Card {
	case List:
		return pluralHelper(base)
	case NullableScalar:
		return base + "Ptr"
	default:
		return base + "Of"
	}
}

// pluralHelper returns the list-form helper name for a scalar base.
func pluralHelper(base string) string {
	switch base {
	case "String":
		return "Strings"
	case "Int":
		return "Ints"
	case "Float":
		return "Floats"
	case "Bool":
		return "Bools"
	default:
		return "IRIs"
	}
}
