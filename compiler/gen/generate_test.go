package gen

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/require"

	"github.com/semforge/ontogen/compiler/load"
	"github.com/semforge/ontogen/vocab"
)

func renderFile(t *testing.T, f *jen.File) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))
	return buf.String()
}

func testGenerator(t *testing.T, outDir string) *Generator {
	t.Helper()
	g, err := NewGraph(nil, catalogShapes(), catalogContext())
	require.NoError(t, err)
	return NewGenerator(g, outDir)
}

func TestGenInterface(t *testing.T) {
	require := require.New(t)
	gen := testGenerator(t, "model")
	src := renderFile(t, gen.GenInterface(gen.graph.Classes[0]))

	require.Contains(src, "Code generated by ontogen. DO NOT EDIT.")
	require.Contains(src, "package model")
	require.Contains(src, "type Catalog interface {")
	require.Contains(src, "ontogen.Resource")
	require.Contains(src, "Title() string")
	require.Contains(src, "Description() *string")
	require.Contains(src, "Dataset() []Dataset")
	require.Contains(src, `CatalogTitlePredicate rdf.IRI = "http://purl.org/dc/terms/title"`)
	require.Contains(src, "<http://www.w3.org/ns/dcat#Catalog>")
}

func TestGenInterfaceEmptyClass(t *testing.T) {
	require := require.New(t)
	g, err := NewGraph(nil, []*load.ClassShape{{
		Shape:  "http://example.org/S",
		Target: "http://example.org/Empty",
	}}, nil)
	require.NoError(err)
	src := renderFile(t, NewGenerator(g, "model").GenInterface(g.Classes[0]))
	require.Contains(src, "type Empty interface {")
	require.NotContains(src, "const", "no predicate table for a propertyless class")
}

func TestGenWrapper(t *testing.T) {
	require := require.New(t)
	gen := testGenerator(t, "model")
	src := renderFile(t, gen.GenWrapper(gen.graph.Classes[0]))

	require.Contains(src, "type catalogWrapper struct {")
	require.Contains(src, "h ontogen.Handle")
	require.Contains(src, "var catalogPredicates = ontogen.NewPredicateSet(")
	require.Contains(src, "CatalogTitlePredicate")
	require.Contains(src, "func init() {")
	require.Contains(src, "ontogen.RegisterFactory(func(h ontogen.Handle) Catalog {")
	require.Contains(src, "return &catalogWrapper{h: h}")
	require.Contains(src, "func (w *catalogWrapper) Handle() ontogen.Handle {")
	require.Contains(src, "func (w *catalogWrapper) Title() string {")
	require.Contains(src, "return ontogen.StringOf(w.h, CatalogTitlePredicate)")
	require.Contains(src, "return ontogen.StringPtr(w.h, CatalogDescriptionPredicate)")
	require.Contains(src, "return ontogen.Refs[Dataset](w.h, CatalogDatasetPredicate)")
	require.Contains(src, "var _ Catalog = (*catalogWrapper)(nil)")
}

func TestGenWrapperScalarHelpers(t *testing.T) {
	require := require.New(t)
	ctx := load.NewContext()
	ctx.Prefixes["ex"] = "http://example.org/"
	ctx.Properties["page"] = load.PropertyTerm{ID: "ex:page", Type: "@id"}
	g, err := NewGraph(nil, []*load.ClassShape{{
		Shape:  "http://example.org/S",
		Target: "http://example.org/Thing",
		Properties: []*load.PropertyConstraint{
			{Path: "ex:count", Datatype: string(vocab.XSDInteger), MinCount: 1, MaxCount: 1},
			{Path: "ex:score", Datatype: string(vocab.XSDDecimal), MaxCount: 1},
			{Path: "ex:flags", Datatype: string(vocab.XSDBoolean), MaxCount: load.Unbounded},
			{Path: "ex:page", MaxCount: 1},
		},
	}}, ctx)
	require.NoError(err)
	src := renderFile(t, NewGenerator(g, "model").GenWrapper(g.Classes[0]))

	require.Contains(src, "ontogen.IntOf(w.h, ThingCountPredicate)")
	require.Contains(src, "ontogen.FloatPtr(w.h, ThingScorePredicate)")
	require.Contains(src, "ontogen.Bools(w.h, ThingFlagsPredicate)")
	require.Contains(src, "ontogen.IRIPtr(w.h, ThingPagePredicate)")
}

func TestGenerate(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	gen := testGenerator(t, dir)
	require.NoError(gen.Generate(context.Background()))

	for _, name := range []string{
		"catalog.go", "catalog_wrapper.go",
		"dataset.go", "dataset_wrapper.go",
	} {
		src, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(err, name)
		require.NotEmpty(src, name)
	}
}

func TestGenerateConstants(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	g, err := NewGraph(&Config{PrefixConstants: true}, catalogShapes(), catalogContext())
	require.NoError(err)
	require.NoError(NewGenerator(g, dir).WithWorkers(2).Generate(context.Background()))

	src, err := os.ReadFile(filepath.Join(dir, constantsFile))
	require.NoError(err)
	text := string(src)
	require.Contains(text, `NamespaceDcat = "http://www.w3.org/ns/dcat#"`)
	require.Contains(text, `NamespaceDct = "http://purl.org/dc/terms/"`)
	require.Contains(text, `"dcat": NamespaceDcat,`)
	require.Contains(text, "map[string]rdf.IRI")
}

func TestGenerateCustomHeader(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	g, err := NewGraph(&Config{Header: "Custom header."}, catalogShapes(), catalogContext())
	require.NoError(err)
	require.NoError(NewGenerator(g, dir).Generate(context.Background()))

	src, err := os.ReadFile(filepath.Join(dir, "catalog.go"))
	require.NoError(err)
	require.Contains(string(src), "// Custom header.")
	require.NotContains(string(src), defaultHeader)
}

func TestGenerateDiagnosticsLogger(t *testing.T) {
	// The configured logger sees the per-file debug records.
	require := require.New(t)
	dir := t.TempDir()
	var buf bytes.Buffer
	cfg, err := NewConfig(
		WithTarget(dir),
		WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))),
	)
	require.NoError(err)
	g, err := NewGraph(cfg, catalogShapes(), catalogContext())
	require.NoError(err)
	require.NoError(Generate(g))

	out := buf.String()
	require.Contains(out, "wrote file")
	require.Contains(out, "catalog.go")
	require.Contains(out, "dataset_wrapper.go")
}

func TestGenerateMissingTarget(t *testing.T) {
	require := require.New(t)
	g, err := NewGraph(nil, catalogShapes(), catalogContext())
	require.NoError(err)
	err = Generate(g)
	require.Error(err)
	require.ErrorIs(err, ErrMissingConfig)
	require.True(IsConfigError(err))
}

func TestGeneratePackageOverride(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	g, err := NewGraph(&Config{
		Target:  dir,
		Package: "github.com/org/project/ontology",
	}, catalogShapes(), catalogContext())
	require.NoError(err)
	require.NoError(Generate(g))

	src, err := os.ReadFile(filepath.Join(dir, "catalog.go"))
	require.NoError(err)
	require.Contains(string(src), "package ontology")
}

func TestConfigOptions(t *testing.T) {
	require := require.New(t)
	c, err := NewConfig(
		WithPackage("github.com/org/project/model"),
		WithTarget("out"),
		WithHeader("hdr"),
		WithPrefixConstants(true),
	)
	require.NoError(err)
	require.Equal("github.com/org/project/model", c.Package)
	require.Equal("out", c.Target)
	require.Equal("hdr", c.Header)
	require.True(c.PrefixConstants)

	_, err = NewConfig(WithPackage(""))
	require.Error(err)
	require.True(IsConfigError(err))

	_, err = NewConfig(WithTarget(""))
	require.Error(err)

	_, err = NewConfig(WithLogger(nil))
	require.Error(err)
}
