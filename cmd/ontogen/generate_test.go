package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testShapes = `
@prefix sh:   <http://www.w3.org/ns/shacl#> .
@prefix xsd:  <http://www.w3.org/2001/XMLSchema#> .
@prefix dct:  <http://purl.org/dc/terms/> .
@prefix dcat: <http://www.w3.org/ns/dcat#> .
@prefix ex:   <http://example.org/shapes/> .

ex:CatalogShape a sh:NodeShape ;
    sh:targetClass dcat:Catalog ;
    sh:property [
        sh:path dct:title ;
        sh:datatype xsd:string ;
        sh:minCount 1 ;
        sh:maxCount 1 ;
    ] ;
    sh:property [
        sh:path dcat:dataset ;
        sh:class dcat:Dataset ;
    ] .

ex:DatasetShape a sh:NodeShape ;
    sh:targetClass dcat:Dataset ;
    sh:property [
        sh:path dcat:keyword ;
        sh:datatype xsd:string ;
    ] .
`

const testContext = `{
  "@context": {
    "dct": "http://purl.org/dc/terms/",
    "dcat": "http://www.w3.org/ns/dcat#",
    "Catalog": "dcat:Catalog",
    "Dataset": "dcat:Dataset",
    "title": {"@id": "dct:title"},
    "dataset": {"@id": "dcat:dataset", "@type": "@id"},
    "keyword": {"@id": "dcat:keyword"}
  }
}`

func writeInputs(t *testing.T) *projectConfig {
	t.Helper()
	dir := t.TempDir()
	shapes := filepath.Join(dir, "shapes.ttl")
	context := filepath.Join(dir, "context.jsonld")
	require.NoError(t, os.WriteFile(shapes, []byte(testShapes), 0o644))
	require.NoError(t, os.WriteFile(context, []byte(testContext), 0o644))
	return &projectConfig{
		Shapes:  shapes,
		Context: context,
		Target:  filepath.Join(dir, "model"),
	}
}

func TestBuildGraph(t *testing.T) {
	require := require.New(t)
	cfg := writeInputs(t)

	graph, err := buildGraph(cfg)
	require.NoError(err)
	require.Len(graph.Classes, 2)
	require.Equal("Catalog", graph.Classes[0].Name)
	require.Equal("Dataset", graph.Classes[1].Name)
}

func TestBuildGraphWithoutContext(t *testing.T) {
	require := require.New(t)
	cfg := writeInputs(t)
	cfg.Context = ""

	graph, err := buildGraph(cfg)
	require.NoError(err)
	require.Len(graph.Classes, 2)
}

func TestBuildGraphBadShapes(t *testing.T) {
	require := require.New(t)
	cfg := writeInputs(t)
	require.NoError(os.WriteFile(cfg.Shapes, []byte("not turtle at all ."), 0o644))

	_, err := buildGraph(cfg)
	require.Error(err)
}

func TestRunGenerate(t *testing.T) {
	require := require.New(t)
	cfg := writeInputs(t)
	cfg.PrefixConstants = true

	require.NoError(runGenerate(cfg))

	for _, name := range []string{
		"catalog.go", "catalog_wrapper.go",
		"dataset.go", "dataset_wrapper.go",
		"namespaces.go",
	} {
		_, err := os.Stat(filepath.Join(cfg.Target, name))
		require.NoError(err, name)
	}
}
