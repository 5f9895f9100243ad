package gen

import (
	"bytes"
	"path/filepath"
	"sort"
	"text/template"

	"golang.org/x/tools/imports"
)

// The namespace constants table is the one output rendered through a text
// template rather than Jennifer: it is flat declarative data, and the
// template keeps it legible. The rendered source goes through
// imports.Process, which both formats and verifies the import set.

const constantsFile = "namespaces.go"

var constantsTemplate = template.Must(template.New("namespaces").Parse(`// {{.Header}}

// Package {{.Package}} — namespace prefixes from the generation context.
package {{.Package}}

import "github.com/semforge/ontogen/rdf"

// Namespace IRIs declared by the context document.
const (
{{- range .Prefixes}}
	Namespace{{.Name}} = "{{.IRI}}"
{{- end}}
)

// Prefixes maps context prefix names to their namespaces.
var Prefixes = map[string]rdf.IRI{
{{- range .Prefixes}}
	"{{.Prefix}}": Namespace{{.Name}},
{{- end}}
}
`))

type constantsData struct {
	Header   string
	Package  string
	Prefixes []prefixEntry
}

type prefixEntry struct {
	Prefix string
	Name   string
	IRI    string
}

// writeConstants renders the prefix table of the generation context.
func (g *Generator) writeConstants() error {
	data := constantsData{
		Header:  defaultHeader,
		Package: g.pkg,
	}
	if g.graph.Header != "" {
		data.Header = g.graph.Header
	}
	for prefix, iri := range g.graph.Context.Prefixes {
		data.Prefixes = append(data.Prefixes, prefixEntry{
			Prefix: prefix,
			Name:   goName(prefix),
			IRI:    iri,
		})
	}
	sort.Slice(data.Prefixes, func(i, j int) bool {
		return data.Prefixes[i].Prefix < data.Prefixes[j].Prefix
	})

	var buf bytes.Buffer
	if err := constantsTemplate.Execute(&buf, data); err != nil {
		return NewGenerationError("constants", constantsFile, "template failed", err)
	}
	path := filepath.Join(g.outDir, constantsFile)
	src, err := imports.Process(path, buf.Bytes(), nil)
	if err != nil {
		return NewGenerationError("constants", path, "format failed", err)
	}
	if err := writeSource(path, src); err != nil {
		return err
	}
	g.graph.logger().Debug("wrote file", "phase", "constants", "path", path)
	return nil
}
