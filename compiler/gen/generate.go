package gen

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"
)

// defaultHeader is the header comment of generated files.
const defaultHeader = "Code generated by ontogen. DO NOT EDIT."

// Generator emits the typed interfaces and wrappers for an ontology model
// using Jennifer. Files are written in parallel and stream straight to
// disk; Jennifer tracks imports and formats on render, so no post-pass is
// needed for the per-class files.
type Generator struct {
	graph   *Graph
	outDir  string
	pkg     string
	workers int
}

// NewGenerator creates a generator writing into outDir.
func NewGenerator(g *Graph, outDir string) *Generator {
	return &Generator{
		graph:   g,
		outDir:  outDir,
		pkg:     filepath.Base(outDir),
		workers: runtime.GOMAXPROCS(0),
	}
}

// WithWorkers sets the number of parallel workers.
func (g *Generator) WithWorkers(n int) *Generator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// WithPackage sets the output package name.
func (g *Generator) WithPackage(pkg string) *Generator {
	if pkg != "" {
		g.pkg = pkg
	}
	return g
}

// Generate emits one interface file and one wrapper file per class, plus
// the optional namespace constants table. Generation of independent
// classes shares no mutable state and runs fully in parallel.
func (g *Generator) Generate(ctx context.Context) error {
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return NewGenerationError("setup", g.outDir, "cannot create target directory", err)
	}

	errg, _ := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)

	for _, c := range g.graph.Classes {
		c := c
		errg.Go(func() error {
			return g.writeFile(g.GenInterface(c), c.FileName()+".go", "interface")
		})
		errg.Go(func() error {
			return g.writeFile(g.GenWrapper(c), c.FileName()+"_wrapper.go", "wrapper")
		})
	}

	if g.graph.PrefixConstants {
		errg.Go(func() error {
			return g.writeConstants()
		})
	}

	return errg.Wait()
}

// writeFile renders a Jennifer file directly to disk.
func (g *Generator) writeFile(f *jen.File, filename, phase string) error {
	path := filepath.Join(g.outDir, filename)
	out, err := os.Create(path)
	if err != nil {
		return NewGenerationError(phase, path, "cannot create file", err)
	}
	defer out.Close()
	if err := f.Render(out); err != nil {
		return NewGenerationError(phase, path, "render failed", err)
	}
	g.graph.logger().Debug("wrote file", "phase", phase, "path", path)
	return nil
}

// writeSource writes already rendered source to disk.
func writeSource(path string, src []byte) error {
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return NewGenerationError("constants", path, "write failed", err)
	}
	return nil
}

// newFile creates a Jennifer file with the configured header comment.
func (g *Generator) newFile() *jen.File {
	f := jen.NewFile(g.pkg)
	header := g.graph.Header
	if header == "" {
		header = defaultHeader
	}
	f.HeaderComment(header)
	return f
}

// Generate is the package-level entry point: it emits the model into its
// configured target directory.
func Generate(graph *Graph) error {
	if graph.Config == nil || graph.Config.Target == "" {
		return NewConfigError("Target", nil, "missing target directory in config")
	}
	gen := NewGenerator(graph, graph.Config.Target)
	if graph.Config.Package != "" {
		gen.WithPackage(filepath.Base(graph.Config.Package))
	}
	return gen.Generate(context.Background())
}
