package load

import (
	"log/slog"
	"sort"
	"strconv"

	"github.com/semforge/ontogen/rdf"
	"github.com/semforge/ontogen/vocab"
)

// ParseShapesFile reads a SHACL shapes document and extracts its class
// shapes. Diagnostics for skipped or dropped entries go to log; a nil log
// falls back to slog.Default.
func ParseShapesFile(path string, log *slog.Logger) ([]*ClassShape, error) {
	g, err := ParseTurtleFile(path)
	if err != nil {
		return nil, err
	}
	return ExtractShapes(path, g, log), nil
}

// ParseShapes parses a SHACL shapes document from memory.
func ParseShapes(filename string, src []byte, log *slog.Logger) ([]*ClassShape, error) {
	g, err := ParseTurtle(filename, src)
	if err != nil {
		return nil, err
	}
	return ExtractShapes(filename, g, log), nil
}

// ExtractShapes walks the parsed shape graph and returns one ClassShape per
// node shape that declares a target class. Shapes without sh:targetClass
// are skipped without error: they may be reusable property shapes that are
// only ever referenced. Property blocks without sh:path are dropped and
// logged. Shapes are returned ordered by target class IRI so repeated runs
// over the same document are deterministic.
func ExtractShapes(filename string, g *rdf.MemoryGraph, log *slog.Logger) []*ClassShape {
	if log == nil {
		log = slog.Default()
	}
	var shapes []*ClassShape
	for _, subj := range g.SubjectsWith(vocab.RDFType, rdf.Term(vocab.SHNodeShape)) {
		target := firstObjectIRI(g, subj, vocab.SHTargetClass)
		if target == "" {
			log.Debug("skipping node shape without target class",
				"file", filename, "shape", subj.String())
			continue
		}
		shape := &ClassShape{
			Shape:  subj.String(),
			Target: target,
		}
		for _, block := range g.ObjectValues(subj, vocab.SHProperty) {
			pc := extractProperty(g, block)
			if pc.Path == "" {
				log.Warn("dropping property constraint without sh:path",
					"file", filename, "shape", subj.String())
				continue
			}
			shape.Properties = append(shape.Properties, pc)
		}
		shapes = append(shapes, shape)
	}
	sort.Slice(shapes, func(i, j int) bool { return shapes[i].Target < shapes[j].Target })
	return shapes
}

// extractProperty reads one sh:property block into a constraint set.
func extractProperty(g *rdf.MemoryGraph, block rdf.Term) *PropertyConstraint {
	pc := &PropertyConstraint{
		MinCount: 0,
		MaxCount: Unbounded,
	}
	pc.Path = firstObjectIRI(g, block, vocab.SHPath)
	pc.Name = firstLexical(g, block, vocab.SHName)
	pc.Description = firstLexical(g, block, vocab.SHDescription)
	pc.Datatype = firstObjectIRI(g, block, vocab.SHDatatype)
	pc.Class = firstObjectIRI(g, block, vocab.SHClass)
	// sh:node references a shape rather than a class; it still marks an
	// object property targeting whatever that shape constrains. The model
	// builder resolves shape IRIs to their target classes.
	if pc.Class == "" {
		pc.Class = firstObjectIRI(g, block, vocab.SHNode)
	}
	if v, ok := firstInt(g, block, vocab.SHMinCount); ok {
		pc.MinCount = v
	}
	if v, ok := firstInt(g, block, vocab.SHMaxCount); ok {
		pc.MaxCount = v
	}
	if v, ok := firstInt(g, block, vocab.SHMinLength); ok {
		pc.MinLength = &v
	}
	if v, ok := firstInt(g, block, vocab.SHMaxLength); ok {
		pc.MaxLength = &v
	}
	pc.Pattern = firstLexical(g, block, vocab.SHPattern)
	if v, ok := firstFloat(g, block, vocab.SHMinInclusive); ok {
		pc.MinInclusive = &v
	}
	if v, ok := firstFloat(g, block, vocab.SHMaxInclusive); ok {
		pc.MaxInclusive = &v
	}
	if head := firstObject(g, block, vocab.SHIn); head != nil {
		pc.In = collectList(g, head)
	}
	pc.HasValue = firstValue(g, block, vocab.SHHasValue)
	return pc
}

// collectList walks an rdf:first/rdf:rest chain, collecting lexical forms.
func collectList(g *rdf.MemoryGraph, head rdf.Term) []string {
	var out []string
	for head != nil && head != rdf.Term(vocab.RDFNil) {
		if lits := g.LiteralValues(head, vocab.RDFFirst); len(lits) > 0 {
			out = append(out, lits[0].Lexical)
		} else if objs := g.ObjectValues(head, vocab.RDFFirst); len(objs) > 0 {
			out = append(out, objs[0].String())
		}
		rest := g.ObjectValues(head, vocab.RDFRest)
		if len(rest) == 0 {
			break
		}
		head = rest[0]
	}
	return out
}

func firstObject(g *rdf.MemoryGraph, subj rdf.Term, pred rdf.IRI) rdf.Term {
	objs := g.ObjectValues(subj, pred)
	if len(objs) == 0 {
		return nil
	}
	return objs[0]
}

func firstObjectIRI(g *rdf.MemoryGraph, subj rdf.Term, pred rdf.IRI) string {
	for _, o := range g.ObjectValues(subj, pred) {
		if o.TermKind() == rdf.KindIRI {
			return o.String()
		}
	}
	return ""
}

func firstLexical(g *rdf.MemoryGraph, subj rdf.Term, pred rdf.IRI) string {
	lits := g.LiteralValues(subj, pred)
	if len(lits) == 0 {
		return ""
	}
	return lits[0].Lexical
}

// firstValue returns the first object of the predicate regardless of kind,
// as a lexical form or IRI string.
func firstValue(g *rdf.MemoryGraph, subj rdf.Term, pred rdf.IRI) string {
	if s := firstLexical(g, subj, pred); s != "" {
		return s
	}
	return firstObjectIRI(g, subj, pred)
}

func firstInt(g *rdf.MemoryGraph, subj rdf.Term, pred rdf.IRI) (int, bool) {
	for _, l := range g.LiteralValues(subj, pred) {
		if v, err := strconv.Atoi(l.Lexical); err == nil {
			return v, true
		}
	}
	return 0, false
}

func firstFloat(g *rdf.MemoryGraph, subj rdf.Term, pred rdf.IRI) (float64, bool) {
	for _, l := range g.LiteralValues(subj, pred) {
		if v, err := strconv.ParseFloat(l.Lexical, 64); err == nil {
			return v, true
		}
	}
	return 0, false
}
