package load

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/semforge/ontogen/rdf"
	"github.com/semforge/ontogen/vocab"
)

func TestParseTurtleBasic(t *testing.T) {
	require := require.New(t)
	g, err := ParseTurtle("basic.ttl", []byte(`
@prefix ex: <http://example.org/> .
@prefix dct: <http://purl.org/dc/terms/> .

ex:thing dct:title "Hello" ;
    dct:creator ex:alice .
`))
	require.NoError(err)
	require.Equal(2, g.Len())

	subj := rdf.IRI("http://example.org/thing")
	lits := g.LiteralValues(subj, "http://purl.org/dc/terms/title")
	require.Len(lits, 1)
	require.Equal("Hello", lits[0].Lexical)
	require.Equal(vocab.XSDString, lits[0].Datatype)

	objs := g.ObjectValues(subj, "http://purl.org/dc/terms/creator")
	require.Equal([]rdf.Term{rdf.IRI("http://example.org/alice")}, objs)
}

func TestParseTurtleAKeyword(t *testing.T) {
	require := require.New(t)
	g, err := ParseTurtle("a.ttl", []byte(`
@prefix ex: <http://example.org/> .
ex:s a ex:Thing .
`))
	require.NoError(err)
	objs := g.ObjectValues(rdf.IRI("http://example.org/s"), vocab.RDFType)
	require.Equal([]rdf.Term{rdf.IRI("http://example.org/Thing")}, objs)
}

func TestParseTurtleSparqlDirectives(t *testing.T) {
	require := require.New(t)
	g, err := ParseTurtle("sparql.ttl", []byte(`
PREFIX ex: <http://example.org/>
BASE <http://base.org/>

ex:s ex:rel <relative> .
`))
	require.NoError(err)
	objs := g.ObjectValues(rdf.IRI("http://example.org/s"), "http://example.org/rel")
	require.Equal([]rdf.Term{rdf.IRI("http://base.org/relative")}, objs)
}

func TestParseTurtleObjectList(t *testing.T) {
	require := require.New(t)
	g, err := ParseTurtle("list.ttl", []byte(`
@prefix ex: <http://example.org/> .
ex:s ex:p "one", "two", "three" .
`))
	require.NoError(err)
	lits := g.LiteralValues(rdf.IRI("http://example.org/s"), "http://example.org/p")
	require.Len(lits, 3)
	require.Equal("two", lits[1].Lexical)
}

func TestParseTurtleBlankNodePropertyList(t *testing.T) {
	require := require.New(t)
	g, err := ParseTurtle("bnode.ttl", []byte(`
@prefix ex: <http://example.org/> .
ex:s ex:child [ ex:name "inner" ; ex:depth 2 ] .
`))
	require.NoError(err)
	children := g.ObjectValues(rdf.IRI("http://example.org/s"), "http://example.org/child")
	require.Len(children, 1)
	require.Equal(rdf.KindBlank, children[0].TermKind())

	names := g.LiteralValues(children[0], "http://example.org/name")
	require.Len(names, 1)
	require.Equal("inner", names[0].Lexical)

	depths := g.LiteralValues(children[0], "http://example.org/depth")
	require.Len(depths, 1)
	require.Equal("2", depths[0].Lexical)
	require.Equal(vocab.XSDInteger, depths[0].Datatype)
}

func TestParseTurtleCollection(t *testing.T) {
	require := require.New(t)
	g, err := ParseTurtle("coll.ttl", []byte(`
@prefix ex: <http://example.org/> .
ex:s ex:values ( "a" "b" "c" ) .
`))
	require.NoError(err)
	heads := g.ObjectValues(rdf.IRI("http://example.org/s"), "http://example.org/values")
	require.Len(heads, 1)

	var items []string
	cur := heads[0]
	for cur != rdf.Term(vocab.RDFNil) {
		first := g.LiteralValues(cur, vocab.RDFFirst)
		require.Len(first, 1)
		items = append(items, first[0].Lexical)
		rest := g.ObjectValues(cur, vocab.RDFRest)
		require.Len(rest, 1)
		cur = rest[0]
	}
	require.Equal([]string{"a", "b", "c"}, items)
}

func TestParseTurtleEmptyCollection(t *testing.T) {
	require := require.New(t)
	g, err := ParseTurtle("empty.ttl", []byte(`
@prefix ex: <http://example.org/> .
ex:s ex:values ( ) .
`))
	require.NoError(err)
	heads := g.ObjectValues(rdf.IRI("http://example.org/s"), "http://example.org/values")
	require.Equal([]rdf.Term{rdf.IRI(vocab.RDFNil)}, heads)
}

func TestParseTurtleLiteralForms(t *testing.T) {
	require := require.New(t)
	g, err := ParseTurtle("lit.ttl", []byte(`
@prefix ex: <http://example.org/> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
ex:s ex:str "plain" ;
    ex:lang "bonjour"@fr ;
    ex:typed "42"^^xsd:integer ;
    ex:iriTyped "2024-01-01"^^<http://www.w3.org/2001/XMLSchema#date> ;
    ex:escaped "line\nbreak\ttab \"quoted\"" ;
    ex:unicode "\u00e9" ;
    ex:long """first
second""" ;
    ex:int 7 ;
    ex:neg -3 ;
    ex:dec 3.25 ;
    ex:dbl 1.5e3 ;
    ex:yes true ;
    ex:no false .
`))
	require.NoError(err)
	s := rdf.IRI("http://example.org/s")
	one := func(pred string) rdf.Literal {
		lits := g.LiteralValues(s, rdf.IRI("http://example.org/"+pred))
		require.Len(lits, 1, pred)
		return lits[0]
	}

	require.Equal(vocab.XSDString, one("str").Datatype)
	require.Equal("fr", one("lang").Lang)
	require.Equal(rdf.Literal{Lexical: "42", Datatype: vocab.XSDInteger}, one("typed"))
	require.Equal(vocab.XSDDate, one("iriTyped").Datatype)
	require.Equal("line\nbreak\ttab \"quoted\"", one("escaped").Lexical)
	require.Equal("é", one("unicode").Lexical)
	require.Equal("first\nsecond", one("long").Lexical)
	require.Equal(rdf.Literal{Lexical: "7", Datatype: vocab.XSDInteger}, one("int"))
	require.Equal("-3", one("neg").Lexical)
	require.Equal(rdf.Literal{Lexical: "3.25", Datatype: vocab.XSDDecimal}, one("dec"))
	require.Equal(vocab.XSDDouble, one("dbl").Datatype)
	require.Equal(rdf.Literal{Lexical: "true", Datatype: vocab.XSDBoolean}, one("yes"))
	require.Equal("false", one("no").Lexical)
}

func TestParseTurtleComments(t *testing.T) {
	require := require.New(t)
	g, err := ParseTurtle("comments.ttl", []byte(`
# leading comment
@prefix ex: <http://example.org/> . # trailing comment
ex:s ex:p "v" . # another
`))
	require.NoError(err)
	require.Equal(1, g.Len())
}

func TestParseTurtleLabeledBlankNodes(t *testing.T) {
	require := require.New(t)
	g, err := ParseTurtle("labeled.ttl", []byte(`
@prefix ex: <http://example.org/> .
_:n1 ex:p "v" .
ex:s ex:ref _:n1 .
`))
	require.NoError(err)
	refs := g.ObjectValues(rdf.IRI("http://example.org/s"), "http://example.org/ref")
	require.Len(refs, 1)
	lits := g.LiteralValues(refs[0], "http://example.org/p")
	require.Len(lits, 1)
	require.Equal("v", lits[0].Lexical)
}

func TestParseTurtleBlankNodeLabelBeforeDot(t *testing.T) {
	require := require.New(t)
	// The statement dot may abut the label with no whitespace between.
	g, err := ParseTurtle("tight.ttl", []byte(`
@prefix ex: <http://example.org/> .
ex:s ex:ref _:n1.
_:n1 ex:p "v" .
`))
	require.NoError(err)
	refs := g.ObjectValues(rdf.IRI("http://example.org/s"), "http://example.org/ref")
	require.Len(refs, 1)
	require.Equal(rdf.KindBlank, refs[0].TermKind())
	lits := g.LiteralValues(refs[0], "http://example.org/p")
	require.Len(lits, 1)
	require.Equal("v", lits[0].Lexical)
}

func TestParseTurtleErrors(t *testing.T) {
	for _, tt := range []struct {
		name string
		src  string
	}{
		{"undeclared prefix", `ex:s ex:p "v" .`},
		{"missing dot", "@prefix ex: <http://example.org/> .\nex:s ex:p \"v\""},
		{"unterminated string", "@prefix ex: <http://e.org/> .\nex:s ex:p \"open .\n"},
		{"unterminated iri", `<http://e.org/s <http://e.org/p> <http://e.org/o> .`},
		{"bad escape", "@prefix ex: <http://e.org/> .\nex:s ex:p \"\\q\" ."},
		{"lone sign", "@prefix ex: <http://e.org/> .\nex:s ex:p + ."},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			_, err := ParseTurtle("bad.ttl", []byte(tt.src))
			require.Error(err)
			require.ErrorIs(err, ErrParse)
			require.True(IsParseError(err))
		})
	}
}

func TestParseTurtleErrorPosition(t *testing.T) {
	require := require.New(t)
	_, err := ParseTurtle("pos.ttl", []byte("@prefix ex: <http://e.org/> .\n\nex:s unknown:p \"v\" .\n"))
	require.Error(err)
	var pe *ParseError
	require.ErrorAs(err, &pe)
	require.Equal("pos.ttl", pe.File)
	require.Equal(3, pe.Line)
}

func TestParseTurtleFileMissing(t *testing.T) {
	require := require.New(t)
	_, err := ParseTurtleFile("does/not/exist.ttl")
	require.Error(err)
	require.True(IsParseError(err))
}
