package load

import (
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/semforge/ontogen/rdf"
	"github.com/semforge/ontogen/vocab"
)

// ParseTurtleFile reads and parses a Turtle document from disk.
func ParseTurtleFile(path string) (*rdf.MemoryGraph, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, NewParseError(path, 0, "cannot read document", err)
	}
	return ParseTurtle(path, src)
}

// ParseTurtle parses a Turtle document into a memory graph. The reader
// covers the subset SHACL documents are authored in: prefix and base
// directives, prefixed names, literals with language tags and datatypes,
// predicate and object lists, blank node property lists, and collections.
// Any syntax error fails the whole document; no triples are returned.
func ParseTurtle(filename string, src []byte) (*rdf.MemoryGraph, error) {
	p := &turtleParser{
		file:     filename,
		src:      string(src),
		line:     1,
		prefixes: make(map[string]string),
		graph:    rdf.NewMemoryGraph(),
	}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.graph, nil
}

type turtleParser struct {
	file     string
	src      string
	pos      int
	line     int
	base     string
	prefixes map[string]string
	graph    *rdf.MemoryGraph
	bnodeN   int
}

func (p *turtleParser) errf(format string, args ...any) error {
	return NewParseError(p.file, p.line, fmt.Sprintf(format, args...), nil)
}

func (p *turtleParser) parse() error {
	for {
		p.skipSpace()
		if p.eof() {
			return nil
		}
		if err := p.statement(); err != nil {
			return err
		}
	}
}

// statement parses one directive or one triples block.
func (p *turtleParser) statement() error {
	switch {
	case p.hasKeyword("@prefix"), p.hasKeyword("PREFIX"):
		return p.prefixDirective()
	case p.hasKeyword("@base"), p.hasKeyword("BASE"):
		return p.baseDirective()
	}
	subject, err := p.subject()
	if err != nil {
		return err
	}
	if err := p.predicateObjectList(subject); err != nil {
		return err
	}
	p.skipSpace()
	if !p.consume('.') {
		return p.errf("expected '.' after statement")
	}
	return nil
}

func (p *turtleParser) prefixDirective() error {
	sparql := p.hasKeyword("PREFIX")
	if sparql {
		p.pos += len("PREFIX")
	} else {
		p.pos += len("@prefix")
	}
	p.skipSpace()
	name, err := p.prefixName()
	if err != nil {
		return err
	}
	p.skipSpace()
	iri, err := p.iriRef()
	if err != nil {
		return err
	}
	p.prefixes[name] = iri
	p.skipSpace()
	// SPARQL-style PREFIX has no terminating dot.
	if !sparql && !p.consume('.') {
		return p.errf("expected '.' after @prefix directive")
	}
	return nil
}

func (p *turtleParser) baseDirective() error {
	sparql := p.hasKeyword("BASE")
	if sparql {
		p.pos += len("BASE")
	} else {
		p.pos += len("@base")
	}
	p.skipSpace()
	iri, err := p.iriRef()
	if err != nil {
		return err
	}
	p.base = iri
	p.skipSpace()
	if !sparql && !p.consume('.') {
		return p.errf("expected '.' after @base directive")
	}
	return nil
}

// prefixName reads the "p:" part of a prefix directive, returning the
// prefix without the colon. The empty prefix is valid.
func (p *turtleParser) prefixName() (string, error) {
	start := p.pos
	for !p.eof() && p.peek() != ':' {
		r := p.peek()
		if unicode.IsSpace(r) {
			break
		}
		p.next()
	}
	if p.eof() || p.peek() != ':' {
		return "", p.errf("expected ':' in prefix name")
	}
	name := p.src[start:p.pos]
	p.next() // colon
	return name, nil
}

func (p *turtleParser) subject() (rdf.Term, error) {
	p.skipSpace()
	switch {
	case p.eof():
		return nil, p.errf("unexpected end of document, expected subject")
	case p.peek() == '<':
		iri, err := p.iriRef()
		if err != nil {
			return nil, err
		}
		return rdf.IRI(iri), nil
	case p.peek() == '[':
		return p.blankNodePropertyList()
	case p.peek() == '(':
		return p.collection()
	case strings.HasPrefix(p.src[p.pos:], "_:"):
		return p.blankNodeLabel()
	default:
		iri, err := p.prefixedName()
		if err != nil {
			return nil, err
		}
		return rdf.IRI(iri), nil
	}
}

// predicateObjectList parses "verb objectList (';' verb objectList)*".
func (p *turtleParser) predicateObjectList(subject rdf.Term) error {
	for {
		p.skipSpace()
		pred, err := p.verb()
		if err != nil {
			return err
		}
		if err := p.objectList(subject, pred); err != nil {
			return err
		}
		p.skipSpace()
		if !p.consume(';') {
			return nil
		}
		// Trailing semicolons before '.' or ']' are legal.
		p.skipSpace()
		if p.eof() || p.peek() == '.' || p.peek() == ']' {
			return nil
		}
	}
}

func (p *turtleParser) verb() (rdf.IRI, error) {
	p.skipSpace()
	if p.eof() {
		return "", p.errf("unexpected end of document, expected predicate")
	}
	if p.hasKeyword("a") {
		p.next()
		return vocab.RDFType, nil
	}
	if p.peek() == '<' {
		iri, err := p.iriRef()
		if err != nil {
			return "", err
		}
		return rdf.IRI(iri), nil
	}
	iri, err := p.prefixedName()
	if err != nil {
		return "", err
	}
	return rdf.IRI(iri), nil
}

func (p *turtleParser) objectList(subject rdf.Term, pred rdf.IRI) error {
	for {
		obj, err := p.object()
		if err != nil {
			return err
		}
		p.graph.Add(rdf.Triple{Subject: subject, Predicate: pred, Object: obj})
		p.skipSpace()
		if !p.consume(',') {
			return nil
		}
	}
}

func (p *turtleParser) object() (rdf.Term, error) {
	p.skipSpace()
	if p.eof() {
		return nil, p.errf("unexpected end of document, expected object")
	}
	switch r := p.peek(); {
	case r == '<':
		iri, err := p.iriRef()
		if err != nil {
			return nil, err
		}
		return rdf.IRI(iri), nil
	case r == '[':
		return p.blankNodePropertyList()
	case r == '(':
		return p.collection()
	case r == '"' || r == '\'':
		return p.literal()
	case r == '+' || r == '-' || unicode.IsDigit(r):
		return p.numericLiteral()
	case strings.HasPrefix(p.src[p.pos:], "_:"):
		return p.blankNodeLabel()
	case p.hasKeyword("true"):
		p.pos += len("true")
		return rdf.Literal{Lexical: "true", Datatype: vocab.XSDBoolean}, nil
	case p.hasKeyword("false"):
		p.pos += len("false")
		return rdf.Literal{Lexical: "false", Datatype: vocab.XSDBoolean}, nil
	default:
		iri, err := p.prefixedName()
		if err != nil {
			return nil, err
		}
		return rdf.IRI(iri), nil
	}
}

// blankNodePropertyList parses "[ predicateObjectList? ]", allocating a
// fresh blank node for the bracketed subject.
func (p *turtleParser) blankNodePropertyList() (rdf.Term, error) {
	if !p.consume('[') {
		return nil, p.errf("expected '['")
	}
	p.bnodeN++
	node := rdf.BlankNode(fmt.Sprintf("b%d", p.bnodeN))
	p.skipSpace()
	if p.consume(']') {
		return node, nil
	}
	if err := p.predicateObjectList(node); err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.consume(']') {
		return nil, p.errf("expected ']' to close blank node property list")
	}
	return node, nil
}

// collection parses "( object* )" into an rdf:first/rdf:rest chain.
func (p *turtleParser) collection() (rdf.Term, error) {
	if !p.consume('(') {
		return nil, p.errf("expected '('")
	}
	var items []rdf.Term
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errf("unexpected end of document inside collection")
		}
		if p.consume(')') {
			break
		}
		obj, err := p.object()
		if err != nil {
			return nil, err
		}
		items = append(items, obj)
	}
	if len(items) == 0 {
		return vocab.RDFNil, nil
	}
	head := p.freshBNode()
	cur := head
	for i, item := range items {
		p.graph.Add(rdf.Triple{Subject: cur, Predicate: vocab.RDFFirst, Object: item})
		if i == len(items)-1 {
			p.graph.Add(rdf.Triple{Subject: cur, Predicate: vocab.RDFRest, Object: vocab.RDFNil})
		} else {
			next := p.freshBNode()
			p.graph.Add(rdf.Triple{Subject: cur, Predicate: vocab.RDFRest, Object: next})
			cur = next
		}
	}
	return head, nil
}

func (p *turtleParser) freshBNode() rdf.BlankNode {
	p.bnodeN++
	return rdf.BlankNode(fmt.Sprintf("b%d", p.bnodeN))
}

func (p *turtleParser) blankNodeLabel() (rdf.Term, error) {
	p.pos += 2 // "_:"
	start := p.pos
	for !p.eof() && isLocalNameRune(p.peek()) {
		p.next()
	}
	// A trailing dot belongs to the statement, not the label.
	for p.pos > start && p.src[p.pos-1] == '.' {
		p.pos--
	}
	if p.pos == start {
		return nil, p.errf("empty blank node label")
	}
	return rdf.BlankNode("u" + p.src[start:p.pos]), nil
}

// iriRef parses "<...>", resolving relative references against @base.
func (p *turtleParser) iriRef() (string, error) {
	if p.eof() || p.peek() != '<' {
		return "", p.errf("expected IRI")
	}
	p.next()
	start := p.pos
	for !p.eof() && p.peek() != '>' {
		if p.peek() == '\n' {
			return "", p.errf("unterminated IRI")
		}
		p.next()
	}
	if p.eof() {
		return "", p.errf("unterminated IRI")
	}
	iri := p.src[start:p.pos]
	p.next() // '>'
	if p.base != "" && !strings.Contains(iri, ":") {
		iri = p.base + iri
	}
	return iri, nil
}

// prefixedName parses "p:local" or ":local" against the prefix table.
// An undeclared prefix is a document error: unlike context aliases, Turtle
// requires every prefix to be introduced by a directive.
func (p *turtleParser) prefixedName() (string, error) {
	start := p.pos
	for !p.eof() && isPrefixRune(p.peek()) {
		p.next()
	}
	if p.eof() || p.peek() != ':' {
		return "", p.errf("expected prefixed name near %q", p.src[start:p.pos])
	}
	prefix := p.src[start:p.pos]
	p.next() // colon
	localStart := p.pos
	for !p.eof() && isLocalNameRune(p.peek()) {
		p.next()
	}
	// A trailing dot belongs to the statement, not the name.
	for p.pos > localStart && p.src[p.pos-1] == '.' {
		p.pos--
	}
	local := p.src[localStart:p.pos]
	ns, ok := p.prefixes[prefix]
	if !ok {
		return "", p.errf("undeclared prefix %q", prefix)
	}
	return ns + local, nil
}

// literal parses quoted literals with optional language tag or datatype.
func (p *turtleParser) literal() (rdf.Term, error) {
	quote := p.peek()
	long := strings.HasPrefix(p.src[p.pos:], strings.Repeat(string(quote), 3))
	var lexical string
	var err error
	if long {
		lexical, err = p.longString(quote)
	} else {
		lexical, err = p.shortString(quote)
	}
	if err != nil {
		return nil, err
	}
	lit := rdf.Literal{Lexical: lexical, Datatype: vocab.XSDString}
	switch {
	case !p.eof() && p.peek() == '@':
		p.next()
		start := p.pos
		for !p.eof() && (isAlphaNum(p.peek()) || p.peek() == '-') {
			p.next()
		}
		lit.Lang = p.src[start:p.pos]
	case strings.HasPrefix(p.src[p.pos:], "^^"):
		p.pos += 2
		var dt string
		if !p.eof() && p.peek() == '<' {
			dt, err = p.iriRef()
		} else {
			dt, err = p.prefixedName()
		}
		if err != nil {
			return nil, err
		}
		lit.Datatype = rdf.IRI(dt)
	}
	return lit, nil
}

func (p *turtleParser) shortString(quote rune) (string, error) {
	p.next() // opening quote
	var b strings.Builder
	for {
		if p.eof() || p.peek() == '\n' {
			return "", p.errf("unterminated string literal")
		}
		r := p.next()
		switch r {
		case quote:
			return b.String(), nil
		case '\\':
			esc, err := p.escape()
			if err != nil {
				return "", err
			}
			b.WriteRune(esc)
		default:
			b.WriteRune(r)
		}
	}
}

func (p *turtleParser) longString(quote rune) (string, error) {
	p.pos += 3
	terminator := strings.Repeat(string(quote), 3)
	var b strings.Builder
	for {
		if p.eof() {
			return "", p.errf("unterminated long string literal")
		}
		if strings.HasPrefix(p.src[p.pos:], terminator) {
			p.pos += 3
			return b.String(), nil
		}
		r := p.next()
		if r == '\\' {
			esc, err := p.escape()
			if err != nil {
				return "", err
			}
			b.WriteRune(esc)
			continue
		}
		b.WriteRune(r)
	}
}

func (p *turtleParser) escape() (rune, error) {
	if p.eof() {
		return 0, p.errf("unterminated escape sequence")
	}
	r := p.next()
	switch r {
	case 't':
		return '\t', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case '"', '\'', '\\':
		return r, nil
	case 'u', 'U':
		n := 4
		if r == 'U' {
			n = 8
		}
		if p.pos+n > len(p.src) {
			return 0, p.errf("truncated unicode escape")
		}
		var code rune
		for i := 0; i < n; i++ {
			c := p.next()
			var d rune
			switch {
			case c >= '0' && c <= '9':
				d = c - '0'
			case c >= 'a' && c <= 'f':
				d = c - 'a' + 10
			case c >= 'A' && c <= 'F':
				d = c - 'A' + 10
			default:
				return 0, p.errf("invalid unicode escape")
			}
			code = code<<4 | d
		}
		return code, nil
	default:
		return 0, p.errf("invalid escape sequence \\%c", r)
	}
}

func (p *turtleParser) numericLiteral() (rdf.Term, error) {
	start := p.pos
	if p.peek() == '+' || p.peek() == '-' {
		p.next()
	}
	dots, exp := 0, false
	for !p.eof() {
		r := p.peek()
		switch {
		case unicode.IsDigit(r):
			p.next()
		case r == '.' && dots == 0:
			// A dot followed by a non-digit terminates the statement instead.
			nr, ok := p.peekAt(1)
			if !ok || !unicode.IsDigit(nr) {
				goto done
			}
			dots++
			p.next()
		case (r == 'e' || r == 'E') && !exp:
			exp = true
			p.next()
			if !p.eof() && (p.peek() == '+' || p.peek() == '-') {
				p.next()
			}
		default:
			goto done
		}
	}
done:
	lex := p.src[start:p.pos]
	if lex == "" || lex == "+" || lex == "-" {
		return nil, p.errf("malformed numeric literal")
	}
	dt := vocab.XSDInteger
	switch {
	case exp:
		dt = vocab.XSDDouble
	case dots > 0:
		dt = vocab.XSDDecimal
	}
	return rdf.Literal{Lexical: lex, Datatype: dt}, nil
}

// ---- low-level cursor ----

func (p *turtleParser) eof() bool { return p.pos >= len(p.src) }

func (p *turtleParser) peek() rune {
	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
	return r
}

// peekAt looks ahead n runes without advancing.
func (p *turtleParser) peekAt(n int) (rune, bool) {
	pos := p.pos
	var r rune
	for i := 0; i <= n; i++ {
		if pos >= len(p.src) {
			return 0, false
		}
		var size int
		r, size = utf8.DecodeRuneInString(p.src[pos:])
		pos += size
	}
	return r, true
}

func (p *turtleParser) next() rune {
	r, size := utf8.DecodeRuneInString(p.src[p.pos:])
	p.pos += size
	if r == '\n' {
		p.line++
	}
	return r
}

func (p *turtleParser) consume(r rune) bool {
	if !p.eof() && p.peek() == r {
		p.next()
		return true
	}
	return false
}

func (p *turtleParser) skipSpace() {
	for !p.eof() {
		r := p.peek()
		switch {
		case unicode.IsSpace(r):
			p.next()
		case r == '#':
			for !p.eof() && p.peek() != '\n' {
				p.next()
			}
		default:
			return
		}
	}
}

// hasKeyword reports whether the cursor sits on the keyword followed by a
// non-name character.
func (p *turtleParser) hasKeyword(kw string) bool {
	if !strings.HasPrefix(p.src[p.pos:], kw) {
		return false
	}
	rest := p.src[p.pos+len(kw):]
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return !isLocalNameRune(r) && r != ':'
}

func isAlphaNum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isPrefixRune(r rune) bool {
	return isAlphaNum(r) || r == '_' || r == '-' || r == '.'
}

func isLocalNameRune(r rune) bool {
	return isAlphaNum(r) || r == '_' || r == '-' || r == '.' || r == '%'
}
