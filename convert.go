package ontogen

import (
	"strconv"
	"strings"

	"github.com/semforge/ontogen/rdf"
	"github.com/semforge/ontogen/vocab"
)

// Literal conversion is fail-soft everywhere: the graph may hold
// hand-authored or legacy data this subsystem does not control. A lexical
// form that does not match its datatype is dropped from list reads and
// defaulted (or left absent) on scalar reads; it never aborts an accessor.

// toInt converts a lexical form to int64.
func toInt(l rdf.Literal) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(l.Lexical), 10, 64)
	if err != nil {
		return 0, NewConversionError(l, err)
	}
	return v, nil
}

// toFloat converts a lexical form to float64.
func toFloat(l rdf.Literal) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(l.Lexical), 64)
	if err != nil {
		return 0, NewConversionError(l, err)
	}
	return v, nil
}

// toBool converts a lexical form to bool. XSD permits 1/0 alongside
// true/false.
func toBool(l rdf.Literal) (bool, error) {
	switch strings.TrimSpace(l.Lexical) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, NewConversionError(l, nil)
	}
}

// ScalarDefault returns the datatype-appropriate fallback for a required
// scalar with no matching triple.
func ScalarDefault(datatype rdf.IRI) any {
	switch datatype {
	case vocab.XSDBoolean:
		return false
	case vocab.XSDInteger, vocab.XSDInt, vocab.XSDLong:
		return int64(0)
	case vocab.XSDDecimal, vocab.XSDDouble, vocab.XSDFloat:
		return float64(0)
	default:
		return ""
	}
}

// StringOf returns the first literal on the predicate, or the empty string
// when none is present. Every literal has a lexical form, so string reads
// cannot fail conversion.
func StringOf(h Handle, predicate rdf.IRI) string {
	if h.IsZero() {
		return ""
	}
	lits := h.Graph.LiteralValues(h.Node, predicate)
	if len(lits) == 0 {
		return ""
	}
	return lits[0].Lexical
}

// StringPtr returns the first literal on the predicate, or nil when absent.
func StringPtr(h Handle, predicate rdf.IRI) *string {
	if h.IsZero() {
		return nil
	}
	lits := h.Graph.LiteralValues(h.Node, predicate)
	if len(lits) == 0 {
		return nil
	}
	s := lits[0].Lexical
	return &s
}

// Strings returns all literals on the predicate as strings.
func Strings(h Handle, predicate rdf.IRI) []string {
	if h.IsZero() {
		return nil
	}
	lits := h.Graph.LiteralValues(h.Node, predicate)
	out := make([]string, 0, len(lits))
	for _, l := range lits {
		out = append(out, l.Lexical)
	}
	return out
}

// IntOf returns the first convertible integer literal, or zero.
func IntOf(h Handle, predicate rdf.IRI) int64 {
	if v := IntPtr(h, predicate); v != nil {
		return *v
	}
	return 0
}

// IntPtr returns the first convertible integer literal, or nil.
func IntPtr(h Handle, predicate rdf.IRI) *int64 {
	if h.IsZero() {
		return nil
	}
	for _, l := range h.Graph.LiteralValues(h.Node, predicate) {
		if v, err := toInt(l); err == nil {
			return &v
		}
	}
	return nil
}

// Ints returns all convertible integer literals, dropping the rest.
func Ints(h Handle, predicate rdf.IRI) []int64 {
	if h.IsZero() {
		return nil
	}
	var out []int64
	for _, l := range h.Graph.LiteralValues(h.Node, predicate) {
		if v, err := toInt(l); err == nil {
			out = append(out, v)
		}
	}
	return out
}

// FloatOf returns the first convertible floating-point literal, or zero.
func FloatOf(h Handle, predicate rdf.IRI) float64 {
	if v := FloatPtr(h, predicate); v != nil {
		return *v
	}
	return 0
}

// FloatPtr returns the first convertible floating-point literal, or nil.
func FloatPtr(h Handle, predicate rdf.IRI) *float64 {
	if h.IsZero() {
		return nil
	}
	for _, l := range h.Graph.LiteralValues(h.Node, predicate) {
		if v, err := toFloat(l); err == nil {
			return &v
		}
	}
	return nil
}

// Floats returns all convertible floating-point literals, dropping the rest.
func Floats(h Handle, predicate rdf.IRI) []float64 {
	if h.IsZero() {
		return nil
	}
	var out []float64
	for _, l := range h.Graph.LiteralValues(h.Node, predicate) {
		if v, err := toFloat(l); err == nil {
			out = append(out, v)
		}
	}
	return out
}

// BoolOf returns the first convertible boolean literal, or false.
func BoolOf(h Handle, predicate rdf.IRI) bool {
	if v := BoolPtr(h, predicate); v != nil {
		return *v
	}
	return false
}

// BoolPtr returns the first convertible boolean literal, or nil.
func BoolPtr(h Handle, predicate rdf.IRI) *bool {
	if h.IsZero() {
		return nil
	}
	for _, l := range h.Graph.LiteralValues(h.Node, predicate) {
		if v, err := toBool(l); err == nil {
			return &v
		}
	}
	return nil
}

// Bools returns all convertible boolean literals, dropping the rest.
func Bools(h Handle, predicate rdf.IRI) []bool {
	if h.IsZero() {
		return nil
	}
	var out []bool
	for _, l := range h.Graph.LiteralValues(h.Node, predicate) {
		if v, err := toBool(l); err == nil {
			out = append(out, v)
		}
	}
	return out
}

// IRIOf returns the first object node's IRI string on the predicate, or
// the empty string. Used for object-valued properties that have no typed
// target interface.
func IRIOf(h Handle, predicate rdf.IRI) string {
	if v := IRIPtr(h, predicate); v != nil {
		return *v
	}
	return ""
}

// IRIPtr returns the first object node's IRI string, or nil when absent.
func IRIPtr(h Handle, predicate rdf.IRI) *string {
	if h.IsZero() {
		return nil
	}
	for _, node := range h.Graph.ObjectValues(h.Node, predicate) {
		s := node.String()
		return &s
	}
	return nil
}

// IRIs returns all object node IRI strings on the predicate.
func IRIs(h Handle, predicate rdf.IRI) []string {
	if h.IsZero() {
		return nil
	}
	nodes := h.Graph.ObjectValues(h.Node, predicate)
	out := make([]string, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, node.String())
	}
	return out
}

// Ref materializes the first object node on the predicate as T. It returns
// the zero T when no object is present, or when no factory is registered
// for T: an unlinked wrapper package degrades the view to absent instead of
// failing the read.
func Ref[T any](h Handle, predicate rdf.IRI) T {
	var zero T
	if h.IsZero() {
		return zero
	}
	for _, node := range h.Graph.ObjectValues(h.Node, predicate) {
		v, err := Materialize[T](Handle{Graph: h.Graph, Node: node})
		if err != nil {
			return zero
		}
		return v
	}
	return zero
}

// Refs materializes every object node on the predicate as T. Each element
// is an independent, lazily evaluated view. An unregistered target
// interface yields an empty slice.
func Refs[T any](h Handle, predicate rdf.IRI) []T {
	if h.IsZero() {
		return nil
	}
	nodes := h.Graph.ObjectValues(h.Node, predicate)
	out := make([]T, 0, len(nodes))
	for _, node := range nodes {
		v, err := Materialize[T](Handle{Graph: h.Graph, Node: node})
		if err != nil {
			return nil
		}
		out = append(out, v)
	}
	return out
}
