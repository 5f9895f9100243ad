package gen

import (
	"github.com/semforge/ontogen/rdf"
	"github.com/semforge/ontogen/vocab"
)

// Cardinality is the resolved multiplicity of a property.
type Cardinality uint8

const (
	// List holds zero or more values (maxCount absent or above one).
	List Cardinality = iota
	// NullableScalar holds at most one value (maxCount one, minCount zero).
	NullableScalar
	// RequiredScalar holds exactly one value (maxCount one, minCount at
	// least one).
	RequiredScalar
)

// String returns the cardinality name.
func (c Cardinality) String() string {
	switch c {
	case NullableScalar:
		return "nullable"
	case RequiredScalar:
		return "required"
	default:
		return "list"
	}
}

// ScalarKind is the Go value kind a literal property maps to.
type ScalarKind uint8

const (
	ScalarString ScalarKind = iota
	ScalarInt
	ScalarFloat
	ScalarBool
	// ScalarIRI is an object-valued property surfaced as its IRI string.
	// It arises from a context "@id" hint on a property whose shape
	// declares no target class.
	ScalarIRI
)

// String returns the Go type name of the scalar kind.
func (k ScalarKind) String() string {
	switch k {
	case ScalarInt:
		return "int64"
	case ScalarFloat:
		return "float64"
	case ScalarBool:
		return "bool"
	default:
		return "string"
	}
}

// TypeDescriptor is the resolved target type of one property.
type TypeDescriptor struct {
	// Card is the resolved multiplicity.
	Card Cardinality
	// Reference is true for object properties; Target then holds the
	// referenced class IRI.
	Reference bool
	Target    string
	// Scalar is the literal value kind for non-reference properties.
	Scalar ScalarKind
}

// scalarTable is the fixed datatype mapping. Anything absent degrades to
// string: schemas evolve, and an unknown datatype must never fail
// generation.
var scalarTable = map[rdf.IRI]ScalarKind{
	vocab.XSDString:  ScalarString,
	vocab.XSDAnyURI:  ScalarString,
	vocab.XSDBoolean: ScalarBool,

	vocab.XSDInteger:            ScalarInt,
	vocab.XSDInt:                ScalarInt,
	vocab.XSDLong:               ScalarInt,
	vocab.XSDShort:              ScalarInt,
	vocab.XSDByte:               ScalarInt,
	vocab.XSDNonNegativeInteger: ScalarInt,
	vocab.XSDPositiveInteger:    ScalarInt,
	vocab.XSDUnsignedInt:        ScalarInt,
	vocab.XSDUnsignedLong:       ScalarInt,

	vocab.XSDDecimal: ScalarFloat,
	vocab.XSDDouble:  ScalarFloat,
	vocab.XSDFloat:   ScalarFloat,
}

// ScalarOf returns the scalar kind for a datatype IRI, defaulting to
// string for anything unrecognized.
func ScalarOf(datatype rdf.IRI) ScalarKind {
	if k, ok := scalarTable[datatype]; ok {
		return k
	}
	return ScalarString
}

// MapType maps a constraint's resolved datatype, target class and
// cardinality bounds to a type descriptor. It is deterministic and
// referentially transparent: identical inputs always yield the identical
// descriptor.
//
// A property declaring both a datatype and a target class is ambiguous in
// SHACL authoring practice; the reference interpretation wins here, and
// the datatype is ignored.
func MapType(datatype, class string, minCount, maxCount int) TypeDescriptor {
	d := TypeDescriptor{}
	switch {
	case maxCount == 1 && minCount == 0:
		d.Card = NullableScalar
	case maxCount == 1 && minCount >= 1:
		d.Card = RequiredScalar
	default:
		d.Card = List
	}
	if class != "" {
		d.Reference = true
		d.Target = class
		return d
	}
	d.Scalar = ScalarOf(rdf.IRI(datatype))
	return d
}
