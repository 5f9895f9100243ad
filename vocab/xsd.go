package vocab

import "github.com/semforge/ontogen/rdf"

// NamespaceXSD is the XML Schema datatype namespace.
const NamespaceXSD = "http://www.w3.org/2001/XMLSchema#"

// XSD datatypes recognized by the literal conversion table. Anything not
// listed here degrades to a plain string.
const (
	XSDString  rdf.IRI = NamespaceXSD + "string"
	XSDBoolean rdf.IRI = NamespaceXSD + "boolean"
	XSDAnyURI  rdf.IRI = NamespaceXSD + "anyURI"

	XSDInteger            rdf.IRI = NamespaceXSD + "integer"
	XSDInt                rdf.IRI = NamespaceXSD + "int"
	XSDLong               rdf.IRI = NamespaceXSD + "long"
	XSDShort              rdf.IRI = NamespaceXSD + "short"
	XSDByte               rdf.IRI = NamespaceXSD + "byte"
	XSDNonNegativeInteger rdf.IRI = NamespaceXSD + "nonNegativeInteger"
	XSDPositiveInteger    rdf.IRI = NamespaceXSD + "positiveInteger"
	XSDUnsignedInt        rdf.IRI = NamespaceXSD + "unsignedInt"
	XSDUnsignedLong       rdf.IRI = NamespaceXSD + "unsignedLong"

	XSDDecimal rdf.IRI = NamespaceXSD + "decimal"
	XSDDouble  rdf.IRI = NamespaceXSD + "double"
	XSDFloat   rdf.IRI = NamespaceXSD + "float"

	XSDDate     rdf.IRI = NamespaceXSD + "date"
	XSDDateTime rdf.IRI = NamespaceXSD + "dateTime"
)
