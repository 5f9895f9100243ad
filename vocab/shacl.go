package vocab

import "github.com/semforge/ontogen/rdf"

// NamespaceSH is the SHACL core vocabulary namespace.
const NamespaceSH = "http://www.w3.org/ns/shacl#"

// SHACL classes.
const (
	// SHNodeShape marks a subject as a node-level shape.
	SHNodeShape rdf.IRI = NamespaceSH + "NodeShape"
	// SHPropertyShape marks a subject as a property-level shape.
	SHPropertyShape rdf.IRI = NamespaceSH + "PropertyShape"
)

// SHACL predicates read by the shape parser.
const (
	SHTargetClass  rdf.IRI = NamespaceSH + "targetClass"
	SHProperty     rdf.IRI = NamespaceSH + "property"
	SHPath         rdf.IRI = NamespaceSH + "path"
	SHName         rdf.IRI = NamespaceSH + "name"
	SHDescription  rdf.IRI = NamespaceSH + "description"
	SHDatatype     rdf.IRI = NamespaceSH + "datatype"
	SHClass        rdf.IRI = NamespaceSH + "class"
	SHNode         rdf.IRI = NamespaceSH + "node"
	SHMinCount     rdf.IRI = NamespaceSH + "minCount"
	SHMaxCount     rdf.IRI = NamespaceSH + "maxCount"
	SHMinLength    rdf.IRI = NamespaceSH + "minLength"
	SHMaxLength    rdf.IRI = NamespaceSH + "maxLength"
	SHPattern      rdf.IRI = NamespaceSH + "pattern"
	SHMinInclusive rdf.IRI = NamespaceSH + "minInclusive"
	SHMaxInclusive rdf.IRI = NamespaceSH + "maxInclusive"
	SHIn           rdf.IRI = NamespaceSH + "in"
	SHHasValue     rdf.IRI = NamespaceSH + "hasValue"
	SHNodeKind     rdf.IRI = NamespaceSH + "nodeKind"
)
