package vocab

import "github.com/semforge/ontogen/rdf"

// Core RDF/RDFS namespaces.
const (
	NamespaceRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NamespaceRDFS = "http://www.w3.org/2000/01/rdf-schema#"
)

// RDF terms used by the toolchain.
const (
	RDFType rdf.IRI = NamespaceRDF + "type"
	// RDFFirst and RDFRest form the linked-list encoding of RDF collections,
	// walked by the shape parser for sh:in enumerations.
	RDFFirst rdf.IRI = NamespaceRDF + "first"
	RDFRest  rdf.IRI = NamespaceRDF + "rest"
	RDFNil   rdf.IRI = NamespaceRDF + "nil"

	RDFSLabel   rdf.IRI = NamespaceRDFS + "label"
	RDFSComment rdf.IRI = NamespaceRDFS + "comment"
)
