// Package vocab holds the well-known IRI constant tables used by the shape
// parser and the type mapper. Generated code carries its own predicate
// constants; this package only covers the vocabularies the toolchain itself
// understands (RDF, SHACL core, XSD datatypes).
package vocab
