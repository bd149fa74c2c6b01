// Package rdf provides IRI constants for the RDF core vocabulary.
package rdf

// Namespace is the base IRI prefix for RDF core terms.
const Namespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// Core term IRIs.
const (
	// Type asserts the class membership of a resource.
	Type = Namespace + "type"

	// First points at the head element of a collection node.
	First = Namespace + "first"

	// Rest points at the remainder of a collection node.
	Rest = Namespace + "rest"

	// Nil terminates a well-formed collection.
	Nil = Namespace + "nil"
)
