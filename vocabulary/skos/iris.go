// Package skos provides IRI constants for the SKOS documentation vocabulary.
package skos

// Namespace is the base IRI prefix for SKOS terms.
const Namespace = "http://www.w3.org/2004/02/skos/core#"

// Documentation property IRIs.
const (
	// Definition carries the complete explanation of a concept.
	Definition = Namespace + "definition"

	// ScopeNote carries usage guidance for a concept.
	ScopeNote = Namespace + "scopeNote"

	// PrefLabel is the preferred lexical label of a concept.
	PrefLabel = Namespace + "prefLabel"
)
