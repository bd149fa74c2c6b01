// Package shacl provides IRI constants for the SHACL shapes vocabulary.
package shacl

// Namespace is the base IRI prefix for SHACL terms.
const Namespace = "http://www.w3.org/ns/shacl#"

// Shape class IRIs.
const (
	// NodeShape is the class of shapes targeting focus nodes.
	NodeShape = Namespace + "NodeShape"

	// PropertyShape is the class of shapes constraining a path.
	PropertyShape = Namespace + "PropertyShape"
)

// Shape property IRIs.
const (
	// TargetSubjectsOf targets every subject of a given predicate.
	TargetSubjectsOf = Namespace + "targetSubjectsOf"

	// Property links a node shape to one of its property shapes.
	Property = Namespace + "property"

	// Path names the predicate a property shape constrains.
	Path = Namespace + "path"

	// Datatype constrains value nodes to a single datatype.
	Datatype = Namespace + "datatype"

	// Message is the validation message reported on violation.
	Message = Namespace + "message"
)
