// Package rdfs provides IRI constants for the RDF Schema vocabulary.
package rdfs

// Namespace is the base IRI prefix for RDF Schema terms.
const Namespace = "http://www.w3.org/2000/01/rdf-schema#"

// Annotation property IRIs.
const (
	// Label is the human-readable name of a resource.
	Label = Namespace + "label"

	// Comment is a human-readable description of a resource.
	Comment = Namespace + "comment"
)

// Schema property IRIs.
const (
	// SubClassOf relates a class to one of its superclasses.
	SubClassOf = Namespace + "subClassOf"

	// SubPropertyOf relates a property to one of its superproperties.
	SubPropertyOf = Namespace + "subPropertyOf"

	// Domain constrains the subjects of a property to a class.
	Domain = Namespace + "domain"

	// Range constrains the objects of a property to a class or datatype.
	Range = Namespace + "range"
)

// Class IRIs.
const (
	// Datatype is the class of RDF datatypes.
	Datatype = Namespace + "Datatype"
)
