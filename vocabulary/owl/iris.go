package owl

// Namespace is the base IRI prefix for OWL 2 terms.
const Namespace = "http://www.w3.org/2002/07/owl#"

// Class and entity-declaration IRIs.
const (
	// Ontology is the class of OWL ontology headers.
	Ontology = Namespace + "Ontology"

	// Class is the class of OWL classes.
	Class = Namespace + "Class"

	// Restriction is the class of property restrictions.
	Restriction = Namespace + "Restriction"

	// Thing is the universal class containing every individual.
	Thing = Namespace + "Thing"

	// Nothing is the empty class.
	Nothing = Namespace + "Nothing"

	// NamedIndividual declares an individual explicitly.
	NamedIndividual = Namespace + "NamedIndividual"

	// ObjectProperty declares an individual-to-individual property.
	ObjectProperty = Namespace + "ObjectProperty"

	// DatatypeProperty declares an individual-to-literal property.
	DatatypeProperty = Namespace + "DatatypeProperty"

	// AnnotationProperty declares a non-logical annotation property.
	AnnotationProperty = Namespace + "AnnotationProperty"

	// TopObjectProperty relates every pair of individuals.
	TopObjectProperty = Namespace + "topObjectProperty"

	// TopDataProperty relates every individual to every literal.
	TopDataProperty = Namespace + "topDataProperty"

	// BottomObjectProperty relates no pair of individuals.
	BottomObjectProperty = Namespace + "bottomObjectProperty"

	// BottomDataProperty relates no individual to any literal.
	BottomDataProperty = Namespace + "bottomDataProperty"
)

// Axiom property IRIs.
const (
	// EquivalentClass asserts that two class expressions have the same extension.
	EquivalentClass = Namespace + "equivalentClass"

	// EquivalentProperty asserts that two properties have the same extension.
	EquivalentProperty = Namespace + "equivalentProperty"

	// InverseOf relates a property to its inverse.
	InverseOf = Namespace + "inverseOf"
)

// Class-expression construction IRIs.
const (
	// UnionOf lists the operands of a class union.
	UnionOf = Namespace + "unionOf"

	// IntersectionOf lists the operands of a class intersection.
	IntersectionOf = Namespace + "intersectionOf"

	// OneOf lists the members of an enumeration class.
	OneOf = Namespace + "oneOf"

	// ComplementOf points at the complemented class expression.
	ComplementOf = Namespace + "complementOf"
)

// Restriction constituent IRIs.
const (
	// OnProperty names the property a restriction constrains.
	OnProperty = Namespace + "onProperty"

	// SomeValuesFrom is the existential filler of a restriction.
	SomeValuesFrom = Namespace + "someValuesFrom"

	// AllValuesFrom is the universal filler of a restriction.
	AllValuesFrom = Namespace + "allValuesFrom"

	// HasValue is the individual or literal a restriction pins.
	HasValue = Namespace + "hasValue"

	// HasSelf marks a local-reflexivity restriction.
	HasSelf = Namespace + "hasSelf"

	// OnClass qualifies a cardinality restriction with a class.
	OnClass = Namespace + "onClass"

	// OnDataRange qualifies a cardinality restriction with a data range.
	OnDataRange = Namespace + "onDataRange"

	// Cardinality is an exact unqualified cardinality.
	Cardinality = Namespace + "cardinality"

	// MinCardinality is a minimum unqualified cardinality.
	MinCardinality = Namespace + "minCardinality"

	// MaxCardinality is a maximum unqualified cardinality.
	MaxCardinality = Namespace + "maxCardinality"

	// QualifiedCardinality is an exact qualified cardinality.
	QualifiedCardinality = Namespace + "qualifiedCardinality"

	// MinQualifiedCardinality is a minimum qualified cardinality.
	MinQualifiedCardinality = Namespace + "minQualifiedCardinality"

	// MaxQualifiedCardinality is a maximum qualified cardinality.
	MaxQualifiedCardinality = Namespace + "maxQualifiedCardinality"
)

// Datatype-restriction IRIs.
const (
	// OnDatatype names the base datatype of a datatype restriction.
	OnDatatype = Namespace + "onDatatype"

	// WithRestrictions lists the facet nodes of a datatype restriction.
	WithRestrictions = Namespace + "withRestrictions"
)

// Property-characteristic class IRIs.
const (
	// FunctionalProperty limits each subject to at most one object.
	FunctionalProperty = Namespace + "FunctionalProperty"

	// InverseFunctionalProperty limits each object to at most one subject.
	InverseFunctionalProperty = Namespace + "InverseFunctionalProperty"

	// TransitiveProperty chains through intermediate individuals.
	TransitiveProperty = Namespace + "TransitiveProperty"

	// SymmetricProperty holds in both directions.
	SymmetricProperty = Namespace + "SymmetricProperty"

	// AsymmetricProperty never holds in both directions.
	AsymmetricProperty = Namespace + "AsymmetricProperty"

	// ReflexiveProperty relates every individual to itself.
	ReflexiveProperty = Namespace + "ReflexiveProperty"

	// IrreflexiveProperty never relates an individual to itself.
	IrreflexiveProperty = Namespace + "IrreflexiveProperty"
)
