// Package xsd provides IRI constants for the XML Schema datatype vocabulary.
package xsd

// Namespace is the base IRI prefix for XML Schema datatypes.
const Namespace = "http://www.w3.org/2001/XMLSchema#"

// Datatype IRIs.
const (
	// String is the xsd:string datatype.
	String = Namespace + "string"

	// Boolean is the xsd:boolean datatype.
	Boolean = Namespace + "boolean"

	// Integer is the xsd:integer datatype.
	Integer = Namespace + "integer"

	// NonNegativeInteger is the xsd:nonNegativeInteger datatype.
	NonNegativeInteger = Namespace + "nonNegativeInteger"

	// Decimal is the xsd:decimal datatype.
	Decimal = Namespace + "decimal"

	// Date is the xsd:date datatype.
	Date = Namespace + "date"

	// DateTime is the xsd:dateTime datatype.
	DateTime = Namespace + "dateTime"
)

// Constraining-facet IRIs used inside owl:withRestrictions nodes.
const (
	// MinInclusive is the inclusive lower bound facet.
	MinInclusive = Namespace + "minInclusive"

	// MaxInclusive is the inclusive upper bound facet.
	MaxInclusive = Namespace + "maxInclusive"

	// MinExclusive is the exclusive lower bound facet.
	MinExclusive = Namespace + "minExclusive"

	// MaxExclusive is the exclusive upper bound facet.
	MaxExclusive = Namespace + "maxExclusive"

	// Pattern is the regular-expression facet.
	Pattern = Namespace + "pattern"

	// Length is the exact-length facet.
	Length = Namespace + "length"

	// MinLength is the minimum-length facet.
	MinLength = Namespace + "minLength"

	// MaxLength is the maximum-length facet.
	MaxLength = Namespace + "maxLength"
)
