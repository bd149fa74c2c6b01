// Package owl provides IRI constants for the OWL 2 vocabulary.
//
// The constants cover the subset of OWL 2 the documentation pipeline reads:
// entity declarations, subsumption and equivalence axioms, class-expression
// constructors (union, intersection, enumeration), property restrictions
// with qualified and unqualified cardinalities, datatype restrictions with
// facets, and the seven property-characteristic classes.
//
// Constants are full IRI strings so they can be compared directly against
// term values from the graph without prefix resolution.
package owl
