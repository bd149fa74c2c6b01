// Package ontology wraps an in-memory RDF graph with the deterministic
// access the documentation pipeline depends on.
//
// The underlying store is a rdf2go graph, which iterates its triples in map
// order. Every accessor here that returns more than one value sorts the
// result by the canonical string form of the terms, so closure computation,
// sentence composition, and serialization are reproducible run over run.
//
// Two graph views travel through the pipeline: a reasoned view that is only
// read, and the base view that receives generated annotations. Both are
// plain *Graph values; the separation is a calling convention, not a type.
package ontology
