package render

import (
	"fmt"
	"strings"

	"github.com/c360studio/semdocs/ontology"
	"github.com/c360studio/semdocs/vocabulary/owl"
	"github.com/c360studio/semdocs/vocabulary/xsd"
)

// facetOrder fixes the emission order of recognized facets within one
// facet node. Unrecognized facet predicates are dropped silently.
var facetOrder = []struct {
	iri    string
	format string
}{
	{xsd.MinInclusive, "≥ %s"},
	{xsd.MaxInclusive, "≤ %s"},
	{xsd.MinExclusive, "> %s"},
	{xsd.MaxExclusive, "< %s"},
	{xsd.Pattern, "matching pattern %s"},
	{xsd.Length, "with length = %s"},
	{xsd.MinLength, "with length ≥ %s"},
	{xsd.MaxLength, "with length ≤ %s"},
}

// RenderDatatypeRange renders a datatype or datatype restriction into a
// compact technical phrase: a bare datatype IRI becomes "an <qname>", a
// restriction node appends its recognized facets joined by "and", and a
// node with no discoverable base datatype falls back to "a literal".
func (r *Renderer) RenderDatatypeRange(node ontology.Term) string {
	if node == nil {
		return "a literal"
	}
	if ontology.IsIRI(node) {
		return "an " + QName(r.g, node)
	}

	base := r.g.Value(node, ontology.IRI(owl.OnDatatype))
	if base == nil {
		return "a literal"
	}
	phrase := "an " + QName(r.g, base)

	var facets []string
	if head := r.g.Value(node, ontology.IRI(owl.WithRestrictions)); head != nil {
		for _, facetNode := range r.g.List(head) {
			facets = append(facets, r.renderFacets(facetNode)...)
		}
	}
	if len(facets) == 0 {
		return phrase
	}
	return phrase + " " + strings.Join(facets, " and ")
}

func (r *Renderer) renderFacets(node ontology.Term) []string {
	var out []string
	for _, f := range facetOrder {
		for _, v := range r.g.Objects(node, ontology.IRI(f.iri)) {
			out = append(out, fmt.Sprintf(f.format, ontology.TermValue(v)))
		}
	}
	return out
}
