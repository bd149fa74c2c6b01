// Package render turns ontology terms and class expressions into
// deterministic English phrases.
//
// Expressions are parsed once into a tagged variant tree and rendered from
// that tree, so the shape decision is made in exactly one place. Rendering
// is a pure function of the expression structure and the ambient graph;
// repeated calls yield identical strings.
package render

import (
	"strings"

	"github.com/c360studio/semdocs/ontology"
	"github.com/c360studio/semdocs/vocabulary/rdfs"
)

// Label resolves a term to a human-readable string. An rdfs:label literal
// wins (the deterministically first one when several are asserted);
// otherwise the local name of the IRI with underscores replaced by spaces.
// Anonymous terms without a label come back as a placeholder, never as a
// node identifier.
func Label(g *ontology.Graph, t ontology.Term) string {
	for _, o := range g.Objects(t, ontology.IRI(rdfs.Label)) {
		if ontology.IsLiteral(o) {
			return ontology.TermValue(o)
		}
	}
	if ontology.IsLiteral(t) {
		return ontology.TermValue(t)
	}
	if iri := ontology.TermIRI(t); iri != "" {
		if local := strings.ReplaceAll(ontology.LocalName(iri), "_", " "); local != "" {
			return local
		}
		return iri
	}
	return "anonymous term"
}

// QName resolves a term to a compact technical identifier: the prefixed
// form when a namespace binding applies, else the label with spaces
// replaced by underscores.
func QName(g *ontology.Graph, t ontology.Term) string {
	if iri := ontology.TermIRI(t); iri != "" {
		if qn, ok := g.QName(iri); ok {
			return qn
		}
	}
	return strings.ReplaceAll(Label(g, t), " ", "_")
}
