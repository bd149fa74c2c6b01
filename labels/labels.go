// Package labels synthesizes missing rdfs:label annotations from IRI local
// names. Classes and individuals keep the capitalization of their local
// name, properties are lowercased, and underscores become spaces. Existing
// labels are never altered.
package labels

import (
	"strings"

	"github.com/c360studio/semdocs/ontology"
	"github.com/c360studio/semdocs/vocabulary/owl"
	"github.com/c360studio/semdocs/vocabulary/rdf"
	"github.com/c360studio/semdocs/vocabulary/rdfs"
)

// propertyTypes lists the typings that mark a subject as a property rather
// than an individual.
var propertyTypes = map[string]bool{
	owl.ObjectProperty:            true,
	owl.DatatypeProperty:          true,
	owl.AnnotationProperty:        true,
	owl.TransitiveProperty:        true,
	owl.SymmetricProperty:         true,
	owl.FunctionalProperty:        true,
	owl.InverseFunctionalProperty: true,
}

// Options configures label generation.
type Options struct {
	// Namespace restricts generation to IRIs under this prefix. Required:
	// labeling terms from foreign vocabularies is never wanted.
	Namespace string

	// Lang tags created labels with a language. Empty writes plain literals,
	// and the existing-label check then only considers plain literals, so
	// each language can be filled in independently.
	Lang string
}

// Example records one created label for the run report.
type Example struct {
	IRI   string
	Label string
}

// Report summarizes a label-generation run.
type Report struct {
	// Created counts labels added.
	Created int

	// SkippedExisting counts candidates that already carried a label for the
	// requested language.
	SkippedExisting int

	// NamespaceFiltered counts candidates outside the configured namespace.
	NamespaceFiltered int

	// Examples holds up to five created (IRI, label) pairs.
	Examples []Example
}

// maxExamples caps the report's example list.
const maxExamples = 5

// Generate adds missing labels to g and reports what it did. Candidates are
// visited in a fixed order (classes, object properties, datatype properties,
// individuals, each sorted by IRI) so the report's examples are stable.
func Generate(g *ontology.Graph, opts Options) Report {
	gen := &generator{g: g, opts: opts}

	gen.run(g.SubjectsOfType(owl.Class), false, owl.Thing, owl.Nothing)
	gen.run(g.SubjectsOfType(owl.ObjectProperty), true, owl.TopObjectProperty)
	gen.run(g.SubjectsOfType(owl.DatatypeProperty), true, owl.TopDataProperty)
	gen.run(gen.individuals(), false)

	return gen.report
}

type generator struct {
	g      *ontology.Graph
	opts   Options
	report Report
}

// run labels one candidate group. Built-in IRIs in skip are passed over
// silently; they belong to OWL, not to the ontology being labeled.
func (gen *generator) run(candidates []ontology.Term, property bool, skip ...string) {
	for _, c := range candidates {
		iri := ontology.TermIRI(c)
		if builtin(iri, skip) {
			continue
		}
		local, ok := gen.localName(iri)
		if !ok {
			gen.report.NamespaceFiltered++
			continue
		}
		if gen.hasLabel(c) {
			gen.report.SkippedExisting++
			continue
		}
		label := makeLabel(local, property)
		if label == "" {
			continue
		}
		gen.addLabel(c, label)
		gen.report.Created++
		if len(gen.report.Examples) < maxExamples {
			gen.report.Examples = append(gen.report.Examples, Example{IRI: iri, Label: label})
		}
	}
}

func builtin(iri string, skip []string) bool {
	for _, s := range skip {
		if iri == s {
			return true
		}
	}
	return false
}

// localName strips the configured namespace. A candidate outside the
// namespace, or equal to it, yields false.
func (gen *generator) localName(iri string) (string, bool) {
	if !strings.HasPrefix(iri, gen.opts.Namespace) {
		return "", false
	}
	local := iri[len(gen.opts.Namespace):]
	if local == "" {
		return "", false
	}
	return local, true
}

// hasLabel reports whether the term already carries a label for the
// requested language. Plain and tagged labels are independent.
func (gen *generator) hasLabel(term ontology.Term) bool {
	for _, o := range gen.g.Objects(term, ontology.IRI(rdfs.Label)) {
		_, lang, _, ok := ontology.LiteralParts(o)
		if !ok {
			continue
		}
		if lang == gen.opts.Lang {
			return true
		}
	}
	return false
}

func (gen *generator) addLabel(term ontology.Term, label string) {
	var lit ontology.Term
	if gen.opts.Lang != "" {
		lit = ontology.LangLiteral(label, gen.opts.Lang)
	} else {
		lit = ontology.Literal(label)
	}
	gen.g.Add(term, ontology.IRI(rdfs.Label), lit)
}

// individuals returns the IRI subjects carrying an rdf:type that is neither
// owl:Class nor a property typing. A subject typed both ways (for instance
// punned as class and instance) still appears here; the existing-label check
// keeps it from being labeled twice.
func (gen *generator) individuals() []ontology.Term {
	seen := make(map[string]bool)
	var out []ontology.Term
	for _, t := range gen.g.Triples(nil, ontology.IRI(rdf.Type), nil) {
		if !ontology.IsIRI(t.Subject) {
			continue
		}
		typeIRI := ontology.TermIRI(t.Object)
		if typeIRI == owl.Class || propertyTypes[typeIRI] {
			continue
		}
		key := ontology.TermKey(t.Subject)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t.Subject)
	}
	ontology.SortTerms(out)
	return out
}

// makeLabel turns a local name into its label text: underscores become
// spaces, property labels lowercase.
func makeLabel(local string, property bool) string {
	label := strings.TrimSpace(strings.ReplaceAll(local, "_", " "))
	if property {
		label = strings.ToLower(label)
	}
	return label
}
