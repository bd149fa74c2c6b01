package compose

import (
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/semdocs/ontology"
	"github.com/c360studio/semdocs/render"
	"github.com/c360studio/semdocs/vocabulary/owl"
	"github.com/c360studio/semdocs/vocabulary/rdfs"
	"github.com/c360studio/semdocs/vocabulary/skos"
)

// ClassDefinitions writes one definition per class, naming its most specific
// named superclasses. A class with no named parent beyond the universal top
// gets no annotation at all.
func (c *Composer) ClassDefinitions() Result {
	var res Result
	definition := ontology.IRI(skos.Definition)

	for _, cls := range c.classSubjects() {
		label := render.Label(c.read, cls)
		parents := c.minimalParentsByLabel(cls)

		sentences := make([]string, 0, len(parents))
		for _, p := range parents {
			sentences = append(sentences, fmt.Sprintf("A %s is a kind of %s.", label, p.label))
		}
		if len(sentences) == 0 {
			res.Skipped++
			continue
		}
		if !c.gate(cls, definition, &res) {
			continue
		}
		c.annotate(cls, definition, joinSentences(sentences))
	}
	return res
}

// classSubjects gathers every named class: those typed owl:Class plus any
// named subject of a subClassOf axiom, minus the universal top and bottom.
func (c *Composer) classSubjects() []ontology.Term {
	set := make(map[string]ontology.Term)
	for _, s := range c.read.SubjectsOfType(owl.Class) {
		if ontology.IsIRI(s) {
			set[ontology.TermKey(s)] = s
		}
	}
	for _, s := range c.read.Subjects(ontology.IRI(rdfs.SubClassOf), nil) {
		if ontology.IsIRI(s) {
			set[ontology.TermKey(s)] = s
		}
	}
	delete(set, ontology.TermKey(ontology.IRI(owl.Thing)))
	delete(set, ontology.TermKey(ontology.IRI(owl.Nothing)))

	out := make([]ontology.Term, 0, len(set))
	for _, t := range set {
		out = append(out, t)
	}
	ontology.SortTerms(out)
	return out
}

type labeledTerm struct {
	term  ontology.Term
	label string
}

// minimalParentsByLabel returns the minimal named parents ordered by label,
// case-insensitively, with the term key as tie-break.
func (c *Composer) minimalParentsByLabel(cls ontology.Term) []labeledTerm {
	parents := c.closures.MinimalNamedParents(cls)
	out := make([]labeledTerm, 0, len(parents))
	for _, p := range parents {
		out = append(out, labeledTerm{term: p, label: render.Label(c.read, p)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		li, lj := strings.ToLower(out[i].label), strings.ToLower(out[j].label)
		if li != lj {
			return li < lj
		}
		return ontology.TermKey(out[i].term) < ontology.TermKey(out[j].term)
	})
	return out
}
