package compose

import (
	"github.com/c360studio/semdocs/ontology"
	"github.com/c360studio/semdocs/vocabulary/owl"
	"github.com/c360studio/semdocs/vocabulary/rdfs"
	"github.com/c360studio/semdocs/vocabulary/skos"
)

type classAxiom struct {
	relation string
	expr     ontology.Term
}

// ClassAxiomScopeNotes writes one scope note per class, rendering its
// equivalent-class axioms first and then its subclass axioms as technical
// sentences. Classes with no renderable axiom get no note.
func (c *Composer) ClassAxiomScopeNotes() Result {
	var res Result
	scopeNote := ontology.IRI(skos.ScopeNote)
	classes := c.typedSubjects(owl.Class, owl.Thing, owl.Nothing)

	for _, cls := range classes {
		axioms := c.classAxioms(cls)
		if len(axioms) == 0 {
			res.Skipped++
			continue
		}
		if !c.gate(cls, scopeNote, &res) {
			continue
		}
		sentences := make([]string, 0, len(axioms))
		for _, ax := range axioms {
			sentences = append(sentences, c.renderer.AxiomSentence(cls, ax.expr, ax.relation))
		}
		c.annotate(cls, scopeNote, joinSentences(sentences))
	}
	return res
}

// classAxioms collects the axioms worth a sentence: equivalences skipping
// the reflexive one, then subclass edges skipping the universal top and
// bottom and the reflexive edge.
func (c *Composer) classAxioms(cls ontology.Term) []classAxiom {
	key := ontology.TermKey(cls)
	thing := ontology.TermKey(ontology.IRI(owl.Thing))
	nothing := ontology.TermKey(ontology.IRI(owl.Nothing))

	var axioms []classAxiom
	for _, e := range c.read.Objects(cls, ontology.IRI(owl.EquivalentClass)) {
		if ontology.TermKey(e) == key {
			continue
		}
		axioms = append(axioms, classAxiom{relation: "equivalent to", expr: e})
	}
	for _, e := range c.read.Objects(cls, ontology.IRI(rdfs.SubClassOf)) {
		switch ontology.TermKey(e) {
		case key, thing, nothing:
			continue
		}
		axioms = append(axioms, classAxiom{relation: "a kind of", expr: e})
	}
	return axioms
}
