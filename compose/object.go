package compose

import (
	"fmt"

	"github.com/c360studio/semdocs/ontology"
	"github.com/c360studio/semdocs/render"
	"github.com/c360studio/semdocs/vocabulary/owl"
	"github.com/c360studio/semdocs/vocabulary/rdf"
	"github.com/c360studio/semdocs/vocabulary/rdfs"
	"github.com/c360studio/semdocs/vocabulary/skos"
)

// characteristicSentences lists the property characteristics in their fixed
// output order with the explanatory clause each one carries.
var characteristicSentences = []struct {
	class    string
	sentence string
}{
	{owl.FunctionalProperty, "It is functional which means that each subject can relate to at most one object by this property."},
	{owl.InverseFunctionalProperty, "It is inverse functional which means that each object can be related to by at most one subject via this property."},
	{owl.TransitiveProperty, "It is transitive which means that if x relates to y and y relates to z, then x relates to z."},
	{owl.SymmetricProperty, "It is symmetric which means that if x relates to y, then y relates to x."},
	{owl.AsymmetricProperty, "It is asymmetric which means that if x relates to y, then y cannot relate to x by this property."},
	{owl.ReflexiveProperty, "It is reflexive which means that every individual relates to itself by this property."},
	{owl.IrreflexiveProperty, "It is irreflexive which means that no individual relates to itself by this property."},
}

// ObjectPropertyDefinitions writes one definition per object property: the
// relation sentence, sub- and super-property sentences with their
// explanations, the inverse if one exists, and the declared characteristics.
// Each distinct name is quoted only the first time it appears in a subject's
// text.
func (c *Composer) ObjectPropertyDefinitions() Result {
	var res Result
	definition := ontology.IRI(skos.Definition)
	props := c.typedSubjects(owl.ObjectProperty, owl.TopObjectProperty, owl.BottomObjectProperty)

	for _, p := range props {
		if !c.gate(p, definition, &res) {
			continue
		}
		c.annotate(p, definition, joinSentences(c.objectPropertySentences(p)))
	}
	return res
}

func (c *Composer) objectPropertySentences(p ontology.Term) []string {
	quotes := make(quoter)
	label := render.Label(c.read, p)

	parts := []string{fmt.Sprintf("The property %s is %s.", quotes.quote(label), c.relationClause(p))}

	supers := c.relatedProperties(c.read.Objects(p, ontology.IRI(rdfs.SubPropertyOf)), p)
	if len(supers) > 0 {
		quoted := make([]string, 0, len(supers))
		for _, s := range supers {
			quoted = append(quoted, quotes.quote(render.Label(c.read, s)))
		}
		parts = append(parts, fmt.Sprintf("It is a sub-property of %s.", joinAnd(quoted)))
		for _, s := range supers {
			parts = append(parts, fmt.Sprintf("This means that if x %s y then x %s y.", label, render.Label(c.read, s)))
		}
	}

	subs := c.relatedProperties(c.read.Subjects(ontology.IRI(rdfs.SubPropertyOf), p), p)
	if len(subs) > 0 {
		quoted := make([]string, 0, len(subs))
		for _, s := range subs {
			quoted = append(quoted, quotes.quote(render.Label(c.read, s)))
		}
		parts = append(parts, fmt.Sprintf("It is the super-property for %s.", joinAnd(quoted)))
		for _, s := range subs {
			parts = append(parts, fmt.Sprintf("This means that if a subject x %s y then x %s y.", render.Label(c.read, s), label))
		}
	}

	if inv := c.inverseOf(p); inv != nil {
		invLabel := render.Label(c.read, inv)
		parts = append(parts, fmt.Sprintf("It has inverse %s, which means that if x %s y then y %s x.",
			quotes.quote(invLabel), label, invLabel))
	}

	for _, ch := range characteristicSentences {
		if c.read.Has(p, ontology.IRI(rdf.Type), ontology.IRI(ch.class)) {
			parts = append(parts, ch.sentence)
		}
	}
	return parts
}

// relationClause phrases the effective domains and ranges: a single value
// renders as its class expression, several as an intersection, none as
// "Thing".
func (c *Composer) relationClause(p ontology.Term) string {
	domains := c.closures.EffectiveDomains(p)
	ranges := c.closures.EffectiveRanges(p)
	return fmt.Sprintf("a relation between %s and %s", c.classPhrase(domains), c.classPhrase(ranges))
}

func (c *Composer) classPhrase(vals []ontology.Term) string {
	if len(vals) == 0 {
		return "Thing"
	}
	if len(vals) == 1 {
		return c.renderer.Render(vals[0])
	}
	rendered := make([]string, 0, len(vals))
	for _, v := range vals {
		rendered = append(rendered, c.renderer.Render(v))
	}
	return render.JoinIntersection(rendered)
}

// relatedProperties keeps the named terms, dropping the reflexive edge.
func (c *Composer) relatedProperties(terms []ontology.Term, p ontology.Term) []ontology.Term {
	key := ontology.TermKey(p)
	out := make([]ontology.Term, 0, len(terms))
	for _, t := range terms {
		if ontology.IsIRI(t) && ontology.TermKey(t) != key {
			out = append(out, t)
		}
	}
	return out
}

// inverseOf picks the inverse with the lowest term key when the axiom is
// stated in either direction, so repeated runs name the same one. A property
// declared inverse of itself counts.
func (c *Composer) inverseOf(p ontology.Term) ontology.Term {
	pred := ontology.IRI(owl.InverseOf)
	set := make(map[string]ontology.Term)
	for _, t := range c.read.Objects(p, pred) {
		set[ontology.TermKey(t)] = t
	}
	for _, t := range c.read.Subjects(pred, p) {
		set[ontology.TermKey(t)] = t
	}
	if len(set) == 0 {
		return nil
	}
	terms := make([]ontology.Term, 0, len(set))
	for _, t := range set {
		terms = append(terms, t)
	}
	ontology.SortTerms(terms)
	return terms[0]
}
