// Package reason computes entailment closures over ontology graphs. The
// engine forward-chains the schema rules the documentation composers
// consume and deliberately produces none of the axiomatic noise a full
// reasoner would add, such as reflexive subsumption or universal typing.
package reason

import (
	"github.com/c360studio/semdocs/ontology"
	"github.com/c360studio/semdocs/vocabulary/owl"
	"github.com/c360studio/semdocs/vocabulary/rdf"
	"github.com/c360studio/semdocs/vocabulary/rdfs"
)

// Expander computes an entailment closure over a graph in place.
type Expander interface {
	Expand(g *ontology.Graph) error
}

// Engine is the built-in rule-based Expander. Its rules cover class and
// property hierarchy transitivity, equivalence as mutual subsumption,
// inverse axioms and their assertion consequences, symmetric and transitive
// assertions, and domain, range, and subclass typing.
type Engine struct{}

// NewEngine returns the default rule engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Expand runs the rule set to fixpoint. Every rule only combines terms
// already in the graph, so the closure is finite and the loop terminates.
func (e *Engine) Expand(g *ontology.Graph) error {
	for {
		before := g.Len()
		e.equivalenceRules(g)
		e.hierarchyRules(g)
		e.assertionRules(g)
		e.typingRules(g)
		if g.Len() == before {
			return nil
		}
	}
}

// equivalenceRules makes equivalence and inverse axioms symmetric and
// rewrites equivalences as mutual subsumption.
func (e *Engine) equivalenceRules(g *ontology.Graph) {
	eqClass := ontology.IRI(owl.EquivalentClass)
	subClass := ontology.IRI(rdfs.SubClassOf)
	for _, t := range g.Triples(nil, eqClass, nil) {
		g.Add(t.Object, eqClass, t.Subject)
		if !sameTerm(t.Subject, t.Object) {
			g.Add(t.Subject, subClass, t.Object)
			g.Add(t.Object, subClass, t.Subject)
		}
	}

	eqProp := ontology.IRI(owl.EquivalentProperty)
	subProp := ontology.IRI(rdfs.SubPropertyOf)
	for _, t := range g.Triples(nil, eqProp, nil) {
		g.Add(t.Object, eqProp, t.Subject)
		if !sameTerm(t.Subject, t.Object) {
			g.Add(t.Subject, subProp, t.Object)
			g.Add(t.Object, subProp, t.Subject)
		}
	}

	inverse := ontology.IRI(owl.InverseOf)
	for _, t := range g.Triples(nil, inverse, nil) {
		g.Add(t.Object, inverse, t.Subject)
	}
}

// hierarchyRules closes subClassOf and subPropertyOf transitively. The
// reflexive edge a rule cycle would produce is not asserted.
func (e *Engine) hierarchyRules(g *ontology.Graph) {
	for _, pred := range []string{rdfs.SubClassOf, rdfs.SubPropertyOf} {
		p := ontology.IRI(pred)
		triples := g.Triples(nil, p, nil)
		supers := make(map[string][]ontology.Term)
		for _, t := range triples {
			key := ontology.TermKey(t.Subject)
			supers[key] = append(supers[key], t.Object)
		}
		for _, t := range triples {
			for _, c := range supers[ontology.TermKey(t.Object)] {
				if !sameTerm(t.Subject, c) {
					g.Add(t.Subject, p, c)
				}
			}
		}
	}
}

// assertionRules propagates property assertions: along subPropertyOf, across
// inverses, and through symmetric and transitive declarations. Literals
// never become subjects.
func (e *Engine) assertionRules(g *ontology.Graph) {
	for _, ax := range g.Triples(nil, ontology.IRI(rdfs.SubPropertyOf), nil) {
		if !ontology.IsIRI(ax.Subject) || !ontology.IsIRI(ax.Object) || sameTerm(ax.Subject, ax.Object) {
			continue
		}
		for _, t := range g.Triples(nil, ax.Subject, nil) {
			g.Add(t.Subject, ax.Object, t.Object)
		}
	}

	for _, ax := range g.Triples(nil, ontology.IRI(owl.InverseOf), nil) {
		if !ontology.IsIRI(ax.Subject) || !ontology.IsIRI(ax.Object) {
			continue
		}
		for _, t := range g.Triples(nil, ax.Subject, nil) {
			if !ontology.IsLiteral(t.Object) {
				g.Add(t.Object, ax.Object, t.Subject)
			}
		}
	}

	for _, p := range g.SubjectsOfType(owl.SymmetricProperty) {
		if !ontology.IsIRI(p) {
			continue
		}
		for _, t := range g.Triples(nil, p, nil) {
			if !ontology.IsLiteral(t.Object) {
				g.Add(t.Object, p, t.Subject)
			}
		}
	}

	for _, p := range g.SubjectsOfType(owl.TransitiveProperty) {
		if !ontology.IsIRI(p) {
			continue
		}
		triples := g.Triples(nil, p, nil)
		objects := make(map[string][]ontology.Term)
		for _, t := range triples {
			key := ontology.TermKey(t.Subject)
			objects[key] = append(objects[key], t.Object)
		}
		for _, t := range triples {
			for _, z := range objects[ontology.TermKey(t.Object)] {
				g.Add(t.Subject, p, z)
			}
		}
	}
}

// typingRules derives rdf:type triples from domain and range declarations
// and inherits types along the class hierarchy.
func (e *Engine) typingRules(g *ontology.Graph) {
	typ := ontology.IRI(rdf.Type)

	for _, ax := range g.Triples(nil, ontology.IRI(rdfs.Domain), nil) {
		if !ontology.IsIRI(ax.Subject) {
			continue
		}
		for _, t := range g.Triples(nil, ax.Subject, nil) {
			g.Add(t.Subject, typ, ax.Object)
		}
	}

	for _, ax := range g.Triples(nil, ontology.IRI(rdfs.Range), nil) {
		if !ontology.IsIRI(ax.Subject) {
			continue
		}
		for _, t := range g.Triples(nil, ax.Subject, nil) {
			if !ontology.IsLiteral(t.Object) {
				g.Add(t.Object, typ, ax.Object)
			}
		}
	}

	for _, ax := range g.Triples(nil, ontology.IRI(rdfs.SubClassOf), nil) {
		if sameTerm(ax.Subject, ax.Object) {
			continue
		}
		for _, x := range g.Subjects(typ, ax.Subject) {
			g.Add(x, typ, ax.Object)
		}
	}
}

func sameTerm(a, b ontology.Term) bool {
	return ontology.TermKey(a) == ontology.TermKey(b)
}
