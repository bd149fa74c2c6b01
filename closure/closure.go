// Package closure computes derived relations over an ontology graph: the
// property frontier (transitive super-properties plus equivalents, closed
// under both), effective domains and ranges, subclass reachability, and the
// minimal named parent set.
//
// Every method recomputes from the graph on each call and returns results
// sorted by canonical term key. Queries are read-only, so one Engine can
// serve any number of callers over the same graph view.
package closure

import (
	"github.com/c360studio/semdocs/ontology"
	"github.com/c360studio/semdocs/vocabulary/owl"
	"github.com/c360studio/semdocs/vocabulary/rdf"
	"github.com/c360studio/semdocs/vocabulary/rdfs"
)

// Engine answers closure queries against a single graph view. For
// documentation generation that view is the reasoned graph.
type Engine struct {
	g *ontology.Graph
}

// New returns an Engine reading from g.
func New(g *ontology.Graph) *Engine {
	return &Engine{g: g}
}

// TransitiveSuperProperties returns every named property reachable from p
// over rdfs:subPropertyOf edges. The seed is excluded unless a cycle leads
// back to it.
func (e *Engine) TransitiveSuperProperties(p ontology.Term) []ontology.Term {
	visited := newTermSet()
	supers := newTermSet()
	stack := []ontology.Term{p}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visited.add(cur) {
			continue
		}
		for _, sup := range e.g.Objects(cur, ontology.IRI(rdfs.SubPropertyOf)) {
			if !ontology.IsIRI(sup) {
				continue
			}
			supers.add(sup)
			stack = append(stack, sup)
		}
	}
	return supers.sorted()
}

// EquivalentProperties returns the named properties one owl:equivalentProperty
// hop away from p, in either stored direction.
func (e *Engine) EquivalentProperties(p ontology.Term) []ontology.Term {
	eq := newTermSet()
	for _, o := range e.g.Objects(p, ontology.IRI(owl.EquivalentProperty)) {
		if ontology.IsIRI(o) {
			eq.add(o)
		}
	}
	for _, s := range e.g.Subjects(ontology.IRI(owl.EquivalentProperty), p) {
		if ontology.IsIRI(s) {
			eq.add(s)
		}
	}
	return eq.sorted()
}

// PropertyFrontier returns the fixed point of p under super-property and
// equivalent-property expansion. The result always contains p and the
// computation terminates because the graph is finite and the set only grows.
func (e *Engine) PropertyFrontier(p ontology.Term) []ontology.Term {
	frontier := newTermSet()
	frontier.add(p)
	for changed := true; changed; {
		changed = false
		for _, q := range frontier.sorted() {
			for _, r := range e.TransitiveSuperProperties(q) {
				if frontier.add(r) {
					changed = true
				}
			}
			for _, r := range e.EquivalentProperties(q) {
				if frontier.add(r) {
					changed = true
				}
			}
		}
	}
	return frontier.sorted()
}

// EffectiveDomains returns the union of rdfs:domain objects over the
// frontier of p. Objects of any term kind are returned; callers filter.
func (e *Engine) EffectiveDomains(p ontology.Term) []ontology.Term {
	return e.effectiveObjects(p, rdfs.Domain)
}

// EffectiveRanges returns the union of rdfs:range objects over the frontier
// of p.
func (e *Engine) EffectiveRanges(p ontology.Term) []ontology.Term {
	return e.effectiveObjects(p, rdfs.Range)
}

func (e *Engine) effectiveObjects(p ontology.Term, predicate string) []ontology.Term {
	out := newTermSet()
	for _, q := range e.PropertyFrontier(p) {
		for _, o := range e.g.Objects(q, ontology.IRI(predicate)) {
			out.add(o)
		}
	}
	return out.sorted()
}

// IsSubclassOf reports whether sub reaches super over rdfs:subClassOf,
// reflexively and transitively, hopping through named classes only.
func (e *Engine) IsSubclassOf(sub, super ontology.Term) bool {
	if sub.Equal(super) {
		return true
	}
	seen := map[string]bool{ontology.TermKey(sub): true}
	stack := []ontology.Term{sub}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, sup := range e.g.Objects(cur, ontology.IRI(rdfs.SubClassOf)) {
			if !ontology.IsIRI(sup) {
				continue
			}
			if sup.Equal(super) {
				return true
			}
			if key := ontology.TermKey(sup); !seen[key] {
				seen[key] = true
				stack = append(stack, sup)
			}
		}
	}
	return false
}

// MinimalNamedParents returns the most specific named superclasses of cls.
// Candidates are the named superclass objects minus owl:Thing, owl:Nothing,
// and cls itself. A candidate is pruned when another candidate sits strictly
// below it, so only the tightest parents survive; members of an
// equal-specificity cycle are all kept.
func (e *Engine) MinimalNamedParents(cls ontology.Term) []ontology.Term {
	var candidates []ontology.Term
	for _, p := range e.g.Objects(cls, ontology.IRI(rdfs.SubClassOf)) {
		iri := ontology.TermIRI(p)
		if iri == "" || iri == owl.Thing || iri == owl.Nothing || p.Equal(cls) {
			continue
		}
		candidates = append(candidates, p)
	}
	if len(candidates) == 0 {
		return nil
	}

	var minimal []ontology.Term
	for _, q := range candidates {
		redundant := false
		for _, p := range candidates {
			if p.Equal(q) {
				continue
			}
			if e.IsSubclassOf(p, q) && !e.IsSubclassOf(q, p) {
				redundant = true
				break
			}
		}
		if !redundant {
			minimal = append(minimal, q)
		}
	}
	ontology.SortTerms(minimal)
	return minimal
}

// IsDatatypeProperty reports whether any member of p's frontier is declared
// an owl:DatatypeProperty.
func (e *Engine) IsDatatypeProperty(p ontology.Term) bool {
	for _, q := range e.PropertyFrontier(p) {
		if e.g.Has(q, ontology.IRI(rdf.Type), ontology.IRI(owl.DatatypeProperty)) {
			return true
		}
	}
	return false
}

// termSet is a set of terms keyed by canonical term key.
type termSet struct {
	byKey map[string]ontology.Term
}

func newTermSet() *termSet {
	return &termSet{byKey: make(map[string]ontology.Term)}
}

// add inserts t and reports whether it was new.
func (s *termSet) add(t ontology.Term) bool {
	key := ontology.TermKey(t)
	if _, ok := s.byKey[key]; ok {
		return false
	}
	s.byKey[key] = t
	return true
}

func (s *termSet) sorted() []ontology.Term {
	out := make([]ontology.Term, 0, len(s.byKey))
	for _, t := range s.byKey {
		out = append(out, t)
	}
	ontology.SortTerms(out)
	return out
}
