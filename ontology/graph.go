package ontology

import (
	rdf2go "github.com/deiu/rdf2go"

	"github.com/c360studio/semdocs/vocabulary/rdf"
)

// Graph is an in-memory RDF graph with deterministic accessors and
// namespace-prefix tracking.
type Graph struct {
	store    *rdf2go.Graph
	prefixes map[string]string
	base     string
}

// New returns an empty graph with the standard W3C prefixes bound.
func New() *Graph {
	return NewWithBase("")
}

// NewWithBase returns an empty graph whose base IRI is used to resolve
// relative references during parsing.
func NewWithBase(base string) *Graph {
	return &Graph{
		store:    rdf2go.NewGraph(base),
		prefixes: defaultPrefixes(),
		base:     base,
	}
}

// defaultPrefixes returns the namespace prefixes bound on every new graph.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":  "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		"rdfs": "http://www.w3.org/2000/01/rdf-schema#",
		"owl":  "http://www.w3.org/2002/07/owl#",
		"xsd":  "http://www.w3.org/2001/XMLSchema#",
		"skos": "http://www.w3.org/2004/02/skos/core#",
	}
}

// Base returns the base IRI the graph was created with.
func (g *Graph) Base() string {
	return g.base
}

// Len returns the number of triples in the graph.
func (g *Graph) Len() int {
	return g.store.Len()
}

// Add asserts a triple. Re-adding an existing triple is a no-op, keeping
// Len equal to the number of distinct statements.
func (g *Graph) Add(s, p, o Term) {
	if g.Has(s, p, o) {
		return
	}
	g.store.AddTriple(s, p, o)
}

// Has reports whether the exact triple is present.
func (g *Graph) Has(s, p, o Term) bool {
	return g.store.One(s, p, o) != nil
}

// Remove deletes every triple matching the pattern. Nil acts as a wildcard.
// It returns the number of triples removed.
func (g *Graph) Remove(s, p, o Term) int {
	matched := g.Triples(s, p, o)
	for _, t := range matched {
		g.store.Remove(t)
	}
	return len(matched)
}

// Triples returns every triple matching the pattern, sorted by subject,
// predicate, then object. Nil acts as a wildcard.
func (g *Graph) Triples(s, p, o Term) []*Triple {
	var out []*Triple
	for t := range g.store.IterTriples() {
		if matchTriple(t, s, p, o) {
			out = append(out, t)
		}
	}
	SortTriples(out)
	return out
}

func matchTriple(t *Triple, s, p, o Term) bool {
	if s != nil && !t.Subject.Equal(s) {
		return false
	}
	if p != nil && !t.Predicate.Equal(p) {
		return false
	}
	if o != nil && !t.Object.Equal(o) {
		return false
	}
	return true
}

// Objects returns the distinct objects of (s, p, *), sorted.
func (g *Graph) Objects(s, p Term) []Term {
	return dedupeSorted(g.Triples(s, p, nil), func(t *Triple) Term { return t.Object })
}

// Subjects returns the distinct subjects of (*, p, o), sorted.
func (g *Graph) Subjects(p, o Term) []Term {
	return dedupeSorted(g.Triples(nil, p, o), func(t *Triple) Term { return t.Subject })
}

// SubjectsOfType returns the distinct subjects typed as the given class
// IRI, sorted.
func (g *Graph) SubjectsOfType(classIRI string) []Term {
	return g.Subjects(IRI(rdf.Type), IRI(classIRI))
}

// Value returns the deterministically first object of (s, p, *), or nil
// when the pattern has no match.
func (g *Graph) Value(s, p Term) Term {
	objs := g.Objects(s, p)
	if len(objs) == 0 {
		return nil
	}
	return objs[0]
}

func dedupeSorted(triples []*Triple, pick func(*Triple) Term) []Term {
	seen := make(map[string]bool, len(triples))
	var out []Term
	for _, t := range triples {
		term := pick(t)
		key := TermKey(term)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, term)
	}
	SortTerms(out)
	return out
}

// List flattens an RDF collection starting at head. Traversal stops at
// rdf:nil, on a missing rest pointer, or when a node repeats, so malformed
// or cyclic lists terminate with the elements collected so far.
func (g *Graph) List(head Term) []Term {
	var items []Term
	seen := make(map[string]bool)
	node := head
	for node != nil {
		if TermIRI(node) == rdf.Nil {
			break
		}
		key := TermKey(node)
		if seen[key] {
			break
		}
		seen[key] = true
		if first := g.Value(node, IRI(rdf.First)); first != nil {
			items = append(items, first)
		}
		node = g.Value(node, IRI(rdf.Rest))
	}
	return items
}

// Clone returns an independent copy of the graph. Term values are shared;
// they are immutable once constructed.
func (g *Graph) Clone() *Graph {
	out := NewWithBase(g.base)
	for t := range g.store.IterTriples() {
		out.store.AddTriple(t.Subject, t.Predicate, t.Object)
	}
	out.prefixes = make(map[string]string, len(g.prefixes))
	for p, ns := range g.prefixes {
		out.prefixes[p] = ns
	}
	return out
}

// Bind associates a prefix with a namespace IRI for QName compaction and
// Turtle output. Rebinding a prefix overwrites it.
func (g *Graph) Bind(prefix, namespace string) {
	g.prefixes[prefix] = namespace
}

// Prefixes returns a copy of the bound prefix map.
func (g *Graph) Prefixes() map[string]string {
	out := make(map[string]string, len(g.prefixes))
	for p, ns := range g.prefixes {
		out[p] = ns
	}
	return out
}

// Namespace returns the namespace bound to a prefix.
func (g *Graph) Namespace(prefix string) (string, bool) {
	ns, ok := g.prefixes[prefix]
	return ns, ok
}

// QName compacts an IRI against the bound prefixes. The longest matching
// namespace wins; ties go to the lexicographically smallest prefix. The
// second return is false when no binding applies or the local part would
// not survive Turtle round-tripping.
func (g *Graph) QName(iri string) (string, bool) {
	bestPrefix, bestNS := "", ""
	found := false
	for p, ns := range g.prefixes {
		if ns == "" || !hasPrefix(iri, ns) {
			continue
		}
		if !found || len(ns) > len(bestNS) || (len(ns) == len(bestNS) && p < bestPrefix) {
			bestPrefix, bestNS = p, ns
			found = true
		}
	}
	if !found {
		return "", false
	}
	local := iri[len(bestNS):]
	if !validLocalName(local) {
		return "", false
	}
	return bestPrefix + ":" + local, true
}

func hasPrefix(s, prefix string) bool {
	return len(s) > len(prefix) && s[:len(prefix)] == prefix
}

// validLocalName accepts the conservative subset of Turtle PN_LOCAL that
// needs no escaping.
func validLocalName(local string) bool {
	if local == "" {
		return false
	}
	for i, r := range local {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		case r == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
