package closure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semdocs/ontology"
	"github.com/c360studio/semdocs/vocabulary/owl"
	"github.com/c360studio/semdocs/vocabulary/rdf"
	"github.com/c360studio/semdocs/vocabulary/rdfs"
)

const exNS = "http://example.org/"

func ex(name string) ontology.Term {
	return ontology.IRI(exNS + name)
}

func iris(terms []ontology.Term) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		out = append(out, ontology.TermIRI(t))
	}
	return out
}

func TestEngine_TransitiveSuperProperties(t *testing.T) {
	g := ontology.New()
	g.Add(ex("p1"), ontology.IRI(rdfs.SubPropertyOf), ex("p2"))
	g.Add(ex("p2"), ontology.IRI(rdfs.SubPropertyOf), ex("p3"))
	g.Add(ex("p2"), ontology.IRI(rdfs.SubPropertyOf), ontology.Blank("b1"))
	e := New(g)

	supers := e.TransitiveSuperProperties(ex("p1"))
	assert.Equal(t, []string{exNS + "p2", exNS + "p3"}, iris(supers))

	// Seed shows up only when a cycle brings it back.
	assert.Empty(t, e.TransitiveSuperProperties(ex("p3")))

	g.Add(ex("p3"), ontology.IRI(rdfs.SubPropertyOf), ex("p1"))
	supers = e.TransitiveSuperProperties(ex("p1"))
	assert.Equal(t, []string{exNS + "p1", exNS + "p2", exNS + "p3"}, iris(supers))
}

func TestEngine_EquivalentProperties_BothDirections(t *testing.T) {
	g := ontology.New()
	g.Add(ex("p"), ontology.IRI(owl.EquivalentProperty), ex("q"))
	g.Add(ex("r"), ontology.IRI(owl.EquivalentProperty), ex("p"))
	e := New(g)

	assert.Equal(t, []string{exNS + "q", exNS + "r"}, iris(e.EquivalentProperties(ex("p"))))
	assert.Equal(t, []string{exNS + "p"}, iris(e.EquivalentProperties(ex("q"))))
}

func TestEngine_PropertyFrontier(t *testing.T) {
	g := ontology.New()
	g.Add(ex("p1"), ontology.IRI(rdfs.SubPropertyOf), ex("p2"))
	g.Add(ex("p2"), ontology.IRI(owl.EquivalentProperty), ex("p3"))
	e := New(g)

	frontier := e.PropertyFrontier(ex("p1"))
	assert.Equal(t, []string{exNS + "p1", exNS + "p2", exNS + "p3"}, iris(frontier))

	// The frontier always contains its seed.
	assert.Equal(t, []string{exNS + "lone"}, iris(e.PropertyFrontier(ex("lone"))))
}

func TestEngine_EffectiveDomainsAndRanges(t *testing.T) {
	g := ontology.New()
	g.Add(ex("p1"), ontology.IRI(rdfs.SubPropertyOf), ex("p2"))
	g.Add(ex("p1"), ontology.IRI(rdfs.Domain), ex("A"))
	g.Add(ex("p2"), ontology.IRI(rdfs.Domain), ex("B"))
	g.Add(ex("p2"), ontology.IRI(rdfs.Range), ex("C"))
	e := New(g)

	assert.Equal(t, []string{exNS + "A", exNS + "B"}, iris(e.EffectiveDomains(ex("p1"))))
	assert.Equal(t, []string{exNS + "C"}, iris(e.EffectiveRanges(ex("p1"))))
	assert.Empty(t, e.EffectiveRanges(ex("q")))
}

func TestEngine_IsSubclassOf(t *testing.T) {
	g := ontology.New()
	g.Add(ex("A"), ontology.IRI(rdfs.SubClassOf), ex("B"))
	g.Add(ex("B"), ontology.IRI(rdfs.SubClassOf), ex("C"))
	e := New(g)

	assert.True(t, e.IsSubclassOf(ex("A"), ex("A")), "reflexive")
	assert.True(t, e.IsSubclassOf(ex("A"), ex("C")), "transitive")
	assert.False(t, e.IsSubclassOf(ex("C"), ex("A")))
}

func TestEngine_MinimalNamedParents(t *testing.T) {
	t.Run("chain keeps most specific", func(t *testing.T) {
		g := ontology.New()
		g.Add(ex("A"), ontology.IRI(rdfs.SubClassOf), ex("B"))
		g.Add(ex("A"), ontology.IRI(rdfs.SubClassOf), ex("C"))
		g.Add(ex("B"), ontology.IRI(rdfs.SubClassOf), ex("C"))
		e := New(g)

		parents := e.MinimalNamedParents(ex("A"))
		assert.Equal(t, []string{exNS + "B"}, iris(parents))
	})

	t.Run("diamond keeps both", func(t *testing.T) {
		g := ontology.New()
		g.Add(ex("A"), ontology.IRI(rdfs.SubClassOf), ex("B"))
		g.Add(ex("A"), ontology.IRI(rdfs.SubClassOf), ex("D"))
		e := New(g)

		parents := e.MinimalNamedParents(ex("A"))
		assert.Equal(t, []string{exNS + "B", exNS + "D"}, iris(parents))
	})

	t.Run("equal specificity cycle keeps all", func(t *testing.T) {
		g := ontology.New()
		g.Add(ex("A"), ontology.IRI(rdfs.SubClassOf), ex("B"))
		g.Add(ex("A"), ontology.IRI(rdfs.SubClassOf), ex("C"))
		g.Add(ex("B"), ontology.IRI(rdfs.SubClassOf), ex("C"))
		g.Add(ex("C"), ontology.IRI(rdfs.SubClassOf), ex("B"))
		e := New(g)

		parents := e.MinimalNamedParents(ex("A"))
		assert.Equal(t, []string{exNS + "B", exNS + "C"}, iris(parents))
	})

	t.Run("filters top bottom self and anonymous", func(t *testing.T) {
		g := ontology.New()
		g.Add(ex("A"), ontology.IRI(rdfs.SubClassOf), ontology.IRI(owl.Thing))
		g.Add(ex("A"), ontology.IRI(rdfs.SubClassOf), ontology.IRI(owl.Nothing))
		g.Add(ex("A"), ontology.IRI(rdfs.SubClassOf), ex("A"))
		g.Add(ex("A"), ontology.IRI(rdfs.SubClassOf), ontology.Blank("r1"))
		e := New(g)

		assert.Empty(t, e.MinimalNamedParents(ex("A")))
	})
}

func TestEngine_IsDatatypeProperty(t *testing.T) {
	g := ontology.New()
	g.Add(ex("age"), ontology.IRI(rdf.Type), ontology.IRI(owl.DatatypeProperty))
	g.Add(ex("exactAge"), ontology.IRI(rdfs.SubPropertyOf), ex("age"))
	g.Add(ex("knows"), ontology.IRI(rdf.Type), ontology.IRI(owl.ObjectProperty))
	e := New(g)

	assert.True(t, e.IsDatatypeProperty(ex("age")))
	require.True(t, e.IsDatatypeProperty(ex("exactAge")), "inherited through the frontier")
	assert.False(t, e.IsDatatypeProperty(ex("knows")))
}
