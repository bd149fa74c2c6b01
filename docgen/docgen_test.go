package docgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semdocs/compose"
	"github.com/c360studio/semdocs/ontology"
	"github.com/c360studio/semdocs/vocabulary/owl"
	"github.com/c360studio/semdocs/vocabulary/rdf"
	"github.com/c360studio/semdocs/vocabulary/rdfs"
	"github.com/c360studio/semdocs/vocabulary/skos"
	"github.com/c360studio/semdocs/vocabulary/xsd"
)

const (
	exNS     = "http://example.org/"
	testDate = "2026-08-28"
)

func ex(name string) ontology.Term {
	return ontology.IRI(exNS + name)
}

func annotations(g *ontology.Graph, subject ontology.Term, predicate string) []string {
	var out []string
	for _, o := range g.Objects(subject, ontology.IRI(predicate)) {
		out = append(out, ontology.TermValue(o))
	}
	return out
}

// animalOntology asserts only the direct subclass edges; the transitive
// Dog to Animal edge must come from the reasoning pass.
func animalOntology() *ontology.Graph {
	g := ontology.New()
	g.Add(ex("Dog"), ontology.IRI(rdf.Type), ontology.IRI(owl.Class))
	g.Add(ex("Dog"), ontology.IRI(rdfs.SubClassOf), ex("Mammal"))
	g.Add(ex("Mammal"), ontology.IRI(rdf.Type), ontology.IRI(owl.Class))
	g.Add(ex("Mammal"), ontology.IRI(rdfs.SubClassOf), ex("Animal"))
	g.Add(ex("Animal"), ontology.IRI(rdf.Type), ontology.IRI(owl.Class))
	return g
}

func TestRun_EndToEnd(t *testing.T) {
	g := animalOntology()

	report, err := Run(g, Options{ScopeNotes: true, Reason: true, Date: testDate})
	require.NoError(t, err)
	assert.Equal(t, compose.Result{Added: 2, Skipped: 1}, report.Classes)

	dog := annotations(g, ex("Dog"), skos.Definition)
	require.Len(t, dog, 1)
	assert.Equal(t, "A Dog is a kind of Mammal. ⟦AUTOGEN:P1:2026-08-28⟧", dog[0])

	// No named parent beyond the universal top: no annotation at all.
	assert.Empty(t, annotations(g, ex("Animal"), skos.Definition))

	// Entailed triples stay on the reasoned view; the base graph only gains
	// annotations.
	assert.False(t, g.Has(ex("Dog"), ontology.IRI(rdfs.SubClassOf), ex("Animal")))
}

func TestRun_Idempotent(t *testing.T) {
	g := animalOntology()

	_, err := Run(g, Options{ScopeNotes: true, Reason: true, Date: testDate})
	require.NoError(t, err)
	before := g.Len()

	report, err := Run(g, Options{ScopeNotes: true, Reason: true, Date: testDate})
	require.NoError(t, err)
	assert.Equal(t, before, g.Len())
	assert.Zero(t, report.Classes.Added)
	assert.Zero(t, report.Classes.Updated)
	assert.Zero(t, report.ScopeNotes.Added)
}

func TestRun_DatatypeProperty(t *testing.T) {
	g := ontology.New()
	g.Add(ex("age"), ontology.IRI(rdf.Type), ontology.IRI(owl.DatatypeProperty))
	g.Add(ex("age"), ontology.IRI(rdfs.Domain), ex("Person"))
	g.Add(ex("age"), ontology.IRI(rdfs.Range), ontology.IRI(xsd.Integer))

	report, err := Run(g, Options{Reason: true, Date: testDate})
	require.NoError(t, err)
	assert.Equal(t, compose.Result{Added: 1}, report.DatatypeProperties)

	got := annotations(g, ex("age"), skos.Definition)
	require.Len(t, got, 1)
	assert.Equal(t,
		"The data property age records a Person's age as an xsd:integer value. ⟦AUTOGEN:P1:2026-08-28⟧",
		got[0])
}

func TestRun_ScopeNotesDisabled(t *testing.T) {
	g := animalOntology()

	report, err := Run(g, Options{ScopeNotes: false, Reason: true, Date: testDate})
	require.NoError(t, err)
	assert.Zero(t, report.ScopeNotes)
	assert.Empty(t, annotations(g, ex("Dog"), skos.ScopeNote))
}

func TestRun_NoReasonUsesAssertedTriplesOnly(t *testing.T) {
	g := ontology.New()
	// The domain is declared on the super-property only; without property
	// frontier input from reasoning the asserted triple still carries it,
	// so the asserted-only mode works off what is stated.
	g.Add(ex("age"), ontology.IRI(rdf.Type), ontology.IRI(owl.DatatypeProperty))
	g.Add(ex("age"), ontology.IRI(rdfs.Range), ontology.IRI(xsd.Integer))

	report, err := Run(g, Options{Reason: false, Date: testDate})
	require.NoError(t, err)
	assert.Equal(t, compose.Result{Added: 1}, report.DatatypeProperties)

	got := annotations(g, ex("age"), skos.Definition)
	require.Len(t, got, 1)
	assert.Equal(t,
		"The data property age records the age as an xsd:integer value. ⟦AUTOGEN:P1:2026-08-28⟧",
		got[0])
}

type failingExpander struct{}

func (failingExpander) Expand(*ontology.Graph) error {
	return errors.New("boom")
}

func TestRun_ExpanderFailureIsFatal(t *testing.T) {
	g := animalOntology()
	before := g.Len()

	_, err := Run(g, Options{Reason: true, Date: testDate, Expander: failingExpander{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expand entailment closure")
	// Nothing was written.
	assert.Equal(t, before, g.Len())
}
