package ontology

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semdocs/vocabulary/owl"
	"github.com/c360studio/semdocs/vocabulary/rdf"
	"github.com/c360studio/semdocs/vocabulary/rdfs"
	"github.com/c360studio/semdocs/vocabulary/xsd"
)

func serialize(t *testing.T, g *Graph, f Format) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, g.Serialize(&sb, f))
	return sb.String()
}

func TestSerialize_TurtleShape(t *testing.T) {
	g := New()
	g.Bind("ex", exNS)
	g.Add(ex("Dog"), IRI(rdf.Type), IRI(owl.Class))
	g.Add(ex("Dog"), IRI(rdfs.Label), Literal("Dog"))
	g.Add(ex("Dog"), IRI(rdfs.SubClassOf), ex("Mammal"))
	g.Add(ex("Dog"), IRI(rdfs.SubClassOf), ex("Pet"))

	out := serialize(t, g, FormatTurtle)

	// Only referenced prefixes appear, sorted.
	assert.Contains(t, out, "@prefix ex: <http://example.org/> .\n")
	assert.Contains(t, out, "@prefix owl: <http://www.w3.org/2002/07/owl#> .\n")
	assert.NotContains(t, out, "@prefix skos:")

	// Type assertion leads and uses the keyword form.
	assert.Contains(t, out, "ex:Dog\n    a owl:Class ;\n")

	// Multiple objects are comma-joined in sorted order.
	assert.Contains(t, out, "rdfs:subClassOf ex:Mammal, ex:Pet .")
}

func TestSerialize_IsByteStable(t *testing.T) {
	build := func(reversed bool) *Graph {
		g := New()
		g.Bind("ex", exNS)
		triples := [][3]Term{
			{ex("B"), IRI(rdfs.SubClassOf), ex("C")},
			{ex("A"), IRI(rdfs.SubClassOf), ex("B")},
			{ex("A"), IRI(rdfs.Label), Literal("alpha")},
		}
		if reversed {
			for i := len(triples) - 1; i >= 0; i-- {
				g.Add(triples[i][0], triples[i][1], triples[i][2])
			}
		} else {
			for _, tr := range triples {
				g.Add(tr[0], tr[1], tr[2])
			}
		}
		return g
	}

	first := serialize(t, build(false), FormatTurtle)
	second := serialize(t, build(true), FormatTurtle)
	assert.Equal(t, first, second)
}

func TestSerialize_LiteralForms(t *testing.T) {
	g := New()
	g.Bind("ex", exNS)
	g.Add(ex("a"), ex("plain"), Literal(`say "hi"`+"\nbye"))
	g.Add(ex("a"), ex("lang"), LangLiteral("hund", "de"))
	g.Add(ex("a"), ex("typed"), TypedLiteral("5", xsd.Integer))

	out := serialize(t, g, FormatTurtle)
	assert.Contains(t, out, `"say \"hi\"\nbye"`)
	assert.Contains(t, out, `"hund"@de`)
	assert.Contains(t, out, `"5"^^xsd:integer`)
}

func TestSerialize_NTriples(t *testing.T) {
	g := New()
	g.Add(ex("Dog"), IRI(rdfs.SubClassOf), ex("Mammal"))
	g.Add(ex("Dog"), IRI(rdfs.Label), Literal("Dog"))

	out := serialize(t, g, FormatNTriples)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	// Sorted by predicate within the shared subject, full IRIs throughout.
	assert.Equal(t, `<http://example.org/Dog> <http://www.w3.org/2000/01/rdf-schema#label> "Dog" .`, lines[0])
	assert.Equal(t, `<http://example.org/Dog> <http://www.w3.org/2000/01/rdf-schema#subClassOf> <http://example.org/Mammal> .`, lines[1])
}

func TestSerialize_RoundTrip(t *testing.T) {
	g := New()
	g.Bind("ex", exNS)
	g.Add(ex("Dog"), IRI(rdf.Type), IRI(owl.Class))
	g.Add(ex("Dog"), IRI(rdfs.SubClassOf), ex("Mammal"))
	g.Add(ex("Dog"), IRI(rdfs.Label), LangLiteral("Dog", "en"))
	g.Add(ex("age"), IRI(rdfs.Range), IRI(xsd.Integer))

	out := serialize(t, g, FormatTurtle)

	back := New()
	require.NoError(t, back.Load(strings.NewReader(out)))
	assert.Equal(t, g.Len(), back.Len())
	assert.True(t, back.Has(ex("Dog"), IRI(rdfs.SubClassOf), ex("Mammal")))
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{
		"turtle": FormatTurtle,
		"ttl":    FormatTurtle,
		"nt":     FormatNTriples,
		"N-Triples": FormatNTriples,
	} {
		got, err := ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("rdfxml")
	assert.Error(t, err)
}
