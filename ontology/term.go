package ontology

import (
	"sort"
	"strings"

	rdf2go "github.com/deiu/rdf2go"
)

// Term aliases the underlying RDF term interface so most callers never
// import rdf2go directly.
type Term = rdf2go.Term

// Triple aliases the underlying triple type.
type Triple = rdf2go.Triple

// IRI returns a named resource term.
func IRI(iri string) Term {
	return rdf2go.NewResource(iri)
}

// Blank returns a blank node term with the given label.
func Blank(id string) Term {
	return rdf2go.NewBlankNode(id)
}

// Literal returns a plain literal term.
func Literal(value string) Term {
	return rdf2go.NewLiteral(value)
}

// LangLiteral returns a language-tagged literal term.
func LangLiteral(value, lang string) Term {
	return rdf2go.NewLiteralWithLanguage(value, lang)
}

// TypedLiteral returns a literal term with a datatype IRI.
func TypedLiteral(value, datatype string) Term {
	return rdf2go.NewLiteralWithDatatype(value, rdf2go.NewResource(datatype))
}

// IsIRI reports whether the term is a named resource.
func IsIRI(t Term) bool {
	_, ok := t.(*rdf2go.Resource)
	return ok
}

// IsBlank reports whether the term is a blank node.
func IsBlank(t Term) bool {
	_, ok := t.(*rdf2go.BlankNode)
	return ok
}

// IsLiteral reports whether the term is a literal.
func IsLiteral(t Term) bool {
	_, ok := t.(*rdf2go.Literal)
	return ok
}

// TermIRI returns the IRI of a named resource, or "" for other terms.
func TermIRI(t Term) string {
	if r, ok := t.(*rdf2go.Resource); ok {
		return r.URI
	}
	return ""
}

// TermValue returns the raw lexical value of a term: the IRI of a resource,
// the label of a blank node, or the value of a literal.
func TermValue(t Term) string {
	if t == nil {
		return ""
	}
	return t.RawValue()
}

// LiteralParts returns the value, language tag, and datatype IRI of a
// literal term. The second return is false for non-literals.
func LiteralParts(t Term) (value, lang, datatype string, ok bool) {
	lit, isLit := t.(*rdf2go.Literal)
	if !isLit {
		return "", "", "", false
	}
	if lit.Datatype != nil {
		datatype = lit.Datatype.RawValue()
	}
	return lit.Value, lit.Language, datatype, true
}

// TermKey returns the canonical sort key of a term. Literals sort before
// IRIs, IRIs before blank nodes, matching their N-Triples lead characters.
func TermKey(t Term) string {
	if t == nil {
		return ""
	}
	return t.String()
}

// SortTerms sorts terms in place by their canonical key.
func SortTerms(terms []Term) {
	sort.Slice(terms, func(i, j int) bool {
		return TermKey(terms[i]) < TermKey(terms[j])
	})
}

// SortTriples sorts triples in place by subject, predicate, then object key.
func SortTriples(triples []*Triple) {
	sort.Slice(triples, func(i, j int) bool {
		return compareTriples(triples[i], triples[j]) < 0
	})
}

func compareTriples(a, b *Triple) int {
	if c := strings.Compare(TermKey(a.Subject), TermKey(b.Subject)); c != 0 {
		return c
	}
	if c := strings.Compare(TermKey(a.Predicate), TermKey(b.Predicate)); c != 0 {
		return c
	}
	return strings.Compare(TermKey(a.Object), TermKey(b.Object))
}

// LocalName returns the fragment of an IRI after the last '#' or '/'.
// Trailing separators are trimmed first so namespace IRIs yield their final
// path segment rather than an empty string.
func LocalName(iri string) string {
	trimmed := strings.TrimRight(iri, "#/")
	if trimmed == "" {
		return iri
	}
	if i := strings.LastIndexAny(trimmed, "#/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}
