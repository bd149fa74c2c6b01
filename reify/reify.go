// Package reify refactors a direct relation into a first-class class: a
// property like has_employer on Employee becomes an Employment class with
// link and inverse properties, and the instance data is migrated onto minted
// Employment individuals. The transformation rewires the schema first, then
// moves assertions, so the refactored ontology says the same things through
// the new class.
package reify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/c360studio/semdocs/ontology"
	"github.com/c360studio/semdocs/vocabulary/owl"
	"github.com/c360studio/semdocs/vocabulary/rdf"
	"github.com/c360studio/semdocs/vocabulary/rdfs"
)

// Options name the participants of one transformation. Class, Relation,
// NewClass, and the optional overrides are local names resolved against
// Base.
type Options struct {
	// Base is the namespace IRI the local names live under. A missing
	// trailing "#" or "/" gets "#" appended.
	Base string

	// Class is the class whose relation is being reified, e.g. "Employee".
	Class string

	// Relation is the property to reify, e.g. "has_employer".
	Relation string

	// NewClass is the class to mint, e.g. "Employment".
	NewClass string

	// LinkProperty overrides the link property name. Empty derives
	// "has_<newclass>" (lowercased).
	LinkProperty string

	// Superclass is the domain of the link property. Empty uses Class.
	Superclass string

	// DryRun computes the report without mutating the graph.
	DryRun bool
}

// Report summarizes one transformation.
type Report struct {
	// RehomedProperties counts properties whose rdfs:domain moved from the
	// source class to the new class.
	RehomedProperties int

	// MintedInstances counts new-class individuals created.
	MintedInstances int

	// MovedAssertions counts instance triples relocated onto minted
	// individuals.
	MovedAssertions int
}

// unsafeLocal matches the characters a minted local name may not carry.
var unsafeLocal = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// Transform applies the refactor to g and reports what it did (or, under
// DryRun, what it would do).
func Transform(g *ontology.Graph, opts Options) (Report, error) {
	if err := validate(opts); err != nil {
		return Report{}, err
	}

	base := opts.Base
	if !strings.HasSuffix(base, "#") && !strings.HasSuffix(base, "/") {
		base += "#"
	}
	lower := strings.ToLower(opts.NewClass)

	cls := ontology.IRI(base + opts.Class)
	rel := ontology.IRI(base + opts.Relation)
	newCls := ontology.IRI(base + opts.NewClass)
	linkName := opts.LinkProperty
	if linkName == "" {
		linkName = "has_" + lower
	}
	link := ontology.IRI(base + linkName)
	inverse := ontology.IRI(base + "is_" + lower + "_of")
	domainCls := cls
	if opts.Superclass != "" {
		domainCls = ontology.IRI(base + opts.Superclass)
	}

	t := &transformer{g: g, dryRun: opts.DryRun}

	// Schema: declare the new class and both link properties, wire their
	// domains, ranges, and mutual inverse axioms.
	t.add(newCls, ontology.IRI(rdf.Type), ontology.IRI(owl.Class))
	t.add(link, ontology.IRI(rdf.Type), ontology.IRI(owl.ObjectProperty))
	t.add(inverse, ontology.IRI(rdf.Type), ontology.IRI(owl.ObjectProperty))
	t.add(link, ontology.IRI(rdfs.Domain), domainCls)
	t.add(link, ontology.IRI(rdfs.Range), newCls)
	t.add(inverse, ontology.IRI(rdfs.Domain), newCls)
	t.add(inverse, ontology.IRI(rdfs.Range), domainCls)
	t.add(link, ontology.IRI(owl.InverseOf), inverse)
	t.add(inverse, ontology.IRI(owl.InverseOf), link)

	// Re-home every property declared on the source class.
	rehomed := t.rehomeDomains(cls, newCls, rel)

	moveProps := make([]ontology.Term, 0, len(rehomed))
	for _, p := range rehomed {
		if !p.Equal(link) {
			moveProps = append(moveProps, p)
		}
	}

	report := Report{RehomedProperties: len(rehomed)}
	t.migrate(&report, migration{
		cls:       cls,
		rel:       rel,
		newCls:    newCls,
		link:      link,
		inverse:   inverse,
		newLocal:  opts.NewClass,
		base:      base,
		moveProps: moveProps,
	})
	return report, nil
}

func validate(opts Options) error {
	for _, f := range []struct{ name, value string }{
		{"base", opts.Base},
		{"class", opts.Class},
		{"relation", opts.Relation},
		{"new class", opts.NewClass},
	} {
		if f.value == "" {
			return fmt.Errorf("%s is required", f.name)
		}
	}
	return nil
}

type transformer struct {
	g      *ontology.Graph
	dryRun bool
}

func (t *transformer) add(s, p, o ontology.Term) {
	if !t.dryRun {
		t.g.Add(s, p, o)
	}
}

func (t *transformer) remove(s, p, o ontology.Term) {
	if !t.dryRun {
		t.g.Remove(s, p, o)
	}
}

// rehomeDomains moves rdfs:domain declarations from cls to newCls and
// returns the affected properties, sorted. The reified relation counts even
// when its domain was the only declaration.
func (t *transformer) rehomeDomains(cls, newCls, rel ontology.Term) []ontology.Term {
	props := t.g.Subjects(ontology.IRI(rdfs.Domain), cls)
	for _, p := range props {
		t.remove(p, ontology.IRI(rdfs.Domain), cls)
		t.add(p, ontology.IRI(rdfs.Domain), newCls)
	}
	for _, p := range props {
		if p.Equal(rel) {
			return props
		}
	}
	if t.g.Has(rel, ontology.IRI(rdfs.Domain), cls) {
		props = append(props, rel)
		ontology.SortTerms(props)
	}
	return props
}

type migration struct {
	cls, rel, newCls, link, inverse ontology.Term
	newLocal, base                  string
	moveProps                       []ontology.Term
}

// migrate mints one new-class individual per (instance, relation, object)
// assertion, relocates the relation and the re-homed assertions onto it, and
// links the instance to it in both directions. Instances carrying re-homed
// assertions but no relation get a single minted node keyed by a fresh uuid.
func (t *transformer) migrate(report *Report, m migration) {
	for _, x := range t.g.SubjectsOfType(ontology.TermIRI(m.cls)) {
		objects := t.g.Objects(x, m.rel)

		var carried []*ontology.Triple
		for _, p := range m.moveProps {
			if p.Equal(m.rel) {
				continue
			}
			carried = append(carried, t.g.Triples(x, p, nil)...)
		}

		if len(objects) == 0 && len(carried) == 0 {
			continue
		}

		attach := func(node ontology.Term) {
			t.add(node, ontology.IRI(rdf.Type), m.newCls)
			t.add(x, m.link, node)
			t.add(node, m.inverse, x)
			report.MintedInstances++
			for _, c := range carried {
				t.add(node, c.Predicate, c.Object)
			}
		}

		if len(objects) > 0 {
			for _, o := range objects {
				node := t.mint(m, x, ontology.TermValue(o))
				attach(node)
				t.remove(x, m.rel, o)
				t.add(node, m.rel, o)
				report.MovedAssertions++
			}
		} else {
			attach(t.mint(m, x, uuid.NewString()))
		}

		for _, c := range carried {
			t.remove(c.Subject, c.Predicate, c.Object)
			report.MovedAssertions++
		}
	}
}

// mint derives the IRI of a new-class individual from the source instance
// and a distinguishing key. Keys that sanitize to nothing fall back to a
// fresh uuid so two degenerate keys never collide.
func (t *transformer) mint(m migration, x ontology.Term, key string) ontology.Term {
	safe := unsafeLocal.ReplaceAllString(localPart(key), "_")
	if strings.Trim(safe, "_") == "" {
		safe = strings.ReplaceAll(uuid.NewString(), "-", "_")
	}
	local := fmt.Sprintf("%s_%s_%s", m.newLocal, localPart(ontology.TermValue(x)), safe)
	return ontology.IRI(m.base + local)
}

// localPart trims an IRI-like string down to its final segment.
func localPart(s string) string {
	for _, sep := range []string{"#", "/", ":"} {
		if i := strings.LastIndex(s, sep); i >= 0 {
			s = s[i+1:]
		}
	}
	return s
}
