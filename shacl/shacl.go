// Package shacl derives SHACL datatype constraints from an OWL ontology.
// Each selected datatype property yields a NodeShape targeting every subject
// of the property, with a property shape pinning the value datatype. The
// ontology's own range declarations can then be stripped into a refactored
// copy, moving value validation out of the class model and into shapes.
package shacl

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/c360studio/semdocs/ontology"
	"github.com/c360studio/semdocs/vocabulary/owl"
	"github.com/c360studio/semdocs/vocabulary/rdf"
	"github.com/c360studio/semdocs/vocabulary/rdfs"
	shvocab "github.com/c360studio/semdocs/vocabulary/shacl"
	"github.com/c360studio/semdocs/vocabulary/xsd"
)

// defaultDatatypes are the ranges auto-discovery selects when no explicit
// property identifiers are given.
var defaultDatatypes = map[string]bool{
	xsd.Decimal:  true,
	xsd.Integer:  true,
	xsd.DateTime: true,
}

// Options configures constraint generation.
type Options struct {
	// Properties lists the datatype properties to constrain. Each entry may
	// be a full IRI, a CURIE resolvable against the graph's prefixes, or a
	// bare local name (requires IRIBase). Empty selects every declared
	// datatype property whose range is xsd:decimal, xsd:integer, or
	// xsd:dateTime.
	Properties []string

	// IRIBase resolves bare local names in Properties.
	IRIBase string

	// IRISep joins IRIBase and a bare name, "#" or "/". Empty infers the
	// separator from the graph's declared datatype properties.
	IRISep string

	// Lenient skips identifiers that do not resolve to a datatype property
	// instead of failing the run.
	Lenient bool

	// Logger receives skip warnings. Nil means slog.Default().
	Logger *slog.Logger
}

// Target pairs a datatype property with the XSD datatype its values must
// carry.
type Target struct {
	Property ontology.Term
	Datatype ontology.Term
}

// Generator builds a shapes graph for one ontology.
type Generator struct {
	g      *ontology.Graph
	opts   Options
	logger *slog.Logger
}

// New creates a Generator over the given ontology.
func New(g *ontology.Graph, opts Options) *Generator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{g: g, opts: opts, logger: logger}
}

// Targets resolves the configured property identifiers, or auto-discovers
// eligible datatype properties when none were given. An empty selection is
// an error: a constraints file with no shapes helps nobody.
func (gen *Generator) Targets() ([]Target, error) {
	var targets []Target
	var err error
	if len(gen.opts.Properties) > 0 {
		targets, err = gen.explicitTargets()
		if err != nil {
			return nil, err
		}
	} else {
		targets = gen.discoverTargets()
	}
	if len(targets) == 0 {
		return nil, errors.New("no datatype properties selected for constraint generation")
	}
	return targets, nil
}

// explicitTargets resolves user-supplied identifiers against the graph.
func (gen *Generator) explicitTargets() ([]Target, error) {
	var targets []Target
	for _, ident := range gen.opts.Properties {
		prop, err := gen.resolve(ident)
		if err != nil {
			return nil, err
		}
		iri := ontology.TermIRI(prop)

		declared := gen.g.Has(prop, ontology.IRI(rdf.Type), ontology.IRI(owl.DatatypeProperty))
		ranges := gen.g.Objects(prop, ontology.IRI(rdfs.Range))
		if !declared && len(ranges) == 0 {
			if !gen.opts.Lenient {
				return nil, fmt.Errorf("identifier %q resolved to <%s>, which is not a datatype property", ident, iri)
			}
			gen.logger.Warn("identifier is not a datatype property, skipping",
				"identifier", ident, "iri", iri)
			continue
		}
		if len(ranges) == 0 {
			gen.logger.Warn("property has no explicit range, skipping", "property", iri)
			continue
		}

		// Ranges come back sorted, so the first XSD hit is the lowest IRI
		// and repeated runs pick the same datatype.
		var datatype ontology.Term
		for _, r := range ranges {
			if strings.HasPrefix(ontology.TermIRI(r), xsd.Namespace) {
				datatype = r
				break
			}
		}
		if datatype == nil {
			gen.logger.Warn("property has no XSD range, skipping", "property", iri)
			continue
		}
		targets = append(targets, Target{Property: prop, Datatype: datatype})
	}
	return targets, nil
}

// discoverTargets selects every declared datatype property with an eligible
// XSD range, one target per (property, range) pair.
func (gen *Generator) discoverTargets() []Target {
	var targets []Target
	for _, p := range gen.g.SubjectsOfType(owl.DatatypeProperty) {
		for _, r := range gen.g.Objects(p, ontology.IRI(rdfs.Range)) {
			if defaultDatatypes[ontology.TermIRI(r)] {
				targets = append(targets, Target{Property: p, Datatype: r})
			}
		}
	}
	return targets
}

// resolve expands an identifier to an IRI term. Full IRIs pass through,
// CURIEs expand against the graph's prefixes, and anything else is a bare
// local name appended to IRIBase. An unknown CURIE prefix falls through to
// bare-name handling so "ex:name" still resolves when "ex" was never bound
// but a base was given.
func (gen *Generator) resolve(ident string) (ontology.Term, error) {
	if strings.Contains(ident, "://") {
		return ontology.IRI(ident), nil
	}
	if i := strings.Index(ident, ":"); i >= 0 {
		if ns, ok := gen.g.Namespace(ident[:i]); ok {
			return ontology.IRI(ns + ident[i+1:]), nil
		}
	}
	if gen.opts.IRIBase == "" {
		return nil, fmt.Errorf("identifier %q is a bare name but no IRI base was provided", ident)
	}
	base := gen.opts.IRIBase
	if !strings.HasSuffix(base, "#") && !strings.HasSuffix(base, "/") {
		sep := gen.opts.IRISep
		if sep == "" {
			sep = gen.inferSeparator()
		}
		base += sep
	}
	return ontology.IRI(base + ident), nil
}

// inferSeparator guesses whether terms under IRIBase use "#" or "/" by
// majority vote over the declared datatype properties. Ties and empty votes
// go to "#".
func (gen *Generator) inferSeparator() string {
	hash, slash := 0, 0
	for _, s := range gen.g.SubjectsOfType(owl.DatatypeProperty) {
		iri := ontology.TermIRI(s)
		if iri == "" || !strings.HasPrefix(iri, gen.opts.IRIBase) {
			continue
		}
		if strings.Contains(iri[len(gen.opts.IRIBase):], "#") {
			hash++
		} else {
			slash++
		}
	}
	if hash >= slash {
		return "#"
	}
	return "/"
}

// Shapes builds the constraints graph for the given targets. Shape IRIs are
// the property IRI plus "_Shape"; property shapes are blank nodes minted in
// target order.
func (gen *Generator) Shapes(targets []Target) *ontology.Graph {
	shapes := ontology.New()
	shapes.Bind("sh", shvocab.Namespace)
	for prefix, ns := range gen.g.Prefixes() {
		if _, bound := shapes.Namespace(prefix); !bound {
			shapes.Bind(prefix, ns)
		}
	}

	for i, t := range targets {
		propIRI := ontology.TermIRI(t.Property)
		shape := ontology.IRI(propIRI + "_Shape")
		shapes.Add(shape, ontology.IRI(rdf.Type), ontology.IRI(shvocab.NodeShape))
		shapes.Add(shape, ontology.IRI(shvocab.TargetSubjectsOf), t.Property)

		pshape := ontology.Blank(fmt.Sprintf("ps%d", i+1))
		shapes.Add(shape, ontology.IRI(shvocab.Property), pshape)
		shapes.Add(pshape, ontology.IRI(shvocab.Path), t.Property)
		shapes.Add(pshape, ontology.IRI(shvocab.Datatype), t.Datatype)
		msg := fmt.Sprintf("Value of %s must have datatype %s.", propIRI, ontology.TermIRI(t.Datatype))
		shapes.Add(pshape, ontology.IRI(shvocab.Message), ontology.Literal(msg))
	}
	return shapes
}

// WithoutRanges returns a copy of the ontology with every rdfs:range triple
// of the targeted properties removed, for use alongside the shapes graph.
func (gen *Generator) WithoutRanges(targets []Target) *ontology.Graph {
	out := gen.g.Clone()
	done := make(map[string]bool, len(targets))
	for _, t := range targets {
		key := ontology.TermKey(t.Property)
		if done[key] {
			continue
		}
		done[key] = true
		out.Remove(t.Property, ontology.IRI(rdfs.Range), nil)
	}
	return out
}
