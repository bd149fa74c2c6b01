package ontology

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	rdf2go "github.com/deiu/rdf2go"

	"github.com/c360studio/semdocs/vocabulary/rdf"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "turtle", "ttl":
		return FormatTurtle, nil
	case "ntriples", "nt", "n-triples":
		return FormatNTriples, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", name)
	}
}

// Serialize writes the graph to w. Output is byte-stable: prefixes,
// subjects, predicates, and objects are emitted in sorted order, so two
// serializations of equal graphs are identical.
func (g *Graph) Serialize(w io.Writer, format Format) error {
	var out string
	switch format {
	case FormatTurtle:
		out = g.toTurtle()
	case FormatNTriples:
		out = g.toNTriples()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("write graph: %w", err)
	}
	return nil
}

// WriteFile serializes the graph to path, creating parent directories as
// needed.
func (g *Graph) WriteFile(path string, format Format) error {
	var sb strings.Builder
	if err := g.Serialize(&sb, format); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}

// toTurtle serializes to Turtle format.
func (g *Graph) toTurtle() string {
	var sb strings.Builder

	for _, prefix := range g.usedPrefixes() {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", prefix, g.prefixes[prefix]))
	}
	if g.Len() > 0 {
		sb.WriteString("\n")
	}

	triples := g.Triples(nil, nil, nil)
	bySubject := groupBySubject(triples)
	for i, group := range bySubject {
		if i > 0 {
			sb.WriteString("\n")
		}
		g.writeSubjectTurtle(&sb, group)
	}
	return sb.String()
}

// subjectGroup holds one subject's triples in serialization order:
// rdf:type first, remaining predicates sorted.
type subjectGroup struct {
	subject    Term
	predicates []predicateGroup
}

type predicateGroup struct {
	predicate Term
	objects   []Term
}

func groupBySubject(triples []*Triple) []subjectGroup {
	var groups []subjectGroup
	index := make(map[string]int)
	for _, t := range triples {
		key := TermKey(t.Subject)
		gi, ok := index[key]
		if !ok {
			gi = len(groups)
			index[key] = gi
			groups = append(groups, subjectGroup{subject: t.Subject})
		}
		g := &groups[gi]
		pi := -1
		for j := range g.predicates {
			if g.predicates[j].predicate.Equal(t.Predicate) {
				pi = j
				break
			}
		}
		if pi < 0 {
			pi = len(g.predicates)
			g.predicates = append(g.predicates, predicateGroup{predicate: t.Predicate})
		}
		g.predicates[pi].objects = append(g.predicates[pi].objects, t.Object)
	}
	for gi := range groups {
		preds := groups[gi].predicates
		sort.Slice(preds, func(i, j int) bool {
			ti := TermIRI(preds[i].predicate) == rdf.Type
			tj := TermIRI(preds[j].predicate) == rdf.Type
			if ti != tj {
				return ti
			}
			return TermKey(preds[i].predicate) < TermKey(preds[j].predicate)
		})
		for pi := range preds {
			SortTerms(preds[pi].objects)
		}
	}
	return groups
}

func (g *Graph) writeSubjectTurtle(sb *strings.Builder, group subjectGroup) {
	sb.WriteString(g.formatTurtleTerm(group.subject))
	sb.WriteString("\n")
	for i, pg := range group.predicates {
		pred := g.formatTurtleTerm(pg.predicate)
		if TermIRI(pg.predicate) == rdf.Type {
			pred = "a"
		}
		rendered := make([]string, 0, len(pg.objects))
		for _, o := range pg.objects {
			rendered = append(rendered, g.formatTurtleTerm(o))
		}
		sb.WriteString(fmt.Sprintf("    %s %s", pred, strings.Join(rendered, ", ")))
		if i < len(group.predicates)-1 {
			sb.WriteString(" ;\n")
		} else {
			sb.WriteString(" .\n")
		}
	}
}

// toNTriples serializes to N-Triples format.
func (g *Graph) toNTriples() string {
	var sb strings.Builder
	for _, t := range g.Triples(nil, nil, nil) {
		sb.WriteString(fmt.Sprintf("%s %s %s .\n",
			formatNTriplesTerm(t.Subject),
			formatNTriplesTerm(t.Predicate),
			formatNTriplesTerm(t.Object)))
	}
	return sb.String()
}

// usedPrefixes returns, sorted, the bound prefix names whose namespace is
// actually referenced by some term in the graph.
func (g *Graph) usedPrefixes() []string {
	used := make(map[string]bool)
	note := func(iri string) {
		if qn, ok := g.QName(iri); ok {
			used[qn[:strings.Index(qn, ":")]] = true
		}
	}
	for t := range g.store.IterTriples() {
		for _, term := range []Term{t.Subject, t.Predicate, t.Object} {
			if iri := TermIRI(term); iri != "" {
				note(iri)
			}
			if _, _, dt, ok := LiteralParts(term); ok && dt != "" {
				note(dt)
			}
		}
	}
	names := make([]string, 0, len(used))
	for p := range used {
		names = append(names, p)
	}
	sort.Strings(names)
	return names
}

func (g *Graph) formatTurtleTerm(t Term) string {
	switch v := t.(type) {
	case *rdf2go.Resource:
		if qn, ok := g.QName(v.URI); ok {
			return qn
		}
		return "<" + v.URI + ">"
	case *rdf2go.BlankNode:
		return "_:" + v.ID
	case *rdf2go.Literal:
		s := "\"" + escapeLiteral(v.Value) + "\""
		if v.Language != "" {
			return s + "@" + v.Language
		}
		if v.Datatype != nil {
			dt := v.Datatype.RawValue()
			if qn, ok := g.QName(dt); ok {
				return s + "^^" + qn
			}
			return s + "^^<" + dt + ">"
		}
		return s
	default:
		return t.String()
	}
}

func formatNTriplesTerm(t Term) string {
	switch v := t.(type) {
	case *rdf2go.Resource:
		return "<" + v.URI + ">"
	case *rdf2go.BlankNode:
		return "_:" + v.ID
	case *rdf2go.Literal:
		s := "\"" + escapeLiteral(v.Value) + "\""
		if v.Language != "" {
			return s + "@" + v.Language
		}
		if v.Datatype != nil {
			return s + "^^<" + v.Datatype.RawValue() + ">"
		}
		return s
	default:
		return t.String()
	}
}

// escapeLiteral escapes special characters for Turtle and N-Triples
// literal output.
func escapeLiteral(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
