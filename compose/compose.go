// Package compose turns reasoned ontology axioms into English documentation
// annotations. Each composer reads axioms from one graph view and writes
// marked annotation literals into another, honoring the regeneration
// protocol: subjects that already carry managed text are skipped unless
// overwrite is requested, and human-authored text is never touched.
package compose

import (
	"strings"
	"time"

	"github.com/c360studio/semdocs/autogen"
	"github.com/c360studio/semdocs/closure"
	"github.com/c360studio/semdocs/ontology"
	"github.com/c360studio/semdocs/render"
)

// Options control regeneration behavior.
type Options struct {
	// Overwrite regenerates subjects that already carry managed text.
	Overwrite bool

	// Date is the ISO date stamped into new markers. Empty means today.
	Date string
}

// Result counts what one composer did.
type Result struct {
	// Added is the number of subjects that received a first annotation.
	Added int

	// Updated is the number of subjects whose managed text was replaced.
	Updated int

	// Skipped is the number of subjects left untouched, either because they
	// already carry managed text or because there was nothing to say.
	Skipped int
}

// Composer generates documentation annotations. Axioms and labels come from
// the read view, usually the reasoned copy; existing markers are checked
// against the write view, the graph that is serialized, and new annotations
// land there.
type Composer struct {
	read     *ontology.Graph
	write    *ontology.Graph
	renderer *render.Renderer
	closures *closure.Engine
	opts     Options
}

// New returns a Composer over a read view and a write view. The two may be
// the same graph when generation runs without reasoning.
func New(read, write *ontology.Graph, opts Options) *Composer {
	if opts.Date == "" {
		opts.Date = autogen.ISODate(time.Now())
	}
	return &Composer{
		read:     read,
		write:    write,
		renderer: render.New(read),
		closures: closure.New(read),
		opts:     opts,
	}
}

// gate decides whether a fresh annotation may be written for subject on
// predicate, updating the counters. In overwrite mode stale managed text is
// removed first; human-authored values always stay.
func (c *Composer) gate(subject, predicate ontology.Term, res *Result) bool {
	if autogen.HasManaged(c.write, subject, predicate) {
		if !c.opts.Overwrite {
			res.Skipped++
			return false
		}
		autogen.RemoveManaged(c.write, subject, predicate)
		res.Updated++
		return true
	}
	res.Added++
	return true
}

// annotate writes the composed body with a fresh pass-1 marker.
func (c *Composer) annotate(subject, predicate ontology.Term, body string) {
	text := body + " " + autogen.Token(autogen.PassRaw, c.opts.Date)
	c.write.Add(subject, predicate, ontology.Literal(text))
}

// typedSubjects returns the named subjects declared with the given type,
// minus the excluded IRIs, sorted.
func (c *Composer) typedSubjects(classIRI string, exclude ...string) []ontology.Term {
	skip := make(map[string]bool, len(exclude))
	for _, iri := range exclude {
		skip[iri] = true
	}
	var out []ontology.Term
	for _, s := range c.read.SubjectsOfType(classIRI) {
		if ontology.IsIRI(s) && !skip[ontology.TermIRI(s)] {
			out = append(out, s)
		}
	}
	return out
}

// joinSentences strips, deduplicates preserving first-seen order, ensures a
// trailing period, and joins with single spaces.
func joinSentences(sentences []string) string {
	seen := make(map[string]bool, len(sentences))
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		if !strings.HasSuffix(s, ".") {
			s += "."
		}
		out = append(out, s)
	}
	return strings.Join(out, " ")
}

// joinAnd joins names in the listing form used by sub- and super-property
// sentences: a comma-separated run with ", and" before the last.
func joinAnd(parts []string) string {
	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
}

// quoter wraps each distinct name in quotes the first time it appears in one
// subject's composed text. Later mentions stay bare.
type quoter map[string]bool

func (q quoter) quote(name string) string {
	if q[name] {
		return name
	}
	q[name] = true
	return "'" + name + "'"
}
