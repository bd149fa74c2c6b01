// Package docgen orchestrates a documentation-generation run: it builds the
// reasoned read view, runs the four sentence composers against it in a fixed
// order, and reports what each one did. Annotations land on the base graph;
// the reasoned view is never serialized.
package docgen

import (
	"fmt"
	"log/slog"

	"github.com/c360studio/semdocs/compose"
	"github.com/c360studio/semdocs/ontology"
	"github.com/c360studio/semdocs/reason"
)

// Options control a generation run.
type Options struct {
	// ScopeNotes enables class-axiom scope-note generation.
	ScopeNotes bool

	// Overwrite regenerates subjects that already carry managed text.
	Overwrite bool

	// Reason expands a cloned view with the entailment engine before
	// composing. When off, composers see asserted triples only; that is an
	// explicit choice, never a silent fallback.
	Reason bool

	// Date is the ISO date stamped into markers. Empty means today.
	Date string

	// Expander overrides the entailment engine. Nil uses reason.NewEngine.
	Expander reason.Expander

	// Logger receives progress output. Nil means slog.Default().
	Logger *slog.Logger
}

// Report holds the per-composer counts of one run.
type Report struct {
	Classes            compose.Result
	DatatypeProperties compose.Result
	ObjectProperties   compose.Result
	ScopeNotes         compose.Result
}

// Run generates documentation annotations on g. A failing expansion aborts
// the run before any write: no closure-dependent composer can produce
// meaningful sentences over a half-expanded view.
func Run(g *ontology.Graph, opts Options) (Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	read := g
	if opts.Reason {
		expander := opts.Expander
		if expander == nil {
			expander = reason.NewEngine()
		}
		read = g.Clone()
		before := read.Len()
		if err := expander.Expand(read); err != nil {
			return Report{}, fmt.Errorf("expand entailment closure: %w", err)
		}
		logger.Debug("entailment closure computed",
			"asserted", before, "entailed", read.Len()-before)
	} else {
		logger.Debug("reasoning disabled, composing over asserted triples only")
	}

	composer := compose.New(read, g, compose.Options{
		Overwrite: opts.Overwrite,
		Date:      opts.Date,
	})

	var report Report
	report.Classes = composer.ClassDefinitions()
	report.DatatypeProperties = composer.DatatypePropertyDefinitions()
	report.ObjectProperties = composer.ObjectPropertyDefinitions()
	if opts.ScopeNotes {
		report.ScopeNotes = composer.ClassAxiomScopeNotes()
	}
	return report, nil
}
