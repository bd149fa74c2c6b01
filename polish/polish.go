// Package polish implements the second documentation pass: generated
// definitions and scope notes are copy-edited by an LLM and re-marked as
// pass-2 text. Human-authored literals and literals already carrying a
// pass-2 token are never touched.
package polish

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/c360studio/semdocs/autogen"
	"github.com/c360studio/semdocs/llm"
	"github.com/c360studio/semdocs/ontology"
	"github.com/c360studio/semdocs/vocabulary/skos"
)

// Instructions is the system prompt sent with every copy-edit request. The
// wording is deliberately strict: the model may fix grammar and readability
// but must not alter facts, entities, relationships, sentence order, or
// technical terms.
const Instructions = "You are a meticulous technical copyeditor for ontology documentation. " +
	"Polish the following sentence(s) for grammar and readability only. " +
	"Do NOT add, remove, or change any facts, entities, or their relationships. " +
	"Keep the sentence order. Keep all technical terms exactly as written. " +
	"Return ONLY the edited text, without quotes or extra commentary."

// editedPredicates lists the documentation properties the pass rewrites, in
// scan order.
var editedPredicates = []string{skos.Definition, skos.ScopeNote}

// Options configures a polish run.
type Options struct {
	// Provider names the registered LLM provider ("openai", "anthropic",
	// "ollama").
	Provider string

	// Model is the provider-side model identifier.
	Model string

	// BaseURL overrides the provider's default endpoint when non-empty.
	BaseURL string

	// Lang tags rewritten literals with a language when non-empty.
	// Empty writes untagged literals.
	Lang string

	// Date stamps pass-2 tokens, ISO format. Empty means today.
	Date string

	// Logger receives per-subject progress and warnings. Nil means
	// slog.Default().
	Logger *slog.Logger
}

// Result reports what a polish run did.
type Result struct {
	// Examined counts literals that carried a pass-1 or legacy marker.
	Examined int

	// Polished counts literals rewritten with a pass-2 token.
	Polished int

	// Failed counts marked literals left unchanged because the LLM call
	// errored or returned nothing.
	Failed int
}

// Editor rewrites machine-generated documentation literals through an LLM.
type Editor struct {
	client *llm.Client
	opts   Options
	logger *slog.Logger
}

// New creates an Editor backed by the given client.
func New(client *llm.Client, opts Options) *Editor {
	if opts.Date == "" {
		opts.Date = autogen.ISODate(time.Now())
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Editor{client: client, opts: opts, logger: logger}
}

// Polish copy-edits every pass-1 and legacy-marked definition and scope note
// in g, replacing each with the edited text plus a fresh pass-2 token.
// Literals are visited in a fixed order (predicate, then subject, then
// value) so progress logs and request sequences are reproducible. Failures
// on one literal are logged and skipped; the run only aborts when the
// context is done.
func (e *Editor) Polish(ctx context.Context, g *ontology.Graph) (Result, error) {
	var res Result

	for _, predicate := range editedPredicates {
		for _, t := range g.Triples(nil, ontology.IRI(predicate), nil) {
			value, _, _, ok := ontology.LiteralParts(t.Object)
			if !ok {
				continue
			}
			ann, managed := autogen.Parse(value)
			if !managed || ann.Pass == autogen.PassPolished {
				// Human-authored or already polished.
				continue
			}
			res.Examined++

			e.logger.Info("polishing",
				"subject", ontology.TermValue(t.Subject),
				"predicate", ontology.LocalName(predicate))

			polished, err := e.polishText(ctx, ann.Core)
			if err != nil {
				if ctx.Err() != nil {
					return res, ctx.Err()
				}
				e.logger.Warn("skipping literal due to LLM error",
					"subject", ontology.TermValue(t.Subject),
					"error", err)
				res.Failed++
				continue
			}
			if polished == "" {
				e.logger.Warn("skipping literal, empty LLM response",
					"subject", ontology.TermValue(t.Subject))
				res.Failed++
				continue
			}

			text := polished + " " + autogen.Token(autogen.PassPolished, e.opts.Date)
			var lit ontology.Term
			if e.opts.Lang != "" {
				lit = ontology.LangLiteral(text, e.opts.Lang)
			} else {
				lit = ontology.Literal(text)
			}
			g.Remove(t.Subject, t.Predicate, t.Object)
			g.Add(t.Subject, t.Predicate, lit)
			res.Polished++
		}
	}

	return res, nil
}

// polishText sends one copy-edit request and returns the trimmed response.
func (e *Editor) polishText(ctx context.Context, text string) (string, error) {
	resp, err := e.client.Complete(ctx, llm.Request{
		Provider: e.opts.Provider,
		Model:    e.opts.Model,
		BaseURL:  e.opts.BaseURL,
		Messages: []llm.Message{
			{Role: "system", Content: Instructions},
			{Role: "user", Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("copy-edit request: %w", err)
	}
	return strings.TrimSpace(resp.Content), nil
}
