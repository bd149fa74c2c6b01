package polish_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semdocs/llm"
	_ "github.com/c360studio/semdocs/llm/providers" // Register providers
	"github.com/c360studio/semdocs/ontology"
	"github.com/c360studio/semdocs/polish"
	"github.com/c360studio/semdocs/vocabulary/skos"
)

const (
	exNS     = "http://example.org/"
	testDate = "2026-08-26"
)

func ex(name string) ontology.Term {
	return ontology.IRI(exNS + name)
}

// chatRequest mirrors the OpenAI-compatible wire format the mock decodes.
type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

// mockLLM records incoming prompts and answers each with a transformed copy
// of the user message, in the OpenAI chat-completion format the ollama
// provider parses.
type mockLLM struct {
	mu      sync.Mutex
	prompts []string
	systems []string

	// fail makes the server reject any prompt containing the substring
	// with 400 (fatal, not retried).
	fail string

	// reply overrides the response text when non-nil.
	reply func(prompt string) string
}

func (m *mockLLM) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		prompt := req.Messages[len(req.Messages)-1].Content

		m.mu.Lock()
		m.prompts = append(m.prompts, prompt)
		if len(req.Messages) > 1 && req.Messages[0].Role == "system" {
			m.systems = append(m.systems, req.Messages[0].Content)
		}
		m.mu.Unlock()

		if m.fail != "" && strings.Contains(prompt, m.fail) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("refused"))
			return
		}

		content := "Polished: " + prompt
		if m.reply != nil {
			content = m.reply(prompt)
		}
		resp := map[string]any{
			"model": req.Model,
			"choices": []map[string]any{
				{
					"message": map[string]string{
						"role":    "assistant",
						"content": content,
					},
					"finish_reason": "stop",
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func (m *mockLLM) recorded() ([]string, []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...), append([]string(nil), m.systems...)
}

func newEditor(t *testing.T, mock *mockLLM, opts polish.Options) *polish.Editor {
	t.Helper()
	server := httptest.NewServer(mock.handler())
	t.Cleanup(server.Close)

	opts.Provider = "ollama"
	opts.Model = "test-model"
	opts.BaseURL = server.URL
	if opts.Date == "" {
		opts.Date = testDate
	}
	return polish.New(llm.NewClient(), opts)
}

// values returns the literal values of (subject, predicate) sorted by the
// graph's canonical order.
func values(g *ontology.Graph, subject ontology.Term, predicate string) []string {
	var out []string
	for _, o := range g.Objects(subject, ontology.IRI(predicate)) {
		if v, _, _, ok := ontology.LiteralParts(o); ok {
			out = append(out, v)
		}
	}
	return out
}

func TestEditor_Polish_RewritesPassOneLiterals(t *testing.T) {
	g := ontology.New()
	g.Add(ex("Dog"), ontology.IRI(skos.Definition),
		ontology.Literal("A Dog is a kind of Mammal. ⟦AUTOGEN:P1:2026-01-01⟧"))

	mock := &mockLLM{}
	editor := newEditor(t, mock, polish.Options{})

	res, err := editor.Polish(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, polish.Result{Examined: 1, Polished: 1}, res)

	assert.Equal(t,
		[]string{"Polished: A Dog is a kind of Mammal. ⟦AUTOGEN:P2:2026-08-26⟧"},
		values(g, ex("Dog"), skos.Definition))

	// The model must see only the core text, never the marker, and always
	// the strict copy-edit instructions.
	prompts, systems := mock.recorded()
	assert.Equal(t, []string{"A Dog is a kind of Mammal."}, prompts)
	require.Len(t, systems, 1)
	assert.Equal(t, polish.Instructions, systems[0])
}

func TestEditor_Polish_SkipsHumanAndPolishedText(t *testing.T) {
	g := ontology.New()
	g.Add(ex("Cat"), ontology.IRI(skos.Definition),
		ontology.Literal("A careful hand-written definition."))
	g.Add(ex("Dog"), ontology.IRI(skos.Definition),
		ontology.Literal("Already edited once. ⟦AUTOGEN:P2:2026-02-02⟧"))
	// Non-literal objects are ignored outright.
	g.Add(ex("Fish"), ontology.IRI(skos.Definition), ex("SomeDoc"))

	mock := &mockLLM{}
	editor := newEditor(t, mock, polish.Options{})

	res, err := editor.Polish(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, polish.Result{}, res)

	prompts, _ := mock.recorded()
	assert.Empty(t, prompts)
	assert.Equal(t, []string{"A careful hand-written definition."},
		values(g, ex("Cat"), skos.Definition))
	assert.Equal(t, []string{"Already edited once. ⟦AUTOGEN:P2:2026-02-02⟧"},
		values(g, ex("Dog"), skos.Definition))
}

func TestEditor_Polish_UpgradesLegacyMarkers(t *testing.T) {
	g := ontology.New()
	g.Add(ex("Engine"), ontology.IRI(skos.Definition),
		ontology.Literal("An Engine is a kind of Machine. Auto generated comment 2024-05-05"))

	mock := &mockLLM{}
	editor := newEditor(t, mock, polish.Options{})

	res, err := editor.Polish(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, polish.Result{Examined: 1, Polished: 1}, res)

	assert.Equal(t,
		[]string{"Polished: An Engine is a kind of Machine. ⟦AUTOGEN:P2:2026-08-26⟧"},
		values(g, ex("Engine"), skos.Definition))

	prompts, _ := mock.recorded()
	assert.Equal(t, []string{"An Engine is a kind of Machine."}, prompts)
}

func TestEditor_Polish_VisitsDefinitionsThenScopeNotes(t *testing.T) {
	g := ontology.New()
	g.Add(ex("b"), ontology.IRI(skos.Definition),
		ontology.Literal("b definition. ⟦AUTOGEN:P1:2026-01-01⟧"))
	g.Add(ex("a"), ontology.IRI(skos.Definition),
		ontology.Literal("a definition. ⟦AUTOGEN:P1:2026-01-01⟧"))
	g.Add(ex("a"), ontology.IRI(skos.ScopeNote),
		ontology.Literal("a scope note. ⟦AUTOGEN:P1:2026-01-01⟧"))

	mock := &mockLLM{}
	editor := newEditor(t, mock, polish.Options{})

	res, err := editor.Polish(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, polish.Result{Examined: 3, Polished: 3}, res)

	// All definitions first (subjects sorted), then scope notes.
	prompts, _ := mock.recorded()
	assert.Equal(t, []string{"a definition.", "b definition.", "a scope note."}, prompts)

	assert.Equal(t,
		[]string{"Polished: a scope note. ⟦AUTOGEN:P2:2026-08-26⟧"},
		values(g, ex("a"), skos.ScopeNote))
}

func TestEditor_Polish_ContinuesAfterAPIError(t *testing.T) {
	g := ontology.New()
	g.Add(ex("Bad"), ontology.IRI(skos.Definition),
		ontology.Literal("REJECT this one. ⟦AUTOGEN:P1:2026-01-01⟧"))
	g.Add(ex("Good"), ontology.IRI(skos.Definition),
		ontology.Literal("Keep this one. ⟦AUTOGEN:P1:2026-01-01⟧"))

	mock := &mockLLM{fail: "REJECT"}
	editor := newEditor(t, mock, polish.Options{})

	res, err := editor.Polish(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, polish.Result{Examined: 2, Polished: 1, Failed: 1}, res)

	// The failed literal keeps its pass-1 marker untouched.
	assert.Equal(t, []string{"REJECT this one. ⟦AUTOGEN:P1:2026-01-01⟧"},
		values(g, ex("Bad"), skos.Definition))
	assert.Equal(t, []string{"Polished: Keep this one. ⟦AUTOGEN:P2:2026-08-26⟧"},
		values(g, ex("Good"), skos.Definition))
}

func TestEditor_Polish_EmptyResponseSkips(t *testing.T) {
	g := ontology.New()
	g.Add(ex("Dog"), ontology.IRI(skos.Definition),
		ontology.Literal("A Dog is a kind of Mammal. ⟦AUTOGEN:P1:2026-01-01⟧"))

	mock := &mockLLM{reply: func(string) string { return "   " }}
	editor := newEditor(t, mock, polish.Options{})

	res, err := editor.Polish(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, polish.Result{Examined: 1, Failed: 1}, res)

	assert.Equal(t, []string{"A Dog is a kind of Mammal. ⟦AUTOGEN:P1:2026-01-01⟧"},
		values(g, ex("Dog"), skos.Definition))
}

func TestEditor_Polish_LanguageTag(t *testing.T) {
	g := ontology.New()
	g.Add(ex("Dog"), ontology.IRI(skos.Definition),
		ontology.Literal("A Dog is a kind of Mammal. ⟦AUTOGEN:P1:2026-01-01⟧"))

	mock := &mockLLM{}
	editor := newEditor(t, mock, polish.Options{Lang: "en"})

	_, err := editor.Polish(context.Background(), g)
	require.NoError(t, err)

	objs := g.Objects(ex("Dog"), ontology.IRI(skos.Definition))
	require.Len(t, objs, 1)
	_, lang, _, ok := ontology.LiteralParts(objs[0])
	require.True(t, ok)
	assert.Equal(t, "en", lang)
}

func TestEditor_Polish_AbortsWhenContextDone(t *testing.T) {
	g := ontology.New()
	g.Add(ex("Dog"), ontology.IRI(skos.Definition),
		ontology.Literal("A Dog is a kind of Mammal. ⟦AUTOGEN:P1:2026-01-01⟧"))
	g.Add(ex("Cat"), ontology.IRI(skos.Definition),
		ontology.Literal("A Cat is a kind of Mammal. ⟦AUTOGEN:P1:2026-01-01⟧"))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	editor := polish.New(llm.NewClient(), polish.Options{
		Provider: "ollama",
		Model:    "test-model",
		BaseURL:  server.URL,
		Date:     testDate,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	res, err := editor.Polish(ctx, g)
	require.Error(t, err)
	assert.Equal(t, 0, res.Polished)
}
