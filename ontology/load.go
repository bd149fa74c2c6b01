package ontology

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// turtlePrefix matches @prefix and SPARQL-style PREFIX declarations. The
// prefix name group is optional so the default namespace declaration
// "@prefix : <...>" is captured too.
var turtlePrefix = regexp.MustCompile(`(?mi)^\s*(?:@prefix|prefix)\s+([A-Za-z][A-Za-z0-9_-]*)?:\s*<([^>]*)>`)

// Load parses Turtle from r into the graph. Prefix declarations in the
// document are harvested into the graph's prefix map before parsing; the
// underlying store discards them otherwise.
func (g *Graph) Load(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read ontology: %w", err)
	}
	g.harvestPrefixes(data)
	if err := g.store.Parse(bytes.NewReader(data), "text/turtle"); err != nil {
		return fmt.Errorf("parse turtle: %w", err)
	}
	return nil
}

// LoadJSONLD parses JSON-LD from r into the graph.
func (g *Graph) LoadJSONLD(r io.Reader) error {
	if err := g.store.Parse(r, "application/ld+json"); err != nil {
		return fmt.Errorf("parse json-ld: %w", err)
	}
	return nil
}

// LoadFile reads an ontology document from disk. Files ending in .jsonld
// are parsed as JSON-LD, everything else as Turtle (which covers N-Triples
// as a subset). The file's absolute path becomes the base IRI for relative
// references.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ontology: %w", err)
	}
	defer f.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	g := NewWithBase("file://" + abs)

	if strings.EqualFold(filepath.Ext(path), ".jsonld") {
		if err := g.LoadJSONLD(f); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		return g, nil
	}
	if err := g.Load(f); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return g, nil
}

func (g *Graph) harvestPrefixes(data []byte) {
	for _, m := range turtlePrefix.FindAllSubmatch(data, -1) {
		prefix := string(m[1])
		namespace := string(m[2])
		if namespace == "" {
			continue
		}
		g.prefixes[prefix] = namespace
	}
}
