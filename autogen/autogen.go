// Package autogen recognizes and manipulates the dated generation markers
// embedded in annotation text. Text carrying a marker is "managed" and may be
// regenerated or polished; anything else is human-authored and is never
// touched.
package autogen

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/c360studio/semdocs/ontology"
)

// Pass identifies which generation pass produced a managed annotation.
type Pass string

const (
	// PassRaw marks text produced by the sentence composers.
	PassRaw Pass = "P1"

	// PassPolished marks text that has been through the copy-edit pass.
	PassPolished Pass = "P2"
)

// Marker patterns. U+27E6 and U+27E7 are the corner brackets.
var (
	p1Pattern     = regexp.MustCompile(`⟦AUTOGEN:P1:(\d{4}-\d{2}-\d{2})⟧`)
	p2Pattern     = regexp.MustCompile(`⟦AUTOGEN:P2:(\d{4}-\d{2}-\d{2})⟧`)
	legacyPattern = regexp.MustCompile(`(?i)Auto generated comment\s+(\d{4}-\d{2}-\d{2})\s*$`)
)

// Token returns the dated marker for a generation pass.
func Token(pass Pass, date string) string {
	return fmt.Sprintf("⟦AUTOGEN:%s:%s⟧", pass, date)
}

// ISODate formats a time as the date form the markers carry.
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

// Annotation is the parsed form of a managed annotation value.
type Annotation struct {
	// Core is the marker-free text, right-trimmed.
	Core string

	// Pass is the generation pass the marker claims. Legacy values parse
	// as PassRaw.
	Pass Pass

	// Date is the ISO date carried by the marker.
	Date string

	// Legacy is true when the value carried the free-text marker instead
	// of a bracketed token.
	Legacy bool
}

// String reassembles the annotation text with its marker.
func (a Annotation) String() string {
	if a.Core == "" {
		return Token(a.Pass, a.Date)
	}
	return a.Core + " " + Token(a.Pass, a.Date)
}

// Parse splits a managed annotation value into its core text and marker.
// The second return is false for human-authored text. Polished markers are
// checked first so a value carrying both parses as polished.
func Parse(text string) (Annotation, bool) {
	if m := p2Pattern.FindStringSubmatchIndex(text); m != nil {
		return Annotation{
			Core: strings.TrimRight(text[:m[0]], " \t"),
			Pass: PassPolished,
			Date: text[m[2]:m[3]],
		}, true
	}
	if m := p1Pattern.FindStringSubmatchIndex(text); m != nil {
		return Annotation{
			Core: strings.TrimRight(text[:m[0]], " \t"),
			Pass: PassRaw,
			Date: text[m[2]:m[3]],
		}, true
	}
	if m := legacyPattern.FindStringSubmatchIndex(text); m != nil {
		return Annotation{
			Core:   strings.TrimRight(text[:m[0]], " \t"),
			Pass:   PassRaw,
			Date:   text[m[2]:m[3]],
			Legacy: true,
		}, true
	}
	return Annotation{}, false
}

// IsManaged reports whether the text carries any recognized marker.
func IsManaged(text string) bool {
	return p1Pattern.MatchString(text) ||
		p2Pattern.MatchString(text) ||
		legacyPattern.MatchString(text)
}

// HasManaged reports whether any literal on (subject, predicate) carries a
// managed marker.
func HasManaged(g *ontology.Graph, subject, predicate ontology.Term) bool {
	for _, o := range g.Objects(subject, predicate) {
		if ontology.IsLiteral(o) && IsManaged(ontology.TermValue(o)) {
			return true
		}
	}
	return false
}

// RemoveManaged deletes every managed literal on (subject, predicate) and
// returns how many triples went. Human-authored values stay.
func RemoveManaged(g *ontology.Graph, subject, predicate ontology.Term) int {
	removed := 0
	for _, o := range g.Objects(subject, predicate) {
		if ontology.IsLiteral(o) && IsManaged(ontology.TermValue(o)) {
			removed += g.Remove(subject, predicate, o)
		}
	}
	return removed
}
