package compose

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/c360studio/semdocs/ontology"
	"github.com/c360studio/semdocs/render"
	"github.com/c360studio/semdocs/vocabulary/owl"
	"github.com/c360studio/semdocs/vocabulary/skos"
)

// DatatypePropertyDefinitions writes one definition per datatype property,
// phrasing its effective domains and ranges: "The data property age records
// a Person's age as an xsd:integer value."
func (c *Composer) DatatypePropertyDefinitions() Result {
	var res Result
	definition := ontology.IRI(skos.Definition)
	props := c.typedSubjects(owl.DatatypeProperty, owl.TopDataProperty, owl.BottomDataProperty)

	for _, prop := range props {
		if !c.gate(prop, definition, &res) {
			continue
		}
		label := render.Label(c.read, prop)
		domains := namedOnly(c.closures.EffectiveDomains(prop))
		ranges := namedOnly(c.closures.EffectiveRanges(prop))
		rangePhrase := c.rangePhrase(ranges)

		var sentences []string
		if len(domains) > 0 {
			for _, d := range domains {
				sentences = append(sentences, fmt.Sprintf(
					"The data property %s records a %s's %s %s",
					label, render.Label(c.read, d), label, rangePhrase))
			}
		} else {
			sentences = append(sentences, fmt.Sprintf(
				"The data property %s records the %s %s", label, label, rangePhrase))
		}
		c.annotate(prop, definition, joinSentences(sentences))
	}
	return res
}

// rangePhrase renders the trailing "as a ... value." clause. Several ranges
// join with "or"; the article follows the first letter of the joined text,
// treating x as vowel-like so "an xsd:integer" reads right.
func (c *Composer) rangePhrase(ranges []ontology.Term) string {
	if len(ranges) == 0 {
		return "as a literal value."
	}
	names := make([]string, 0, len(ranges))
	for _, r := range ranges {
		names = append(names, render.QName(c.read, r))
	}
	joined := strings.Join(names, " or ")
	article := "a"
	if first, _ := utf8.DecodeRuneInString(joined); strings.ContainsRune("aeioux", unicode.ToLower(first)) {
		article = "an"
	}
	return fmt.Sprintf("as %s %s value.", article, joined)
}

func namedOnly(terms []ontology.Term) []ontology.Term {
	out := make([]ontology.Term, 0, len(terms))
	for _, t := range terms {
		if ontology.IsIRI(t) {
			out = append(out, t)
		}
	}
	return out
}
